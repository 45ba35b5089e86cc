// SPDX-License-Identifier: MIT

// Package matrix - derived-value cache.
//
// Invalidation contract (single named invariant):
//   - EVERY mutating operation calls invalidate() before returning. There is
//     no partial invalidation: one mutation clears all entries unconditionally.
//   - A single `present` flag tracks whether anything is populated, so
//     invalidation is O(1): check flag, zero the struct.
//   - When caching is disabled per instance (WithoutCache), store* helpers are
//     no-ops and the flag never sets; values are recomputed on every call.

package matrix

import "math"

// cacheState holds derived values as optional (nil = absent) entries.
// Cached forms (ref/rref) are private copies: accessors hand out clones so
// callers can never mutate a cached entry in place.
type cacheState struct {
	present bool // true iff at least one entry below is populated

	ref        *Dense // row echelon form
	refSwaps   int    // row swaps performed while producing ref
	refPivoted bool   // whether ref was computed with partial pivoting

	rref *Dense // reduced row echelon form

	det   *float64 // determinant (square matrices only)
	trace *float64 // trace (square matrices only)
}

// invalidate clears every cached entry in O(1) amortized: when nothing is
// populated the call is a flag check only.
func (m *Dense) invalidate() {
	if !m.cache.present {
		return
	}
	m.cache = cacheState{}
}

// SetCaching toggles the per-instance cache at runtime. Disabling also drops
// any values cached so far.
// Complexity: O(1).
func (m *Dense) SetCaching(enabled bool) {
	m.opts.caching = enabled
	if !enabled {
		m.invalidate()
	}
}

// CachingEnabled reports the per-instance cache policy. Complexity: O(1).
func (m *Dense) CachingEnabled() bool { return m.opts.caching }

// storeRef records a REF result (with its swap count and pivoting mode) when
// caching is on. The stored form is owned by the cache; callers receive clones.
func (m *Dense) storeRef(ref *Dense, swaps int, pivoted bool) {
	if !m.opts.caching {
		return
	}
	m.cache.ref = ref
	m.cache.refSwaps = swaps
	m.cache.refPivoted = pivoted
	m.cache.present = true
}

// storeRref records an RREF result when caching is on.
func (m *Dense) storeRref(rref *Dense) {
	if !m.opts.caching {
		return
	}
	m.cache.rref = rref
	m.cache.present = true
}

// storeDet records the determinant when caching is on.
func (m *Dense) storeDet(det float64) {
	if !m.opts.caching {
		return
	}
	m.cache.det = &det
	m.cache.present = true
}

// storeTrace records the trace when caching is on.
func (m *Dense) storeTrace(tr float64) {
	if !m.opts.caching {
		return
	}
	m.cache.trace = &tr
	m.cache.present = true
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
