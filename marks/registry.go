package marks

import "github.com/dshills/textbuf/rangeval"

// Mark is an opaque identity token supplied by the caller. Equality is
// Go's native == on the interface value, so the registry never inspects a
// mark's contents; callers that want genuine identity semantics (as
// opposed to incidental value equality, e.g. two marks that both happen
// to be the same int) should use a pointer type as their Mark.
type Mark = any

// entry pairs a mark with its current absolute range. Registry keeps
// entries in a slice alongside an index map for O(1) duplicate/lookup
// checks. New entries are appended, and Unmark moves the last entry into
// the removed slot, so the order is insertion order only until the first
// Unmark. The spec allows any internal representation since no ordering
// is externally observable, but a deterministic order makes the
// registry's own tests and any caller iterating predicate results
// deterministic.
type entry struct {
	mark Mark
	rng  rangeval.Range
}

// Registry maps opaque mark identities to live ranges, updating them as
// the owning buffer is edited.
type Registry struct {
	entries []entry
	index   map[Mark]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[Mark]int)}
}

func (reg *Registry) lookup(mark Mark) (rangeval.Range, bool) {
	i, ok := reg.index[mark]
	if !ok {
		return rangeval.Range{}, false
	}
	return reg.entries[i].rng, true
}

// resolveAbsolute interprets r relative to sourceMark per §4.3: if
// sourceMark is nil, r is already absolute (resolving the unspecified
// sentinel is the caller's responsibility, since that requires knowing
// the buffer length, which the registry does not track). If sourceMark is
// given, r's endpoints are interpreted relative to sourceMark's absolute
// start, and an unspecified r resolves to sourceMark's own range.
func (reg *Registry) resolveAbsolute(r rangeval.Range, sourceMark Mark) (rangeval.Range, error) {
	if sourceMark == nil {
		return r, nil
	}
	s, ok := reg.lookup(sourceMark)
	if !ok {
		return rangeval.Range{}, ErrUnknownMark
	}
	if r.IsUnspecified() {
		return s, nil
	}
	return rangeval.New(s.Start+r.Start, s.Start+r.End), nil
}

// MarkRange resolves r (relative to sourceMark if given) and binds
// newMark to the resulting absolute range. It fails with ErrDuplicateMark
// if newMark is already registered.
func (reg *Registry) MarkRange(r rangeval.Range, newMark Mark, sourceMark Mark) error {
	if _, exists := reg.index[newMark]; exists {
		return ErrDuplicateMark
	}
	abs, err := reg.resolveAbsolute(r, sourceMark)
	if err != nil {
		return err
	}
	reg.index[newMark] = len(reg.entries)
	reg.entries = append(reg.entries, entry{mark: newMark, rng: abs})
	return nil
}

// Unmark removes mark's entry. It is silent if mark is not registered.
func (reg *Registry) Unmark(mark Mark) {
	i, ok := reg.index[mark]
	if !ok {
		return
	}
	last := len(reg.entries) - 1
	reg.entries[i] = reg.entries[last]
	reg.index[reg.entries[i].mark] = i
	reg.entries = reg.entries[:last]
	delete(reg.index, mark)
}

// GetRangeForMark returns mark's stored range, translated relative to
// sourceMark if given.
func (reg *Registry) GetRangeForMark(mark Mark, sourceMark Mark) (rangeval.Range, error) {
	abs, ok := reg.lookup(mark)
	if !ok {
		return rangeval.Range{}, ErrUnknownMark
	}
	if sourceMark == nil {
		return abs, nil
	}
	s, ok := reg.lookup(sourceMark)
	if !ok {
		return rangeval.Range{}, ErrUnknownMark
	}
	return rangeval.New(abs.Start-s.Start, abs.End-s.Start), nil
}

// intersects reports whether query selects entryRange: non-empty query
// ranges use the standard half-open overlap test; an empty (point) query
// matches any entry range containing that point inclusively at both ends.
func intersects(query, entryRange rangeval.Range) bool {
	if query.Start == query.End {
		point := query.Start
		return entryRange.Start <= point && point <= entryRange.End
	}
	return query.Start < entryRange.End && entryRange.Start < query.End
}

// GetMarksIntersecting enumerates marks whose absolute range intersects
// the resolved query range (relative to sourceMark if given), invoking
// predicate(mark, absoluteRange) for each. Results for which predicate
// returns a non-nil value are collected in enumeration order.
func (reg *Registry) GetMarksIntersecting(r rangeval.Range, sourceMark Mark, predicate func(Mark, rangeval.Range) any) ([]any, error) {
	query, err := reg.resolveAbsolute(r, sourceMark)
	if err != nil {
		return nil, err
	}
	var results []any
	for _, e := range reg.entries {
		if !intersects(query, e.rng) {
			continue
		}
		if v := predicate(e.mark, e.rng); v != nil {
			results = append(results, v)
		}
	}
	return results, nil
}

// applyEdit updates every registered mark's absolute range after a
// replace of [s, e) with k inserted characters, per the six cases in
// §4.3. Insertions are sticky-outside: an insertion exactly at a mark's
// boundary grows the neighboring text, not the mark.
func (reg *Registry) applyEdit(s, e, k int) {
	delta := k - (e - s)
	for i, ent := range reg.entries {
		ms, me := ent.rng.Start, ent.rng.End
		switch {
		case me <= s:
			// Entirely before the edit: unaffected.
		case ms >= e:
			ms += delta
			me += delta
		case s <= ms && me <= e:
			// Strictly inside the deleted range: collapse to the edit
			// point, absorbing up to k inserted characters (open
			// question in §9, resolved as collapse-to-empty/partial
			// absorption rather than auto-unmark).
			newLen := k
			if rest := me - ms; rest < newLen {
				newLen = rest
			}
			ms, me = s, s+newLen
		case ms < s && s < me && me <= e:
			// Overlaps only the start of the edit.
			me = s
		case s <= ms && ms < e && e < me:
			// Overlaps only the end of the edit.
			ms = s + k
			me += delta
		default:
			// ms < s && e < me: the edit is entirely inside the mark;
			// it grows or shrinks with the edit.
			me += delta
		}
		reg.entries[i].rng = rangeval.New(ms, me)
	}
}
