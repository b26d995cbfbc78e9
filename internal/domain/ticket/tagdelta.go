package ticket

import (
	"slices"

	"flowdesk/internal/shared/utils/setutil"
)

// TagDelta is the minimal set of link changes that moves a ticket's tag set
// from its current state to a requested one. Add and Remove are disjoint.
type TagDelta struct {
	Add    []uint
	Remove []uint
}

// IsEmpty reports whether the delta changes nothing.
func (d TagDelta) IsEmpty() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0
}

// ReconcileTags computes the delta between the current tag-id set and the
// requested one. A nil requested slice means the field was not provided and
// yields an empty delta; an empty non-nil slice requests removal of all tags.
// Tag-id existence is not checked here; the store validates ids when the
// delta is applied and fails the whole mutation on an unknown id.
func ReconcileTags(current []uint, requested []uint) TagDelta {
	if requested == nil {
		return TagDelta{}
	}

	currentSet := setutil.NewUintSetFromSlice(current)
	requestedSet := setutil.NewUintSetFromSlice(requested)

	delta := TagDelta{}

	for _, id := range requestedSet.ToSlice() {
		if !currentSet.Has(id) {
			delta.Add = append(delta.Add, id)
		}
	}

	for _, id := range currentSet.ToSlice() {
		if !requestedSet.Has(id) {
			delta.Remove = append(delta.Remove, id)
		}
	}

	slices.Sort(delta.Add)
	slices.Sort(delta.Remove)

	return delta
}
