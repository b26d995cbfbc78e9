package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileTags(t *testing.T) {
	tests := []struct {
		name       string
		current    []uint
		requested  []uint
		wantAdd    []uint
		wantRemove []uint
	}{
		{
			name:       "nil requested is a no-op",
			current:    []uint{1, 2, 3},
			requested:  nil,
			wantAdd:    nil,
			wantRemove: nil,
		},
		{
			name:       "empty requested removes everything",
			current:    []uint{1, 2, 3},
			requested:  []uint{},
			wantAdd:    nil,
			wantRemove: []uint{1, 2, 3},
		},
		{
			name:       "disjoint sets swap completely",
			current:    []uint{1, 2},
			requested:  []uint{3, 4},
			wantAdd:    []uint{3, 4},
			wantRemove: []uint{1, 2},
		},
		{
			name:       "partial overlap",
			current:    []uint{1, 2, 3},
			requested:  []uint{2, 3, 4},
			wantAdd:    []uint{4},
			wantRemove: []uint{1},
		},
		{
			name:       "identical sets change nothing",
			current:    []uint{5, 6},
			requested:  []uint{6, 5},
			wantAdd:    nil,
			wantRemove: nil,
		},
		{
			name:       "empty current adds everything",
			current:    nil,
			requested:  []uint{1, 2},
			wantAdd:    []uint{1, 2},
			wantRemove: nil,
		},
		{
			name:       "duplicate ids in request collapse",
			current:    []uint{1},
			requested:  []uint{1, 2, 2},
			wantAdd:    []uint{2},
			wantRemove: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := ReconcileTags(tt.current, tt.requested)

			assert.Equal(t, tt.wantAdd, delta.Add)
			assert.Equal(t, tt.wantRemove, delta.Remove)

			// Add and Remove must be disjoint.
			for _, a := range delta.Add {
				assert.NotContains(t, delta.Remove, a)
			}
		})
	}
}

func TestReconcileTags_Idempotent(t *testing.T) {
	current := []uint{1, 2, 3}
	requested := []uint{2, 4}

	first := ReconcileTags(current, requested)
	assert.Equal(t, []uint{4}, first.Add)
	assert.Equal(t, []uint{1, 3}, first.Remove)

	// Applying the delta yields the requested set; reconciling again
	// against the same request must change nothing.
	second := ReconcileTags(requested, requested)
	assert.True(t, second.IsEmpty())
}

func TestTagDelta_IsEmpty(t *testing.T) {
	assert.True(t, TagDelta{}.IsEmpty())
	assert.False(t, TagDelta{Add: []uint{1}}.IsEmpty())
	assert.False(t, TagDelta{Remove: []uint{1}}.IsEmpty())
}
