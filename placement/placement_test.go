package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p(v int) *int {
	return &v
}

func positionsOf(slots []Slot) map[int]*int {
	positions := make(map[int]*int)
	for _, slot := range slots {
		positions[slot.EntryId] = slot.Position
	}
	return positions
}

func assertNoDuplicates(t *testing.T, slots []Slot) {
	t.Helper()
	seen := make(map[int]int)
	for _, slot := range slots {
		if slot.Position == nil || *slot.Position == Unordered {
			continue
		}
		if other, ok := seen[*slot.Position]; ok {
			t.Fatalf("entries %d and %d share position %d", other, slot.EntryId, *slot.Position)
		}
		seen[*slot.Position] = slot.EntryId
	}
}

// every intermediate state must satisfy the unique index
func assertStepwiseUnique(t *testing.T, slots []Slot, plan *Plan) {
	t.Helper()
	state := slots
	for _, move := range plan.Moves {
		state = Apply(state, &Plan{EntryId: plan.EntryId, Moves: []Move{move}})
		assertNoDuplicates(t, state)
	}
}

func TestPlanAssignmentFreeSlot(t *testing.T) {
	slots := []Slot{{1, p(1)}, {2, p(2)}, {3, nil}}
	plan, err := PlanAssignment(slots, 3, 4)
	require.NoError(t, err)

	assert.Len(t, plan.Moves, 1)
	assert.Equal(t, 0, plan.Shifted())
	after := positionsOf(Apply(slots, plan))
	assert.Equal(t, 4, *after[3])
	assert.Equal(t, 1, *after[1])
	assert.Equal(t, 2, *after[2])
}

func TestPlanAssignmentInsertShiftsLaterEntries(t *testing.T) {
	slots := []Slot{{1, p(1)}, {2, p(2)}, {3, p(3)}, {4, nil}}
	plan, err := PlanAssignment(slots, 4, 2)
	require.NoError(t, err)

	after := positionsOf(Apply(slots, plan))
	assert.Equal(t, 1, *after[1])
	assert.Equal(t, 2, *after[4])
	assert.Equal(t, 3, *after[2])
	assert.Equal(t, 4, *after[3])
	assert.Equal(t, 2, plan.Shifted())
	assertStepwiseUnique(t, slots, plan)
}

func TestPlanAssignmentCascadesThroughContiguousRun(t *testing.T) {
	slots := []Slot{{1, p(5)}, {2, p(6)}, {3, p(7)}, {4, p(12)}, {5, nil}}
	plan, err := PlanAssignment(slots, 5, 5)
	require.NoError(t, err)

	after := positionsOf(Apply(slots, plan))
	assert.Equal(t, 5, *after[5])
	assert.Equal(t, 6, *after[1])
	assert.Equal(t, 7, *after[2])
	assert.Equal(t, 8, *after[3])
	assert.Equal(t, 13, *after[4])
	assertStepwiseUnique(t, slots, plan)
}

func TestPlanAssignmentSentinelEntriesNeverShift(t *testing.T) {
	slots := []Slot{{1, p(Unordered)}, {2, p(Unordered)}, {3, p(1)}, {4, nil}}
	plan, err := PlanAssignment(slots, 4, 1)
	require.NoError(t, err)

	for _, move := range plan.Moves {
		assert.NotContains(t, []int{1, 2}, move.EntryId)
	}
	after := positionsOf(Apply(slots, plan))
	assert.Equal(t, Unordered, *after[1])
	assert.Equal(t, Unordered, *after[2])
	assert.Equal(t, 2, *after[3])
	assert.Equal(t, 1, *after[4])
}

func TestPlanAssignmentSentinelAllowsDuplicates(t *testing.T) {
	slots := []Slot{{1, p(Unordered)}, {2, p(Unordered)}, {3, p(4)}}
	plan, err := PlanAssignment(slots, 3, Unordered)
	require.NoError(t, err)

	assert.Len(t, plan.Moves, 1)
	assert.Equal(t, 0, plan.Shifted())
	after := positionsOf(Apply(slots, plan))
	assert.Equal(t, Unordered, *after[3])
}

func TestPlanAssignmentSameSlotIsNoop(t *testing.T) {
	slots := []Slot{{1, p(1)}, {2, p(2)}}
	plan, err := PlanAssignment(slots, 2, 2)
	require.NoError(t, err)
	assert.True(t, plan.IsNoop())

	slots = []Slot{{1, p(Unordered)}, {2, p(Unordered)}}
	plan, err = PlanAssignment(slots, 1, Unordered)
	require.NoError(t, err)
	assert.True(t, plan.IsNoop())
}

func TestPlanAssignmentMovingDownReleasesOwnSlot(t *testing.T) {
	slots := []Slot{{1, p(1)}, {2, p(2)}, {3, p(3)}}
	plan, err := PlanAssignment(slots, 3, 2)
	require.NoError(t, err)

	after := Apply(slots, plan)
	assertNoDuplicates(t, after)
	assertStepwiseUnique(t, slots, plan)
	positions := positionsOf(after)
	assert.Equal(t, 1, *positions[1])
	assert.Equal(t, 2, *positions[3])
	assert.Equal(t, 3, *positions[2])
}

func TestPlanAssignmentMovingUpIntoTakenSlot(t *testing.T) {
	slots := []Slot{{1, p(1)}, {2, p(2)}, {3, p(3)}}
	plan, err := PlanAssignment(slots, 1, 3)
	require.NoError(t, err)

	positions := positionsOf(Apply(slots, plan))
	assert.Equal(t, 3, *positions[1])
	assert.Equal(t, 2, *positions[2])
	assert.Equal(t, 4, *positions[3])
	assertStepwiseUnique(t, slots, plan)
}

func TestPlanAssignmentShiftSkipsSentinel(t *testing.T) {
	slots := []Slot{{1, p(998)}, {2, p(Unordered)}, {3, nil}}
	plan, err := PlanAssignment(slots, 3, 998)
	require.NoError(t, err)

	positions := positionsOf(Apply(slots, plan))
	assert.Equal(t, 998, *positions[3])
	assert.Equal(t, 1000, *positions[1])
	assert.Equal(t, Unordered, *positions[2])
}

func TestPlanAssignmentRejectsInvalidInput(t *testing.T) {
	slots := []Slot{{1, p(1)}}

	_, err := PlanAssignment(slots, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = PlanAssignment(slots, 1, -3)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = PlanAssignment(slots, 2, 1)
	assert.ErrorIs(t, err, ErrUnknownEntry)
}
