// Package placement plans position number changes for the entries of one event.
//
// Position numbers order the entries for judges. The number Unordered marks an entry
// without a fixed slot; any number of entries may share it and it never takes part in
// occupancy checks or shifting.
package placement

import (
	"errors"
	"sort"
)

const Unordered = 999

var (
	ErrInvalidPosition = errors.New("position must be a positive number or 999")
	ErrUnknownEntry    = errors.New("entry does not belong to this event")
)

// Slot is the current position of one entry. A nil Position means unassigned.
type Slot struct {
	EntryId  int
	Position *int
}

// Move sets the position of one entry. A nil To clears the position.
type Move struct {
	EntryId int
	From    *int
	To      *int
}

// Plan is the ordered list of moves that places EntryId at Target.
type Plan struct {
	EntryId int
	Target  int
	Moves   []Move
}

func (p *Plan) IsNoop() bool {
	return len(p.Moves) == 0
}

// Shifted counts the entries other than the placed one that move.
func (p *Plan) Shifted() int {
	count := 0
	for _, move := range p.Moves {
		if move.EntryId != p.EntryId {
			count++
		}
	}
	return count
}

func ValidPosition(position int) bool {
	return position > 0
}

func holds(position *int, target int) bool {
	return position != nil && *position == target
}

func ordered(position *int) bool {
	return position != nil && *position != Unordered
}

// next skips the sentinel so that a shifted entry never becomes unordered.
func next(position int) int {
	position++
	if position == Unordered {
		position++
	}
	return position
}

// PlanAssignment computes the moves that put entryId at target among slots.
//
// Moves must be applied in order. When the target is taken, the moved entry first
// releases its own slot, then every ordered entry at or above target moves up by one
// starting from the highest, so a unique (event, position) index holds after every move.
func PlanAssignment(slots []Slot, entryId int, target int) (*Plan, error) {
	if !ValidPosition(target) {
		return nil, ErrInvalidPosition
	}
	var current *Slot
	for i := range slots {
		if slots[i].EntryId == entryId {
			current = &slots[i]
			break
		}
	}
	if current == nil {
		return nil, ErrUnknownEntry
	}

	plan := &Plan{EntryId: entryId, Target: target, Moves: []Move{}}
	if holds(current.Position, target) {
		return plan, nil
	}
	to := target
	if target == Unordered {
		plan.Moves = append(plan.Moves, Move{EntryId: entryId, From: current.Position, To: &to})
		return plan, nil
	}

	occupied := false
	for _, slot := range slots {
		if slot.EntryId != entryId && holds(slot.Position, target) {
			occupied = true
			break
		}
	}
	if !occupied {
		plan.Moves = append(plan.Moves, Move{EntryId: entryId, From: current.Position, To: &to})
		return plan, nil
	}

	if ordered(current.Position) {
		plan.Moves = append(plan.Moves, Move{EntryId: entryId, From: current.Position, To: nil})
	}
	shifting := make([]Slot, 0)
	for _, slot := range slots {
		if slot.EntryId != entryId && ordered(slot.Position) && *slot.Position >= target {
			shifting = append(shifting, slot)
		}
	}
	sort.Slice(shifting, func(i, j int) bool {
		return *shifting[i].Position > *shifting[j].Position
	})
	for _, slot := range shifting {
		moved := next(*slot.Position)
		plan.Moves = append(plan.Moves, Move{EntryId: slot.EntryId, From: slot.Position, To: &moved})
	}
	plan.Moves = append(plan.Moves, Move{EntryId: entryId, From: nil, To: &to})
	return plan, nil
}

// Apply returns the slots after the plan's moves, leaving the input untouched.
func Apply(slots []Slot, plan *Plan) []Slot {
	positions := make(map[int]*int, len(slots))
	for _, slot := range slots {
		positions[slot.EntryId] = slot.Position
	}
	for _, move := range plan.Moves {
		positions[move.EntryId] = move.To
	}
	result := make([]Slot, len(slots))
	for i, slot := range slots {
		result[i] = Slot{EntryId: slot.EntryId, Position: positions[slot.EntryId]}
	}
	return result
}
