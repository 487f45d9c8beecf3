package repository

import (
	"encoding/json"
	"errors"
	"time"

	"parade/placement"
	"parade/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entry struct {
	Id               int            `gorm:"primaryKey"`
	EventId          int            `gorm:"not null;index;uniqueIndex:idx_entry_event_position,where:position <> 999"`
	OrganizationName string         `gorm:"not null"`
	ContactName      string         `gorm:"not null"`
	ContactEmail     string         `gorm:"not null"`
	Description      string         `gorm:"not null"`
	Position         *int           `gorm:"null;uniqueIndex:idx_entry_event_position,where:position <> 999"`
	Approved         bool           `gorm:"not null"`
	Metadata         datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time
}

func (e *Entry) Slot() placement.Slot {
	return placement.Slot{EntryId: e.Id, Position: e.Position}
}

type EntryFilter struct {
	ApprovedOnly bool
}

type EntryRepository struct {
	DB *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{DB: db}
}

// positionOrder lists numbered entries first, then unordered ones, then unassigned ones.
const positionOrder = "position IS NULL, position, id"

func (r *EntryRepository) GetEntriesForEvent(eventId int, filter EntryFilter) ([]*Entry, error) {
	entries := make([]*Entry, 0)
	query := r.DB.Where("event_id = ?", eventId)
	if filter.ApprovedOnly {
		query = query.Where("approved = ?", true)
	}
	result := query.Order(positionOrder).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func (r *EntryRepository) GetAllEntries() ([]*Entry, error) {
	entries := make([]*Entry, 0)
	result := r.DB.Order("event_id, " + positionOrder).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func (r *EntryRepository) GetEntryById(entryId int) (*Entry, error) {
	var entry Entry
	result := r.DB.First(&entry, entryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &entry, nil
}

func (r *EntryRepository) Save(entry *Entry) (*Entry, error) {
	result := r.DB.Save(entry)
	if result.Error != nil {
		return nil, result.Error
	}
	return entry, nil
}

// MergeMetadata shallow-merges patch into the entry's metadata object.
func (r *EntryRepository) MergeMetadata(entryId int, patch map[string]any) (*Entry, error) {
	var entry Entry
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, entryId).Error; err != nil {
			return err
		}
		var metadata map[string]any
		if len(entry.Metadata) > 0 {
			if err := json.Unmarshal(entry.Metadata, &metadata); err != nil {
				return err
			}
		}
		// stored null decodes to a nil map
		if metadata == nil {
			metadata = make(map[string]any)
		}
		for key, value := range patch {
			if value == nil {
				delete(metadata, key)
				continue
			}
			metadata[key] = value
		}
		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		entry.Metadata = datatypes.JSON(raw)
		return tx.Model(&entry).Update("metadata", entry.Metadata).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// PlacementResult reports what an allocation changed.
type PlacementResult struct {
	Entry   *Entry
	Shifted int
}

// AssignPosition places an entry at target inside one transaction, shifting the
// event's later entries when the slot is taken.
func (r *EntryRepository) AssignPosition(eventId int, entryId int, target int) (*PlacementResult, error) {
	var placed *PlacementResult
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		placed, err = assignPosition(tx, eventId, entryId, target)
		return err
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// SetApproval updates the approval flag and, when approving with a position, allocates
// it in the same transaction. Revoking approval clears the position.
func (r *EntryRepository) SetApproval(eventId int, entryId int, approved bool, position *int) (*PlacementResult, error) {
	placed := &PlacementResult{}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{"approved": approved}
		if !approved {
			updates["position"] = gorm.Expr("NULL")
		}
		result := tx.Model(&Entry{}).Where("id = ? AND event_id = ?", entryId, eventId).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if approved && position != nil {
			var err error
			placed, err = assignPosition(tx, eventId, entryId, *position)
			return err
		}
		var entry Entry
		if err := tx.First(&entry, entryId).Error; err != nil {
			return err
		}
		placed.Entry = &entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func assignPosition(tx *gorm.DB, eventId int, entryId int, target int) (*PlacementResult, error) {
	entries := make([]*Entry, 0)
	// lock the event's entries so concurrent allocations serialize
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("event_id = ?", eventId).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	plan, err := placement.PlanAssignment(utils.Map(entries, func(e *Entry) placement.Slot { return e.Slot() }), entryId, target)
	if err != nil {
		if errors.Is(err, placement.ErrUnknownEntry) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	for _, move := range plan.Moves {
		var value any = gorm.Expr("NULL")
		if move.To != nil {
			value = *move.To
		}
		if err := tx.Model(&Entry{}).Where("id = ?", move.EntryId).Update("position", value).Error; err != nil {
			return nil, err
		}
	}
	var entry Entry
	if err := tx.First(&entry, entryId).Error; err != nil {
		return nil, err
	}
	return &PlacementResult{Entry: &entry, Shifted: plan.Shifted()}, nil
}

var ErrEntryHasScores = errors.New("entry already has scores")

// DeleteUnscored removes an entry unless a judge has already scored it.
func (r *EntryRepository) DeleteUnscored(entryId int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var entry Entry
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, entryId).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&Score{}).Where("entry_id = ?", entryId).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEntryHasScores
		}
		return tx.Delete(&Entry{}, entryId).Error
	})
}
