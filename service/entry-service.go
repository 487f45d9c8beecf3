package service

import (
	"encoding/json"
	"errors"
	"log"
	"net/mail"
	"strings"

	"parade/app_error"
	"parade/metrics"
	"parade/placement"
	"parade/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EntryService struct {
	entry_repository *repository.EntryRepository
	eventService     *EventService
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{
		entry_repository: repository.NewEntryRepository(db),
		eventService:     NewEventService(db),
	}
}

// Approval is a coordinator's decision on an entry. Position is optional.
type Approval struct {
	EventId  int
	EntryId  int
	Approved bool
	Position *int
}

func ValidatePosition(position int) error {
	if !placement.ValidPosition(position) {
		return app_error.Validation("float number must be a positive number or %d", placement.Unordered)
	}
	return nil
}

func (s *EntryService) Signup(eventId int, entry *repository.Entry) (*repository.Entry, error) {
	event, err := s.eventService.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	if !event.Active {
		return nil, app_error.Validation("event %q is not accepting signups", event.Name)
	}
	entry.OrganizationName = strings.TrimSpace(entry.OrganizationName)
	if entry.OrganizationName == "" {
		return nil, app_error.Validation("organization name is required")
	}
	entry.ContactEmail = strings.TrimSpace(entry.ContactEmail)
	if entry.ContactEmail != "" {
		if _, err := mail.ParseAddress(entry.ContactEmail); err != nil {
			return nil, app_error.Validation("contact email is invalid")
		}
	}
	metadata, err := normalizeMetadata(entry.Metadata)
	if err != nil {
		return nil, err
	}
	entry.Metadata = metadata
	entry.Id = 0
	entry.EventId = eventId
	entry.Approved = false
	entry.Position = nil
	return s.entry_repository.Save(entry)
}

// normalizeMetadata turns missing or null metadata into an empty object and rejects
// anything that is not an object.
func normalizeMetadata(raw datatypes.JSON) (datatypes.JSON, error) {
	var metadata map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &metadata); err != nil {
			return nil, app_error.Validation("metadata must be a JSON object")
		}
	}
	if metadata == nil {
		return datatypes.JSON("{}"), nil
	}
	return raw, nil
}

func (s *EntryService) GetEntries(eventId int, filter repository.EntryFilter) ([]*repository.Entry, error) {
	if _, err := s.eventService.GetEventById(eventId); err != nil {
		return nil, err
	}
	return s.entry_repository.GetEntriesForEvent(eventId, filter)
}

func (s *EntryService) GetEntry(eventId int, entryId int) (*repository.Entry, error) {
	entry, err := s.entry_repository.GetEntryById(entryId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("entry %d not found", entryId)
		}
		return nil, err
	}
	if eventId != 0 && entry.EventId != eventId {
		return nil, app_error.NotFound("entry %d not found", entryId)
	}
	return entry, nil
}

func (s *EntryService) placementError(entryId int, position int, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return app_error.NotFound("entry %d not found", entryId)
	case errors.Is(err, placement.ErrInvalidPosition):
		return ValidatePosition(position)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return app_error.Conflict("float number %d was taken concurrently, please retry", position)
	}
	return err
}

// AssignPosition runs the allocator for one entry.
func (s *EntryService) AssignPosition(eventId int, entryId int, position int) (*repository.Entry, error) {
	if err := ValidatePosition(position); err != nil {
		return nil, err
	}
	entry, err := s.GetEntry(eventId, entryId)
	if err != nil {
		return nil, err
	}
	if !entry.Approved {
		return nil, app_error.Validation("entry %d must be approved before it gets a float number", entryId)
	}
	placed, err := s.entry_repository.AssignPosition(entry.EventId, entryId, position)
	if err != nil {
		return nil, s.placementError(entryId, position, err)
	}
	s.recordShift(placed)
	return placed.Entry, nil
}

func (s *EntryService) Approve(approval *Approval) (*repository.Entry, error) {
	if approval.Position != nil {
		if err := ValidatePosition(*approval.Position); err != nil {
			return nil, err
		}
	}
	entry, err := s.GetEntry(approval.EventId, approval.EntryId)
	if err != nil {
		return nil, err
	}
	position := approval.Position
	if !approval.Approved {
		position = nil
	}
	placed, err := s.entry_repository.SetApproval(entry.EventId, entry.Id, approval.Approved, position)
	if err != nil {
		target := 0
		if position != nil {
			target = *position
		}
		return nil, s.placementError(entry.Id, target, err)
	}
	s.recordShift(placed)
	return placed.Entry, nil
}

func (s *EntryService) recordShift(placed *repository.PlacementResult) {
	if placed.Shifted > 0 {
		metrics.PositionShiftsCounter.Add(float64(placed.Shifted))
		log.Printf("entry %d placed at %v, shifted %d entries", placed.Entry.Id, *placed.Entry.Position, placed.Shifted)
	}
}

func (s *EntryService) UpdateMetadata(eventId int, entryId int, patch map[string]any) (*repository.Entry, error) {
	if len(patch) == 0 {
		return nil, app_error.Validation("metadata patch is empty")
	}
	if _, err := s.GetEntry(eventId, entryId); err != nil {
		return nil, err
	}
	return s.entry_repository.MergeMetadata(entryId, patch)
}

func (s *EntryService) DeleteEntry(eventId int, entryId int) error {
	if _, err := s.GetEntry(eventId, entryId); err != nil {
		return err
	}
	err := s.entry_repository.DeleteUnscored(entryId)
	switch {
	case errors.Is(err, repository.ErrEntryHasScores):
		return app_error.Conflict("entry %d already has scores and cannot be deleted", entryId)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return app_error.NotFound("entry %d not found", entryId)
	}
	return err
}
