package service

import (
	"errors"
	"strings"
	"time"

	"parade/app_error"
	"parade/repository"

	"gorm.io/gorm"
)

type EventService struct {
	event_repository *repository.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		event_repository: repository.NewEventRepository(db),
	}
}

// EventUpdate carries the fields a PATCH may change; nil fields stay untouched.
type EventUpdate struct {
	Name         *string
	Description  *string
	Date         *time.Time
	Active       *bool
	OverallLabel *string
}

func (e *EventService) GetAllEvents() ([]*repository.Event, error) {
	return e.event_repository.FindAll()
}

func (e *EventService) GetEventById(eventId int, preloads ...string) (*repository.Event, error) {
	event, err := e.event_repository.GetEventById(eventId, preloads...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("event %d not found", eventId)
		}
		return nil, err
	}
	return event, nil
}

func (e *EventService) CreateEvent(event *repository.Event) (*repository.Event, error) {
	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" {
		return nil, app_error.Validation("event name is required")
	}
	event.OverallLabel = strings.TrimSpace(event.OverallLabel)
	if event.OverallLabel == "" {
		event.OverallLabel = repository.DefaultOverallLabel
	}
	return e.event_repository.Save(event)
}

func (e *EventService) UpdateEvent(eventId int, update *EventUpdate) (*repository.Event, error) {
	event, err := e.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, app_error.Validation("event name must not be empty")
		}
		event.Name = name
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Date != nil {
		event.Date = update.Date
	}
	if update.Active != nil {
		event.Active = *update.Active
	}
	if update.OverallLabel != nil {
		event.OverallLabel = strings.TrimSpace(*update.OverallLabel)
		if event.OverallLabel == "" {
			event.OverallLabel = repository.DefaultOverallLabel
		}
	}
	return e.event_repository.Save(event)
}

func (e *EventService) DeleteEvent(eventId int) error {
	err := e.event_repository.Delete(eventId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return app_error.NotFound("event %d not found", eventId)
	}
	return err
}
