package repository

import (
	"time"

	"gorm.io/gorm"
)

const DefaultOverallLabel = "Best Entry"

type Event struct {
	Id           int        `gorm:"primaryKey"`
	Name         string     `gorm:"not null"`
	Description  string     `gorm:"not null"`
	Date         *time.Time `gorm:"null"`
	Active       bool       `gorm:"not null"`
	OverallLabel string     `gorm:"not null"`
	CreatedAt    time.Time

	Categories []*Category `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Entries    []*Entry    `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Judges     []*Judge    `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

// Label is the display name of the overall category.
func (e *Event) Label() string {
	if e == nil || e.OverallLabel == "" {
		return DefaultOverallLabel
	}
	return e.OverallLabel
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetEventById(eventId int, preloads ...string) (*Event, error) {
	var event Event
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&event, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &event, nil
}

func (r *EventRepository) FindAll() ([]*Event, error) {
	events := make([]*Event, 0)
	result := r.DB.Order("id").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepository) Save(event *Event) (*Event, error) {
	result := r.DB.Save(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) Delete(eventId int) error {
	result := r.DB.Delete(&Event{}, eventId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
