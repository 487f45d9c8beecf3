package service

import (
	"time"

	"parade/metrics"
	"parade/repository"
	"parade/scoring"
	"parade/utils"

	"gorm.io/gorm"
)

type ResultsService struct {
	category_repository *repository.CategoryRepository
	entry_repository    *repository.EntryRepository
	score_repository    *repository.ScoreRepository
	eventService        *EventService
}

func NewResultsService(db *gorm.DB) *ResultsService {
	return &ResultsService{
		category_repository: repository.NewCategoryRepository(db),
		entry_repository:    repository.NewEntryRepository(db),
		score_repository:    repository.NewScoreRepository(db),
		eventService:        NewEventService(db),
	}
}

// GetLeaderboard aggregates one event, or every event when eventId is nil.
func (s *ResultsService) GetLeaderboard(eventId *int) (*scoring.Leaderboard, error) {
	var (
		categories []*repository.Category
		entries    []*repository.Entry
		label      string
		err        error
	)
	if eventId != nil {
		event, eventErr := s.eventService.GetEventById(*eventId)
		if eventErr != nil {
			return nil, eventErr
		}
		label = event.Label()
		if categories, err = s.category_repository.GetCategoriesForEvent(event.Id); err != nil {
			return nil, err
		}
		if entries, err = s.entry_repository.GetEntriesForEvent(event.Id, repository.EntryFilter{}); err != nil {
			return nil, err
		}
	} else {
		if categories, err = s.category_repository.GetAllCategories(); err != nil {
			return nil, err
		}
		if entries, err = s.entry_repository.GetAllEntries(); err != nil {
			return nil, err
		}
	}
	scores, err := s.score_repository.GetScoresForEntries(utils.Map(entries, func(e *repository.Entry) int { return e.Id }))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	board := scoring.Aggregate(categories, entries, scores, label)
	metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	return board, nil
}
