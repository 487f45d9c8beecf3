package service

import (
	"errors"
	"math"
	"strings"

	"parade/app_error"
	"parade/metrics"
	"parade/repository"
	"parade/utils"

	"gorm.io/gorm"
)

type ScoreService struct {
	score_repository *repository.ScoreRepository
	entryService     *EntryService
	categoryService  *CategoryService
	judgeService     *JudgeService
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{
		score_repository: repository.NewScoreRepository(db),
		entryService:     NewEntryService(db),
		categoryService:  NewCategoryService(db),
		judgeService:     NewJudgeService(db),
	}
}

// CategoryValues maps category names to a judge's values. A nil value clears the item.
type CategoryValues map[string]*float64

// JudgeScore is one judge's score for one entry keyed by category name.
type JudgeScore struct {
	EntryId int
	Values  map[string]*int
	Total   int
}

func (s *ScoreService) scoringContext(judgeId int, entryId int) (*repository.Judge, *repository.Entry, []*repository.Category, error) {
	judge, err := s.judgeService.GetJudge(judgeId)
	if err != nil {
		return nil, nil, nil, err
	}
	entry, err := s.entryService.GetEntry(0, entryId)
	if err != nil {
		return nil, nil, nil, err
	}
	if entry.EventId != judge.EventId {
		return nil, nil, nil, app_error.NotFound("entry %d not found", entryId)
	}
	categories, err := s.categoryService.GetCategoriesForEvent(judge.EventId)
	if err != nil {
		return nil, nil, nil, err
	}
	return judge, entry, categories, nil
}

// validateValues resolves names to category ids and checks every value.
func validateValues(categories []*repository.Category, values CategoryValues) (map[int]*int, error) {
	byName := make(map[string]*repository.Category, len(categories))
	for _, category := range categories {
		byName[strings.ToLower(category.Name)] = category
	}
	resolved := make(map[int]*int, len(values))
	for name, value := range values {
		category, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, app_error.Validation("unknown category %q", name)
		}
		if _, seen := resolved[category.Id]; seen {
			return nil, app_error.Validation("category %q is given more than once", category.Name)
		}
		if value == nil {
			resolved[category.Id] = nil
			continue
		}
		if *value != math.Trunc(*value) {
			return nil, app_error.Validation("score for %q must be a whole number", category.Name)
		}
		if *value < 0 || *value > float64(category.MaxScore) {
			return nil, app_error.Validation("score for %q must be between 0 and %d", category.Name, category.MaxScore)
		}
		if *value == 0 && !category.AllowNone {
			return nil, app_error.Validation("category %q does not allow a score of 0", category.Name)
		}
		v := int(*value)
		resolved[category.Id] = &v
	}
	return resolved, nil
}

// SaveScore validates and stores a judge's values for an entry.
func (s *ScoreService) SaveScore(judgeId int, entryId int, values CategoryValues) (*JudgeScore, error) {
	if len(values) == 0 {
		return nil, app_error.Validation("no scores supplied")
	}
	judge, entry, categories, err := s.scoringContext(judgeId, entryId)
	if err != nil {
		metrics.ScoresSavedCounter.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if !entry.Approved {
		metrics.ScoresSavedCounter.WithLabelValues("invalid").Inc()
		return nil, app_error.Validation("entry %d is not approved", entryId)
	}
	resolved, err := validateValues(categories, values)
	if err != nil {
		metrics.ScoresSavedCounter.WithLabelValues("invalid").Inc()
		return nil, err
	}

	score, err := s.score_repository.SaveScore(&repository.ScoreWrite{
		JudgeId:     judge.Id,
		EntryId:     entry.Id,
		Values:      resolved,
		CategoryIds: utils.Map(categories, func(c *repository.Category) int { return c.Id }),
	})
	if err != nil {
		if errors.Is(err, repository.ErrJudgeSubmitted) {
			metrics.ScoresSavedCounter.WithLabelValues("locked").Inc()
			return nil, app_error.Locked("scores were already submitted")
		}
		metrics.ScoresSavedCounter.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.ScoresSavedCounter.WithLabelValues("saved").Inc()
	return toJudgeScore(entry.Id, score, categories), nil
}

// GetJudgeScore returns the judge's values for an entry; every category is present,
// unscored ones as nil.
func (s *ScoreService) GetJudgeScore(judgeId int, entryId int) (*JudgeScore, error) {
	_, entry, categories, err := s.scoringContext(judgeId, entryId)
	if err != nil {
		return nil, err
	}
	score, err := s.score_repository.GetScore(judgeId, entry.Id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return toJudgeScore(entry.Id, score, categories), nil
}

func toJudgeScore(entryId int, score *repository.Score, categories []*repository.Category) *JudgeScore {
	result := &JudgeScore{EntryId: entryId, Values: make(map[string]*int, len(categories))}
	for _, category := range categories {
		result.Values[category.Name] = nil
	}
	if score == nil {
		return result
	}
	names := make(map[int]string, len(categories))
	for _, category := range categories {
		names[category.Id] = category.Name
	}
	for _, item := range score.Items {
		if name, ok := names[item.CategoryId]; ok {
			result.Values[name] = item.Value
		}
	}
	result.Total = score.Total
	return result
}

// GetScoresForEvent lists every stored score of the event's entries.
func (s *ScoreService) GetScoresForEvent(eventId int) ([]*repository.Score, error) {
	entries, err := s.entryService.GetEntries(eventId, repository.EntryFilter{})
	if err != nil {
		return nil, err
	}
	return s.score_repository.GetScoresForEntries(utils.Map(entries, func(e *repository.Entry) int { return e.Id }))
}
