package service

import (
	"errors"
	"log"
	"strings"

	"parade/app_error"
	"parade/metrics"
	"parade/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JudgeService struct {
	judge_repository *repository.JudgeRepository
	score_repository *repository.ScoreRepository
	entryService     *EntryService
	categoryService  *CategoryService
	eventService     *EventService
}

func NewJudgeService(db *gorm.DB) *JudgeService {
	return &JudgeService{
		judge_repository: repository.NewJudgeRepository(db),
		score_repository: repository.NewScoreRepository(db),
		entryService:     NewEntryService(db),
		categoryService:  NewCategoryService(db),
		eventService:     NewEventService(db),
	}
}

// EntryProgress is a judge's completion for one approved entry.
type EntryProgress struct {
	EntryId          int
	OrganizationName string
	Position         *int
	Scored           int
	Total            int
	// MissingRequired names the first required category without a value.
	MissingRequired string
}

// JudgeStatus summarizes how far a judge got with an event.
type JudgeStatus struct {
	Judge   *repository.Judge
	Entries []*EntryProgress
}

func (s *JudgeStatus) Complete() bool {
	return s.firstMissing() == nil
}

func (s *JudgeStatus) firstMissing() *EntryProgress {
	for _, progress := range s.Entries {
		if progress.MissingRequired != "" {
			return progress
		}
	}
	return nil
}

func (s *JudgeService) GetJudgesForEvent(eventId int) ([]*repository.Judge, error) {
	if _, err := s.eventService.GetEventById(eventId); err != nil {
		return nil, err
	}
	return s.judge_repository.GetJudgesForEvent(eventId)
}

func (s *JudgeService) GetJudge(judgeId int) (*repository.Judge, error) {
	judge, err := s.judge_repository.GetJudgeById(judgeId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("judge %d not found", judgeId)
		}
		return nil, err
	}
	return judge, nil
}

func (s *JudgeService) getJudgeForEvent(eventId int, judgeId int) (*repository.Judge, error) {
	judge, err := s.GetJudge(judgeId)
	if err != nil {
		return nil, err
	}
	if judge.EventId != eventId {
		return nil, app_error.NotFound("judge %d not found", judgeId)
	}
	return judge, nil
}

// CreateJudge registers a judge with a freshly generated access code.
func (s *JudgeService) CreateJudge(eventId int, name string) (*repository.Judge, error) {
	if _, err := s.eventService.GetEventById(eventId); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, app_error.Validation("judge name is required")
	}
	judge, err := s.judge_repository.Save(&repository.Judge{
		EventId:    eventId,
		Name:       name,
		AccessCode: uuid.NewString(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, app_error.Conflict("judge %q already exists for this event", name)
		}
		return nil, err
	}
	return judge, nil
}

func (s *JudgeService) DeleteJudge(eventId int, judgeId int) error {
	if _, err := s.getJudgeForEvent(eventId, judgeId); err != nil {
		return err
	}
	count, err := s.judge_repository.CountScores(judgeId)
	if err != nil {
		return err
	}
	if count > 0 {
		return app_error.Conflict("judge %d already has scores and cannot be deleted", judgeId)
	}
	return s.judge_repository.Delete(judgeId)
}

// Authenticate resolves a judge by event and access code.
func (s *JudgeService) Authenticate(eventId int, accessCode string) (*repository.Judge, error) {
	accessCode = strings.TrimSpace(accessCode)
	if accessCode == "" {
		return nil, app_error.Validation("access code is required")
	}
	judge, err := s.judge_repository.GetJudgeByAccessCode(eventId, accessCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return judge, nil
}

func (s *JudgeService) Unlock(eventId int, judgeId int) (*repository.Judge, error) {
	if _, err := s.getJudgeForEvent(eventId, judgeId); err != nil {
		return nil, err
	}
	judge, err := s.judge_repository.SetSubmitted(judgeId, false)
	if err != nil {
		return nil, err
	}
	log.Printf("judge %d of event %d unlocked", judgeId, eventId)
	return judge, nil
}

// scoringScope loads the approved entries and categories a judge has to score.
func (s *JudgeService) scoringScope(judge *repository.Judge) ([]*repository.Entry, []*repository.Category, error) {
	entries, err := s.entryService.GetEntries(judge.EventId, repository.EntryFilter{ApprovedOnly: true})
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.categoryService.GetCategoriesForEvent(judge.EventId)
	if err != nil {
		return nil, nil, err
	}
	return entries, categories, nil
}

func (s *JudgeService) Status(judgeId int) (*JudgeStatus, error) {
	judge, err := s.GetJudge(judgeId)
	if err != nil {
		return nil, err
	}
	entries, categories, err := s.scoringScope(judge)
	if err != nil {
		return nil, err
	}
	scores, err := s.score_repository.GetScoresForJudge(judgeId)
	if err != nil {
		return nil, err
	}
	return statusOf(judge, entries, categories, scores), nil
}

func statusOf(judge *repository.Judge, entries []*repository.Entry, categories []*repository.Category, scores []*repository.Score) *JudgeStatus {
	scoreByEntry := make(map[int]*repository.Score, len(scores))
	for _, score := range scores {
		scoreByEntry[score.EntryId] = score
	}
	status := &JudgeStatus{Judge: judge, Entries: make([]*EntryProgress, 0, len(entries))}
	for _, entry := range entries {
		status.Entries = append(status.Entries, progressOf(entry, scoreByEntry[entry.Id], categories))
	}
	return status
}

func progressOf(entry *repository.Entry, score *repository.Score, categories []*repository.Category) *EntryProgress {
	progress := &EntryProgress{
		EntryId:          entry.Id,
		OrganizationName: entry.OrganizationName,
		Position:         entry.Position,
		Total:            len(categories),
	}
	values := make(map[int]bool)
	if score != nil {
		for _, item := range score.Items {
			values[item.CategoryId] = item.Value != nil
		}
	}
	for _, category := range categories {
		if values[category.Id] {
			progress.Scored++
		} else if category.Required && progress.MissingRequired == "" {
			progress.MissingRequired = category.Name
		}
	}
	return progress
}

// Submit locks the judge's scores once every approved entry is complete.
func (s *JudgeService) Submit(judgeId int) (*repository.Judge, error) {
	judge, err := s.GetJudge(judgeId)
	if err != nil {
		return nil, err
	}
	entries, categories, err := s.scoringScope(judge)
	if err != nil {
		return nil, err
	}
	judge, err = s.judge_repository.Submit(judgeId, func(locked *repository.Judge, scores []*repository.Score) error {
		if locked.Submitted {
			return app_error.Locked("scores were already submitted")
		}
		if missing := statusOf(locked, entries, categories, scores).firstMissing(); missing != nil {
			return app_error.Validation("entry %q has no score for required category %q", missing.OrganizationName, missing.MissingRequired)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.JudgeSubmissionsCounter.Inc()
	log.Printf("judge %d of event %d submitted %d entries", judge.Id, judge.EventId, len(entries))
	return judge, nil
}
