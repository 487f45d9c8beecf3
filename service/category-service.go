package service

import (
	"errors"
	"strings"

	"parade/app_error"
	"parade/repository"
	"parade/utils"

	"gorm.io/gorm"
)

type CategoryService struct {
	category_repository *repository.CategoryRepository
	eventService        *EventService
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		category_repository: repository.NewCategoryRepository(db),
		eventService:        NewEventService(db),
	}
}

type CategoryUpdate struct {
	Name         *string
	DisplayOrder *int
	Required     *bool
	AllowNone    *bool
	MaxScore     *int
}

func (s *CategoryService) GetCategoriesForEvent(eventId int) ([]*repository.Category, error) {
	if _, err := s.eventService.GetEventById(eventId); err != nil {
		return nil, err
	}
	return s.category_repository.GetCategoriesForEvent(eventId)
}

func (s *CategoryService) GetCategory(eventId int, categoryId int) (*repository.Category, error) {
	category, err := s.category_repository.GetCategoryById(categoryId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("category %d not found", categoryId)
		}
		return nil, err
	}
	if category.EventId != eventId {
		return nil, app_error.NotFound("category %d not found", categoryId)
	}
	return category, nil
}

func validateCategory(category *repository.Category) error {
	if category.Name == "" {
		return app_error.Validation("category name is required")
	}
	if category.MaxScore <= 0 {
		return app_error.Validation("max score of %q must be positive", category.Name)
	}
	if category.DisplayOrder < 0 {
		return app_error.Validation("display order of %q must not be negative", category.Name)
	}
	return nil
}

func duplicateName(category *repository.Category, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return app_error.Conflict("category %q already exists for this event", category.Name)
	}
	return err
}

func (s *CategoryService) CreateCategory(eventId int, category *repository.Category) (*repository.Category, error) {
	if _, err := s.eventService.GetEventById(eventId); err != nil {
		return nil, err
	}
	category.Id = 0
	category.EventId = eventId
	category.Name = strings.TrimSpace(category.Name)
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if category.DisplayOrder == 0 {
		order, err := s.category_repository.NextDisplayOrder(eventId)
		if err != nil {
			return nil, err
		}
		category.DisplayOrder = order
	}
	created, err := s.category_repository.CreateCategory(category)
	if err != nil {
		return nil, duplicateName(category, err)
	}
	return created, nil
}

func (s *CategoryService) UpdateCategory(eventId int, categoryId int, update *CategoryUpdate) (*repository.Category, error) {
	category, err := s.GetCategory(eventId, categoryId)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		category.Name = strings.TrimSpace(*update.Name)
	}
	if update.DisplayOrder != nil {
		category.DisplayOrder = *update.DisplayOrder
	}
	if update.Required != nil {
		category.Required = *update.Required
	}
	if update.AllowNone != nil {
		category.AllowNone = *update.AllowNone
	}
	if update.MaxScore != nil {
		category.MaxScore = *update.MaxScore
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	saved, err := s.category_repository.SaveCategory(category)
	if err != nil {
		return nil, duplicateName(category, err)
	}
	return saved, nil
}

func (s *CategoryService) ReorderCategories(eventId int, categoryIds []int) ([]*repository.Category, error) {
	if len(utils.Uniques(categoryIds)) != len(categoryIds) {
		return nil, app_error.Validation("category ids must not repeat")
	}
	if err := s.category_repository.Reorder(eventId, categoryIds); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("category does not belong to event %d", eventId)
		}
		return nil, err
	}
	return s.category_repository.GetCategoriesForEvent(eventId)
}

func (s *CategoryService) DeleteCategory(eventId int, categoryId int) error {
	category, err := s.GetCategory(eventId, categoryId)
	if err != nil {
		return err
	}
	scored, err := s.category_repository.CountScoredItems(category.Id)
	if err != nil {
		return err
	}
	if scored > 0 {
		return app_error.Conflict("category %q already has scores", category.Name)
	}
	return s.category_repository.DeleteCategory(category.Id)
}
