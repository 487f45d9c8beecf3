package repository

import (
	"parade/utils"

	"gorm.io/gorm"
)

type Category struct {
	Id           int    `gorm:"primaryKey"`
	EventId      int    `gorm:"not null;uniqueIndex:idx_category_event_name"`
	Name         string `gorm:"not null;uniqueIndex:idx_category_event_name,expression:lower(name)"`
	DisplayOrder int    `gorm:"not null"`
	Required     bool   `gorm:"not null"`
	AllowNone    bool   `gorm:"not null"`
	MaxScore     int    `gorm:"not null"`
}

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// GetCategoriesForEvent returns the categories of an event in display order.
func (r *CategoryRepository) GetCategoriesForEvent(eventId int) ([]*Category, error) {
	categories := make([]*Category, 0)
	result := r.DB.Where("event_id = ?", eventId).Order("display_order, id").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (r *CategoryRepository) GetAllCategories() ([]*Category, error) {
	categories := make([]*Category, 0)
	result := r.DB.Order("display_order, id").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (r *CategoryRepository) GetCategoryById(categoryId int) (*Category, error) {
	var category Category
	result := r.DB.First(&category, categoryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) NextDisplayOrder(eventId int) (int, error) {
	var maxOrder *int
	result := r.DB.Model(&Category{}).Where("event_id = ?", eventId).Select("MAX(display_order)").Scan(&maxOrder)
	if result.Error != nil {
		return 0, result.Error
	}
	if maxOrder == nil {
		return 1, nil
	}
	return *maxOrder + 1, nil
}

func (r *CategoryRepository) SaveCategory(category *Category) (*Category, error) {
	result := r.DB.Save(category)
	if result.Error != nil {
		return nil, result.Error
	}
	return category, nil
}

// CreateCategory inserts a category and adds a null item for it to every score already
// stored for the event's entries.
func (r *CategoryRepository) CreateCategory(category *Category) (*Category, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(category).Error; err != nil {
			return err
		}
		scoreIds := make([]int, 0)
		err := tx.Model(&Score{}).
			Where("entry_id IN (?)", tx.Model(&Entry{}).Select("id").Where("event_id = ?", category.EventId)).
			Pluck("id", &scoreIds).Error
		if err != nil {
			return err
		}
		if len(scoreIds) == 0 {
			return nil
		}
		items := utils.Map(scoreIds, func(scoreId int) *ScoreItem {
			return &ScoreItem{ScoreId: scoreId, CategoryId: category.Id}
		})
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Reorder assigns display orders 1..n following categoryIds.
func (r *CategoryRepository) Reorder(eventId int, categoryIds []int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i, categoryId := range categoryIds {
			result := tx.Model(&Category{}).
				Where("id = ? AND event_id = ?", categoryId, eventId).
				Update("display_order", i+1)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// CountScoredItems counts the non-null score items stored for a category.
func (r *CategoryRepository) CountScoredItems(categoryId int) (int64, error) {
	var count int64
	result := r.DB.Model(&ScoreItem{}).Where("category_id = ? AND value IS NOT NULL", categoryId).Count(&count)
	return count, result.Error
}

func (r *CategoryRepository) DeleteCategory(categoryId int) error {
	result := r.DB.Delete(&Category{}, categoryId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
