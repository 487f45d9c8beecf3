package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Score struct {
	Id        int `gorm:"primaryKey"`
	JudgeId   int `gorm:"not null;uniqueIndex:idx_score_judge_entry"`
	EntryId   int `gorm:"not null;uniqueIndex:idx_score_judge_entry"`
	Total     int `gorm:"not null"`
	UpdatedAt time.Time

	Items []*ScoreItem `gorm:"foreignKey:ScoreId;constraint:OnDelete:CASCADE"`
	Judge *Judge       `gorm:"foreignKey:JudgeId;constraint:OnDelete:CASCADE"`
	Entry *Entry       `gorm:"foreignKey:EntryId;constraint:OnDelete:CASCADE"`
}

// ScoreItem holds one category value of a score. A nil Value means not scored yet,
// which is different from an explicit zero.
type ScoreItem struct {
	Id         int  `gorm:"primaryKey"`
	ScoreId    int  `gorm:"not null;uniqueIndex:idx_item_score_category"`
	CategoryId int  `gorm:"not null;uniqueIndex:idx_item_score_category"`
	Value      *int `gorm:"null"`

	Category *Category `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
}

// SumItems adds up the non-null item values.
func SumItems(items []*ScoreItem) int {
	total := 0
	for _, item := range items {
		if item.Value != nil {
			total += *item.Value
		}
	}
	return total
}

var ErrJudgeSubmitted = errors.New("judge has already submitted scores")

// ScoreWrite is one judge's save for one entry. Values holds only the supplied
// categories; CategoryIds lists every category of the event.
type ScoreWrite struct {
	JudgeId     int
	EntryId     int
	Values      map[int]*int
	CategoryIds []int
}

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// SaveScore writes a judge's values for an entry. The judge row stays locked for the
// whole write, so a concurrent submit either waits for it or makes it fail.
func (r *ScoreRepository) SaveScore(write *ScoreWrite) (*Score, error) {
	var score Score
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var judge Judge
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&judge, write.JudgeId).Error; err != nil {
			return err
		}
		if judge.Submitted {
			return ErrJudgeSubmitted
		}
		if err := tx.Where(Score{JudgeId: write.JudgeId, EntryId: write.EntryId}).FirstOrCreate(&score).Error; err != nil {
			return err
		}

		existing := make([]*ScoreItem, 0)
		if err := tx.Where("score_id = ?", score.Id).Find(&existing).Error; err != nil {
			return err
		}
		itemsByCategory := make(map[int]*ScoreItem, len(existing))
		for _, item := range existing {
			itemsByCategory[item.CategoryId] = item
		}

		for _, categoryId := range write.CategoryIds {
			value, supplied := write.Values[categoryId]
			item, ok := itemsByCategory[categoryId]
			switch {
			case ok && supplied:
				item.Value = value
				if err := tx.Model(item).Select("value").Updates(item).Error; err != nil {
					return err
				}
			case !ok:
				// every category gets a row, unsupplied ones stay null
				item = &ScoreItem{ScoreId: score.Id, CategoryId: categoryId}
				if supplied {
					item.Value = value
				}
				if err := tx.Create(item).Error; err != nil {
					return err
				}
				itemsByCategory[categoryId] = item
			}
		}

		items := make([]*ScoreItem, 0, len(itemsByCategory))
		for _, categoryId := range write.CategoryIds {
			items = append(items, itemsByCategory[categoryId])
		}
		score.Items = items
		score.Total = SumItems(items)
		return tx.Model(&score).Updates(map[string]any{"total": score.Total, "updated_at": time.Now()}).Error
	})
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *ScoreRepository) GetScore(judgeId int, entryId int) (*Score, error) {
	var score Score
	result := r.DB.Preload("Items").Where("judge_id = ? AND entry_id = ?", judgeId, entryId).First(&score)
	if result.Error != nil {
		return nil, result.Error
	}
	return &score, nil
}

func (r *ScoreRepository) GetScoresForJudge(judgeId int) ([]*Score, error) {
	scores := make([]*Score, 0)
	result := r.DB.Preload("Items").Where("judge_id = ?", judgeId).Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

// GetScoresForEntries loads the scores of the given entries with their items.
func (r *ScoreRepository) GetScoresForEntries(entryIds []int) ([]*Score, error) {
	scores := make([]*Score, 0)
	if len(entryIds) == 0 {
		return scores, nil
	}
	result := r.DB.Preload("Items").Where("entry_id IN ?", entryIds).Order("entry_id, judge_id").Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}
