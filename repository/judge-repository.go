package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Judge struct {
	Id          int        `gorm:"primaryKey"`
	EventId     int        `gorm:"not null;uniqueIndex:idx_judge_event_name"`
	Name        string     `gorm:"not null;uniqueIndex:idx_judge_event_name"`
	AccessCode  string     `gorm:"not null;uniqueIndex"`
	Submitted   bool       `gorm:"not null"`
	SubmittedAt *time.Time `gorm:"null"`
}

type JudgeRepository struct {
	DB *gorm.DB
}

func NewJudgeRepository(db *gorm.DB) *JudgeRepository {
	return &JudgeRepository{DB: db}
}

func (r *JudgeRepository) GetJudgesForEvent(eventId int) ([]*Judge, error) {
	judges := make([]*Judge, 0)
	result := r.DB.Where("event_id = ?", eventId).Order("name, id").Find(&judges)
	if result.Error != nil {
		return nil, result.Error
	}
	return judges, nil
}

func (r *JudgeRepository) GetJudgeById(judgeId int) (*Judge, error) {
	var judge Judge
	result := r.DB.First(&judge, judgeId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &judge, nil
}

func (r *JudgeRepository) GetJudgeByAccessCode(eventId int, accessCode string) (*Judge, error) {
	var judge Judge
	result := r.DB.Where("event_id = ? AND access_code = ?", eventId, accessCode).First(&judge)
	if result.Error != nil {
		return nil, result.Error
	}
	return &judge, nil
}

func (r *JudgeRepository) Save(judge *Judge) (*Judge, error) {
	result := r.DB.Save(judge)
	if result.Error != nil {
		return nil, result.Error
	}
	return judge, nil
}

// SetSubmitted flips the lock under the same row lock score writes take.
func (r *JudgeRepository) SetSubmitted(judgeId int, submitted bool) (*Judge, error) {
	var judge Judge
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&judge, judgeId).Error; err != nil {
			return err
		}
		if judge.Submitted == submitted {
			return nil
		}
		judge.Submitted = submitted
		judge.SubmittedAt = nil
		if submitted {
			now := time.Now()
			judge.SubmittedAt = &now
		}
		return tx.Model(&judge).Select("submitted", "submitted_at").Updates(&judge).Error
	})
	if err != nil {
		return nil, err
	}
	return &judge, nil
}

// Submit marks the judge submitted when verify accepts the judge's scores. The scores
// are read under the judge row lock, so no score write can land between the check and
// the lock.
func (r *JudgeRepository) Submit(judgeId int, verify func(judge *Judge, scores []*Score) error) (*Judge, error) {
	var judge Judge
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&judge, judgeId).Error; err != nil {
			return err
		}
		scores := make([]*Score, 0)
		if err := tx.Preload("Items").Where("judge_id = ?", judgeId).Find(&scores).Error; err != nil {
			return err
		}
		if err := verify(&judge, scores); err != nil {
			return err
		}
		now := time.Now()
		judge.Submitted = true
		judge.SubmittedAt = &now
		return tx.Model(&judge).Select("submitted", "submitted_at").Updates(&judge).Error
	})
	if err != nil {
		return nil, err
	}
	return &judge, nil
}

func (r *JudgeRepository) CountScores(judgeId int) (int64, error) {
	var count int64
	result := r.DB.Model(&Score{}).Where("judge_id = ?", judgeId).Count(&count)
	return count, result.Error
}

func (r *JudgeRepository) Delete(judgeId int) error {
	result := r.DB.Delete(&Judge{}, judgeId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
