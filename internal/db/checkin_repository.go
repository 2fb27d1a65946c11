package db

import (
	"time"

	"github.com/calple/calple/internal/models"
	"gorm.io/gorm"
)

type CheckinRepository struct {
	database *gorm.DB
}

func NewCheckinRepository(database *gorm.DB) *CheckinRepository {
	return &CheckinRepository{database: database}
}

func (repo *CheckinRepository) FindByUserAndDate(userID uint, day time.Time) (models.Checkin, bool, error) {
	checkin := models.Checkin{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, day, day.AddDate(0, 0, 1)).
		Limit(1).
		Find(&checkin)
	if result.Error != nil {
		return models.Checkin{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Checkin{}, false, nil
	}
	return checkin, true, nil
}

func (repo *CheckinRepository) Create(checkin *models.Checkin) error {
	return repo.database.Create(checkin).Error
}

func (repo *CheckinRepository) Save(checkin *models.Checkin) error {
	return repo.database.Save(checkin).Error
}
