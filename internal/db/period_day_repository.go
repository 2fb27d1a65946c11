package db

import (
	"time"

	"github.com/calple/calple/internal/models"
	"gorm.io/gorm"
)

type PeriodDayRepository struct {
	database *gorm.DB
}

func NewPeriodDayRepository(database *gorm.DB) *PeriodDayRepository {
	return &PeriodDayRepository{database: database}
}

func (repo *PeriodDayRepository) ListByUser(userID uint) ([]models.PeriodDay, error) {
	days := make([]models.PeriodDay, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *PeriodDayRepository) ListPeriodDates(userID uint) ([]time.Time, error) {
	days := make([]models.PeriodDay, 0)
	if err := repo.database.
		Select("date").
		Where("user_id = ? AND is_period = ?", userID, true).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(days))
	for _, day := range days {
		dates = append(dates, day.Date)
	}
	return dates, nil
}

func (repo *PeriodDayRepository) FindByUserAndDate(userID uint, day time.Time) (models.PeriodDay, bool, error) {
	entry := models.PeriodDay{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, day, day.AddDate(0, 0, 1)).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.PeriodDay{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodDay{}, false, nil
	}
	return entry, true, nil
}

func (repo *PeriodDayRepository) Create(entry *models.PeriodDay) error {
	return repo.database.Create(entry).Error
}

func (repo *PeriodDayRepository) Save(entry *models.PeriodDay) error {
	return repo.database.Save(entry).Error
}

func (repo *PeriodDayRepository) DeleteByUserAndDate(userID uint, day time.Time) error {
	return repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, day, day.AddDate(0, 0, 1)).
		Delete(&models.PeriodDay{}).Error
}
