package db

import (
	"github.com/calple/calple/internal/models"
	"gorm.io/gorm"
)

type CycleSettingsRepository struct {
	database *gorm.DB
}

func NewCycleSettingsRepository(database *gorm.DB) *CycleSettingsRepository {
	return &CycleSettingsRepository{database: database}
}

func (repo *CycleSettingsRepository) FindByUser(userID uint) (models.CycleSettings, bool, error) {
	settings := models.CycleSettings{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&settings)
	if result.Error != nil {
		return models.CycleSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleSettings{}, false, nil
	}
	return settings, true, nil
}

func (repo *CycleSettingsRepository) Upsert(settings *models.CycleSettings) error {
	return repo.database.Save(settings).Error
}
