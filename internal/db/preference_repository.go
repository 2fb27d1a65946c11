package db

import (
	"github.com/calple/calple/internal/models"
	"gorm.io/gorm"
)

type PreferenceRepository struct {
	database *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{database: database}
}

func (repo *PreferenceRepository) FindByUser(userID uint) (models.Preference, bool, error) {
	preference := models.Preference{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&preference)
	if result.Error != nil {
		return models.Preference{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Preference{}, false, nil
	}
	return preference, true, nil
}

func (repo *PreferenceRepository) Upsert(preference *models.Preference) error {
	return repo.database.Save(preference).Error
}
