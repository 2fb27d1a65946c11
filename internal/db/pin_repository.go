package db

import (
	"github.com/calple/calple/internal/models"
	"gorm.io/gorm"
)

type PinRepository struct {
	database *gorm.DB
}

func NewPinRepository(database *gorm.DB) *PinRepository {
	return &PinRepository{database: database}
}

func (repo *PinRepository) ListVisibleToUser(userID uint, partnerID *uint) ([]models.DatePin, error) {
	owners := []uint{userID}
	if partnerID != nil {
		owners = append(owners, *partnerID)
	}

	pins := make([]models.DatePin, 0)
	if err := repo.database.
		Where("owner_id IN ?", owners).
		Order("date ASC, id ASC").
		Find(&pins).Error; err != nil {
		return nil, err
	}
	return pins, nil
}

func (repo *PinRepository) FindByID(pinID uint) (models.DatePin, bool, error) {
	pin := models.DatePin{}
	result := repo.database.Limit(1).Find(&pin, pinID)
	if result.Error != nil {
		return models.DatePin{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DatePin{}, false, nil
	}
	return pin, true, nil
}

func (repo *PinRepository) Create(pin *models.DatePin) error {
	return repo.database.Create(pin).Error
}

func (repo *PinRepository) Save(pin *models.DatePin) error {
	return repo.database.Save(pin).Error
}

func (repo *PinRepository) Delete(pinID uint) error {
	return repo.database.Delete(&models.DatePin{}, pinID).Error
}
