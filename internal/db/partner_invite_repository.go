package db

import (
	"strings"

	"github.com/calple/calple/internal/models"
	"gorm.io/gorm"
)

type PartnerInviteRepository struct {
	database *gorm.DB
}

func NewPartnerInviteRepository(database *gorm.DB) *PartnerInviteRepository {
	return &PartnerInviteRepository{database: database}
}

func (repo *PartnerInviteRepository) FindByUser(userID uint) (models.PartnerInvite, bool, error) {
	invite := models.PartnerInvite{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&invite)
	if result.Error != nil {
		return models.PartnerInvite{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PartnerInvite{}, false, nil
	}
	return invite, true, nil
}

func (repo *PartnerInviteRepository) FindByCode(code string) (models.PartnerInvite, bool, error) {
	invite := models.PartnerInvite{}
	result := repo.database.
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		Limit(1).
		Find(&invite)
	if result.Error != nil {
		return models.PartnerInvite{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PartnerInvite{}, false, nil
	}
	return invite, true, nil
}

func (repo *PartnerInviteRepository) Create(invite *models.PartnerInvite) error {
	return repo.database.Create(invite).Error
}

func (repo *PartnerInviteRepository) DeleteByUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.PartnerInvite{}).Error
}
