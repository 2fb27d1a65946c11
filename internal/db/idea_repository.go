package db

import (
	"github.com/calple/calple/internal/models"
	"gorm.io/gorm"
)

type IdeaRepository struct {
	database *gorm.DB
}

func NewIdeaRepository(database *gorm.DB) *IdeaRepository {
	return &IdeaRepository{database: database}
}

func (repo *IdeaRepository) ListVisibleToUser(userID uint, partnerID *uint) ([]models.DateIdea, error) {
	owners := []uint{userID}
	if partnerID != nil {
		owners = append(owners, *partnerID)
	}

	ideas := make([]models.DateIdea, 0)
	if err := repo.database.
		Where("owner_id IN ?", owners).
		Order("id ASC").
		Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (repo *IdeaRepository) FindByID(ideaID uint) (models.DateIdea, bool, error) {
	idea := models.DateIdea{}
	result := repo.database.Limit(1).Find(&idea, ideaID)
	if result.Error != nil {
		return models.DateIdea{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DateIdea{}, false, nil
	}
	return idea, true, nil
}

func (repo *IdeaRepository) Create(idea *models.DateIdea) error {
	return repo.database.Create(idea).Error
}

func (repo *IdeaRepository) Delete(ideaID uint) error {
	return repo.database.Delete(&models.DateIdea{}, ideaID).Error
}
