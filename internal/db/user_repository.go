package db

import (
	"strings"

	"github.com/calple/calple/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var count int64
	err := repo.database.Model(&models.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	user := models.User{}
	err := repo.database.
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	return user, err
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	user := models.User{}
	err := repo.database.First(&user, userID).Error
	return user, err
}

func (repo *UserRepository) ListAll() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) SetPartner(userID uint, partnerID *uint) error {
	return repo.database.Model(&models.User{}).
		Where("id = ?", userID).
		Update("partner_id", partnerID).Error
}
