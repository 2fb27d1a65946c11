package services

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/calple/calple/internal/models"
	"github.com/google/uuid"
)

var (
	ErrIdeaTitleRequired = errors.New("idea title required")
	ErrIdeaNotFound      = errors.New("idea not found")
	ErrIdeaForbidden     = errors.New("idea belongs to another user")
	ErrNoIdeasToSpin     = errors.New("no ideas to spin")
)

// SpinResult is one roulette outcome. The ID lets both partners recognize
// a shared spin instead of each seeing a different roll.
type SpinResult struct {
	ID   string
	Idea models.DateIdea
}

type IdeaRepository interface {
	ListVisibleToUser(userID uint, partnerID *uint) ([]models.DateIdea, error)
	FindByID(ideaID uint) (models.DateIdea, bool, error)
	Create(idea *models.DateIdea) error
	Delete(ideaID uint) error
}

type IdeaService struct {
	ideas IdeaRepository
}

func NewIdeaService(ideas IdeaRepository) *IdeaService {
	return &IdeaService{ideas: ideas}
}

func (service *IdeaService) ListForCouple(user *models.User) ([]models.DateIdea, error) {
	return service.ideas.ListVisibleToUser(user.ID, user.PartnerID)
}

func (service *IdeaService) Create(ownerID uint, title string, category string) (models.DateIdea, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.DateIdea{}, ErrIdeaTitleRequired
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "any"
	}

	idea := models.DateIdea{OwnerID: ownerID, Title: title, Category: category}
	if err := service.ideas.Create(&idea); err != nil {
		return models.DateIdea{}, err
	}
	return idea, nil
}

func (service *IdeaService) Delete(ownerID uint, ideaID uint) error {
	idea, found, err := service.ideas.FindByID(ideaID)
	if err != nil {
		return err
	}
	if !found {
		return ErrIdeaNotFound
	}
	if idea.OwnerID != ownerID {
		return ErrIdeaForbidden
	}
	return service.ideas.Delete(ideaID)
}

// Spin picks one idea from the couple's pool uniformly at random,
// optionally restricted to a category.
func (service *IdeaService) Spin(user *models.User, category string) (SpinResult, error) {
	ideas, err := service.ListForCouple(user)
	if err != nil {
		return SpinResult{}, err
	}

	category = strings.TrimSpace(category)
	pool := filterIdeasByCategory(ideas, category)
	if len(pool) == 0 {
		return SpinResult{}, ErrNoIdeasToSpin
	}

	position, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return SpinResult{}, err
	}

	return SpinResult{
		ID:   uuid.NewString(),
		Idea: pool[position.Int64()],
	}, nil
}

func filterIdeasByCategory(ideas []models.DateIdea, category string) []models.DateIdea {
	if category == "" || category == "any" {
		return ideas
	}
	filtered := make([]models.DateIdea, 0, len(ideas))
	for _, idea := range ideas {
		if idea.Category == category {
			filtered = append(filtered, idea)
		}
	}
	return filtered
}
