package services

import (
	"errors"
	"strings"

	"github.com/calple/calple/internal/models"
)

var (
	ErrPinTitleRequired      = errors.New("pin title required")
	ErrPinCoordinatesInvalid = errors.New("pin coordinates out of range")
	ErrPinNotFound           = errors.New("pin not found")
	ErrPinForbidden          = errors.New("pin belongs to another user")
)

type PinRepository interface {
	ListVisibleToUser(userID uint, partnerID *uint) ([]models.DatePin, error)
	FindByID(pinID uint) (models.DatePin, bool, error)
	Create(pin *models.DatePin) error
	Save(pin *models.DatePin) error
	Delete(pinID uint) error
}

type PinService struct {
	pins PinRepository
}

func NewPinService(pins PinRepository) *PinService {
	return &PinService{pins: pins}
}

func (service *PinService) ListForCouple(user *models.User) ([]models.DatePin, error) {
	var partnerID *uint
	if user.PartnerID != nil {
		partnerID = user.PartnerID
	}
	return service.pins.ListVisibleToUser(user.ID, partnerID)
}

func (service *PinService) Create(ownerID uint, pin models.DatePin) (models.DatePin, error) {
	if err := validatePin(&pin); err != nil {
		return models.DatePin{}, err
	}
	pin.ID = 0
	pin.OwnerID = ownerID
	if err := service.pins.Create(&pin); err != nil {
		return models.DatePin{}, err
	}
	return pin, nil
}

func (service *PinService) Update(ownerID uint, pinID uint, update models.DatePin) (models.DatePin, error) {
	pin, err := service.loadOwned(ownerID, pinID)
	if err != nil {
		return models.DatePin{}, err
	}
	if err := validatePin(&update); err != nil {
		return models.DatePin{}, err
	}

	pin.Lat = update.Lat
	pin.Lng = update.Lng
	pin.Title = update.Title
	pin.Description = update.Description
	pin.Location = update.Location
	pin.Date = update.Date
	if err := service.pins.Save(&pin); err != nil {
		return models.DatePin{}, err
	}
	return pin, nil
}

func (service *PinService) Delete(ownerID uint, pinID uint) error {
	if _, err := service.loadOwned(ownerID, pinID); err != nil {
		return err
	}
	return service.pins.Delete(pinID)
}

func (service *PinService) loadOwned(ownerID uint, pinID uint) (models.DatePin, error) {
	pin, found, err := service.pins.FindByID(pinID)
	if err != nil {
		return models.DatePin{}, err
	}
	if !found {
		return models.DatePin{}, ErrPinNotFound
	}
	if pin.OwnerID != ownerID {
		return models.DatePin{}, ErrPinForbidden
	}
	return pin, nil
}

func validatePin(pin *models.DatePin) error {
	pin.Title = strings.TrimSpace(pin.Title)
	if pin.Title == "" {
		return ErrPinTitleRequired
	}
	if pin.Lat < -90 || pin.Lat > 90 || pin.Lng < -180 || pin.Lng > 180 {
		return ErrPinCoordinatesInvalid
	}
	return nil
}
