package services

import (
	"errors"

	"github.com/calple/calple/internal/models"
	"github.com/calple/calple/internal/security"
)

const (
	inviteCodeLength   = 8
	inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var (
	ErrAlreadyConnected   = errors.New("already connected to a partner")
	ErrInviteNotFound     = errors.New("invite code not found")
	ErrCannotInviteSelf   = errors.New("cannot redeem own invite")
	ErrPartnerUnavailable = errors.New("inviter already connected")
)

type PartnerInviteRepository interface {
	FindByUser(userID uint) (models.PartnerInvite, bool, error)
	FindByCode(code string) (models.PartnerInvite, bool, error)
	Create(invite *models.PartnerInvite) error
	DeleteByUser(userID uint) error
}

type PartnerUserRepository interface {
	FindByID(userID uint) (models.User, error)
	SetPartner(userID uint, partnerID *uint) error
}

type PartnerService struct {
	invites PartnerInviteRepository
	users   PartnerUserRepository
	events  EventRepository
}

func NewPartnerService(invites PartnerInviteRepository, users PartnerUserRepository, events EventRepository) *PartnerService {
	return &PartnerService{invites: invites, users: users, events: events}
}

// IssueInvite hands out the user's pending connection code, minting one
// on first use.
func (service *PartnerService) IssueInvite(user *models.User) (models.PartnerInvite, error) {
	if user.PartnerID != nil {
		return models.PartnerInvite{}, ErrAlreadyConnected
	}

	invite, found, err := service.invites.FindByUser(user.ID)
	if err != nil {
		return models.PartnerInvite{}, err
	}
	if found {
		return invite, nil
	}

	code, err := security.RandomString(inviteCodeLength, inviteCodeAlphabet)
	if err != nil {
		return models.PartnerInvite{}, err
	}
	invite = models.PartnerInvite{UserID: user.ID, Code: code}
	if err := service.invites.Create(&invite); err != nil {
		return models.PartnerInvite{}, err
	}
	return invite, nil
}

// Connect redeems an invite code, linking both users symmetrically and
// consuming the invite.
func (service *PartnerService) Connect(user *models.User, code string) (models.User, error) {
	if user.PartnerID != nil {
		return models.User{}, ErrAlreadyConnected
	}

	invite, found, err := service.invites.FindByCode(code)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInviteNotFound
	}
	if invite.UserID == user.ID {
		return models.User{}, ErrCannotInviteSelf
	}

	inviter, err := service.users.FindByID(invite.UserID)
	if err != nil {
		return models.User{}, err
	}
	if inviter.PartnerID != nil {
		return models.User{}, ErrPartnerUnavailable
	}

	if err := service.users.SetPartner(user.ID, &inviter.ID); err != nil {
		return models.User{}, err
	}
	if err := service.users.SetPartner(inviter.ID, &user.ID); err != nil {
		return models.User{}, err
	}
	if err := service.invites.DeleteByUser(inviter.ID); err != nil {
		return models.User{}, err
	}
	return inviter, nil
}

// Disconnect severs the link on both sides and unshares every event the
// two had connected.
func (service *PartnerService) Disconnect(user *models.User) error {
	if user.PartnerID == nil {
		return ErrNoPartnerConnected
	}
	partnerID := *user.PartnerID

	if err := service.events.ClearConnectionsBetween(user.ID, partnerID); err != nil {
		return err
	}
	if err := service.users.SetPartner(user.ID, nil); err != nil {
		return err
	}
	return service.users.SetPartner(partnerID, nil)
}
