package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/calple/calple/internal/db"
	"github.com/calple/calple/internal/services"
)

type Handler struct {
	repos        *db.Repositories
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	authService    *services.AuthService
	eventService   *services.EventService
	periodService  *services.PeriodService
	checkinService *services.CheckinService
	pinService     *services.PinService
	ideaService    *services.IdeaService
	partnerService *services.PartnerService

	loginLimiter *attemptLimiter
}

const authTokenTTL = 30 * 24 * time.Hour

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(repos *db.Repositories, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		repos:          repos,
		secretKey:      []byte(secretKey),
		location:       location,
		cookieSecure:   cookieSecure,
		authService:    services.NewAuthService(repos.Users),
		eventService:   services.NewEventService(repos.Events),
		periodService:  services.NewPeriodService(repos.PeriodDays, repos.CycleSettings),
		checkinService: services.NewCheckinService(repos.Checkins),
		pinService:     services.NewPinService(repos.Pins),
		ideaService:    services.NewIdeaService(repos.Ideas),
		partnerService: services.NewPartnerService(repos.PartnerInvites, repos.Users, repos.Events),
		loginLimiter:   newAttemptLimiter(),
	}
}

// today returns the current calendar day in the server's configured
// timezone, normalized to UTC midnight for storage comparisons.
func (handler *Handler) today() time.Time {
	return services.DateOnly(time.Now().In(handler.location))
}
