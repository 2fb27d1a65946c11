package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/calple/calple/internal/models"
	"github.com/calple/calple/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid credentials")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	exists, err := handler.authService.RegistrationEmailExists(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		DisplayName:  displayNameOrEmail(input.DisplayName, email),
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": userView(&user)})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	handler.loginLimiter.reset(limiterKey)
	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"user": userView(&user)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"user": userView(user)})
}

func userView(user *models.User) fiber.Map {
	return fiber.Map{
		"id":          user.ID,
		"email":       user.Email,
		"displayName": user.DisplayName,
		"partnerId":   user.PartnerID,
	}
}

func displayNameOrEmail(displayName string, email string) string {
	trimmed := strings.TrimSpace(displayName)
	if trimmed == "" {
		return email
	}
	return trimmed
}
