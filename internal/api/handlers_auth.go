package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/florette/internal/models"
	"github.com/terraincognita07/florette/internal/services"
)

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := parseJSONBody(c, &credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(credentials.Email, credentials.Password, handler.now())
	if err != nil {
		return registerAPIError(c, err)
	}

	token, err := handler.issueSession(c, &user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "token": token})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := handler.now()
	if handler.loginLimiter.blocked(c, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	credentials := credentialsInput{}
	if err := parseJSONBody(c, &credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.recordFailure(c, now)
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to sign in")
	}
	handler.loginLimiter.forget(c)

	token, err := handler.issueSession(c, &user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{
		"ok":                   true,
		"token":                token,
		"must_change_password": user.MustChangePassword,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword)
	if err != nil {
		return changePasswordAPIError(c, err)
	}

	token, err := handler.issueSession(c, &updated)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true, "token": token})
}

// issueSession signs a token for user and mirrors it into the auth cookie.
func (handler *Handler) issueSession(c *fiber.Ctx, user *models.User) (string, error) {
	now := handler.now()
	token, err := services.BuildAuthToken(handler.secretKey, user.ID, user.PasswordHash, services.DefaultAuthTokenTTL, now)
	if err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(services.DefaultAuthTokenTTL),
	})
	return token, nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
