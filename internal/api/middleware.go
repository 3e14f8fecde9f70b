package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/florette/internal/models"
	"github.com/terraincognita07/florette/internal/services"
)

var errPasswordStateChanged = errors.New("password changed since token was issued")

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	if user.MustChangePassword && !allowedDuringPasswordChange(c.Path()) {
		return apiError(c, fiber.StatusForbidden, "password change required")
	}
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	claims, err := services.ParseAuthToken(handler.secretKey, requestToken(c), handler.now())
	if err != nil {
		return nil, err
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if !services.IsPasswordStateFingerprintMatch(claims.PasswordState, user.PasswordHash) {
		return nil, errPasswordStateChanged
	}
	return &user, nil
}

// requestToken prefers the Authorization header over the session cookie.
func requestToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(c.Cookies(authCookieName))
}

func allowedDuringPasswordChange(path string) bool {
	cleanPath := strings.TrimSuffix(strings.TrimSpace(path), "/")
	return cleanPath == "/api/auth/password" || cleanPath == "/api/auth/logout"
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// LanguageMiddleware resolves the response language from the lang query
// parameter, then Accept-Language.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	if requested := strings.TrimSpace(c.Query("lang")); requested != "" {
		language = handler.i18n.NormalizeLanguage(requested)
	}

	c.Locals(contextLanguageKey, language)
	return c.Next()
}

func (handler *Handler) currentLanguage(c *fiber.Ctx) string {
	if language, ok := c.Locals(contextLanguageKey).(string); ok && language != "" {
		return language
	}
	return handler.i18n.DefaultLanguage()
}
