package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/florette/internal/db"
	"github.com/terraincognita07/florette/internal/i18n"
	"github.com/terraincognita07/florette/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName     = "florette_auth"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	now          func() time.Time

	authService  *services.AuthService
	symptomLogs  *services.SymptomLogService
	insights     *services.InsightService
	loginLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		now:          time.Now,
		authService:  services.NewAuthService(repositories.Users),
		symptomLogs:  services.NewSymptomLogService(repositories.SymptomRecords),
		insights:     services.NewInsightService(repositories.SymptomRecords),
		loginLimiter: newLoginLimiter(),
	}, nil
}

func (handler *Handler) currentTime() time.Time {
	return handler.now().In(handler.location)
}
