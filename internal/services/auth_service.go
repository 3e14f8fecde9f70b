package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/florette/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthUserLoadFailed   = errors.New("load user failed")
	ErrAuthUserCreateFailed = errors.New("create user failed")
	ErrPasswordUpdateFailed = errors.New("update password failed")
	ErrPasswordUnchanged    = errors.New("new password must differ from current password")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Register(emailRaw string, passwordRaw string, now time.Time) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserLoadFailed, err)
	}
	if exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserCreateFailed, err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    now.UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserCreateFailed, err)
	}
	return user, nil
}

// Authenticate hides whether the email or the password was wrong.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserLoadFailed, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserLoadFailed, err)
	}
	return user, nil
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) (models.User, error) {
	user, err := service.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if currentPassword == newPassword {
		return models.User{}, ErrPasswordUnchanged
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return models.User{}, err
	}
	return service.setPassword(user, newPassword, false)
}

// ResetPassword installs a temporary password that must be changed on the
// next login.
func (service *AuthService) ResetPassword(emailRaw string, temporaryPassword string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserLoadFailed, err)
	}
	return service.setPassword(user, temporaryPassword, true)
}

func (service *AuthService) setPassword(user models.User, password string, mustChange bool) (models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	if err := service.users.UpdatePassword(user.ID, string(passwordHash), mustChange); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = mustChange
	return user, nil
}
