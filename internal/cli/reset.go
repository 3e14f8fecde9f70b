package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/florette/internal/db"
	"github.com/terraincognita07/florette/internal/security"
	"github.com/terraincognita07/florette/internal/services"
)

var (
	ErrResetEmailInvalid = errors.New("a valid email is required")
	ErrResetUserNotFound = errors.New("user not found")
)

// RunResetPasswordCommand replaces the password of the account behind email
// with a random temporary one and forces a change on next login.
func RunResetPasswordCommand(dbPath string, email string, out io.Writer) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return ErrResetEmailInvalid
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	temporaryPassword, err := security.TemporaryPassword(security.TemporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	repositories := db.NewRepositories(database)
	authService := services.NewAuthService(repositories.Users)
	if _, err := authService.ResetPassword(normalizedEmail, temporaryPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fmt.Errorf("%w: %s", ErrResetUserNotFound, normalizedEmail)
		}
		return fmt.Errorf("reset password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "User must change password on next login.")
	return nil
}
