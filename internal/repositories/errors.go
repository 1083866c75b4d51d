package repositories

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrRequestNotFound   = errors.New("request not found")
	ErrOTPNotFound       = errors.New("otp not found")
	ErrTokenNotFound     = errors.New("reset token not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrIDNumberTaken     = errors.New("id number already registered")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// translateUniqueViolation maps a unique-constraint failure from the driver
// to the matching conflict sentinel. The constraint is the authoritative
// guard for races that slip past the explicit pre-checks.
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch {
		case strings.Contains(pqErr.Constraint, "id_number"):
			return ErrIDNumberTaken
		case strings.Contains(pqErr.Constraint, "email"):
			return ErrEmailTaken
		}
		return ErrEmailTaken
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if strings.Contains(err.Error(), "id_number") {
			return ErrIDNumberTaken
		}
		return ErrEmailTaken
	}

	return err
}
