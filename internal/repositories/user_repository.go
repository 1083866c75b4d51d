package repositories

import "mynunny/internal/models"

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(user *models.User) error

	// GetByID retrieves a user by their ID.
	GetByID(id uint) (*models.User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(email string) (*models.User, error)

	// GetByIdentifier retrieves a user by email or username with both
	// role profiles preloaded.
	GetByIdentifier(email, username string) (*models.User, error)

	// ExistsByEmail reports whether a user with that email exists.
	ExistsByEmail(email string) (bool, error)

	// ExistsByIDNumber reports whether a user with that ID number exists.
	ExistsByIDNumber(idNumber string) (bool, error)

	// CreateWithProfile creates the user, its role profile and deletes the
	// consumed OTP as one atomic unit.
	CreateWithProfile(user *models.User, nunny *models.NunnyProfile, client *models.ClientProfile, otpID uint) error

	// Update persists a user's editable profile columns. It never writes
	// the password column; the reset flow owns that.
	Update(user *models.User) error
}
