// Package auth implements registration, login and password recovery.
package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"mynunny/internal/config"
	"mynunny/internal/models"
	"mynunny/internal/repositories"
	"mynunny/internal/services/mailer"
	"mynunny/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed cost factor for password and reset-token hashing.
const BcryptCost = 12

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrEmailConflict      = repositories.ErrEmailTaken
	ErrIDNumberConflict   = repositories.ErrIDNumberTaken
	ErrInvalidResetToken  = errors.New("invalid or expired token")
)

// Service covers the full authentication surface.
type Service interface {
	// Register runs phase 1: validates, hashes, stores an OTP and attempts
	// delivery. Returns the tempData bundle the client echoes to phase 2.
	Register(input *models.RegisterInput) (*models.RegistrationData, error)

	// VerifyOTP runs phase 2: consumes the OTP and atomically creates the
	// user plus its role profile, then mints a session token.
	VerifyOTP(email, code string, data *models.RegistrationData) (*models.User, string, error)

	// Login authenticates by email or username and returns a session token.
	Login(input *models.LoginInput) (*models.User, string, error)

	// ForgotPassword stores a hashed reset token and emails the link.
	// It never reveals whether the account exists.
	ForgotPassword(email string) error

	// ResetPassword consumes a valid reset token and updates the password.
	ResetPassword(input *models.ResetPasswordInput) error
}

type service struct {
	userRepo  repositories.UserRepository
	otpRepo   repositories.OTPRepository
	resetRepo repositories.PasswordResetRepository
	mailer    mailer.Mailer
	cfg       *config.Config
}

func NewService(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	resetRepo repositories.PasswordResetRepository,
	m mailer.Mailer,
	cfg *config.Config,
) Service {
	return &service{
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		resetRepo: resetRepo,
		mailer:    m,
		cfg:       cfg,
	}
}

func (s *service) Register(input *models.RegisterInput) (*models.RegistrationData, error) {
	exists, err := s.userRepo.ExistsByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	// Hash immediately so the plaintext never outlives this call.
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), BcryptCost)
	if err != nil {
		return nil, err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, err
	}

	if err := s.otpRepo.Create(&models.OTP{
		Email:     input.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(models.OTPValidity),
	}); err != nil {
		return nil, err
	}

	// Delivery is bounded: a slow or broken mail provider cannot hang the
	// request, the code stays in the store either way.
	mailer.SendBounded(s.cfg.EmailTimeout, "otp email", func(ctx context.Context) error {
		return s.mailer.SendOTP(ctx, input.Email, code)
	})

	return &models.RegistrationData{
		Email:         input.Email,
		Password:      string(hashed),
		Role:          input.Role,
		FullName:      input.FullName,
		Phone:         input.Phone,
		IDNumber:      input.IDNumber,
		County:        input.County,
		Constituency:  input.Constituency,
		Description:   input.Description,
		Services:      input.Services,
		ContactInfo:   input.ContactInfo,
		ServiceWanted: input.ServiceWanted,
		AmountOffered: input.AmountOffered,
	}, nil
}

func (s *service) VerifyOTP(email, code string, data *models.RegistrationData) (*models.User, string, error) {
	otp, err := s.otpRepo.FindValid(email, code)
	if err != nil {
		if errors.Is(err, repositories.ErrOTPNotFound) {
			return nil, "", ErrInvalidOTP
		}
		return nil, "", err
	}

	// Pre-check uniqueness to fail fast with a named conflict. The unique
	// constraints inside CreateWithProfile remain the authoritative guard
	// against a race between two confirmations.
	if exists, err := s.userRepo.ExistsByEmail(data.Email); err != nil {
		return nil, "", err
	} else if exists {
		return nil, "", ErrEmailConflict
	}
	if exists, err := s.userRepo.ExistsByIDNumber(data.IDNumber); err != nil {
		return nil, "", err
	} else if exists {
		return nil, "", ErrIDNumberConflict
	}

	user := &models.User{
		Email:        data.Email,
		Password:     data.Password,
		Role:         data.Role,
		FullName:     data.FullName,
		Phone:        data.Phone,
		IDNumber:     data.IDNumber,
		County:       data.County,
		Constituency: data.Constituency,
		Verified:     true,
	}

	var nunny *models.NunnyProfile
	var client *models.ClientProfile
	switch data.Role {
	case models.RoleNunny:
		nunny = &models.NunnyProfile{
			Description: data.Description,
			Services:    models.StringList(data.Services),
			ContactInfo: data.ContactInfo,
			Status:      models.StatusPending,
		}
	case models.RoleClient:
		client = &models.ClientProfile{
			ServiceWanted: models.StringList(data.ServiceWanted),
			AmountOffered: data.AmountOffered,
			ContactInfo:   data.ContactInfo,
		}
	}

	if err := s.userRepo.CreateWithProfile(user, nunny, client, otp.ID); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(&models.UserClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	}, s.cfg.JWTSecret, s.cfg.TokenExpiry)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *service) Login(input *models.LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.GetByIdentifier(input.Email, input.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	claims := &models.UserClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	}
	if user.Username != nil {
		claims.Username = *user.Username
	}

	token, err := utils.GenerateToken(claims, s.cfg.JWTSecret, s.cfg.TokenExpiry)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *service) ForgotPassword(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Same outcome as success; no account enumeration.
			return nil
		}
		return err
	}

	raw, err := utils.GenerateResetToken()
	if err != nil {
		return err
	}
	tokenHash, err := bcrypt.GenerateFromPassword([]byte(raw), BcryptCost)
	if err != nil {
		return err
	}

	if err := s.resetRepo.Create(&models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: string(tokenHash),
		ExpiresAt: time.Now().Add(models.ResetTokenValidity),
	}); err != nil {
		return err
	}

	link := s.cfg.AppBaseURL + "/reset-password?token=" + raw + "&email=" + email
	mailer.SendBounded(s.cfg.EmailTimeout, "password reset email", func(ctx context.Context) error {
		return s.mailer.SendPasswordReset(ctx, email, link)
	})

	return nil
}

func (s *service) ResetPassword(input *models.ResetPasswordInput) error {
	user, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	resetToken, err := s.resetRepo.LatestValid(user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(resetToken.TokenHash), []byte(input.Token)); err != nil {
		log.Printf("reset token mismatch for user %d", user.ID)
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), BcryptCost)
	if err != nil {
		return err
	}

	return s.resetRepo.ConsumeAndResetPassword(user.ID, resetToken.ID, string(hashed))
}
