package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"mynunny/internal/config"
	"mynunny/internal/models"
	"mynunny/internal/repositories"
	"mynunny/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByIdentifier(email, username string) (*models.User, error) {
	args := m.Called(email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) ExistsByIDNumber(idNumber string) (bool, error) {
	args := m.Called(idNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) CreateWithProfile(user *models.User, nunny *models.NunnyProfile, client *models.ClientProfile, otpID uint) error {
	return m.Called(user, nunny, client, otpID).Error(0)
}

func (m *MockUserRepo) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

type MockOTPRepo struct {
	mock.Mock
}

func (m *MockOTPRepo) Create(otp *models.OTP) error {
	return m.Called(otp).Error(0)
}

func (m *MockOTPRepo) FindValid(email, code string) (*models.OTP, error) {
	args := m.Called(email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OTP), args.Error(1)
}

func (m *MockOTPRepo) DeleteExpired() error {
	return m.Called().Error(0)
}

type MockResetRepo struct {
	mock.Mock
}

func (m *MockResetRepo) Create(token *models.PasswordResetToken) error {
	return m.Called(token).Error(0)
}

func (m *MockResetRepo) LatestValid(userID uint) (*models.PasswordResetToken, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PasswordResetToken), args.Error(1)
}

func (m *MockResetRepo) ConsumeAndResetPassword(userID, tokenID uint, hashedPassword string) error {
	return m.Called(userID, tokenID, hashedPassword).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOTP(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

func (m *MockMailer) SendStatusChange(ctx context.Context, email, fullName, status string) error {
	return m.Called(ctx, email, fullName, status).Error(0)
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	return m.Called(ctx, email, link).Error(0)
}

func (m *MockMailer) SendContact(ctx context.Context, name, fromEmail, message string) error {
	return m.Called(ctx, name, fromEmail, message).Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    "test-secret",
		TokenExpiry:  time.Hour,
		EmailTimeout: 2 * time.Second,
		AppBaseURL:   "http://localhost:3000",
	}
}

func registerInput() *models.RegisterInput {
	return &models.RegisterInput{
		Email:        "mary@example.com",
		Password:     "secret1",
		Role:         models.RoleNunny,
		FullName:     "Mary Wanjiku",
		Phone:        "0712345678",
		IDNumber:     "12345678",
		County:       "Nairobi",
		Constituency: "Westlands",
		Description:  "Experienced nanny",
		Services:     []string{"Childcare", "Cooking"},
	}
}

func TestRegister(t *testing.T) {
	t.Run("returns tempData with hashed password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		otpRepo := new(MockOTPRepo)
		m := new(MockMailer)

		userRepo.On("ExistsByEmail", "mary@example.com").Return(false, nil)
		otpRepo.On("Create", mock.AnythingOfType("*models.OTP")).Return(nil)
		m.On("SendOTP", mock.Anything, "mary@example.com", mock.AnythingOfType("string")).Return(nil)

		s := NewService(userRepo, otpRepo, new(MockResetRepo), m, testConfig())
		data, err := s.Register(registerInput())

		assert.NoError(t, err)
		assert.Equal(t, "mary@example.com", data.Email)
		assert.NotEqual(t, "secret1", data.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(data.Password), []byte("secret1")))

		userRepo.AssertExpectations(t)
		otpRepo.AssertExpectations(t)
		m.AssertExpectations(t)
	})

	t.Run("rejects existing email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("ExistsByEmail", "mary@example.com").Return(true, nil)

		s := NewService(userRepo, new(MockOTPRepo), new(MockResetRepo), new(MockMailer), testConfig())
		_, err := s.Register(registerInput())

		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("succeeds when mail delivery fails", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		otpRepo := new(MockOTPRepo)
		m := new(MockMailer)

		userRepo.On("ExistsByEmail", "mary@example.com").Return(false, nil)
		otpRepo.On("Create", mock.AnythingOfType("*models.OTP")).Return(nil)
		m.On("SendOTP", mock.Anything, "mary@example.com", mock.AnythingOfType("string")).
			Return(errors.New("brevo unavailable"))

		s := NewService(userRepo, otpRepo, new(MockResetRepo), m, testConfig())
		data, err := s.Register(registerInput())

		assert.NoError(t, err)
		assert.NotNil(t, data)
	})
}

func TestVerifyOTP(t *testing.T) {
	data := &models.RegistrationData{
		Email:        "mary@example.com",
		Password:     "$2a$12$placeholderhashplaceholderhashplaceholderha",
		Role:         models.RoleNunny,
		FullName:     "Mary Wanjiku",
		Phone:        "0712345678",
		IDNumber:     "12345678",
		County:       "Nairobi",
		Constituency: "Westlands",
		Description:  "Experienced nanny",
		Services:     []string{"Childcare"},
	}

	t.Run("creates user with pending nunny profile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		otpRepo := new(MockOTPRepo)

		otpRepo.On("FindValid", "mary@example.com", "123456").Return(&models.OTP{ID: 9}, nil)
		userRepo.On("ExistsByEmail", "mary@example.com").Return(false, nil)
		userRepo.On("ExistsByIDNumber", "12345678").Return(false, nil)
		userRepo.On("CreateWithProfile",
			mock.AnythingOfType("*models.User"),
			mock.AnythingOfType("*models.NunnyProfile"),
			(*models.ClientProfile)(nil),
			uint(9),
		).Run(func(args mock.Arguments) {
			u := args.Get(0).(*models.User)
			u.ID = 5
			profile := args.Get(1).(*models.NunnyProfile)
			assert.Equal(t, models.StatusPending, profile.Status)
		}).Return(nil)

		s := NewService(userRepo, otpRepo, new(MockResetRepo), new(MockMailer), testConfig())
		user, token, err := s.VerifyOTP("mary@example.com", "123456", data)

		assert.NoError(t, err)
		assert.True(t, user.Verified)
		assert.Equal(t, models.RoleNunny, user.Role)

		claims, err := utils.ParseToken(token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, uint(5), claims.UserID)
		assert.Equal(t, models.RoleNunny, claims.Role)

		userRepo.AssertExpectations(t)
		otpRepo.AssertExpectations(t)
	})

	t.Run("invalid code", func(t *testing.T) {
		otpRepo := new(MockOTPRepo)
		otpRepo.On("FindValid", "mary@example.com", "000000").Return(nil, repositories.ErrOTPNotFound)

		s := NewService(new(MockUserRepo), otpRepo, new(MockResetRepo), new(MockMailer), testConfig())
		_, _, err := s.VerifyOTP("mary@example.com", "000000", data)

		assert.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("email already registered", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		otpRepo := new(MockOTPRepo)

		otpRepo.On("FindValid", "mary@example.com", "123456").Return(&models.OTP{ID: 9}, nil)
		userRepo.On("ExistsByEmail", "mary@example.com").Return(true, nil)

		s := NewService(userRepo, otpRepo, new(MockResetRepo), new(MockMailer), testConfig())
		_, _, err := s.VerifyOTP("mary@example.com", "123456", data)

		assert.ErrorIs(t, err, ErrEmailConflict)
	})

	t.Run("id number already registered", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		otpRepo := new(MockOTPRepo)

		otpRepo.On("FindValid", "mary@example.com", "123456").Return(&models.OTP{ID: 9}, nil)
		userRepo.On("ExistsByEmail", "mary@example.com").Return(false, nil)
		userRepo.On("ExistsByIDNumber", "12345678").Return(true, nil)

		s := NewService(userRepo, otpRepo, new(MockResetRepo), new(MockMailer), testConfig())
		_, _, err := s.VerifyOTP("mary@example.com", "123456", data)

		assert.ErrorIs(t, err, ErrIDNumberConflict)
	})

	t.Run("constraint race surfaces as conflict", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		otpRepo := new(MockOTPRepo)

		otpRepo.On("FindValid", "mary@example.com", "123456").Return(&models.OTP{ID: 9}, nil)
		userRepo.On("ExistsByEmail", "mary@example.com").Return(false, nil)
		userRepo.On("ExistsByIDNumber", "12345678").Return(false, nil)
		userRepo.On("CreateWithProfile", mock.Anything, mock.Anything, mock.Anything, uint(9)).
			Return(repositories.ErrEmailTaken)

		s := NewService(userRepo, otpRepo, new(MockResetRepo), new(MockMailer), testConfig())
		_, _, err := s.VerifyOTP("mary@example.com", "123456", data)

		assert.ErrorIs(t, err, ErrEmailConflict)
	})
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	assert.NoError(t, err)

	username := "mary"
	storedUser := &models.User{
		Email:    "mary@example.com",
		Username: &username,
		Password: string(hashed),
		Role:     models.RoleClient,
	}
	storedUser.ID = 3

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByIdentifier", "mary@example.com", "").Return(storedUser, nil)

		s := NewService(userRepo, new(MockOTPRepo), new(MockResetRepo), new(MockMailer), testConfig())
		user, token, err := s.Login(&models.LoginInput{Email: "mary@example.com", Password: "secret1"})

		assert.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)

		claims, err := utils.ParseToken(token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, "mary", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByIdentifier", "mary@example.com", "").Return(storedUser, nil)

		s := NewService(userRepo, new(MockOTPRepo), new(MockResetRepo), new(MockMailer), testConfig())
		_, _, err := s.Login(&models.LoginInput{Email: "mary@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByIdentifier", "", "ghost").Return(nil, repositories.ErrUserNotFound)

		s := NewService(userRepo, new(MockOTPRepo), new(MockResetRepo), new(MockMailer), testConfig())
		_, _, err := s.Login(&models.LoginInput{Username: "ghost", Password: "secret1"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("database failure is not a credential error", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByIdentifier", "mary@example.com", "").Return(nil, repositories.ErrDatabaseOperation)

		s := NewService(userRepo, new(MockOTPRepo), new(MockResetRepo), new(MockMailer), testConfig())
		_, _, err := s.Login(&models.LoginInput{Email: "mary@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, repositories.ErrDatabaseOperation)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestForgotPassword(t *testing.T) {
	t.Run("stores hashed token and sends link", func(t *testing.T) {
		user := &models.User{Email: "mary@example.com"}
		user.ID = 3

		userRepo := new(MockUserRepo)
		resetRepo := new(MockResetRepo)
		m := new(MockMailer)

		userRepo.On("GetByEmail", "mary@example.com").Return(user, nil)
		resetRepo.On("Create", mock.MatchedBy(func(tok *models.PasswordResetToken) bool {
			return tok.UserID == 3 && tok.TokenHash != "" && tok.ExpiresAt.After(time.Now())
		})).Return(nil)
		m.On("SendPasswordReset", mock.Anything, "mary@example.com", mock.AnythingOfType("string")).Return(nil)

		s := NewService(userRepo, new(MockOTPRepo), resetRepo, m, testConfig())
		assert.NoError(t, s.ForgotPassword("mary@example.com"))

		resetRepo.AssertExpectations(t)
		m.AssertExpectations(t)
	})

	t.Run("silent for unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", "ghost@example.com").Return(nil, repositories.ErrUserNotFound)

		resetRepo := new(MockResetRepo)
		s := NewService(userRepo, new(MockOTPRepo), resetRepo, new(MockMailer), testConfig())

		assert.NoError(t, s.ForgotPassword("ghost@example.com"))
		resetRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestResetPassword(t *testing.T) {
	user := &models.User{Email: "mary@example.com"}
	user.ID = 3

	rawToken := "raw-reset-token"
	tokenHash, err := bcrypt.GenerateFromPassword([]byte(rawToken), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &models.PasswordResetToken{
		ID:        11,
		UserID:    3,
		TokenHash: string(tokenHash),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	t.Run("valid token consumes and updates", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		resetRepo := new(MockResetRepo)

		userRepo.On("GetByEmail", "mary@example.com").Return(user, nil)
		resetRepo.On("LatestValid", uint(3)).Return(stored, nil)
		resetRepo.On("ConsumeAndResetPassword", uint(3), uint(11), mock.AnythingOfType("string")).Return(nil)

		s := NewService(userRepo, new(MockOTPRepo), resetRepo, new(MockMailer), testConfig())
		err := s.ResetPassword(&models.ResetPasswordInput{
			Email:           "mary@example.com",
			Token:           rawToken,
			NewPassword:     "newpass1",
			ConfirmPassword: "newpass1",
		})

		assert.NoError(t, err)
		resetRepo.AssertExpectations(t)
	})

	t.Run("mismatched token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		resetRepo := new(MockResetRepo)

		userRepo.On("GetByEmail", "mary@example.com").Return(user, nil)
		resetRepo.On("LatestValid", uint(3)).Return(stored, nil)

		s := NewService(userRepo, new(MockOTPRepo), resetRepo, new(MockMailer), testConfig())
		err := s.ResetPassword(&models.ResetPasswordInput{
			Email:           "mary@example.com",
			Token:           "forged",
			NewPassword:     "newpass1",
			ConfirmPassword: "newpass1",
		})

		assert.ErrorIs(t, err, ErrInvalidResetToken)
		resetRepo.AssertNotCalled(t, "ConsumeAndResetPassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", "ghost@example.com").Return(nil, repositories.ErrUserNotFound)

		s := NewService(userRepo, new(MockOTPRepo), new(MockResetRepo), new(MockMailer), testConfig())
		err := s.ResetPassword(&models.ResetPasswordInput{
			Email:           "ghost@example.com",
			Token:           rawToken,
			NewPassword:     "newpass1",
			ConfirmPassword: "newpass1",
		})

		assert.ErrorIs(t, err, ErrInvalidResetToken)
	})
}
