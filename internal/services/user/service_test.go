package user

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"mynunny/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(id uint) (*models.NunnyProfile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NunnyProfile), args.Error(1)
}

func (m *MockProfileRepo) GetByUserID(userID uint) (*models.NunnyProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NunnyProfile), args.Error(1)
}

func (m *MockProfileRepo) UpdateStatus(id uint, status string) (*models.NunnyProfile, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NunnyProfile), args.Error(1)
}

func (m *MockProfileRepo) ListAll() ([]models.NunnyProfile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NunnyProfile), args.Error(1)
}

func (m *MockProfileRepo) ListApproved() ([]models.NunnyProfile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NunnyProfile), args.Error(1)
}

func (m *MockProfileRepo) AppendService(userID uint, term string) error {
	return m.Called(userID, term).Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadProfilePicture(ctx context.Context, r io.Reader) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}

func nunnyUser(id uint) *models.User {
	u := &models.User{Role: models.RoleNunny, FullName: "Mary Wanjiku", County: "Nairobi"}
	u.ID = id
	return u
}

func TestUpdateProfile(t *testing.T) {
	t.Run("updates fields and appends service term", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)

		userRepo.On("GetByID", uint(7)).Return(nunnyUser(7), nil)
		userRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
			return u.FullName == "Mary W. Kamau" && u.County == "Kiambu"
		})).Return(nil)
		profileRepo.On("AppendService", uint(7), "Laundry").Return(nil)

		s := NewService(userRepo, profileRepo, new(MockUploader))
		updated, err := s.UpdateProfile(context.Background(), 7, &UpdateProfileInput{
			FullName:       "Mary W. Kamau",
			LocationCounty: "Kiambu",
			NewServiceTerm: "Laundry",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Mary W. Kamau", updated.FullName)
		profileRepo.AssertExpectations(t)
	})

	t.Run("uploads picture and stores secure url", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uploads := new(MockUploader)

		userRepo.On("GetByID", uint(7)).Return(nunnyUser(7), nil)
		uploads.On("UploadProfilePicture", mock.Anything, mock.Anything).
			Return("https://res.cloudinary.com/demo/profile_pictures/abc.jpg", nil)
		userRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
			return u.ProfilePictureURL != nil &&
				*u.ProfilePictureURL == "https://res.cloudinary.com/demo/profile_pictures/abc.jpg"
		})).Return(nil)

		s := NewService(userRepo, new(MockProfileRepo), uploads)
		_, err := s.UpdateProfile(context.Background(), 7, &UpdateProfileInput{
			Picture: strings.NewReader("fake image bytes"),
		})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("upload failure aborts the edit", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uploads := new(MockUploader)

		userRepo.On("GetByID", uint(7)).Return(nunnyUser(7), nil)
		uploads.On("UploadProfilePicture", mock.Anything, mock.Anything).
			Return("", errors.New("cloudinary down"))

		s := NewService(userRepo, new(MockProfileRepo), uploads)
		_, err := s.UpdateProfile(context.Background(), 7, &UpdateProfileInput{
			FullName: "Mary W. Kamau",
			Picture:  strings.NewReader("fake image bytes"),
		})

		assert.ErrorIs(t, err, ErrPictureUpload)
		userRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("service term failure does not fail the edit", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)

		userRepo.On("GetByID", uint(7)).Return(nunnyUser(7), nil)
		userRepo.On("Update", mock.Anything).Return(nil)
		profileRepo.On("AppendService", uint(7), "Laundry").Return(errors.New("db hiccup"))

		s := NewService(userRepo, profileRepo, new(MockUploader))
		_, err := s.UpdateProfile(context.Background(), 7, &UpdateProfileInput{
			NewServiceTerm: "Laundry",
		})

		assert.NoError(t, err)
	})

	t.Run("cache-served user without a hash still updates", func(t *testing.T) {
		// Cached copies of a user never carry the password hash. The edit
		// must go through, and the repository contract keeps the stored
		// credential out of the write.
		stripped := nunnyUser(7)
		stripped.Password = ""

		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", uint(7)).Return(stripped, nil)
		userRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
			return u.FullName == "Mary W. Kamau" && u.Password == ""
		})).Return(nil)

		s := NewService(userRepo, new(MockProfileRepo), new(MockUploader))
		updated, err := s.UpdateProfile(context.Background(), 7, &UpdateProfileInput{
			FullName: "Mary W. Kamau",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Mary W. Kamau", updated.FullName)
		userRepo.AssertExpectations(t)
	})

	t.Run("client role never touches the nunny profile", func(t *testing.T) {
		client := &models.User{Role: models.RoleClient}
		client.ID = 3

		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)

		userRepo.On("GetByID", uint(3)).Return(client, nil)
		userRepo.On("Update", mock.Anything).Return(nil)

		s := NewService(userRepo, profileRepo, new(MockUploader))
		_, err := s.UpdateProfile(context.Background(), 3, &UpdateProfileInput{
			NewServiceTerm: "Laundry",
		})

		assert.NoError(t, err)
		profileRepo.AssertNotCalled(t, "AppendService", mock.Anything, mock.Anything)
	})
}
