package validation

import (
	"testing"

	"mynunny/internal/models"

	"github.com/stretchr/testify/assert"
)

func validRegistration() *models.RegisterInput {
	return &models.RegisterInput{
		Email:        "mary@example.com",
		Password:     "secret1",
		Role:         models.RoleNunny,
		FullName:     "Mary Wanjiku",
		Phone:        "0712345678",
		IDNumber:     "12345678",
		County:       "Nairobi",
		Constituency: "Westlands",
	}
}

func TestRegistration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterInput)
		wantErr bool
	}{
		{name: "valid nunny", mutate: func(i *models.RegisterInput) {}},
		{name: "valid client", mutate: func(i *models.RegisterInput) { i.Role = models.RoleClient }},
		{name: "missing email", mutate: func(i *models.RegisterInput) { i.Email = "" }, wantErr: true},
		{name: "malformed email", mutate: func(i *models.RegisterInput) { i.Email = "not-an-email" }, wantErr: true},
		{name: "short password", mutate: func(i *models.RegisterInput) { i.Password = "abc" }, wantErr: true},
		{name: "admin role rejected", mutate: func(i *models.RegisterInput) { i.Role = models.RoleAdmin }, wantErr: true},
		{name: "unknown role", mutate: func(i *models.RegisterInput) { i.Role = "SUPERVISOR" }, wantErr: true},
		{name: "missing id number", mutate: func(i *models.RegisterInput) { i.IDNumber = "" }, wantErr: true},
		{name: "missing county", mutate: func(i *models.RegisterInput) { i.County = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegistration()
			tt.mutate(input)

			v := New()
			v.Registration(input)
			assert.Equal(t, !tt.wantErr, v.Valid())
		})
	}
}

func TestLogin(t *testing.T) {
	v := New()
	v.Login(&models.LoginInput{Email: "mary@example.com", Password: "secret1"})
	assert.True(t, v.Valid())

	v = New()
	v.Login(&models.LoginInput{Username: "mary", Password: "secret1"})
	assert.True(t, v.Valid())

	v = New()
	v.Login(&models.LoginInput{Password: "secret1"})
	assert.False(t, v.Valid())
	assert.Equal(t, "identifier email or username is required", v.First())

	v = New()
	v.Login(&models.LoginInput{Email: "mary@example.com"})
	assert.False(t, v.Valid())
}

func TestResetPassword(t *testing.T) {
	v := New()
	v.ResetPassword(&models.ResetPasswordInput{
		Email:           "mary@example.com",
		Token:           "abc123",
		NewPassword:     "newpass1",
		ConfirmPassword: "newpass1",
	})
	assert.True(t, v.Valid())

	v = New()
	v.ResetPassword(&models.ResetPasswordInput{
		Email:           "mary@example.com",
		Token:           "abc123",
		NewPassword:     "newpass1",
		ConfirmPassword: "different",
	})
	assert.False(t, v.Valid())
}

func TestRating(t *testing.T) {
	v := New()
	v.Rating(&models.RatingInput{NunnyUserID: 7, Rating: 5})
	assert.True(t, v.Valid())

	v = New()
	v.Rating(&models.RatingInput{NunnyUserID: 7, Rating: 0})
	assert.False(t, v.Valid())

	v = New()
	v.Rating(&models.RatingInput{NunnyUserID: 7, Rating: 6})
	assert.False(t, v.Valid())

	v = New()
	v.Rating(&models.RatingInput{Rating: 3})
	assert.False(t, v.Valid())
}

func TestCreateRequest(t *testing.T) {
	v := New()
	v.CreateRequest(&models.CreateRequestInput{Service: "Childcare", Location: "Kilimani", Amount: 1500})
	assert.True(t, v.Valid())

	v = New()
	v.CreateRequest(&models.CreateRequestInput{Location: "Kilimani"})
	assert.False(t, v.Valid())

	v = New()
	v.CreateRequest(&models.CreateRequestInput{Service: "Childcare", Location: "Kilimani", Amount: -10})
	assert.False(t, v.Valid())
}

func TestContact(t *testing.T) {
	v := New()
	v.Contact(&models.ContactInput{Name: "Mary", Email: "mary@example.com", Message: "Hello"})
	assert.True(t, v.Valid())

	v = New()
	v.Contact(&models.ContactInput{Name: "Mary", Email: "bad", Message: "Hello"})
	assert.False(t, v.Valid())

	v = New()
	v.Contact(&models.ContactInput{Email: "mary@example.com"})
	assert.False(t, v.Valid())
}
