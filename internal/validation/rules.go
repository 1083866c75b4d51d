package validation

import (
	"mynunny/internal/models"
)

// Registration validates a phase-1 registration payload.
func (v *Validator) Registration(input *models.RegisterInput) {
	v.Required("email", input.Email)
	v.Required("password", input.Password)
	v.Required("role", input.Role)
	v.Required("fullName", input.FullName)
	v.Required("phone", input.Phone)
	v.Required("idNumber", input.IDNumber)
	v.Required("county", input.County)
	v.Required("constituency", input.Constituency)

	if input.Email != "" {
		v.Email("email", input.Email)
	}
	if input.Password != "" {
		v.MinLength("password", input.Password, MinPasswordLength)
	}
	if input.Role != "" {
		v.Check(models.ValidRegistrationRole(input.Role), "role", "must be NUNNY or CLIENT")
	}
}

// Login validates a login payload.
func (v *Validator) Login(input *models.LoginInput) {
	if input.Email == "" && input.Username == "" {
		v.AddError("identifier", "email or username is required")
	}
	v.Required("password", input.Password)
}

// ResetPassword validates a reset-password payload.
func (v *Validator) ResetPassword(input *models.ResetPasswordInput) {
	v.Required("email", input.Email)
	v.Required("token", input.Token)
	v.Required("newPassword", input.NewPassword)
	v.Required("confirmPassword", input.ConfirmPassword)

	if input.NewPassword != "" {
		v.MinLength("newPassword", input.NewPassword, MinPasswordLength)
		v.Check(input.NewPassword == input.ConfirmPassword, "confirmPassword", "must match newPassword")
	}
}

// CreateRequest validates a service-request payload.
func (v *Validator) CreateRequest(input *models.CreateRequestInput) {
	v.Required("service", input.Service)
	v.Required("location", input.Location)
	v.Check(input.Amount >= 0, "amount", "must not be negative")
}

// Rating validates a rating submission.
func (v *Validator) Rating(input *models.RatingInput) {
	v.Check(input.NunnyUserID != 0, "nunnyUserId", "is required")
	v.IntRange("rating", input.Rating, 1, 5)
}

// Contact validates a contact-form payload.
func (v *Validator) Contact(input *models.ContactInput) {
	v.Required("name", input.Name)
	v.Required("email", input.Email)
	v.Required("message", input.Message)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
}
