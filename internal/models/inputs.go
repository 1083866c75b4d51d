package models

// RegisterInput is the phase-1 registration payload.
type RegisterInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	IDNumber     string `json:"idNumber"`
	County       string `json:"county"`
	Constituency string `json:"constituency"`

	// Nunny-specific fields.
	Description string   `json:"description,omitempty"`
	Services    []string `json:"services,omitempty"`
	ContactInfo *string  `json:"contactInfo,omitempty"`

	// Client-specific fields.
	ServiceWanted []string `json:"serviceWanted,omitempty"`
	AmountOffered *float64 `json:"amountOffered,omitempty"`
}

// RegistrationData is the tempData bundle returned by phase 1 and echoed
// back in phase 2. Password holds the bcrypt digest, never the plaintext.
type RegistrationData struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	IDNumber     string `json:"idNumber"`
	County       string `json:"county"`
	Constituency string `json:"constituency"`

	Description string   `json:"description,omitempty"`
	Services    []string `json:"services,omitempty"`
	ContactInfo *string  `json:"contactInfo,omitempty"`

	ServiceWanted []string `json:"serviceWanted,omitempty"`
	AmountOffered *float64 `json:"amountOffered,omitempty"`
}

// LoginInput accepts either an email or a username.
type LoginInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResetPasswordInput is the reset-password payload.
type ResetPasswordInput struct {
	Email           string `json:"email"`
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// CreateRequestInput is the payload for posting a service request.
type CreateRequestInput struct {
	Service     string  `json:"service"`
	Amount      float64 `json:"amount"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
}

// RatingInput is the payload for submitting a rating.
type RatingInput struct {
	NunnyUserID uint    `json:"nunnyUserId"`
	Rating      int     `json:"rating"`
	Comment     *string `json:"comment,omitempty"`
}

// ContactInput is the contact-form payload.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
