package auth

import (
	"fmt"
	"net/mail"
	"strings"

	"speaker-booking/models/user"
)

// SignupRequest represents the request payload for creating an account
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	UserType  string `json:"user_type"`
}

func (r SignupRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("a valid email is required")
	}
	if len(r.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if !user.UserType(r.UserType).IsValid() {
		return fmt.Errorf("user type must be either 'user' or 'speaker'")
	}
	return nil
}

// LoginRequest represents the request payload for credential login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// VerifyOTPRequest represents the request payload for verifying an OTP
type VerifyOTPRequest struct {
	Email   string `json:"email"`
	OTPCode string `json:"otp_code"`
}

func (r VerifyOTPRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if len(r.OTPCode) != 6 {
		return fmt.Errorf("otp_code must be 6 digits")
	}
	return nil
}
