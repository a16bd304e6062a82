package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret1",
		UserType:  "speaker",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *SignupRequest)
	}{
		{"missing first name", func(r *SignupRequest) { r.FirstName = " " }},
		{"missing last name", func(r *SignupRequest) { r.LastName = "" }},
		{"bad email", func(r *SignupRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *SignupRequest) { r.Password = "12345" }},
		{"bad user type", func(r *SignupRequest) { r.UserType = "admin" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestVerifyOTPRequestValidate(t *testing.T) {
	assert.NoError(t, VerifyOTPRequest{Email: "ada@example.com", OTPCode: "123456"}.Validate())
	assert.Error(t, VerifyOTPRequest{Email: "", OTPCode: "123456"}.Validate())
	assert.Error(t, VerifyOTPRequest{Email: "ada@example.com", OTPCode: "123"}.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "ada@example.com", Password: "secret1"}.Validate())
	assert.Error(t, LoginRequest{Password: "secret1"}.Validate())
	assert.Error(t, LoginRequest{Email: "ada@example.com"}.Validate())
}
