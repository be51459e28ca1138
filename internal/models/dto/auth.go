package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/Robertsonwahn/brandmatebackend/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs validation rules over the registration payload.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&r.Email, validation.Required, validation.Length(5, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
	)
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Validate runs validation rules over the login payload.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Login, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthPayload is the data section returned by register and login.
type AuthPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// ProfilePayload is the data section returned by the profile endpoint.
type ProfilePayload struct {
	User models.User `json:"user"`
}
