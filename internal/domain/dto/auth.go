package dto

import "github.com/campushub/api/internal/domain/entity"

type Register struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Role       string `json:"role"`
}

func (r Register) Validate() error {
	return check(r)
}

type Login struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (l Login) Validate() error {
	return check(l)
}

// Auth is the register/login response: the bearer token plus the profile.
type Auth struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
