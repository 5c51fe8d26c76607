package handler

import "github.com/servnect/marketplace-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
}

type registerExpertRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	Phone     string `json:"phone"`
	Service   string `json:"service"    validate:"required"`
	DOB       string `json:"dob"`
	Location  string `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userAuthResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user"`
}

type expertAuthResponse struct {
	Token  string         `json:"token,omitempty"`
	Expert *domain.Expert `json:"expert"`
}
