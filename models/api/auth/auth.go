package authapimodels

import (
	"strings"

	"hr-automation-hub/models/apperrors"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" || r.Password == "" {
		return apperrors.NewValidationError("Username and password required")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" || r.Password == "" {
		return apperrors.NewValidationError("Username and password required")
	}
	return nil
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

func (r RefreshRequest) Validate() error {
	if r.Refresh == "" {
		return apperrors.NewValidationError("Missing refresh token")
	}
	return nil
}

type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	User   UserView `json:"user"`
	Tokens Tokens   `json:"tokens"`
}
