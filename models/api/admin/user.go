package adminapimodels

import (
	"strings"

	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type CreateUserRequest struct {
	Username   string          `json:"username"`
	Password   string          `json:"password"`
	Role       models.UserRole `json:"role"`
	Department string          `json:"department"`
	Email      string          `json:"email"`
}

func (r CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" || r.Password == "" || r.Role == "" {
		return apperrors.NewValidationError("Missing fields")
	}
	if !r.Role.IsValid() {
		return apperrors.NewValidationError("Invalid role")
	}
	return nil
}

// NormalizedDepartment приводит ходовые написания отдела к каноническим,
// неизвестное значение заменяется дефолтом роли
func (r CreateUserRequest) NormalizedDepartment() models.Department {
	switch strings.ToLower(strings.TrimSpace(r.Department)) {
	case "it":
		return models.DepartmentIT
	case "hr":
		return models.DepartmentHR
	case "finance":
		return models.DepartmentFinance
	case "management", "manager":
		return models.DepartmentManagement
	case "candidate":
		return models.DepartmentCandidate
	case "employee":
		return models.DepartmentEmployee
	}
	return r.Role.DefaultDepartment()
}

type UpdateUserRequest struct {
	Email      *string            `json:"email"`
	Role       *models.UserRole   `json:"role"`
	Department *models.Department `json:"department"`
	Status     *models.UserStatus `json:"status"`
}

func (r UpdateUserRequest) Validate() error {
	if r.Role != nil && !r.Role.IsValid() {
		return apperrors.NewValidationError("Invalid role")
	}
	if r.Status != nil && *r.Status != models.UserStatusActive && *r.Status != models.UserStatusDisabled {
		return apperrors.NewValidationError("Invalid status")
	}
	return nil
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

func (r ResetPasswordRequest) Validate() error {
	if r.Password == "" {
		return apperrors.NewValidationError("Missing password")
	}
	return nil
}

type UserView struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

func Convert(rec dbmodels.User) UserView {
	return UserView{
		ID:         rec.ID,
		Username:   rec.Username,
		Email:      rec.Email,
		Role:       string(rec.Role),
		Department: string(rec.Department),
		Status:     string(rec.Status),
	}
}
