package authhandler

import (
	"hr-automation-hub/db"
	candidatestore "hr-automation-hub/lib/candidate/store"
	userstore "hr-automation-hub/lib/users/store"
	authutils "hr-automation-hub/lib/utils/auth-utils"
	"hr-automation-hub/models"
	authapimodels "hr-automation-hub/models/api/auth"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	// Register заводит пользователя-кандидата и его профиль в воронке
	Register(data authapimodels.RegisterRequest) (*authapimodels.AuthResponse, error)
	Login(data authapimodels.LoginRequest) (*authapimodels.AuthResponse, error)
	Refresh(refreshToken string) (*authapimodels.Tokens, error)
	Me(userID string) (*dbmodels.User, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore:      userstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore      userstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Register(data authapimodels.RegisterRequest) (*authapimodels.AuthResponse, error) {
	exist, err := i.userStore.ExistByUsername(data.Username)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, apperrors.NewConflictError("Username already taken")
	}
	userID, err := i.userStore.Create(dbmodels.User{
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: authutils.GetMD5Hash(data.Password),
		Role:         models.UserRoleCandidate,
		Department:   models.DepartmentCandidate,
		Status:       models.UserStatusActive,
	})
	if err != nil {
		return nil, err
	}
	name := data.Name
	if name == "" {
		name = data.Username
	}
	_, err = i.candidateStore.Create(dbmodels.Candidate{
		UserID: &userID,
		Name:   name,
		Email:  data.Email,
		Phone:  data.Phone,
	})
	if err != nil {
		return nil, err
	}
	return i.authResponse(userID, data.Username, models.UserRoleCandidate)
}

func (i impl) Login(data authapimodels.LoginRequest) (*authapimodels.AuthResponse, error) {
	user, err := i.userStore.GetByUsername(data.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash != authutils.GetMD5Hash(data.Password) {
		return nil, apperrors.NewAuthorizationError("Invalid credentials")
	}
	if !user.IsActive() {
		return nil, apperrors.NewAuthorizationError("Account disabled")
	}
	return i.authResponse(user.ID, user.Username, user.Role)
}

func (i impl) Refresh(refreshToken string) (*authapimodels.Tokens, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return nil, apperrors.NewAuthorizationError("Invalid refresh token")
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, apperrors.NewAuthorizationError("Invalid refresh token")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive() {
		return nil, apperrors.NewAuthorizationError("Account disabled")
	}
	return i.tokens(user.ID, user.Username, user.Role)
}

func (i impl) Me(userID string) (*dbmodels.User, error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	return user, nil
}

func (i impl) tokens(userID, username string, role models.UserRole) (*authapimodels.Tokens, error) {
	access, err := authutils.GetToken(userID, username, role)
	if err != nil {
		return nil, err
	}
	refresh, err := authutils.GetRefreshToken(userID, username, role)
	if err != nil {
		return nil, err
	}
	return &authapimodels.Tokens{Access: access, Refresh: refresh}, nil
}

func (i impl) authResponse(userID, username string, role models.UserRole) (*authapimodels.AuthResponse, error) {
	tokens, err := i.tokens(userID, username, role)
	if err != nil {
		return nil, err
	}
	return &authapimodels.AuthResponse{
		User: authapimodels.UserView{
			ID:       userID,
			Username: username,
			Role:     string(role),
		},
		Tokens: *tokens,
	}, nil
}
