package adminhandler

import (
	"hr-automation-hub/db"
	"hr-automation-hub/lib/audit"
	userstore "hr-automation-hub/lib/users/store"
	authutils "hr-automation-hub/lib/utils/auth-utils"
	"hr-automation-hub/models"
	adminapimodels "hr-automation-hub/models/api/admin"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(actorID string, data adminapimodels.CreateUserRequest) (*dbmodels.User, error)
	Update(actorID, userID string, data adminapimodels.UpdateUserRequest) (*dbmodels.User, error)
	Disable(actorID, userID string) (*dbmodels.User, error)
	ResetPassword(actorID, userID, password string) error
	Delete(actorID, userID string) error
	List() ([]dbmodels.User, error)
	GetByID(userID string) (*dbmodels.User, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Create(actorID string, data adminapimodels.CreateUserRequest) (*dbmodels.User, error) {
	exist, err := i.store.ExistByUsername(data.Username)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, apperrors.NewConflictError("Username already taken")
	}
	id, err := i.store.Create(dbmodels.User{
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: authutils.GetMD5Hash(data.Password),
		Role:         data.Role,
		Department:   data.NormalizedDepartment(),
		Status:       models.UserStatusActive,
	})
	if err != nil {
		return nil, err
	}
	i.auditAction(actorID, "user_create", id, nil, dbmodels.AuditState{
		"username": data.Username,
		"role":     data.Role,
	})
	return i.store.GetByID(id)
}

func (i impl) Update(actorID, userID string, data adminapimodels.UpdateUserRequest) (*dbmodels.User, error) {
	user, err := i.GetByID(userID)
	if err != nil {
		return nil, err
	}
	updMap := map[string]interface{}{}
	if data.Email != nil {
		updMap["email"] = *data.Email
	}
	if data.Role != nil {
		updMap["role"] = *data.Role
	}
	if data.Department != nil {
		updMap["department"] = *data.Department
	}
	if data.Status != nil {
		updMap["status"] = *data.Status
	}
	if err := i.store.Update(userID, updMap); err != nil {
		return nil, err
	}
	i.auditAction(actorID, "user_update", userID,
		dbmodels.AuditState{"role": user.Role, "status": user.Status},
		dbmodels.AuditState(map[string]any(updMap)))
	return i.store.GetByID(userID)
}

func (i impl) Disable(actorID, userID string) (*dbmodels.User, error) {
	user, err := i.GetByID(userID)
	if err != nil {
		return nil, err
	}
	err = i.store.Update(userID, map[string]interface{}{
		"status": models.UserStatusDisabled,
	})
	if err != nil {
		return nil, err
	}
	i.auditAction(actorID, "user_disable", userID,
		dbmodels.AuditState{"status": user.Status},
		dbmodels.AuditState{"status": models.UserStatusDisabled})
	return i.store.GetByID(userID)
}

func (i impl) ResetPassword(actorID, userID, password string) error {
	if _, err := i.GetByID(userID); err != nil {
		return err
	}
	err := i.store.Update(userID, map[string]interface{}{
		"password_hash": authutils.GetMD5Hash(password),
	})
	if err != nil {
		return err
	}
	i.auditAction(actorID, "user_reset_password", userID, nil, nil)
	return nil
}

func (i impl) Delete(actorID, userID string) error {
	if _, err := i.GetByID(userID); err != nil {
		return err
	}
	if err := i.store.Delete(userID); err != nil {
		return err
	}
	i.auditAction(actorID, "user_delete", userID, nil, nil)
	return nil
}

func (i impl) List() ([]dbmodels.User, error) {
	return i.store.List()
}

func (i impl) GetByID(userID string) (*dbmodels.User, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	return user, nil
}

func (i impl) auditAction(actorID, action, userID string, before, after dbmodels.AuditState) {
	if audit.Instance == nil {
		return
	}
	audit.Instance.UserAction(actorID, action, userID, before, after)
}
