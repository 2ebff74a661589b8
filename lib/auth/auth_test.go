package authhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"hr-automation-hub/config"
	authutils "hr-automation-hub/lib/utils/auth-utils"
	"hr-automation-hub/models"
	authapimodels "hr-automation-hub/models/api/auth"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type fakeUserStore struct {
	seq   int
	users map[string]*dbmodels.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*dbmodels.User{}}
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("user-%d", f.seq)
	f.users[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeUserStore) Delete(id string) error                                { return nil }

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) GetByUsername(username string) (*dbmodels.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) ExistByUsername(username string) (bool, error) {
	user, _ := f.GetByUsername(username)
	return user != nil, nil
}

func (f *fakeUserStore) List() ([]dbmodels.User, error) { return nil, nil }
func (f *fakeUserStore) ListActiveByDepartment(department models.Department) ([]dbmodels.User, error) {
	return nil, nil
}

type fakeCandidateStore struct {
	seq        int
	candidates map[string]*dbmodels.Candidate
}

func newFakeCandidateStore() *fakeCandidateStore {
	return &fakeCandidateStore{candidates: map[string]*dbmodels.Candidate{}}
}

func (f *fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("cand-%d", f.seq)
	f.candidates[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error)        { return nil, nil }
func (f *fakeCandidateStore) GetByIDs(ids []string) ([]dbmodels.Candidate, error)   { return nil, nil }
func (f *fakeCandidateStore) List() ([]dbmodels.Candidate, error)                   { return nil, nil }

func (f *fakeCandidateStore) GetByUserID(userID string) (*dbmodels.Candidate, error) {
	for _, rec := range f.candidates {
		if rec.UserID != nil && *rec.UserID == userID {
			return rec, nil
		}
	}
	return nil, nil
}

func testConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 900
	conf.Auth.JWTRefreshExpireInSec = 3600
	config.Conf = conf
}

func TestAuth(t *testing.T) {
	testConfig()

	register := func(handler Provider, username string) *authapimodels.AuthResponse {
		resp, err := handler.Register(authapimodels.RegisterRequest{
			Username: username,
			Password: "secret123",
			Email:    username + "@hub.local",
			Name:     "Иван",
		})
		require.Nil(t, err)
		return resp
	}

	t.Run(`register creates candidate user with profile`, func(t *testing.T) {
		users := newFakeUserStore()
		candidates := newFakeCandidateStore()
		handler := impl{userStore: users, candidateStore: candidates}

		resp := register(handler, "ivan")
		require.Equal(t, "ivan", resp.User.Username)
		require.Equal(t, string(models.UserRoleCandidate), resp.User.Role)
		require.NotEmpty(t, resp.Tokens.Access)
		require.NotEmpty(t, resp.Tokens.Refresh)

		user, _ := users.GetByID(resp.User.ID)
		require.NotNil(t, user)
		require.Equal(t, authutils.GetMD5Hash("secret123"), user.PasswordHash)

		profile, _ := candidates.GetByUserID(resp.User.ID)
		require.NotNil(t, profile)
		require.Equal(t, "Иван", profile.Name)
	})

	t.Run(`register with taken username returns conflict`, func(t *testing.T) {
		handler := impl{userStore: newFakeUserStore(), candidateStore: newFakeCandidateStore()}
		register(handler, "ivan")

		_, err := handler.Register(authapimodels.RegisterRequest{Username: "ivan", Password: "x"})
		require.NotNil(t, err)
		require.True(t, apperrors.IsConflict(err))
	})

	t.Run(`login with wrong password rejected`, func(t *testing.T) {
		handler := impl{userStore: newFakeUserStore(), candidateStore: newFakeCandidateStore()}
		register(handler, "ivan")

		_, err := handler.Login(authapimodels.LoginRequest{Username: "ivan", Password: "wrong"})
		require.NotNil(t, err)
		require.True(t, apperrors.IsAuthorization(err))

		resp, err := handler.Login(authapimodels.LoginRequest{Username: "ivan", Password: "secret123"})
		require.Nil(t, err)
		require.Equal(t, "ivan", resp.User.Username)
	})

	t.Run(`disabled account cannot login`, func(t *testing.T) {
		users := newFakeUserStore()
		handler := impl{userStore: users, candidateStore: newFakeCandidateStore()}
		resp := register(handler, "ivan")

		users.users[resp.User.ID].Status = models.UserStatusDisabled

		_, err := handler.Login(authapimodels.LoginRequest{Username: "ivan", Password: "secret123"})
		require.NotNil(t, err)
		require.True(t, apperrors.IsAuthorization(err))
	})

	t.Run(`refresh rejects access token`, func(t *testing.T) {
		handler := impl{userStore: newFakeUserStore(), candidateStore: newFakeCandidateStore()}
		resp := register(handler, "ivan")

		_, err := handler.Refresh(resp.Tokens.Access)
		require.NotNil(t, err)
		require.True(t, apperrors.IsAuthorization(err))

		tokens, err := handler.Refresh(resp.Tokens.Refresh)
		require.Nil(t, err)
		require.NotEmpty(t, tokens.Access)
	})
}
