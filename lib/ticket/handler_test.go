package tickethandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"hr-automation-hub/models"
	ticketapimodels "hr-automation-hub/models/api/ticket"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type fakeTicketStore struct {
	seq     int
	records map[string]*dbmodels.Ticket
	loads   map[string]int64
	saveErr error
	// вызывается перед проверкой версии, имитирует параллельную запись
	beforeSave func()
}

func newFakeTicketStore() *fakeTicketStore {
	return &fakeTicketStore{
		records: map[string]*dbmodels.Ticket{},
		loads:   map[string]int64{},
	}
}

func (f *fakeTicketStore) Create(rec dbmodels.Ticket) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("ticket-%d", f.seq)
	f.records[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeTicketStore) GetByID(id string) (*dbmodels.Ticket, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeTicketStore) SaveWithVersion(rec dbmodels.Ticket, expectedVersion int64) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.beforeSave != nil {
		f.beforeSave()
	}
	stored, ok := f.records[rec.ID]
	if !ok || stored.Version != expectedVersion {
		return apperrors.NewConflictError("Ticket was modified concurrently")
	}
	rec.Version = expectedVersion + 1
	f.records[rec.ID] = &rec
	return nil
}

func (f *fakeTicketStore) List(userID string, filter ticketapimodels.TicketFilter) ([]dbmodels.Ticket, error) {
	return nil, nil
}

func (f *fakeTicketStore) Summary(department models.Department) (ticketapimodels.Summary, error) {
	return ticketapimodels.Summary{}, nil
}

func (f *fakeTicketStore) OpenCountByUsers(userIDs []string) (map[string]int64, error) {
	result := map[string]int64{}
	for _, id := range userIDs {
		result[id] = f.loads[id]
	}
	return result, nil
}

func (f *fakeTicketStore) CountOpen() (int64, error) {
	return int64(len(f.records)), nil
}

type fakeUserStore struct {
	users []dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error)               { return rec.ID, nil }
func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error  { return nil }
func (f *fakeUserStore) Delete(id string) error                                 { return nil }
func (f *fakeUserStore) GetByUsername(username string) (*dbmodels.User, error)  { return nil, nil }
func (f *fakeUserStore) ExistByUsername(username string) (bool, error)          { return false, nil }
func (f *fakeUserStore) List() ([]dbmodels.User, error)                         { return f.users, nil }

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			clone := user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) ListActiveByDepartment(department models.Department) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	for _, user := range f.users {
		if user.Department == department && user.IsActive() {
			list = append(list, user)
		}
	}
	return list, nil
}

func itUser(id string) dbmodels.User {
	user := dbmodels.User{
		Username:   "user-" + id,
		Role:       models.UserRoleIT,
		Department: models.DepartmentIT,
		Status:     models.UserStatusActive,
	}
	user.ID = id
	return user
}

func createTicket(t *testing.T, handler Provider, dept models.Department) *dbmodels.Ticket {
	rec, err := handler.Create("actor-1", "actor", ticketapimodels.CreateTicketRequest{
		Department:  dept,
		Type:        "request",
		Title:       "ноутбук не включается",
		Description: "после обновления",
	})
	require.Nil(t, err)
	require.NotNil(t, rec)
	return rec
}

func TestTicketHandler(t *testing.T) {
	t.Run(`create sets defaults and writes empty history`, func(t *testing.T) {
		store := newFakeTicketStore()
		handler := NewHandlerWithStores(store, &fakeUserStore{})

		rec := createTicket(t, handler, models.DepartmentIT)
		require.Equal(t, models.TicketStatusCreated, rec.Status)
		require.Equal(t, models.TicketPriorityMedium, rec.Priority)
		require.Equal(t, "other", rec.Category)
		require.Equal(t, models.RouteStatusUnrouted, rec.RouteStatus)
		require.Len(t, rec.History, 0)
	})

	t.Run(`status change appends exactly one history entry`, func(t *testing.T) {
		store := newFakeTicketStore()
		handler := NewHandlerWithStores(store, &fakeUserStore{})
		rec := createTicket(t, handler, models.DepartmentIT)

		updated, err := handler.UpdateStatus("actor-1", "actor", rec.ID, ticketapimodels.UpdateStatusRequest{
			Status:  models.TicketStatusInProgress,
			Comment: "взял в работу",
		})
		require.Nil(t, err)
		require.Equal(t, models.TicketStatusInProgress, updated.Status)
		require.Len(t, updated.History, 1)
		require.Equal(t, "взял в работу", updated.History[0].Comment)
		require.Equal(t, int64(1), updated.Version)
	})

	t.Run(`illegal transition rejected without mutation`, func(t *testing.T) {
		store := newFakeTicketStore()
		handler := NewHandlerWithStores(store, &fakeUserStore{})
		rec := createTicket(t, handler, models.DepartmentIT)

		_, err := handler.UpdateStatus("actor-1", "actor", rec.ID, ticketapimodels.UpdateStatusRequest{
			Status: models.TicketStatusApproved,
		})
		require.NotNil(t, err)
		require.True(t, apperrors.IsConflict(err))

		stored, _ := store.GetByID(rec.ID)
		require.Equal(t, models.TicketStatusCreated, stored.Status)
		require.Len(t, stored.History, 0)
	})

	t.Run(`stale version save returns conflict`, func(t *testing.T) {
		store := newFakeTicketStore()
		handler := NewHandlerWithStores(store, &fakeUserStore{})
		rec := createTicket(t, handler, models.DepartmentIT)

		// параллельная запись увеличивает версию между чтением и сохранением
		store.beforeSave = func() {
			store.records[rec.ID].Version++
		}

		_, err := handler.AddComment("actor-1", "actor", rec.ID, "комментарий")
		require.NotNil(t, err)
		require.True(t, apperrors.IsConflict(err))
	})

	t.Run(`autoroute picks least loaded, id order breaks ties`, func(t *testing.T) {
		store := newFakeTicketStore()
		users := &fakeUserStore{users: []dbmodels.User{itUser("a"), itUser("b"), itUser("c")}}
		handler := NewHandlerWithStores(store, users)
		rec := createTicket(t, handler, models.DepartmentIT)

		store.loads = map[string]int64{"a": 3, "b": 1, "c": 1}

		routed, err := handler.AutoRoute("actor-1", "actor", rec.ID)
		require.Nil(t, err)
		require.NotNil(t, routed.AssignedToID)
		require.Equal(t, "b", *routed.AssignedToID)
		require.Equal(t, models.RouteStatusRouted, routed.RouteStatus)
		require.Len(t, routed.History, 1)
		require.True(t, routed.History[0].Auto)
	})

	t.Run(`routed ticket resolves directly from created`, func(t *testing.T) {
		store := newFakeTicketStore()
		users := &fakeUserStore{users: []dbmodels.User{itUser("a")}}
		handler := NewHandlerWithStores(store, users)
		rec := createTicket(t, handler, models.DepartmentIT)

		_, err := handler.AutoRoute("actor-1", "actor", rec.ID)
		require.Nil(t, err)

		resolved, err := handler.UpdateStatus("actor-1", "actor", rec.ID, ticketapimodels.UpdateStatusRequest{
			Status: models.TicketStatusResolved,
		})
		require.Nil(t, err)
		require.Equal(t, models.TicketStatusResolved, resolved.Status)
		require.Len(t, resolved.History, 2)
	})

	t.Run(`autoroute only for IT tickets`, func(t *testing.T) {
		store := newFakeTicketStore()
		users := &fakeUserStore{users: []dbmodels.User{itUser("a")}}
		handler := NewHandlerWithStores(store, users)
		rec := createTicket(t, handler, models.DepartmentHR)

		_, err := handler.AutoRoute("actor-1", "actor", rec.ID)
		require.NotNil(t, err)
		require.True(t, apperrors.IsInvalidOperation(err))

		stored, _ := store.GetByID(rec.ID)
		require.Nil(t, stored.AssignedToID)
		require.Equal(t, models.RouteStatusUnrouted, stored.RouteStatus)
	})

	t.Run(`autoroute without active members returns no capacity`, func(t *testing.T) {
		store := newFakeTicketStore()
		handler := NewHandlerWithStores(store, &fakeUserStore{})
		rec := createTicket(t, handler, models.DepartmentIT)

		_, err := handler.AutoRoute("actor-1", "actor", rec.ID)
		require.NotNil(t, err)
		require.True(t, apperrors.IsNoCapacity(err))
	})

	t.Run(`escalate forces urgent and moves created to in progress`, func(t *testing.T) {
		store := newFakeTicketStore()
		handler := NewHandlerWithStores(store, &fakeUserStore{})
		rec := createTicket(t, handler, models.DepartmentIT)

		escalated, err := handler.Escalate("actor-1", "actor", rec.ID, "горит")
		require.Nil(t, err)
		require.Equal(t, models.TicketPriorityUrgent, escalated.Priority)
		require.Equal(t, models.TicketStatusInProgress, escalated.Status)
		require.Len(t, escalated.History, 1)
		require.True(t, escalated.History[0].Escalated)
	})

	t.Run(`escalate keeps status of resolved ticket`, func(t *testing.T) {
		store := newFakeTicketStore()
		handler := NewHandlerWithStores(store, &fakeUserStore{})
		rec := createTicket(t, handler, models.DepartmentIT)
		store.records[rec.ID].Status = models.TicketStatusResolved

		escalated, err := handler.Escalate("actor-1", "actor", rec.ID, "")
		require.Nil(t, err)
		require.Equal(t, models.TicketPriorityUrgent, escalated.Priority)
		require.Equal(t, models.TicketStatusResolved, escalated.Status)
	})

	t.Run(`team load reports open count per member`, func(t *testing.T) {
		store := newFakeTicketStore()
		users := &fakeUserStore{users: []dbmodels.User{itUser("a"), itUser("b")}}
		handler := NewHandlerWithStores(store, users)

		// в нагрузку входят и тикеты, назначенные из других отделов
		store.loads = map[string]int64{"a": 2}

		loads, err := handler.TeamLoad(models.DepartmentIT)
		require.Nil(t, err)
		require.Len(t, loads, 2)
		require.Equal(t, int64(2), loads[0].OpenCount)
		require.Equal(t, int64(0), loads[1].OpenCount)
	})

	t.Run(`assign unknown user returns not found`, func(t *testing.T) {
		store := newFakeTicketStore()
		handler := NewHandlerWithStores(store, &fakeUserStore{})
		rec := createTicket(t, handler, models.DepartmentIT)

		_, err := handler.Assign("actor-1", "actor", rec.ID, "missing")
		require.NotNil(t, err)
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`get missing ticket returns not found`, func(t *testing.T) {
		handler := NewHandlerWithStores(newFakeTicketStore(), &fakeUserStore{})
		_, err := handler.GetByID("missing")
		require.NotNil(t, err)
		require.True(t, apperrors.IsNotFound(err))
	})
}
