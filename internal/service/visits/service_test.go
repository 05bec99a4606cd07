package visits_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/internal/service/transitioner"
	"github.com/m04kA/SMC-SalonService/internal/service/visits"
	"github.com/m04kA/SMC-SalonService/internal/service/visits/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var now = time.Date(2030, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store    *memory.Store
	svc      *visits.Service
	employee *domain.Employee
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	log := logger.NewNop()

	e, err := store.Employees().Create(context.Background(), &domain.Employee{UserID: 10, FullName: "Мастер"})
	require.NoError(t, err)

	svc := visits.NewService(
		store.Visits(),
		store.Employees(),
		transitioner.NewTransitioner(store.Visits(), nil, log),
		log,
	).WithTimeProvider(fixedTime{now: now})

	return &fixture{store: store, svc: svc, employee: e}
}

func (f *fixture) visit(t *testing.T, clientID, employeeID int64, date time.Time, start types.TimeString) *domain.Visit {
	t.Helper()
	v, err := f.store.Visits().Create(context.Background(), &domain.Visit{
		ClientID:        clientID,
		EmployeeID:      employeeID,
		ServiceID:       1,
		HallID:          1,
		VisitDate:       date,
		StartTime:       start,
		DurationMinutes: 30,
		Status:          domain.StatusPlanned,
	})
	require.NoError(t, err)
	return v
}

func TestList_ScopedByRole(t *testing.T) {
	// GIVEN два клиента, один визит к сотруднику из фикстуры и один к другому
	f := newFixture(t)
	tomorrow := now.AddDate(0, 0, 1)
	f.visit(t, 1, f.employee.ID, tomorrow, "10:00")
	f.visit(t, 2, 999, tomorrow, "11:00")

	tests := []struct {
		name  string
		actor domain.Actor
		want  int
	}{
		{name: "клиент", actor: domain.Actor{UserID: 1, Role: domain.RoleClient}, want: 1},
		{name: "сотрудник", actor: domain.Actor{UserID: f.employee.UserID, Role: domain.RoleEmployee}, want: 1},
		{name: "сотрудник без профиля", actor: domain.Actor{UserID: 77, Role: domain.RoleEmployee}, want: 0},
		{name: "администратор", actor: domain.Actor{UserID: 500, Role: domain.RoleAdmin}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.List(context.Background(), tt.actor, &models.ListVisitsRequest{})

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Total)
			assert.Len(t, resp.Visits, tt.want)
		})
	}
}

func TestList_SweepsBeforeRead(t *testing.T) {
	// GIVEN визит сегодня в 10:00, сейчас 12:00
	f := newFixture(t)
	f.visit(t, 1, f.employee.ID, now, "10:00")
	f.visit(t, 1, f.employee.ID, now, "15:00")
	client := domain.Actor{UserID: 1, Role: domain.RoleClient}

	// WHEN
	completed, err := f.svc.List(context.Background(), client, &models.ListVisitsRequest{Status: ptr.Ptr("completed")})
	require.NoError(t, err)
	planned, err := f.svc.List(context.Background(), client, &models.ListVisitsRequest{Status: ptr.Ptr("planned")})
	require.NoError(t, err)

	// THEN
	require.Len(t, completed.Visits, 1)
	assert.Equal(t, "10:00", completed.Visits[0].StartTime)
	require.Len(t, planned.Visits, 1)
	assert.Equal(t, "15:00", planned.Visits[0].StartTime)
}

func TestList_InvalidStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), domain.Actor{UserID: 1, Role: domain.RoleClient},
		&models.ListVisitsRequest{Status: ptr.Ptr("cancelled")})

	assert.ErrorIs(t, err, visits.ErrInvalidInput)
}

func TestGetByID_Access(t *testing.T) {
	f := newFixture(t)
	v := f.visit(t, 1, f.employee.ID, now.AddDate(0, 0, 1), "10:00")

	_, err := f.svc.GetByID(context.Background(), domain.Actor{UserID: 1, Role: domain.RoleClient}, v.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), domain.Actor{UserID: f.employee.UserID, Role: domain.RoleEmployee}, v.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), domain.Actor{UserID: 2, Role: domain.RoleClient}, v.ID)
	assert.ErrorIs(t, err, visits.ErrForbidden)

	_, err = f.svc.GetByID(context.Background(), domain.Actor{UserID: 1, Role: domain.RoleClient}, 999)
	assert.ErrorIs(t, err, visits.ErrVisitNotFound)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	tomorrow := now.AddDate(0, 0, 1)
	owner := domain.Actor{UserID: 1, Role: domain.RoleClient}

	t.Run("чужой визит", func(t *testing.T) {
		v := f.visit(t, 1, f.employee.ID, tomorrow, "10:00")

		err := f.svc.Delete(context.Background(), domain.Actor{UserID: 2, Role: domain.RoleClient}, v.ID)

		assert.ErrorIs(t, err, visits.ErrForbidden)
	})

	t.Run("владелец", func(t *testing.T) {
		v := f.visit(t, 1, f.employee.ID, tomorrow, "11:00")

		require.NoError(t, f.svc.Delete(context.Background(), owner, v.ID))

		_, err := f.store.Visits().GetByID(context.Background(), v.ID)
		assert.Error(t, err)
	})

	t.Run("завершённый визит", func(t *testing.T) {
		v := f.visit(t, 1, f.employee.ID, now, "09:00")

		err := f.svc.Delete(context.Background(), owner, v.ID)

		assert.ErrorIs(t, err, visits.ErrVisitCompleted)
	})

	t.Run("администратор", func(t *testing.T) {
		v := f.visit(t, 1, f.employee.ID, tomorrow, "12:00")

		err := f.svc.Delete(context.Background(), domain.Actor{UserID: 500, Role: domain.RoleAdmin}, v.ID)

		assert.NoError(t, err)
	})
}
