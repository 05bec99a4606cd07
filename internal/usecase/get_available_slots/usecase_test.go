package get_available_slots_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/internal/service/resolver"
	"github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fixture struct {
	store    *memory.Store
	uc       *get_available_slots.UseCase
	hall     *domain.Hall
	service  *domain.Service
	employee *domain.Employee
}

var now = time.Date(2030, 3, 10, 8, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, durationMinutes int) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	h, err := store.Halls().Create(ctx, &domain.Hall{Name: "Зал", Capacity: 1, OpenTime: "09:00", CloseTime: "17:00"})
	require.NoError(t, err)
	s, err := store.Services().Create(ctx, &domain.Service{Name: "Стрижка", DurationMinutes: durationMinutes})
	require.NoError(t, err)
	e, err := store.Employees().Create(ctx, &domain.Employee{UserID: 10, FullName: "Мастер"})
	require.NoError(t, err)
	_, err = store.Employees().CreateLink(ctx, &domain.ServiceHall{EmployeeID: e.ID, ServiceID: s.ID, HallID: h.ID})
	require.NoError(t, err)

	res := resolver.NewResolver(store.Employees(), store.Services(), store.Halls())
	uc := get_available_slots.NewUseCase(res, store.Visits(), domain.DefaultBookingPolicy(), logger.NewNop()).
		WithTimeProvider(fixedTime{now: now})

	return &fixture{store: store, uc: uc, hall: h, service: s, employee: e}
}

func (f *fixture) book(t *testing.T, date time.Time, start types.TimeString, duration int) {
	t.Helper()
	_, err := f.store.Visits().Create(context.Background(), &domain.Visit{
		ClientID:        1,
		EmployeeID:      f.employee.ID,
		ServiceID:       f.service.ID,
		HallID:          f.hall.ID,
		VisitDate:       date,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusPlanned,
	})
	require.NoError(t, err)
}

func TestExecute_FullDay(t *testing.T) {
	f := newFixture(t, 60)

	resp, err := f.uc.Execute(context.Background(), &get_available_slots.Request{
		EmployeeID: f.employee.ID,
		ServiceID:  f.service.ID,
		Date:       now.AddDate(0, 0, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, f.hall.ID, resp.HallID)
	assert.Len(t, resp.Slots, 8)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[7])
}

func TestExecute_MixedDurations(t *testing.T) {
	// GIVEN услуга 30 минут, существующий визит 10:00 длительностью 90 минут
	f := newFixture(t, 30)
	date := now.AddDate(0, 0, 1)
	f.book(t, date, "10:00", 90)

	// WHEN
	resp, err := f.uc.Execute(context.Background(), &get_available_slots.Request{
		EmployeeID: f.employee.ID,
		ServiceID:  f.service.ID,
		Date:       date,
	})

	// THEN окна 10:00, 10:30, 11:00 заняты
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("11:00"))
	assert.Contains(t, resp.Slots, types.TimeString("11:30"))
}

func TestExecute_OtherDateIgnored(t *testing.T) {
	f := newFixture(t, 60)
	date := now.AddDate(0, 0, 1)
	f.book(t, date.AddDate(0, 0, 1), "10:00", 60)

	resp, err := f.uc.Execute(context.Background(), &get_available_slots.Request{
		EmployeeID: f.employee.ID,
		ServiceID:  f.service.ID,
		Date:       date,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 8)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(t, 60)

	resp, err := f.uc.Execute(context.Background(), &get_available_slots.Request{
		EmployeeID: f.employee.ID,
		ServiceID:  f.service.ID,
		Date:       now.AddDate(0, 0, -1),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(t, 60)
	other, err := f.store.Services().Create(context.Background(), &domain.Service{Name: "Маникюр", DurationMinutes: 45})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     *get_available_slots.Request
		wantErr error
	}{
		{
			name:    "нет связи",
			req:     &get_available_slots.Request{EmployeeID: f.employee.ID, ServiceID: other.ID, Date: now},
			wantErr: get_available_slots.ErrNotConfigured,
		},
		{
			name:    "нет сотрудника",
			req:     &get_available_slots.Request{EmployeeID: 999, ServiceID: f.service.ID, Date: now},
			wantErr: get_available_slots.ErrEmployeeNotFound,
		},
		{
			name:    "нет даты",
			req:     &get_available_slots.Request{EmployeeID: f.employee.ID, ServiceID: f.service.ID},
			wantErr: get_available_slots.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
