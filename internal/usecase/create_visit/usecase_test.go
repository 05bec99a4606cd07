package create_visit_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/internal/service/capacity"
	"github.com/m04kA/SMC-SalonService/internal/service/resolver"
	"github.com/m04kA/SMC-SalonService/internal/usecase/create_visit"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type metricsSpy struct {
	mu       sync.Mutex
	created  int
	rejected map[string]int
}

func (m *metricsSpy) IncVisitsCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *metricsSpy) IncVisitsRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[reason]++
}

var now = time.Date(2030, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store    *memory.Store
	uc       *create_visit.UseCase
	metrics  *metricsSpy
	hall     *domain.Hall
	service  *domain.Service
	employee *domain.Employee
}

func newFixture(t *testing.T, hallCapacity int) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	h, err := store.Halls().Create(ctx, &domain.Hall{Name: "Зал", Capacity: hallCapacity, OpenTime: "09:00", CloseTime: "17:00"})
	require.NoError(t, err)
	s, err := store.Services().Create(ctx, &domain.Service{Name: "Стрижка", DurationMinutes: 30})
	require.NoError(t, err)
	e, err := store.Employees().Create(ctx, &domain.Employee{UserID: 10, FullName: "Мастер"})
	require.NoError(t, err)
	_, err = store.Employees().CreateLink(ctx, &domain.ServiceHall{EmployeeID: e.ID, ServiceID: s.ID, HallID: h.ID})
	require.NoError(t, err)

	log := logger.NewNop()
	spy := &metricsSpy{rejected: make(map[string]int)}
	uc := create_visit.NewUseCase(
		resolver.NewResolver(store.Employees(), store.Services(), store.Halls()),
		capacity.NewGuard(store.Visits(), log),
		store.Visits(),
		store.TxManager(),
		spy,
		domain.DefaultBookingPolicy(),
		log,
	).WithTimeProvider(fixedTime{now: now})

	return &fixture{store: store, uc: uc, metrics: spy, hall: h, service: s, employee: e}
}

func (f *fixture) request(clientID int64, date time.Time, start types.TimeString) *create_visit.Request {
	return &create_visit.Request{
		Actor:      domain.Actor{UserID: clientID, Role: domain.RoleClient},
		EmployeeID: f.employee.ID,
		ServiceID:  f.service.ID,
		Date:       date,
		StartTime:  start,
	}
}

func (f *fixture) visitCount(t *testing.T) int {
	t.Helper()
	n, err := f.store.Visits().Count(context.Background(), domain.VisitFilter{})
	require.NoError(t, err)
	return n
}

func TestExecute_Success(t *testing.T) {
	// GIVEN
	f := newFixture(t, 1)
	tomorrow := now.AddDate(0, 0, 1)

	// WHEN
	resp, err := f.uc.Execute(context.Background(), f.request(1, tomorrow, "10:00"))

	// THEN
	require.NoError(t, err)
	assert.Equal(t, f.hall.ID, resp.HallID)
	assert.Equal(t, int64(1), resp.ClientID)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, domain.StatusPlanned, resp.Status)
	assert.Equal(t, domain.DateOf(tomorrow), resp.Date)
	assert.Equal(t, 1, f.metrics.created)
}

func TestExecute_ExactSlotCapacity(t *testing.T) {
	// GIVEN зал на 1 место, визит 10:00 на 30 минут
	f := newFixture(t, 1)
	tomorrow := now.AddDate(0, 0, 1)
	_, err := f.uc.Execute(context.Background(), f.request(1, tomorrow, "10:00"))
	require.NoError(t, err)

	// WHEN
	_, sameErr := f.uc.Execute(context.Background(), f.request(2, tomorrow, "10:00"))
	_, nextErr := f.uc.Execute(context.Background(), f.request(2, tomorrow, "10:30"))

	// THEN
	assert.ErrorIs(t, sameErr, create_visit.ErrOverbooked)
	assert.NoError(t, nextErr)
	assert.Equal(t, 2, f.visitCount(t))
	assert.Equal(t, 1, f.metrics.rejected[domain.RejectOverbooked])
}

func TestExecute_OffGridStartsRejected(t *testing.T) {
	// GIVEN зал на 1 место, визит 10:00 на 30 минут
	f := newFixture(t, 1)
	tomorrow := now.AddDate(0, 0, 1)
	_, err := f.uc.Execute(context.Background(), f.request(1, tomorrow, "10:00"))
	require.NoError(t, err)

	// WHEN записи со сдвигом внутрь занятого окна
	_, quarterErr := f.uc.Execute(context.Background(), f.request(2, tomorrow, "10:15"))
	_, oddErr := f.uc.Execute(context.Background(), f.request(3, tomorrow, "10:07"))

	// THEN
	assert.ErrorIs(t, quarterErr, create_visit.ErrInvalidTime)
	assert.ErrorIs(t, oddErr, create_visit.ErrInvalidTime)
	assert.Equal(t, 1, f.visitCount(t))
	assert.Equal(t, 2, f.metrics.rejected[domain.RejectInvalidTime])
}

func TestExecute_OverlappingStartRejected(t *testing.T) {
	// GIVEN зал на 2 места, визит 10:00 на 60 минут по другой услуге
	f := newFixture(t, 2)
	ctx := context.Background()
	tomorrow := now.AddDate(0, 0, 1)
	long, err := f.store.Services().Create(ctx, &domain.Service{Name: "Окрашивание", DurationMinutes: 60})
	require.NoError(t, err)
	_, err = f.store.Employees().CreateLink(ctx, &domain.ServiceHall{EmployeeID: f.employee.ID, ServiceID: long.ID, HallID: f.hall.ID})
	require.NoError(t, err)
	longReq := f.request(1, tomorrow, "10:00")
	longReq.ServiceID = long.ID
	_, err = f.uc.Execute(ctx, longReq)
	require.NoError(t, err)

	// WHEN 30-минутная запись на 10:30 лежит на своей сетке, но внутри 10:00-11:00
	_, overlapErr := f.uc.Execute(ctx, f.request(2, tomorrow, "10:30"))
	_, sameStartErr := f.uc.Execute(ctx, f.request(3, tomorrow, "10:00"))
	_, afterErr := f.uc.Execute(ctx, f.request(4, tomorrow, "11:00"))

	// THEN
	assert.ErrorIs(t, overlapErr, create_visit.ErrOverbooked)
	assert.NoError(t, sameStartErr, "same start shares the slot while capacity allows")
	assert.NoError(t, afterErr)
	assert.Equal(t, 3, f.visitCount(t))
}

func TestExecute_NotConfigured(t *testing.T) {
	f := newFixture(t, 1)
	other, err := f.store.Services().Create(context.Background(), &domain.Service{Name: "Маникюр", DurationMinutes: 60})
	require.NoError(t, err)
	req := f.request(1, now.AddDate(0, 0, 1), "10:00")
	req.ServiceID = other.ID

	resp, err := f.uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, create_visit.ErrNotConfigured)
	assert.Zero(t, f.visitCount(t))
	assert.Equal(t, 1, f.metrics.rejected[domain.RejectNotConfigured])
}

func TestExecute_DateAndTimeRules(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		start   types.TimeString
		wantErr error
	}{
		{name: "вчера", date: now.AddDate(0, 0, -1), start: "10:00", wantErr: create_visit.ErrInvalidDate},
		{name: "дальше горизонта", date: now.AddDate(0, 0, 8), start: "10:00", wantErr: create_visit.ErrInvalidDate},
		{name: "последний день горизонта", date: now.AddDate(0, 0, 7), start: "10:00"},
		{name: "до открытия", date: now.AddDate(0, 0, 1), start: "08:30", wantErr: create_visit.ErrInvalidTime},
		{name: "заканчивается после закрытия", date: now.AddDate(0, 0, 1), start: "16:45", wantErr: create_visit.ErrInvalidTime},
		{name: "заканчивается ровно в закрытие", date: now.AddDate(0, 0, 1), start: "16:30"},
		{name: "между точками сетки", date: now.AddDate(0, 0, 1), start: "10:15", wantErr: create_visit.ErrInvalidTime},
		{name: "произвольная минута", date: now.AddDate(0, 0, 1), start: "10:07", wantErr: create_visit.ErrInvalidTime},
		{name: "сегодня, время прошло", date: now, start: "11:30", wantErr: create_visit.ErrInvalidTime},
		{name: "сегодня, время впереди", date: now, start: "12:30"},
		{name: "пустое время", date: now, start: "", wantErr: create_visit.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)

			_, err := f.uc.Execute(context.Background(), f.request(1, tt.date, tt.start))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, f.visitCount(t))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecute_AdminBooksForClient(t *testing.T) {
	f := newFixture(t, 1)
	req := f.request(99, now.AddDate(0, 0, 1), "10:00")
	req.Actor.Role = domain.RoleAdmin
	req.ClientID = 5

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ClientID)
}

func TestExecute_ConcurrentCapacity(t *testing.T) {
	// GIVEN зал на 2 места и 10 одновременных записей на одно время
	const hallCapacity = 2
	f := newFixture(t, hallCapacity)
	tomorrow := now.AddDate(0, 0, 1)

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		overbooked int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(clientID int64) {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), f.request(clientID, tomorrow, "10:00"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, create_visit.ErrOverbooked):
				overbooked++
			}
		}(int64(i + 1))
	}
	wg.Wait()

	// THEN
	assert.Equal(t, hallCapacity, successes)
	assert.Equal(t, 10-hallCapacity, overbooked)
	assert.Equal(t, hallCapacity, f.visitCount(t))
}
