package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/internal/service/resolver"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fixture struct {
	store    *memory.Store
	resolver *resolver.Resolver
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:    store,
		resolver: resolver.NewResolver(store.Employees(), store.Services(), store.Halls()),
	}
}

func (f *fixture) hall(t *testing.T) *domain.Hall {
	t.Helper()
	h, err := f.store.Halls().Create(context.Background(), &domain.Hall{
		Name:      "Зал",
		Capacity:  1,
		OpenTime:  types.TimeString("09:00"),
		CloseTime: types.TimeString("17:00"),
	})
	require.NoError(t, err)
	return h
}

func (f *fixture) service(t *testing.T) *domain.Service {
	t.Helper()
	s, err := f.store.Services().Create(context.Background(), &domain.Service{
		Name:            "Стрижка",
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) employee(t *testing.T, userID int64) *domain.Employee {
	t.Helper()
	e, err := f.store.Employees().Create(context.Background(), &domain.Employee{
		UserID:   userID,
		FullName: "Мастер",
	})
	require.NoError(t, err)
	return e
}

func (f *fixture) link(t *testing.T, employeeID, serviceID, hallID int64) {
	t.Helper()
	_, err := f.store.Employees().CreateLink(context.Background(), &domain.ServiceHall{
		EmployeeID: employeeID,
		ServiceID:  serviceID,
		HallID:     hallID,
	})
	require.NoError(t, err)
}

func TestResolve_SingleLink(t *testing.T) {
	// GIVEN
	f := newFixture()
	h := f.hall(t)
	s := f.service(t)
	e := f.employee(t, 100)
	f.link(t, e.ID, s.ID, h.ID)

	// WHEN
	res, err := f.resolver.Resolve(context.Background(), e.ID, s.ID)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, h.ID, res.Hall.ID)
	assert.Equal(t, s.ID, res.Service.ID)
	assert.Equal(t, e.ID, res.Employee.ID)
	assert.Equal(t, h.ID, res.Link.HallID)
}

func TestResolve_PicksLowestHall(t *testing.T) {
	// GIVEN
	f := newFixture()
	first := f.hall(t)
	second := f.hall(t)
	s := f.service(t)
	e := f.employee(t, 100)
	f.link(t, e.ID, s.ID, second.ID)
	f.link(t, e.ID, s.ID, first.ID)

	// WHEN
	res, err := f.resolver.Resolve(context.Background(), e.ID, s.ID)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, first.ID, res.Hall.ID)
}

func TestResolve_NotConfigured(t *testing.T) {
	// GIVEN сотрудник и услуга есть, связи нет
	f := newFixture()
	f.hall(t)
	s := f.service(t)
	e := f.employee(t, 100)

	// WHEN
	res, err := f.resolver.Resolve(context.Background(), e.ID, s.ID)

	// THEN
	assert.Nil(t, res)
	assert.ErrorIs(t, err, resolver.ErrNotConfigured)

	count, err := f.store.Visits().Count(context.Background(), domain.VisitFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestResolve_LinkForOtherServiceIsIgnored(t *testing.T) {
	f := newFixture()
	h := f.hall(t)
	s := f.service(t)
	other := f.service(t)
	e := f.employee(t, 100)
	f.link(t, e.ID, other.ID, h.ID)

	_, err := f.resolver.Resolve(context.Background(), e.ID, s.ID)

	assert.ErrorIs(t, err, resolver.ErrNotConfigured)
}

func TestResolve_NotFound(t *testing.T) {
	f := newFixture()
	s := f.service(t)
	e := f.employee(t, 100)

	_, err := f.resolver.Resolve(context.Background(), 999, s.ID)
	assert.ErrorIs(t, err, resolver.ErrEmployeeNotFound)

	_, err = f.resolver.Resolve(context.Background(), e.ID, 999)
	assert.ErrorIs(t, err, resolver.ErrServiceNotFound)
}
