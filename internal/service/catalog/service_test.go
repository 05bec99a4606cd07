package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

var admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

func newService() (*catalog.Service, *memory.Store) {
	store := memory.NewStore()
	return catalog.NewService(store.Halls(), store.Services(), store.Visits(), store.TxManager(), logger.NewNop()), store
}

func TestCreateHall_Validation(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name    string
		req     models.HallRequest
		wantErr error
	}{
		{name: "корректный", req: models.HallRequest{Name: "Зал", Capacity: 2, OpenTime: "09:00", CloseTime: "17:00"}},
		{name: "открытие после закрытия", req: models.HallRequest{Name: "Зал", Capacity: 2, OpenTime: "18:00", CloseTime: "17:00"}, wantErr: catalog.ErrInvalidInput},
		{name: "открытие равно закрытию", req: models.HallRequest{Name: "Зал", Capacity: 2, OpenTime: "09:00", CloseTime: "09:00"}, wantErr: catalog.ErrInvalidInput},
		{name: "нулевая вместимость", req: models.HallRequest{Name: "Зал", Capacity: 0, OpenTime: "09:00", CloseTime: "17:00"}, wantErr: catalog.ErrInvalidInput},
		{name: "без имени", req: models.HallRequest{Capacity: 1, OpenTime: "09:00", CloseTime: "17:00"}, wantErr: catalog.ErrInvalidInput},
		{name: "кривое время", req: models.HallRequest{Name: "Зал", Capacity: 1, OpenTime: "9", CloseTime: "17:00"}, wantErr: catalog.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			resp, err := svc.CreateHall(context.Background(), admin, &req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "09:00", resp.OpenTime)
			assert.Equal(t, "17:00", resp.CloseTime)
		})
	}
}

func TestWrites_AdminOnly(t *testing.T) {
	svc, _ := newService()
	client := domain.Actor{UserID: 2, Role: domain.RoleClient}

	_, err := svc.CreateHall(context.Background(), client, &models.HallRequest{Name: "Зал", Capacity: 1, OpenTime: "09:00", CloseTime: "17:00"})
	assert.ErrorIs(t, err, catalog.ErrForbidden)

	_, err = svc.CreateService(context.Background(), client, &models.ServiceRequest{Name: "Стрижка", DurationMinutes: 30})
	assert.ErrorIs(t, err, catalog.ErrForbidden)
}

func TestUpdateService_OnlyPriceWhenInUse(t *testing.T) {
	// GIVEN услуга, на которую есть визит
	svc, store := newService()
	ctx := context.Background()
	created, err := svc.CreateService(ctx, admin, &models.ServiceRequest{
		Name:            "Стрижка",
		Price:           decimal.RequireFromString("1500.00"),
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	_, err = store.Visits().Create(ctx, &domain.Visit{
		ClientID: 1, EmployeeID: 1, ServiceID: created.ID, HallID: 1,
		VisitDate: time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: "10:00",
		DurationMinutes: 30, Status: domain.StatusPlanned,
	})
	require.NoError(t, err)

	// WHEN меняем длительность
	_, durationErr := svc.UpdateService(ctx, admin, created.ID, &models.ServiceRequest{
		Name: "Стрижка", Price: decimal.RequireFromString("1500.00"), DurationMinutes: 60,
	})

	// WHEN меняем только цену
	updated, priceErr := svc.UpdateService(ctx, admin, created.ID, &models.ServiceRequest{
		Name: "Стрижка", Price: decimal.RequireFromString("1800.50"), DurationMinutes: 30,
	})

	// THEN
	assert.ErrorIs(t, durationErr, catalog.ErrServiceInUse)
	require.NoError(t, priceErr)
	assert.True(t, decimal.RequireFromString("1800.50").Equal(updated.Price))
	assert.Equal(t, 30, updated.DurationMinutes)
}

func TestUpdateService_FreeServiceFullyEditable(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	created, err := svc.CreateService(ctx, admin, &models.ServiceRequest{Name: "Стрижка", DurationMinutes: 30})
	require.NoError(t, err)

	updated, err := svc.UpdateService(ctx, admin, created.ID, &models.ServiceRequest{Name: "Укладка", DurationMinutes: 45})

	require.NoError(t, err)
	assert.Equal(t, "Укладка", updated.Name)
	assert.Equal(t, 45, updated.DurationMinutes)
}

func TestUpdateService_Validation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.CreateService(ctx, admin, &models.ServiceRequest{Name: "Стрижка", Price: decimal.NewFromInt(-1), DurationMinutes: 30})
	assert.ErrorIs(t, err, catalog.ErrInvalidInput)

	_, err = svc.CreateService(ctx, admin, &models.ServiceRequest{Name: "Стрижка", DurationMinutes: 0})
	assert.ErrorIs(t, err, catalog.ErrInvalidInput)

	_, err = svc.UpdateService(ctx, admin, 999, &models.ServiceRequest{Name: "Стрижка", DurationMinutes: 30})
	assert.ErrorIs(t, err, catalog.ErrServiceNotFound)
}
