package capacity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	visitRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/visit"
	"github.com/m04kA/SMC-SalonService/internal/service/capacity"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var visitDay = time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC)

// setup создаёт зал 09:00-17:00 и визиты по existing длительностью durationMinutes
func setup(t *testing.T, capacityN, durationMinutes int, existing ...types.TimeString) (*memory.Store, *domain.Hall, []*domain.Visit) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	hall, err := store.Halls().Create(ctx, &domain.Hall{
		Name:      "Зал",
		Capacity:  capacityN,
		OpenTime:  types.TimeString("09:00"),
		CloseTime: types.TimeString("17:00"),
	})
	require.NoError(t, err)

	visits := make([]*domain.Visit, 0, len(existing))
	for i, start := range existing {
		v, err := store.Visits().Create(ctx, &domain.Visit{
			ClientID:        int64(i + 1),
			EmployeeID:      1,
			ServiceID:       1,
			HallID:          hall.ID,
			VisitDate:       visitDay,
			StartTime:       start,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusPlanned,
		})
		require.NoError(t, err)
		visits = append(visits, v)
	}

	return store, hall, visits
}

func admit(store *memory.Store, hall *domain.Hall, start types.TimeString, durationMinutes int, exclude int64) error {
	guard := capacity.NewGuard(store.Visits(), logger.NewNop())
	return store.TxManager().Do(context.Background(), func(ctx context.Context) error {
		return guard.Admit(ctx, hall, visitDay, start, durationMinutes, exclude)
	})
}

func TestAdmit_UnderCapacity(t *testing.T) {
	store, hall, _ := setup(t, 2, 30, "10:00")

	err := admit(store, hall, "10:00", 30, 0)

	assert.NoError(t, err)
}

func TestAdmit_AtCapacity(t *testing.T) {
	// GIVEN зал на 2 места, оба заняты в 10:00
	store, hall, _ := setup(t, 2, 30, "10:00", "10:00")

	// WHEN
	err := admit(store, hall, "10:00", 30, 0)

	// THEN
	assert.ErrorIs(t, err, capacity.ErrOverbooked)
}

func TestAdmit_AdjacentWindowAdmitted(t *testing.T) {
	// GIVEN зал на 1 место, визит 10:00-10:30
	store, hall, _ := setup(t, 1, 30, "10:00")

	// THEN соседнее окно 10:30 проходит, тот же 10:00 нет
	assert.NoError(t, admit(store, hall, "10:30", 30, 0))
	assert.ErrorIs(t, admit(store, hall, "10:00", 30, 0), capacity.ErrOverbooked)
}

func TestAdmit_OverlapWithDifferentStartRejected(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		existing int
		start    types.TimeString
		duration int
	}{
		{name: "request starts inside a longer visit", capacity: 1, existing: 60, start: "10:30", duration: 30},
		{name: "request runs into a later visit", capacity: 1, existing: 30, start: "09:30", duration: 60},
		{name: "free capacity does not allow a shifted start", capacity: 3, existing: 60, start: "10:30", duration: 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// GIVEN визит в 10:00
			store, hall, _ := setup(t, tc.capacity, tc.existing, "10:00")

			// WHEN
			err := admit(store, hall, tc.start, tc.duration, 0)

			// THEN
			assert.ErrorIs(t, err, capacity.ErrOverbooked)
		})
	}
}

func TestAdmit_SameStartDifferentDurationSharesSlot(t *testing.T) {
	store, hall, _ := setup(t, 2, 60, "10:00")

	err := admit(store, hall, "10:00", 30, 0)

	assert.NoError(t, err)
}

func TestAdmit_ExcludesEditedVisit(t *testing.T) {
	store, hall, visits := setup(t, 1, 60, "10:00")

	// WHEN визит сдвигается внутрь собственного интервала
	err := admit(store, hall, "10:30", 30, visits[0].ID)

	// THEN
	assert.NoError(t, err)
}

func TestAdmit_CompletedVisitsStillCount(t *testing.T) {
	store, hall, _ := setup(t, 1, 30, "10:00")
	_, err := store.Visits().CompletePast(context.Background(), visitDay, "23:59")
	require.NoError(t, err)

	assert.ErrorIs(t, admit(store, hall, "10:00", 30, 0), capacity.ErrOverbooked)
}

func TestAdmit_RequiresTransaction(t *testing.T) {
	store, hall, _ := setup(t, 1, 30)
	guard := capacity.NewGuard(store.Visits(), logger.NewNop())

	err := guard.Admit(context.Background(), hall, visitDay, "10:00", 30, 0)

	assert.ErrorIs(t, err, capacity.ErrInternal)
	assert.ErrorContains(t, err, visitRepo.ErrNotInTransaction.Error())
}
