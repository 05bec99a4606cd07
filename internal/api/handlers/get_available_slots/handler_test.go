package get_available_slots_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type useCaseStub struct {
	resp *getAvailableSlots.Response
	err  error
	got  *getAvailableSlots.Request
}

func (s *useCaseStub) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(t *testing.T, uc *useCaseStub, target string) []string {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Slots, "slots must be an array, not null")
	return body.Slots
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &useCaseStub{resp: &getAvailableSlots.Response{
		Slots: []types.TimeString{"09:00", "10:00", "11:00"},
	}}

	slots := serve(t, uc, "/api/v1/available-slots?employee=3&service=7&date=2030-03-11")

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(3), uc.got.EmployeeID)
	assert.Equal(t, int64(7), uc.got.ServiceID)
	assert.Equal(t, time.Date(2030, 3, 11, 0, 0, 0, 0, time.UTC), uc.got.Date)
}

func TestHandle_ProviderAlias(t *testing.T) {
	uc := &useCaseStub{resp: &getAvailableSlots.Response{Slots: []types.TimeString{"12:00"}}}

	slots := serve(t, uc, "/api/v1/available-slots?provider=5&service=7&date=2030-03-11")

	assert.Equal(t, []string{"12:00"}, slots)
	assert.Equal(t, int64(5), uc.got.EmployeeID)
}

func TestHandle_AlwaysOK(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
	}{
		{name: "no params", target: "/api/v1/available-slots"},
		{name: "bad employee", target: "/api/v1/available-slots?employee=abc&service=1&date=2030-03-11"},
		{name: "negative service", target: "/api/v1/available-slots?employee=1&service=-1&date=2030-03-11"},
		{name: "bad date", target: "/api/v1/available-slots?employee=1&service=1&date=11.03.2030"},
		{name: "not configured", target: "/api/v1/available-slots?employee=1&service=1&date=2030-03-11", err: getAvailableSlots.ErrNotConfigured},
		{name: "employee not found", target: "/api/v1/available-slots?employee=1&service=1&date=2030-03-11", err: getAvailableSlots.ErrEmployeeNotFound},
		{name: "internal", target: "/api/v1/available-slots?employee=1&service=1&date=2030-03-11", err: errors.New("db is down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseStub{err: tt.err}
			if tt.err == nil {
				uc.resp = &getAvailableSlots.Response{Slots: []types.TimeString{"09:00"}}
			}

			slots := serve(t, uc, tt.target)

			assert.Empty(t, slots)
		})
	}
}
