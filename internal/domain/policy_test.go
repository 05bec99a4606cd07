package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestBookingPolicy_DateAllowed(t *testing.T) {
	now := time.Date(2030, 3, 10, 15, 30, 0, 0, time.UTC)
	p := domain.DefaultBookingPolicy()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "yesterday", date: now.AddDate(0, 0, -1), want: false},
		{name: "today", date: now, want: true},
		{name: "today midnight", date: domain.DateOf(now), want: true},
		{name: "last day of horizon", date: now.AddDate(0, 0, 7), want: true},
		{name: "after horizon", date: now.AddDate(0, 0, 8), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.DateAllowed(tt.date, now))
		})
	}
}

func TestBookingPolicy_TimeAllowed(t *testing.T) {
	now := time.Date(2030, 3, 10, 10, 15, 0, 0, time.UTC)

	t.Run("no notice", func(t *testing.T) {
		p := domain.BookingPolicy{HorizonDays: 7}
		assert.False(t, p.TimeAllowed(now, types.TimeString("10:00"), now))
		assert.True(t, p.TimeAllowed(now, types.TimeString("10:15"), now))
		assert.True(t, p.TimeAllowed(now, types.TimeString("11:00"), now))
	})

	t.Run("with notice", func(t *testing.T) {
		p := domain.BookingPolicy{HorizonDays: 7, MinNoticeMinutes: 60}
		assert.False(t, p.TimeAllowed(now, types.TimeString("11:00"), now))
		assert.True(t, p.TimeAllowed(now, types.TimeString("11:15"), now))
	})

	t.Run("other day is not restricted", func(t *testing.T) {
		p := domain.BookingPolicy{HorizonDays: 7, MinNoticeMinutes: 60}
		assert.True(t, p.TimeAllowed(now.AddDate(0, 0, 1), types.TimeString("09:00"), now))
	})

	t.Run("notice past midnight", func(t *testing.T) {
		late := time.Date(2030, 3, 10, 23, 30, 0, 0, time.UTC)
		p := domain.BookingPolicy{HorizonDays: 7, MinNoticeMinutes: 60}
		assert.False(t, p.TimeAllowed(late, types.TimeString("23:45"), late))
	})
}
