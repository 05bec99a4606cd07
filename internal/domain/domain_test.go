package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestHall_Fits(t *testing.T) {
	hall := &domain.Hall{OpenTime: "09:00", CloseTime: "17:00"}

	assert.True(t, hall.Fits("09:00", 60))
	assert.True(t, hall.Fits("16:00", 60), "slot ending exactly at close fits")
	assert.False(t, hall.Fits("16:30", 60), "slot extending past close")
	assert.False(t, hall.Fits("08:30", 30), "slot before open")
	assert.False(t, hall.Fits("23:30", 60), "slot crossing midnight")
}

func TestHall_OnGrid(t *testing.T) {
	hall := &domain.Hall{OpenTime: "09:00", CloseTime: "17:00"}

	assert.True(t, hall.OnGrid("09:00", 30))
	assert.True(t, hall.OnGrid("10:30", 30))
	assert.True(t, hall.OnGrid("16:30", 30), "last window ends at close")
	assert.False(t, hall.OnGrid("10:15", 30), "between grid points")
	assert.False(t, hall.OnGrid("10:07", 30), "arbitrary minute")
	assert.False(t, hall.OnGrid("10:30", 60), "60-minute grid is 09:00, 10:00, ...")
	assert.False(t, hall.OnGrid("17:00", 30), "starts at close")
	assert.False(t, hall.OnGrid("09:00", 0))
}

func TestEmployee_DesiredLinks(t *testing.T) {
	emp := &domain.Employee{
		HallIDs:    []int64{1, 2, 2},
		ServiceIDs: []int64{10, 20},
	}

	links := emp.DesiredLinks()

	assert.ElementsMatch(t, []domain.LinkKey{
		{HallID: 1, ServiceID: 10},
		{HallID: 1, ServiceID: 20},
		{HallID: 2, ServiceID: 10},
		{HallID: 2, ServiceID: 20},
	}, links)

	assert.Empty(t, (&domain.Employee{HallIDs: []int64{1}}).DesiredLinks())
}

func TestVisit_IsPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	today := domain.DateOf(now)

	cases := []struct {
		name string
		date time.Time
		time types.TimeString
		want bool
	}{
		{name: "yesterday", date: today.AddDate(0, 0, -1), time: "18:00", want: true},
		{name: "today earlier", date: today, time: "11:59", want: true},
		{name: "today same minute", date: today, time: "12:00", want: false},
		{name: "today later", date: today, time: "15:00", want: false},
		{name: "tomorrow", date: today.AddDate(0, 0, 1), time: "08:00", want: false},
	}

	for _, tc := range cases {
		v := &domain.Visit{VisitDate: tc.date, StartTime: tc.time}
		assert.Equal(t, tc.want, v.IsPast(now, types.NewTimeString(now)), tc.name)
	}
}

func TestVisit_IntervalUsesOwnDuration(t *testing.T) {
	v := &domain.Visit{StartTime: "10:00", DurationMinutes: 90}

	start, end, err := v.Interval(30)
	assert.NoError(t, err)
	assert.Equal(t, 600, start)
	assert.Equal(t, 690, end)

	v.DurationMinutes = 0
	_, end, err = v.Interval(30)
	assert.NoError(t, err)
	assert.Equal(t, 630, end)
}

func TestVisitFilter_Match(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	v := &domain.Visit{ID: 5, HallID: 1, ClientID: 7, VisitDate: date, StartTime: "10:00", Status: domain.StatusPlanned}

	assert.True(t, domain.VisitFilter{HallID: ptr.Ptr(int64(1)), Date: &date, StartTime: ptr.Ptr(types.TimeString("10:00"))}.Match(v))
	assert.False(t, domain.VisitFilter{HallID: ptr.Ptr(int64(2))}.Match(v))
	assert.False(t, domain.VisitFilter{ExcludeID: ptr.Ptr(int64(5))}.Match(v))
	assert.False(t, domain.VisitFilter{Status: ptr.Ptr(domain.StatusCompleted)}.Match(v))
}
