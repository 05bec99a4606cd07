package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// BookingPolicy ограничения на дату и время записи
type BookingPolicy struct {
	HorizonDays      int // запись возможна на сегодня .. сегодня+HorizonDays включительно
	MinNoticeMinutes int // на сегодня нельзя записаться раньше now+MinNoticeMinutes
}

func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		HorizonDays:      DefaultBookingHorizonDays,
		MinNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}

// DateAllowed дата попадает в окно [today, today+HorizonDays]
func (p BookingPolicy) DateAllowed(date, now time.Time) bool {
	today := DateOf(now)
	day := DateOf(date)
	if day.Before(today) {
		return false
	}
	return !day.After(today.AddDate(0, 0, p.HorizonDays))
}

// TimeAllowed на сегодня время начала не раньше now+MinNoticeMinutes (с точностью до минуты)
// На другие даты ограничения нет
func (p BookingPolicy) TimeAllowed(date time.Time, start types.TimeString, now time.Time) bool {
	if !DateOf(date).Equal(DateOf(now)) {
		return true
	}
	earliest, err := types.NewTimeString(now).AddMinutes(p.MinNoticeMinutes)
	if err != nil {
		return false
	}
	return !start.IsBefore(earliest)
}
