package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// VisitStatus статус визита
type VisitStatus string

const (
	StatusPlanned   VisitStatus = "planned"
	StatusCompleted VisitStatus = "completed"
)

// Visit запись клиента к сотруднику на услугу
type Visit struct {
	ID              int64
	ClientID        int64
	EmployeeID      int64
	ServiceID       int64
	HallID          int64 // вычисляется по связи ServiceHall, клиент его не передаёт
	VisitDate       time.Time
	StartTime       types.TimeString
	DurationMinutes int // длительность услуги на момент записи
	Status          VisitStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanBeChanged визит можно редактировать или удалять только пока он запланирован
func (v *Visit) CanBeChanged() bool {
	return v.Status == StatusPlanned
}

// BelongsTo проверяет владельца визита
func (v *Visit) BelongsTo(clientID int64) bool {
	return v.ClientID == clientID
}

// Interval занятый интервал в минутах от полуночи [start, start+duration)
// Для визитов без сохранённой длительности используется fallbackMinutes
func (v *Visit) Interval(fallbackMinutes int) (int, int, error) {
	start, err := v.StartTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	duration := v.DurationMinutes
	if duration <= 0 {
		duration = fallbackMinutes
	}
	return start, start + duration, nil
}

// IsPast визит начинается раньше момента (today, nowTime)
func (v *Visit) IsPast(today time.Time, nowTime types.TimeString) bool {
	visitDay := DateOf(v.VisitDate)
	today = DateOf(today)
	if visitDay.Before(today) {
		return true
	}
	return visitDay.Equal(today) && v.StartTime.IsBefore(nowTime)
}

// VisitFilter фильтр выборки визитов, nil-поля не участвуют
type VisitFilter struct {
	HallID     *int64
	EmployeeID *int64
	ClientID   *int64
	ServiceID  *int64
	Date       *time.Time
	StartTime  *types.TimeString
	Status     *VisitStatus
	ExcludeID  *int64 // исключить визит (при редактировании)
}

// Match проверка фильтра в памяти
func (f VisitFilter) Match(v *Visit) bool {
	if f.HallID != nil && v.HallID != *f.HallID {
		return false
	}
	if f.EmployeeID != nil && v.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.ClientID != nil && v.ClientID != *f.ClientID {
		return false
	}
	if f.ServiceID != nil && v.ServiceID != *f.ServiceID {
		return false
	}
	if f.Date != nil && !DateOf(v.VisitDate).Equal(DateOf(*f.Date)) {
		return false
	}
	if f.StartTime != nil && !v.StartTime.Equal(*f.StartTime) {
		return false
	}
	if f.Status != nil && v.Status != *f.Status {
		return false
	}
	if f.ExcludeID != nil && v.ID == *f.ExcludeID {
		return false
	}
	return true
}

// DateOf календарная дата момента t (полночь, UTC как нейтральная зона)
// Часовые пояса не учитываются: берутся локальные год, месяц и день
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
