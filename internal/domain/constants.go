package domain

// Значения по умолчанию
const (
	DefaultBookingHorizonDays      = 7 // запись на сегодня .. сегодня+7 включительно
	DefaultMinBookingNoticeMinutes = 0
)

// Ограничения бизнес-валидации
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 720 // 12 часов
	MinHallCapacity           = 1
	MaxHallCapacity           = 100
	MaxBookingHorizonDays     = 365
	MaxBookingNoticeMinutes   = 1440
	MaxNameLength             = 100
	MaxDescriptionLength      = 1000
	MaxPhoneLength            = 20
)

// Форматы
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Причины отказа в записи (метки метрик)
const (
	RejectOverbooked    = "overbooked"
	RejectNotConfigured = "not_configured"
	RejectInvalidDate   = "invalid_date"
	RejectInvalidTime   = "invalid_time"
)
