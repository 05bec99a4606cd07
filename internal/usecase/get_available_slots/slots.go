package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// generateSlots возвращает время начала свободных окон длительностью durationMinutes
//
// Кандидаты идут от открытия зала с шагом durationMinutes, пока кандидат раньше закрытия
// Окно попадает в ответ, если заканчивается не позже закрытия и не пересекается ни с одним занятым интервалом
// Окно, заканчивающееся ровно в момент начала занятого интервала (или наоборот), пересечением не считается
func generateSlots(hall *domain.Hall, durationMinutes int, occupied []interval) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	if durationMinutes <= 0 {
		return slots, nil
	}

	open, err := hall.OpenTime.Minutes()
	if err != nil {
		return nil, err
	}
	closeAt, err := hall.CloseTime.Minutes()
	if err != nil {
		return nil, err
	}

	for start := open; start < closeAt; start += durationMinutes {
		end := start + durationMinutes
		if end > closeAt {
			break
		}
		if overlapsAny(start, end, occupied) {
			continue
		}

		slot, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func overlapsAny(start, end int, occupied []interval) bool {
	for _, occ := range occupied {
		if occ.start < end && start < occ.end {
			return true
		}
	}
	return false
}

// occupiedIntervals интервалы визитов по их собственной длительности
// Визит без сохранённой длительности занимает fallbackMinutes
func occupiedIntervals(visits []*domain.Visit, fallbackMinutes int) ([]interval, error) {
	result := make([]interval, 0, len(visits))
	for _, v := range visits {
		start, end, err := v.Interval(fallbackMinutes)
		if err != nil {
			return nil, err
		}
		result = append(result, interval{start: start, end: end})
	}
	return result, nil
}

// dropBeforeNotice на сегодня убирает окна, начинающиеся раньше now+noticeMinutes
func dropBeforeNotice(slots []types.TimeString, date, now time.Time, noticeMinutes int) []types.TimeString {
	if !domain.DateOf(date).Equal(domain.DateOf(now)) {
		return slots
	}

	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	earliest := int(now.Sub(midnight)/time.Minute) + noticeMinutes

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		minutes, err := slot.Minutes()
		if err != nil {
			continue
		}
		if minutes >= earliest {
			result = append(result, slot)
		}
	}
	return result
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return domain.DateOf(date).Before(domain.DateOf(now))
}
