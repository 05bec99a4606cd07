package domain

import "time"

// Employee сотрудник (мастер)
type Employee struct {
	ID          int64
	UserID      int64
	FullName    string
	PhoneNumber string
	Position    string
	HallIDs     []int64 // залы, в которых работает сотрудник
	ServiceIDs  []int64 // услуги, которые он оказывает
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceHall связь "сотрудник оказывает услугу в зале"
// Выводится из HallIDs x ServiceIDs сотрудника и никогда не удаляется автоматически
type ServiceHall struct {
	ID         int64
	EmployeeID int64
	ServiceID  int64
	HallID     int64
	CreatedAt  time.Time
}

// LinkKey ключ связи без ID
type LinkKey struct {
	ServiceID int64
	HallID    int64
}

// DesiredLinks полное декартово произведение залов и услуг сотрудника
func (e *Employee) DesiredLinks() []LinkKey {
	links := make([]LinkKey, 0, len(e.HallIDs)*len(e.ServiceIDs))
	seen := make(map[LinkKey]struct{}, cap(links))

	for _, hallID := range e.HallIDs {
		for _, serviceID := range e.ServiceIDs {
			key := LinkKey{ServiceID: serviceID, HallID: hallID}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			links = append(links, key)
		}
	}

	return links
}
