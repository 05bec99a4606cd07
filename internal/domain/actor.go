package domain

// Role роль аутентифицированного пользователя
type Role string

const (
	RoleClient   Role = "client"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// IsValid проверяет, что роль известна
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleEmployee, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor пользователь, от имени которого выполняется операция
// Аутентификацию выполняет внешний слой, здесь роль принимается как есть
type Actor struct {
	UserID int64
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsEmployee() bool {
	return a.Role == RoleEmployee
}

// CanManage администратор или владелец визита
func (a Actor) CanManage(v *Visit) bool {
	return a.IsAdmin() || v.BelongsTo(a.UserID)
}
