package domain

// RoleAdmin роль, которой доступны чужие бронирования
const RoleAdmin = "admin"

// Actor аутентифицированный пользователь запроса, извлечённый из JWT
type Actor struct {
	UserID string
	Email  string
	Role   string
}

// IsZero пользователь не задан
func (a Actor) IsZero() bool {
	return a.UserID == "" && a.Email == ""
}

// IsAdmin проверяет роль администратора
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
