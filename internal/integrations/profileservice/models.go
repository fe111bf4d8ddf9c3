package profileservice

// Profile модель профиля пользователя из ProfileService
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // Роль пользователя (client, barber)
}

// IsBarber проверяет, является ли пользователь барбером
func (p *Profile) IsBarber() bool {
	return p.Role == "barber"
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
