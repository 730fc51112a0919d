package requestresponse

import "logging-web-server/internal/model"

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Name            string `json:"name" example:"newuser123"`
	Password        string `json:"password" example:"P@ssw0rd!"`
	PasswordConfirm string `json:"password_confirm" example:"P@ssw0rd!"`
}

// RegisterResponse : успешный ответ
type RegisterResponse struct {
	Response struct {
		UUID string `json:"uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
		Name string `json:"name" example:"newuser123"`
	} `json:"response"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"for example: invalid name or password"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ChangePasswordRequest : тело запроса смены пароля
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" example:"P@ssw0rd!"`
	NewPassword        string `json:"new_password" example:"NewP@ssw0rd!"`
	NewPasswordConfirm string `json:"new_password_confirm" example:"NewP@ssw0rd!"`
}

// ChangePasswordResponse : успешный ответ
type ChangePasswordResponse struct {
	Response struct {
		Updated bool `json:"updated" example:"true"`
	} `json:"response"`
}

// ListUsersResponse : успешный ответ
type ListUsersResponse struct {
	Data struct {
		Users      []*model.User `json:"users"`
		NextCursor string        `json:"next_cursor,omitempty"`
	} `json:"data"`
}
