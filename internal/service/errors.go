package service

import "errors"

var (
	// ErrInvalidCredentials возвращается одинаково и для неизвестного имени,
	// и для неверного пароля, чтобы не раскрывать, что именно не совпало
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
	ErrUnauthenticated    = errors.New("не удалось авторизовать пользователя")
	ErrPasswordMismatch   = errors.New("пароли не совпадают")
	ErrInvalidSeverity    = errors.New("недопустимое значение severity")
)
