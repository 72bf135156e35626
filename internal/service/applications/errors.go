package applications

import "errors"

var (
	// ErrApplicationNotFound возвращается, когда заявка не найдена
	ErrApplicationNotFound = errors.New("application not found")

	// ErrPasswordRequired возвращается, когда пароль администратора не передан
	ErrPasswordRequired = errors.New("admin password is required")

	// ErrInvalidPassword возвращается, когда пароль администратора не совпадает
	ErrInvalidPassword = errors.New("invalid admin password")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
