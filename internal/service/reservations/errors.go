package reservations

import "errors"

var (
	// ErrInternal возвращается при ошибках журнала
	ErrInternal = errors.New("reservations: internal error")

	// ErrNotEmpty возвращается при попытке восстановить журнал в непустой менеджер
	ErrNotEmpty = errors.New("reservations: manager already has state")
)
