package make_block

import "errors"

var (
	// ErrInvalidSize возвращается, когда размер блока вне допустимых границ
	ErrInvalidSize = errors.New("make_block: invalid block size")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("make_block: invalid date range")

	// ErrDuplicateID возвращается, когда блок с таким ID уже существует
	ErrDuplicateID = errors.New("make_block: block id already exists")

	// ErrNoAvailability возвращается, когда свободных номеров меньше размера блока
	ErrNoAvailability = errors.New("make_block: not enough free rooms")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("make_block: internal error")
)
