package domain

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("check-out date must be after check-in date")

	// ErrInvalidSize возвращается, когда размер блока вне допустимых границ
	ErrInvalidSize = errors.New("block size out of range")

	// ErrNoAvailability возвращается, когда нет свободного номера под запрос
	ErrNoAvailability = errors.New("no rooms available")

	// ErrBlockNotFound возвращается для неизвестного ID блока
	ErrBlockNotFound = errors.New("block not found")

	// ErrDuplicateID возвращается при повторном использовании ID блока
	ErrDuplicateID = errors.New("block id already in use")

	// ErrInvalidDate возвращается, когда дату не удалось разобрать
	ErrInvalidDate = errors.New("invalid date")

	// ErrRoomNotFound возвращается для номера вне инвентаря
	ErrRoomNotFound = errors.New("room not found")

	// ErrReservationNotFound возвращается для неизвестного ID бронирования
	ErrReservationNotFound = errors.New("reservation not found")
)
