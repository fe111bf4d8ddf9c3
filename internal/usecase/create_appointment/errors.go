package create_appointment

import "errors"

var (
	// ErrBarberNotFound возвращается, когда профиль барбера не найден
	ErrBarberNotFound = errors.New("barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceWrongBarber возвращается, когда услуга принадлежит другому барберу
	ErrServiceWrongBarber = errors.New("service does not belong to this barber")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт записи
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrBarberNotWorking возвращается, когда барбер не работает в указанный день
	ErrBarberNotWorking = errors.New("barber does not work on this date")

	// ErrOutsideWorkingHours возвращается, когда запись не помещается в рабочий день барбера
	ErrOutsideWorkingHours = errors.New("appointment is outside working hours")

	// ErrOverlapsBreak возвращается, когда запись пересекается с перерывом барбера
	ErrOverlapsBreak = errors.New("appointment overlaps with barber's break")

	// ErrTimeInPast возвращается при попытке записаться на уже прошедшее время
	ErrTimeInPast = errors.New("appointment time is in the past")

	// ErrSlotAlreadyTaken возвращается, когда слот уже занят другой записью
	ErrSlotAlreadyTaken = errors.New("slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
