package submit_application

import "errors"

var (
	// ErrMissingField возвращается, когда не заполнено обязательное поле заявки
	ErrMissingField = errors.New("submit_application: missing required field")

	// ErrInvertedInterval возвращается, когда время начала не раньше времени окончания
	ErrInvertedInterval = errors.New("submit_application: start time must be before end time")

	// ErrDurationExceeded возвращается, когда слот длиннее максимальной длительности
	ErrDurationExceeded = errors.New("submit_application: slot duration exceeds the maximum")

	// ErrTimeConflict возвращается, когда слот пересекается с уже одобренной заявкой
	ErrTimeConflict = errors.New("submit_application: slot conflicts with an approved application")

	// ErrFederationQuotaExceeded возвращается, когда федерация исчерпала дневную квоту слотов
	ErrFederationQuotaExceeded = errors.New("submit_application: federation daily quota exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_application: internal error")
)
