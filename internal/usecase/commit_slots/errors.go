package commit_slots

import "errors"

var (
	// ErrMenuNotFound возвращается, когда меню не найдено
	ErrMenuNotFound = errors.New("menu not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotNotFound возвращается, когда удаляемый слот не найден среди сохранённых
	ErrSlotNotFound = errors.New("slot not found")

	// ErrCommitFailed возвращается, когда ни одна операция commit не прошла
	ErrCommitFailed = errors.New("commit failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
