package editor

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустой заголовок меню, нулевое количество слотов при сохранении)
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotNotFound возвращается, когда слот не найден в сессии
	ErrSlotNotFound = errors.New("slot not found in session")

	// ErrNotDraft возвращается при попытке добавить в сессию слот,
	// не являющийся черновиком
	ErrNotDraft = errors.New("slot is not a draft")

	// ErrPastSlot возвращается при попытке добавить слот, начинающийся в прошлом
	ErrPastSlot = errors.New("slot starts in the past")

	// ErrSlotHasBookings возвращается при попытке удалить сохранённый слот
	// с активными бронированиями. Клиентская проверка даёт мгновенную
	// обратную связь, серверная в хранилище остаётся источником истины
	ErrSlotHasBookings = errors.New("slot has active bookings")

	// ErrCommitInProgress возвращается при попытке запустить второй commit,
	// пока первый не завершился. На сессию допускается один commit в полёте
	ErrCommitInProgress = errors.New("commit already in progress")

	// ErrCommitPartial возвращается, когда часть операций commit прошла,
	// а часть нет. Неуспешное подмножество остаётся в сессии для повтора
	ErrCommitPartial = errors.New("commit partially failed")

	// ErrCommitFailed возвращается, когда ни одна операция commit не прошла
	ErrCommitFailed = errors.New("commit failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("editor: internal error")
)
