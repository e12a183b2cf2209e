package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotHasBookings возвращается при попытке удалить слот с активными
	// бронированиями. Серверная проверка является источником истины:
	// клиентский guard в редакторе лишь даёт мгновенную обратную связь
	ErrSlotHasBookings = errors.New("slot.repository: slot has active bookings")

	// ErrInvalidSlotID возвращается, когда идентификатор не является
	// идентификатором сохранённого слота (например, черновик)
	ErrInvalidSlotID = errors.New("slot.repository: invalid persisted slot id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
