package editor

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeSlotStorage реализует границу хранилища в памяти.
// createErr делает пакетное создание неуспешным целиком;
// deleteErrs задаёт ошибки удаления по идентификаторам
type fakeSlotStorage struct {
	nextID     int64
	createErr  error
	deleteErrs map[string]error

	created []*domain.Slot
	deleted []string
}

func newFakeSlotStorage() *fakeSlotStorage {
	return &fakeSlotStorage{nextID: 100, deleteErrs: make(map[string]error)}
}

func (f *fakeSlotStorage) CreateSlots(_ context.Context, menuID int64, slots []*domain.Slot) ([]*domain.Slot, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := make([]*domain.Slot, 0, len(slots))
	for _, slot := range slots {
		persisted := *slot
		persisted.ID = strconv.FormatInt(f.nextID, 10)
		persisted.MenuID = menuID
		persisted.Lifecycle = domain.LifecyclePersisted
		f.nextID++
		created = append(created, &persisted)
	}

	f.created = append(f.created, created...)
	return created, nil
}

func (f *fakeSlotStorage) DeleteSlot(_ context.Context, slotID string) error {
	if err, ok := f.deleteErrs[slotID]; ok {
		return err
	}
	f.deleted = append(f.deleted, slotID)
	return nil
}

// blockingSlotStorage задерживает первое пакетное создание до сигнала,
// удерживая commit в полёте
type blockingSlotStorage struct {
	*fakeSlotStorage
	entered chan struct{}
	release chan struct{}

	enterOnce sync.Once
}

func (b *blockingSlotStorage) CreateSlots(ctx context.Context, menuID int64, slots []*domain.Slot) ([]*domain.Slot, error) {
	b.enterOnce.Do(func() { close(b.entered) })
	<-b.release
	return b.fakeSlotStorage.CreateSlots(ctx, menuID, slots)
}

func testMenu() *domain.BookingMenu {
	return &domain.BookingMenu{
		ID:              1,
		Title:           "Консультация",
		DurationMinutes: 30,
		Mode:            domain.ModeReservation,
	}
}

func persistedSlot(id string, day int, start string, bookings int) *domain.Slot {
	return &domain.Slot{
		ID:              id,
		MenuID:          1,
		Date:            time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(start),
		MaxCapacity:     3,
		CurrentBookings: bookings,
		Lifecycle:       domain.LifecyclePersisted,
	}
}

func draftSlot(t *testing.T, day, hour int) *domain.Slot {
	t.Helper()
	slot, err := domain.NewDraftSlot(1, time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC), hour, 0, 30, 3)
	require.NoError(t, err)
	return slot
}

func newTestSession(t *testing.T, persisted []*domain.Slot, storage SlotStorage) *Session {
	t.Helper()
	session, err := NewSession(testMenu(), persisted, storage, nopLogger{})
	require.NoError(t, err)
	return session.WithTimeProvider(&fixedTimeProvider{now: testNow})
}

func TestNewSession(t *testing.T) {
	t.Run("Nil Menu Rejected", func(t *testing.T) {
		_, err := NewSession(nil, nil, newFakeSlotStorage(), nopLogger{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Draft In Persisted Population Rejected", func(t *testing.T) {
		_, err := NewSession(testMenu(), []*domain.Slot{draftSlot(t, 14, 10)}, newFakeSlotStorage(), nopLogger{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSession_AddDraft(t *testing.T) {
	t.Run("Visible Count Grows", func(t *testing.T) {
		session := newTestSession(t, []*domain.Slot{persistedSlot("1", 14, "10:00", 0)}, newFakeSlotStorage())

		require.NoError(t, session.AddDraft(draftSlot(t, 14, 11)))

		assert.Equal(t, 2, session.TotalCount())
		assert.Len(t, session.PendingCreates(), 1)
	})

	t.Run("Persisted Slot Rejected", func(t *testing.T) {
		session := newTestSession(t, nil, newFakeSlotStorage())

		err := session.AddDraft(persistedSlot("1", 14, "10:00", 0))
		assert.ErrorIs(t, err, ErrNotDraft)
	})

	t.Run("Past Slot Rejected", func(t *testing.T) {
		session := newTestSession(t, nil, newFakeSlotStorage())

		past := draftSlot(t, 1, 9) // 2026-09-01 09:00, testNow = 12:00 того же дня
		err := session.AddDraft(past)
		assert.ErrorIs(t, err, ErrPastSlot)
		assert.Zero(t, session.TotalCount())
	})
}

func TestSession_AddDrafts_Dedup(t *testing.T) {
	session := newTestSession(t, []*domain.Slot{persistedSlot("1", 14, "10:00", 0)}, newFakeSlotStorage())

	// Один черновик совпадает по (день, время) с сохранённым слотом,
	// два одинаковых - друг с другом
	added, skipped, err := session.AddDrafts([]*domain.Slot{
		draftSlot(t, 14, 10),
		draftSlot(t, 14, 11),
		draftSlot(t, 14, 11),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, added)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 2, session.TotalCount())
}

func TestSession_DeleteDraft(t *testing.T) {
	session := newTestSession(t, nil, newFakeSlotStorage())
	draft := draftSlot(t, 14, 10)
	require.NoError(t, session.AddDraft(draft))

	t.Run("Unconditional Delete", func(t *testing.T) {
		require.NoError(t, session.DeleteDraft(draft.ID))
		assert.Zero(t, session.TotalCount())
	})

	t.Run("Unknown Draft", func(t *testing.T) {
		assert.ErrorIs(t, session.DeleteDraft("draft-missing"), ErrSlotNotFound)
	})
}

func TestSession_DeletePersisted(t *testing.T) {
	t.Run("Without Bookings", func(t *testing.T) {
		session := newTestSession(t, []*domain.Slot{persistedSlot("1", 14, "10:00", 0)}, newFakeSlotStorage())

		require.NoError(t, session.DeletePersisted("1"))

		assert.Zero(t, session.TotalCount())
		assert.Equal(t, []string{"1"}, session.PendingDeletions())
	})

	t.Run("Deletion Guard Keeps Slot Visible", func(t *testing.T) {
		session := newTestSession(t, []*domain.Slot{persistedSlot("1", 14, "10:00", 2)}, newFakeSlotStorage())

		err := session.DeletePersisted("1")
		assert.ErrorIs(t, err, ErrSlotHasBookings)

		// Состояние не изменилось
		assert.Equal(t, 1, session.TotalCount())
		assert.Empty(t, session.PendingDeletions())
	})

	t.Run("Unknown Slot", func(t *testing.T) {
		session := newTestSession(t, nil, newFakeSlotStorage())
		assert.ErrorIs(t, session.DeletePersisted("404"), ErrSlotNotFound)
	})
}

func TestSession_VisibleSlots_Invariant(t *testing.T) {
	// Видимое множество = сохранённые − удалённые + черновики
	persisted := []*domain.Slot{
		persistedSlot("1", 14, "10:00", 0),
		persistedSlot("2", 14, "11:00", 0),
		persistedSlot("3", 15, "10:00", 0),
	}
	session := newTestSession(t, persisted, newFakeSlotStorage())

	require.NoError(t, session.AddDraft(draftSlot(t, 16, 10)))
	require.NoError(t, session.AddDraft(draftSlot(t, 16, 11)))
	require.NoError(t, session.DeletePersisted("2"))

	assert.Equal(t, 3-1+2, session.TotalCount())

	ids := make(map[string]struct{})
	for _, slot := range session.VisibleSlots() {
		ids[slot.ID] = struct{}{}
	}
	assert.NotContains(t, ids, "2")
	assert.Contains(t, ids, "1")
	assert.Contains(t, ids, "3")
}

func TestSession_Commit(t *testing.T) {
	t.Run("Creates And Deletes Succeed", func(t *testing.T) {
		storage := newFakeSlotStorage()
		session := newTestSession(t, []*domain.Slot{persistedSlot("1", 14, "10:00", 0)}, storage)

		require.NoError(t, session.AddDraft(draftSlot(t, 14, 11)))
		require.NoError(t, session.DeletePersisted("1"))

		result, err := session.Commit(context.Background())
		require.NoError(t, err)

		require.Len(t, result.Created, 1)
		assert.True(t, result.Created[0].IsPersisted())
		assert.False(t, domain.IsDraftID(result.Created[0].ID))
		assert.Equal(t, []string{"1"}, result.Deleted)

		// Сессия чиста: ничего не ожидает сохранения или удаления
		assert.Empty(t, session.PendingCreates())
		assert.Empty(t, session.PendingDeletions())
		assert.Equal(t, 1, session.TotalCount())
	})

	t.Run("Empty Session Rejected", func(t *testing.T) {
		session := newTestSession(t, nil, newFakeSlotStorage())

		_, err := session.Commit(context.Background())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Blank Title Rejected", func(t *testing.T) {
		menu := testMenu()
		menu.Title = "  "
		session, err := NewSession(menu, []*domain.Slot{persistedSlot("1", 14, "10:00", 0)}, newFakeSlotStorage(), nopLogger{})
		require.NoError(t, err)

		_, err = session.Commit(context.Background())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Create Failure Keeps All Drafts", func(t *testing.T) {
		storage := newFakeSlotStorage()
		storage.createErr = fmt.Errorf("network down")
		session := newTestSession(t, nil, storage)

		require.NoError(t, session.AddDraft(draftSlot(t, 14, 10)))
		require.NoError(t, session.AddDraft(draftSlot(t, 14, 11)))

		result, err := session.Commit(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCommitFailed)

		var ce *CommitError
		require.ErrorAs(t, err, &ce)
		assert.Error(t, ce.CreateErr)
		assert.False(t, ce.Partial)
		assert.Empty(t, result.Created)

		// Все черновики остались в сессии для повтора
		assert.Len(t, session.PendingCreates(), 2)
	})

	t.Run("Partial Failure Retains Failed Deletes Only", func(t *testing.T) {
		storage := newFakeSlotStorage()
		storage.deleteErrs["2"] = fmt.Errorf("slot busy")
		persisted := []*domain.Slot{
			persistedSlot("1", 14, "10:00", 0),
			persistedSlot("2", 14, "11:00", 0),
		}
		session := newTestSession(t, persisted, storage)

		require.NoError(t, session.AddDraft(draftSlot(t, 14, 12)))
		require.NoError(t, session.DeletePersisted("1"))
		require.NoError(t, session.DeletePersisted("2"))

		result, err := session.Commit(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCommitPartial)

		var ce *CommitError
		require.ErrorAs(t, err, &ce)
		assert.True(t, ce.Partial)
		assert.NoError(t, ce.CreateErr)
		assert.Contains(t, ce.FailedDeletes, "2")

		// Успешное подмножество применено
		assert.Len(t, result.Created, 1)
		assert.Equal(t, []string{"1"}, result.Deleted)

		// В сессии осталось ровно неуспешное удаление
		assert.Empty(t, session.PendingCreates())
		assert.Equal(t, []string{"2"}, session.PendingDeletions())

		// Повтор после устранения причины не задублирует успехи
		delete(storage.deleteErrs, "2")
		retry, err := session.Commit(context.Background())
		require.NoError(t, err)
		assert.Empty(t, retry.Created)
		assert.Equal(t, []string{"2"}, retry.Deleted)
	})

	t.Run("Second Commit In Flight Rejected", func(t *testing.T) {
		session := newTestSession(t, []*domain.Slot{persistedSlot("1", 14, "10:00", 0)}, newFakeSlotStorage())

		_, _, err := session.beginCommit()
		require.NoError(t, err)
		_, err = session.Commit(context.Background())
		assert.ErrorIs(t, err, ErrCommitInProgress)

		session.endCommit()
		_, err = session.Commit(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Mutations During In-Flight Commit Queue For Next", func(t *testing.T) {
		storage := &blockingSlotStorage{
			fakeSlotStorage: newFakeSlotStorage(),
			entered:         make(chan struct{}),
			release:         make(chan struct{}),
		}
		session := newTestSession(t, nil, storage)
		require.NoError(t, session.AddDraft(draftSlot(t, 14, 10)))

		done := make(chan struct{})
		var result *CommitResult
		var commitErr error
		go func() {
			defer close(done)
			result, commitErr = session.Commit(context.Background())
		}()

		// Commit вошёл в хранилище и висит; мутации из другой
		// горутины разрешены, повторный commit - нет
		<-storage.entered
		require.NoError(t, session.AddDraft(draftSlot(t, 14, 11)))
		_, err := session.Commit(context.Background())
		assert.ErrorIs(t, err, ErrCommitInProgress)

		close(storage.release)
		<-done

		// Сохранён только снимок на момент beginCommit
		require.NoError(t, commitErr)
		require.Len(t, result.Created, 1)
		assert.Equal(t, types.TimeString("10:00"), result.Created[0].StartTime)

		// Добавленный во время commit черновик ждёт следующего commit
		pending := session.PendingCreates()
		require.Len(t, pending, 1)
		assert.Equal(t, types.TimeString("11:00"), pending[0].StartTime)

		retry, err := session.Commit(context.Background())
		require.NoError(t, err)
		require.Len(t, retry.Created, 1)
		assert.Equal(t, types.TimeString("11:00"), retry.Created[0].StartTime)
		assert.Empty(t, session.PendingCreates())
	})
}
