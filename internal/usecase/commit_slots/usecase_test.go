package commit_slots

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/menu"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMenuRepo struct {
	menus map[int64]*domain.BookingMenu
}

func (f *fakeMenuRepo) GetByID(_ context.Context, id int64) (*domain.BookingMenu, error) {
	menu, ok := f.menus[id]
	if !ok {
		return nil, menuRepo.ErrMenuNotFound
	}
	return menu, nil
}

type fakeSlotRepo struct {
	nextID     int64
	slots      []*domain.Slot
	createErr  error
	deleteErrs map[string]error

	deleted []string
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	return &fakeSlotRepo{nextID: 100, slots: slots, deleteErrs: make(map[string]error)}
}

func (f *fakeSlotRepo) ListByMenu(_ context.Context, _ int64) ([]*domain.Slot, error) {
	return f.slots, nil
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	persisted := *slot
	persisted.ID = strconv.FormatInt(f.nextID, 10)
	persisted.Lifecycle = domain.LifecyclePersisted
	f.nextID++
	return &persisted, nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, slotID string) error {
	if err, ok := f.deleteErrs[slotID]; ok {
		return err
	}
	f.deleted = append(f.deleted, slotID)
	return nil
}

// Даты далеко в будущем: use case использует реальное время
// для отсечения прошедших слотов
func day(d int) time.Time {
	return time.Date(2030, 9, d, 0, 0, 0, 0, time.UTC)
}

func persistedSlot(id string, d int, start string, bookings int) *domain.Slot {
	return &domain.Slot{
		ID:              id,
		MenuID:          1,
		Date:            day(d),
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(start),
		MaxCapacity:     3,
		CurrentBookings: bookings,
		Lifecycle:       domain.LifecyclePersisted,
	}
}

func newTestUseCase(slots *fakeSlotRepo) *UseCase {
	menus := &fakeMenuRepo{menus: map[int64]*domain.BookingMenu{
		1: {ID: 1, Title: "Консультация", DurationMinutes: 30, Mode: domain.ModeReservation},
	}}
	return NewUseCase(menus, slots, passthroughTxManager{}, nopLogger{})
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("Creates And Deletes", func(t *testing.T) {
		repo := newFakeSlotRepo(persistedSlot("10", 14, "10:00", 0))
		uc := newTestUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{
			MenuID: 1,
			Creates: []SlotCreate{
				{Date: day(14), StartHour: 11, MaxCapacity: 2},
				{Date: day(15), StartHour: 10},
			},
			DeleteIDs: []string{"10"},
		})
		require.NoError(t, err)

		assert.False(t, resp.PartialFailure)
		require.Len(t, resp.Created, 2)
		for _, created := range resp.Created {
			assert.True(t, created.IsPersisted())
			assert.False(t, domain.IsDraftID(created.ID))
		}
		assert.Equal(t, []string{"10"}, resp.Deleted)
		assert.Equal(t, []string{"10"}, repo.deleted)
	})

	t.Run("Zero Capacity Defaults", func(t *testing.T) {
		uc := newTestUseCase(newFakeSlotRepo())

		resp, err := uc.Execute(context.Background(), &Request{
			MenuID:  1,
			Creates: []SlotCreate{{Date: day(14), StartHour: 10}},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSlotCapacity, resp.Created[0].MaxCapacity)
	})

	t.Run("Duplicate Creates Silently Skipped", func(t *testing.T) {
		repo := newFakeSlotRepo(persistedSlot("10", 14, "10:00", 0))
		uc := newTestUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{
			MenuID: 1,
			Creates: []SlotCreate{
				{Date: day(14), StartHour: 10}, // уже существует
				{Date: day(14), StartHour: 11},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Created, 1)
		assert.Equal(t, types.TimeString("11:00"), resp.Created[0].StartTime)
	})

	t.Run("Guarded Delete Is Not A Commit Failure", func(t *testing.T) {
		repo := newFakeSlotRepo(
			persistedSlot("10", 14, "10:00", 2),
			persistedSlot("11", 14, "11:00", 0),
		)
		uc := newTestUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{
			MenuID:    1,
			DeleteIDs: []string{"10", "11"},
		})
		require.NoError(t, err)

		assert.False(t, resp.PartialFailure)
		assert.Contains(t, resp.GuardedDeletes, "10")
		assert.Equal(t, []string{"11"}, resp.Deleted)
		// Защищённый слот не тронут в хранилище
		assert.NotContains(t, repo.deleted, "10")
	})

	t.Run("Guard At Commit Time Lands In Guarded Deletes", func(t *testing.T) {
		// В свежем чтении слот без бронирований, но между чтением сессии
		// и удалением появилось бронирование: серверный guard отклоняет
		// удаление так же, как guard сессии
		repo := newFakeSlotRepo(
			persistedSlot("10", 14, "10:00", 0),
			persistedSlot("11", 14, "11:00", 0),
		)
		repo.deleteErrs["11"] = slotRepo.ErrSlotHasBookings
		uc := newTestUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{
			MenuID:    1,
			DeleteIDs: []string{"10", "11"},
		})
		require.NoError(t, err)

		assert.False(t, resp.PartialFailure)
		assert.Contains(t, resp.GuardedDeletes, "11")
		assert.Empty(t, resp.FailedDeletes)
		assert.Equal(t, []string{"10"}, resp.Deleted)
		assert.NotContains(t, repo.deleted, "11")
	})

	t.Run("Partial Failure Reports Failed Subset", func(t *testing.T) {
		repo := newFakeSlotRepo(
			persistedSlot("10", 14, "10:00", 0),
			persistedSlot("11", 14, "11:00", 0),
		)
		repo.deleteErrs["11"] = fmt.Errorf("%w: Delete - execute delete: connection reset", slotRepo.ErrExecQuery)
		uc := newTestUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{
			MenuID:    1,
			Creates:   []SlotCreate{{Date: day(15), StartHour: 9}},
			DeleteIDs: []string{"10", "11"},
		})
		require.NoError(t, err)

		assert.True(t, resp.PartialFailure)
		assert.Len(t, resp.Created, 1)
		assert.Equal(t, []string{"10"}, resp.Deleted)
		assert.Contains(t, resp.FailedDeletes, "11")
		assert.Empty(t, resp.CreateError)
	})

	t.Run("Create Failure Without Deletes Fails Entirely", func(t *testing.T) {
		repo := newFakeSlotRepo(persistedSlot("10", 14, "10:00", 0))
		repo.createErr = fmt.Errorf("serialization conflict")
		uc := newTestUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{
			MenuID:  1,
			Creates: []SlotCreate{{Date: day(15), StartHour: 9}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCommitFailed)
		require.NotNil(t, resp)
		assert.NotEmpty(t, resp.CreateError)
		assert.Empty(t, resp.Created)
	})

	t.Run("Menu Not Found", func(t *testing.T) {
		uc := newTestUseCase(newFakeSlotRepo())

		_, err := uc.Execute(context.Background(), &Request{
			MenuID:  99,
			Creates: []SlotCreate{{Date: day(14), StartHour: 10}},
		})
		assert.ErrorIs(t, err, ErrMenuNotFound)
	})

	t.Run("Delete Of Unknown Slot", func(t *testing.T) {
		uc := newTestUseCase(newFakeSlotRepo())

		_, err := uc.Execute(context.Background(), &Request{
			MenuID:    1,
			DeleteIDs: []string{"404"},
		})
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("Validation Failures", func(t *testing.T) {
		uc := newTestUseCase(newFakeSlotRepo())

		tests := []struct {
			name string
			req  *Request
		}{
			{"empty commit", &Request{MenuID: 1}},
			{"bad menu id", &Request{MenuID: 0, DeleteIDs: []string{"1"}}},
			{"empty delete id", &Request{MenuID: 1, DeleteIDs: []string{""}}},
			{"draft id in deletes", &Request{MenuID: 1, DeleteIDs: []string{"draft-abc"}}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
