package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromClock(t *testing.T) {
	t.Run("Valid Clock", func(t *testing.T) {
		ts, err := NewTimeStringFromClock(9, 5)
		require.NoError(t, err)
		assert.Equal(t, "09:05", ts.String())
	})

	t.Run("Negative Hour", func(t *testing.T) {
		_, err := NewTimeStringFromClock(-1, 0)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("Minute Out Of Range", func(t *testing.T) {
		_, err := NewTimeStringFromClock(10, 60)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_Clock(t *testing.T) {
	t.Run("Regular Time", func(t *testing.T) {
		hour, minute, err := TimeString("14:30").Clock()
		require.NoError(t, err)
		assert.Equal(t, 14, hour)
		assert.Equal(t, 30, minute)
	})

	t.Run("Hour Past Midnight", func(t *testing.T) {
		hour, minute, err := TimeString("24:15").Clock()
		require.NoError(t, err)
		assert.Equal(t, 24, hour)
		assert.Equal(t, 15, minute)
	})

	t.Run("Invalid Format", func(t *testing.T) {
		for _, raw := range []string{"", "9:00", "09-00", "ab:cd", "09:0", "48:00", "10:60"} {
			_, _, err := TimeString(raw).Clock()
			assert.ErrorIs(t, err, ErrInvalidTimeString, "value %q", raw)
		}
	})
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("Within Hour", func(t *testing.T) {
		ts, err := TimeString("10:00").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("Minute Overflow Carries To Hour", func(t *testing.T) {
		ts, err := TimeString("10:45").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:15"), ts)
	})

	t.Run("Carries Past Midnight Without Wrapping", func(t *testing.T) {
		ts, err := TimeString("23:45").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("24:15"), ts)
	})

	t.Run("Negative Minutes Rejected", func(t *testing.T) {
		_, err := TimeString("10:00").AddMinutes(-15)
		assert.ErrorIs(t, err, ErrNegativeMinutes)
	})

	t.Run("Invalid Base Value", func(t *testing.T) {
		_, err := TimeString("xx:yy").AddMinutes(15)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestComputeEnd(t *testing.T) {
	tests := []struct {
		name        string
		startHour   int
		startMinute int
		duration    int
		wantHour    int
		wantMinute  int
	}{
		{"no carry", 10, 0, 30, 10, 30},
		{"minute carry", 10, 45, 30, 11, 15},
		{"exact hour boundary", 9, 30, 30, 10, 0},
		{"past midnight", 23, 45, 30, 24, 15},
		{"long duration", 22, 50, 120, 24, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute := ComputeEnd(tt.startHour, tt.startMinute, tt.duration)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.True(t, TimeString("10:30").IsAfter("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))

	// Час за полночь упорядочивается после любого обычного времени того же дня
	assert.True(t, TimeString("23:59").IsBefore("24:15"))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 15, 7, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
}
