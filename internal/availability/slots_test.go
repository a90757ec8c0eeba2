package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name     string
		opening  types.TimeString
		closing  types.TimeString
		interval int
		want     []types.TimeString
	}{
		{
			name:     "two hour window with 30 minute step",
			opening:  "12:00",
			closing:  "14:00",
			interval: 30,
			want:     []types.TimeString{"12:00", "12:30", "13:00", "13:30"},
		},
		{
			name:     "closing excluded",
			opening:  "12:00",
			closing:  "13:00",
			interval: 60,
			want:     []types.TimeString{"12:00"},
		},
		{
			name:     "opening equals closing",
			opening:  "12:00",
			closing:  "12:00",
			interval: 30,
			want:     []types.TimeString{},
		},
		{
			name:     "opening after closing",
			opening:  "18:00",
			closing:  "12:00",
			interval: 30,
			want:     []types.TimeString{},
		},
		{
			name:     "non-positive interval falls back to default",
			opening:  "22:00",
			closing:  "23:00",
			interval: 0,
			want:     []types.TimeString{"22:00", "22:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateTimeSlots(tt.opening, tt.closing, tt.interval))
		})
	}
}

func TestDayAvailability(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tableA := &domain.Table{ID: uuid.New(), TableNumber: "T1", Capacity: 4}
	tableB := &domain.Table{ID: uuid.New(), TableNumber: "T2", Capacity: 4}
	tables := []*domain.Table{tableA, tableB}

	opts := Options{
		OpeningTime:         "18:00",
		ClosingTime:         "20:00",
		IntervalMinutes:     30,
		BaseTurnoverMinutes: 60,
	}

	t.Run("empty day is fully available", func(t *testing.T) {
		slots := DayAvailability(day, tables, nil, 2, opts)

		require.Len(t, slots, 4)
		for _, slot := range slots {
			assert.True(t, slot.Available)
			assert.Equal(t, 2, slot.TablesAvailable)
		}
	})

	t.Run("reservation shrinks overlapping slots", func(t *testing.T) {
		// Стол A занят [18:00, 19:00)
		reservations := []*domain.Reservation{
			makeReservation(tableA.ID, types.TimeString("18:00").OnDate(day), 2, domain.StatusConfirmed),
		}
		reservations[0].EndTime = domain.ReservationEnd(reservations[0].StartTime, 2, 60)

		slots := DayAvailability(day, tables, reservations, 2, opts)

		require.Len(t, slots, 4)
		assert.Equal(t, types.TimeString("18:00"), slots[0].Time)
		assert.Equal(t, 1, slots[0].TablesAvailable)
		assert.Equal(t, 1, slots[1].TablesAvailable)
		// С 19:00 стол A снова свободен
		assert.Equal(t, 2, slots[2].TablesAvailable)
		assert.Equal(t, 2, slots[3].TablesAvailable)
	})

	t.Run("party too large for every table", func(t *testing.T) {
		slots := DayAvailability(day, tables, nil, 6, opts)

		require.Len(t, slots, 4)
		for _, slot := range slots {
			assert.False(t, slot.Available)
			assert.Zero(t, slot.TablesAvailable)
		}
	})

	t.Run("zero options use defaults", func(t *testing.T) {
		slots := DayAvailability(day, tables, nil, 2, Options{})

		// 12:00-23:00 с шагом 30 минут
		require.Len(t, slots, 22)
		assert.Equal(t, types.TimeString("12:00"), slots[0].Time)
		assert.Equal(t, types.TimeString("22:30"), slots[len(slots)-1].Time)
	})
}

func TestNextAvailableSlot(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	table := &domain.Table{ID: uuid.New(), TableNumber: "T1", Capacity: 4}

	opts := Options{
		OpeningTime:         "18:00",
		ClosingTime:         "20:00",
		IntervalMinutes:     30,
		BaseTurnoverMinutes: 60,
	}

	t.Run("first free slot after busy interval", func(t *testing.T) {
		reservations := []*domain.Reservation{
			makeReservation(table.ID, types.TimeString("18:00").OnDate(day), 2, domain.StatusConfirmed),
		}
		reservations[0].EndTime = domain.ReservationEnd(reservations[0].StartTime, 2, 60)

		slot, ok := NextAvailableSlot(day, []*domain.Table{table}, reservations, 2, opts)
		require.True(t, ok)
		assert.Equal(t, types.TimeString("19:00"), slot)
	})

	t.Run("no free slots", func(t *testing.T) {
		_, ok := NextAvailableSlot(day, []*domain.Table{table}, nil, 10, opts)
		assert.False(t, ok)
	})
}
