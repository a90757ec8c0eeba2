package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReservationStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "seated", "completed", "cancelled", "no_show"} {
		t.Run(valid, func(t *testing.T) {
			status, err := ParseReservationStatus(valid)
			require.NoError(t, err)
			assert.Equal(t, ReservationStatus(valid), status)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		_, err := ParseReservationStatus("waitlisted")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("empty status", func(t *testing.T) {
		_, err := ParseReservationStatus("")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   ReservationStatus
		to     ReservationStatus
		wantOK bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, wantOK: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, wantOK: true},
		{name: "pending to no_show", from: StatusPending, to: StatusNoShow, wantOK: true},
		{name: "pending cannot skip to seated", from: StatusPending, to: StatusSeated, wantOK: false},
		{name: "pending cannot skip to completed", from: StatusPending, to: StatusCompleted, wantOK: false},
		{name: "confirmed to seated", from: StatusConfirmed, to: StatusSeated, wantOK: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, wantOK: true},
		{name: "confirmed to no_show", from: StatusConfirmed, to: StatusNoShow, wantOK: true},
		{name: "confirmed cannot go back to pending", from: StatusConfirmed, to: StatusPending, wantOK: false},
		{name: "seated to completed", from: StatusSeated, to: StatusCompleted, wantOK: true},
		{name: "seated cannot be cancelled", from: StatusSeated, to: StatusCancelled, wantOK: false},
		{name: "seated cannot be no_show", from: StatusSeated, to: StatusNoShow, wantOK: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusPending, wantOK: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, wantOK: false},
		{name: "no_show is terminal", from: StatusNoShow, to: StatusCancelled, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOK, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_TryTransition(t *testing.T) {
	t.Run("allowed transition returns new status", func(t *testing.T) {
		status, err := StatusPending.TryTransition(StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, status)
	})

	t.Run("disallowed transition keeps old status", func(t *testing.T) {
		status, err := StatusCompleted.TryTransition(StatusSeated)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, StatusCompleted, status)
	})
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusSeated.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}

func TestReservation_Validate(t *testing.T) {
	start := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)

	valid := func() *Reservation {
		return &Reservation{
			ID:           uuid.New(),
			RestaurantID: uuid.New(),
			GuestCount:   2,
			StartTime:    start,
			EndTime:      start.Add(2 * time.Hour),
			Status:       StatusPending,
		}
	}

	t.Run("valid reservation", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("zero guests", func(t *testing.T) {
		r := valid()
		r.GuestCount = 0
		assert.ErrorIs(t, r.Validate(), ErrInvalidPartySize)
	})

	t.Run("end before start", func(t *testing.T) {
		r := valid()
		r.EndTime = start.Add(-time.Hour)
		assert.ErrorIs(t, r.Validate(), ErrInvalidTimeRange)
	})

	t.Run("end equals start", func(t *testing.T) {
		r := valid()
		r.EndTime = start
		assert.ErrorIs(t, r.Validate(), ErrInvalidTimeRange)
	})

	t.Run("unknown status", func(t *testing.T) {
		r := valid()
		r.Status = "waitlisted"
		assert.ErrorIs(t, r.Validate(), ErrInvalidStatus)
	})
}

func TestReservation_Blocks(t *testing.T) {
	tests := []struct {
		status ReservationStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusSeated, true},
		{StatusCompleted, true},
		{StatusNoShow, true},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.want, r.Blocks())
		})
	}
}

func TestReservation_OccupiesAt(t *testing.T) {
	start := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	reservation := func(status ReservationStatus) *Reservation {
		return &Reservation{StartTime: start, EndTime: end, Status: status}
	}

	tests := []struct {
		name string
		r    *Reservation
		at   time.Time
		want bool
	}{
		{name: "inside interval", r: reservation(StatusSeated), at: start.Add(time.Hour), want: true},
		{name: "exactly at start", r: reservation(StatusConfirmed), at: start, want: true},
		{name: "exactly at end is free", r: reservation(StatusSeated), at: end, want: false},
		{name: "before start", r: reservation(StatusConfirmed), at: start.Add(-time.Minute), want: false},
		{name: "cancelled never occupies", r: reservation(StatusCancelled), at: start.Add(time.Hour), want: false},
		{name: "no_show never occupies", r: reservation(StatusNoShow), at: start.Add(time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.OccupiesAt(tt.at))
		})
	}
}
