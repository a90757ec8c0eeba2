package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid time", input: "12:30", want: "12:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "12:60", wantErr: true},
		{name: "missing minutes", input: "12", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "midnight", minutes: 0, want: "00:00"},
		{name: "half past noon", minutes: 750, want: "12:30"},
		{name: "last minute of day", minutes: 1439, want: "23:59"},
		{name: "full day overflows", minutes: 1440, wantErr: true},
		{name: "negative", minutes: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromMinutes(tt.minutes)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTimeOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 750, TimeString("12:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
	assert.Equal(t, 0, TimeString("bad").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("simple shift", func(t *testing.T) {
		got, err := TimeString("12:30").AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, TimeString("13:15"), got)
	})

	t.Run("crossing midnight fails", func(t *testing.T) {
		_, err := TimeString("23:45").AddMinutes(30)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})

	t.Run("invalid receiver fails", func(t *testing.T) {
		_, err := TimeString("bad").AddMinutes(30)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("12:00").IsBefore("12:30"))
	assert.False(t, TimeString("12:30").IsBefore("12:30"))
	assert.True(t, TimeString("18:00").IsAfter("12:30"))
	assert.False(t, TimeString("12:30").IsAfter("12:30"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	day := time.Date(2025, 6, 15, 8, 45, 12, 99, loc)
	got := TimeString("19:30").OnDate(day)

	assert.Equal(t, time.Date(2025, 6, 15, 19, 30, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    TimeString
		wantErr bool
	}{
		{name: "plain string", src: "12:30", want: "12:30"},
		{name: "postgres time with seconds", src: "12:30:45", want: "12:30"},
		{name: "byte slice", src: []byte("09:15"), want: "09:15"},
		{name: "time.Time", src: time.Date(2025, 6, 15, 19, 30, 0, 0, time.UTC), want: "19:30"},
		{name: "invalid string", src: "not a time", wantErr: true},
		{name: "unsupported type", src: 1230, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			err := ts.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestTimeString_Value(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		v, err := TimeString("12:30").Value()
		require.NoError(t, err)
		assert.Equal(t, "12:30", v)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := TimeString("bad").Value()
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})
}
