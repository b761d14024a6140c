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
		{name: "24h evening", input: "19:30", want: "19:30"},
		{name: "24h single digit hour", input: "9:05", want: "09:05"},
		{name: "24h midnight", input: "0:00", want: "00:00"},
		{name: "12h pm with space", input: "7:30 pm", want: "19:30"},
		{name: "12h pm no space", input: "7:30pm", want: "19:30"},
		{name: "12h uppercase", input: "7:30 PM", want: "19:30"},
		{name: "12h mixed case", input: "7:30 Pm", want: "19:30"},
		{name: "noon", input: "12:00 pm", want: "12:00"},
		{name: "midnight 12am", input: "12:00 am", want: "00:00"},
		{name: "after midnight", input: "12:30 am", want: "00:30"},
		{name: "morning am", input: "9:15 am", want: "09:15"},
		{name: "leading whitespace", input: "  10:00  ", want: "10:00"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not a time", wantErr: true},
		{name: "hour out of range 24h", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:75", wantErr: true},
		{name: "hour zero in 12h", input: "0:30 pm", wantErr: true},
		{name: "hour 13 in 12h", input: "13:00 pm", wantErr: true},
		{name: "missing minutes", input: "7 pm", wantErr: true},
		{name: "seconds not allowed", input: "10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2026, 8, 30, 19, 5, 42, 0, time.UTC)
	assert.Equal(t, TimeString("19:05"), NewTimeString(now))
}

func TestMinutesRoundTrip(t *testing.T) {
	// Каждая минута суток переживает конвертацию туда и обратно
	for m := 0; m < MinutesPerDay; m += 7 {
		ts := FromMinutes(m)
		got, err := ts.Minutes()
		require.NoError(t, err)
		assert.Equal(t, m, got, "minute %d", m)
	}
}

func TestFromMinutesWraps(t *testing.T) {
	assert.Equal(t, TimeString("00:30"), FromMinutes(MinutesPerDay+30))
	assert.Equal(t, TimeString("23:30"), FromMinutes(-30))
	assert.Equal(t, TimeString("00:00"), FromMinutes(MinutesPerDay))
}

func TestMinutesInvalid(t *testing.T) {
	_, err := TimeString("").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("25:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("23:50").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:20"), got)

	got, err = TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name      string
		aStart    TimeString
		aDuration int
		bStart    TimeString
		bDuration int
		want      bool
	}{
		{name: "identical intervals", aStart: "10:00", aDuration: 60, bStart: "10:00", bDuration: 60, want: true},
		{name: "back to back is free", aStart: "10:00", aDuration: 60, bStart: "11:00", bDuration: 60, want: false},
		{name: "one minute overlap", aStart: "10:00", aDuration: 61, bStart: "11:00", bDuration: 60, want: true},
		{name: "contained", aStart: "10:00", aDuration: 240, bStart: "11:00", bDuration: 30, want: true},
		{name: "disjoint", aStart: "08:00", aDuration: 60, bStart: "12:00", bDuration: 60, want: false},
		{name: "asymmetric durations", aStart: "10:00", aDuration: 30, bStart: "09:00", bDuration: 90, want: true},
		{name: "short does not reach long start", aStart: "09:00", aDuration: 30, bStart: "10:00", bDuration: 480, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Overlaps(tt.aStart, tt.aDuration, tt.bStart, tt.bDuration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			reversed, err := Overlaps(tt.bStart, tt.bDuration, tt.aStart, tt.aDuration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, reversed)
		})
	}
}

func TestOverlapsInvalidInput(t *testing.T) {
	_, err := Overlaps("bad", 60, "10:00", 60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
