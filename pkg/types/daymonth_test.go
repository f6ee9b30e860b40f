package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDayMonthFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "canonical", input: "06 October", want: "06 October"},
		{name: "single digit day", input: "6 October", want: "06 October"},
		{name: "surrounding spaces", input: "  10 March ", want: "10 March"},
		{name: "day out of range", input: "31 February", wantErr: true},
		{name: "unknown month", input: "06 Octember", wantErr: true},
		{name: "weekday prefix is not canonical", input: "Monday 06 October", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDayMonthFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDayMonthRoundTrip(t *testing.T) {
	original := NewDayMonth(time.Date(2025, time.October, 6, 15, 4, 5, 0, time.UTC))
	parsed, err := NewDayMonthFromString(original.String())
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}

func TestDayMonthTime(t *testing.T) {
	d, err := NewDayMonthFromString("10 March")
	require.NoError(t, err)

	got := d.Time(2026, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestDayMonthOrdering(t *testing.T) {
	january, err := NewDayMonthFromString("15 January")
	require.NoError(t, err)
	october, err := NewDayMonthFromString("06 October")
	require.NoError(t, err)

	assert.True(t, january.Before(october))
	assert.False(t, october.Before(january))
	assert.False(t, october.Before(october))
}

func TestDayMonthIsZero(t *testing.T) {
	var zero DayMonth
	assert.True(t, zero.IsZero())
	assert.Error(t, zero.Validate())

	d, err := NewDayMonthFromString("01 January")
	require.NoError(t, err)
	assert.False(t, d.IsZero())
	assert.NoError(t, d.Validate())
}
