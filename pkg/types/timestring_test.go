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
		{name: "valid morning slot", input: "09:00", want: "09:00"},
		{name: "valid afternoon slot", input: "14:00", want: "14:00"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "with seconds", input: "10:00:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "not-a-time", wantErr: true},
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

func TestNewTimeString_DropsDateAndSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 8, 20, 10, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("10:30"), ts)
}

func TestTimeString_Comparison(t *testing.T) {
	morning := TimeString("09:00")
	afternoon := TimeString("14:00")

	assert.True(t, morning.IsBefore(afternoon))
	assert.True(t, afternoon.IsAfter(morning))
	assert.False(t, morning.IsBefore(morning))
	assert.False(t, morning.IsAfter(morning))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("09:00")

	end, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), end)

	wrapped, err := TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), wrapped)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		err := ts.Scan(time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("from string with seconds", func(t *testing.T) {
		var ts TimeString
		err := ts.Scan("16:00:00")
		require.NoError(t, err)
		assert.Equal(t, TimeString("16:00"), ts)
	})

	t.Run("from bytes", func(t *testing.T) {
		var ts TimeString
		err := ts.Scan([]byte("11:00"))
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:00"), ts)
	})

	t.Run("from nil", func(t *testing.T) {
		var ts TimeString
		err := ts.Scan(nil)
		require.NoError(t, err)
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		err := ts.Scan(42)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
