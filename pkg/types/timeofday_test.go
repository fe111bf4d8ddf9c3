package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "morning", input: "10:00", want: NewTimeOfDay(10, 0)},
		{name: "with seconds", input: "14:30:00", want: NewTimeOfDay(14, 30)},
		{name: "midnight", input: "00:00", want: NewTimeOfDay(0, 0)},
		{name: "end of day", input: "23:59", want: NewTimeOfDay(23, 59)},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", NewTimeOfDay(9, 5).String())
	assert.Equal(t, "00:00", NewTimeOfDay(0, 0).String())
	assert.Equal(t, "23:59", NewTimeOfDay(23, 59).String())
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start := NewTimeOfDay(10, 30)

	assert.Equal(t, NewTimeOfDay(11, 0), start.AddMinutes(30))
	assert.Equal(t, NewTimeOfDay(12, 30), start.AddMinutes(120))

	// Выход за пределы суток не нормализуется и обнаруживается через Valid
	assert.False(t, NewTimeOfDay(23, 30).AddMinutes(60).Valid())
}

func TestTimeOfDay_Comparisons(t *testing.T) {
	a := NewTimeOfDay(10, 0)
	b := NewTimeOfDay(10, 30)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.False(t, a.Before(a))
}

func TestTimeOfDayFromTime(t *testing.T) {
	moment := time.Date(2026, 9, 15, 14, 37, 12, 0, time.UTC)
	assert.Equal(t, NewTimeOfDay(14, 37), TimeOfDayFromTime(moment))
}

func TestTimeOfDay_JSON(t *testing.T) {
	data, err := json.Marshal(NewTimeOfDay(15, 30))
	require.NoError(t, err)
	assert.Equal(t, `"15:30"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"08:45"`), &parsed))
	assert.Equal(t, NewTimeOfDay(8, 45), parsed)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &parsed))
}

func TestTimeOfDay_Scan(t *testing.T) {
	var fromString TimeOfDay
	require.NoError(t, fromString.Scan("12:30:00"))
	assert.Equal(t, NewTimeOfDay(12, 30), fromString)

	var fromBytes TimeOfDay
	require.NoError(t, fromBytes.Scan([]byte("07:15:00")))
	assert.Equal(t, NewTimeOfDay(7, 15), fromBytes)

	var fromTime TimeOfDay
	require.NoError(t, fromTime.Scan(time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewTimeOfDay(18, 0), fromTime)
}
