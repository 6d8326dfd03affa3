package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 9, tod.Hour)
	assert.Equal(t, 30, tod.Minute)
	assert.Equal(t, 570, tod.Minutes())

	tod, err = ParseTimeOfDay("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, tod.Minutes())

	tod, err = ParseTimeOfDay("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 1439, tod.Minutes())
}

func TestParseTimeOfDay_Rejects(t *testing.T) {
	cases := []string{"25:00", "09:60", "9:30", "09:3", "0930", "24:00", "", "ab:cd", "09-30", " 09:30"}
	for _, input := range cases {
		_, err := ParseTimeOfDay(input)
		assert.Error(t, err, "expected %q to be rejected", input)
		assert.True(t, IsKind(err, ErrKindFormat), "expected format error for %q", input)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	tod := TimeOfDay{Hour: 8, Minute: 5}
	assert.Equal(t, "08:05", tod.String())

	assert.Equal(t, "14:30", TimeOfDayFromMinutes(870).String())
}

func TestTimeOfDay_Before(t *testing.T) {
	a := TimeOfDay{Hour: 9, Minute: 0}
	b := TimeOfDay{Hour: 9, Minute: 30}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestTimeOfDay_JSONRoundTrip(t *testing.T) {
	tod := TimeOfDay{Hour: 17, Minute: 45}
	data, err := json.Marshal(tod)
	assert.NoError(t, err)
	assert.Equal(t, `"17:45"`, string(data))

	var parsed TimeOfDay
	assert.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, tod, parsed)

	var bad TimeOfDay
	assert.Error(t, json.Unmarshal([]byte(`"26:00"`), &bad))
}
