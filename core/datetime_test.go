package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_roundTrip(t *testing.T) {
	var d Date
	assert.NoError(t, json.Unmarshal([]byte(`"2025-01-15"`), &d))
	assert.Equal(t, NewDate(2025, time.January, 15), d)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2025-01-15"`, string(data))
}

func TestDate_BeforeDay(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date Date
		want bool
	}{
		{name: "yesterday", date: NewDate(2025, time.January, 14), want: true},
		{name: "today", date: NewDate(2025, time.January, 15), want: false},
		{name: "tomorrow", date: NewDate(2025, time.January, 16), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.BeforeDay(now))
		})
	}
}

func TestDateTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "zoned", in: `"2025-01-15T14:30:00Z"`, want: time.Date(2025, time.January, 15, 14, 30, 0, 0, time.UTC)},
		{name: "naive", in: `"2025-01-15T14:30:00"`, want: time.Date(2025, time.January, 15, 14, 30, 0, 0, time.UTC)},
		{name: "bare date", in: `"2025-01-15"`, want: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{name: "null", in: `null`, want: time.Time{}},
		{name: "garbage", in: `"15/01/2025"`, want: time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateTime
			assert.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %v; want %v", d.Time, tt.want)
		})
	}
}
