package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCalculateTotalPrice тестирует вывод итоговой стоимости бронирования
func TestCalculateTotalPrice(t *testing.T) {
	tests := []struct {
		name   string
		people int
		price  float64
		want   float64
	}{
		{name: "two people", people: 2, price: 2499.00, want: 4998.00},
		{name: "one person", people: 1, price: 1599.00, want: 1599.00},
		{name: "rounds to cents", people: 3, price: 33.333, want: 100.00},
		{name: "family of four", people: 4, price: 1999.00, want: 7996.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalPrice(tt.people, tt.price))
		})
	}
}

// TestBookingStatus тестирует набор статусов и удержание мест
func TestBookingStatus(t *testing.T) {
	tests := []struct {
		status     BookingStatus
		valid      bool
		holdsSpots bool
	}{
		{status: BookingStatusPending, valid: true, holdsSpots: true},
		{status: BookingStatusConfirmed, valid: true, holdsSpots: true},
		{status: BookingStatusCompleted, valid: true, holdsSpots: true},
		{status: BookingStatusCancelled, valid: true, holdsSpots: false},
		{status: "paused", valid: false, holdsSpots: true},
		{status: "", valid: false, holdsSpots: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
			assert.Equal(t, tt.holdsSpots, tt.status.HoldsSpots())
		})
	}
}

// TestDateOnlyJSON тестирует сериализацию календарной даты
func TestDateOnlyJSON(t *testing.T) {
	d := NewDateOnly(2026, 9, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-01"`, string(data))

	var parsed DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2026-12-31"`), &parsed))
	assert.Equal(t, NewDateOnly(2026, 12, 31), parsed)

	require.NoError(t, json.Unmarshal([]byte(`null`), &parsed))
	assert.Equal(t, NewDateOnly(2026, 12, 31), parsed)

	for _, raw := range []string{`"31.12.2026"`, `5`, `true`, `[]`, `{}`, `""`} {
		assert.Error(t, json.Unmarshal([]byte(raw), &parsed), raw)
	}
}

// TestDateOnlyAfter тестирует сравнение дат начала и конца тура
func TestDateOnlyAfter(t *testing.T) {
	start := NewDateOnly(2026, 9, 1)
	end := NewDateOnly(2026, 9, 8)

	assert.True(t, end.After(start))
	assert.False(t, start.After(end))
	assert.False(t, start.After(start))
}
