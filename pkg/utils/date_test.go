package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"apenas data", "2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"data e hora sem fuso", "2025-01-15T14:30:00", time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)},
		{"RFC3339", "2025-01-15T14:30:00Z", time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDate_EmptyStringIsZeroValue(t *testing.T) {
	got, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseDate_RejectsUnknownFormats(t *testing.T) {
	for _, input := range []string{"15/01/2025", "2025-13-01", "yesterday"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestMonthPeriod(t *testing.T) {
	assert.Equal(t, "01-2025", MonthPeriod(2025, 1))
	assert.Equal(t, "12-2024", MonthPeriod(2024, 12))
}
