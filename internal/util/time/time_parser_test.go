package time_parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseDueDate_WithNilInput_ReturnsNil(t *testing.T) {
	assert.Nil(t, ParseDueDate(nil))
}

func Test_ParseDueDate_WithEmptyString_ReturnsNil(t *testing.T) {
	assert.Nil(t, ParseDueDate(""))
}

func Test_ParseDueDate_WithValidISOStrings_ParsesCorrectly(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "RFC3339 format",
			input:    "2025-12-25T15:30:45Z",
			expected: time.Date(2025, 12, 25, 15, 30, 45, 0, time.UTC),
		},
		{
			name:     "ISO without timezone",
			input:    "2025-12-25T15:30:45",
			expected: time.Date(2025, 12, 25, 15, 30, 45, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2025-12-25",
			expected: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseDueDate(tt.input)
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func Test_ParseDueDate_WithInvalidString_ReturnsNil(t *testing.T) {
	assert.Nil(t, ParseDueDate("next tuesday"))
}

func Test_ParseDueDate_WithUnixSeconds_ParsesCorrectly(t *testing.T) {
	result := ParseDueDate(int64(1766674245))
	require.NotNil(t, result)
	assert.Equal(t, time.Date(2025, 12, 25, 14, 50, 45, 0, time.UTC), *result)
}

func Test_ParseDueDate_WithUnixMilliseconds_ParsesCorrectly(t *testing.T) {
	result := ParseDueDate(float64(1766674245000))
	require.NotNil(t, result)
	assert.Equal(t, time.Date(2025, 12, 25, 14, 50, 45, 0, time.UTC), *result)
}

func Test_ParseDueDate_WithUnsupportedType_ReturnsNil(t *testing.T) {
	assert.Nil(t, ParseDueDate(true))
}
