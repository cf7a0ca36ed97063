package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			width:    80,
			expected: "",
		},
		{
			name:     "short error fits on one line",
			err:      errors.New("section is locked"),
			width:    80,
			expected: "Error: section is locked",
		},
		{
			name:     "wraps on word boundaries",
			err:      errors.New("could not save slot two"),
			width:    20,
			expected: "Error: could not\nsave slot two",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_Truncates(t *testing.T) {
	err := errors.New(strings.Repeat("persistence failure ", 20))

	out := formatErrorForDisplay(err, 30)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasSuffix(out, truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), 30)
	}
}

func TestErrorManager(t *testing.T) {
	em := NewErrorManager(0)
	assert.False(t, em.HasError())

	cmd := em.SetError(errors.New("boom"))
	assert.Nil(t, cmd, "no delay means no auto-clear")
	assert.True(t, em.HasError())
	assert.EqualError(t, em.GetError(), "boom")

	em.ClearError()
	assert.False(t, em.HasError())

	assert.NotNil(t, NewErrorManager(5).ClearAfterDelay())
}
