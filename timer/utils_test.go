package timer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"HabitTimers/timer"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "00:00", timer.FormatTime(0))
	assert.Equal(t, "00:59", timer.FormatTime(59))
	assert.Equal(t, "25:00", timer.FormatTime(1500))
	assert.Equal(t, "00:00", timer.FormatTime(-7))
}

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "07:00", timer.FormatTotal(420))
	assert.Equal(t, "1:10:05", timer.FormatTotal(4205))
	assert.Equal(t, "00:00", timer.FormatTotal(-1))
}
