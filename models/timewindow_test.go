package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeWindowEnd(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 11), ComputeWindowEnd(date(2024, time.March, 1), 10))

	// month rollover
	assert.Equal(t, date(2024, time.February, 1), ComputeWindowEnd(date(2024, time.January, 31), 1))

	// leap year
	assert.Equal(t, date(2024, time.February, 29), ComputeWindowEnd(date(2024, time.February, 28), 1))
	assert.Equal(t, date(2023, time.March, 1), ComputeWindowEnd(date(2023, time.February, 28), 1))

	// year rollover
	assert.Equal(t, date(2025, time.January, 5), ComputeWindowEnd(date(2024, time.December, 26), 10))
}

func TestClassifyWindow(t *testing.T) {
	start := date(2024, time.June, 10)
	end := date(2024, time.June, 20)

	assert.Equal(t, WindowPending, ClassifyWindow(date(2024, time.June, 9), start, end))
	assert.Equal(t, WindowActive, ClassifyWindow(date(2024, time.June, 15), start, end))
	assert.Equal(t, WindowExpired, ClassifyWindow(date(2024, time.June, 21), start, end))

	// boundaries are inclusive
	assert.Equal(t, WindowActive, ClassifyWindow(start, start, end))
	assert.Equal(t, WindowActive, ClassifyWindow(end, start, end))
}
