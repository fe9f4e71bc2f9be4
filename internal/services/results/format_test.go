package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		seconds  int
		expected string
	}{
		{seconds: 0, expected: "0m 0s"},
		{seconds: 59, expected: "0m 59s"},
		{seconds: 90, expected: "1m 30s"},
		{seconds: 3599, expected: "59m 59s"},
		{seconds: 3600, expected: "1h 0m 0s"},
		{seconds: 3725, expected: "1h 2m 5s"},
		{seconds: 5400, expected: "1h 30m 0s"},
		{seconds: -5, expected: "0m 0s"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatDuration(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:07", FormatClock(7))
	assert.Equal(t, "01:30", FormatClock(90))
	assert.Equal(t, "90:00", FormatClock(5400))
	assert.Equal(t, "100:01", FormatClock(6001))
}

func TestFormatFileSize(t *testing.T) {
	testCases := []struct {
		bytes    int64
		expected string
	}{
		{bytes: 0, expected: "0 Bytes"},
		{bytes: 500, expected: "500 Bytes"},
		{bytes: 1024, expected: "1 KB"},
		{bytes: 1536, expected: "1.5 KB"},
		{bytes: 52428800, expected: "50 MB"},
		{bytes: 1288490189, expected: "1.2 GB"},
		{bytes: 5 << 40, expected: "5120 GB"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatFileSize(tc.bytes), "bytes=%d", tc.bytes)
	}
}

func TestFormatFixed(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		digits   int
		expected string
	}{
		{name: "integer", value: 2, digits: 1, expected: "2.0"},
		{name: "binary tie rounds up", value: 0.25, digits: 1, expected: "0.3"},
		{name: "binary tie rounds up again", value: 0.75, digits: 1, expected: "0.8"},
		{name: "two digit tie", value: 1.125, digits: 2, expected: "1.13"},
		{name: "whole tie", value: 2.5, digits: 0, expected: "3"},
		{name: "not a binary tie", value: 1.005, digits: 2, expected: "1.00"},
		{name: "thirds", value: 10.0 / 3.0, digits: 1, expected: "3.3"},
		{name: "two thirds", value: 2.0 / 3.0, digits: 2, expected: "0.67"},
		{name: "rate", value: 10.0 / 5400.0 * 60, digits: 2, expected: "0.11"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatFixed(tc.value, tc.digits))
		})
	}
}
