package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowCutoff(t *testing.T) {
	today := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		window Window
		want   time.Time
		ok     bool
	}{
		{Window1W, time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC), true},
		{Window1M, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{Window6M, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC), true},
		{Window1Y, time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"3D", time.Time{}, false},
		{"1w", time.Time{}, false},
	}
	for _, tc := range cases {
		got, ok := tc.window.Cutoff(today)
		assert.Equal(t, tc.ok, ok, "window %q", tc.window)
		if tc.ok {
			assert.True(t, got.Equal(tc.want), "window %q: got %s want %s", tc.window, got, tc.want)
		}
	}
}
