package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkipLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantSkip  uint64
		wantLimit uint64
	}{
		{"значения по умолчанию", "", 0, 100},
		{"явные значения", "skip=20&limit=50", 20, 50},
		{"нечисловые значения игнорируются", "skip=abc&limit=xyz", 0, 100},
		{"отрицательные значения игнорируются", "skip=-5&limit=-10", 0, 100},
		{"нулевой limit игнорируется", "limit=0", 0, 100},
		{"limit ограничен сверху", "limit=100000", 0, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			skip, limit := ParseSkipLimit(values)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
