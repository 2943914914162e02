package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimesOverlap(t *testing.T) {
	tests := []struct {
		name    string
		aStart  string
		aEnd    string
		bStart  string
		bEnd    string
		overlap bool
	}{
		{"identical windows", "09:00", "17:00", "09:00", "17:00", true},
		{"a starts inside b", "12:00", "20:00", "09:00", "17:00", true},
		{"a ends inside b", "06:00", "10:00", "09:00", "17:00", true},
		{"a contains b", "08:00", "18:00", "09:00", "17:00", true},
		{"b contains a", "10:00", "11:00", "09:00", "17:00", true},
		{"a before b", "06:00", "08:00", "09:00", "17:00", false},
		{"a after b", "18:00", "20:00", "09:00", "17:00", false},
		{"back to back, a first", "06:00", "09:00", "09:00", "17:00", false},
		{"back to back, b first", "17:00", "20:00", "09:00", "17:00", false},
		{"one minute overlap", "16:59", "20:00", "09:00", "17:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, TimesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestTimesOverlapIsSymmetric(t *testing.T) {
	pairs := [][4]string{
		{"09:00", "17:00", "12:00", "20:00"},
		{"06:00", "08:00", "09:00", "17:00"},
		{"08:00", "18:00", "09:00", "17:00"},
	}
	for _, p := range pairs {
		assert.Equal(t,
			TimesOverlap(p[0], p[1], p[2], p[3]),
			TimesOverlap(p[2], p[3], p[0], p[1]),
			"overlap of %v must not depend on argument order", p)
	}
}
