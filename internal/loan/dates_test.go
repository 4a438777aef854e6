package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShiftMonths(t *testing.T) {
	tests := []struct {
		name   string
		from   time.Time
		months int
		day    int
		want   time.Time
	}{
		{"same day next month", time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), 1, 13, time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)},
		{"across year end", time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC), 1, 13, time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"clamp to february", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 1, 31, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"leap february", time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), 1, 30, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"anchor survives short month", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), 1, 31, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"keeps clock time", time.Date(2025, 5, 20, 8, 15, 0, 0, time.UTC), 2, 20, time.Date(2025, 7, 20, 8, 15, 0, 0, time.UTC)},
		{"zero months", time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), 0, 13, time.Date(2025, 5, 13, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShiftMonths(tt.from, tt.months, tt.day))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	due := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsOverdue(time.Date(2025, 4, 12, 23, 59, 0, 0, time.UTC), due))
	assert.False(t, IsOverdue(due, due))
	assert.False(t, IsOverdue(time.Date(2025, 4, 13, 23, 59, 59, 0, time.UTC), due), "the due date itself is on time")
	assert.True(t, IsOverdue(time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC), due))

	karachi := time.FixedZone("PKT", 5*60*60)
	localDue := time.Date(2025, 4, 13, 0, 0, 0, 0, karachi)
	// 20:00 UTC on the 13th is already the 14th in Karachi.
	assert.True(t, IsOverdue(time.Date(2025, 4, 13, 20, 0, 0, 0, time.UTC), localDue))
	assert.False(t, IsOverdue(time.Date(2025, 4, 13, 18, 0, 0, 0, time.UTC), localDue))
}
