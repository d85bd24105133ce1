package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextMonday(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		want string
	}{
		{name: "from wednesday", from: time.Date(2026, 3, 25, 14, 0, 0, 0, time.UTC), want: "2026-03-30"},
		{name: "from sunday", from: time.Date(2026, 3, 29, 9, 0, 0, 0, time.UTC), want: "2026-03-30"},
		{name: "from monday skips a week", from: time.Date(2026, 3, 30, 8, 0, 0, 0, time.UTC), want: "2026-04-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextMonday(tt.from).Format(DateLayout))
		})
	}
}

func TestNextOccurrences(t *testing.T) {
	from := time.Date(2026, 3, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		cadence string
		count   int
		want    []string
		wantErr bool
	}{
		{
			name:    "weekly",
			cadence: Weekly,
			count:   4,
			want:    []string{"2026-03-30", "2026-04-06", "2026-04-13", "2026-04-20"},
		},
		{
			name:    "biweekly",
			cadence: Biweekly,
			count:   3,
			want:    []string{"2026-03-30", "2026-04-13", "2026-04-27"},
		},
		{
			name:    "monthly is a thirty day step",
			cadence: Monthly,
			count:   3,
			want:    []string{"2026-03-30", "2026-04-29", "2026-05-29"},
		},
		{
			name:    "one-off falls back to weekly",
			cadence: None,
			count:   3,
			want:    []string{"2026-03-30", "2026-04-06", "2026-04-13"},
		},
		{
			name:    "zero count",
			cadence: Weekly,
			count:   0,
			want:    []string{},
		},
		{
			name:    "unknown cadence",
			cadence: "yearly",
			count:   2,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrences(tt.cadence, from, tt.count)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCadence)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
