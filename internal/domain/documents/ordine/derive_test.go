package ordine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farina/internal/core/types"
)

func TestQuintaliFromPedane(t *testing.T) {
	dieci := types.NewQuintaliFromInt(10)
	zero := types.NewQuintaliFromInt(0)

	tests := []struct {
		name           string
		pedane         int
		pedanaStandard *types.Quintali
		want           types.Quintali
	}{
		{"standard pallet", 3, &dieci, types.NewQuintaliFromInt(30)},
		{"single pallet", 1, &dieci, dieci},
		{"no pedana standard", 3, nil, 0},
		{"zero pedana standard", 3, &zero, 0},
		{"zero pallets", 0, &dieci, 0},
		{"negative pallets", -2, &dieci, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuintaliFromPedane(tt.pedane, tt.pedanaStandard)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuintaliFromPedane_FractionalStandard(t *testing.T) {
	// 8.50 q per pallet
	pedana := types.NewQuintaliFromFloat64(8.5)
	got := QuintaliFromPedane(4, &pedana)
	assert.Equal(t, types.NewQuintaliFromInt(34), got)
}

func TestDataIncassoRiba(t *testing.T) {
	tests := []struct {
		name       string
		dataRitiro time.Time
		want       time.Time
	}{
		{
			// 31 Mar + 60 days
			name:       "mid month",
			dataRitiro: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
			want:       time.Date(2025, time.May, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			// month end itself counts from the same month
			name:       "last day of month",
			dataRitiro: time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
			want:       time.Date(2025, time.August, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			// 30 Nov + 60 days crosses into the next year
			name:       "year rollover",
			dataRitiro: time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
			want:       time.Date(2026, time.January, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			// February of a leap year ends on the 29th
			name:       "leap february",
			dataRitiro: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			want:       time.Date(2024, time.April, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DataIncassoRiba(tt.dataRitiro)
			assert.Equal(t, tt.want, got)
		})
	}
}
