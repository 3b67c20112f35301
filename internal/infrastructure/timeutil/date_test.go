package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2026-02-05",
			want:  time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day",
			input: "2028-02-29",
			want:  time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong format",
			input:   "05/02/2026",
			wantErr: true,
		},
		{
			name:    "impossible date",
			input:   "2026-02-30",
			wantErr: true,
		},
		{
			name:    "date with time component",
			input:   "2026-02-05T10:00:00Z",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestMustParseDate_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParseDate("not-a-date")
	})
}

func TestFormatDate_RoundTrip(t *testing.T) {
	d := MustParseDate("2026-11-30")
	assert.Equal(t, "2026-11-30", FormatDate(d))
}

func TestNormalizeDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Hong_Kong")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "strips time of day",
			input: time.Date(2026, 2, 5, 18, 45, 12, 999, time.UTC),
			want:  time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "keeps local calendar date",
			input: time.Date(2026, 2, 5, 1, 0, 0, 0, loc),
			want:  time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "already normalized",
			input: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.input))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "same day", from: "2026-02-05", to: "2026-02-05", want: 0},
		{name: "ten days apart", from: "2026-02-05", to: "2026-02-15", want: 10},
		{name: "reversed order is negative", from: "2026-02-15", to: "2026-02-05", want: -10},
		{name: "across month boundary", from: "2026-01-30", to: "2026-02-02", want: 3},
		{name: "across year boundary", from: "2026-12-30", to: "2027-01-02", want: 3},
		{name: "across leap day", from: "2028-02-28", to: "2028-03-01", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysBetween(MustParseDate(tt.from), MustParseDate(tt.to))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2026, 2, 5, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, 2, 6, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(from, to))
}

func TestExpandDateSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []string
		wantErr bool
	}{
		{
			name: "single date",
			spec: "2026-02-05",
			want: []string{"2026-02-05"},
		},
		{
			name: "inclusive range",
			spec: "2026-02-05:2026-02-08",
			want: []string{"2026-02-05", "2026-02-06", "2026-02-07", "2026-02-08"},
		},
		{
			name: "single-day range",
			spec: "2026-02-05:2026-02-05",
			want: []string{"2026-02-05"},
		},
		{
			name: "range across month boundary",
			spec: "2026-01-30:2026-02-02",
			want: []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-02"},
		},
		{
			name:    "reversed range",
			spec:    "2026-02-08:2026-02-05",
			wantErr: true,
		},
		{
			name:    "invalid start",
			spec:    "banana:2026-02-05",
			wantErr: true,
		},
		{
			name:    "invalid end",
			spec:    "2026-02-05:banana",
			wantErr: true,
		},
		{
			name:    "empty spec",
			spec:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandDateSpec(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			formatted := make([]string, len(got))
			for i, d := range got {
				formatted[i] = FormatDate(d)
			}
			assert.Equal(t, tt.want, formatted)
		})
	}
}

func TestExpandDateSpecs_DeduplicatesAcrossSpecs(t *testing.T) {
	got, err := ExpandDateSpecs([]string{"2026-02-05:2026-02-07", "2026-02-06", "2026-02-09"})
	require.NoError(t, err)

	formatted := make([]string, len(got))
	for i, d := range got {
		formatted[i] = FormatDate(d)
	}
	assert.Equal(t, []string{"2026-02-05", "2026-02-06", "2026-02-07", "2026-02-09"}, formatted)
}

func TestExpandDateSpecs_PropagatesError(t *testing.T) {
	_, err := ExpandDateSpecs([]string{"2026-02-05", "nope"})
	assert.Error(t, err)
}
