// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package icaldur_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michael-gallo/caldata/icaldur"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		want      icaldur.Duration
		wantStd   time.Duration
		expectErr error
	}{
		{
			name:    "Full date-time form",
			input:   "P15DT5H0M20S",
			want:    icaldur.Duration{Days: 15, Hours: 5, Seconds: 20},
			wantStd: 15*24*time.Hour + 5*time.Hour + 20*time.Second,
		},
		{
			name:    "Weeks form",
			input:   "P7W",
			want:    icaldur.Duration{Weeks: 7},
			wantStd: 7 * 7 * 24 * time.Hour,
		},
		{
			name:    "Negative duration",
			input:   "-PT15M",
			want:    icaldur.Duration{Negative: true, Minutes: 15},
			wantStd: -15 * time.Minute,
		},
		{
			name:    "Explicit positive sign",
			input:   "+PT1H",
			want:    icaldur.Duration{Hours: 1},
			wantStd: time.Hour,
		},
		{
			name:    "Surrounding whitespace is trimmed",
			input:   " PT5S ",
			want:    icaldur.Duration{Seconds: 5},
			wantStd: 5 * time.Second,
		},
		{
			name:      "Empty string",
			input:     "",
			expectErr: icaldur.ErrEmpty,
		},
		{
			name:      "Missing P prefix",
			input:     "15DT5H",
			expectErr: icaldur.ErrBadPrefix,
		},
		{
			name:      "Weeks mixed with other units",
			input:     "P1W2D",
			expectErr: icaldur.ErrMixedWeeks,
		},
		{
			name:      "Time unit without T",
			input:     "P5H",
			expectErr: icaldur.ErrTimeWithoutT,
		},
		{
			name:      "Duplicate unit",
			input:     "PT1H2H",
			expectErr: icaldur.ErrDuplicateUnit,
		},
		{
			name:      "Number without unit",
			input:     "P15",
			expectErr: icaldur.ErrMissingUnit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := icaldur.Parse(tc.input)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantStd, got.ToStd())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, input := range []string{"P15DT5H20S", "P7W", "-PT15M", "P3D", "PT0S"} {
		parsed, err := icaldur.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, parsed.String())
	}
}

func TestParseICalDuration(t *testing.T) {
	duration, err := icaldur.ParseICalDuration("P15DT5H0M20S")
	require.NoError(t, err)
	assert.Equal(t, 15*24*time.Hour+5*time.Hour+20*time.Second, duration)
}
