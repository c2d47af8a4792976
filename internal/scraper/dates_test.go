package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFrenchDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"numeric", "12/03/2024", time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)},
		{"numeric single digits", "5/3/2024", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"numeric dashes", "01-02-2023", time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{"spelled out", "12 mars 2024", time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)},
		{"spelled out with accent", "3 août 2024", time.Date(2024, time.August, 3, 0, 0, 0, 0, time.UTC)},
		{"spelled out without accent", "3 aout 2024", time.Date(2024, time.August, 3, 0, 0, 0, 0, time.UTC)},
		{"first of the month", "1er avril 2024", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{"mixed case month", "25 Décembre 2023", time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)},
		{"inlined label", "Dernière mise à jour le 12/03/2024", time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)},
		{"label across lines", "Dernière mise à jour\nle 12/03/2024", time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  12/03/2024\n", time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseFrenchDate(tc.raw)
			require.True(t, ok, "expected %q to parse", tc.raw)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseFrenchDateRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"   ",
		"N/A",
		"unknown",
		"demain",
		"32/13/2024",
		"00/01/2024",
		"12 smarch 2024",
		"12 mars",
		"30 février 2024",
		"12 mars 24",
	} {
		_, ok := ParseFrenchDate(raw)
		require.False(t, ok, "expected %q to be rejected", raw)
	}
}

func TestStripUpdateLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "12/03/2024", StripUpdateLabel("Dernière mise à jour le 12/03/2024"))
	require.Equal(t, "12/03/2024", StripUpdateLabel("12/03/2024"))
	require.Equal(t, "05/01/2022", StripUpdateLabel("blah blah Dernière mise à jour le 05/01/2022"))
	require.Equal(t, "12/03/2024", StripUpdateLabel("Dernière  mise à jour\n\tle 12/03/2024"),
		"labels broken across lines in the markup must still strip")
}
