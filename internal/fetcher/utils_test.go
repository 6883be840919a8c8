package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTitle(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`My <Video>: part/2`, "My Video part2"},
		{`a\b|c?d*e`, "abcde"},
		{"  already clean  ", "already clean"},
		{`<>:"/\|?*`, ""},
		{"Фильм 2024", "Фильм 2024"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeTitle(tc.input), "input %q", tc.input)
	}
}
