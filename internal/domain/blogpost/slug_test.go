package blogpost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Schengen Visa Checklist for 2026", "schengen-visa-checklist-for-2026"},
		{"Work & Study: What's Allowed?", "work-study-what-s-allowed"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"---", ""},
		{"Already-Slugged", "already-slugged"},
		{"UPPER case 123", "upper-case-123"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title: %q", tc.title)
	}
}
