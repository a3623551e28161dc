package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsolateBody_FilterRules(t *testing.T) {
	p := New()
	lines := strings.Split(strings.Join([]string{
		"## Exam AWS Certified Solutions Architect - Associate SAA-C03 question 1 discussion",
		"Question #: 1",
		"Topic #: 1",
		"Exam question from",
		"Amazon's",
		"Amazon's catalog service is mentioned here.",
		"   ",
		"  First body line.  ",
		"Suggested Answer: D 🗳️",
		"Second body line.",
		"A. option",
	}, "\n"), "\n")
	f := blockFields{headingLine: 0, optionStart: 10}

	body, suggested := p.isolateBody(lines, f)

	assert.Equal(t, "Amazon's catalog service is mentioned here.\nFirst body line.\nSecond body line.", body)
	if assert.NotNil(t, suggested) {
		assert.Equal(t, "Suggested Answer: D 🗳️", *suggested)
	}
}

func TestIsolateBody_MarkerAfterOptionsIsIgnored(t *testing.T) {
	p := New()
	lines := []string{
		"## Exam X question 2 discussion",
		"Body.",
		"A. option",
		"[All X Questions]",
	}
	body, _ := p.isolateBody(lines, blockFields{headingLine: 0, optionStart: 2})
	assert.Equal(t, "Body.", body)
}

func TestMetadataEnd(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		lines  []string
		want   int
	}{
		{name: "default marker", lines: []string{"x", "[All SAA-C03 Questions]", "y"}, want: 1},
		{name: "default marker absent", lines: []string{"x", "All SAA-C03 Questions", "y"}, want: -1},
		{name: "configured marker", marker: "END", lines: []string{"x", "--END--", "[All X Questions]"}, want: 1},
		{name: "configured marker absent", marker: "END", lines: []string{"[All X Questions]"}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(WithMetadataEndMarker(tt.marker))
			assert.Equal(t, tt.want, p.metadataEnd(tt.lines))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		body      string
		wantMulti bool
		wantCount int
	}{
		{"Pick (Choose two)", true, 2},
		{"Pick (Choose two.)", true, 2},
		{"Pick (Choose three)", true, 3},
		{"Pick (Choose three.)", true, 3},
		{"Pick one", false, 1},
		{"Pick (Choose Two)", false, 1},
	}
	for _, tt := range tests {
		multi, count := classify(tt.body)
		assert.Equal(t, tt.wantMulti, multi, tt.body)
		assert.Equal(t, tt.wantCount, count, tt.body)
	}
}
