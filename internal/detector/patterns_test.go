package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternDetector_Scan(t *testing.T) {
	d := NewPatternDetector()

	tests := []struct {
		name      string
		text      string
		wantRules []string
	}{
		{"empty text", "", nil},
		{"clean text", "i enjoyed the film yesterday", nil},
		{"download host", "grab it from mega right away", []string{"download_links"}},
		{"streaming bypass", "free netflix for everyone", []string{"streaming_bypass"}},
		{"rip format", "brand new dvdrip available", []string{"rip_formats"}},
		{"illegal sharing", "please share movie with me", []string{"illegal_sharing"}},
		{"paywall bypass", "read everything without paying a cent", []string{"paywall_bypass"}},
		{"case insensitive", "TORRENT LINK INSIDE", []string{"download_links"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := d.Scan(tt.text)
			assert.Len(t, hits, len(tt.wantRules))
			for _, rule := range tt.wantRules {
				assert.Contains(t, hits, rule)
				assert.NotEmpty(t, hits[rule])
			}
		})
	}
}

func TestPatternDetector_MultipleRules(t *testing.T) {
	d := NewPatternDetector()

	hits := d.Scan("free premium dvdrip on mega")
	// free premium -> paywall_bypass, dvdrip -> rip_formats, mega -> download_links
	assert.Contains(t, hits, "paywall_bypass")
	assert.Contains(t, hits, "rip_formats")
	assert.Contains(t, hits, "download_links")
}

func TestPatternDetector_RawMatches(t *testing.T) {
	d := NewPatternDetector()

	hits := d.Scan("mega and torrent mirrors")
	assert.ElementsMatch(t, []string{"mega", "torrent"}, hits["download_links"])
}

func TestPatternDetector_RuleNames(t *testing.T) {
	d := NewPatternDetector()
	assert.Equal(t, []string{
		"download_links",
		"streaming_bypass",
		"rip_formats",
		"illegal_sharing",
		"paywall_bypass",
	}, d.RuleNames())
}
