package detector

import "regexp"

// patternRule is one named piracy/spam idiom.
type patternRule struct {
	name string
	re   *regexp.Regexp
}

// PatternDetector flags known piracy idioms with a fixed set of named
// regular expressions. The ruleset is static configuration, compiled once,
// and not editable at runtime.
type PatternDetector struct {
	rules []patternRule
}

// NewPatternDetector compiles the built-in ruleset.
func NewPatternDetector() *PatternDetector {
	return &PatternDetector{
		rules: []patternRule{
			{"download_links", regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:mega|mediafire|drive\.google|dropbox|torrent)`)},
			{"streaming_bypass", regexp.MustCompile(`(?i)(?:free|crack|hack|bypass)\s+(?:netflix|hulu|disney|amazon|premium)`)},
			{"rip_formats", regexp.MustCompile(`(?i)(?:cam|ts|dvdrip|brrip|webrip|hdtv|xvid|x264)`)},
			{"illegal_sharing", regexp.MustCompile(`(?i)(?:share|upload|leak|distribute)\s+(?:movie|film|content)`)},
			{"paywall_bypass", regexp.MustCompile(`(?i)(?:without\s+pay|no\s+subscription|free\s+premium)`)},
		},
	}
}

// Scan returns the raw matched substrings per rule name. Only rules with at
// least one match appear in the result; empty text yields an empty map.
func (d *PatternDetector) Scan(text string) map[string][]string {
	hits := make(map[string][]string)
	if text == "" {
		return hits
	}

	for _, rule := range d.rules {
		if matches := rule.re.FindAllString(text, -1); len(matches) > 0 {
			hits[rule.name] = matches
		}
	}
	return hits
}

// RuleNames returns the names of all configured rules.
func (d *PatternDetector) RuleNames() []string {
	names := make([]string, len(d.rules))
	for i, rule := range d.rules {
		names[i] = rule.name
	}
	return names
}
