package detector

import (
	"regexp"
	"unicode"
)

// SpamAssessment is the result of the independent spam check.
type SpamAssessment struct {
	IsSpam bool
	// Signals lists the raw matched substrings plus marker signals, in
	// category order.
	Signals []string
	// Confidence ranges 0-100.
	Confidence float64
}

const (
	signalExcessiveCaps = "EXCESSIVE_CAPS"
	signalRepeatedChars = "REPEATED_CHARS"

	// capsRatioThreshold is the uppercase-to-letters ratio above which a
	// message counts as shouting; only applied to messages longer than
	// capsMinLength.
	capsRatioThreshold = 0.7
	capsMinLength      = 20
)

var (
	urlPattern     = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[a-z0-9-]+\.[a-z]{2,}(?:/\S*)?`)
	mentionPattern = regexp.MustCompile(`@[a-zA-Z0-9_]+`)
	hashtagPattern = regexp.MustCompile(`#[a-zA-Z0-9_]+`)
	shoutPattern   = regexp.MustCompile(`(?i)\b(?:FREE|DOWNLOAD|CLICK|NOW|URGENT|LIMITED)\b`)
)

// SpamDetector scores unsolicited-content signals: URLs, mentions, hashtags,
// shout words, excessive uppercase, repeated characters. Stateless and safe
// for concurrent use.
type SpamDetector struct{}

// NewSpamDetector creates a spam detector.
func NewSpamDetector() *SpamDetector {
	return &SpamDetector{}
}

// Check assesses the text. A message is spam when at least two distinct
// signal categories fire; confidence is 20 points per individual signal,
// capped at 100. Empty text is never spam.
func (d *SpamDetector) Check(text string) SpamAssessment {
	if text == "" {
		return SpamAssessment{}
	}

	var signals []string
	categories := 0

	appendMatches := func(matches []string) {
		if len(matches) == 0 {
			return
		}
		signals = append(signals, matches...)
		categories++
	}

	appendMatches(urlPattern.FindAllString(text, -1))
	appendMatches(mentionPattern.FindAllString(text, -1))
	appendMatches(hashtagPattern.FindAllString(text, -1))
	appendMatches(shoutPattern.FindAllString(text, -1))

	if len(text) > capsMinLength && capsRatio(text) > capsRatioThreshold {
		signals = append(signals, signalExcessiveCaps)
		categories++
	}

	if hasRepeatedRun(text, 3) {
		signals = append(signals, signalRepeatedChars)
		categories++
	}

	confidence := float64(len(signals)) * 20
	if confidence > 100 {
		confidence = 100
	}

	return SpamAssessment{
		IsSpam:     categories >= 2,
		Signals:    signals,
		Confidence: confidence,
	}
}

// hasRepeatedRun reports whether the text contains minRun or more identical
// adjacent characters. RE2 has no backreferences, so this is a plain scan.
func hasRepeatedRun(text string, minRun int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= minRun {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// capsRatio returns the share of uppercase letters among all letters.
func capsRatio(text string) float64 {
	upper, letters := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}
