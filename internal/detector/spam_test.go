package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpamDetector_HighSignalMessage(t *testing.T) {
	d := NewSpamDetector()

	got := d.Check("FREE FREE FREE!!! http://x.co @y #z")
	assert.True(t, got.IsSpam)
	assert.GreaterOrEqual(t, got.Confidence, 80.0)
	assert.Contains(t, got.Signals, "@y")
	assert.Contains(t, got.Signals, "#z")
	assert.Contains(t, got.Signals, signalRepeatedChars)
}

func TestSpamDetector_Check(t *testing.T) {
	d := NewSpamDetector()

	tests := []struct {
		name     string
		text     string
		wantSpam bool
	}{
		{"empty", "", false},
		{"plain message", "see you at the cinema tonight", false},
		{"url only", "docs live at https://example.com/guide", false},
		{"mention and hashtag", "@user check #topic", true},
		{"shout words and url", "DOWNLOAD NOW from files.example.com", true},
		{"repeated chars only", "soooo good", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Check(tt.text)
			assert.Equal(t, tt.wantSpam, got.IsSpam)
		})
	}
}

func TestSpamDetector_ExcessiveCaps(t *testing.T) {
	d := NewSpamDetector()

	// Caps ratio only applies to messages longer than 20 characters.
	short := d.Check("STOP THAT")
	assert.NotContains(t, short.Signals, signalExcessiveCaps)

	long := d.Check("STOP SHOUTING IN EVERY SINGLE MESSAGE")
	assert.Contains(t, long.Signals, signalExcessiveCaps)
}

func TestSpamDetector_ConfidenceCap(t *testing.T) {
	d := NewSpamDetector()

	got := d.Check("FREE FREE FREE FREE FREE FREE @a @b #c #d http://x.co")
	assert.Equal(t, 100.0, got.Confidence)
}

func TestHasRepeatedRun(t *testing.T) {
	assert.True(t, hasRepeatedRun("yesss", 3))
	assert.True(t, hasRepeatedRun("!!!", 3))
	assert.False(t, hasRepeatedRun("yes!!", 3))
	assert.False(t, hasRepeatedRun("", 3))
}
