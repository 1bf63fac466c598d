package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier lets tests pin the ML contribution.
type stubClassifier struct {
	prediction Prediction
}

func (s stubClassifier) Predict(string) Prediction {
	return s.prediction
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	model, err := Train(SeedCorpus())
	require.NoError(t, err)

	return NewEngine(EngineConfig{
		Keywords:   NewKeywordStore(nil),
		Sentiment:  NewSentimentScorer(),
		Classifier: model,
	})
}

func TestEngine_AssessEmptyText(t *testing.T) {
	e := newTestEngine(t)

	got := e.Assess("")
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, SeverityMinimal, got.Severity)
	assert.Equal(t, ActionMonitor, got.Action)
	assert.False(t, got.Violation)
	assert.Empty(t, got.Breakdown.MatchedKeywords)
	assert.Empty(t, got.Breakdown.PatternMatches)
}

func TestEngine_AssessSeedViolationPhrases(t *testing.T) {
	e := newTestEngine(t)
	e.Keywords().Add("download")
	e.Keywords().Add("pirated")
	e.Keywords().Add("free")

	got := e.Assess("download this movie for free, pirated version available here")
	assert.True(t, got.Violation)
	assert.Contains(t, []Severity{SeverityHigh, SeverityCritical}, got.Severity)
	assert.Contains(t, []Action{ActionDelete, ActionBan}, got.Action)
	assert.True(t, got.Breakdown.MLViolation)
	assert.Greater(t, got.Breakdown.MLConfidence, 0.9)
}

func TestEngine_SingleKeywordScoresFifteen(t *testing.T) {
	e := newTestEngine(t)
	e.Keywords().Add("qwxzzy")

	got := e.Assess("qwxzzy")
	assert.Equal(t, 15.0, got.Score)
	assert.Equal(t, SeverityLow, got.Severity)
	assert.Equal(t, ActionMonitor, got.Action)
	assert.False(t, got.Violation, "15 is below the violation threshold")
	assert.Equal(t, []string{"qwxzzy"}, got.Breakdown.MatchedKeywords)
}

func TestEngine_KeywordTermUncapped(t *testing.T) {
	e := NewEngine(EngineConfig{
		Keywords:   NewKeywordStore(nil),
		Classifier: stubClassifier{},
	})
	for _, kw := range []string{"aaa1", "bbb2", "ccc3", "ddd4", "eee5", "fff6", "ggg7"} {
		e.Keywords().Add(kw)
	}

	// 7 keyword hits alone push the score past the ban threshold.
	got := e.Assess("aaa1 bbb2 ccc3 ddd4 eee5 fff6 ggg7")
	assert.Equal(t, 105.0, got.Score)
	assert.Equal(t, SeverityCritical, got.Severity)
	assert.Equal(t, ActionBan, got.Action)
	assert.Equal(t, 1.0, got.Confidence, "reported confidence is capped at 1")
}

func TestEngine_StubClassifierDrivesMLTerm(t *testing.T) {
	e := NewEngine(EngineConfig{
		Keywords:   NewKeywordStore(nil),
		Classifier: stubClassifier{prediction: Prediction{Violation: true, Confidence: 1}},
	})

	got := e.Assess("hello")
	assert.Equal(t, 40.0, got.Score)
	assert.Equal(t, SeverityMedium, got.Severity)
	assert.Equal(t, ActionWarn, got.Action)
	assert.True(t, got.Violation)
}

func TestEngine_CleanPredictionContributesNothing(t *testing.T) {
	e := NewEngine(EngineConfig{
		Keywords:   NewKeywordStore(nil),
		Classifier: stubClassifier{prediction: Prediction{Violation: false, Confidence: 0.99}},
	})

	got := e.Assess("hello")
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, SeverityMinimal, got.Severity)
}

func TestEngine_DegradedWithoutClassifierAndSentiment(t *testing.T) {
	// Keyword and pattern signals still force a decision when the ML side
	// is unavailable.
	e := NewEngine(EngineConfig{
		Keywords: NewKeywordStore(nil),
	})
	e.Keywords().Add("torrent")
	e.Keywords().Add("warez")
	e.Keywords().Add("keygen")

	got := e.Assess("torrent warez keygen on mega")
	// 3 keywords (45) + download_links pattern (10) = 55.
	assert.Equal(t, 55.0, got.Score)
	assert.Equal(t, SeverityMedium, got.Severity)
	assert.Equal(t, ActionWarn, got.Action)
	assert.True(t, got.Violation)
	assert.False(t, got.Breakdown.MLViolation)
	assert.Zero(t, got.Breakdown.Polarity)
}

func TestEngine_PatternTermCapped(t *testing.T) {
	e := NewEngine(EngineConfig{
		Keywords:   NewKeywordStore(nil),
		Classifier: stubClassifier{},
	})

	// All five rules fire; the pattern term caps at 35, not 50.
	text := "mega dvdrip, free netflix, share movie content without paying"
	got := e.Assess(text)
	assert.Len(t, got.Breakdown.PatternMatches, 5)
	assert.Equal(t, 35.0, got.Score)
}

func TestEngine_AssessAlwaysReturns(t *testing.T) {
	// Zero-value dependencies: everything degraded, still a full result.
	e := NewEngine(EngineConfig{})

	got := e.Assess("anything")
	assert.Equal(t, SeverityMinimal, got.Severity)
	assert.Equal(t, ActionMonitor, got.Action)
}

func TestEngine_AssessSpam(t *testing.T) {
	e := NewEngine(EngineConfig{})

	got := e.AssessSpam("@user check #topic")
	assert.True(t, got.IsSpam)

	assert.False(t, e.AssessSpam("an ordinary sentence").IsSpam)
}

func TestEngine_KeywordRoundTrip(t *testing.T) {
	e := newTestEngine(t)

	require.True(t, e.Keywords().Add("bootleg"))
	assert.Equal(t, []string{"bootleg"}, e.Assess("fresh bootleg copy").Breakdown.MatchedKeywords)

	require.True(t, e.Keywords().Remove("bootleg"))
	assert.Empty(t, e.Assess("fresh bootleg copy").Breakdown.MatchedKeywords)
}
