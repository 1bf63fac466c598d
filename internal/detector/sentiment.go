package detector

import "github.com/jonreiter/govader"

// Sentiment is a polarity/subjectivity estimate of a message.
type Sentiment struct {
	// Polarity ranges from -1 (negative) to 1 (positive).
	Polarity float64
	// Subjectivity ranges from 0 (objective) to 1 (subjective).
	Subjectivity float64
}

// SentimentScorer scores message sentiment with the VADER lexicon. It is
// deterministic, fully offline, and safe for concurrent use. A nil scorer is
// the degraded mode: Analyze returns the neutral value instead of failing.
type SentimentScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewSentimentScorer creates a scorer with the embedded VADER lexicon.
func NewSentimentScorer() *SentimentScorer {
	return &SentimentScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Analyze scores the text. Polarity is the VADER compound score; subjectivity
// is the proportion of the text carrying sentiment (positive + negative).
func (s *SentimentScorer) Analyze(text string) Sentiment {
	if s == nil || text == "" {
		return Sentiment{}
	}

	scores := s.analyzer.PolarityScores(text)

	subjectivity := scores.Positive + scores.Negative
	if subjectivity > 1 {
		subjectivity = 1
	}

	return Sentiment{
		Polarity:     scores.Compound,
		Subjectivity: subjectivity,
	}
}
