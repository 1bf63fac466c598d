// Package detector implements the moderation risk-assessment core: a set of
// independent signal detectors (keywords, regex patterns, sentiment, a
// naive Bayes classifier, spam heuristics) and the engine that fuses their
// outputs into a severity/action decision.
package detector

// Severity tiers, derived from the composite score.
type Severity string

const (
	SeverityMinimal  Severity = "minimal"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Action is the moderation action recommended to the enforcer.
type Action string

const (
	ActionNone    Action = "none"
	ActionMonitor Action = "monitor"
	ActionWarn    Action = "warn"
	ActionDelete  Action = "delete"
	ActionBan     Action = "ban"
)

// Term weights of the composite score. The keyword term is deliberately
// uncapped so repeated explicit hits can force a ban even when the learned
// signal is weak or the classifier is disabled.
const (
	keywordPoints       = 15
	mlWeight            = 40
	patternPoints       = 10
	patternCap          = 35
	negativePoints      = 15
	mildNegativePoints  = 8
	subjectivityPoints  = 10
	negativeThreshold   = -0.3
	subjectiveThreshold = 0.8
)

// Severity thresholds on the composite score.
const (
	criticalThreshold  = 90
	highThreshold      = 70
	violationThreshold = 40
)

// Breakdown carries each detector's contribution to an assessment.
type Breakdown struct {
	MatchedKeywords []string
	PatternMatches  map[string][]string
	MLViolation     bool
	MLConfidence    float64
	Polarity        float64
	Subjectivity    float64
}

// RiskAssessment is the moderation decision for one message. Produced fresh
// per message, never persisted by the engine.
type RiskAssessment struct {
	Score      float64
	Severity   Severity
	Action     Action
	Violation  bool
	Confidence float64
	Breakdown  Breakdown
}

// Engine fuses the detector outputs into one decision. All detectors are
// injected so tests can substitute stubs; nil sentiment scorer and nil
// classifier are the documented degraded modes and contribute zero.
type Engine struct {
	keywords   *KeywordStore
	patterns   *PatternDetector
	sentiment  *SentimentScorer
	classifier Classifier
	spam       *SpamDetector
}

// EngineConfig holds the engine dependencies.
type EngineConfig struct {
	Keywords   *KeywordStore
	Patterns   *PatternDetector
	Sentiment  *SentimentScorer
	Classifier Classifier
}

// NewEngine creates an engine. Missing keyword store or pattern detector
// default to an empty store and the built-in ruleset.
func NewEngine(cfg EngineConfig) *Engine {
	e := &Engine{
		keywords:   cfg.Keywords,
		patterns:   cfg.Patterns,
		sentiment:  cfg.Sentiment,
		classifier: cfg.Classifier,
		spam:       NewSpamDetector(),
	}
	if e.keywords == nil {
		e.keywords = NewKeywordStore(nil)
	}
	if e.patterns == nil {
		e.patterns = NewPatternDetector()
	}
	return e
}

// Keywords exposes the keyword store for admin edits.
func (e *Engine) Keywords() *KeywordStore {
	return e.keywords
}

// Assess runs every detector on the text and combines their outputs into one
// composite score, severity tier, and recommended action. It always returns
// a result; a failing or disabled detector contributes its neutral value.
func (e *Engine) Assess(text string) RiskAssessment {
	matched := e.keywords.Matches(text)
	patterns := e.patterns.Scan(text)
	sentiment := e.sentiment.Analyze(text)

	var prediction Prediction
	if e.classifier != nil {
		prediction = e.classifier.Predict(text)
	}

	score := float64(len(matched) * keywordPoints)

	if prediction.Violation {
		score += prediction.Confidence * mlWeight
	}

	if n := len(patterns); n > 0 {
		patternTerm := float64(n * patternPoints)
		if patternTerm > patternCap {
			patternTerm = patternCap
		}
		score += patternTerm
	}

	switch {
	case sentiment.Polarity < negativeThreshold:
		score += negativePoints
	case sentiment.Polarity < 0:
		score += mildNegativePoints
	}

	if sentiment.Subjectivity > subjectiveThreshold {
		score += subjectivityPoints
	}

	severity, action := classify(score)

	confidence := score / 100
	if confidence > 1 {
		confidence = 1
	}

	return RiskAssessment{
		Score:      score,
		Severity:   severity,
		Action:     action,
		Violation:  score >= violationThreshold,
		Confidence: confidence,
		Breakdown: Breakdown{
			MatchedKeywords: matched,
			PatternMatches:  patterns,
			MLViolation:     prediction.Violation,
			MLConfidence:    prediction.Confidence,
			Polarity:        sentiment.Polarity,
			Subjectivity:    sentiment.Subjectivity,
		},
	}
}

// AssessSpam runs the independent spam check.
func (e *Engine) AssessSpam(text string) SpamAssessment {
	return e.spam.Check(text)
}

// classify maps a composite score to its severity tier and action.
func classify(score float64) (Severity, Action) {
	switch {
	case score >= criticalThreshold:
		return SeverityCritical, ActionBan
	case score >= highThreshold:
		return SeverityHigh, ActionDelete
	case score >= violationThreshold:
		return SeverityMedium, ActionWarn
	case score > 0:
		return SeverityLow, ActionMonitor
	default:
		return SeverityMinimal, ActionMonitor
	}
}
