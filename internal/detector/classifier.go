package detector

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	// smoothingAlpha is the additive (Laplace-like) smoothing constant
	// applied to term counts so unseen terms never zero out a posterior.
	smoothingAlpha = 0.1

	// maxVocabulary caps the feature vocabulary at the most frequent terms.
	maxVocabulary = 1000
)

// stopWords are excluded from the feature vocabulary and from message
// vectorization. Standard English function words.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a about above after again against all am an and any are as at be
		because been before behind being below between both but by can could
		did do does doing down during each few for from further get had has
		have having he her here hers herself him himself his how i if in into
		is it its itself just me more most my myself no nor not now of off on
		once only or other our ours ourselves out over own same she should so
		some such than that the their theirs them themselves then there these
		they this those through to too under until up very was we were what
		when where which while who whom why will with without would you your
		yours yourself yourselves`) {
		stopWords[w] = struct{}{}
	}
}

// Prediction is a classifier verdict for one message.
type Prediction struct {
	Violation  bool
	Confidence float64
}

// Classifier predicts whether a message is a policy violation. The engine
// accepts any implementation so tests can substitute a stub; a nil classifier
// is the degraded mode and contributes nothing to the composite score.
type Classifier interface {
	Predict(text string) Prediction
}

// Model is a trained multinomial naive Bayes classifier over a fixed
// unigram+bigram vocabulary. Immutable after training; safe for concurrent
// Predict calls.
type Model struct {
	Alpha             float64
	Terms             []string
	ViolationLogProb  []float64
	CleanLogProb      []float64
	LogPriorViolation float64
	LogPriorClean     float64
	ViolationDocs     int
	CleanDocs         int

	termIndex map[string]int
}

// Train builds a model from labeled samples. Deterministic given the same
// samples and smoothing constant.
func Train(samples []TrainingSample) (*Model, error) {
	violationDocs, cleanDocs := 0, 0
	for _, s := range samples {
		if s.Violation {
			violationDocs++
		} else {
			cleanDocs++
		}
	}
	if violationDocs == 0 || cleanDocs == 0 {
		return nil, fmt.Errorf("training corpus needs both classes: %d violation, %d clean", violationDocs, cleanDocs)
	}

	// Corpus-wide term frequencies drive vocabulary selection.
	freq := make(map[string]int)
	docTerms := make([][]string, len(samples))
	for i, s := range samples {
		terms := extractTerms(s.Text)
		docTerms[i] = terms
		for _, t := range terms {
			freq[t]++
		}
	}

	// Top-K terms by frequency; ties broken alphabetically for determinism.
	vocab := make([]string, 0, len(freq))
	for t := range freq {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if freq[vocab[i]] != freq[vocab[j]] {
			return freq[vocab[i]] > freq[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxVocabulary {
		vocab = vocab[:maxVocabulary]
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}

	// Per-class term counts over the vocabulary.
	violationCounts := make([]int, len(vocab))
	cleanCounts := make([]int, len(vocab))
	violationTotal, cleanTotal := 0, 0
	for i, s := range samples {
		for _, t := range docTerms[i] {
			idx, ok := index[t]
			if !ok {
				continue
			}
			if s.Violation {
				violationCounts[idx]++
				violationTotal++
			} else {
				cleanCounts[idx]++
				cleanTotal++
			}
		}
	}

	m := &Model{
		Alpha:             smoothingAlpha,
		Terms:             vocab,
		ViolationLogProb:  make([]float64, len(vocab)),
		CleanLogProb:      make([]float64, len(vocab)),
		LogPriorViolation: math.Log(float64(violationDocs) / float64(len(samples))),
		LogPriorClean:     math.Log(float64(cleanDocs) / float64(len(samples))),
		ViolationDocs:     violationDocs,
		CleanDocs:         cleanDocs,
	}
	m.termIndex = index

	denomV := float64(violationTotal) + m.Alpha*float64(len(vocab))
	denomC := float64(cleanTotal) + m.Alpha*float64(len(vocab))
	for i := range vocab {
		m.ViolationLogProb[i] = math.Log((float64(violationCounts[i]) + m.Alpha) / denomV)
		m.CleanLogProb[i] = math.Log((float64(cleanCounts[i]) + m.Alpha) / denomC)
	}

	return m, nil
}

// Predict classifies the text. A message containing no vocabulary terms
// (including empty text) yields the neutral {false, 0}.
func (m *Model) Predict(text string) Prediction {
	if m == nil {
		return Prediction{}
	}

	counts := make(map[int]int)
	for _, t := range extractTerms(text) {
		if idx, ok := m.termIndex[t]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return Prediction{}
	}

	logViolation := m.LogPriorViolation
	logClean := m.LogPriorClean
	for idx, n := range counts {
		logViolation += float64(n) * m.ViolationLogProb[idx]
		logClean += float64(n) * m.CleanLogProb[idx]
	}

	violation := logViolation > logClean
	// Normalized posterior of the winning class, computed in log space to
	// avoid underflow.
	diff := logClean - logViolation
	if !violation {
		diff = logViolation - logClean
	}
	confidence := 1 / (1 + math.Exp(diff))

	return Prediction{Violation: violation, Confidence: confidence}
}

// VocabularySize returns the number of feature terms.
func (m *Model) VocabularySize() int {
	return len(m.Terms)
}

// buildIndex rebuilds the term lookup table. Called once after training or
// deserialization, before the model is shared across goroutines.
func (m *Model) buildIndex() {
	idx := make(map[string]int, len(m.Terms))
	for i, t := range m.Terms {
		idx[t] = i
	}
	m.termIndex = idx
}

// normalizeText lowercases, strips non-alphanumerics to spaces, and
// collapses whitespace.
func normalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// extractTerms produces the unigram+bigram feature terms of a text, with
// stop-words removed before n-gram construction.
func extractTerms(text string) []string {
	var tokens []string
	for _, tok := range strings.Fields(normalizeText(text)) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
