package hmm

import "sort"

// StartSymbol is the sentinel tag for the pre-sentence context. It owns a
// transition row but is never a legal output tag.
const StartSymbol = "#"

// Model is a trained first-order hidden Markov model over a tag vocabulary
// discovered from the corpus. Both tables hold natural-log probabilities and
// are sparse: a missing (prev, next) transition was never observed, a missing
// (tag, word) emission falls back to the penalty during decode.
//
// A Model is frozen once Train returns it. Decoding reads it concurrently
// without locking.
type Model struct {
	transitions map[string]map[string]float64
	emissions   map[string]map[string]float64

	// Destination tags per source in first-observed corpus order. Map
	// iteration order is randomized in Go, so the decoder walks rows through
	// this to keep its first-seen tie-break reproducible.
	transOrder map[string][]string

	penalty     float64
	vocabSize   int
	fingerprint uint64
}

// Penalty is the emission score substituted for (tag, word) pairs never seen
// in training.
func (m *Model) Penalty() float64 {
	return m.penalty
}

// VocabSize is the number of distinct words observed in training.
func (m *Model) VocabSize() int {
	return m.vocabSize
}

// Fingerprint identifies the trained tables, stable across save/load.
func (m *Model) Fingerprint() uint64 {
	return m.fingerprint
}

// Tags returns the output tag vocabulary in sorted order. The start symbol
// never emits, so it is absent by construction.
func (m *Model) Tags() []string {
	tags := make([]string, 0, len(m.emissions))
	for tag := range m.emissions {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
