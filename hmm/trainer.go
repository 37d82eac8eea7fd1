package hmm

import (
	"math"
	"sort"
	"strconv"

	"lexema.com/postag/utils"

	"github.com/twmb/murmur3"
)

// Instance is one training sentence: Tags[i] labels Words[i].
type Instance struct {
	Tags  []string
	Words []string
}

// Trainer builds a Model from a batch of paired tag/word sequences.
type Trainer struct {
	// Penalty overrides the emission fallback score. Zero means derive it
	// from the word vocabulary size after the batch is absorbed.
	Penalty float64
}

// Train is the one-shot form with the derived penalty.
func Train(instances []Instance) (*Model, error) {
	return Trainer{}.Train(instances)
}

// Train accumulates transition and emission counts over the whole batch,
// then normalizes every row into log probabilities in a single pass. The
// returned model is frozen; on error no model exists and nothing previously
// trained is touched.
func (t Trainer) Train(instances []Instance) (*Model, error) {
	for n, inst := range instances {
		if len(inst.Tags) != len(inst.Words) {
			return nil, &DataError{
				Instance:  n,
				TagCount:  len(inst.Tags),
				WordCount: len(inst.Words),
			}
		}
	}

	store := utils.GlobalStringStore()
	m := &Model{
		transitions: make(map[string]map[string]float64),
		emissions:   make(map[string]map[string]float64),
		transOrder:  make(map[string][]string),
	}
	vocab := make(map[string]bool)

	for _, inst := range instances {
		prev := StartSymbol
		for i := range inst.Tags {
			tag := store.Intern(inst.Tags[i])
			word := store.Intern(inst.Words[i])

			row, ok := m.emissions[tag]
			if !ok {
				row = make(map[string]float64)
				m.emissions[tag] = row
			}
			row[word]++
			vocab[word] = true

			row, ok = m.transitions[prev]
			if !ok {
				row = make(map[string]float64)
				m.transitions[prev] = row
			}
			if _, ok := row[tag]; !ok {
				m.transOrder[prev] = append(m.transOrder[prev], tag)
			}
			row[tag]++

			prev = tag
		}
	}

	normalizeRows(m.transitions)
	normalizeRows(m.emissions)

	m.vocabSize = len(vocab)
	m.penalty = t.Penalty
	if m.penalty == 0 {
		m.penalty = derivePenalty(m.vocabSize)
	}
	m.fingerprint = fingerprintTables(m)
	return m, nil
}

// normalizeRows replaces raw counts with ln(count/rowTotal), row by row.
// Runs exactly once per training batch; each row sums to 1 in probability
// space beforehand, so the log scores fall in (-inf, 0].
func normalizeRows(table map[string]map[string]float64) {
	for _, row := range table {
		var total float64
		for _, count := range row {
			total += count
		}
		for key, count := range row {
			row[key] = math.Log(count / total)
		}
	}
}

// basePenalty matches the scale a hand-tuned constant would have on a small
// corpus; the vocabulary term keeps the fallback below any attainable
// emission score as the corpus grows.
const basePenalty = 100

func derivePenalty(vocabSize int) float64 {
	return -(basePenalty + math.Log(float64(vocabSize)+1))
}

func fingerprintTables(m *Model) uint64 {
	hash := murmur3.New64()
	writeTable := func(table map[string]map[string]float64) {
		sources := make([]string, 0, len(table))
		for src := range table {
			sources = append(sources, src)
		}
		sort.Strings(sources)
		for _, src := range sources {
			row := table[src]
			keys := make([]string, 0, len(row))
			for key := range row {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				_, _ = hash.Write([]byte(src))
				_, _ = hash.Write([]byte{0})
				_, _ = hash.Write([]byte(key))
				_, _ = hash.Write([]byte{0})
				_, _ = hash.Write([]byte(strconv.FormatFloat(row[key], 'g', -1, 64)))
				_, _ = hash.Write([]byte{0})
			}
		}
	}
	writeTable(m.transitions)
	writeTable(m.emissions)
	return hash.Sum64()
}
