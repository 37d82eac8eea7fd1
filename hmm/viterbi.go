package hmm

import (
	"fmt"
	"math"

	"lexema.com/postag/utils"
)

// Decode runs the Viterbi search and returns the highest-scoring tag
// sequence for the sentence, one tag per word. Only transitions present in
// the model are expanded; a missing emission costs the model penalty instead
// of eliminating the path.
//
// Ties are broken strictly-greater: the first source (in first-observed row
// order) to reach a score keeps it, and the final tag is the first one seen
// with the maximum frontier score. Decoding the same sentence against the
// same model always yields the same sequence.
//
// An empty sentence is rejected with ErrEmptyInput. If at some position no
// live tag has an outgoing transition row the frontier starves and Decode
// reports ErrNoReachableState; it never falls back to the full tag set.
func Decode(model *Model, words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}

	store := utils.GlobalStringStore()

	currOrder := []string{StartSymbol}
	currScores := map[string]float64{StartSymbol: 0.0}

	// Back-pointer per position and tag: which source achieved the best
	// score into that tag.
	backPointers := make([]map[string]string, len(words))

	for i, raw := range words {
		word := store.Intern(raw)

		var nextOrder []string
		nextScores := make(map[string]float64)
		pointers := make(map[string]string)

		for _, cur := range currOrder {
			row, ok := model.transitions[cur]
			if !ok {
				// Dead end: this tag ended every sentence it appeared in.
				continue
			}
			for _, next := range model.transOrder[cur] {
				emission, ok := model.emissions[next][word]
				if !ok {
					emission = model.penalty
				}
				candidate := currScores[cur] + row[next] + emission

				best, seen := nextScores[next]
				if !seen {
					nextOrder = append(nextOrder, next)
				}
				if !seen || candidate > best {
					nextScores[next] = candidate
					pointers[next] = cur
				}
			}
		}

		if len(nextOrder) == 0 {
			return nil, fmt.Errorf("word %d (%q): %w", i, word, ErrNoReachableState)
		}

		backPointers[i] = pointers
		currOrder = nextOrder
		currScores = nextScores
	}

	best := ""
	bestScore := math.Inf(-1)
	for _, tag := range currOrder {
		if currScores[tag] > bestScore {
			bestScore = currScores[tag]
			best = tag
		}
	}

	tags := make([]string, len(words))
	for i := len(words) - 1; i >= 0; i-- {
		tags[i] = best
		best = backPointers[i][best]
	}
	return tags, nil
}
