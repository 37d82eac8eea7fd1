package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"lexema.com/postag/hmm"
	"lexema.com/postag/utils"
)

// ErrMisalignedCorpus reports paired tag/word files that do not line up:
// line k of the tag file must pair with line k of the word file.
var ErrMisalignedCorpus = errors.New("tag and word files are misaligned")

// ReadInstances loads a training corpus from a pair of positionally aligned
// files. Tokens are single-space separated within a line and are interned
// (lowercased) on read. Per-line tag/word count mismatches are left to the
// trainer, which rejects the whole batch.
func ReadInstances(tagPath string, wordPath string) ([]hmm.Instance, error) {
	tagLines, err := ReadTokenLines(tagPath)
	if err != nil {
		return nil, err
	}
	wordLines, err := ReadTokenLines(wordPath)
	if err != nil {
		return nil, err
	}
	if len(tagLines) != len(wordLines) {
		return nil, fmt.Errorf(
			"%w: %d tag lines vs %d word lines",
			ErrMisalignedCorpus, len(tagLines), len(wordLines),
		)
	}

	instances := make([]hmm.Instance, len(tagLines))
	for i := range tagLines {
		instances[i] = hmm.Instance{
			Tags:  tagLines[i],
			Words: wordLines[i],
		}
	}
	return instances, nil
}

// ReadTokenLines reads a line-oriented token file: one sentence per line,
// tokens separated by single spaces, interned on read.
func ReadTokenLines(filePath string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	store := utils.GlobalStringStore()

	scanner := bufio.NewScanner(file)
	var lines [][]string
	for scanner.Scan() {
		lines = append(lines, store.InternAll(strings.Split(scanner.Text(), " ")))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
