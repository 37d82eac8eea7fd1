package pipeline

import (
	"strings"

	"lexema.com/postag/types"
)

// NewSentenceSplitter turns raw text into one Sentence per line, tokens
// separated by single spaces. Blank lines still flow through so the response
// stays positionally aligned with the input; the tagger reports them as
// empty-input failures.
func NewSentenceSplitter() func(in <-chan string) <-chan types.Sentence {
	return func(in <-chan string) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)
			index := 0
			for text := range in {
				text = strings.TrimSuffix(text, "\n")
				for _, line := range strings.Split(text, "\n") {
					line = strings.TrimRight(line, "\r")
					sent := types.Sentence{
						Index: index,
						Text:  line,
					}
					if len(line) > 0 {
						sent.Words = strings.Split(line, " ")
					}
					out <- sent
					index++
				}
			}
		}()
		return out
	}
}
