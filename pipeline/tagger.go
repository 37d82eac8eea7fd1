package pipeline

import (
	"sync"

	"lexema.com/postag/hmm"
	"lexema.com/postag/types"
)

// NewTagger decodes sentences concurrently. The model is frozen after
// training, so the fan-out needs no locking; order is restored downstream
// from the sentence index.
func NewTagger(model *hmm.Model) func(in <-chan types.Sentence) <-chan types.Sentence {
	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {

				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					tags, err := hmm.Decode(model, sent.Words)
					if err != nil {
						sent.Err = err
					} else {
						sent.Tags = tags
					}
					out <- sent
				}(sent)

			}

			wg.Wait()
		}()
		return out
	}
}
