package pipeline

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"lexema.com/postag/types"
)

type SentenceResult struct {
	Text string   `json:"text"`
	Tags []string `json:"tags,omitempty"`
	Err  string   `json:"error,omitempty"`
}

type Response struct {
	Tid       string           `json:"tid"`
	Model     string           `json:"model"`
	Sentences []SentenceResult `json:"sentences"`
}

// NewResponseBuilder collects the tagged sentences, restores input order and
// renders the response JSON. Tags are upper-cased here, at the outer
// boundary; everything upstream works lowercase.
func NewResponseBuilder(fingerprint uint64) func(in <-chan types.Sentence, request Request) <-chan string {
	return func(in <-chan types.Sentence, request Request) <-chan string {
		out := make(chan string)
		go func() {
			defer close(out)

			var sentences []types.Sentence
			for sent := range in {
				sentences = append(sentences, sent)
			}
			sort.Slice(sentences, func(i, j int) bool {
				return sentences[i].Index < sentences[j].Index
			})

			response := Response{
				Tid:       request.Tid,
				Model:     fmt.Sprintf("%016x", fingerprint),
				Sentences: make([]SentenceResult, len(sentences)),
			}
			for i, sent := range sentences {
				result := SentenceResult{Text: sent.Text}
				if sent.Err != nil {
					result.Err = sent.Err.Error()
				} else {
					result.Tags = make([]string, len(sent.Tags))
					for j, tag := range sent.Tags {
						result.Tags[j] = strings.ToUpper(tag)
					}
				}
				response.Sentences[i] = result
			}

			buf, err := json.Marshal(response)
			if err != nil {
				out <- fmt.Sprintf(`{"tid":%q,"error":%q}`, request.Tid, err.Error())
				return
			}
			out <- string(buf)
		}()
		return out
	}
}
