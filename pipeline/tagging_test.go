package pipeline

import (
	"encoding/json"
	"io/ioutil"
	"path"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"lexema.com/postag/hmm"
	"lexema.com/postag/types"
)

func trainedModel(t *testing.T) *hmm.Model {
	t.Helper()
	model, err := hmm.Train([]hmm.Instance{
		{Tags: []string{"D", "N", "V"}, Words: []string{"the", "dog", "runs"}},
		{Tags: []string{"D", "N", "V", "D", "N"}, Words: []string{"the", "cat", "sees", "a", "bird"}},
	})
	require.NoError(t, err)
	return model
}

func TestPipelineTagsText(t *testing.T) {
	ppln := NewPipeline(trainedModel(t))

	raw := <-ppln(Request{
		Tid:  "test_tid",
		Text: "the dog runs\nthe cat sees a bird\n",
	})

	var response Response
	require.NoError(t, json.Unmarshal([]byte(raw), &response))
	require.Equal(t, "test_tid", response.Tid)

	want := []SentenceResult{
		{Text: "the dog runs", Tags: []string{"D", "N", "V"}},
		{Text: "the cat sees a bird", Tags: []string{"D", "N", "V", "D", "N"}},
	}
	if diff := cmp.Diff(want, response.Sentences); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
}

func TestPipelineKeepsInputOrder(t *testing.T) {
	ppln := NewPipeline(trainedModel(t))

	// Enough lines that the concurrent decode stage is certain to finish
	// out of order at least once.
	var text string
	for i := 0; i < 64; i++ {
		if i%2 == 0 {
			text += "the dog runs\n"
		} else {
			text += "the cat sees a bird\n"
		}
	}

	raw := <-ppln(Request{Tid: "order", Text: text})
	var response Response
	require.NoError(t, json.Unmarshal([]byte(raw), &response))
	require.Len(t, response.Sentences, 64)
	for i, sent := range response.Sentences {
		if i%2 == 0 {
			require.Equal(t, "the dog runs", sent.Text, "line %d out of order", i)
		} else {
			require.Equal(t, "the cat sees a bird", sent.Text, "line %d out of order", i)
		}
	}
}

func TestPipelineReportsBlankLines(t *testing.T) {
	ppln := NewPipeline(trainedModel(t))

	raw := <-ppln(Request{Tid: "blank", Text: "the dog runs\n\nthe dog runs"})
	var response Response
	require.NoError(t, json.Unmarshal([]byte(raw), &response))
	require.Len(t, response.Sentences, 3)
	require.Empty(t, response.Sentences[1].Tags)
	require.NotEmpty(t, response.Sentences[1].Err)
	require.Equal(t, []string{"D", "N", "V"}, response.Sentences[2].Tags)
}

func TestTaggingFromProfile(t *testing.T) {
	dir := t.TempDir()
	tagPath := path.Join(dir, "tags.txt")
	wordPath := path.Join(dir, "words.txt")
	modelPath := path.Join(dir, "postag.model.json")
	require.NoError(t, ioutil.WriteFile(tagPath, []byte("D N V\n"), 0644))
	require.NoError(t, ioutil.WriteFile(wordPath, []byte("the dog runs\n"), 0644))

	ppln, err := Tagging(TaggingParams{
		Configuration: types.Configuration{
			Name:      "test",
			Corpus:    types.CorpusConfig{TagFile: tagPath, WordFile: wordPath},
			ModelFile: modelPath,
		},
	})
	require.NoError(t, err)

	raw := <-ppln(Request{Tid: "profile", Text: "the dog runs"})
	var response Response
	require.NoError(t, json.Unmarshal([]byte(raw), &response))
	require.Equal(t, []string{"D", "N", "V"}, response.Sentences[0].Tags)

	// Training also wrote the artifact; a second boot loads it instead.
	loaded, err := Tagging(TaggingParams{
		Configuration: types.Configuration{Name: "test", ModelFile: modelPath},
	})
	require.NoError(t, err)
	raw = <-loaded(Request{Tid: "profile2", Text: "the dog runs"})
	var fromArtifact Response
	require.NoError(t, json.Unmarshal([]byte(raw), &fromArtifact))
	require.Equal(t, response.Model, fromArtifact.Model)
	require.Equal(t, response.Sentences, fromArtifact.Sentences)
}
