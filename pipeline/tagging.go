package pipeline

import (
	"lexema.com/postag/corpus"
	"lexema.com/postag/hmm"
	"lexema.com/postag/logger"
	"lexema.com/postag/types"
)

type Pipeline func(request Request) <-chan string

type TaggingParams struct {
	Configuration types.Configuration `json:"configuration"`
}

// Tagging builds the sentence-tagging pipeline for one profile: train from
// the profile's corpus, or load its saved model, or both (train then save
// the artifact for the next boot).
func Tagging(params TaggingParams) (Pipeline, error) {
	ptLogger := logger.NewLogger("Tagging pipeline")
	errLogger := ptLogger.With().Caller().Logger()
	ptLogger.Info().
		Interface("params", params).
		Msg("Starting tagging pipeline (see parameters in 'params' field)")

	model, err := LoadModel(params.Configuration)
	if err != nil {
		errLogger.Err(err).Msg("Failed to prepare model")
		return nil, err
	}
	ptLogger.Info().
		Uint64("fingerprint", model.Fingerprint()).
		Msg("Model ready")

	return NewPipeline(model), nil
}

// LoadModel resolves a profile into a trained model, training from the
// corpus when one is configured and falling back to the saved artifact
// otherwise.
func LoadModel(cfg types.Configuration) (*hmm.Model, error) {
	ptLogger := logger.NewLogger("Tagging pipeline")
	errLogger := ptLogger.With().Caller().Logger()

	if cfg.Corpus.IsEmpty() {
		model, err := hmm.LoadModelFromFile(cfg.ModelFile)
		if err != nil {
			errLogger.Err(err).
				Str("model_file", cfg.ModelFile).
				Msg("Failed to load model artifact")
			return nil, err
		}
		return model, nil
	}

	instances, err := corpus.ReadInstances(cfg.Corpus.TagFile, cfg.Corpus.WordFile)
	if err != nil {
		errLogger.Err(err).
			Str("tag_file", cfg.Corpus.TagFile).
			Str("word_file", cfg.Corpus.WordFile).
			Msg("Failed to read training corpus")
		return nil, err
	}
	model, err := hmm.Trainer{Penalty: cfg.Penalty}.Train(instances)
	if err != nil {
		errLogger.Err(err).Msg("Failed to train model")
		return nil, err
	}
	ptLogger.Info().
		Int("sentences", len(instances)).
		Int("vocab_size", model.VocabSize()).
		Msg("Trained model from corpus")
	if len(cfg.ModelFile) > 0 {
		if err := model.Save(cfg.ModelFile); err != nil {
			errLogger.Err(err).
				Str("model_file", cfg.ModelFile).
				Msg("Failed to save model artifact")
			return nil, err
		}
	}
	return model, nil
}

// NewPipeline wires the channel stages over an already trained model.
func NewPipeline(model *hmm.Model) Pipeline {
	ptLogger := logger.NewLogger("Tagging pipeline")

	splitter := NewSentenceSplitter()
	tagger := NewTagger(model)
	builder := NewResponseBuilder(model.Fingerprint())

	return func(request Request) <-chan string {
		pplnLog := ptLogger.With().Str("tid", request.Tid).Logger()
		pplnLog.Info().Msg("Started tagging pipeline")

		in := make(chan string, 1)
		in <- request.Text
		close(in)

		return builder(tagger(splitter(in)), request)
	}
}
