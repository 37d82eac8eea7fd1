package types

import (
	"errors"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"lexema.com/postag/logger"
	"lexema.com/postag/utils"
)

// CorpusConfig points at a paired training corpus: line k of the tag file
// labels line k of the word file.
type CorpusConfig struct {
	TagFile  string `yaml:"tag_file" json:"tag_file"`
	WordFile string `yaml:"word_file" json:"word_file"`
}

func (c CorpusConfig) IsEmpty() bool {
	return len(c.TagFile) == 0 && len(c.WordFile) == 0
}

// Configuration is one tagger profile: either a corpus to train from, a
// saved model artifact to load, or both (train, then save to the artifact).
type Configuration struct {
	Name      string       `json:"name"`
	FilePath  string       `json:"file_path"`
	Corpus    CorpusConfig `yaml:"corpus" json:"corpus"`
	ModelFile string       `yaml:"model_file" json:"model_file"`
	// Penalty overrides the derived unseen-word penalty when non-zero.
	Penalty float64 `yaml:"penalty" json:"penalty"`
}

func (cfg Configuration) GetHashCode() uint64 {
	key := strings.Join([]string{
		strings.ToLower(cfg.Name),
		cfg.Corpus.TagFile,
		cfg.Corpus.WordFile,
		cfg.ModelFile,
	}, "|")
	return utils.HashString(key)
}

// LoadConfigurations reads every *.yaml profile in the directory.
func LoadConfigurations(dirPath string) ([]Configuration, error) {
	ptLogger := logger.NewLogger("LoadConfigurations")

	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	configChan := make(chan Configuration, len(files))
	for _, f := range files {
		// Skip dirs and non-yaml files
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}

		wg.Add(1)
		go func(file os.FileInfo) {
			defer wg.Done()
			cfg := Configuration{
				Name:     strings.Split(file.Name(), ".yaml")[0],
				FilePath: path.Join(dirPath, file.Name()),
			}
			buf, err := ioutil.ReadFile(cfg.FilePath)
			if err != nil {
				ptLogger.Err(err)
				return
			}
			if err := yaml.Unmarshal(buf, &cfg); err != nil {
				ptLogger.Err(err)
				return
			}

			if cfg.Corpus.IsEmpty() && len(cfg.ModelFile) == 0 {
				ptLogger.Err(errors.New("profile has neither a corpus nor a model file"))
				return
			}

			configChan <- cfg
		}(f)
	}

	go func() {
		wg.Wait()
		close(configChan)
	}()

	configs := make([]Configuration, 0, len(configChan))
	for cfg := range configChan {
		configs = append(configs, cfg)
	}
	return configs, nil
}
