package hmm

import (
	"encoding/json"
	"io/ioutil"
)

type modelFile struct {
	Transitions     map[string]map[string]float64 `json:"transitions"`
	Emissions       map[string]map[string]float64 `json:"emissions"`
	TransitionOrder map[string][]string           `json:"transition_order"`
	Penalty         float64                       `json:"penalty"`
	VocabSize       int                           `json:"vocab_size"`
}

// Save writes the trained model as JSON so workers can boot from an artifact
// instead of retraining.
func (m *Model) Save(path string) error {
	buf, err := json.Marshal(modelFile{
		Transitions:     m.transitions,
		Emissions:       m.emissions,
		TransitionOrder: m.transOrder,
		Penalty:         m.penalty,
		VocabSize:       m.vocabSize,
	})
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}

func LoadModelFromFile(modelFilePath string) (*Model, error) {
	buf, err := ioutil.ReadFile(modelFilePath)
	if err != nil {
		return nil, err
	}

	var mf modelFile
	if err = json.Unmarshal(buf, &mf); err != nil {
		return nil, err
	}

	m := &Model{
		transitions: mf.Transitions,
		emissions:   mf.Emissions,
		transOrder:  mf.TransitionOrder,
		penalty:     mf.Penalty,
		vocabSize:   mf.VocabSize,
	}
	m.fingerprint = fingerprintTables(m)
	return m, nil
}
