package types

// Sentence is one line of tagging input moving through the pipeline. Index
// preserves input order across the concurrent decode stage.
type Sentence struct {
	Index int
	Text  string
	Words []string
	Tags  []string
	Err   error
}
