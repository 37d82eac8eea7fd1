package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"lexema.com/postag/hmm"
)

const quitCommand = "q"

// Run is the interactive tagging loop: one sentence per line, tags echoed
// upper-case, "q" quits. Decode failures are printed and the loop continues.
func Run(model *hmm.Model, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintf(out, "Enter %s to quit the console input test.\n", quitCommand)
		fmt.Fprint(out, "Enter a sentence to test > \n")

		if !scanner.Scan() {
			return scanner.Err()
		}
		sentence := strings.TrimSpace(scanner.Text())
		if sentence == quitCommand {
			return nil
		}

		tags, err := hmm.Decode(model, strings.Split(sentence, " "))
		if err != nil {
			fmt.Fprintf(out, "cannot tag sentence: %v\n\n", err)
			continue
		}

		for _, tag := range tags {
			fmt.Fprintf(out, "%s ", strings.ToUpper(tag))
		}
		fmt.Fprint(out, "\n\n")
	}
}
