package corpus

import (
	"bufio"
	"os"
	"strings"
)

// WriteTagLines renders predicted tag sequences to a file, one sentence per
// line, tags upper-cased and separated by single spaces.
func WriteTagLines(filePath string, tagLines [][]string) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := file.Close()
		if err == nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriter(file)
	for _, tags := range tagLines {
		for i, tag := range tags {
			if i > 0 {
				if _, err = w.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err = w.WriteString(strings.ToUpper(tag)); err != nil {
				return err
			}
		}
		if _, err = w.WriteString("\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
