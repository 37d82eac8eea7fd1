package corpus

import (
	"errors"
	"io/ioutil"
	"path"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lexema.com/postag/hmm"
)

func writeFile(t *testing.T, dir string, name string, contents string) string {
	t.Helper()
	filePath := path.Join(dir, name)
	if err := ioutil.WriteFile(filePath, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return filePath
}

func TestReadInstances(t *testing.T) {
	dir := t.TempDir()
	tagPath := writeFile(t, dir, "tags.txt", "D N V\nN V\n")
	wordPath := writeFile(t, dir, "words.txt", "The dog runs\nDogs run\n")

	instances, err := ReadInstances(tagPath, wordPath)
	if err != nil {
		t.Fatalf("ReadInstances returned error: %v", err)
	}

	want := []hmm.Instance{
		{Tags: []string{"d", "n", "v"}, Words: []string{"the", "dog", "runs"}},
		{Tags: []string{"n", "v"}, Words: []string{"dogs", "run"}},
	}
	if diff := cmp.Diff(want, instances); diff != "" {
		t.Errorf("instances mismatch (-want +got):\n%s", diff)
	}
}

func TestReadInstancesMisaligned(t *testing.T) {
	dir := t.TempDir()
	tagPath := writeFile(t, dir, "tags.txt", "D N V\nN V\n")
	wordPath := writeFile(t, dir, "words.txt", "the dog runs\n")

	_, err := ReadInstances(tagPath, wordPath)
	if !errors.Is(err, ErrMisalignedCorpus) {
		t.Fatalf("ReadInstances error = %v, want ErrMisalignedCorpus", err)
	}
}

func TestReadInstancesMissingFile(t *testing.T) {
	dir := t.TempDir()
	tagPath := writeFile(t, dir, "tags.txt", "D\n")

	if _, err := ReadInstances(tagPath, path.Join(dir, "absent.txt")); err == nil {
		t.Fatal("ReadInstances did not report the missing word file")
	}
}

func TestWriteTagLines(t *testing.T) {
	dir := t.TempDir()
	outPath := path.Join(dir, "out.txt")

	err := WriteTagLines(outPath, [][]string{
		{"d", "n", "v"},
		{"n", "v"},
	})
	if err != nil {
		t.Fatalf("WriteTagLines returned error: %v", err)
	}

	buf, err := ioutil.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "D N V\nN V\n"
	if string(buf) != want {
		t.Errorf("written file = %q, want %q", string(buf), want)
	}
}
