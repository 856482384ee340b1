package analyze

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed stopwords.txt
var bundledStopwords string

// Stopwords is a set of lowercase words excluded from word frequencies.
type Stopwords map[string]struct{}

func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// DefaultStopwords returns the bundled English and Hinglish list.
func DefaultStopwords() Stopwords {
	s, _ := ReadStopwords(strings.NewReader(bundledStopwords))
	return s
}

// ReadStopwords reads one word per line. Blank lines and lines starting
// with '#' are skipped.
func ReadStopwords(r io.Reader) (Stopwords, error) {
	s := make(Stopwords)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		s[w] = struct{}{}
	}
	return s, scanner.Err()
}

func LoadStopwords(path string) (Stopwords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadStopwords(f)
	if err != nil {
		return nil, fmt.Errorf("read stopwords %s: %w", path, err)
	}
	return s, nil
}
