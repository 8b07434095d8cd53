// ABOUTME: Remark vocabulary used to reject name cells that hold free text.
// ABOUTME: Ships an embedded default list that a word-list file can extend.
package sheet

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/harperreed/wellness/internal/textnorm"
)

//go:embed vocabulary.txt
var defaultVocabulary string

// Vocabulary is a set of folded words.
type Vocabulary struct {
	words map[string]bool
}

// NewVocabulary creates a vocabulary from the given words.
func NewVocabulary(words ...string) *Vocabulary {
	v := &Vocabulary{words: make(map[string]bool)}
	v.Add(words...)
	return v
}

// DefaultVocabulary returns the embedded word list.
func DefaultVocabulary() *Vocabulary {
	v := NewVocabulary()
	// The embedded list is known-good; a read error cannot happen on a string reader.
	_ = v.read(strings.NewReader(defaultVocabulary))
	return v
}

// LoadVocabulary returns the default list extended with the words in path.
func LoadVocabulary(path string) (*Vocabulary, error) {
	v := DefaultVocabulary()
	if path == "" {
		return v, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()
	if err := v.read(f); err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return v, nil
}

// read adds one word per line; blank lines and # comments are skipped.
func (v *Vocabulary) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v.Add(line)
	}
	return scanner.Err()
}

// Add inserts words after folding.
func (v *Vocabulary) Add(words ...string) {
	for _, w := range words {
		for _, part := range textnorm.Words(w) {
			v.words[part] = true
		}
	}
}

// Contains reports whether a single word is in the vocabulary.
func (v *Vocabulary) Contains(word string) bool {
	return v.words[textnorm.Fold(word)]
}

// Matches reports whether any whole word of text is in the vocabulary.
func (v *Vocabulary) Matches(text string) bool {
	for _, w := range textnorm.Words(text) {
		if v.words[w] {
			return true
		}
	}
	return false
}

// Len is the number of words.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Words returns the vocabulary sorted.
func (v *Vocabulary) Words() []string {
	out := make([]string, 0, len(v.words))
	for w := range v.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
