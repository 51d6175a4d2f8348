package normalize

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kljensen/snowball/english"
)

// Lemmatizer names accepted by NewLemmatizer.
const (
	LemmatizerWordNet  = "wordnet"
	LemmatizerSnowball = "snowball"
	LemmatizerNone     = "none"
)

// ErrUnknownLemmatizer is returned by NewLemmatizer for an unsupported name.
var ErrUnknownLemmatizer = errors.New("unknown lemmatizer")

// Lemmatizer maps a word to its base form.
type Lemmatizer interface {
	Lemma(word string) string
}

// LemmatizerFunc adapts a plain function to the Lemmatizer interface.
type LemmatizerFunc func(string) string

// Lemma calls f(word).
func (f LemmatizerFunc) Lemma(word string) string { return f(word) }

// IdentityLemmatizer returns every word unchanged.
type IdentityLemmatizer struct{}

// Lemma returns word.
func (IdentityLemmatizer) Lemma(word string) string { return word }

// StemLemmatizer reduces words with the Snowball English stemmer. Stopwords
// are left unstemmed so that stopword removal still recognizes them.
type StemLemmatizer struct{}

// Lemma returns the Snowball stem of word.
func (StemLemmatizer) Lemma(word string) string {
	return english.Stem(word, false)
}

// NewLemmatizer returns the lemmatizer registered under name. dictPath, when
// non-empty, names a "word,lemma" CSV whose entries override the wordnet rules.
func NewLemmatizer(name, dictPath string) (Lemmatizer, error) {
	switch name {
	case LemmatizerWordNet, "":
		lem := NewNounLemmatizer()

		if dictPath != "" {
			err := lem.LoadDictFile(dictPath)
			if err != nil {
				return nil, err
			}
		}

		return lem, nil
	case LemmatizerSnowball:
		return StemLemmatizer{}, nil
	case LemmatizerNone:
		return IdentityLemmatizer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLemmatizer, name)
	}
}

// minLemmaLen is the shortest base form a detachment rule may produce.
const minLemmaLen = 3

// NounLemmatizer maps plural nouns to their singular using WordNet's noun
// morphology: an exception table for irregular forms followed by suffix
// detachment rules. Without a lexicon to validate candidates, each rule is
// guarded against the common non-plural endings it would otherwise mangle.
type NounLemmatizer struct {
	dict map[string]string
}

// NewNounLemmatizer returns a NounLemmatizer with the built-in exception table.
func NewNounLemmatizer() *NounLemmatizer {
	return &NounLemmatizer{dict: make(map[string]string)}
}

// AddDict registers word→lemma overrides that take precedence over every rule.
func (n *NounLemmatizer) AddDict(entries map[string]string) {
	for w, l := range entries {
		n.dict[w] = l
	}
}

// LoadDictFile reads "word,lemma" rows from path into the override table.
func (n *NounLemmatizer) LoadDictFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open lemma dictionary: %w", err)
	}
	defer f.Close()

	entries, err := ReadLemmaDict(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	n.AddDict(entries)

	return nil
}

// ReadLemmaDict parses "word,lemma" CSV rows. Rows without two fields are skipped.
func ReadLemmaDict(r io.Reader) (map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	entries := make(map[string]string)

	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read lemma dictionary: %w", err)
		}

		if len(rec) != 2 {
			continue
		}

		word, lemma := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if word == "" || lemma == "" {
			continue
		}

		entries[word] = lemma
	}

	return entries, nil
}

// Lemma returns the singular form of word, or word itself when no rule applies.
func (n *NounLemmatizer) Lemma(word string) string {
	if lemma, ok := n.dict[word]; ok {
		return lemma
	}

	if lemma, ok := nounExceptions[word]; ok {
		return lemma
	}

	if invariantNouns[word] {
		return word
	}

	for _, rule := range nounRules {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}

		if rule.guard != nil && !rule.guard(word) {
			continue
		}

		candidate := strings.TrimSuffix(word, rule.suffix) + rule.replacement
		if len([]rune(candidate)) >= minLemmaLen {
			return candidate
		}
	}

	return word
}

type nounRule struct {
	suffix      string
	replacement string
	guard       func(word string) bool
}

// nounRules are tried in order; the first rule whose guard passes and whose
// result is long enough wins.
var nounRules = []nounRule{
	{suffix: "men", replacement: "man", guard: func(w string) bool { return !menSingulars[w] }},
	{suffix: "ies", replacement: "y", guard: func(w string) bool { return !plainSPlurals[w] }},
	{suffix: "sses", replacement: "ss"},
	{suffix: "xes", replacement: "x"},
	{suffix: "ches", replacement: "ch", guard: func(w string) bool { return !plainSPlurals[w] }},
	{suffix: "shes", replacement: "sh"},
	{suffix: "s", replacement: "", guard: keepsFinalS},
}

// keepsFinalS reports whether dropping the final "s" is allowed.
func keepsFinalS(w string) bool {
	for _, ending := range []string{"ss", "us", "is"} {
		if strings.HasSuffix(w, ending) {
			return false
		}
	}

	return true
}
