package normalize

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/dfr-tools/dfrgram/pkg/alg/mapx"
	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

// Built-in stopword source names.
const (
	SourceNLTK     = "nltk"
	SourceSnowball = "snowball"
)

// ErrUnknownStopwordSource is returned for an unsupported built-in source name.
var ErrUnknownStopwordSource = errors.New("unknown stopword source")

//go:embed data/nltk_english.txt
var nltkEnglish string

// StopList decides whether a word is a stopword.
type StopList interface {
	Contains(word string) bool
}

// WordSet is a StopList backed by an explicit set of words.
type WordSet struct {
	words mapx.Set[string]
}

// NewWordSet returns a WordSet of the given words.
func NewWordSet(words ...string) WordSet {
	return WordSet{words: mapx.NewSet(words...)}
}

// Contains reports whether word is in the set.
func (s WordSet) Contains(word string) bool { return s.words.Has(word) }

// Len returns the number of distinct words.
func (s WordSet) Len() int { return len(s.words) }

// NLTKStopwords returns the NLTK English stopword list.
func NLTKStopwords() WordSet {
	words, _ := ReadWordList(strings.NewReader(nltkEnglish))

	return NewWordSet(words...)
}

// SnowballStopwords is the Snowball English stopword list.
type SnowballStopwords struct{}

// Contains reports whether Snowball considers word a stopword.
func (SnowballStopwords) Contains(word string) bool { return english.IsStopWord(word) }

// Union is a StopList matching a word found in any member.
type Union []StopList

// Contains reports whether any member list contains word.
func (u Union) Contains(word string) bool {
	for _, l := range u {
		if l.Contains(word) {
			return true
		}
	}

	return false
}

// BuiltinStopwords combines the named built-in sources. No names selects NLTK.
func BuiltinStopwords(sources ...string) (StopList, error) {
	if len(sources) == 0 {
		return NLTKStopwords(), nil
	}

	lists := make(Union, 0, len(sources))

	for _, name := range mapx.Unique(sources) {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case SourceNLTK:
			lists = append(lists, NLTKStopwords())
		case SourceSnowball:
			lists = append(lists, SnowballStopwords{})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStopwordSource, name)
		}
	}

	return lists, nil
}

// ReadWordList reads one word per line, trimming whitespace and skipping blanks.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			words = append(words, w)
		}
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return words, nil
}

// LoadWordSet reads a custom stopword file.
func LoadWordSet(path string) (WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return WordSet{}, fmt.Errorf("open stopword file: %w", err)
	}
	defer f.Close()

	words, err := ReadWordList(f)
	if err != nil {
		return WordSet{}, fmt.Errorf("%s: %w", path, err)
	}

	return NewWordSet(words...), nil
}

// RemoveStopwords drops rows whose word is in builtin, or in custom when
// includeCustom is set. A nil custom list is treated as empty.
func RemoveStopwords(t unigram.Table, builtin, custom StopList, includeCustom bool) unigram.Table {
	lists := Union{builtin}
	if includeCustom && custom != nil {
		lists = append(lists, custom)
	}

	return t.Filter(func(e unigram.Entry) bool {
		return !lists.Contains(e.Word)
	})
}
