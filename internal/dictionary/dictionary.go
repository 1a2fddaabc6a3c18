// Package dictionary provides word lists and edit-distance ranking for
// swipe decode suggestions.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Dictionary is an ordered set of known words. Insertion order is
// preserved because suggestion ties are broken by dictionary order.
type Dictionary struct {
	words []string
	index map[string]struct{}
}

// New builds a dictionary from the given words. Words are lower-cased;
// empty entries and duplicates are skipped, keeping the first
// occurrence.
func New(words []string) *Dictionary {
	d := &Dictionary{
		index: make(map[string]struct{}, len(words)),
	}

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := d.index[w]; ok {
			continue
		}
		d.words = append(d.words, w)
		d.index[w] = struct{}{}
	}

	return d
}

// Load reads one word per line from the provided file path. Blank
// lines are skipped.
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s is empty", path)
	}

	return New(words), nil
}

// Contains reports whether the word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[strings.ToLower(word)]
	return ok
}

// Words returns the words in dictionary order. The slice is shared;
// callers must not modify it.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}
