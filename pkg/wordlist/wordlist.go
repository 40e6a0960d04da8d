/*
 *   Copyright 2023 Martin Proffitt <mproffitt@choclab.net>
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 */

// Package wordlist loads the word source used for passphrase generation.
// A list is read once at startup and passed around as an immutable value;
// nothing in this package or its consumers mutates it afterwards.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/notapipeline/tokv/pkg/types"
)

// WordList is an ordered sequence of candidate passphrase words.
type WordList struct {
	words []string
}

// New builds a WordList from a line based source. A line becomes a word
// when, after trimming surrounding whitespace, it is non-empty and does not
// start with '#'. Order is preserved.
func New(r io.Reader) (WordList, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return WordList{}, err
	}

	if len(words) == 0 {
		return WordList{}, types.EmptyWordListError{}
	}
	return WordList{words: words}, nil
}

// Load reads a WordList from a file on disk.
func Load(path string) (WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return WordList{}, err
	}
	defer f.Close()

	list, err := New(f)
	if err != nil {
		if _, ok := err.(types.EmptyWordListError); ok {
			return WordList{}, types.EmptyWordListError{Path: path}
		}
		return WordList{}, err
	}
	return list, nil
}

// Word returns the word at index i.
func (w WordList) Word(i int) string {
	return w.words[i]
}

// Len returns the number of words in the list.
func (w WordList) Len() int {
	return len(w.words)
}

// Words returns a copy of the underlying list so callers cannot mutate the
// shared value.
func (w WordList) Words() []string {
	out := make([]string, len(w.words))
	copy(out, w.words)
	return out
}
