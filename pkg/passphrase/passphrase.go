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

// Package passphrase generates human memorable secrets from a word list.
package passphrase

import (
	cryptorand "crypto/rand"
	"math/big"
	"strings"

	"github.com/notapipeline/tokv/pkg/types"
	"github.com/notapipeline/tokv/pkg/wordlist"
)

// randIndex is referenced as a variable to enable it to be mocked in tests
var randIndex func(n int) (int, error) = func(n int) (int, error) {
	v, err := cryptorand.Int(cryptorand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Generate draws count words uniformly at random from the list and joins
// them with hyphens.
//
// Draws are independent and with replacement, so a word may repeat within
// one passphrase. The entropy model in pkg/strength assumes exactly this.
func Generate(list wordlist.WordList, count int) (string, error) {
	if count <= 0 {
		return "", types.InvalidParameterError{Name: "count", Value: count}
	}

	words := make([]string, count)
	for i := 0; i < count; i++ {
		n, err := randIndex(list.Len())
		if err != nil {
			return "", err
		}
		words[i] = list.Word(n)
	}
	return strings.Join(words, types.WordSeparator), nil
}

// Clamp folds an interactive word count choice into the supported range.
// Too short falls back to the default rather than the minimum so that a
// careless choice still lands on a reasonable passphrase.
func Clamp(count int) int {
	switch {
	case count < types.MinWords:
		return types.DefaultWords
	case count > types.MaxWords:
		return types.MaxWords
	}
	return count
}
