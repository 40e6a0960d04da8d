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

// Package strength estimates the entropy of a secret and maps it to a
// human readable rating.
//
// Both entropy models are heuristics. They give a person a feel for how
// guessable a secret is; they are not a cryptographic guarantee and must
// never gate acceptance of a secret programmatically.
package strength

import (
	"math"
	"unicode"
)

// Per class alphabet contributions for typed passwords. The symbol figure
// is a rough count of printable punctuation.
const (
	lowerSize  = 26
	upperSize  = 26
	digitSize  = 10
	symbolSize = 32
)

// Rating is a label and 0-100 display score for an entropy estimate.
type Rating struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Report pairs a rating with the bits that produced it.
type Report struct {
	Bits  float64 `json:"bits"`
	Label string  `json:"label"`
	Score int     `json:"score"`
}

// Generated estimates the entropy of a passphrase built by drawing count
// words uniformly and independently from a list of the given size:
//
//	bits = count * log2(size)
//
// Returns 0 when count <= 0 or size <= 1.
func Generated(count, size int) float64 {
	if count <= 0 || size <= 1 {
		return 0
	}
	return float64(count) * math.Log2(float64(size))
}

// Typed estimates the entropy of a user typed password from the character
// classes it uses: each class present at least once contributes its
// alphabet size, and the bits are len * log2(total).
//
// Returns 0 for an empty string or one using no recognised class.
func Typed(secret string) float64 {
	if secret == "" {
		return 0
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	var length int
	for _, c := range secret {
		length++
		switch {
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		case !unicode.IsLetter(c) && !unicode.IsDigit(c):
			hasSymbol = true
		}
	}

	var size int
	if hasLower {
		size += lowerSize
	}
	if hasUpper {
		size += upperSize
	}
	if hasDigit {
		size += digitSize
	}
	if hasSymbol {
		size += symbolSize
	}
	if size == 0 {
		return 0
	}

	return float64(length) * math.Log2(float64(size))
}

// Rate maps bits of entropy onto a fixed step function of labels and
// display scores.
func Rate(bits float64) Rating {
	switch {
	case bits < 30:
		return Rating{Label: "VERY WEAK", Score: 10}
	case bits < 40:
		return Rating{Label: "Weak", Score: 25}
	case bits < 60:
		return Rating{Label: "Okay", Score: 40}
	case bits < 80:
		return Rating{Label: "Moderate", Score: 60}
	case bits < 100:
		return Rating{Label: "Strong", Score: 80}
	}
	return Rating{Label: "VERY STRONG", Score: 95}
}

// EstimateTyped builds a full report for a typed secret.
func EstimateTyped(secret string) Report {
	return report(Typed(secret))
}

// EstimateGenerated builds a full report for a generated passphrase from
// its generation parameters.
func EstimateGenerated(count, size int) Report {
	return report(Generated(count, size))
}

func report(bits float64) Report {
	rating := Rate(bits)
	return Report{
		Bits:  bits,
		Label: rating.Label,
		Score: rating.Score,
	}
}
