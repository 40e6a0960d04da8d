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
package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPassphraseCmd(t *testing.T) {
	tests := []struct {
		name          string
		words         int
		expectedCount int
	}{
		{name: "default count", words: 0, expectedCount: 6},
		{name: "explicit count", words: 8, expectedCount: 8},
		{name: "too few falls back to default", words: 2, expectedCount: 6},
		{name: "too many capped at twenty", words: 50, expectedCount: 20},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fixture := setupCmdTest(t)
			clientCmd.Wordlist = writeWordlist(t, "alpha", "beta", "gamma", "delta")
			clientCmd.Words = test.words

			if err := passphraseCmd.RunE(passphraseCmd, []string{}); err != nil {
				t.Fatalf("Expected no error but got %q", err)
			}
			if fixture.errs.Len() != 0 {
				t.Fatalf("Expected no fatal output but got %q", fixture.errs.String())
			}

			lines := strings.Split(strings.TrimSpace(fixture.out.String()), "\n")
			words := strings.Split(strings.TrimSpace(lines[0]), "-")
			if len(words) != test.expectedCount {
				t.Errorf("Expected %d words but got %d in %q", test.expectedCount, len(words), lines[0])
			}
			for _, word := range words {
				switch word {
				case "alpha", "beta", "gamma", "delta":
				default:
					t.Errorf("Expected a word from the list but got %q", word)
				}
			}
		})
	}
}

func TestPassphraseCmdJSON(t *testing.T) {
	fixture := setupCmdTest(t)
	clientCmd.Wordlist = writeWordlist(t, "alpha", "beta", "gamma", "delta")
	clientCmd.JSON = true

	if err := passphraseCmd.RunE(passphraseCmd, []string{}); err != nil {
		t.Fatalf("Expected no error but got %q", err)
	}

	var result struct {
		Passphrase string `json:"passphrase"`
		Words      int    `json:"words"`
		Strength   struct {
			Bits  float64 `json:"bits"`
			Label string  `json:"label"`
			Score int     `json:"score"`
		} `json:"strength"`
	}
	if err := json.Unmarshal(fixture.out.Bytes(), &result); err != nil {
		t.Fatalf("Expected valid JSON output but got %q: %s", err, fixture.out.String())
	}
	if result.Words != 6 {
		t.Errorf("Expected 6 words but got %d", result.Words)
	}
	// 6 words from a 4 word list is exactly 12 bits
	if result.Strength.Bits != 12.0 {
		t.Errorf("Expected 12.0 bits but got %f", result.Strength.Bits)
	}
}

func TestPassphraseCmdMissingWordlist(t *testing.T) {
	fixture := setupCmdTest(t)
	clientCmd.Wordlist = "/nonexistent/wordlist.txt"

	if err := passphraseCmd.RunE(passphraseCmd, []string{}); err != nil {
		t.Fatalf("Expected no error but got %q", err)
	}
	if !strings.Contains(fixture.errs.String(), "unable to load word list:") {
		t.Errorf("Expected fatal output about the word list but got %q", fixture.errs.String())
	}
}
