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
	"strings"
	"testing"

	"github.com/notapipeline/tokv/pkg/crypto"
	"github.com/notapipeline/tokv/pkg/types"
)

func encryptForTest(t *testing.T, plaintext, password string) string {
	t.Helper()
	kdf := types.KDFInfo{Type: types.KDFTypePBKDF2, Iterations: testIterations}
	token, err := crypto.Encrypt([]byte(plaintext), []byte(password), kdf)
	if err != nil {
		t.Fatalf("Expected encryption to succeed but got %q", err)
	}
	return token.String()
}

func TestDecryptCmdRoundTrip(t *testing.T) {
	fixture := setupCmdTest(t)
	token := encryptForTest(t, "the drop is off", "password")
	getPassword = func() ([]byte, error) {
		return []byte("password"), nil
	}

	if err := decryptCmd.RunE(decryptCmd, []string{token}); err != nil {
		t.Fatalf("Expected no error but got %q", err)
	}
	if fixture.errs.Len() != 0 {
		t.Fatalf("Expected no fatal output but got %q", fixture.errs.String())
	}
	if actual := lastLine(&fixture.out); actual != "the drop is off" {
		t.Errorf("Expected plaintext %q but got %q", "the drop is off", actual)
	}
}

func TestDecryptCmdPromptsForToken(t *testing.T) {
	fixture := setupCmdTest(t)
	token := encryptForTest(t, "hello", "password")
	getPassword = func() ([]byte, error) {
		return []byte("password"), nil
	}
	readLine = func(prompt string) ([]byte, error) {
		return []byte(token + "\n"), nil
	}

	if err := decryptCmd.RunE(decryptCmd, []string{}); err != nil {
		t.Fatalf("Expected no error but got %q", err)
	}
	if actual := lastLine(&fixture.out); actual != "hello" {
		t.Errorf("Expected plaintext %q but got %q", "hello", actual)
	}
}

// every failure mode must produce the same message so callers cannot tell
// a wrong password from a forged token
func TestDecryptCmdFailuresAreIndistinguishable(t *testing.T) {
	token := encryptForTest(t, "hello", "password")

	tests := []struct {
		name     string
		token    string
		password string
	}{
		{name: "wrong password", token: token, password: "not-the-password"},
		{name: "truncated token", token: token[:20], password: "password"},
		{name: "not base64", token: "!!!not-a-token!!!", password: "password"},
		{name: "tampered token", token: "A" + token[1:], password: "password"},
	}

	var messages []string
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fixture := setupCmdTest(t)
			getPassword = func() ([]byte, error) {
				return []byte(test.password), nil
			}

			if err := decryptCmd.RunE(decryptCmd, []string{test.token}); err != nil {
				t.Fatalf("Expected no error but got %q", err)
			}
			if fixture.errs.Len() == 0 {
				t.Fatal("Expected a failure message but got none")
			}
			messages = append(messages, fixture.errs.String())
		})
	}

	for i := 1; i < len(messages); i++ {
		if messages[i] != messages[0] {
			t.Errorf("Expected identical failure messages but got %q and %q", messages[0], messages[i])
		}
	}
}

func TestDecryptCmdEmptyToken(t *testing.T) {
	fixture := setupCmdTest(t)
	readLine = func(prompt string) ([]byte, error) {
		return []byte("\n"), nil
	}

	if err := decryptCmd.RunE(decryptCmd, []string{}); err != nil {
		t.Fatalf("Expected no error but got %q", err)
	}
	if !strings.Contains(fixture.errs.String(), "no token provided") {
		t.Errorf("Expected fatal output containing %q but got %q", "no token provided", fixture.errs.String())
	}
}
