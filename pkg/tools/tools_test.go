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
package tools

import (
	"errors"
	"fmt"
	"testing"

	"github.com/twpayne/go-pinentry"
)

// skip both desktop secret stores so tests never touch dbus
func disableSecretStores(t *testing.T) {
	t.Helper()
	t.Setenv("USE_LIBSECRET", "1")
	t.Setenv("USE_KWALLET", "1")
}

func TestLookupPasswordFromEnvironment(t *testing.T) {
	disableSecretStores(t)
	t.Setenv(PasswordEnvVar, "from-the-environment")

	og := GetPassword
	defer func() {
		GetPassword = og
	}()
	GetPassword = func(title, description, prompt string) ([]byte, error) {
		t.Fatal("Expected the environment to satisfy the lookup but the prompt was used")
		return nil, nil
	}

	actual, err := LookupPassword()
	if err != nil {
		t.Fatalf("Expected no error but got %q", err)
	}
	if string(actual) != "from-the-environment" {
		t.Errorf("Expected password %q but got %q", "from-the-environment", string(actual))
	}
}

func TestLookupPasswordFallsBackToPrompt(t *testing.T) {
	disableSecretStores(t)
	t.Setenv(PasswordEnvVar, "")

	og := GetPassword
	defer func() {
		GetPassword = og
	}()
	GetPassword = func(title, description, prompt string) ([]byte, error) {
		return []byte("typed-at-the-prompt"), nil
	}

	actual, err := LookupPassword()
	if err != nil {
		t.Fatalf("Expected no error but got %q", err)
	}
	if string(actual) != "typed-at-the-prompt" {
		t.Errorf("Expected password %q but got %q", "typed-at-the-prompt", string(actual))
	}
}

func TestPasswordFallsBackToStdin(t *testing.T) {
	tests := []struct {
		name             string
		expectedResult   string
		expectedErr      error
		mockReadPassword func(prompt string) ([]byte, error)
	}{
		{
			name:           "stdin supplies the password",
			expectedResult: "password",
			expectedErr:    nil,
			mockReadPassword: func(prompt string) ([]byte, error) {
				return []byte("password"), nil
			},
		},
		{
			name:           "whitespace is trimmed",
			expectedResult: "password",
			expectedErr:    nil,
			mockReadPassword: func(prompt string) ([]byte, error) {
				return []byte("  password \n"), nil
			},
		},
		{
			name:           "no password provided",
			expectedResult: "",
			expectedErr:    fmt.Errorf("No password provided"),
			mockReadPassword: func(prompt string) ([]byte, error) {
				return []byte(""), nil
			},
		},
		{
			name:           "stdin fails",
			expectedResult: "",
			expectedErr:    errors.New("liner: function not supported in this terminal"),
			mockReadPassword: func(prompt string) ([]byte, error) {
				return nil, errors.New("liner: function not supported in this terminal")
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ope := GetPinentry
			orp := readPassword
			defer func() {
				GetPinentry = ope
				readPassword = orp
			}()
			GetPinentry = func(options ...pinentry.ClientOption) (c *pinentry.Client, err error) {
				return nil, fmt.Errorf("exec: \"pinentry\": executable file not found in $PATH")
			}
			readPassword = test.mockReadPassword

			actual, err := password("Password", "description", "Password: ")
			if string(actual) != test.expectedResult {
				t.Errorf("Expected password %q but got %q", test.expectedResult, string(actual))
			}
			if test.expectedErr != nil {
				if err == nil || err.Error() != test.expectedErr.Error() {
					t.Errorf("Expected error %v but got %v", test.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("Expected no error but got %q", err)
			}
		})
	}
}

func TestSecretStoresSkippedByEnvironment(t *testing.T) {
	t.Setenv("USE_LIBSECRET", "1")
	t.Setenv("USE_KWALLET", "1")

	if _, err := getSecretFromKWallet("anything"); err == nil {
		t.Error("Expected kwallet lookup to be skipped but got no error")
	}

	value, err := getSecretFromSecretsService("anything")
	if err != nil {
		t.Errorf("Expected the secret service to be skipped quietly but got %q", err)
	}
	if value != "" {
		t.Errorf("Expected no secret but got %q", value)
	}
}

func TestGetSecretPrefersEnvironment(t *testing.T) {
	disableSecretStores(t)
	t.Setenv("TOKV_TEST_SECRET", "value")

	if actual := getSecret("TOKV_TEST_SECRET"); actual != "value" {
		t.Errorf("Expected secret %q but got %q", "value", actual)
	}
	if actual := getSecret("TOKV_TEST_MISSING"); actual != "" {
		t.Errorf("Expected no secret but got %q", actual)
	}
}
