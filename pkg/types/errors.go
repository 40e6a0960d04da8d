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
package types

import "fmt"

// InvalidTokenError - the token is not valid base64 for the URL-safe
// alphabet. Never shown to end users during decryption; crypto.Decrypt
// collapses it into the generic decryption failure.
type InvalidTokenError struct {
	Err error
}

func (e InvalidTokenError) Error() string {
	return fmt.Sprintf("token is not valid base64: %v", e.Err)
}

// InvalidLengthError - the token decoded but cannot hold a salt, nonce and
// tag. As with InvalidTokenError, callers of Decrypt never see this.
type InvalidLengthError struct {
	Minimum, Actual int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("token too short: expected at least %d bytes, got %d", e.Minimum, e.Actual)
}

// InvalidParameterError - a caller supplied numeric argument violates its
// precondition. These are programmer errors and are never retried.
type InvalidParameterError struct {
	Name  string
	Value int
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %d", e.Name, e.Value)
}

// UnsupportedKDFError - the configured KDF name is not recognised.
type UnsupportedKDFError struct {
	Value string
}

func (e UnsupportedKDFError) Error() string {
	return fmt.Sprintf("unsupported kdf type: %q", e.Value)
}

// EmptyWordListError - the word list source yielded no usable words. Fatal
// to passphrase generation, raised at load time.
type EmptyWordListError struct {
	Path string
}

func (e EmptyWordListError) Error() string {
	if e.Path == "" {
		return "word list is empty"
	}
	return fmt.Sprintf("word list is empty: check %s", e.Path)
}
