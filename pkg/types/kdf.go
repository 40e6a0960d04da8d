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

func IntPtr(i int) *int {
	return &i
}

type KDFType int

// String - convert a KDFType to its config file representation
func (t KDFType) String() string {
	switch t {
	case KDFTypePBKDF2:
		return "pbkdf2"
	case KDFTypeArgon2id:
		return "argon2id"
	}
	return fmt.Sprintf("KDFType(%d)", int(t))
}

// ParseKDFType - map a config file value back to a KDFType
func ParseKDFType(s string) (KDFType, error) {
	switch s {
	case "", "pbkdf2":
		return KDFTypePBKDF2, nil
	case "argon2id":
		return KDFTypeArgon2id, nil
	}
	return 0, UnsupportedKDFError{Value: s}
}

// KDFInfo carries the key derivation parameters for one encrypt or decrypt
// call. Tokens do not embed these - both sides must agree on them out of
// band, normally through the config file.
type KDFInfo struct {
	Type        KDFType `json:"kdf"`
	Iterations  int     `json:"kdfIterations"`
	Memory      *int    `json:"kdfMemory,omitempty"`
	Parallelism *int    `json:"kdfParallelism,omitempty"`
}

// DefaultKDF returns the PBKDF2 parameters used when nothing is configured.
func DefaultKDF() KDFInfo {
	return KDFInfo{
		Type:       KDFTypePBKDF2,
		Iterations: DefaultIterations,
	}
}
