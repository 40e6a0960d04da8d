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
package crypto

import (
	"crypto/cipher"
	"io"
)

// SetRandReader replaces the random source used for salts and nonces.
// Tests use this to make Encrypt deterministic; the returned function
// restores the real CSPRNG.
func SetRandReader(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}

// SetAesCipher replaces the block cipher constructor so tests can force
// construction failures. The returned function restores the original.
func SetAesCipher(fn func(key []byte) (cipher.Block, error)) func() {
	original := newAesCipher
	newAesCipher = fn
	return func() { newAesCipher = original }
}
