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

const (
	KDFTypePBKDF2   KDFType = 0
	KDFTypeArgon2id KDFType = 1
)

const (
	// SaltLength is the number of random bytes mixed into key derivation.
	// The salt is stored in clear at the front of every token.
	SaltLength = 16

	// NonceLength is the AES-GCM nonce size. A fresh nonce is drawn for
	// every encryption and stored after the salt.
	NonceLength = 12

	// TagLength is the GCM authentication tag appended to the ciphertext.
	TagLength = 16

	// KeyLength is the derived key size. 32 bytes for AES-256.
	KeyLength = 32

	// MinTokenLength is the smallest decoded token - a salt, a nonce and
	// the tag of an empty plaintext. Anything shorter is malformed.
	MinTokenLength = SaltLength + NonceLength + TagLength
)

const (
	// DefaultIterations is the PBKDF2 iteration count used when no other
	// value is configured. Tunable via config or the --iterations flag.
	DefaultIterations = 200000

	// DefaultMemory is the Argon2id memory cost in MB.
	DefaultMemory = 64

	// DefaultParallelism is the Argon2id thread count.
	DefaultParallelism = 4

	// DefaultWords is the passphrase word count used when the caller gives
	// no preference.
	DefaultWords = 6

	// MinWords and MaxWords bound interactive word count selection. Counts
	// outside the range are clamped, not rejected.
	MinWords = 4
	MaxWords = 20

	// WordSeparator joins the words of a generated passphrase.
	WordSeparator = "-"
)
