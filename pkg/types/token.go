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

import "encoding/base64"

var b64enc = base64.URLEncoding.Strict()

// Token is the single transportable value produced by encryption. It holds
// everything required for decryption except the password.
//
// The wire format is URL-safe base64 (padded) over the byte sequence:
//
//	<salt>||<nonce>||<ct>
//
// Where:
//
//	<salt>  is the key derivation salt - 16 bytes
//	<nonce> is the AES-GCM nonce - 12 bytes
//	<ct>    is the ciphertext with the 16 byte GCM tag appended
//
// The split points are fixed offsets. There is no version or algorithm
// field, so the format cannot survive a change to the salt or nonce sizing.
// Consumers must know out of band that a token came from this scheme.
type Token struct {
	Salt, Nonce, CT []byte
}

// IsZero - returns true if the Token is empty
func (t Token) IsZero() bool {
	return t.Salt == nil && t.Nonce == nil && t.CT == nil
}

// MarshalText - convert a Token to its base64 wire form
func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// String - convert a Token to its base64 wire form
func (t Token) String() string {
	if t.IsZero() {
		return ""
	}
	packed := make([]byte, 0, len(t.Salt)+len(t.Nonce)+len(t.CT))
	packed = append(packed, t.Salt...)
	packed = append(packed, t.Nonce...)
	packed = append(packed, t.CT...)
	return b64enc.EncodeToString(packed)
}

func (t Token) Bytes() []byte {
	return []byte(t.String())
}

// UnmarshalText - parse the base64 wire form back into a Token
//
// Fails with InvalidTokenError when the input is not valid base64 for the
// URL-safe alphabet and with InvalidLengthError when the decoded bytes
// cannot hold a salt, a nonce and a minimum length ciphertext.
func (t *Token) UnmarshalText(data []byte) error {
	packed, err := b64decode(data)
	if err != nil {
		return InvalidTokenError{Err: err}
	}

	if len(packed) < MinTokenLength {
		return InvalidLengthError{Minimum: MinTokenLength, Actual: len(packed)}
	}

	t.Salt = packed[:SaltLength]
	t.Nonce = packed[SaltLength : SaltLength+NonceLength]
	t.CT = packed[SaltLength+NonceLength:]
	return nil
}

func b64decode(src []byte) (dst []byte, err error) {
	var n int
	dst = make([]byte, b64enc.DecodedLen(len(src)))
	if n, err = b64enc.Decode(dst, src); err != nil {
		return nil, err
	}
	dst = dst[:n]
	return
}
