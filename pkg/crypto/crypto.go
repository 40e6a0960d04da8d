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
	"crypto/aes"
	"crypto/cipher"
	cryptorand "crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"github.com/notapipeline/tokv/pkg/types"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// ErrDecryptionFailed is the single failure Decrypt ever reports. A wrong
// password, a corrupted ciphertext and a malformed token are deliberately
// indistinguishable so that a caller probing tokens learns nothing from the
// error channel.
var ErrDecryptionFailed = errors.New("decryption failed")

// These are referenced as variables to enable them to be mocked in tests
var (
	randReader io.Reader = cryptorand.Reader

	newAesCipher func(key []byte) (cipher.Block, error) = aes.NewCipher
)

// DeriveKey derives a 32 byte key from a password and salt.
//
// Identical inputs always yield the identical key - decryption depends on
// this. The iteration count scales the cost of an offline brute force
// linearly and is a caller controlled trade-off, not a constant.
func DeriveKey(password, salt []byte, kdf types.KDFInfo) ([]byte, error) {
	if len(salt) != types.SaltLength {
		return nil, types.InvalidParameterError{Name: "salt length", Value: len(salt)}
	}
	if kdf.Iterations <= 0 {
		return nil, types.InvalidParameterError{Name: "iterations", Value: kdf.Iterations}
	}

	switch kdf.Type {
	case types.KDFTypePBKDF2:
		return pbkdf2.Key(password, salt, kdf.Iterations, types.KeyLength, sha256.New), nil
	case types.KDFTypeArgon2id:
		var (
			memory      int = types.DefaultMemory
			parallelism int = types.DefaultParallelism
		)
		if kdf.Memory != nil && *kdf.Memory > 0 {
			memory = *kdf.Memory
		}
		if kdf.Parallelism != nil && *kdf.Parallelism > 0 {
			parallelism = *kdf.Parallelism
		}
		return argon2.IDKey(password, salt, uint32(kdf.Iterations),
			uint32(memory*1024), uint8(parallelism), types.KeyLength), nil
	default:
		return nil, types.UnsupportedKDFError{Value: kdf.Type.String()}
	}
}

// Seal encrypts plaintext with AES-256-GCM and appends the authentication
// tag. No additional authenticated data is bound.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open verifies and decrypts a Seal output. Tag comparison inside GCM is
// constant time; on any mismatch the only error is ErrDecryptionFailed.
func Open(key, nonce, ct []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != types.KeyLength {
		return nil, types.InvalidParameterError{Name: "key length", Value: len(key)}
	}
	if len(nonce) != types.NonceLength {
		return nil, types.InvalidParameterError{Name: "nonce length", Value: len(nonce)}
	}

	block, err := newAesCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt runs the full pipeline: fresh salt, derive, fresh nonce, seal.
//
// Both the salt and the nonce are drawn fresh on every call. The fresh salt
// yields a fresh key, which is what keeps nonce reuse under one key out of
// reach. Anything caching derived keys across calls would break that chain.
func Encrypt(plaintext, password []byte, kdf types.KDFInfo) (types.Token, error) {
	t := types.Token{}

	t.Salt = make([]byte, types.SaltLength)
	if _, err := io.ReadFull(randReader, t.Salt); err != nil {
		return types.Token{}, err
	}

	key, err := DeriveKey(password, t.Salt, kdf)
	if err != nil {
		return types.Token{}, err
	}
	defer wipe(key)

	t.Nonce = make([]byte, types.NonceLength)
	if _, err := io.ReadFull(randReader, t.Nonce); err != nil {
		return types.Token{}, err
	}

	if t.CT, err = Seal(key, t.Nonce, plaintext); err != nil {
		return types.Token{}, err
	}
	return t, nil
}

// Decrypt reverses Encrypt. The KDF parameters must match the ones used to
// create the token; the token itself does not carry them.
//
// Apart from invalid KDF parameters, which are a caller bug detected before
// any token material is touched, every failure surfaces as
// ErrDecryptionFailed.
func Decrypt(token string, password []byte, kdf types.KDFInfo) ([]byte, error) {
	if kdf.Iterations <= 0 {
		return nil, types.InvalidParameterError{Name: "iterations", Value: kdf.Iterations}
	}

	var t types.Token
	if err := t.UnmarshalText([]byte(token)); err != nil {
		return nil, ErrDecryptionFailed
	}

	key, err := DeriveKey(password, t.Salt, kdf)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer wipe(key)

	plaintext, err := Open(key, t.Nonce, t.CT)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// wipe overwrites key material once the operation holding it returns.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
