/*
Package crypto implements the token pipeline: password based key derivation,
authenticated encryption and the pairing of the two into Encrypt and Decrypt.

Keys are derived with PBKDF2-HMAC-SHA256 by default, or Argon2id when
configured, and are always 32 bytes. A key exists only for the duration of
the call that derived it - it is never cached, logged or persisted, and is
overwritten before the call returns. The salt stored in each token makes the
derived key unique per encryption, which in turn is what makes the per call
random nonce safe.

Decryption failures are opaque. Whether the token was malformed, the
ciphertext tampered with or the password simply wrong, callers receive
ErrDecryptionFailed and nothing else. Do not "improve" this by returning
more granular errors; the ambiguity is the point.

	package main

	import (
		"fmt"

		"github.com/notapipeline/tokv/pkg/crypto"
		"github.com/notapipeline/tokv/pkg/types"
	)

	func main() {
		var kdf types.KDFInfo = types.DefaultKDF()

		token, err := crypto.Encrypt([]byte("the quick brown fox"), []byte("correct-horse"), kdf)
		if err != nil {
			panic(err)
		}

		plaintext, err := crypto.Decrypt(token.String(), []byte("correct-horse"), kdf)
		if err != nil {
			panic(err)
		}

		fmt.Println(string(plaintext)) // "the quick brown fox"
	}
*/
package crypto
