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
	"fmt"
	"strings"

	"github.com/notapipeline/tokv/pkg/cache"
	"github.com/notapipeline/tokv/pkg/config"
	"github.com/notapipeline/tokv/pkg/crypto"
	"github.com/notapipeline/tokv/pkg/passphrase"
	"github.com/notapipeline/tokv/pkg/strength"
	"github.com/notapipeline/tokv/pkg/types"
)

const menu = `
What would you like to do?

  1) Encrypt a sentence
  2) Decrypt a token
  3) Forget the cached password
  0) Exit`

// runInteractive is the default when tokv is started without a subcommand.
// The password or passphrase chosen on first use is sealed into the session
// cache so a run of encrypt/decrypt operations only asks once.
func runInteractive() error {
	c, err := loadClientConfig()
	if err != nil {
		fatal("unable to load config: %s", err)
		return nil
	}

	kdf, err := c.KDFInfo()
	if err != nil {
		fatal("invalid kdf configuration: %s", err)
		return nil
	}

	for {
		fmt.Fprintln(stdout, menu)
		line, err := readLine("> ")
		if err != nil {
			// EOF or ctrl-D, leave quietly
			return nil
		}

		switch strings.TrimSpace(string(line)) {
		case "1":
			interactiveEncrypt(c, kdf)
		case "2":
			interactiveDecrypt(kdf)
		case "3":
			cache.Reset()
			fmt.Fprintln(stdout, "Cached password forgotten.")
		case "0", "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintln(stdout, "Please choose 1, 2, 3 or 0.")
		}
	}
}

// sessionSecret returns the cached secret, prompting for one first if the
// cache is empty. The caller owns the returned copy.
func sessionSecret(c *config.Config, kdf types.KDFInfo) ([]byte, error) {
	instance := cache.Instance(kdf)
	if instance.HasSecret() {
		return instance.Secret()
	}

	line, err := readLine("Use a (p)assword or a (g)enerated passphrase? [p/g]: ")
	if err != nil {
		return nil, err
	}

	var secret []byte
	switch strings.ToLower(strings.TrimSpace(string(line))) {
	case "g", "generated":
		list, err := loadWordlist(c)
		if err != nil {
			return nil, err
		}
		count := passphrase.Clamp(c.Words)
		words, err := passphrase.Generate(list, count)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(stdout, "Generated passphrase (save this - you need it to decrypt):")
		fmt.Fprintln(stdout, words)
		printStrength(strength.EstimateGenerated(count, list.Len()))
		secret = []byte(words)
	default:
		if secret, err = readPassword("Enter your password: "); err != nil {
			return nil, err
		}
		printStrength(strength.EstimateTyped(string(secret)))
	}

	// Store wipes the slice it is given, take from the cache instead.
	instance.Store(secret)
	return instance.Secret()
}

func interactiveEncrypt(c *config.Config, kdf types.KDFInfo) {
	line, err := readLine("Enter the sentence you want to encrypt: ")
	if err != nil {
		fmt.Fprintln(stdout, "unable to read input:", err)
		return
	}
	plaintext := strings.TrimSpace(string(line))
	if plaintext == "" {
		fmt.Fprintln(stdout, "Nothing to encrypt.")
		return
	}

	secret, err := sessionSecret(c, kdf)
	if err != nil {
		fmt.Fprintln(stdout, "unable to obtain a password:", err)
		return
	}

	token, err := crypto.Encrypt([]byte(plaintext), secret, kdf)
	if err != nil {
		fmt.Fprintln(stdout, "unable to encrypt:", err)
		return
	}

	fmt.Fprintln(stdout, "Your token:")
	fmt.Fprintln(stdout, token.String())
}

func interactiveDecrypt(kdf types.KDFInfo) {
	line, err := readLine("Enter the encrypted token: ")
	if err != nil {
		fmt.Fprintln(stdout, "unable to read input:", err)
		return
	}
	token := strings.TrimSpace(string(line))
	if token == "" {
		fmt.Fprintln(stdout, "Nothing to decrypt.")
		return
	}

	instance := cache.Instance(kdf)
	var secret []byte
	if instance.HasSecret() {
		if secret, err = instance.Secret(); err != nil {
			fmt.Fprintln(stdout, "unable to read the cached password:", err)
			return
		}
	} else {
		if secret, err = readPassword("Enter your password or passphrase: "); err != nil {
			fmt.Fprintln(stdout, "unable to read the password:", err)
			return
		}
		copied := make([]byte, len(secret))
		copy(copied, secret)
		instance.Store(copied)
	}

	plaintext, err := crypto.Decrypt(token, secret, kdf)
	if err != nil {
		fmt.Fprintln(stdout, decryptFailedMessage)
		// a wrong guess should not poison the rest of the session
		cache.Reset()
		return
	}

	fmt.Fprintln(stdout, "Decrypted:")
	fmt.Fprintln(stdout, string(plaintext))
}
