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

	"github.com/spf13/cobra"

	"github.com/notapipeline/tokv/pkg/crypto"
	"github.com/notapipeline/tokv/pkg/passphrase"
	"github.com/notapipeline/tokv/pkg/strength"
)

var generatePassphrase bool

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypt a sentence into a portable token",
	Long: `Encrypts the given text with a key derived from your password and
	prints a single base64 token carrying the salt, nonce and ciphertext.
	Save the token anywhere - it is useless without the password.

	The password is taken from the TOKV_PASSWORD environment variable, the
	desktop secret store, or an interactive prompt, in that order. With
	--generate a random passphrase is drawn from the word list instead,
	printed together with its strength estimate.

	Encrypt a sentence with a typed password:

		tokv encrypt "meet me at the usual place"

	Generate an eight word passphrase and encrypt with it:

		tokv encrypt --generate -n 8 "meet me at the usual place"`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		var plaintext string = strings.Join(args, " ")
		if plaintext == "" {
			var line []byte
			if line, err = readLine("Enter the sentence you want to encrypt: "); err != nil {
				fatal("unable to read input: %s", err)
				return nil
			}
			plaintext = strings.TrimSpace(string(line))
		}
		if plaintext == "" {
			fatal("nothing to encrypt")
			return nil
		}

		var (
			secret []byte
			report strength.Report
		)

		if generatePassphrase {
			list, err := loadWordlist(c)
			if err != nil {
				fatal("unable to load word list: %s", err)
				return nil
			}

			count := passphrase.Clamp(c.Words)
			words, err := passphrase.Generate(list, count)
			if err != nil {
				fatal("unable to generate passphrase: %s", err)
				return nil
			}

			secret = []byte(words)
			report = strength.EstimateGenerated(count, list.Len())

			if !clientCmd.JSON {
				fmt.Fprintln(stdout, "Generated passphrase (save this - you need it to decrypt):")
				fmt.Fprintln(stdout, words)
				printStrength(report)
			}
		} else {
			if secret, err = getPassword(); err != nil {
				fatal("unable to read password: %s", err)
				return nil
			}
			report = strength.EstimateTyped(string(secret))
			if !clientCmd.JSON {
				printStrength(report)
			}
		}

		token, err := crypto.Encrypt([]byte(plaintext), secret, kdf)
		if err != nil {
			fatal("unable to encrypt: %s", err)
			return nil
		}

		if clientCmd.JSON {
			result := struct {
				Token      string          `json:"token"`
				Passphrase string          `json:"passphrase,omitempty"`
				Strength   strength.Report `json:"strength"`
			}{
				Token:    token.String(),
				Strength: report,
			}
			if generatePassphrase {
				result.Passphrase = string(secret)
			}
			return printJSON(result)
		}

		fmt.Fprintln(stdout, token.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&generatePassphrase, "generate", "g", false, "generate a random passphrase and encrypt with it")
}
