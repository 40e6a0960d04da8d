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
)

// decryptFailedMessage deliberately does not say which of the three causes
// applied - the error channel must not help anyone probing tokens.
const decryptFailedMessage = `decryption failed

Possible reasons:
  - Wrong password or passphrase
  - Corrupted or incomplete token
  - Token was not created by this tool`

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [token]",
	Short: "Decrypt a token back into its sentence",
	Long: `Decrypts a token produced by the encrypt command. The key derivation
	parameters must match the ones used for encryption - tokens do not carry
	them, so a changed iteration count or KDF simply fails authentication.

	The password is resolved the same way as for encrypt: TOKV_PASSWORD,
	the desktop secret store, then an interactive prompt.`,
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

		var token string
		if len(args) > 0 {
			token = strings.TrimSpace(args[0])
		} else {
			var line []byte
			if line, err = readLine("Enter the encrypted token: "); err != nil {
				fatal("unable to read input: %s", err)
				return nil
			}
			token = strings.TrimSpace(string(line))
		}
		if token == "" {
			fatal("no token provided")
			return nil
		}

		secret, err := getPassword()
		if err != nil {
			fatal("unable to read password: %s", err)
			return nil
		}

		plaintext, err := crypto.Decrypt(token, secret, kdf)
		if err != nil {
			fatal(decryptFailedMessage)
			return nil
		}

		if clientCmd.JSON {
			return printJSON(struct {
				Plaintext string `json:"plaintext"`
			}{Plaintext: string(plaintext)})
		}

		fmt.Fprintln(stdout, string(plaintext))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}
