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
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tokv",
	Short: "Password based token encryption tool",
	Long: `
Password based token encryption tool

Encrypts short pieces of text into a single portable token that carries
everything needed for decryption except the password. Tokens are AES-256-GCM
over a key derived from your password with PBKDF2 (or Argon2id when
configured) and travel as one URL-safe base64 string.

The companion passphrase and strength commands help you pick a secret worth
protecting the token with.

If called without any subcommands an interactive menu is started, mirroring
what the encrypt and decrypt subcommands do but keeping your password in
locked memory for the duration of the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fatal("Error: %s", err)
	}
}

func init() {
	// These are conistent across all commands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tokv/client.yaml)")
	rootCmd.PersistentFlags().StringVarP(&clientCmd.Wordlist, "wordlist", "w", "", "path to the passphrase word list")
	rootCmd.PersistentFlags().IntVarP(&clientCmd.Iterations, "iterations", "i", 0, "key derivation iteration count")
	rootCmd.PersistentFlags().StringVar(&clientCmd.KDF, "kdf", "", "key derivation function (pbkdf2 or argon2id)")
	rootCmd.PersistentFlags().IntVarP(&clientCmd.Words, "words", "n", 0, "number of words in a generated passphrase")
	rootCmd.PersistentFlags().BoolVar(&clientCmd.JSON, "json", false, "emit machine readable output")
	rootCmd.PersistentFlags().BoolVar(&clientCmd.Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&clientCmd.Quiet, "quiet", false, "disable all logging")
}
