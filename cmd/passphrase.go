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

	"github.com/spf13/cobra"

	"github.com/notapipeline/tokv/pkg/passphrase"
	"github.com/notapipeline/tokv/pkg/strength"
)

// passphraseCmd represents the passphrase command
var passphraseCmd = &cobra.Command{
	Use:   "passphrase",
	Short: "Generate a random passphrase from the word list",
	Long: `Draws words uniformly at random from the configured word list and
	joins them with hyphens. Words are drawn with replacement so the entropy
	is exactly words * log2(list size) bits regardless of repeats.

	Fewer than 4 words falls back to the default of 6, more than 20 is
	capped at 20.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadClientConfig()
		if err != nil {
			fatal("unable to load config: %s", err)
			return nil
		}

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
		report := strength.EstimateGenerated(count, list.Len())

		if clientCmd.JSON {
			return printJSON(struct {
				Passphrase string          `json:"passphrase"`
				Words      int             `json:"words"`
				Strength   strength.Report `json:"strength"`
			}{
				Passphrase: words,
				Words:      count,
				Strength:   report,
			})
		}

		fmt.Fprintln(stdout, words)
		printStrength(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passphraseCmd)
}
