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
	"strings"

	"github.com/spf13/cobra"

	"github.com/notapipeline/tokv/pkg/strength"
)

// strengthCmd represents the strength command
var strengthCmd = &cobra.Command{
	Use:   "strength [password]",
	Short: "Estimate the strength of a typed password",
	Long: `Estimates the entropy of a password from its length and the
	character classes it uses, then rates it on a scale from VERY WEAK to
	VERY STRONG. The model assumes each character was chosen uniformly from
	the union of the classes present, which real passwords rarely are, so
	treat the result as an upper bound.

	The password can be passed as an argument for scripting, but prefer the
	prompt - arguments end up in shell history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			password string
			err      error
		)
		if len(args) > 0 {
			password = strings.Join(args, " ")
		} else {
			var line []byte
			if line, err = readPassword("Enter the password to rate: "); err != nil {
				fatal("unable to read password: %s", err)
				return nil
			}
			password = string(line)
		}
		if password == "" {
			fatal("nothing to rate")
			return nil
		}

		report := strength.EstimateTyped(password)
		if clientCmd.JSON {
			return printJSON(report)
		}
		printStrength(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(strengthCmd)
}
