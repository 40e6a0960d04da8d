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
	"io"
	"log"
	"os"

	"github.com/hokaccha/go-prettyjson"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/notapipeline/tokv/pkg/config"
	"github.com/notapipeline/tokv/pkg/strength"
	"github.com/notapipeline/tokv/pkg/tools"
	"github.com/notapipeline/tokv/pkg/types"
	"github.com/notapipeline/tokv/pkg/wordlist"
)

var clientCmd types.ClientCmd = types.ClientCmd{}

var cfgFile string

// These are referenced as variables to enable them to be mocked in tests
var (
	fatal func(format string, v ...interface{}) = func(format string, v ...interface{}) {
		log.Fatalf(format, v...)
	}

	stdout io.Writer = os.Stdout

	getPassword func() ([]byte, error) = tools.LookupPassword

	readLine func(prompt string) ([]byte, error) = tools.ReadLine

	readPassword func(prompt string) ([]byte, error) = tools.ReadPassword
)

// loadClientConfig loads the config file and environment, then overlays
// any command line options.
func loadClientConfig() (*config.Config, error) {
	if cfgFile != "" {
		config.ConfigPath = func() string {
			return cfgFile
		}
	}

	if clientCmd.Quiet {
		log.SetOutput(io.Discard)
	}

	c := config.New()
	if err := c.Load(); err != nil {
		return nil, err
	}
	c.MergeClientConfig(clientCmd)

	if clientCmd.Debug {
		log.Printf("config: wordlist=%s iterations=%d kdf=%q words=%d",
			c.Wordlist, c.Iterations, c.KDF, c.Words)
	}
	return c, nil
}

func loadWordlist(c *config.Config) (wordlist.WordList, error) {
	return wordlist.Load(c.Wordlist)
}

func printJSON(v interface{}) error {
	b, err := prettyjson.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(b))
	return nil
}

// printStrength renders a strength report. The estimate is advisory only
// and the trailing note makes sure nobody forgets that.
func printStrength(report strength.Report) {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"rating", "score", "entropy"})
	t.AppendRow(table.Row{
		report.Label,
		fmt.Sprintf("%d/100", report.Score),
		fmt.Sprintf("%.1f bits", report.Bits),
	})
	fmt.Fprintln(stdout, t.Render())
	fmt.Fprintln(stdout, "Note: this is only an estimate, not a guarantee.")
}
