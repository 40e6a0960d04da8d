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

// ClientCmd collects the command line options shared by all subcommands.
// Values left at their zero value are filled from the config file and the
// environment by config.MergeClientConfig.
type ClientCmd struct {
	Wordlist   string `yaml:"wordlist" env:"TOKV_WORDLIST"`
	Iterations int    `yaml:"iterations" env:"TOKV_ITERATIONS"`
	KDF        string `yaml:"kdf" env:"TOKV_KDF"`
	Words      int    `yaml:"words" env:"TOKV_WORDS"`
	JSON       bool   `yaml:"json" env:"TOKV_JSON"`
	Debug      bool   `yaml:"debug" env:"TOKV_DEBUG"`
	Quiet      bool   `yaml:"quiet" env:"TOKV_QUIET"`
}
