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
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v2"

	"github.com/notapipeline/tokv/pkg/types"
)

// ConfigPath is referenced as a variable to enable it to be mocked in tests
var ConfigPath func() string = getConfigPath

type Config struct {
	Wordlist    string `yaml:"wordlist" env:"TOKV_WORDLIST"`
	Iterations  int    `yaml:"iterations" env:"TOKV_ITERATIONS"`
	KDF         string `yaml:"kdf" env:"TOKV_KDF"`
	Memory      int    `yaml:"memory" env:"TOKV_MEMORY"`
	Parallelism int    `yaml:"parallelism" env:"TOKV_PARALLELISM"`
	Words       int    `yaml:"words" env:"TOKV_WORDS"`
}

func New() *Config {
	return &Config{}
}

// Load the config file from the user local config directory
//
// The config file will be loaded from ~/.config/tokv/client.yaml if it
// exists and then the environment will be checked for overrides.
//
// Callers are expected to call `MergeClientConfig` afterwards to overlay
// command line options, then `KDFInfo` for the derived KDF parameters.
func (c *Config) Load() (err error) {
	if err = c.loadYaml(); err != nil {
		return
	}
	if err = c.loadEnv(); err != nil {
		return
	}

	c.applyDefaults()
	return
}

func (c *Config) loadYaml() (err error) {
	var (
		cp       string = ConfigPath()
		yamlFile []byte
	)

	if _, err = os.Stat(cp); errors.Is(err, os.ErrNotExist) {
		err = nil
		return
	}
	if yamlFile, err = os.ReadFile(cp); err != nil {
		return err
	}

	log.Printf("Loading config file %s\n", cp)
	return yaml.Unmarshal(yamlFile, c)
}

func (c *Config) loadEnv() (err error) {
	return env.Parse(c)
}

func (c *Config) applyDefaults() {
	if c.Wordlist == "" {
		c.Wordlist = "wordlist.txt"
	}
	if c.Iterations == 0 {
		c.Iterations = types.DefaultIterations
	}
	if c.Words == 0 {
		c.Words = types.DefaultWords
	}
}

// MergeClientConfig overlays non-zero command line options onto the loaded
// configuration.
func (c *Config) MergeClientConfig(cmd types.ClientCmd) {
	if cmd.Wordlist != "" {
		c.Wordlist = cmd.Wordlist
	}
	if cmd.Iterations != 0 {
		c.Iterations = cmd.Iterations
	}
	if cmd.KDF != "" {
		c.KDF = cmd.KDF
	}
	if cmd.Words != 0 {
		c.Words = cmd.Words
	}
}

// KDFInfo resolves the configured KDF name and costs into the parameter
// set the crypto package consumes.
func (c *Config) KDFInfo() (types.KDFInfo, error) {
	kdfType, err := types.ParseKDFType(c.KDF)
	if err != nil {
		return types.KDFInfo{}, err
	}

	info := types.KDFInfo{
		Type:       kdfType,
		Iterations: c.Iterations,
	}
	if kdfType == types.KDFTypeArgon2id {
		if c.Memory != 0 {
			info.Memory = types.IntPtr(c.Memory)
		}
		if c.Parallelism != 0 {
			info.Parallelism = types.IntPtr(c.Parallelism)
		}
	}
	return info, nil
}

func getConfigPath() string {
	home, _ := os.UserHomeDir()
	return fmt.Sprintf("%s/.config/tokv/client.yaml", home)
}
