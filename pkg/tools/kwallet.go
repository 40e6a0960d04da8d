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
package tools

import (
	"fmt"
	"os"

	"r00t2.io/gokwallet"
)

// getSecretFromKWallet reads one value out of the tool's KWallet map. Only
// the secretFolder/secretMap location is consulted; anything else in the
// wallet is none of our business.
func getSecretFromKWallet(what string) (string, error) {
	if os.Getenv("USE_LIBSECRET") != "" {
		return "", fmt.Errorf("Skipping kwallet")
	}

	opts := gokwallet.DefaultRecurseOpts
	opts.AllWalletItems = true
	wm, err := gokwallet.NewWalletManager(opts, secretWallet)
	if err != nil {
		return "", err
	}

	for _, wallet := range wm.Wallets {
		folder, ok := wallet.Folders[secretFolder]
		if !ok {
			continue
		}
		m, ok := folder.Maps[secretMap]
		if !ok {
			continue
		}
		if value, ok := m.Value[what]; ok {
			return value, nil
		}
	}
	return "", nil
}
