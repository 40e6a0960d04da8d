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
	"os"

	"r00t2.io/gosecret"
)

// getSecretFromSecretsService reads one value from the freedesktop secret
// service, searching items stored under secretServicePath.
func getSecretFromSecretsService(what string) (string, error) {
	if os.Getenv("USE_KWALLET") != "" {
		return "", nil
	}

	service, err := gosecret.NewService()
	if err != nil {
		return "", err
	}
	defer service.Close()

	service.Legacy = true
	items, _, err := service.SearchItems(map[string]string{
		"Path": secretServicePath,
	})
	if err != nil {
		return "", err
	}

	for _, item := range items {
		attributes, err := item.Attributes()
		if err != nil {
			continue
		}
		if value, ok := attributes[what]; ok {
			return value, nil
		}
	}
	return "", nil
}
