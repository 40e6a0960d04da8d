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
package cache

import (
	"errors"
	"testing"

	"github.com/notapipeline/tokv/pkg/types"
)

var pbkdf types.KDFInfo = types.KDFInfo{
	Type:       types.KDFTypePBKDF2,
	Iterations: 1000,
}

func setupSuite(t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		Reset()
	}
}

func TestInstanceReturnSameInstance(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	cache := Instance(pbkdf)
	secretCache := Instance(pbkdf)

	if cache != secretCache {
		t.Errorf("Expected %+v but got %+v", secretCache, cache)
	}
}

func TestInstanceKeepsKDF(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	cache := Instance(pbkdf)
	if cache.KDF.Type != types.KDFTypePBKDF2 || cache.KDF.Iterations != 1000 {
		t.Errorf("Expected KDF %+v but got %+v", pbkdf, cache.KDF)
	}
}

func TestStoreAndSecret(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	cache := Instance(pbkdf)
	if cache.HasSecret() {
		t.Error("Expected no secret before Store")
	}

	cache.Store([]byte("correct-horse-battery-staple"))
	if !cache.HasSecret() {
		t.Error("Expected a secret after Store")
	}

	secret, err := cache.Secret()
	if err != nil {
		t.Fatalf("Expected nil error but got %v", err)
	}
	if string(secret) != "correct-horse-battery-staple" {
		t.Errorf("Expected stored secret but got %q", secret)
	}
}

func TestStoreWipesInput(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	input := []byte("masterpw")
	cache := Instance(pbkdf)
	cache.Store(input)

	var wiped bool = true
	for _, b := range input {
		if b != 0 {
			wiped = false
		}
	}
	if !wiped {
		t.Errorf("Expected input to be wiped after sealing but got %q", input)
	}
}

func TestSecretWithoutStore(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	cache := Instance(pbkdf)
	if _, err := cache.Secret(); !errors.Is(err, ErrNoSecret) {
		t.Errorf("Expected ErrNoSecret but got %v", err)
	}
}

func TestResetDropsSecret(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	cache := Instance(pbkdf)
	cache.Store([]byte("masterpw"))
	Reset()

	fresh := Instance(pbkdf)
	if fresh.HasSecret() {
		t.Error("Expected a fresh cache after Reset")
	}
}
