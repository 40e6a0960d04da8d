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

// Package cache keeps the interactive session's secret sealed in locked
// memory so the menu loop can encrypt and decrypt without prompting again.
//
// Only the password or passphrase is cached. Derived keys never are: each
// encryption must derive from a fresh salt, and caching a key across calls
// would silently re-pair one key with many nonces.
package cache

import (
	"errors"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/notapipeline/tokv/pkg/types"
)

// ErrNoSecret is returned when the cache holds no sealed secret.
var ErrNoSecret = errors.New("no secret in cache")

// SecretCache holds the session secret sealed in a memguard enclave
// together with the KDF parameters agreed for the session.
//
// Initialization of this object is done in a singleton fashion to ensure
// the secret is not duplicated in memory.
type SecretCache struct {
	KDF types.KDFInfo

	enclave *memguard.Enclave
}

var (
	secretCache *SecretCache
	lock        = &sync.Mutex{}

	// Referenced as a variable to enable it to be mocked in tests
	seal func(b []byte) *memguard.Enclave = memguard.NewEnclave
)

// Instance gets the current instance or creates a new secret cache object
// with the given KDF parameters.
func Instance(kdf types.KDFInfo) *SecretCache {
	lock.Lock()
	defer lock.Unlock()
	if secretCache != nil {
		return secretCache
	}

	secretCache = &SecretCache{KDF: kdf}
	return secretCache
}

// Reset the secret cache
func Reset() {
	lock.Lock()
	defer lock.Unlock()
	secretCache = nil
}

// Store seals the secret into locked memory. The supplied slice is wiped
// by memguard as part of sealing and must not be reused afterwards.
func (c *SecretCache) Store(secret []byte) {
	lock.Lock()
	defer lock.Unlock()
	c.enclave = seal(secret)
}

// HasSecret reports whether a secret has been stored this session.
func (c *SecretCache) HasSecret() bool {
	lock.Lock()
	defer lock.Unlock()
	return c.enclave != nil
}

// Secret opens the enclave and returns a copy of the sealed secret.
//
// The caller owns the copy and is expected to wipe it once the operation
// that needed it returns.
func (c *SecretCache) Secret() (secret []byte, err error) {
	lock.Lock()
	defer lock.Unlock()
	if c.enclave == nil {
		return nil, ErrNoSecret
	}

	var buf *memguard.LockedBuffer
	if buf, err = c.enclave.Open(); err != nil {
		return nil, err
	}
	defer buf.Destroy()

	secret = append(secret, buf.Bytes()...)
	return secret, nil
}
