// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/pin_hasher_mock.go -package=mock

// PinHasher derives and checks the stored digest of the app-lock PIN.
//
// The digest format is hex(salt) + "$" + hex(argon2id(pin, salt)). It is
// deterministic for a given salt, so a digest written by one process verifies
// in any later process with the same parameters.
type PinHasher interface {
	// Hash derives a digest of pin under a fresh random salt.
	Hash(pin string) (string, error)

	// Verify reports whether pin matches the stored digest. A malformed digest
	// is an error, a mismatch is not.
	Verify(pin, digest string) (bool, error)
}
