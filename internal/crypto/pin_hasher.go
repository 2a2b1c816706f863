// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen        = 16
	digestSep      = "$"
	defaultKeyLen  = 32
	defaultTime    = 2
	defaultMemory  = 19 * 1024 // KiB
	defaultThreads = 1
)

// ErrMalformedDigest is returned when a stored PIN digest cannot be parsed.
var ErrMalformedDigest = errors.New("malformed pin digest")

type argonPinHasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	random       io.Reader
}

// NewPinHasher returns an Argon2id [PinHasher] with the OWASP minimum
// profile: 2 iterations, 19 MiB, 1 thread, 32-byte key.
func NewPinHasher() PinHasher {
	return &argonPinHasher{
		argonTime:    defaultTime,
		argonMemory:  defaultMemory,
		argonThreads: defaultThreads,
		argonKeyLen:  defaultKeyLen,
		random:       rand.Reader,
	}
}

func (h *argonPinHasher) Hash(pin string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	return hex.EncodeToString(salt) + digestSep + hex.EncodeToString(h.derive(pin, salt)), nil
}

func (h *argonPinHasher) Verify(pin, digest string) (bool, error) {
	saltHex, keyHex, ok := strings.Cut(digest, digestSep)
	if !ok {
		return false, ErrMalformedDigest
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false, ErrMalformedDigest
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil || len(want) == 0 {
		return false, ErrMalformedDigest
	}

	got := h.derive(pin, salt)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func (h *argonPinHasher) derive(pin string, salt []byte) []byte {
	return argon2.IDKey([]byte(pin), salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)
}
