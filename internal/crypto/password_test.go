// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastHasher() *argon2Hasher {
	return &argon2Hasher{time: 1, memory: 1024, threads: 1, keyLen: 32, saltLen: 16}
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := fastHasher()

	encoded, err := h.Hash("p@ssw0rd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := h.Verify("p@ssw0rd", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := fastHasher()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPasswordHasher_VerifyUsesEncodedParameters(t *testing.T) {
	encoded, err := fastHasher().Hash("secret")
	require.NoError(t, err)

	// default parameters differ from the ones embedded in the hash
	ok, err := NewPasswordHasher().Verify("secret", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_InvalidFormat(t *testing.T) {
	h := fastHasher()

	for _, encoded := range []string{
		"",
		"plain",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$***$aGFzaA",
	} {
		_, err := h.Verify("x", encoded)
		assert.ErrorIs(t, err, ErrInvalidHashFormat, encoded)
	}
}
