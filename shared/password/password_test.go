package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, password.Verify("correct horse battery", hash))
	assert.ErrorIs(t, password.Verify("wrong password", hash), password.ErrInvalidPassword)
}

func TestHash_EmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "some-hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("some-password", ""), password.ErrInvalidPassword)
}
