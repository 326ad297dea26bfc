package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashCompare(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)

	hash, err := h.Hash("correct-horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.NoError(t, h.Compare(hash, "correct-horse"))
	assert.ErrorIs(t, h.Compare(hash, "wrong-horse"), ErrMismatch)
}

func TestHashSaltsEachCall(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashRejectsLongPassword(t *testing.T) {
	t.Parallel()

	_, err := New(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestCompareGarbageHash(t *testing.T) {
	t.Parallel()

	err := New(bcrypt.MinCost).Compare("not-a-hash", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}
