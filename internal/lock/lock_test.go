package lock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePasscode(t *testing.T) {
	for _, ok := range []string{"1234", "000000", "98765"} {
		assert.NoError(t, ValidatePasscode(ok), ok)
	}
	for _, bad := range []string{"", "123", "1234567", "12a4", "12 4", "١٢٣٤"} {
		assert.ErrorIs(t, ValidatePasscode(bad), ErrInvalidPasscode, bad)
	}
}

func TestHashAndVerifyPasscode(t *testing.T) {
	hash, err := HashPasscode("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.NoError(t, VerifyPasscode(hash, "1234"))
	assert.ErrorIs(t, VerifyPasscode(hash, "9999"), ErrIncorrectPasscode)
}

func TestHashPasscodeRejectsInvalid(t *testing.T) {
	_, err := HashPasscode("12")
	assert.ErrorIs(t, err, ErrInvalidPasscode)
}

func TestGeneratePasscode(t *testing.T) {
	code, err := GeneratePasscode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.NoError(t, ValidatePasscode(code))
}

func TestGateResolution(t *testing.T) {
	cases := []struct {
		name          string
		authenticated bool
		lockEnabled   bool
		want          State
	}{
		{"no session", false, false, StateUnauthenticated},
		{"no session with lock", false, true, StateUnauthenticated},
		{"session without lock", true, false, StateUnlocked},
		{"session with lock", true, true, StateLocked},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGate()
			assert.Equal(t, StateLoading, g.State())
			assert.Equal(t, c.want, g.ResolveSession(c.authenticated, c.lockEnabled))
		})
	}
}

func TestGateResolvesOnce(t *testing.T) {
	g := NewGate()
	g.ResolveSession(true, true)
	assert.Equal(t, StateLocked, g.ResolveSession(false, false))
}

func TestGateUnlock(t *testing.T) {
	g := NewGate()
	g.ResolveSession(true, true)

	assert.Equal(t, StateLocked, g.Unlock(false))
	assert.Equal(t, StateUnlocked, g.Unlock(true))
	assert.Equal(t, StateUnlocked, g.Unlock(false))
}

func TestGateUnlockOnlyFromLocked(t *testing.T) {
	g := NewGate()
	assert.Equal(t, StateLoading, g.Unlock(true))

	g2 := NewGate()
	g2.ResolveSession(false, false)
	assert.Equal(t, StateUnauthenticated, g2.Unlock(true))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "locked", StateLocked.String())
	assert.Equal(t, "unlocked", StateUnlocked.String())
}
