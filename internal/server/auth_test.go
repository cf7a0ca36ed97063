package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)
	line := strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed))) + " student@laptop"

	path := writeAuthorizedKeys(t,
		"# lab machines",
		"",
		"not a key at all",
		line,
	)

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	key := newPublicKey(t)

	assert.False(t, isKeyAuthorized(key, filepath.Join(t.TempDir(), "missing")))
}

func TestGetKeyFingerprint(t *testing.T) {
	key := newPublicKey(t)

	fp := getKeyFingerprint(key)

	require.True(t, strings.HasPrefix(fp, "MD5:"))
	assert.Len(t, strings.Split(strings.TrimPrefix(fp, "MD5:"), ":"), 16)
	assert.Equal(t, fp, getKeyFingerprint(key))
	assert.NotEqual(t, fp, getKeyFingerprint(newPublicKey(t)))
}
