package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminahr/luminahr-go/luminahr"
)

func TestFileSession_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, first.Token())

	user := &luminahr.User{ID: "u1", Email: "john@co.com", Role: luminahr.RoleEmployee}
	first.Set("tok-1", user)

	second, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", second.Token())
	require.NotNil(t, second.User())
	assert.Equal(t, "john@co.com", second.User().Email)
}

func TestFileSession_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Open(path)
	require.NoError(t, err)
	s.Set("tok-1", nil)
	require.FileExists(t, path)

	s.Clear()
	assert.Empty(t, s.Token())
	assert.NoFileExists(t, path)
}

func TestFileSession_LegacyTokenField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auth_token": "legacy-tok"}`), 0o600))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "legacy-tok", s.Token())
	assert.Nil(t, s.User())
}

func TestFileSession_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, s.Token())
}
