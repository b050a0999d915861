package migrations

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readUp(t *testing.T, version uint) string {
	t.Helper()

	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	body, _, err := src.ReadUp(version)
	require.NoError(t, err)
	defer body.Close()

	content, err := io.ReadAll(body)
	require.NoError(t, err)

	return string(content)
}

func TestSource_Versions(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)

	_, err = src.Next(next)
	assert.Error(t, err)
}

func TestSource_EveryUpHasDown(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	for _, version := range []uint{1, 2} {
		body, _, err := src.ReadDown(version)
		require.NoError(t, err, "version %d", version)
		_ = body.Close()
	}
}

func TestSource_Schema(t *testing.T) {
	users := readUp(t, 1)
	assert.Contains(t, users, "CONSTRAINT uq_users_email UNIQUE (email)")
	assert.Contains(t, users, "password    VARCHAR(255) NOT NULL")

	refresh := readUp(t, 2)
	assert.Contains(t, refresh, "refresh_token TEXT")
}
