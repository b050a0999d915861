package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"partnerauth/config"
	"partnerauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &entry))
		entries = append(entries, entry)
	}

	return entries
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func(sql string) func() (string, int64) {
		return func() (string, int64) { return sql, 1 }
	}

	testCases := []struct {
		name     string
		debug    bool
		begin    time.Time
		err      error
		expected string
	}{
		{name: "fast query hidden by default", begin: time.Now()},
		{name: "fast query logged in debug", debug: true, begin: time.Now(), expected: "GORM query"},
		{name: "slow query", begin: time.Now().Add(-time.Second), expected: "GORM slow query"},
		{name: "failed query", begin: time.Now(), err: errors.New("boom"), expected: "GORM query failed"},
		{name: "record not found ignored", begin: time.Now(), err: gorm.ErrRecordNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormLogger, buf := newBufferedGormLogger(tc.debug)
			gormLogger.Trace(context.Background(), tc.begin, query(`SELECT * FROM "users"`), tc.err)

			entries := decodeLines(t, buf)
			if tc.expected == "" {
				assert.Empty(t, entries)

				return
			}
			require.Len(t, entries, 1)
			assert.Equal(t, tc.expected, entries[0]["msg"])
			assert.Equal(t, `SELECT * FROM "users"`, entries[0]["sql"])
		})
	}
}

func TestGormSlogLogger_RedactsSecrets(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(true)

	statement := `UPDATE "users" SET "refresh_token"='eyJhbGciOi.abc.def',"updated_at"='2026-01-01' WHERE id = 'x'`
	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) { return statement, 1 }, nil)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	sql, _ := entries[0]["sql"].(string)
	assert.NotContains(t, sql, "eyJhbGciOi")
	assert.Contains(t, sql, `"refresh_token"='[REDACTED]'`)
	assert.Contains(t, sql, `"updated_at"='2026-01-01'`)
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(false)

	silent := gormLogger.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	assert.Empty(t, buf.String())

	gormLogger.Info(context.Background(), "hidden %s", "at warn level")
	assert.Empty(t, buf.String())

	gormLogger.Warn(context.Background(), "pool %s", "saturated")
	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "pool saturated", entries[0]["message"])
}
