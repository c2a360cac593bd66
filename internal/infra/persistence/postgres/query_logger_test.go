package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"performiq/config"
	deliverycontext "performiq/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		record := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &record))
		out = append(out, record)
	}

	return out
}

func statement() (string, int64) {
	return "SELECT 1", 1
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name        string
		logNotFound bool
		elapsed     time.Duration
		err         error
		wantMsg     string
	}{
		{name: "fast statement is quiet", elapsed: time.Millisecond},
		{name: "slow statement warns", elapsed: time.Second, wantMsg: "Slow database query"},
		{name: "failure is logged", elapsed: time.Millisecond, err: errors.New("duplicate key"), wantMsg: "Database query failed"},
		{name: "record not found ignored", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
		{name: "record not found opted in", logNotFound: true, elapsed: time.Millisecond, err: gorm.ErrRecordNotFound, wantMsg: "Database query failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Database.SlowQueryThreshold = 100 * time.Millisecond
			cfg.Database.LogRecordNotFound = tt.logNotFound

			q := newQueryLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)
			q.Trace(context.Background(), time.Now().Add(-tt.elapsed), statement, tt.err)

			got := records(t, &buf)
			if tt.wantMsg == "" {
				assert.Empty(t, got)

				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantMsg, got[0]["msg"])
			assert.Equal(t, "SELECT 1", got[0]["sql"])
		})
	}
}

func TestQueryLogger_UsesScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	orgID := uuid.New()

	ctx, _ := deliverycontext.WithOrg(context.Background(), slog.New(slog.NewJSONHandler(&scoped, nil)), orgID)

	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = time.Millisecond
	q := newQueryLogger(slog.New(slog.NewJSONHandler(&base, nil)), cfg)
	q.Trace(ctx, time.Now().Add(-time.Second), statement, nil)

	assert.Empty(t, base.String())
	got := records(t, &scoped)
	require.Len(t, got, 1)
	assert.Equal(t, orgID.String(), got[0][deliverycontext.AttrOrgID])
}

func TestQueryLogger_DebugLogsEveryStatement(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	q := newQueryLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)
	q.Trace(context.Background(), time.Now(), statement, nil)
	q.Info(context.Background(), "migrated %d tables", 4)

	got := records(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "Database query", got[0]["msg"])
	assert.Equal(t, "migrated 4 tables", got[1]["detail"])
}
