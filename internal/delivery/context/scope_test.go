package context

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	record := map[string]any{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))

	return record
}

func TestWithAccount_TagsScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := newJSONLogger(&buf)
	orgID, accountID := uuid.New(), uuid.New()

	ctx, _ := WithRequestScope(context.Background(), base, "job-1")
	ctx, _ = WithOrg(ctx, base, orgID)
	ctx, _ = WithAccount(ctx, base, "slack", accountID)

	GetLoggerOrDefault(ctx, nil).Info("synced")

	record := lastRecord(t, &buf)
	assert.Equal(t, "job-1", record[AttrRequestID])
	assert.Equal(t, orgID.String(), record[AttrOrgID])
	assert.Equal(t, "slack", record[AttrProvider])
	assert.Equal(t, accountID.String(), record[AttrAccountID])
	assert.Equal(t, "job-1", GetRequestIDFromContext(ctx))
}

func TestWithOrg_OutsideScopeUsesFallback(t *testing.T) {
	var buf bytes.Buffer
	orgID := uuid.New()

	ctx, logger := WithOrg(context.Background(), newJSONLogger(&buf), orgID)
	logger.Info("listing")

	assert.Equal(t, orgID.String(), lastRecord(t, &buf)[AttrOrgID])
	assert.Same(t, logger, GetLoggerOrDefault(ctx, nil))
	assert.Empty(t, GetRequestIDFromContext(ctx))
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))

	fresh := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, err := uuid.Parse(GetRequestID(fresh))
	assert.NoError(t, err)
}
