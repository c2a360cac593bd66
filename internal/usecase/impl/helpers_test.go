package impl

import (
	"io"
	"log/slog"

	"performiq/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(orgConcurrency int) *config.Config {
	cfg := &config.Config{}
	cfg.Sync.OrgConcurrency = orgConcurrency
	cfg.ApplyDefaults()

	return cfg
}
