package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Options selects and configures a backend.
type Options struct {
	Driver     string // mongo | sqlite | memory
	MongoURI   string
	DBName     string
	SQLitePath string
	Timeout    time.Duration
}

// Open returns the Store for opts.Driver.
func Open(ctx context.Context, logger *slog.Logger, opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "mongo", "mongodb":
		return ConnectMongo(ctx, logger, opts.MongoURI, opts.DBName, opts.Timeout)
	case "sqlite", "sqlite3":
		logger.Info("opening sqlite store", "path", opts.SQLitePath)
		return OpenSQLite(opts.SQLitePath)
	case "memory", "":
		logger.Warn("using in-memory store, data is lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
