package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"rating/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool, slow time.Duration) (*bytes.Buffer, *gormSlogLogger) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Database.SlowQueryThreshold = slow

	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return buf, newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func statement(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		elapsed  time.Duration
		err      error
		contains string
		silent   bool
	}{
		{name: "failed query", err: errors.New("boom"), contains: "Query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound, silent: true},
		{name: "slow query", elapsed: time.Second, contains: "Slow query"},
		{name: "fast query without debug", silent: true},
		{name: "fast query with debug", debug: true, contains: "msg=Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, l := newBufferedGormLogger(tt.debug, 100*time.Millisecond)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), statement("SELECT 1"), tt.err)

			if tt.silent {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.contains)
			assert.Contains(t, buf.String(), "component=gorm")
		})
	}
}

func TestGormSlogLogger_TruncatesLongStatements(t *testing.T) {
	buf, l := newBufferedGormLogger(true, 0)

	l.Trace(context.Background(), time.Now(), statement("SELECT "+strings.Repeat("x", 3*maxLoggedSQLLength)), nil)

	assert.Less(t, buf.Len(), 3*maxLoggedSQLLength)
	assert.Contains(t, buf.String(), "...")
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	buf, l := newBufferedGormLogger(true, 0)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), statement("SELECT 1"), errors.New("boom"))

	assert.Empty(t, buf.String())
}
