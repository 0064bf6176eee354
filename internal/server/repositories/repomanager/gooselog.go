package repomanager

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/beerkeeper/internal/logging"
	"github.com/pressly/goose/v3"
)

// gooseLogger sends goose's printf-style output to the project logger.
type gooseLogger struct {
	ctx    context.Context
	logger logging.Logger
}

func (g *gooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}

// newGooseLogger returns goose's no-op logger when l is nil.
func newGooseLogger(ctx context.Context, l logging.Logger) goose.Logger {
	if l == nil {
		return goose.NopLogger()
	}
	return &gooseLogger{ctx: ctx, logger: l.With("module", "migrations")}
}
