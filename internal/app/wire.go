package app

import (
	"context"
	"io"

	"github.com/rojanmagar2001/primeprobe/internal/check"
	"github.com/rojanmagar2001/primeprobe/internal/infra/extractor"
	"github.com/rojanmagar2001/primeprobe/internal/infra/httpclient"
	"github.com/rojanmagar2001/primeprobe/internal/infra/limiter"
	"github.com/rojanmagar2001/primeprobe/internal/infra/store"
	"github.com/rojanmagar2001/primeprobe/internal/logging"
	"github.com/rojanmagar2001/primeprobe/internal/ports"
	"github.com/rojanmagar2001/primeprobe/internal/report"
	"github.com/rojanmagar2001/primeprobe/internal/usecase"
)

// Run probes cfg.Items against cfg.BaseURL, writing report blocks to
// stdout and logs to stderr.
func Run(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	if err := cfg.Prepare(); err != nil {
		return err
	}

	log, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	httpc := httpclient.New(cfg.Timeout)
	lim := limiter.New(cfg.Rate)
	if c, ok := lim.(io.Closer); ok {
		defer c.Close()
	}

	chk := check.NewChecker(httpc, cfg.BaseURL, cfg.UserAgent, log)
	chk.Describer = extractor.New()

	st := store.NewMemory()

	log.Debug().
		Str("url", cfg.BaseURL).
		Dur("timeout", httpc.Timeout()).
		Int("rate", cfg.Rate).
		Str("format", cfg.Format).
		Msg("Configured")

	drv := usecase.NewDriver(usecase.NewPrimeChecker(chk, lim), st, newReporter(cfg, stdout), log, cfg.Summary)
	return drv.Run(ctx, cfg.Items)
}

func newReporter(cfg Config, stdout io.Writer) ports.Reporter {
	if cfg.Format == report.FormatJSON {
		return report.NewJSON(stdout)
	}
	return report.NewText(stdout, cfg.Color)
}
