package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rojanmagar2001/primeprobe/internal/domain"
	"github.com/rojanmagar2001/primeprobe/internal/ports"
)

// Driver probes items one at a time, in order, and reports each outcome
// before starting the next request.
type Driver struct {
	checker  *PrimeCheckerService
	store    ports.Store
	reporter ports.Reporter
	log      zerolog.Logger

	summary bool
}

func NewDriver(chk *PrimeCheckerService, st ports.Store, rep ports.Reporter, log zerolog.Logger, summary bool) *Driver {
	return &Driver{
		checker:  chk,
		store:    st,
		reporter: rep,
		log:      log,
		summary:  summary,
	}
}

// Run returns an error only when ctx is canceled or the report cannot be
// written. Per-item failures are part of the report.
func (d *Driver) Run(ctx context.Context, items []domain.Item) error {
	d.log.Info().Int("items", len(items)).Msg("Starting probe run")

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			d.log.Warn().Int("remaining", len(items)-i).Msg("Probe run interrupted")
			return err
		}

		o := d.checker.Check(ctx, item)
		if err := ctx.Err(); err != nil {
			// The in-flight request was cut short; its failure is not a result.
			d.log.Warn().Str("number", item.String()).Int("remaining", len(items)-i).Msg("Probe run interrupted")
			return err
		}
		d.store.Record(o)

		d.log.Debug().
			Str("number", item.String()).
			Str("outcome", string(o.Kind)).
			Int("status", o.StatusCode).
			Dur("elapsed", o.Elapsed).
			Msg("Probed")

		if err := d.reporter.Report(o); err != nil {
			return fmt.Errorf("write report for %s: %w", item, err)
		}
	}

	s := d.store.Summary()
	d.log.Info().
		Int("checked", s.Checked).
		Int("prime", s.Prime).
		Int("not_prime", s.NotPrime).
		Int("errors", s.Errors).
		Msg("Probe run finished")

	if d.summary {
		if err := d.reporter.Summary(s); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}
