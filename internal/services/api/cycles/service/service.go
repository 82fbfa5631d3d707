// Package service contains cycle prediction workflows
package service

import (
	"context"

	"lunara/internal/core/cycle"
	"lunara/internal/modkit/tablekit"
	"lunara/internal/platform/logger"
	"lunara/internal/platform/tabular"
	"lunara/internal/services/api/cycles/domain"
	"lunara/internal/services/api/cycles/repo"
)

const (
	longDate  = "Monday, January 02, 2006"
	shortDate = "January 02"
)

// Service defines the service contract for cycle predictions
type Service interface{ domain.ServicePort }

// Options carries the tunables read from config
type Options struct {
	// UserColumn is the identifier column expected in uploads
	UserColumn string

	// TempColumns are the accepted temperature column names, checked in order
	TempColumns []string
}

// Svc implements the Service interface
type Svc struct {
	opts   Options
	binder tablekit.Binder[repo.Repo]
}

// New creates a new cycles service
func New(opts Options, binder tablekit.Binder[repo.Repo]) *Svc {
	if binder == nil {
		panic("cycles.Service requires a non nil Repo binder")
	}
	return &Svc{opts: opts, binder: binder}
}

// Predict computes the upcoming cycle's fertile window from three recorded
// cycles. The reference date is the projected next period start, not the last
// recorded one. A temperature upload is observational: it is averaged and
// logged for condition-flagged cycles and never alters the prediction
func (s *Svc) Predict(ctx context.Context, in domain.PredictInput, bbt *domain.Upload) (domain.Prediction, error) {
	cycles := []int{in.CycleLength1, in.CycleLength2, in.CycleLength3}
	durations := []int{in.PeriodDuration1, in.PeriodDuration2, in.PeriodDuration3}

	if in.PCOS && bbt != nil {
		s.observeTemperature(ctx, in.Name, bbt)
	}

	avgCycle := cycle.RoundedMean(cycles)
	avgPeriod := cycle.RoundedMean(durations)

	nextLmp := cycle.NextCycleStart(in.LMPDate3, avgCycle)
	ovulation := cycle.OvulationDay(nextLmp, avgCycle, in.PCOS)
	window := cycle.FertileWindow(ovulation)

	probs := cycle.ConceptionProbability(window)
	entries := make([]domain.ProbabilityEntry, 0, len(probs))
	for _, p := range probs {
		entries = append(entries, domain.ProbabilityEntry{
			Date:        p.Date.Format(shortDate),
			Probability: p.Label,
		})
	}

	return domain.Prediction{
		FertileWindow: domain.FertileWindow{
			Start: window.Start.Format(longDate),
			End:   window.End.Format(longDate),
		},
		OvulationDay:          ovulation.Format(longDate),
		CycleRegularity:       cycle.Regularity(cycles, in.PCOS),
		ConceptionProbability: entries,
		Insights: domain.Insights{
			AverageCycleLength:    avgCycle,
			AveragePeriodDuration: avgPeriod,
		},
	}, nil
}

// observeTemperature averages the uploaded temperature column for the named
// user and logs the result. Every failure here is informational; the
// prediction proceeds regardless
func (s *Svc) observeTemperature(ctx context.Context, name string, bbt *domain.Upload) {
	log := logger.C(ctx)

	if bbt.Err != nil {
		log.Warn().Str("file", bbt.Filename).Err(bbt.Err).Msg("error reading temperature upload")
		return
	}
	log.Info().Str("file", bbt.Filename).Msg("received temperature upload")

	table, err := tabular.Parse(bbt.Filename, bbt.Data)
	if err != nil {
		log.Warn().Str("file", bbt.Filename).Err(err).Msg("error reading temperature upload")
		return
	}

	out := s.binder.Bind(table).AverageTemperature(s.opts.UserColumn, name, s.opts.TempColumns)
	switch out.Status {
	case repo.StatusOK:
		log.Info().
			Str("user", name).
			Str("column", out.Column).
			Int("rows", out.Rows).
			Int("samples", out.Samples).
			Float64("average", out.Average).
			Msg("average temperature for user")
	case repo.StatusNoUserColumn:
		log.Warn().Str("column", s.opts.UserColumn).Msg("no identifier column found in the file")
	case repo.StatusNoRows:
		log.Info().Str("user", name).Msg("no rows found for user")
	case repo.StatusNoValueColumn:
		log.Info().Str("user", name).Msg("no temperature column found in the file")
	}
}
