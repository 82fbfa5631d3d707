// Package service contains record retrieval workflows
package service

import (
	"context"
	"fmt"

	"lunara/internal/modkit/tablekit"
	"lunara/internal/platform/logger"
	"lunara/internal/platform/tabular"
	"lunara/internal/services/api/records/domain"
	"lunara/internal/services/api/records/repo"
)

// historyColumns are the recorded history columns read from a matching row,
// in response order
var historyColumns = []string{
	"LMP_Cycle_1", "LMP_Cycle_2", "LMP_Cycle_3",
	"Cycle_Length_1", "Cycle_Length_2", "Cycle_Length_3",
	"Period_Duration_1", "Period_Duration_2", "Period_Duration_3",
	"is_pcos",
}

// Service defines the service contract for record retrieval
type Service interface{ domain.ServicePort }

// Options carries the tunables read from config
type Options struct {
	// UserColumn is the identifier column expected in uploads
	UserColumn string
}

// Svc implements the Service interface
type Svc struct {
	opts   Options
	binder tablekit.Binder[repo.Repo]
}

// New creates a new records service
func New(opts Options, binder tablekit.Binder[repo.Repo]) *Svc {
	if binder == nil {
		panic("records.Service requires a non nil Repo binder")
	}
	return &Svc{opts: opts, binder: binder}
}

// Retrieve pulls the recorded cycle history for the named user from the
// uploaded table, first match only. Every failure mode resolves to a result
// with Success false and a descriptive message; nothing propagates as an error
func (s *Svc) Retrieve(ctx context.Context, in domain.RetrieveInput, file *domain.Upload) domain.RetrieveResult {
	log := logger.C(ctx)

	if file == nil {
		return domain.RetrieveResult{Message: "No file uploaded."}
	}
	if file.Err != nil {
		log.Warn().Str("file", file.Filename).Err(file.Err).Msg("error reading records upload")
		return domain.RetrieveResult{Message: fmt.Sprintf("Error reading file: %v", file.Err)}
	}

	table, err := tabular.Parse(file.Filename, file.Data)
	if err != nil {
		log.Warn().Str("file", file.Filename).Err(err).Msg("error parsing records upload")
		return domain.RetrieveResult{Message: fmt.Sprintf("Error reading file: %v", err)}
	}

	values, status := s.binder.Bind(table).FirstMatch(s.opts.UserColumn, in.Name, historyColumns)
	switch status {
	case repo.StatusNoUserColumn:
		return domain.RetrieveResult{
			Message: fmt.Sprintf("No '%s' column found in the file.", s.opts.UserColumn),
		}
	case repo.StatusNoRows:
		return domain.RetrieveResult{
			Message: fmt.Sprintf("No rows found for %s '%s'.", s.opts.UserColumn, in.Name),
		}
	}

	return domain.RetrieveResult{
		Success: true,
		Message: fmt.Sprintf("Data loaded for user '%s'.", in.Name),
		CycleFields: &domain.CycleFields{
			LMPCycle1:       values["LMP_Cycle_1"],
			LMPCycle2:       values["LMP_Cycle_2"],
			LMPCycle3:       values["LMP_Cycle_3"],
			CycleLength1:    values["Cycle_Length_1"],
			CycleLength2:    values["Cycle_Length_2"],
			CycleLength3:    values["Cycle_Length_3"],
			PeriodDuration1: values["Period_Duration_1"],
			PeriodDuration2: values["Period_Duration_2"],
			PeriodDuration3: values["Period_Duration_3"],
			IsPCOS:          values["is_pcos"],
		},
	}
}
