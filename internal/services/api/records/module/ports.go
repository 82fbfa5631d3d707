package module

import (
	"context"

	recordsdom "lunara/internal/services/api/records/domain"
	recordssvc "lunara/internal/services/api/records/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptRecordsPort adapts the records service to the domain port interface
type adaptRecordsPort struct{ svc recordssvc.Service }

// Retrieve implements the domain ServicePort interface
func (a adaptRecordsPort) Retrieve(
	ctx context.Context,
	in recordsdom.RetrieveInput,
	file *recordsdom.Upload,
) recordsdom.RetrieveResult {
	return a.svc.Retrieve(ctx, in, file)
}
