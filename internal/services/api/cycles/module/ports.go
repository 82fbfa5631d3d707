package module

import (
	"context"

	cyclesdom "lunara/internal/services/api/cycles/domain"
	cyclessvc "lunara/internal/services/api/cycles/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCyclesPort adapts the cycles service to the domain port interface
type adaptCyclesPort struct{ svc cyclessvc.Service }

// Predict implements the domain ServicePort interface
func (a adaptCyclesPort) Predict(
	ctx context.Context,
	in cyclesdom.PredictInput,
	bbt *cyclesdom.Upload,
) (cyclesdom.Prediction, error) {
	return a.svc.Predict(ctx, in, bbt)
}
