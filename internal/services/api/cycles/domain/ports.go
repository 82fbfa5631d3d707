package domain

import "context"

// ServicePort defines the service contract for cycle predictions
type ServicePort interface {
	Predict(ctx context.Context, in PredictInput, bbt *Upload) (Prediction, error)
}
