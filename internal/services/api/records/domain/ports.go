package domain

import "context"

// ServicePort defines the service contract for record retrieval
type ServicePort interface {
	// Retrieve never fails outward; parse and lookup problems come back inside
	// the result with Success false
	Retrieve(ctx context.Context, in RetrieveInput, file *Upload) RetrieveResult
}
