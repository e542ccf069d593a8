package payment

import "context"

const StatusPaid = "PAID"

type Authorization struct {
	Status string
	// RedirectURL is set when a gateway needs buyer approval before capture.
	RedirectURL *string
}

// Authorizer is the seam for a real gateway integration. The checkout flow
// only cares about the resulting status and optional redirect.
type Authorizer interface {
	Authorize(ctx context.Context, userID, method string, amountKRW int64) (*Authorization, error)
}

// StubAuthorizer approves every payment immediately without contacting any
// gateway. Swapping it out must not require touching the checkout flow.
type stubAuthorizer struct{}

func NewStubAuthorizer() Authorizer {
	return &stubAuthorizer{}
}

func (a *stubAuthorizer) Authorize(ctx context.Context, userID, method string, amountKRW int64) (*Authorization, error) {
	return &Authorization{Status: StatusPaid}, nil
}
