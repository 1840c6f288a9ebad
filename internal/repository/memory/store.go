// Package memory provides process-local record stores with the same
// semantics as the Postgres repositories. They back the service when no
// database is configured.
package memory

// Store bundles one instance of every collection.
type Store struct {
	Users        *UserStore
	Scholarships *ScholarshipStore
	Orders       *OrderStore
	Checkouts    *CheckoutStore
	Payments     *PaymentStore
}

// NewStore creates empty collections.
func NewStore() *Store {
	return &Store{
		Users:        NewUserStore(),
		Scholarships: NewScholarshipStore(),
		Orders:       NewOrderStore(),
		Checkouts:    NewCheckoutStore(),
		Payments:     NewPaymentStore(),
	}
}
