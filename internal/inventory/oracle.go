package inventory

import "context"

// Oracle answers stock-availability queries. The mock implementation reads
// the catalog snapshot after a simulated round trip; a real implementation
// would query the backend and needs timeout/retry on top of this contract.
type Oracle interface {
	// CheckAvailability reports whether the product, or the specific
	// variant when variantID is non-empty, is in stock. An unknown
	// product resolves to false rather than an error.
	CheckAvailability(ctx context.Context, productID, variantID string) (bool, error)
}
