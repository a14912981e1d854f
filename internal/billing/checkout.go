package billing

import "context"

// CheckoutProvider is the hosted-checkout collaborator for card
// subscriptions. The provider hosts the payment page; we only hold the
// redirect URL and wait for ConfirmCardPayment.
type CheckoutProvider interface {
	CreateCheckout(ctx context.Context, restaurantID string, plan Plan) (redirectURL string, err error)
}
