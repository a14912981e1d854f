package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"menuflow/internal/core"
)

type fakeRestaurants struct {
	owner string
}

func (f *fakeRestaurants) IsOwner(_ context.Context, _ string, userID string) (bool, error) {
	return userID == f.owner, nil
}

func (f *fakeRestaurants) GetInfo(_ context.Context, id string) (*core.RestaurantInfo, error) {
	return &core.RestaurantInfo{ID: id}, nil
}

type fakeCheckout struct {
	url string
	err error
}

func (f *fakeCheckout) CreateCheckout(_ context.Context, restaurantID string, _ Plan) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url + "?ref=" + restaurantID, nil
}

func newBillingService(checkout CheckoutProvider) *Service {
	repo := NewMemoryRepository(
		Plan{ID: "starter", Name: "Starter", PriceMonthly: 15000, Currency: "RWF"},
	)
	return NewService(repo, &fakeRestaurants{owner: "owner-1"}, checkout)
}

func at(svc *Service, t time.Time) {
	svc.now = func() time.Time { return t }
}

func TestStartTrial(t *testing.T) {
	svc := newBillingService(&fakeCheckout{})
	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	at(svc, start)

	sub, err := svc.StartTrial(context.Background(), "rest-1", "owner-1", "starter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != StatusTrial {
		t.Errorf("status = %s, want TRIAL", sub.Status)
	}
	if !sub.TrialEndsAt.Equal(start.Add(trialPeriod)) {
		t.Errorf("trial end = %v", sub.TrialEndsAt)
	}

	if _, err := svc.StartTrial(context.Background(), "rest-1", "owner-1", "starter"); err == nil {
		t.Error("second trial for the same restaurant should fail")
	}
	if _, err := svc.StartTrial(context.Background(), "rest-2", "intruder", "starter"); err == nil {
		t.Error("non-owner must not start a trial")
	}
	if _, err := svc.StartTrial(context.Background(), "rest-3", "owner-1", "nope"); err == nil {
		t.Error("unknown plan should fail")
	}
}

func TestTrialExpiresWithoutGrace(t *testing.T) {
	svc := newBillingService(&fakeCheckout{})
	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	at(svc, start)
	svc.StartTrial(context.Background(), "rest-1", "owner-1", "starter")

	at(svc, start.Add(trialPeriod+time.Hour))
	sub, err := svc.GetSubscription(context.Background(), "rest-1", "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != StatusExpired {
		t.Errorf("lapsed trial status = %s, want EXPIRED", sub.Status)
	}
}

func TestCardCheckoutAndConfirm(t *testing.T) {
	svc := newBillingService(&fakeCheckout{url: "https://pay.example.com/session"})
	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	at(svc, start)

	redirect, err := svc.StartCardCheckout(context.Background(), "rest-1", "owner-1", "starter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if redirect != "https://pay.example.com/session?ref=rest-1" {
		t.Errorf("redirect = %s", redirect)
	}

	sub, err := svc.ConfirmCardPayment(context.Background(), "rest-1", "starter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != StatusActive || sub.Method != MethodCard {
		t.Errorf("confirmed sub = %+v", sub)
	}
	if !sub.PeriodEndsAt.Equal(start.Add(billingPeriod)) {
		t.Errorf("period end = %v", sub.PeriodEndsAt)
	}
}

func TestCheckoutFailureSurfaces(t *testing.T) {
	svc := newBillingService(&fakeCheckout{err: errors.New("gateway down")})

	if _, err := svc.StartCardCheckout(context.Background(), "rest-1", "owner-1", "starter"); err == nil {
		t.Fatal("gateway failure must surface")
	}
}

func TestActiveToGraceToExpired(t *testing.T) {
	svc := newBillingService(&fakeCheckout{})
	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	at(svc, start)
	svc.ConfirmCardPayment(context.Background(), "rest-1", "starter")

	at(svc, start.Add(billingPeriod+time.Hour))
	sub, _ := svc.GetSubscription(context.Background(), "rest-1", "owner-1")
	if sub.Status != StatusGrace {
		t.Fatalf("lapsed active status = %s, want GRACE", sub.Status)
	}

	at(svc, start.Add(billingPeriod+gracePeriod+time.Hour))
	sub, _ = svc.GetSubscription(context.Background(), "rest-1", "owner-1")
	if sub.Status != StatusExpired {
		t.Fatalf("post-grace status = %s, want EXPIRED", sub.Status)
	}
}

func TestManualPaymentExtendsFromPeriodEnd(t *testing.T) {
	svc := newBillingService(&fakeCheckout{})
	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	at(svc, start)
	svc.ConfirmCardPayment(context.Background(), "rest-1", "starter")

	// Paying mid-period extends the existing period, no days lost.
	at(svc, start.Add(10*24*time.Hour))
	sub, err := svc.RecordManualPayment(context.Background(), "rest-1", "admin-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Method != MethodManual {
		t.Errorf("method = %s, want MANUAL", sub.Method)
	}
	if !sub.PeriodEndsAt.Equal(start.Add(2 * billingPeriod)) {
		t.Errorf("period end = %v, want %v", sub.PeriodEndsAt, start.Add(2*billingPeriod))
	}
}

func TestManualPaymentAfterLapseStartsFresh(t *testing.T) {
	svc := newBillingService(&fakeCheckout{})
	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	at(svc, start)
	svc.ConfirmCardPayment(context.Background(), "rest-1", "starter")

	lapse := start.Add(billingPeriod + gracePeriod + 48*time.Hour)
	at(svc, lapse)
	svc.GetSubscription(context.Background(), "rest-1", "owner-1")

	sub, err := svc.RecordManualPayment(context.Background(), "rest-1", "admin-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != StatusActive {
		t.Errorf("status = %s, want ACTIVE", sub.Status)
	}
	if !sub.PeriodEndsAt.Equal(lapse.Add(billingPeriod)) {
		t.Errorf("late payment should start fresh: %v", sub.PeriodEndsAt)
	}
}

func TestGetSubscription_OwnershipEnforced(t *testing.T) {
	svc := newBillingService(&fakeCheckout{})
	svc.ConfirmCardPayment(context.Background(), "rest-1", "starter")

	if _, err := svc.GetSubscription(context.Background(), "rest-1", "intruder"); err == nil {
		t.Fatal("non-owner must not read billing state")
	}
}
