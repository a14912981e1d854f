package billing

import (
	"context"
	"errors"
	"log"
	"time"

	"menuflow/internal/core"
)

type Service struct {
	repo        Repository
	restaurants core.RestaurantReader
	checkout    CheckoutProvider

	// overridable in tests
	now func() time.Time
}

func NewService(repo Repository, restaurants core.RestaurantReader, checkout CheckoutProvider) *Service {
	return &Service{
		repo:        repo,
		restaurants: restaurants,
		checkout:    checkout,
		now:         time.Now,
	}
}

func (s *Service) ListPlans(ctx context.Context) ([]Plan, error) {
	return s.repo.ListPlans(ctx)
}

// --------------------------------------------------
// Trial
// --------------------------------------------------
func (s *Service) StartTrial(ctx context.Context, restaurantID string, userID string, planID string) (*Subscription, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByRestaurant(ctx, restaurantID); err == nil {
		return nil, errors.New("subscription already exists")
	}
	if _, err := s.repo.GetPlan(ctx, planID); err != nil {
		return nil, err
	}

	now := s.now()
	sub := &Subscription{
		RestaurantID: restaurantID,
		PlanID:       planID,
		Method:       MethodManual,
		Status:       StatusTrial,
		TrialEndsAt:  now.Add(trialPeriod),
	}
	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	log.Printf("BILLING_TRIAL_STARTED restaurant=%s plan=%s", restaurantID, planID)
	return sub, nil
}

// --------------------------------------------------
// Card flow: checkout then confirmation
// --------------------------------------------------

// StartCardCheckout returns the hosted payment page URL. Nothing
// changes on the subscription until ConfirmCardPayment.
func (s *Service) StartCardCheckout(ctx context.Context, restaurantID string, userID string, planID string) (string, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return "", err
	}
	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		return "", err
	}

	redirect, err := s.checkout.CreateCheckout(ctx, restaurantID, *plan)
	if err != nil {
		return "", errors.New("checkout unavailable: " + err.Error())
	}
	return redirect, nil
}

// ConfirmCardPayment is called by the gateway callback once payment
// settles. Activates or extends a full billing period.
func (s *Service) ConfirmCardPayment(ctx context.Context, restaurantID string, planID string) (*Subscription, error) {
	if _, err := s.repo.GetPlan(ctx, planID); err != nil {
		return nil, err
	}

	now := s.now()
	sub, err := s.repo.GetByRestaurant(ctx, restaurantID)
	if err != nil {
		sub = &Subscription{RestaurantID: restaurantID}
		sub.PlanID = planID
		sub.Method = MethodCard
		sub.Status = StatusActive
		sub.PeriodEndsAt = now.Add(billingPeriod)
		if err := s.repo.CreateSubscription(ctx, sub); err != nil {
			return nil, err
		}
		log.Printf("BILLING_ACTIVATED restaurant=%s plan=%s method=CARD", restaurantID, planID)
		return sub, nil
	}

	sub.PlanID = planID
	sub.Method = MethodCard
	sub.Status = StatusActive
	sub.PeriodEndsAt = periodStart(sub, now).Add(billingPeriod)
	if err := s.repo.UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	log.Printf("BILLING_ACTIVATED restaurant=%s plan=%s method=CARD", restaurantID, planID)
	return sub, nil
}

// --------------------------------------------------
// Manual flow: admin records an offline payment
// --------------------------------------------------
func (s *Service) RecordManualPayment(ctx context.Context, restaurantID string, adminID string) (*Subscription, error) {
	sub, err := s.repo.GetByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sub.Method = MethodManual
	sub.Status = StatusActive
	sub.PeriodEndsAt = periodStart(sub, now).Add(billingPeriod)
	if err := s.repo.UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	log.Printf("BILLING_MANUAL_PAYMENT restaurant=%s admin=%s until=%s",
		restaurantID, adminID, sub.PeriodEndsAt.Format(time.RFC3339))
	return sub, nil
}

// --------------------------------------------------
// Status evaluation
// --------------------------------------------------

// GetSubscription returns the subscription with its status rolled
// forward to now. Lazy evaluation: transitions happen on read, no
// background sweeper needed.
func (s *Service) GetSubscription(ctx context.Context, restaurantID string, userID string) (*Subscription, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	sub, err := s.repo.GetByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if next := evaluateStatus(sub, s.now()); next != sub.Status {
		sub.Status = next
		if err := s.repo.UpdateSubscription(ctx, sub); err != nil {
			return nil, err
		}
		log.Printf("BILLING_STATUS restaurant=%s status=%s", restaurantID, next)
	}
	return sub, nil
}

// evaluateStatus rolls a subscription's state forward to t.
//
//	TRIAL  -> EXPIRED     after TrialEndsAt (no grace on trials)
//	ACTIVE -> GRACE       after PeriodEndsAt
//	GRACE  -> EXPIRED     after PeriodEndsAt + grace window
func evaluateStatus(sub *Subscription, t time.Time) string {
	switch sub.Status {
	case StatusTrial:
		if t.After(sub.TrialEndsAt) {
			return StatusExpired
		}
	case StatusActive:
		if t.After(sub.PeriodEndsAt.Add(gracePeriod)) {
			return StatusExpired
		}
		if t.After(sub.PeriodEndsAt) {
			return StatusGrace
		}
	case StatusGrace:
		if t.After(sub.PeriodEndsAt.Add(gracePeriod)) {
			return StatusExpired
		}
	}
	return sub.Status
}

// periodStart anchors a renewal: paying before the period lapses
// extends from the current period end, paying late starts fresh.
func periodStart(sub *Subscription, now time.Time) time.Time {
	if sub.Status == StatusActive && sub.PeriodEndsAt.After(now) {
		return sub.PeriodEndsAt
	}
	return now
}

func (s *Service) requireOwner(ctx context.Context, restaurantID string, userID string) error {
	isOwner, err := s.restaurants.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return err
	}
	if !isOwner {
		return errors.New("unauthorized")
	}
	return nil
}
