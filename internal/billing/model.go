package billing

import "time"

// Payment methods
const (
	MethodManual = "MANUAL"
	MethodCard   = "CARD"
)

// Subscription states
const (
	StatusTrial   = "TRIAL"
	StatusActive  = "ACTIVE"
	StatusGrace   = "GRACE"
	StatusExpired = "EXPIRED"
)

const (
	trialPeriod   = 14 * 24 * time.Hour
	billingPeriod = 30 * 24 * time.Hour
	gracePeriod   = 7 * 24 * time.Hour
)

type Plan struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PriceMonthly float64 `json:"price_monthly"`
	Currency     string  `json:"currency"`
}

type Subscription struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	PlanID       string    `json:"plan_id"`
	Method       string    `json:"method"`
	Status       string    `json:"status"`
	TrialEndsAt  time.Time `json:"trial_ends_at,omitempty"`
	PeriodEndsAt time.Time `json:"period_ends_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
