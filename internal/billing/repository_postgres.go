package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateSubscription(ctx context.Context, s *Subscription) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO subscriptions (
			id, restaurant_id, plan_id, method, status,
			trial_ends_at, period_ends_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`,
		s.ID, s.RestaurantID, s.PlanID, s.Method, s.Status,
		s.TrialEndsAt, s.PeriodEndsAt,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *PostgresRepository) GetByRestaurant(ctx context.Context, restaurantID string) (*Subscription, error) {
	s := &Subscription{}
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, plan_id, method, status,
		       trial_ends_at, period_ends_at, created_at, updated_at
		FROM subscriptions
		WHERE restaurant_id = $1
	`, restaurantID).Scan(
		&s.ID, &s.RestaurantID, &s.PlanID, &s.Method, &s.Status,
		&s.TrialEndsAt, &s.PeriodEndsAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, errors.New("no subscription found")
	}
	return s, nil
}

func (r *PostgresRepository) UpdateSubscription(ctx context.Context, s *Subscription) error {
	_, err := r.db.Exec(ctx, `
		UPDATE subscriptions
		SET plan_id = $1,
		    method = $2,
		    status = $3,
		    trial_ends_at = $4,
		    period_ends_at = $5,
		    updated_at = now()
		WHERE id = $6
	`, s.PlanID, s.Method, s.Status, s.TrialEndsAt, s.PeriodEndsAt, s.ID)
	return err
}

func (r *PostgresRepository) ListPlans(ctx context.Context) ([]Plan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price_monthly, currency
		FROM plans
		ORDER BY price_monthly
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		p := Plan{}
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceMonthly, &p.Currency); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *PostgresRepository) GetPlan(ctx context.Context, planID string) (*Plan, error) {
	p := &Plan{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price_monthly, currency
		FROM plans
		WHERE id = $1
	`, planID).Scan(&p.ID, &p.Name, &p.PriceMonthly, &p.Currency)
	if err != nil {
		return nil, errors.New("plan not found")
	}
	return p, nil
}
