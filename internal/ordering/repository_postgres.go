package ordering

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (
			id, restaurant_id, table_number,
			customer_name, customer_phone,
			lines, total, currency, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`,
		o.ID, o.RestaurantID, o.TableNumber,
		o.CustomerName, o.CustomerPhone,
		lines, o.Total, o.Currency, o.Status,
	).Scan(&o.CreatedAt)
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, table_number,
		       customer_name, customer_phone,
		       lines, total, currency, status, created_at
		FROM orders
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o := Order{}
		var lines []byte
		if err := rows.Scan(
			&o.ID, &o.RestaurantID, &o.TableNumber,
			&o.CustomerName, &o.CustomerPhone,
			&lines, &o.Total, &o.Currency, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(lines, &o.Lines); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
