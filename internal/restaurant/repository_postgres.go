package restaurant

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

// --------------------------------------------------
// Create a new restaurant
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, res *Restaurant) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO restaurants (
			id,
			owner_id,
			name,
			city,
			cuisine_type,
			whatsapp_number,
			currency,
			status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`,
		res.ID,
		res.OwnerID,
		res.Name,
		res.City,
		res.CuisineType,
		res.WhatsAppNumber,
		res.Currency,
		res.Status,
	).Scan(&res.CreatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	res := &Restaurant{}
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, city, cuisine_type,
		       whatsapp_number, currency, status, created_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(
		&res.ID, &res.OwnerID, &res.Name, &res.City, &res.CuisineType,
		&res.WhatsAppNumber, &res.Currency, &res.Status, &res.CreatedAt,
	)
	if err != nil {
		return nil, errors.New("restaurant not found")
	}
	return res, nil
}

// --------------------------------------------------
// List restaurants owned by a user
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, city, cuisine_type,
		       whatsapp_number, currency, status, created_at
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant
	for rows.Next() {
		res := &Restaurant{}
		if err := rows.Scan(
			&res.ID, &res.OwnerID, &res.Name, &res.City, &res.CuisineType,
			&res.WhatsAppNumber, &res.Currency, &res.Status, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, res)
	}
	return restaurants, rows.Err()
}

// --------------------------------------------------
// Ownership check (SECURITY)
// --------------------------------------------------
func (r *PostgresRepository) IsOwner(
	ctx context.Context,
	restaurantID string,
	userID string,
) (bool, error) {

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM restaurants
			WHERE id = $1
			  AND owner_id = $2
		)
	`, restaurantID, userID).Scan(&exists)

	return exists, err
}
