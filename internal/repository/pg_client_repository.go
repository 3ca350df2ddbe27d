package repository

import (
	"context"

	"github.com/adore/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClientRepository defines the read interface for clients.
type ClientRepository interface {
	List(ctx context.Context) ([]*model.Client, error)
}

// PgClientRepository is the PostgreSQL implementation of ClientRepository.
type PgClientRepository struct {
	pool *pgxpool.Pool
}

// NewPgClientRepository creates a PgClientRepository backed by the given pool.
func NewPgClientRepository(pool *pgxpool.Pool) *PgClientRepository {
	return &PgClientRepository{pool: pool}
}

var _ ClientRepository = (*PgClientRepository)(nil)

// List returns all clients ordered by name.
func (r *PgClientRepository) List(ctx context.Context) ([]*model.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM clients ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}
