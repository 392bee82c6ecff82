package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementación de EntryRepository (usable con pool o tx).
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create persiste una nueva entrada de mercancía.
func (r *EntryRepo) Create(entry *entity.Entry) error {
	query := `
		INSERT INTO entries (id, article_id, quantity, date)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ArticleID, entry.Quantity, entry.Date,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *EntryRepo) GetByID(id string) (*entity.Entry, error) {
	query := `
		SELECT id, article_id, quantity, date
		FROM entries WHERE id = $1`
	var e entity.Entry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ArticleID, &e.Quantity, &e.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &e, nil
}

// List lista entradas con paginación, las más recientes primero.
func (r *EntryRepo) List(limit, offset int) ([]*entity.Entry, error) {
	query := `
		SELECT id, article_id, quantity, date
		FROM entries ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entry
	for rows.Next() {
		var e entity.Entry
		if err := rows.Scan(&e.ID, &e.ArticleID, &e.Quantity, &e.Date); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza una entrada.
func (r *EntryRepo) Update(entry *entity.Entry) error {
	query := `
		UPDATE entries SET article_id = $2, quantity = $3, date = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ArticleID, entry.Quantity, entry.Date,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// Delete elimina una entrada por ID.
func (r *EntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
