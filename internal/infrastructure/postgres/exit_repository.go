package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

var _ repository.ExitRepository = (*ExitRepo)(nil)

// ExitRepo implementación de ExitRepository (usable con pool o tx).
type ExitRepo struct {
	q Querier
}

// NewExitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExitRepository(q Querier) *ExitRepo {
	return &ExitRepo{q: q}
}

// Create persiste una nueva salida.
func (r *ExitRepo) Create(exit *entity.Exit) error {
	query := `
		INSERT INTO exits (id, article_id, client_id, quantity, date, is_authorized)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		exit.ID, exit.ArticleID, exit.ClientID, exit.Quantity, exit.Date, exit.IsAuthorized,
	)
	if err != nil {
		return fmt.Errorf("insert exit: %w", err)
	}
	return nil
}

// GetByID obtiene una salida por ID.
func (r *ExitRepo) GetByID(id string) (*entity.Exit, error) {
	query := `
		SELECT id, article_id, client_id, quantity, date, is_authorized
		FROM exits WHERE id = $1`
	var e entity.Exit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ArticleID, &e.ClientID, &e.Quantity, &e.Date, &e.IsAuthorized,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit: %w", err)
	}
	return &e, nil
}

// List lista salidas con paginación, las más recientes primero.
func (r *ExitRepo) List(limit, offset int) ([]*entity.Exit, error) {
	query := `
		SELECT id, article_id, client_id, quantity, date, is_authorized
		FROM exits ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list exits: %w", err)
	}
	defer rows.Close()
	return scanExits(rows)
}

// ListByClientAndDate devuelve todas las salidas de un cliente en una fecha
// (el grupo de autorización de un pedido).
func (r *ExitRepo) ListByClientAndDate(clientID string, date time.Time) ([]*entity.Exit, error) {
	query := `
		SELECT id, article_id, client_id, quantity, date, is_authorized
		FROM exits WHERE client_id = $1 AND date = $2`
	rows, err := r.q.Query(context.Background(), query, clientID, date)
	if err != nil {
		return nil, fmt.Errorf("list exits by client and date: %w", err)
	}
	defer rows.Close()
	return scanExits(rows)
}

func scanExits(rows pgx.Rows) ([]*entity.Exit, error) {
	var list []*entity.Exit
	for rows.Next() {
		var e entity.Exit
		if err := rows.Scan(&e.ID, &e.ArticleID, &e.ClientID, &e.Quantity, &e.Date, &e.IsAuthorized); err != nil {
			return nil, fmt.Errorf("scan exit: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza una salida.
func (r *ExitRepo) Update(exit *entity.Exit) error {
	query := `
		UPDATE exits SET article_id = $2, client_id = $3, quantity = $4, date = $5, is_authorized = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		exit.ID, exit.ArticleID, exit.ClientID, exit.Quantity, exit.Date, exit.IsAuthorized,
	)
	if err != nil {
		return fmt.Errorf("update exit: %w", err)
	}
	return nil
}

// Delete elimina una salida por ID.
func (r *ExitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM exits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exit: %w", err)
	}
	return nil
}

// ExistsTuple comprueba si ya existe una salida con exactamente
// (artículo, cliente, cantidad, fecha). Deduplicación del importador:
// comprobación explícita, no constraint de esquema.
func (r *ExitRepo) ExistsTuple(articleID, clientID string, quantity int, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM exits
			WHERE article_id = $1 AND client_id = $2 AND quantity = $3 AND date = $4
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, articleID, clientID, quantity, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists exit tuple: %w", err)
	}
	return exists, nil
}

// HistoryByClientAndArticles suma las cantidades de salidas anteriores del cliente para
// los artículos dados, excluyendo la fecha del pedido actual, agrupadas por
// (año, nombre de artículo) con los años en orden ascendente.
func (r *ExitRepo) HistoryByClientAndArticles(clientID string, articleIDs []string, excludeDate time.Time) ([]repository.YearArticleTotal, error) {
	const query = `
		SELECT
		    EXTRACT(YEAR FROM e.date)::INT AS year,
		    a.name                         AS article,
		    SUM(e.quantity)::INT           AS total
		FROM exits e
		JOIN articles a ON a.id = e.article_id
		WHERE e.client_id  = $1
		  AND e.article_id = ANY($2)
		  AND e.date      <> $3
		GROUP BY EXTRACT(YEAR FROM e.date), a.name
		ORDER BY year ASC, article ASC`

	rows, err := r.q.Query(context.Background(), query, clientID, articleIDs, excludeDate)
	if err != nil {
		return nil, fmt.Errorf("exit history: %w", err)
	}
	defer rows.Close()

	var results []repository.YearArticleTotal
	for rows.Next() {
		var row repository.YearArticleTotal
		if err := rows.Scan(&row.Year, &row.Article, &row.Quantity); err != nil {
			return nil, fmt.Errorf("exit history scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
