package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación de ArticleRepository (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nuevo artículo.
func (r *ArticleRepo) Create(article *entity.Article) error {
	query := `
		INSERT INTO articles (id, name, description)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.Name, nullable(article.Description),
	)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	query := `
		SELECT id, name, COALESCE(description, '')
		FROM articles WHERE id = $1`
	var a entity.Article
	err := r.q.QueryRow(context.Background(), query, id).Scan(&a.ID, &a.Name, &a.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// GetByName devuelve la primera coincidencia por nombre. El nombre no es único;
// se toma la fila más antigua para que las importaciones reutilicen siempre la misma.
func (r *ArticleRepo) GetByName(name string) (*entity.Article, error) {
	query := `
		SELECT id, name, COALESCE(description, '')
		FROM articles WHERE name = $1 ORDER BY id LIMIT 1`
	var a entity.Article
	err := r.q.QueryRow(context.Background(), query, name).Scan(&a.ID, &a.Name, &a.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article by name: %w", err)
	}
	return &a, nil
}

// List lista artículos con paginación.
func (r *ArticleRepo) List(limit, offset int) ([]*entity.Article, error) {
	query := `
		SELECT id, name, COALESCE(description, '')
		FROM articles ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.Name, &a.Description); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un artículo.
func (r *ArticleRepo) Update(article *entity.Article) error {
	query := `
		UPDATE articles SET name = $2, description = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.Name, nullable(article.Description),
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ArticleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// nullable convierte cadenas vacías en NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
