package repository

import "github.com/tponsmiquel/almacen/internal/domain/entity"

// ArticleRepository define el puerto de persistencia para Article.
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	// GetByName devuelve la primera coincidencia por nombre (el nombre no es único).
	GetByName(name string) (*entity.Article, error)
	List(limit, offset int) ([]*entity.Article, error)
	Update(article *entity.Article) error
	Delete(id string) error
}
