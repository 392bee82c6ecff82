package repository

import "github.com/tponsmiquel/almacen/internal/domain/entity"

// EntryRepository define el puerto de persistencia para Entry.
type EntryRepository interface {
	Create(entry *entity.Entry) error
	GetByID(id string) (*entity.Entry, error)
	List(limit, offset int) ([]*entity.Entry, error)
	Update(entry *entity.Entry) error
	Delete(id string) error
}
