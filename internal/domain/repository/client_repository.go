package repository

import "github.com/tponsmiquel/almacen/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	// ListAll devuelve todos los clientes; el importador construye con ellos
	// el índice nombre→id al inicio de la ejecución.
	ListAll() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
