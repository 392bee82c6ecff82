package repository

import (
	"time"

	"github.com/tponsmiquel/almacen/internal/domain/entity"
)

// YearArticleTotal total de unidades de un artículo pedidas por un cliente en un año.
type YearArticleTotal struct {
	Year     int
	Article  string
	Quantity int
}

// ExitRepository define el puerto de persistencia para Exit.
type ExitRepository interface {
	Create(exit *entity.Exit) error
	GetByID(id string) (*entity.Exit, error)
	List(limit, offset int) ([]*entity.Exit, error)
	Update(exit *entity.Exit) error
	Delete(id string) error

	// ListByClientAndDate devuelve todas las salidas de un cliente en una fecha:
	// la unidad de autorización es el pedido completo, no la salida individual.
	ListByClientAndDate(clientID string, date time.Time) ([]*entity.Exit, error)

	// ExistsTuple comprueba si ya existe una salida con exactamente
	// (artículo, cliente, cantidad, fecha). El importador la usa para deduplicar.
	ExistsTuple(articleID, clientID string, quantity int, date time.Time) (bool, error)

	// HistoryByClientAndArticles suma las cantidades de salidas anteriores del cliente
	// para los artículos dados, excluyendo la fecha del pedido actual, agrupadas por
	// (año, nombre de artículo) con los años en orden ascendente.
	HistoryByClientAndArticles(clientID string, articleIDs []string, excludeDate time.Time) ([]YearArticleTotal, error)
}
