package orders

import (
	"context"
	"time"

	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

// OrderLine un artículo con su cantidad, identificado por nombre.
type OrderLine struct {
	Article  string
	Quantity int
}

// YearHistory totales por artículo de las salidas de un cliente en un año.
type YearHistory struct {
	Year   int
	Totals []OrderLine
}

// OrderNotification carga de la notificación de pedido pendiente de autorizar:
// las líneas recién creadas (ordenadas por nombre de artículo), el cliente, la fecha
// y el histórico agrupado por año en orden ascendente.
type OrderNotification struct {
	Client  *entity.Client
	Date    time.Time
	Lines   []OrderLine
	History []YearHistory
}

// Notifier puerto del despachador de notificaciones. La invocación es síncrona y
// explícita desde el caso de uso; un fallo se propaga al caller sin reintentos.
type Notifier interface {
	SendOrderNotification(ctx context.Context, n OrderNotification) error
}

// TxRunner ejecuta una función dentro de una transacción con un ExitRepository
// atado a ella. Da atomicidad a quien la necesite alrededor de la escritura
// del grupo de autorización.
type TxRunner interface {
	Run(ctx context.Context, fn func(exitRepo repository.ExitRepository) error) error
}
