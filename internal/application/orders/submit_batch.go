package orders

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tponsmiquel/almacen/internal/application/dto"
	"github.com/tponsmiquel/almacen/internal/domain"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

// StatusBatchCreated mensaje de estado cuando el pedido se crea y la notificación sale.
const StatusBatchCreated = "Pedido creado y email enviado"

// SubmitBatchUseCase crea el grupo de salidas de un pedido (mismo cliente y fecha),
// calcula el histórico por año de los artículos pedidos y dispara la notificación
// de autorización de forma síncrona y explícita.
type SubmitBatchUseCase struct {
	clientRepo  repository.ClientRepository
	articleRepo repository.ArticleRepository
	exitRepo    repository.ExitRepository
	notifier    Notifier
}

// NewSubmitBatchUseCase construye el caso de uso.
func NewSubmitBatchUseCase(
	clientRepo repository.ClientRepository,
	articleRepo repository.ArticleRepository,
	exitRepo repository.ExitRepository,
	notifier Notifier,
) *SubmitBatchUseCase {
	return &SubmitBatchUseCase{
		clientRepo:  clientRepo,
		articleRepo: articleRepo,
		exitRepo:    exitRepo,
		notifier:    notifier,
	}
}

// Submit valida el pedido, crea una salida sin autorizar por cada línea bien formada
// (las líneas sin artículo o sin cantidad se omiten sin abortar el resto) y notifica.
// Dos envíos simultáneos para el mismo (cliente, fecha) pueden notificar dos veces:
// no hay exclusión mutua por pedido.
func (uc *SubmitBatchUseCase) Submit(ctx context.Context, in dto.CreateBatchExitRequest) (*dto.BatchExitResponse, error) {
	if in.Client == "" || in.Date == "" || len(in.Articles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	client, err := uc.clientRepo.GetByID(in.Client)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	var lines []OrderLine
	var requestedIDs []string
	for _, item := range in.Articles {
		if item.Article != "" {
			requestedIDs = append(requestedIDs, item.Article)
		}
		if item.Article == "" || item.Quantity == 0 {
			continue
		}
		article, err := uc.articleRepo.GetByID(item.Article)
		if err != nil {
			return nil, err
		}
		if article == nil {
			return nil, domain.ErrNotFound
		}
		exit := &entity.Exit{
			ID:           uuid.New().String(),
			ArticleID:    article.ID,
			ClientID:     client.ID,
			Quantity:     item.Quantity,
			Date:         date,
			IsAuthorized: false,
		}
		if err := uc.exitRepo.Create(exit); err != nil {
			return nil, err
		}
		lines = append(lines, OrderLine{Article: article.Name, Quantity: item.Quantity})
	}

	history, err := uc.loadHistory(client.ID, requestedIDs, date)
	if err != nil {
		return nil, err
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].Article < lines[j].Article })

	notification := OrderNotification{
		Client:  client,
		Date:    date,
		Lines:   lines,
		History: history,
	}
	if err := uc.notifier.SendOrderNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDispatch, err)
	}

	resp := &dto.BatchExitResponse{
		Status: StatusBatchCreated,
		Exits:  make([]dto.BatchExitLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Exits = append(resp.Exits, dto.BatchExitLineResponse{Article: l.Article, Quantity: l.Quantity})
	}
	return resp, nil
}

// loadHistory agrupa por año los totales de salidas anteriores del cliente para los
// artículos pedidos (cualquier fecha distinta a la del pedido), años ascendentes.
func (uc *SubmitBatchUseCase) loadHistory(clientID string, articleIDs []string, date time.Time) ([]YearHistory, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}
	rows, err := uc.exitRepo.HistoryByClientAndArticles(clientID, articleIDs, date)
	if err != nil {
		return nil, err
	}
	// Las filas llegan ordenadas por (año, artículo); basta acumular por cambio de año.
	var history []YearHistory
	for _, row := range rows {
		if len(history) == 0 || history[len(history)-1].Year != row.Year {
			history = append(history, YearHistory{Year: row.Year})
		}
		last := &history[len(history)-1]
		last.Totals = append(last.Totals, OrderLine{Article: row.Article, Quantity: row.Quantity})
	}
	return history, nil
}
