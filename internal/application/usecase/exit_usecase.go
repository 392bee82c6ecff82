package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tponsmiquel/almacen/internal/application/dto"
	"github.com/tponsmiquel/almacen/internal/domain"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

// ExitUseCase casos de uso CRUD para salidas individuales.
// El alta en grupo con notificación vive en orders.SubmitBatchUseCase.
type ExitUseCase struct {
	repo        repository.ExitRepository
	articleRepo repository.ArticleRepository
	clientRepo  repository.ClientRepository
}

// NewExitUseCase construye el caso de uso.
func NewExitUseCase(
	repo repository.ExitRepository,
	articleRepo repository.ArticleRepository,
	clientRepo repository.ClientRepository,
) *ExitUseCase {
	return &ExitUseCase{repo: repo, articleRepo: articleRepo, clientRepo: clientRepo}
}

// Create registra una salida individual sin autorizar.
func (uc *ExitUseCase) Create(in dto.CreateExitRequest) (*dto.ExitResponse, error) {
	if in.Article == "" || in.Client == "" || in.Quantity <= 0 || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(in.Article, in.Client); err != nil {
		return nil, err
	}
	exit := &entity.Exit{
		ID:           uuid.New().String(),
		ArticleID:    in.Article,
		ClientID:     in.Client,
		Quantity:     in.Quantity,
		Date:         date,
		IsAuthorized: false,
	}
	if err := uc.repo.Create(exit); err != nil {
		return nil, err
	}
	return toExitResponse(exit), nil
}

// GetByID obtiene una salida.
func (uc *ExitUseCase) GetByID(id string) (*dto.ExitResponse, error) {
	exit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if exit == nil {
		return nil, domain.ErrNotFound
	}
	return toExitResponse(exit), nil
}

// List lista salidas.
func (uc *ExitUseCase) List(limit, offset int) ([]*dto.ExitResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExitResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExitResponse(e))
	}
	return out, nil
}

// Update modifica una salida. La autorización es monótona: una salida ya autorizada
// no vuelve a pendiente por esta vía.
func (uc *ExitUseCase) Update(id string, in dto.UpdateExitRequest) (*dto.ExitResponse, error) {
	if in.Article == "" || in.Client == "" || in.Quantity <= 0 || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	exit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if exit == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkRefs(in.Article, in.Client); err != nil {
		return nil, err
	}
	exit.ArticleID = in.Article
	exit.ClientID = in.Client
	exit.Quantity = in.Quantity
	exit.Date = date
	exit.IsAuthorized = exit.IsAuthorized || in.IsAuthorized
	if err := uc.repo.Update(exit); err != nil {
		return nil, err
	}
	return toExitResponse(exit), nil
}

// Delete elimina una salida.
func (uc *ExitUseCase) Delete(id string) error {
	exit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if exit == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *ExitUseCase) checkRefs(articleID, clientID string) error {
	article, err := uc.articleRepo.GetByID(articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toExitResponse(e *entity.Exit) *dto.ExitResponse {
	return &dto.ExitResponse{
		ID:           e.ID,
		Article:      e.ArticleID,
		Client:       e.ClientID,
		Quantity:     e.Quantity,
		Date:         e.Date.Format(dto.DateLayout),
		IsAuthorized: e.IsAuthorized,
	}
}
