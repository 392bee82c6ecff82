package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tponsmiquel/almacen/internal/application/dto"
	"github.com/tponsmiquel/almacen/internal/domain"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

// EntryUseCase casos de uso CRUD para entradas de mercancía.
type EntryUseCase struct {
	repo        repository.EntryRepository
	articleRepo repository.ArticleRepository
}

// NewEntryUseCase construye el caso de uso.
func NewEntryUseCase(repo repository.EntryRepository, articleRepo repository.ArticleRepository) *EntryUseCase {
	return &EntryUseCase{repo: repo, articleRepo: articleRepo}
}

// Create registra una entrada. La cantidad debe ser positiva y el artículo existir.
func (uc *EntryUseCase) Create(in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	if in.Article == "" || in.Quantity <= 0 || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	article, err := uc.articleRepo.GetByID(in.Article)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	entry := &entity.Entry{
		ID:        uuid.New().String(),
		ArticleID: article.ID,
		Quantity:  in.Quantity,
		Date:      date,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// GetByID obtiene una entrada.
func (uc *EntryUseCase) GetByID(id string) (*dto.EntryResponse, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return toEntryResponse(entry), nil
}

// List lista entradas.
func (uc *EntryUseCase) List(limit, offset int) ([]*dto.EntryResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntryResponse(e))
	}
	return out, nil
}

// Update modifica una entrada existente.
func (uc *EntryUseCase) Update(id string, in dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	if in.Article == "" || in.Quantity <= 0 || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	article, err := uc.articleRepo.GetByID(in.Article)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	entry.ArticleID = article.ID
	entry.Quantity = in.Quantity
	entry.Date = date
	if err := uc.repo.Update(entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// Delete elimina una entrada.
func (uc *EntryUseCase) Delete(id string) error {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toEntryResponse(e *entity.Entry) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:       e.ID,
		Article:  e.ArticleID,
		Quantity: e.Quantity,
		Date:     e.Date.Format(dto.DateLayout),
	}
}
