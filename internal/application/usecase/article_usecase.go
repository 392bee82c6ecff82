package usecase

import (
	"github.com/google/uuid"
	"github.com/tponsmiquel/almacen/internal/application/dto"
	"github.com/tponsmiquel/almacen/internal/domain"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

// ArticleUseCase casos de uso CRUD para artículos.
type ArticleUseCase struct {
	repo repository.ArticleRepository
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repo repository.ArticleRepository) *ArticleUseCase {
	return &ArticleUseCase{repo: repo}
}

// Create da de alta un artículo.
func (uc *ArticleUseCase) Create(in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	article := &entity.Article{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Create(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetByID obtiene un artículo.
func (uc *ArticleUseCase) GetByID(id string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return toArticleResponse(article), nil
}

// List lista artículos.
func (uc *ArticleUseCase) List(limit, offset int) ([]*dto.ArticleResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toArticleResponse(a))
	}
	return out, nil
}

// Update modifica un artículo existente.
func (uc *ArticleUseCase) Update(id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	article.Name = in.Name
	article.Description = in.Description
	if err := uc.repo.Update(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// Delete elimina un artículo.
func (uc *ArticleUseCase) Delete(id string) error {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
	}
}
