package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tponsmiquel/almacen/internal/application/dto"
	"github.com/tponsmiquel/almacen/internal/application/usecase"
	"github.com/tponsmiquel/almacen/internal/domain"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

// Fakes mínimos en memoria para el CRUD de salidas.

type stubArticleRepo struct{ byID map[string]*entity.Article }

func (r *stubArticleRepo) Create(a *entity.Article) error                  { r.byID[a.ID] = a; return nil }
func (r *stubArticleRepo) GetByID(id string) (*entity.Article, error)      { return r.byID[id], nil }
func (r *stubArticleRepo) GetByName(name string) (*entity.Article, error)  { return nil, nil }
func (r *stubArticleRepo) List(_, _ int) ([]*entity.Article, error)        { return nil, nil }
func (r *stubArticleRepo) Update(a *entity.Article) error                  { return nil }
func (r *stubArticleRepo) Delete(id string) error                          { delete(r.byID, id); return nil }

type stubClientRepo struct{ byID map[string]*entity.Client }

func (r *stubClientRepo) Create(c *entity.Client) error             { r.byID[c.ID] = c; return nil }
func (r *stubClientRepo) GetByID(id string) (*entity.Client, error) { return r.byID[id], nil }
func (r *stubClientRepo) List(_, _ int) ([]*entity.Client, error)   { return nil, nil }
func (r *stubClientRepo) ListAll() ([]*entity.Client, error)        { return nil, nil }
func (r *stubClientRepo) Update(c *entity.Client) error             { return nil }
func (r *stubClientRepo) Delete(id string) error                    { delete(r.byID, id); return nil }

type stubExitRepo struct{ byID map[string]*entity.Exit }

func (r *stubExitRepo) Create(e *entity.Exit) error            { copied := *e; r.byID[e.ID] = &copied; return nil }
func (r *stubExitRepo) GetByID(id string) (*entity.Exit, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}
func (r *stubExitRepo) List(_, _ int) ([]*entity.Exit, error) { return nil, nil }
func (r *stubExitRepo) Update(e *entity.Exit) error           { copied := *e; r.byID[e.ID] = &copied; return nil }
func (r *stubExitRepo) Delete(id string) error                { delete(r.byID, id); return nil }
func (r *stubExitRepo) ListByClientAndDate(string, time.Time) ([]*entity.Exit, error) {
	return nil, nil
}
func (r *stubExitRepo) ExistsTuple(string, string, int, time.Time) (bool, error) { return false, nil }
func (r *stubExitRepo) HistoryByClientAndArticles(string, []string, time.Time) ([]repository.YearArticleTotal, error) {
	return nil, nil
}

func buildExitUC() (*stubExitRepo, *usecase.ExitUseCase) {
	exitRepo := &stubExitRepo{byID: map[string]*entity.Exit{}}
	articleRepo := &stubArticleRepo{byID: map[string]*entity.Article{
		"art-1": {ID: "art-1", Name: "Toalla"},
	}}
	clientRepo := &stubClientRepo{byID: map[string]*entity.Client{
		"cli-1": {ID: "cli-1", Name: "Hotel Miramar"},
	}}
	return exitRepo, usecase.NewExitUseCase(exitRepo, articleRepo, clientRepo)
}

// Caso 1: las salidas se crean sin autorizar, referenciando artículo y cliente existentes.
func TestExitUseCase_CreateSinAutorizar(t *testing.T) {
	_, uc := buildExitUC()

	out, err := uc.Create(dto.CreateExitRequest{
		Article: "art-1", Client: "cli-1", Quantity: 3, Date: "2024-03-15",
	})
	require.NoError(t, err)
	assert.False(t, out.IsAuthorized)
	assert.Equal(t, "2024-03-15", out.Date)
}

// Caso 2: crear contra artículo o cliente inexistente → ErrNotFound.
func TestExitUseCase_CreateReferenciasInexistentes(t *testing.T) {
	_, uc := buildExitUC()

	_, err := uc.Create(dto.CreateExitRequest{Article: "art-x", Client: "cli-1", Quantity: 1, Date: "2024-03-15"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(dto.CreateExitRequest{Article: "art-1", Client: "cli-x", Quantity: 1, Date: "2024-03-15"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 3: la autorización es monótona; un update con is_authorized=false sobre una
// salida ya autorizada no la devuelve a pendiente.
func TestExitUseCase_UpdateNoRevierteAutorizacion(t *testing.T) {
	exitRepo, uc := buildExitUC()
	exitRepo.byID["e1"] = &entity.Exit{
		ID: "e1", ArticleID: "art-1", ClientID: "cli-1", Quantity: 2,
		Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), IsAuthorized: true,
	}

	out, err := uc.Update("e1", dto.UpdateExitRequest{
		Article: "art-1", Client: "cli-1", Quantity: 4, Date: "2024-03-15", IsAuthorized: false,
	})
	require.NoError(t, err)

	assert.True(t, out.IsAuthorized, "la autorización no debe revertirse")
	assert.Equal(t, 4, out.Quantity, "el resto de campos sí se actualizan")
	assert.True(t, exitRepo.byID["e1"].IsAuthorized)
}

// Caso 4: un update sí puede autorizar una salida pendiente.
func TestExitUseCase_UpdatePuedeAutorizar(t *testing.T) {
	exitRepo, uc := buildExitUC()
	exitRepo.byID["e1"] = &entity.Exit{
		ID: "e1", ArticleID: "art-1", ClientID: "cli-1", Quantity: 2,
		Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	out, err := uc.Update("e1", dto.UpdateExitRequest{
		Article: "art-1", Client: "cli-1", Quantity: 2, Date: "2024-03-15", IsAuthorized: true,
	})
	require.NoError(t, err)
	assert.True(t, out.IsAuthorized)
}

// Caso 5: cantidad no positiva → ErrInvalidInput.
func TestExitUseCase_CantidadInvalida(t *testing.T) {
	_, uc := buildExitUC()

	_, err := uc.Create(dto.CreateExitRequest{Article: "art-1", Client: "cli-1", Quantity: 0, Date: "2024-03-15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateExitRequest{Article: "art-1", Client: "cli-1", Quantity: -2, Date: "2024-03-15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
