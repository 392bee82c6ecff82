package orders_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tponsmiquel/almacen/internal/application/orders"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeArticleRepo struct {
	articles []*entity.Article
}

func (r *fakeArticleRepo) Create(a *entity.Article) error {
	r.articles = append(r.articles, a)
	return nil
}

func (r *fakeArticleRepo) GetByID(id string) (*entity.Article, error) {
	for _, a := range r.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeArticleRepo) GetByName(name string) (*entity.Article, error) {
	for _, a := range r.articles {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeArticleRepo) List(limit, offset int) ([]*entity.Article, error) {
	return r.articles, nil
}

func (r *fakeArticleRepo) Update(a *entity.Article) error { return nil }
func (r *fakeArticleRepo) Delete(id string) error         { return nil }

type fakeClientRepo struct {
	clients []*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.clients = append(r.clients, c)
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	return r.clients, nil
}

func (r *fakeClientRepo) ListAll() ([]*entity.Client, error) {
	return r.clients, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error { return nil }
func (r *fakeClientRepo) Delete(id string) error        { return nil }

// fakeExitRepo guarda las salidas en memoria. articleRepo se usa para resolver
// nombres de artículo en el histórico, igual que hace el JOIN en SQL.
// Si failUpdateAt > 0, la llamada número failUpdateAt a Update devuelve error.
type fakeExitRepo struct {
	exits        []*entity.Exit
	articleRepo  *fakeArticleRepo
	updateCalls  int
	failUpdateAt int
}

func (r *fakeExitRepo) Create(e *entity.Exit) error {
	copied := *e
	r.exits = append(r.exits, &copied)
	return nil
}

func (r *fakeExitRepo) GetByID(id string) (*entity.Exit, error) {
	for _, e := range r.exits {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeExitRepo) List(limit, offset int) ([]*entity.Exit, error) {
	return r.exits, nil
}

func (r *fakeExitRepo) Update(e *entity.Exit) error {
	r.updateCalls++
	if r.failUpdateAt > 0 && r.updateCalls == r.failUpdateAt {
		return fmt.Errorf("fallo simulado de escritura")
	}
	for i, stored := range r.exits {
		if stored.ID == e.ID {
			copied := *e
			r.exits[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("salida %s no existe", e.ID)
}

func (r *fakeExitRepo) Delete(id string) error { return nil }

func (r *fakeExitRepo) ListByClientAndDate(clientID string, date time.Time) ([]*entity.Exit, error) {
	var out []*entity.Exit
	for _, e := range r.exits {
		if e.ClientID == clientID && e.Date.Equal(date) {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeExitRepo) ExistsTuple(articleID, clientID string, quantity int, date time.Time) (bool, error) {
	for _, e := range r.exits {
		if e.ArticleID == articleID && e.ClientID == clientID && e.Quantity == quantity && e.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeExitRepo) HistoryByClientAndArticles(clientID string, articleIDs []string, excludeDate time.Time) ([]repository.YearArticleTotal, error) {
	wanted := make(map[string]bool, len(articleIDs))
	for _, id := range articleIDs {
		wanted[id] = true
	}
	type key struct {
		year    int
		article string
	}
	totals := make(map[key]int)
	for _, e := range r.exits {
		if e.ClientID != clientID || !wanted[e.ArticleID] || e.Date.Equal(excludeDate) {
			continue
		}
		name := e.ArticleID
		if a, _ := r.articleRepo.GetByID(e.ArticleID); a != nil {
			name = a.Name
		}
		totals[key{e.Date.Year(), name}] += e.Quantity
	}
	out := make([]repository.YearArticleTotal, 0, len(totals))
	for k, q := range totals {
		out = append(out, repository.YearArticleTotal{Year: k.year, Article: k.article, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Article < out[j].Article
	})
	return out, nil
}

// countAuthorized cuenta salidas autorizadas en el fake.
func (r *fakeExitRepo) countAuthorized() int {
	n := 0
	for _, e := range r.exits {
		if e.IsAuthorized {
			n++
		}
	}
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos del caso de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeNotifier struct {
	sent []orders.OrderNotification
	err  error
}

func (n *fakeNotifier) SendOrderNotification(_ context.Context, notification orders.OrderNotification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification)
	return nil
}

// fakeTxRunner simula la transacción sobre el fake: si fn falla, restaura el
// estado previo de las salidas (rollback).
type fakeTxRunner struct {
	repo *fakeExitRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(exitRepo repository.ExitRepository) error) error {
	snapshot := make([]*entity.Exit, len(tx.repo.exits))
	for i, e := range tx.repo.exits {
		copied := *e
		snapshot[i] = &copied
	}
	if err := fn(tx.repo); err != nil {
		tx.repo.exits = snapshot
		return err
	}
	return nil
}
