package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tponsmiquel/almacen/internal/domain"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

// importDateLayout formato de fecha en las hojas importadas (dd/mm/aaaa).
const importDateLayout = "02/01/2006"

// Row fila de la fuente tabular: artículo, cliente, cantidad y fecha.
// DateValue viene relleno cuando la fuente entrega una fecha nativa (celda de tipo
// fecha); si es nil se parsea Date como texto dd/mm/aaaa.
type Row struct {
	Article   string
	Client    string
	Quantity  int
	Date      string
	DateValue *time.Time
}

// RowStatus resultado del procesamiento de una fila.
type RowStatus string

const (
	RowCreated   RowStatus = "created"
	RowDuplicate RowStatus = "duplicate"
	RowError     RowStatus = "error"
)

// RowOutcome resultado por fila, para informar al operador sin abortar la ejecución.
type RowOutcome struct {
	Row      int
	Status   RowStatus
	Article  string
	Client   string
	Quantity int
	Date     time.Time
	Err      error
}

// ImportUseCase importa salidas desde filas tabulares de forma idempotente:
// crea el artículo si no existe (por nombre), resuelve el cliente contra un índice
// nombre→id tomado al inicio de la ejecución y omite duplicados exactos.
type ImportUseCase struct {
	articleRepo repository.ArticleRepository
	clientRepo  repository.ClientRepository
	exitRepo    repository.ExitRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(
	articleRepo repository.ArticleRepository,
	clientRepo repository.ClientRepository,
	exitRepo repository.ExitRepository,
) *ImportUseCase {
	return &ImportUseCase{articleRepo: articleRepo, clientRepo: clientRepo, exitRepo: exitRepo}
}

// Run procesa todas las filas; un fallo en una fila no aborta las demás.
// Devuelve un resultado por fila en el mismo orden. Solo retorna error si no puede
// construirse el índice de clientes.
func (uc *ImportUseCase) Run(rows []Row) ([]RowOutcome, error) {
	clients, err := uc.clientRepo.ListAll()
	if err != nil {
		return nil, err
	}
	clientIDByName := make(map[string]string, len(clients))
	for _, c := range clients {
		clientIDByName[c.Name] = c.ID
	}

	outcomes := make([]RowOutcome, 0, len(rows))
	for i, row := range rows {
		outcomes = append(outcomes, uc.importRow(i, row, clientIDByName))
	}
	return outcomes, nil
}

func (uc *ImportUseCase) importRow(i int, row Row, clientIDByName map[string]string) RowOutcome {
	out := RowOutcome{
		Row:      i,
		Article:  row.Article,
		Client:   row.Client,
		Quantity: row.Quantity,
	}

	date, err := parseRowDate(row)
	if err != nil {
		out.Status = RowError
		out.Err = err
		return out
	}
	out.Date = date

	if row.Quantity <= 0 {
		out.Status = RowError
		out.Err = fmt.Errorf("%w: cantidad %d", domain.ErrInvalidInput, row.Quantity)
		return out
	}

	article, err := uc.getOrCreateArticle(row.Article)
	if err != nil {
		out.Status = RowError
		out.Err = err
		return out
	}

	clientID, ok := clientIDByName[row.Client]
	if !ok {
		out.Status = RowError
		out.Err = fmt.Errorf("%w: cliente %q", domain.ErrNotFound, row.Client)
		return out
	}

	exists, err := uc.exitRepo.ExistsTuple(article.ID, clientID, row.Quantity, date)
	if err != nil {
		out.Status = RowError
		out.Err = err
		return out
	}
	if exists {
		out.Status = RowDuplicate
		return out
	}

	exit := &entity.Exit{
		ID:           uuid.New().String(),
		ArticleID:    article.ID,
		ClientID:     clientID,
		Quantity:     row.Quantity,
		Date:         date,
		IsAuthorized: false,
	}
	if err := uc.exitRepo.Create(exit); err != nil {
		out.Status = RowError
		out.Err = err
		return out
	}
	out.Status = RowCreated
	return out
}

// parseRowDate acepta una fecha nativa de la fuente o un texto dd/mm/aaaa;
// cualquier otra forma produce ErrFormat y la fila se descarta.
func parseRowDate(row Row) (time.Time, error) {
	if row.DateValue != nil {
		d := *row.DateValue
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(importDateLayout, row.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrFormat, row.Date)
	}
	return d, nil
}

// getOrCreateArticle reutiliza el artículo por nombre o lo da de alta
// (la primera creación gana; importaciones posteriores lo reutilizan).
func (uc *ImportUseCase) getOrCreateArticle(name string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if article != nil {
		return article, nil
	}
	article = &entity.Article{ID: uuid.New().String(), Name: name}
	if err := uc.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}
