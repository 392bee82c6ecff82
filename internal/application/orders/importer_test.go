package orders_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tponsmiquel/almacen/internal/application/orders"
	"github.com/tponsmiquel/almacen/internal/domain"
	"github.com/tponsmiquel/almacen/internal/domain/entity"
)

// buildImportFixture prepara un cliente registrado y un artículo existente.
func buildImportFixture() (*fakeArticleRepo, *fakeClientRepo, *fakeExitRepo, *orders.ImportUseCase) {
	articleRepo := &fakeArticleRepo{articles: []*entity.Article{
		{ID: "art-toalla", Name: "Toalla"},
	}}
	clientRepo := &fakeClientRepo{clients: []*entity.Client{
		{ID: "cli-1", Name: "Hotel Miramar"},
	}}
	exitRepo := &fakeExitRepo{articleRepo: articleRepo}
	uc := orders.NewImportUseCase(articleRepo, clientRepo, exitRepo)
	return articleRepo, clientRepo, exitRepo, uc
}

// Caso 1: fila bien formada → salida creada sin autorizar con la fecha dd/mm/aaaa parseada.
func TestImport_CreaSalidaDesdeFilaValida(t *testing.T) {
	_, _, exitRepo, uc := buildImportFixture()

	outcomes, err := uc.Run([]orders.Row{
		{Article: "Toalla", Client: "Hotel Miramar", Quantity: 3, Date: "15/03/2024"},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	assert.Equal(t, orders.RowCreated, outcomes[0].Status)
	require.Len(t, exitRepo.exits, 1)
	created := exitRepo.exits[0]
	assert.Equal(t, "art-toalla", created.ArticleID)
	assert.Equal(t, "cli-1", created.ClientID)
	assert.Equal(t, 3, created.Quantity)
	assert.True(t, created.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, created.IsAuthorized)
}

// Caso 2: la fecha nativa de la fuente tiene prioridad sobre el texto.
func TestImport_FechaNativa(t *testing.T) {
	_, _, exitRepo, uc := buildImportFixture()

	native := time.Date(2023, 11, 7, 14, 30, 0, 0, time.UTC)
	outcomes, err := uc.Run([]orders.Row{
		{Article: "Toalla", Client: "Hotel Miramar", Quantity: 1, Date: "texto irrelevante", DateValue: &native},
	})
	require.NoError(t, err)

	assert.Equal(t, orders.RowCreated, outcomes[0].Status)
	require.Len(t, exitRepo.exits, 1)
	assert.True(t, exitRepo.exits[0].Date.Equal(time.Date(2023, 11, 7, 0, 0, 0, 0, time.UTC)),
		"la fecha nativa debe truncarse al día")
}

// Caso 3: fecha ilegible → la fila falla con ErrFormat y no crea nada.
func TestImport_FechaIlegible(t *testing.T) {
	_, _, exitRepo, uc := buildImportFixture()

	outcomes, err := uc.Run([]orders.Row{
		{Article: "Toalla", Client: "Hotel Miramar", Quantity: 2, Date: "2024-03-15"},
	})
	require.NoError(t, err)

	assert.Equal(t, orders.RowError, outcomes[0].Status)
	assert.ErrorIs(t, outcomes[0].Err, domain.ErrFormat)
	assert.Empty(t, exitRepo.exits)
}

// Caso 4: artículo inexistente se crea sobre la marcha y se reutiliza en filas
// posteriores (una sola alta por nombre).
func TestImport_CreaYReutilizaArticulo(t *testing.T) {
	articleRepo, _, exitRepo, uc := buildImportFixture()

	outcomes, err := uc.Run([]orders.Row{
		{Article: "Sábana", Client: "Hotel Miramar", Quantity: 1, Date: "01/02/2024"},
		{Article: "Sábana", Client: "Hotel Miramar", Quantity: 2, Date: "02/02/2024"},
	})
	require.NoError(t, err)

	assert.Equal(t, orders.RowCreated, outcomes[0].Status)
	assert.Equal(t, orders.RowCreated, outcomes[1].Status)
	assert.Len(t, articleRepo.articles, 2, "Toalla preexistente más Sábana creada una vez")
	require.Len(t, exitRepo.exits, 2)
	assert.Equal(t, exitRepo.exits[0].ArticleID, exitRepo.exits[1].ArticleID,
		"ambas filas deben apuntar al mismo artículo")
}

// Caso 5: cliente no registrado → la fila falla; los clientes nunca se crean al importar.
func TestImport_ClienteDesconocido(t *testing.T) {
	_, clientRepo, exitRepo, uc := buildImportFixture()

	outcomes, err := uc.Run([]orders.Row{
		{Article: "Toalla", Client: "Hostal Inventado", Quantity: 1, Date: "01/02/2024"},
	})
	require.NoError(t, err)

	assert.Equal(t, orders.RowError, outcomes[0].Status)
	assert.ErrorIs(t, outcomes[0].Err, domain.ErrNotFound)
	assert.Len(t, clientRepo.clients, 1, "la importación no da de alta clientes")
	assert.Empty(t, exitRepo.exits)
}

// Caso 6: una fila idéntica a una salida ya existente se marca duplicada y se omite.
func TestImport_OmiteDuplicados(t *testing.T) {
	_, _, exitRepo, uc := buildImportFixture()

	row := orders.Row{Article: "Toalla", Client: "Hotel Miramar", Quantity: 3, Date: "15/03/2024"}
	outcomes, err := uc.Run([]orders.Row{row, row})
	require.NoError(t, err)

	assert.Equal(t, orders.RowCreated, outcomes[0].Status)
	assert.Equal(t, orders.RowDuplicate, outcomes[1].Status)
	assert.Len(t, exitRepo.exits, 1, "el duplicado exacto no debe insertarse")
}

// Caso 7: cantidad no positiva → fila errónea sin abortar el resto.
func TestImport_CantidadInvalida(t *testing.T) {
	_, _, exitRepo, uc := buildImportFixture()

	outcomes, err := uc.Run([]orders.Row{
		{Article: "Toalla", Client: "Hotel Miramar", Quantity: 0, Date: "01/02/2024"},
		{Article: "Toalla", Client: "Hotel Miramar", Quantity: 4, Date: "01/02/2024"},
	})
	require.NoError(t, err)

	assert.Equal(t, orders.RowError, outcomes[0].Status)
	assert.ErrorIs(t, outcomes[0].Err, domain.ErrInvalidInput)
	assert.Equal(t, orders.RowCreated, outcomes[1].Status)
	assert.Len(t, exitRepo.exits, 1)
}

// Caso 8: una mezcla de filas buenas y malas nunca aborta la ejecución; cada fila
// conserva su resultado en orden.
func TestImport_FilasAisladas(t *testing.T) {
	_, _, exitRepo, uc := buildImportFixture()

	outcomes, err := uc.Run([]orders.Row{
		{Article: "Toalla", Client: "Hotel Miramar", Quantity: 1, Date: "01/02/2024"},
		{Article: "Toalla", Client: "Hotel Miramar", Quantity: 1, Date: "fecha rota"},
		{Article: "Toalla", Client: "Nadie", Quantity: 1, Date: "02/02/2024"},
		{Article: "Toalla", Client: "Hotel Miramar", Quantity: 2, Date: "03/02/2024"},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	assert.Equal(t, orders.RowCreated, outcomes[0].Status)
	assert.Equal(t, orders.RowError, outcomes[1].Status)
	assert.Equal(t, orders.RowError, outcomes[2].Status)
	assert.Equal(t, orders.RowCreated, outcomes[3].Status)
	assert.Len(t, exitRepo.exits, 2)
}
