// importer carga salidas históricas desde una hoja de cálculo .xlsx con columnas
// article, client, quantity y date (texto dd/mm/aaaa o celda de fecha nativa).
//
// Uso: go run ./cmd/importer [ruta/salidas.xlsx]
// Por defecto busca salidas.xlsx en el directorio actual.
//
// Cada fila se procesa de forma aislada: las filas erróneas o duplicadas se
// informan y el resto se importa igualmente.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tponsmiquel/almacen/internal/application/orders"
	"github.com/tponsmiquel/almacen/internal/infrastructure/excel"
	"github.com/tponsmiquel/almacen/internal/infrastructure/postgres"
	"github.com/tponsmiquel/almacen/pkg/config"
)

func main() {
	path := "salidas.xlsx"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	rows, err := excel.ReadRows(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer hoja: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := orders.NewImportUseCase(
		postgres.NewArticleRepository(pool),
		postgres.NewClientRepository(pool),
		postgres.NewExitRepository(pool),
	)

	outcomes, err := uc.Run(rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}

	var created, duplicates, failed int
	for _, out := range outcomes {
		line := out.Row + 2 // la fila 1 de la hoja es la cabecera
		switch out.Status {
		case orders.RowCreated:
			created++
			fmt.Printf("Fila %d: creada salida %s x%d para %s (%s)\n",
				line, out.Article, out.Quantity, out.Client, out.Date.Format("02/01/2006"))
		case orders.RowDuplicate:
			duplicates++
			fmt.Printf("Fila %d: duplicada, se omite (%s x%d para %s)\n",
				line, out.Article, out.Quantity, out.Client)
		case orders.RowError:
			failed++
			fmt.Printf("Fila %d: error: %v\n", line, out.Err)
		}
	}

	fmt.Printf("Datos importados correctamente: %d creadas, %d duplicadas, %d con error\n",
		created, duplicates, failed)
}
