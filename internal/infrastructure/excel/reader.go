package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tponsmiquel/almacen/internal/application/orders"
	"github.com/xuri/excelize/v2"
)

// Cabeceras esperadas en la primera fila de la hoja. La comparación ignora
// mayúsculas y espacios alrededor.
const (
	headerArticle  = "article"
	headerClient   = "client"
	headerQuantity = "quantity"
	headerDate     = "date"
)

// ReadRows abre un libro .xlsx desde path y devuelve las filas de datos de la
// primera hoja. No valida contenido; cada fila se entrega tal cual para que el
// importador decida su destino de forma aislada.
func ReadRows(path string) ([]orders.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excel: abrir %s: %w", path, err)
	}
	defer f.Close()
	return readRows(f)
}

// ReadRowsFrom lee el libro desde un reader, útil para cargas por HTTP.
func ReadRowsFrom(r io.Reader) ([]orders.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel: abrir libro: %w", err)
	}
	defer f.Close()
	return readRows(f)
}

func readRows(f *excelize.File) ([]orders.Row, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel: libro sin hojas")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: leer hoja %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel: hoja %s vacía", sheet)
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	out := make([]orders.Row, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		rowNum := i + 2
		row := orders.Row{
			Article:  cellAt(cells, cols[headerArticle]),
			Client:   cellAt(cells, cols[headerClient]),
			Quantity: parseQuantity(cellAt(cells, cols[headerQuantity])),
			Date:     cellAt(cells, cols[headerDate]),
		}
		// Las celdas de fecha nativas de Excel guardan un serial numérico; si el
		// valor crudo lo es, se convierte aquí y el importador no vuelve a parsear.
		if raw, err := rawCell(f, sheet, cols[headerDate], rowNum); err == nil && raw != "" {
			if serial, err := strconv.ParseFloat(raw, 64); err == nil {
				if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
					t = t.Truncate(24 * time.Hour)
					row.DateValue = &t
				}
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// headerIndex localiza las cuatro columnas esperadas en la fila de cabecera.
func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, 4)
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range []string{headerArticle, headerClient, headerQuantity, headerDate} {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("excel: falta la columna %q en la cabecera", want)
		}
	}
	return cols, nil
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

func rawCell(f *excelize.File, sheet string, col, row int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return "", err
	}
	return f.GetCellValue(sheet, name, excelize.Options{RawCellValue: true})
}

// parseQuantity acepta enteros y numéricos con decimales vacíos ("3", "3.0").
// Un valor no numérico queda en cero y el importador lo rechaza como fila errónea.
func parseQuantity(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == float64(int(v)) {
		return int(v)
	}
	return 0
}
