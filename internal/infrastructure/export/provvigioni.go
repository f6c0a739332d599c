// Package export renders reports as xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"farina/internal/domain/reports"
)

const riepilogoSheet = "Riepilogo"

// ProvvigioniXLSX builds the quarterly commission workbook: one sheet per
// mill with the order lines, plus a summary sheet. The caller owns the
// returned file and must Close it after writing.
func ProvvigioniXLSX(riepilogo *reports.RiepilogoTrimestre, righe []reports.RigaProvvigione) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	totale, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	if err := writeRiepilogo(f, header, totale, riepilogo); err != nil {
		return nil, err
	}

	perMulino := make(map[string][]reports.RigaProvvigione)
	for _, r := range righe {
		perMulino[r.MulinoNome] = append(perMulino[r.MulinoNome], r)
	}
	for _, m := range riepilogo.Mulini {
		if err := writeMulino(f, header, totale, m, perMulino[m.MulinoNome]); err != nil {
			return nil, err
		}
	}

	// The default sheet excelize creates on NewFile.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	return f, nil
}

func writeRiepilogo(f *excelize.File, header, totale int, r *reports.RiepilogoTrimestre) error {
	if _, err := f.NewSheet(riepilogoSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", riepilogoSheet, err)
	}

	setRow(f, riepilogoSheet, 1, "Provvigioni", fmt.Sprintf("T%d %d", r.Trimestre, r.Anno))
	setRow(f, riepilogoSheet, 2, "Periodo",
		r.DataInizio.Format("02/01/2006"), r.DataFine.Format("02/01/2006"))

	setRow(f, riepilogoSheet, 4, "Mulino", "Ordini", "Quintali", "Incassato", "Provvigioni")
	f.SetCellStyle(riepilogoSheet, "A4", "E4", header)

	row := 5
	for _, m := range r.Mulini {
		setRow(f, riepilogoSheet, row,
			m.MulinoNome, m.NumOrdini, m.TotaleQuintali.Float64(),
			moneyCell(m.TotaleIncassato), moneyCell(m.TotaleProvvigioni))
		row++
	}
	setRow(f, riepilogoSheet, row,
		"Totale", "", r.TotaleQuintali.Float64(),
		moneyCell(r.TotaleIncassato), moneyCell(r.TotaleProvvigioni))
	f.SetCellStyle(riepilogoSheet, cell(1, row), cell(5, row), totale)

	f.SetColWidth(riepilogoSheet, "A", "A", 30)
	f.SetColWidth(riepilogoSheet, "B", "E", 14)
	return nil
}

func writeMulino(f *excelize.File, header, totale int, m reports.ProvvigioneMulino, righe []reports.RigaProvvigione) error {
	sheet := sheetName(m.MulinoNome)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	setRow(f, sheet, 1, "Ordine", "Data", "Cliente", "Prodotto",
		"Quintali", "Prezzo/q", "Importo", "Provvigione")
	f.SetCellStyle(sheet, "A1", "H1", header)

	row := 2
	for _, r := range righe {
		setRow(f, sheet, row,
			r.NumeroOrdine, r.DataOrdine.Format("02/01/2006"),
			r.ClienteNome, r.ProdottoNome,
			r.Quintali.Float64(), moneyCell(r.PrezzoQuintale),
			moneyCell(r.ImportoRiga), moneyCell(r.Provvigione))
		row++
	}
	setRow(f, sheet, row,
		"Totale", "", "", "",
		m.TotaleQuintali.Float64(), "",
		moneyCell(m.TotaleIncassato), moneyCell(m.TotaleProvvigioni))
	f.SetCellStyle(sheet, cell(1, row), cell(8, row), totale)

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 12)
	f.SetColWidth(sheet, "C", "D", 30)
	f.SetColWidth(sheet, "E", "H", 12)
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		f.SetCellValue(sheet, cell(i+1, row), v)
	}
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func moneyCell(m interface{ InexactFloat64() float64 }) float64 {
	return m.InexactFloat64()
}

// sheetName trims a mill name to the 31 characters excel allows.
func sheetName(nome string) string {
	if nome == "" {
		return "Mulino"
	}
	runes := []rune(nome)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}
