package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

type sheetStyles struct {
	title, subtitle, header, cell, money, label, total int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{&s.subtitle, &excelize.Style{Font: &excelize.Font{Size: 11}}},
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{&s.cell, &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{&s.money, &excelize.Style{
			Font:      &excelize.Font{Size: 10},
			Border:    thinBorders(),
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
		{&s.label, &excelize.Style{Font: &excelize.Font{Size: 11}, Alignment: &excelize.Alignment{Horizontal: "right"}}},
		{&s.total, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Alignment: &excelize.Alignment{Horizontal: "right"}}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, fmt.Errorf("create style: %w", err)
		}
		*d.dst = id
	}
	return s, nil
}

// BudgetXLSX renders a budget: header, parts table and breakdown summary.
func BudgetXLSX(b entities.Budget) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(budgetTitle(b), "Orcamento")
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	st, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	columns := []string{"A", "B", "C", "D"}
	widths := []float64{48, 10, 18, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", budgetTitle(b))
	f.SetCellStyle(sheet, "A1", "D1", st.title)
	f.SetCellValue(sheet, "A2", "Data: "+b.CreatedAt.Format(dateLayout))
	f.SetCellValue(sheet, "A3", "Status: "+string(b.Status))
	f.SetCellStyle(sheet, "A2", "A3", st.subtitle)

	headers := []string{"Descrição", "Qtd", "Valor unitário", "Total"}
	for i, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheet, "A5", "D5", st.header)

	row := 6
	for _, it := range b.Items {
		r := fmt.Sprint(row)
		f.SetCellValue(sheet, "A"+r, sanitizeExcelCell(it.Description))
		f.SetCellValue(sheet, "B"+r, it.Quantity)
		f.SetCellValue(sheet, "C"+r, brl(it.UnitPrice))
		f.SetCellValue(sheet, "D"+r, brl(it.Total))
		f.SetCellStyle(sheet, "A"+r, "B"+r, st.cell)
		f.SetCellStyle(sheet, "C"+r, "D"+r, st.money)
		row++
	}

	row++
	for _, l := range budgetSummary(b) {
		r := fmt.Sprint(row)
		style := st.label
		if l.Bold {
			style = st.total
		}
		f.SetCellValue(sheet, "C"+r, l.Label)
		f.SetCellValue(sheet, "D"+r, brl(l.Value))
		f.SetCellStyle(sheet, "C"+r, "D"+r, style)
		row++
	}

	if notes := strings.TrimSpace(b.Notes); notes != "" {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Observações: "+sanitizeExcelCell(notes))
	}

	return write(f)
}

// ProductsXLSX renders the inventory with cost, price and margin per product.
func ProductsXLSX(items []entities.MarketplaceProduct) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Estoque"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	st, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	widths := []float64{36, 18, 10, 16, 16, 16, 10}
	headers := []string{"Produto", "Categoria", "Estoque", "Custo", "Preço", "Margem", "Margem %"}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
		f.SetCellValue(sheet, col+"1", headers[i])
	}
	f.SetCellStyle(sheet, "A1", "G1", st.header)
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	for i, p := range items {
		r := fmt.Sprint(i + 2)
		cost := productCost(p)
		margin, marginPct := productMargin(p)
		f.SetCellValue(sheet, "A"+r, sanitizeExcelCell(p.Name))
		f.SetCellValue(sheet, "B"+r, string(p.Category))
		f.SetCellValue(sheet, "C"+r, p.StockQuantity)
		f.SetCellValue(sheet, "D"+r, brl(cost))
		f.SetCellValue(sheet, "E"+r, brl(p.Price))
		f.SetCellValue(sheet, "F"+r, brl(margin))
		f.SetCellValue(sheet, "G"+r, fmt.Sprintf("%.1f%%", marginPct))
		f.SetCellStyle(sheet, "A"+r, "C"+r, st.cell)
		f.SetCellStyle(sheet, "D"+r, "G"+r, st.money)
	}

	return write(f)
}

func write(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetName trims to Excel's 31 character limit and drops forbidden characters.
func sheetName(name, fallback string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return -1
		}
		return r
	}, name)
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}

// sanitizeExcelCell prefixes formula-triggering leading characters with a quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
