package export

import (
	"fmt"
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	grey       = &props.Color{Red: 90, Green: 90, Blue: 90}
	headerFill = &props.Color{Red: 31, Green: 78, Blue: 121}
	white      = &props.Color{Red: 255, Green: 255, Blue: 255}
	stripe     = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// BudgetPDF renders the customer-facing budget document.
func BudgetPDF(b entities.Budget) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   grey,
		}).
		Build()

	m := maroto.New(cfg)
	addBudgetHeader(m, b)
	addItemsTable(m, b.Items)
	addBudgetSummary(m, b)
	if notes := strings.TrimSpace(b.Notes); notes != "" {
		m.AddRows(row.New(6))
		m.AddRows(text.NewRow(10, "Observações: "+notes, props.Text{Size: 8, Color: grey}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addBudgetHeader(m core.Maroto, b entities.Budget) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(text.New(budgetTitle(b), props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center})),
		),
		row.New(8).Add(
			col.New(6).Add(text.New("Status: "+string(b.Status), props.Text{Size: 9, Color: grey})),
			col.New(6).Add(text.New("Data: "+b.CreatedAt.Format(dateLayout), props.Text{Size: 9, Align: align.Right, Color: grey})),
		),
		row.New(4),
	)
}

func addItemsTable(m core.Maroto, items []entities.BudgetItem) {
	if len(items) == 0 {
		return
	}
	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: white}
	headLeft := head
	headLeft.Align = align.Left
	fill := &props.Cell{BackgroundColor: headerFill}

	m.AddRows(row.New(8).Add(
		col.New(6).Add(text.New("Descrição", headLeft)).WithStyle(fill),
		col.New(2).Add(text.New("Qtd", head)).WithStyle(fill),
		col.New(2).Add(text.New("Unitário", head)).WithStyle(fill),
		col.New(2).Add(text.New("Total", head)).WithStyle(fill),
	))

	body := props.Text{Size: 8, Align: align.Right}
	bodyLeft := body
	bodyLeft.Align = align.Left
	for i, it := range items {
		cols := []core.Col{
			col.New(6).Add(text.New(it.Description, bodyLeft)),
			col.New(2).Add(text.New(fmt.Sprint(it.Quantity), body)),
			col.New(2).Add(text.New(brl(it.UnitPrice), body)),
			col.New(2).Add(text.New(brl(it.Total), body)),
		}
		if i%2 == 1 {
			for j := range cols {
				cols[j] = cols[j].WithStyle(&props.Cell{BackgroundColor: stripe})
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}
	m.AddRows(row.New(6))
}

func addBudgetSummary(m core.Maroto, b entities.Budget) {
	for _, l := range budgetSummary(b) {
		style := fontstyle.Normal
		size := 9.0
		if l.Bold {
			style = fontstyle.Bold
			size = 10
		}
		m.AddRows(row.New(7).Add(
			col.New(8).Add(text.New(l.Label, props.Text{Size: size, Style: style, Align: align.Right})),
			col.New(4).Add(text.New(brl(l.Value), props.Text{Size: size, Style: style, Align: align.Right})),
		))
	}
}
