// Package export renders budgets and the product inventory as downloadable
// XLSX and PDF documents.
package export

import (
	"fmt"
	"strconv"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
)

const dateLayout = "02/01/2006"

type summaryLine struct {
	Label string
	Value float64
	Bold  bool
}

// budgetSummary lists the breakdown figures in the order they are printed.
// Zero expense lines are omitted; subtotal and total are always present.
func budgetSummary(b entities.Budget) []summaryLine {
	bd := b.Breakdown
	optional := []summaryLine{
		{Label: "Taxa de visita", Value: bd.VisitFee},
		{Label: "Mão de obra", Value: bd.Labor},
		{Label: "Peças", Value: bd.Parts},
		{Label: "Deslocamento", Value: bd.Travel},
		{Label: "Hospedagem", Value: bd.Lodging},
		{Label: "Alimentação", Value: bd.Meals},
		{Label: "Despesas extras", Value: bd.Extras},
	}

	lines := make([]summaryLine, 0, len(optional)+3)
	for _, l := range optional {
		if l.Value != 0 {
			lines = append(lines, l)
		}
	}
	lines = append(lines, summaryLine{Label: "Subtotal", Value: bd.Subtotal, Bold: true})
	if bd.DiscountValue != 0 {
		lines = append(lines, summaryLine{
			Label: fmt.Sprintf("Desconto (%s%%)", strconv.FormatFloat(bd.DiscountPercent, 'f', -1, 64)),
			Value: -bd.DiscountValue,
		})
	}
	lines = append(lines, summaryLine{Label: "Total", Value: bd.Total, Bold: true})
	return lines
}

func budgetTitle(b entities.Budget) string {
	return "Orçamento " + shortID(b.ID)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func brl(v float64) string {
	return pricing.FormatBRL(v)
}

func productCost(p entities.MarketplaceProduct) float64 {
	return pricing.ItemCost(p.PurchaseCost, p.ShippingCost, p.AdditionalCosts)
}

func productMargin(p entities.MarketplaceProduct) (float64, float64) {
	return pricing.Margin(p.Price, productCost(p))
}
