package response

import (
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
)

type ProductResponse struct {
	ID                  string    `json:"id"`
	VendorID            string    `json:"vendor_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Category            string    `json:"category"`
	Price               float64   `json:"price"`
	OriginalPrice       *float64  `json:"original_price,omitempty"`
	DiscountPercent     *float64  `json:"discount_percent,omitempty"`
	StockQuantity       int       `json:"stock_quantity"`
	InStock             bool      `json:"in_stock"`
	CompatibleEquipment []string  `json:"compatible_equipment"`
	TotalCost           float64   `json:"total_cost"`
	MarginValue         float64   `json:"margin_value"`
	MarginPercent       float64   `json:"margin_percent"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromProduct(p entities.MarketplaceProduct) ProductResponse {
	cost := pricing.ItemCost(p.PurchaseCost, p.ShippingCost, p.AdditionalCosts)
	marginValue, marginPercent := pricing.Margin(p.Price, cost)
	equipment := p.CompatibleEquipment
	if equipment == nil {
		equipment = []string{}
	}
	return ProductResponse{
		ID:                  p.ID,
		VendorID:            p.VendorID,
		Name:                p.Name,
		Description:         p.Description,
		Category:            string(p.Category),
		Price:               p.Price,
		OriginalPrice:       p.OriginalPrice,
		DiscountPercent:     p.DiscountPercent,
		StockQuantity:       p.StockQuantity,
		InStock:             p.InStock(),
		CompatibleEquipment: equipment,
		TotalCost:           pricing.RoundCents(cost),
		MarginValue:         pricing.RoundCents(marginValue),
		MarginPercent:       pricing.RoundCents(marginPercent),
		CreatedAt:           p.CreatedAt,
	}
}

func FromProducts(items []entities.MarketplaceProduct) []ProductResponse {
	out := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProduct(p))
	}
	return out
}

type CartLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type CartQuoteResponse struct {
	Lines          []CartLineResponse `json:"lines"`
	Total          float64            `json:"total"`
	TotalFormatted string             `json:"total_formatted"`
}

func FromCartQuote(q usecase.CartQuote) CartQuoteResponse {
	lines := make([]CartLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, CartLineResponse{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
			Total:     pricing.RoundCents(l.Total),
		})
	}
	return CartQuoteResponse{
		Lines:          lines,
		Total:          pricing.RoundCents(q.Total),
		TotalFormatted: pricing.FormatBRL(q.Total),
	}
}
