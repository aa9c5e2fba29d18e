package request

import (
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase"
)

// ProductRequest lists a marketplace product. Omitting price lets the
// service suggest one from the costs and markup_percent.
type ProductRequest struct {
	VendorID            string   `json:"vendor_id" binding:"required"`
	Name                string   `json:"name" binding:"required"`
	Description         string   `json:"description"`
	Category            string   `json:"category" binding:"required"`
	Price               *float64 `json:"price" binding:"omitempty,gte=0"`
	OriginalPrice       *float64 `json:"original_price" binding:"omitempty,gte=0"`
	DiscountPercent     *float64 `json:"discount_percent" binding:"omitempty,gte=0,lte=100"`
	StockQuantity       int      `json:"stock_quantity" binding:"gte=0"`
	CompatibleEquipment []string `json:"compatible_equipment"`
	PurchaseCost        float64  `json:"purchase_cost" binding:"gte=0"`
	ShippingCost        float64  `json:"shipping_cost" binding:"gte=0"`
	AdditionalCosts     float64  `json:"additional_costs" binding:"gte=0"`
	MarkupPercent       float64  `json:"markup_percent"`
}

func (r ProductRequest) ToInput() usecase.ProductInput {
	equipment := make([]string, 0, len(r.CompatibleEquipment))
	for _, e := range r.CompatibleEquipment {
		if e = strings.TrimSpace(e); e != "" {
			equipment = append(equipment, e)
		}
	}
	return usecase.ProductInput{
		VendorID:            strings.TrimSpace(r.VendorID),
		Name:                strings.TrimSpace(r.Name),
		Description:         strings.TrimSpace(r.Description),
		Category:            entities.ProductCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		Price:               r.Price,
		OriginalPrice:       r.OriginalPrice,
		DiscountPercent:     r.DiscountPercent,
		StockQuantity:       r.StockQuantity,
		CompatibleEquipment: equipment,
		PurchaseCost:        r.PurchaseCost,
		ShippingCost:        r.ShippingCost,
		AdditionalCosts:     r.AdditionalCosts,
		MarkupPercent:       r.MarkupPercent,
	}
}

type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

type CartQuoteRequest struct {
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CartQuoteRequest) ToInput() []usecase.CartItemInput {
	out := make([]usecase.CartItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, usecase.CartItemInput{ProductID: strings.TrimSpace(it.ProductID), Quantity: it.Quantity})
	}
	return out
}
