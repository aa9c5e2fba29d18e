package entities

import (
	"strings"
	"time"
)

type ProductCategory string

const (
	ProductCategoryDamper          ProductCategory = "damper"
	ProductCategoryCabecaImpressao ProductCategory = "cabeca-impressao"
	ProductCategoryPlaca           ProductCategory = "placa"
	ProductCategoryMotor           ProductCategory = "motor"
	ProductCategoryTinta           ProductCategory = "tinta"
	ProductCategoryEquipamento     ProductCategory = "equipamento"
	ProductCategoryOutros          ProductCategory = "outros"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case ProductCategoryDamper, ProductCategoryCabecaImpressao, ProductCategoryPlaca, ProductCategoryMotor,
		ProductCategoryTinta, ProductCategoryEquipamento, ProductCategoryOutros:
		return true
	}
	return false
}

// MarketplaceProduct is a part or equipment listed by a store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vendor_id-index): vendor_id
type MarketplaceProduct struct {
	ID                  string          `json:"id"`
	VendorID            string          `json:"vendor_id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Category            ProductCategory `json:"category"`
	Price               float64         `json:"price"`
	OriginalPrice       *float64        `json:"original_price,omitempty"`
	DiscountPercent     *float64        `json:"discount_percent,omitempty"`
	StockQuantity       int             `json:"stock_quantity"`
	CompatibleEquipment []string        `json:"compatible_equipment"`
	PurchaseCost        float64         `json:"purchase_cost"`
	ShippingCost        float64         `json:"shipping_cost"`
	AdditionalCosts     float64         `json:"additional_costs"`
	MarkupPercent       float64         `json:"markup_percent"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (p MarketplaceProduct) InStock() bool {
	return p.StockQuantity > 0
}

// CompatibleWith reports whether the product fits the given equipment type.
func (p MarketplaceProduct) CompatibleWith(equipment string) bool {
	for _, e := range p.CompatibleEquipment {
		if strings.EqualFold(e, strings.TrimSpace(equipment)) {
			return true
		}
	}
	return false
}

// CartLine is a product and the quantity requested for it.
type CartLine struct {
	Product  MarketplaceProduct `json:"product"`
	Quantity int                `json:"quantity"`
	Total    float64            `json:"total"`
}
