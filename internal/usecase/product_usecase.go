package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/catalog"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductInput = errors.New("invalid product input")
	ErrInvalidCartInput    = errors.New("invalid cart input")
	ErrInvalidCriteria     = errors.New("invalid filter criteria")
)

// ProductInput lists a product. When Price is nil it is suggested from the
// total cost and MarkupPercent.
type ProductInput struct {
	VendorID            string `validate:"required"`
	Name                string `validate:"required"`
	Description         string
	Category            entities.ProductCategory `validate:"required"`
	Price               *float64                 `validate:"omitempty,gte=0"`
	OriginalPrice       *float64                 `validate:"omitempty,gte=0"`
	DiscountPercent     *float64                 `validate:"omitempty,gte=0,lte=100"`
	StockQuantity       int                      `validate:"gte=0"`
	CompatibleEquipment []string
	PurchaseCost        float64 `validate:"gte=0"`
	ShippingCost        float64 `validate:"gte=0"`
	AdditionalCosts     float64 `validate:"gte=0"`
	MarkupPercent       float64
}

type CartItemInput struct {
	ProductID string `validate:"required"`
	Quantity  int    `validate:"gte=1"`
}

// CartQuote is the priced cart.
type CartQuote struct {
	Lines []entities.CartLine
	Total float64
}

type IProductUseCase interface {
	Create(ctx context.Context, in ProductInput) (entities.MarketplaceProduct, error)
	GetByID(ctx context.Context, id string) (entities.MarketplaceProduct, error)
	List(ctx context.Context, c catalog.Criteria) ([]entities.MarketplaceProduct, error)
	QuoteCart(ctx context.Context, items []CartItemInput) (CartQuote, error)
	ExportInventory(ctx context.Context, c catalog.Criteria) (Document, error)
}

type ProductUseCase struct {
	repo     interfaces.IProductRepository
	renderer interfaces.IDocumentRenderer
	log      *zap.Logger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, renderer interfaces.IDocumentRenderer, log *zap.Logger) *ProductUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductUseCase{repo: repo, renderer: renderer, log: log}
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.MarketplaceProduct, error) {
	if err := validateInput(in, ErrInvalidProductInput); err != nil {
		return entities.MarketplaceProduct{}, err
	}
	if !in.Category.Valid() {
		return entities.MarketplaceProduct{}, fmt.Errorf("%w: unknown category %q", ErrInvalidProductInput, in.Category)
	}

	price := pricing.SuggestedPrice(pricing.ItemCost(in.PurchaseCost, in.ShippingCost, in.AdditionalCosts), in.MarkupPercent)
	if in.Price != nil {
		price = *in.Price
	}

	now := time.Now().UTC()
	p := entities.MarketplaceProduct{
		ID:                  uuid.NewString(),
		VendorID:            strings.TrimSpace(in.VendorID),
		Name:                strings.TrimSpace(in.Name),
		Description:         strings.TrimSpace(in.Description),
		Category:            in.Category,
		Price:               pricing.RoundCents(price),
		OriginalPrice:       in.OriginalPrice,
		DiscountPercent:     in.DiscountPercent,
		StockQuantity:       in.StockQuantity,
		CompatibleEquipment: normalizeTags(in.CompatibleEquipment),
		PurchaseCost:        in.PurchaseCost,
		ShippingCost:        in.ShippingCost,
		AdditionalCosts:     in.AdditionalCosts,
		MarkupPercent:       in.MarkupPercent,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("[product][usecase] repository create failed", zap.String("product_id", p.ID), zap.Error(err))
		return entities.MarketplaceProduct{}, err
	}
	u.log.Info("[product][usecase] created",
		zap.String("product_id", created.ID),
		zap.Float64("price", created.Price),
		zap.Bool("suggested_price", in.Price == nil),
	)
	return created, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.MarketplaceProduct, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MarketplaceProduct{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MarketplaceProduct{}, err
	}
	if p.ID == "" {
		return entities.MarketplaceProduct{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context, c catalog.Criteria) ([]entities.MarketplaceProduct, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out, err := catalog.Products(all, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
	}
	return out, nil
}

// QuoteCart prices the requested quantities against current stock.
// Repeated product ids are merged.
func (u *ProductUseCase) QuoteCart(ctx context.Context, items []CartItemInput) (CartQuote, error) {
	if len(items) == 0 {
		return CartQuote{}, ErrInvalidCartInput
	}

	quantities := map[string]int{}
	var order []string
	for _, it := range items {
		if err := validateInput(it, ErrInvalidCartInput); err != nil {
			return CartQuote{}, err
		}
		id := strings.TrimSpace(it.ProductID)
		if _, seen := quantities[id]; !seen {
			order = append(order, id)
		}
		quantities[id] += it.Quantity
	}

	products, err := u.repo.GetByIDs(ctx, order)
	if err != nil {
		return CartQuote{}, err
	}
	byID := make(map[string]entities.MarketplaceProduct, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]entities.CartLine, 0, len(order))
	for _, id := range order {
		p, ok := byID[id]
		if !ok {
			return CartQuote{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		lines = append(lines, entities.CartLine{Product: p, Quantity: quantities[id]})
	}

	priced, total, err := pricing.CartTotal(lines)
	if err != nil {
		return CartQuote{}, err
	}
	return CartQuote{Lines: priced, Total: pricing.RoundCents(total)}, nil
}

func (u *ProductUseCase) ExportInventory(ctx context.Context, c catalog.Criteria) (Document, error) {
	items, err := u.List(ctx, c)
	if err != nil {
		return Document{}, err
	}
	body, err := u.renderer.ProductsXLSX(items)
	if err != nil {
		return Document{}, err
	}
	return Document{Name: "estoque.xlsx", ContentType: ContentTypeXLSX, Body: body}, nil
}

func normalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
