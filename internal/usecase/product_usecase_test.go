package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/catalog"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	mock_interfaces "github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces/mocks"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func TestProductUseCase_Create(t *testing.T) {
	base := ProductInput{
		VendorID:            "vendor-1",
		Name:                "Damper DX5",
		Category:            entities.ProductCategoryDamper,
		StockQuantity:       4,
		CompatibleEquipment: []string{" Epson ", "epson", "Roland"},
		PurchaseCost:        80,
		ShippingCost:        15,
		AdditionalCosts:     5,
		MarkupPercent:       50,
	}

	t.Run("unknown category", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil, nil)
		in := base
		in.Category = "plotter"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidProductInput) {
			t.Fatalf("expected ErrInvalidProductInput, got %v", err)
		}
	})

	t.Run("suggested price from markup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.MarketplaceProduct) (entities.MarketplaceProduct, error) { return p, nil },
		)

		p, err := uc.Create(context.Background(), base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Price != 150 {
			t.Fatalf("expected 150, got %v", p.Price)
		}
		if diff := cmp.Diff([]string{"epson", "roland"}, p.CompatibleEquipment); diff != "" {
			t.Fatalf("equipment mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("explicit price wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.MarketplaceProduct) (entities.MarketplaceProduct, error) { return p, nil },
		)

		in := base
		in.Price = floatPtr(99.999)
		p, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Price != 100 {
			t.Fatalf("expected rounded 100, got %v", p.Price)
		}
	})
}

func TestProductUseCase_List(t *testing.T) {
	items := []entities.MarketplaceProduct{
		{ID: "p1", Name: "Damper DX5", Category: entities.ProductCategoryDamper, Price: 45},
		{ID: "p2", Name: "Cabeça DX7", Category: entities.ProductCategoryCabecaImpressao, Price: 1200},
		{ID: "p3", Name: "Damper DX7", Category: entities.ProductCategoryDamper, Price: 30},
	}

	t.Run("filters and sorts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)
		repo.EXPECT().List(gomock.Any()).Return(items, nil)

		c := catalog.ReduceAll(catalog.DefaultCriteria(),
			catalog.Action{Kind: catalog.ActionSetCategory, Value: "damper"},
			catalog.Action{Kind: catalog.ActionSetSort, Value: catalog.SortByPrice},
		)
		got, err := uc.List(context.Background(), c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "p3" || got[1].ID != "p1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("unknown sort field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)
		repo.EXPECT().List(gomock.Any()).Return(items, nil)

		c := catalog.Reduce(catalog.DefaultCriteria(), catalog.Action{Kind: catalog.ActionSetSort, Value: "rating"})
		_, err := uc.List(context.Background(), c)
		if !errors.Is(err, ErrInvalidCriteria) || !errors.Is(err, catalog.ErrUnknownSortField) {
			t.Fatalf("expected ErrInvalidCriteria, got %v", err)
		}
	})
}

func TestProductUseCase_QuoteCart(t *testing.T) {
	damper := entities.MarketplaceProduct{ID: "p1", Price: 45.5, StockQuantity: 5}
	head := entities.MarketplaceProduct{ID: "p2", Price: 1200, StockQuantity: 0}

	t.Run("empty cart", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil, nil)
		_, err := uc.QuoteCart(context.Background(), nil)
		if !errors.Is(err, ErrInvalidCartInput) {
			t.Fatalf("expected ErrInvalidCartInput, got %v", err)
		}
	})

	t.Run("merges repeated products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"p1"}).Return([]entities.MarketplaceProduct{damper}, nil)

		q, err := uc.QuoteCart(context.Background(), []CartItemInput{{ProductID: "p1", Quantity: 1}, {ProductID: " p1", Quantity: 2}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Lines) != 1 || q.Lines[0].Quantity != 3 || q.Total != 136.5 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("out of stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"p2"}).Return([]entities.MarketplaceProduct{head}, nil)

		_, err := uc.QuoteCart(context.Background(), []CartItemInput{{ProductID: "p2", Quantity: 1}})
		if !errors.Is(err, pricing.ErrOutOfStock) {
			t.Fatalf("expected ErrOutOfStock, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil)
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"nope"}).Return(nil, nil)

		_, err := uc.QuoteCart(context.Background(), []CartItemInput{{ProductID: "nope", Quantity: 1}})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestProductUseCase_ExportInventory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	uc := NewProductUseCase(repo, renderer, nil)

	items := []entities.MarketplaceProduct{{ID: "p1", Price: 10}}
	repo.EXPECT().List(gomock.Any()).Return(items, nil)
	renderer.EXPECT().ProductsXLSX(items).Return([]byte("xlsx"), nil)

	doc, err := uc.ExportInventory(context.Background(), catalog.DefaultCriteria())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "estoque.xlsx" || doc.ContentType != ContentTypeXLSX {
		t.Fatalf("unexpected document: %+v", doc)
	}
}
