package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var createdAt = time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)

func marshalItem(t *testing.T, v any) item {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func sampleBudget() entities.Budget {
	return entities.Budget{
		ID:            "b-1",
		ServiceCallID: "sc-1",
		TechnicianID:  "tech-1",
		CustomerID:    "cust-1",
		CustomerEmail: "cliente@example.com",
		VisitFee:      100,
		LaborHours:    2,
		LaborRate:     50,
		Items: []entities.BudgetItem{
			{ID: "i-1", Description: "Damper DX5", Quantity: 2, UnitPrice: 30.1, Total: 60.2},
		},
		Trip:            entities.Trip{DistanceKm: 120.5, WorkDays: 2, Tolls: 3},
		Extras:          []entities.ExtraExpense{{Description: "Estacionamento", Value: 12.75}},
		DiscountPercent: 10,
		Breakdown: entities.BudgetBreakdown{
			VisitFee: 100, Labor: 100, Parts: 60.2, Travel: 120.5, Subtotal: 380.7,
			DiscountPercent: 10, DiscountValue: 38.07, Total: 342.63,
		},
		Status:    entities.BudgetStatusPendente,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestBudgetDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get round trip", func(t *testing.T) {
		repo := NewBudgetDynamoRepository(newFakeDynamo(), "budgets")
		if _, err := repo.Create(ctx, sampleBudget()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := repo.GetByID(ctx, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(sampleBudget(), got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("budget mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("create rejects duplicate id", func(t *testing.T) {
		repo := NewBudgetDynamoRepository(newFakeDynamo(), "budgets")
		if _, err := repo.Create(ctx, sampleBudget()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := repo.Create(ctx, sampleBudget())
		if err == nil || !isConditionFailed(err) {
			t.Fatalf("expected conditional check failure, got %v", err)
		}
	})

	t.Run("missing budget yields zero value", func(t *testing.T) {
		repo := NewBudgetDynamoRepository(newFakeDynamo(), "budgets")
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero budget, got %+v err=%v", got, err)
		}
		got, err = repo.Update(ctx, sampleBudget())
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero budget on update, got %+v err=%v", got, err)
		}
		got, err = repo.UpdateStatus(ctx, "nope", entities.BudgetStatusAprovado)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero budget on status update, got %+v err=%v", got, err)
		}
	})

	t.Run("update status returns new image", func(t *testing.T) {
		repo := NewBudgetDynamoRepository(newFakeDynamo(), "budgets")
		if _, err := repo.Create(ctx, sampleBudget()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := repo.UpdateStatus(ctx, "b-1", entities.BudgetStatusAprovado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BudgetStatusAprovado {
			t.Fatalf("expected aprovado, got %q", got.Status)
		}
		if !got.UpdatedAt.After(createdAt) {
			t.Fatalf("expected updated_at to move forward, got %v", got.UpdatedAt)
		}
		if got.Breakdown.Total != 342.63 {
			t.Fatalf("expected breakdown preserved, got %v", got.Breakdown.Total)
		}
	})

	t.Run("list by technician follows pages", func(t *testing.T) {
		ddb := newFakeDynamo()
		first, second := sampleBudget(), sampleBudget()
		second.ID = "b-2"
		ddb.pages = [][]item{
			{marshalItem(t, toBudgetItem(first))},
			{marshalItem(t, toBudgetItem(second))},
		}
		repo := NewBudgetDynamoRepository(ddb, "budgets")

		got, err := repo.ListByTechnicianID(ctx, "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "b-1" || got[1].ID != "b-2" {
			t.Fatalf("unexpected budgets: %+v", got)
		}
		if len(ddb.queries) != 2 {
			t.Fatalf("expected two query pages, got %d", len(ddb.queries))
		}
		q := ddb.queries[0]
		if aws.ToString(q.IndexName) != technicianIDIndex {
			t.Fatalf("unexpected index %q", aws.ToString(q.IndexName))
		}
	})
}

func TestServiceOrderDynamoRepository_CustomerVariants(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "orders")

	customers := map[string]entities.Client{
		"so-pf": entities.PessoaFisica{ID: "c-1", Nome: "Maria Souza", CPF: "529.982.247-25", Email: "maria@example.com"},
		"so-pj": entities.PessoaJuridica{ID: "c-2", RazaoSocial: "Gráfica Rápida LTDA", NomeFantasia: "Rápida Print", CNPJ: "12.345.678/0001-95", Responsavel: "João"},
	}
	for id, customer := range customers {
		t.Run(id, func(t *testing.T) {
			want := entities.ServiceOrder{
				ID:           id,
				BudgetID:     "b-1",
				TechnicianID: "tech-1",
				Customer:     customer,
				Description:  "Troca de cabeça de impressão",
				Items: []entities.ServiceOrderItem{
					{Code: "CI-01", Description: "Cabeça", Quantity: 1, UnitPrice: 800, Discount: 50, Total: 750},
				},
				Subtotal:  750,
				Total:     750,
				Status:    entities.ServiceOrderStatusAberta,
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			}
			if _, err := repo.Create(ctx, want); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := repo.GetByID(ctx, id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("update status of missing order", func(t *testing.T) {
		got, err := repo.UpdateStatus(ctx, "nope", entities.ServiceOrderStatusConcluida)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero order, got %+v err=%v", got, err)
		}
	})
}

func TestProductDynamoRepository(t *testing.T) {
	ctx := context.Background()
	original := 180.0

	newProduct := func(id string, created time.Time) entities.MarketplaceProduct {
		return entities.MarketplaceProduct{
			ID:                  id,
			VendorID:            "v-1",
			Name:                "Damper " + id,
			Category:            entities.ProductCategoryDamper,
			Price:               150,
			OriginalPrice:       &original,
			StockQuantity:       4,
			CompatibleEquipment: []string{"Mimaki JV33"},
			PurchaseCost:        100,
			MarkupPercent:       50,
			CreatedAt:           created,
			UpdatedAt:           created,
		}
	}

	t.Run("get by ids retries unprocessed keys and skips unknown ids", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.unprocessed = 1
		repo := NewProductDynamoRepository(ddb, "products")
		for _, id := range []string{"p-1", "p-2"} {
			if _, err := repo.Create(ctx, newProduct(id, createdAt)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		got, err := repo.GetByIDs(ctx, []string{"p-1", "p-2", "p-404"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 products, got %d", len(got))
		}
		for _, p := range got {
			if diff := cmp.Diff(newProduct(p.ID, createdAt), p); diff != "" {
				t.Fatalf("product mismatch (-want +got):\n%s", diff)
			}
		}
	})

	t.Run("get by ids gives up on persistent throttling", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.throttled = true
		repo := NewProductDynamoRepository(ddb, "products")
		repo.backoff = retry.BackoffDelayerFunc(func(int, error) (time.Duration, error) { return 0, nil })

		_, err := repo.GetByIDs(ctx, []string{"p-1", "p-2"})
		if !errors.Is(err, ErrUnprocessedKeys) {
			t.Fatalf("expected ErrUnprocessedKeys, got %v", err)
		}
		if ddb.batchCalls != maxBatchGetAttempts {
			t.Fatalf("expected %d calls, got %d", maxBatchGetAttempts, ddb.batchCalls)
		}
	})

	t.Run("get by ids stops waiting when the context ends", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.throttled = true
		repo := NewProductDynamoRepository(ddb, "products")
		repo.backoff = retry.BackoffDelayerFunc(func(int, error) (time.Duration, error) { return time.Hour, nil })

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.GetByIDs(cctx, []string{"p-1"})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if ddb.batchCalls != 1 {
			t.Fatalf("expected a single call, got %d", ddb.batchCalls)
		}
	})

	t.Run("list is ordered by creation", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.pages = [][]item{
			{marshalItem(t, toProductItem(newProduct("late", createdAt.Add(time.Hour))))},
			{marshalItem(t, toProductItem(newProduct("early", createdAt)))},
		}
		repo := NewProductDynamoRepository(ddb, "products")

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestAppointmentDynamoRepository_Queries(t *testing.T) {
	ctx := context.Background()
	appt := entities.Appointment{
		ID: "a-1", TechnicianID: "tech-1", ClientID: "c-1",
		Date: "2024-06-10", Time: "09:00", DurationMinutes: 60,
		Status: entities.AppointmentStatusPending, CreatedAt: createdAt, UpdatedAt: createdAt,
	}

	cases := []struct {
		name    string
		call    func(r *AppointmentDynamoRepository) ([]entities.Appointment, error)
		keyCond string
	}{
		{
			name:    "by date",
			call:    func(r *AppointmentDynamoRepository) ([]entities.Appointment, error) { return r.ListByDate(ctx, "tech-1", "2024-06-10") },
			keyCond: "technician_id = :tid AND #date = :date",
		},
		{
			name:    "from date",
			call:    func(r *AppointmentDynamoRepository) ([]entities.Appointment, error) { return r.ListFromDate(ctx, "tech-1", "2024-06-10") },
			keyCond: "technician_id = :tid AND #date >= :date",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ddb := newFakeDynamo()
			ddb.pages = [][]item{{marshalItem(t, toAppointmentItem(appt))}}
			got, err := tc.call(NewAppointmentDynamoRepository(ddb, "appointments"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff([]entities.Appointment{appt}, got); diff != "" {
				t.Fatalf("appointments mismatch (-want +got):\n%s", diff)
			}
			q := ddb.queries[0]
			if aws.ToString(q.KeyConditionExpression) != tc.keyCond {
				t.Fatalf("unexpected key condition %q", aws.ToString(q.KeyConditionExpression))
			}
			if q.ExpressionAttributeNames["#date"] != "date" || aws.ToString(q.IndexName) != technicianIDDateIndex {
				t.Fatalf("unexpected query input: %+v", q)
			}
		})
	}
}

func TestExpensesConfigDynamoRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.hashKey["expenses"] = "technician_id"
	repo := NewExpensesConfigDynamoRepository(ddb, "expenses")

	got, err := repo.GetByTechnicianID(ctx, "tech-1")
	if err != nil || got.TechnicianID != "" {
		t.Fatalf("expected zero config, got %+v err=%v", got, err)
	}

	cfg := entities.ExpensesConfig{TechnicianID: "tech-1", RatePerKm: 1.25, TravelThresholdKm: 50, RatePerMeal: 25, UpdatedAt: createdAt}
	if _, err := repo.Save(ctx, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.RatePerKm = 1.5
	if _, err := repo.Save(ctx, cfg); err != nil {
		t.Fatalf("expected save to overwrite, got %v", err)
	}

	got, err = repo.GetByTechnicianID(ctx, "tech-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestBillingPaymentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	raw := json.RawMessage(`{"id":"mp-1","status":"approved"}`)
	want := entities.BillingPayment{
		ID:           "mp-1",
		BudgetID:     "b-1",
		Amount:       472.5,
		Date:         createdAt,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: raw,
		MPPayload:    map[string]interface{}{"id": "mp-1", "status": "approved", "transaction_amount": 472.5},
	}

	t.Run("create and get round trip", func(t *testing.T) {
		repo := NewBillingPaymentDynamoRepository(newFakeDynamo(), "payments")
		if _, err := repo.Create(ctx, want); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := repo.GetByID(ctx, "mp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("payment mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("list by budget uses budget index", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.pages = [][]item{{marshalItem(t, toBillingPaymentItem(want))}}
		got, err := NewBillingPaymentDynamoRepository(ddb, "payments").ListByBudgetID(ctx, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Amount != 472.5 {
			t.Fatalf("unexpected payments: %+v", got)
		}
		if aws.ToString(ddb.queries[0].IndexName) != budgetIDIndex {
			t.Fatalf("unexpected index %q", aws.ToString(ddb.queries[0].IndexName))
		}
	})
}
