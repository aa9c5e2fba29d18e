package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/config"

	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(config.PaymentsConfig{}, zap.NewNop())
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockCreate(t *testing.T) {
	g, err := NewMercadoPagoGateway(config.PaymentsConfig{Mock: true}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fixed := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	payload := json.RawMessage(`{"transaction_amount":288,"description":"Orçamento b1"}`)
	id, status, resp, err := g.CreatePayment(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" {
		t.Fatalf("expected approved, got %q", status)
	}
	if id == "" {
		t.Fatalf("expected provider id")
	}

	var body map[string]any
	if err := json.Unmarshal(resp, &body); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if body["transaction_amount"] != float64(288) {
		t.Fatalf("expected payload echoed back, got %v", body)
	}
	if body["date_approved"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected date_approved %v", body["date_approved"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), nil); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
