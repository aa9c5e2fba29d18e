package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	appconfig "github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/config"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentBudgetID         = errors.New("invalid budget_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const sandboxFallbackPayerEmail = "test_user_br@testuser.com"

// IBillingPaymentUseCase charges approved budgets.
//
//   - CreateAndApprove sends the payment to the gateway and stores it as aprovado
//   - the amount always comes from the stored budget, never from the payload
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BillingPayment, error)
	GetLatestByBudgetID(ctx context.Context, budgetID string) (entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo       interfaces.IBillingPaymentRepository
	budgetRepo interfaces.IBudgetRepository
	gateway    interfaces.IPaymentGateway
	cfg        appconfig.PaymentsConfig
	log        *zap.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	repo interfaces.IBillingPaymentRepository,
	budgetRepo interfaces.IBudgetRepository,
	gateway interfaces.IPaymentGateway,
	cfg appconfig.PaymentsConfig,
	log *zap.Logger,
) *BillingPaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillingPaymentUseCase{repo: repo, budgetRepo: budgetRepo, gateway: gateway, cfg: cfg, log: log}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	u.log.Info("[payment][usecase] create-and-approve start", zap.String("raw_budget_id", budgetID), zap.Int("payload_len", len(mpPayload)))
	mockMode := u.cfg.Mock
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentBudgetID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			u.log.Warn("[payment][usecase] invalid payload", zap.String("budget_id", budgetID))
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		u.log.Error("[payment][usecase] gateway not configured", zap.String("budget_id", budgetID))
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	b, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		u.log.Error("[payment][usecase] failed loading budget", zap.String("budget_id", budgetID), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	if b.ID == "" {
		return entities.BillingPayment{}, ErrBudgetNotFound
	}
	if b.Status != entities.BudgetStatusAprovado {
		u.log.Warn("[payment][usecase] budget not approved", zap.String("budget_id", budgetID), zap.String("status", string(b.Status)))
		return entities.BillingPayment{}, ErrBudgetNotApproved
	}
	amount := pricing.RoundCents(b.Breakdown.Total)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.log.Warn("[payment][usecase] missing payment_method_id", zap.String("budget_id", budgetID))
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			u.log.Warn("[payment][usecase] missing payer", zap.String("budget_id", budgetID))
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}

	// external_reference lets webhook events be reconciled with the budget.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = budgetID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento %s", budgetID)
	}
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.log.Error("[payment][usecase] payment gateway failed", zap.String("budget_id", budgetID), zap.Error(err))
		return entities.BillingPayment{}, classifyGatewayError(err)
	}
	u.log.Info("[payment][usecase] payment gateway success",
		zap.String("budget_id", budgetID),
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("[payment][usecase] provider response unmarshal failed", zap.String("budget_id", budgetID), zap.Error(err))
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		BudgetID:     budgetID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("[payment][usecase] repository create failed", zap.String("budget_id", budgetID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	u.log.Info("[payment][usecase] create-and-approve success", zap.String("budget_id", budgetID), zap.String("payment_id", created.ID))
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BillingPayment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidPaymentBudgetID
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}

// GetLatestByBudgetID returns the most recent payment of a budget.
func (u *BillingPaymentUseCase) GetLatestByBudgetID(ctx context.Context, budgetID string) (entities.BillingPayment, error) {
	items, err := u.ListByBudgetID(ctx, budgetID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if len(items) == 0 {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	latest := items[0]
	for _, p := range items[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

// ensurePayerDefaults fills payer.type and, for sandbox tokens, a test payer
// e-mail when neither payer.id nor payer.email were sent.
func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.cfg.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.cfg.Sandbox() {
		payer["email"] = sandboxFallbackPayerEmail
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its e-mail;
// the sandbox rejects payer ids of test users.
func (u *BillingPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.cfg.Sandbox() {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.cfg.TestPayerUserID)
	email := strings.TrimSpace(u.cfg.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// classifyGatewayError maps Mercado Pago error bodies onto sentinel errors.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
