package repository

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// customerItem flattens the Client sum type; Kind selects the variant on read.
type customerItem struct {
	Kind         string `dynamodbav:"kind"`
	ID           string `dynamodbav:"id,omitempty"`
	Nome         string `dynamodbav:"nome,omitempty"`
	CPF          string `dynamodbav:"cpf,omitempty"`
	RazaoSocial  string `dynamodbav:"razao_social,omitempty"`
	NomeFantasia string `dynamodbav:"nome_fantasia,omitempty"`
	CNPJ         string `dynamodbav:"cnpj,omitempty"`
	Responsavel  string `dynamodbav:"responsavel,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	Telefone     string `dynamodbav:"telefone,omitempty"`
}

type serviceOrderLineItem struct {
	Code        string `dynamodbav:"code,omitempty"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Discount    string `dynamodbav:"discount"`
	Total       string `dynamodbav:"total"`
}

type serviceOrderItem struct {
	ID              string                 `dynamodbav:"id"`
	BudgetID        string                 `dynamodbav:"budget_id,omitempty"`
	TechnicianID    string                 `dynamodbav:"technician_id"`
	Customer        *customerItem          `dynamodbav:"customer,omitempty"`
	Description     string                 `dynamodbav:"description,omitempty"`
	Items           []serviceOrderLineItem `dynamodbav:"items"`
	DiscountPercent string                 `dynamodbav:"discount_percent"`
	Subtotal        string                 `dynamodbav:"subtotal"`
	DiscountValue   string                 `dynamodbav:"discount_value"`
	Total           string                 `dynamodbav:"total"`
	Status          string                 `dynamodbav:"status"`
	CreatedAt       string                 `dynamodbav:"created_at"`
	UpdatedAt       string                 `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: technician_id-index (PK: technician_id)
type ServiceOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb DynamoAPI, tableName string) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toServiceOrderItem(o)); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	var it serviceOrderItem
	found, err := getOne(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ServiceOrderStatus) (entities.ServiceOrder, error) {
	var it serviceOrderItem
	found, err := update(ctx, r.ddb, r.tableName, "id", id, statusUpdate(string(status)), &it)
	if err != nil || !found {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.ServiceOrder, error) {
	items, err := queryAll[serviceOrderItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(technicianIDIndex),
		KeyConditionExpression: aws.String("technician_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: technicianID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceOrder, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceOrderItem(it))
	}
	return out, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	lines := make([]serviceOrderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, serviceOrderLineItem{
			Code:        it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
			Discount:    floatToString(it.Discount),
			Total:       floatToString(it.Total),
		})
	}
	return serviceOrderItem{
		ID:              o.ID,
		BudgetID:        o.BudgetID,
		TechnicianID:    o.TechnicianID,
		Customer:        toCustomerItem(o.Customer),
		Description:     o.Description,
		Items:           lines,
		DiscountPercent: floatToString(o.DiscountPercent),
		Subtotal:        floatToString(o.Subtotal),
		DiscountValue:   floatToString(o.DiscountValue),
		Total:           floatToString(o.Total),
		Status:          string(o.Status),
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	lines := make([]entities.ServiceOrderItem, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.ServiceOrderItem{
			Code:        l.Code,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   stringToFloat(l.UnitPrice),
			Discount:    stringToFloat(l.Discount),
			Total:       stringToFloat(l.Total),
		})
	}
	return entities.ServiceOrder{
		ID:              it.ID,
		BudgetID:        it.BudgetID,
		TechnicianID:    it.TechnicianID,
		Customer:        fromCustomerItem(it.Customer),
		Description:     it.Description,
		Items:           lines,
		DiscountPercent: stringToFloat(it.DiscountPercent),
		Subtotal:        stringToFloat(it.Subtotal),
		DiscountValue:   stringToFloat(it.DiscountValue),
		Total:           stringToFloat(it.Total),
		Status:          entities.ServiceOrderStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func toCustomerItem(c entities.Client) *customerItem {
	switch v := c.(type) {
	case entities.PessoaFisica:
		return &customerItem{
			Kind:     string(entities.ClientKindFisica),
			ID:       v.ID,
			Nome:     v.Nome,
			CPF:      v.CPF,
			Email:    v.Email,
			Telefone: v.Telefone,
		}
	case entities.PessoaJuridica:
		return &customerItem{
			Kind:         string(entities.ClientKindJuridica),
			ID:           v.ID,
			RazaoSocial:  v.RazaoSocial,
			NomeFantasia: v.NomeFantasia,
			CNPJ:         v.CNPJ,
			Responsavel:  v.Responsavel,
			Email:        v.Email,
			Telefone:     v.Telefone,
		}
	}
	return nil
}

func fromCustomerItem(it *customerItem) entities.Client {
	if it == nil {
		return nil
	}
	if entities.ClientKind(it.Kind) == entities.ClientKindJuridica {
		return entities.PessoaJuridica{
			ID:           it.ID,
			RazaoSocial:  it.RazaoSocial,
			NomeFantasia: it.NomeFantasia,
			CNPJ:         it.CNPJ,
			Responsavel:  it.Responsavel,
			Email:        it.Email,
			Telefone:     it.Telefone,
		}
	}
	return entities.PessoaFisica{
		ID:       it.ID,
		Nome:     it.Nome,
		CPF:      it.CPF,
		Email:    it.Email,
		Telefone: it.Telefone,
	}
}
