package repository

import (
	"context"
	"slices"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"
)

type serviceCallItem struct {
	ID             string  `dynamodbav:"id"`
	CustomerID     string  `dynamodbav:"customer_id"`
	Title          string  `dynamodbav:"title"`
	Description    string  `dynamodbav:"description,omitempty"`
	EquipmentType  string  `dynamodbav:"equipment_type,omitempty"`
	Category       string  `dynamodbav:"category,omitempty"`
	City           string  `dynamodbav:"city,omitempty"`
	Latitude       *string `dynamodbav:"latitude,omitempty"`
	Longitude      *string `dynamodbav:"longitude,omitempty"`
	BudgetEstimate string  `dynamodbav:"budget_estimate"`
	Status         string  `dynamodbav:"status"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

// ServiceCallDynamoRepository persists ServiceCall entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ServiceCallDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceCallRepository = (*ServiceCallDynamoRepository)(nil)

func NewServiceCallDynamoRepository(ddb DynamoAPI, tableName string) *ServiceCallDynamoRepository {
	return &ServiceCallDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceCallDynamoRepository) Create(ctx context.Context, s entities.ServiceCall) (entities.ServiceCall, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toServiceCallItem(s)); err != nil {
		return entities.ServiceCall{}, err
	}
	return s, nil
}

func (r *ServiceCallDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceCall, error) {
	var it serviceCallItem
	found, err := getOne(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.ServiceCall{}, err
	}
	return fromServiceCallItem(it), nil
}

func (r *ServiceCallDynamoRepository) List(ctx context.Context) ([]entities.ServiceCall, error) {
	items, err := scanAll[serviceCallItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceCall, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceCallItem(it))
	}
	slices.SortStableFunc(out, func(a, b entities.ServiceCall) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

func toServiceCallItem(s entities.ServiceCall) serviceCallItem {
	return serviceCallItem{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		Title:          s.Title,
		Description:    s.Description,
		EquipmentType:  s.EquipmentType,
		Category:       s.Category,
		City:           s.City,
		Latitude:       floatPtrToString(s.Latitude),
		Longitude:      floatPtrToString(s.Longitude),
		BudgetEstimate: floatToString(s.BudgetEstimate),
		Status:         string(s.Status),
		CreatedAt:      formatTime(s.CreatedAt),
	}
}

func fromServiceCallItem(it serviceCallItem) entities.ServiceCall {
	return entities.ServiceCall{
		ID:             it.ID,
		CustomerID:     it.CustomerID,
		Title:          it.Title,
		Description:    it.Description,
		EquipmentType:  it.EquipmentType,
		Category:       it.Category,
		City:           it.City,
		Latitude:       stringToFloatPtr(it.Latitude),
		Longitude:      stringToFloatPtr(it.Longitude),
		BudgetEstimate: stringToFloat(it.BudgetEstimate),
		Status:         entities.ServiceCallStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
