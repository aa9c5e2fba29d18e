package repository

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type budgetLineItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type extraExpenseItem struct {
	Description string `dynamodbav:"description"`
	Value       string `dynamodbav:"value"`
}

type tripItem struct {
	DistanceKm    string `dynamodbav:"distance_km"`
	WorkDays      int    `dynamodbav:"work_days"`
	Tolls         int    `dynamodbav:"tolls"`
	ParkingEvents int    `dynamodbav:"parking_events"`
	BusTickets    int    `dynamodbav:"bus_tickets"`
	Flights       int    `dynamodbav:"flights"`
}

type breakdownItem struct {
	VisitFee        string `dynamodbav:"visit_fee"`
	Labor           string `dynamodbav:"labor"`
	Parts           string `dynamodbav:"parts"`
	Travel          string `dynamodbav:"travel"`
	Lodging         string `dynamodbav:"lodging"`
	Meals           string `dynamodbav:"meals"`
	Extras          string `dynamodbav:"extras"`
	Subtotal        string `dynamodbav:"subtotal"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	DiscountValue   string `dynamodbav:"discount_value"`
	Total           string `dynamodbav:"total"`
}

type budgetItem struct {
	ID              string             `dynamodbav:"id"`
	ServiceCallID   string             `dynamodbav:"service_call_id,omitempty"`
	TechnicianID    string             `dynamodbav:"technician_id"`
	CustomerID      string             `dynamodbav:"customer_id,omitempty"`
	CustomerEmail   string             `dynamodbav:"customer_email,omitempty"`
	VisitFee        string             `dynamodbav:"visit_fee"`
	LaborHours      string             `dynamodbav:"labor_hours"`
	LaborRate       string             `dynamodbav:"labor_rate"`
	Items           []budgetLineItem   `dynamodbav:"items"`
	Trip            tripItem           `dynamodbav:"trip"`
	Extras          []extraExpenseItem `dynamodbav:"extras"`
	DiscountPercent string             `dynamodbav:"discount_percent"`
	Breakdown       breakdownItem      `dynamodbav:"breakdown"`
	Notes           string             `dynamodbav:"notes,omitempty"`
	Status          string             `dynamodbav:"status"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: technician_id-index (PK: technician_id)
//
// Monetary values are stored as decimal strings so they round-trip exactly.
type BudgetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoAPI, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toBudgetItem(b)); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	var it budgetItem
	found, err := getOne(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// Update replaces the stored budget. A missing budget yields a zero Budget.
func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	ok, err := replaceExisting(ctx, r.ddb, r.tableName, "id", toBudgetItem(b))
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	var it budgetItem
	found, err := update(ctx, r.ddb, r.tableName, "id", id, statusUpdate(string(status)), &it)
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.Budget, error) {
	items, err := queryAll[budgetItem](ctx, r.ddb, &dynamodb.QueryInput{
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
	out := make([]entities.Budget, 0, len(items))
	for _, it := range items {
		out = append(out, fromBudgetItem(it))
	}
	return out, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	lines := make([]budgetLineItem, 0, len(b.Items))
	for _, it := range b.Items {
		lines = append(lines, budgetLineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
			Total:       floatToString(it.Total),
		})
	}
	bd := b.Breakdown
	return budgetItem{
		ID:            b.ID,
		ServiceCallID: b.ServiceCallID,
		TechnicianID:  b.TechnicianID,
		CustomerID:    b.CustomerID,
		CustomerEmail: b.CustomerEmail,
		VisitFee:      floatToString(b.VisitFee),
		LaborHours:    floatToString(b.LaborHours),
		LaborRate:     floatToString(b.LaborRate),
		Items:         lines,
		Trip: tripItem{
			DistanceKm:    floatToString(b.Trip.DistanceKm),
			WorkDays:      b.Trip.WorkDays,
			Tolls:         b.Trip.Tolls,
			ParkingEvents: b.Trip.ParkingEvents,
			BusTickets:    b.Trip.BusTickets,
			Flights:       b.Trip.Flights,
		},
		Extras:          toExtraExpenseItems(b.Extras),
		DiscountPercent: floatToString(b.DiscountPercent),
		Breakdown: breakdownItem{
			VisitFee:        floatToString(bd.VisitFee),
			Labor:           floatToString(bd.Labor),
			Parts:           floatToString(bd.Parts),
			Travel:          floatToString(bd.Travel),
			Lodging:         floatToString(bd.Lodging),
			Meals:           floatToString(bd.Meals),
			Extras:          floatToString(bd.Extras),
			Subtotal:        floatToString(bd.Subtotal),
			DiscountPercent: floatToString(bd.DiscountPercent),
			DiscountValue:   floatToString(bd.DiscountValue),
			Total:           floatToString(bd.Total),
		},
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	lines := make([]entities.BudgetItem, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.BudgetItem{
			ID:          l.ID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   stringToFloat(l.UnitPrice),
			Total:       stringToFloat(l.Total),
		})
	}
	bd := it.Breakdown
	return entities.Budget{
		ID:            it.ID,
		ServiceCallID: it.ServiceCallID,
		TechnicianID:  it.TechnicianID,
		CustomerID:    it.CustomerID,
		CustomerEmail: it.CustomerEmail,
		VisitFee:      stringToFloat(it.VisitFee),
		LaborHours:    stringToFloat(it.LaborHours),
		LaborRate:     stringToFloat(it.LaborRate),
		Items:         lines,
		Trip: entities.Trip{
			DistanceKm:    stringToFloat(it.Trip.DistanceKm),
			WorkDays:      it.Trip.WorkDays,
			Tolls:         it.Trip.Tolls,
			ParkingEvents: it.Trip.ParkingEvents,
			BusTickets:    it.Trip.BusTickets,
			Flights:       it.Trip.Flights,
		},
		Extras:          fromExtraExpenseItems(it.Extras),
		DiscountPercent: stringToFloat(it.DiscountPercent),
		Breakdown: entities.BudgetBreakdown{
			VisitFee:        stringToFloat(bd.VisitFee),
			Labor:           stringToFloat(bd.Labor),
			Parts:           stringToFloat(bd.Parts),
			Travel:          stringToFloat(bd.Travel),
			Lodging:         stringToFloat(bd.Lodging),
			Meals:           stringToFloat(bd.Meals),
			Extras:          stringToFloat(bd.Extras),
			Subtotal:        stringToFloat(bd.Subtotal),
			DiscountPercent: stringToFloat(bd.DiscountPercent),
			DiscountValue:   stringToFloat(bd.DiscountValue),
			Total:           stringToFloat(bd.Total),
		},
		Notes:     it.Notes,
		Status:    entities.BudgetStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func toExtraExpenseItems(in []entities.ExtraExpense) []extraExpenseItem {
	out := make([]extraExpenseItem, 0, len(in))
	for _, e := range in {
		out = append(out, extraExpenseItem{Description: e.Description, Value: floatToString(e.Value)})
	}
	return out
}

func fromExtraExpenseItems(in []extraExpenseItem) []entities.ExtraExpense {
	out := make([]entities.ExtraExpense, 0, len(in))
	for _, e := range in {
		out = append(out, entities.ExtraExpense{Description: e.Description, Value: stringToFloat(e.Value)})
	}
	return out
}
