package repository

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type expensesConfigItem struct {
	TechnicianID        string `dynamodbav:"technician_id"`
	RatePerKm           string `dynamodbav:"rate_per_km"`
	RatePerToll         string `dynamodbav:"rate_per_toll"`
	RatePerParking      string `dynamodbav:"rate_per_parking"`
	RatePerBusTicket    string `dynamodbav:"rate_per_bus_ticket"`
	RatePerFlight       string `dynamodbav:"rate_per_flight"`
	RatePerLodgingNight string `dynamodbav:"rate_per_lodging_night"`
	RatePerMeal         string `dynamodbav:"rate_per_meal"`
	ServiceRadiusKm     string `dynamodbav:"service_radius_km"`
	TravelThresholdKm   string `dynamodbav:"travel_threshold_km"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// ExpensesConfigDynamoRepository keeps one rate table per technician.
//
// Table requirements:
//   - PK: technician_id (string)
type ExpensesConfigDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IExpensesConfigRepository = (*ExpensesConfigDynamoRepository)(nil)

func NewExpensesConfigDynamoRepository(ddb DynamoAPI, tableName string) *ExpensesConfigDynamoRepository {
	return &ExpensesConfigDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ExpensesConfigDynamoRepository) GetByTechnicianID(ctx context.Context, technicianID string) (entities.ExpensesConfig, error) {
	var it expensesConfigItem
	found, err := getOne(ctx, r.ddb, r.tableName, stringKey("technician_id", technicianID), &it)
	if err != nil || !found {
		return entities.ExpensesConfig{}, err
	}
	return fromExpensesConfigItem(it), nil
}

// Save upserts the technician's rate table.
func (r *ExpensesConfigDynamoRepository) Save(ctx context.Context, cfg entities.ExpensesConfig) (entities.ExpensesConfig, error) {
	av, err := attributevalue.MarshalMap(toExpensesConfigItem(cfg))
	if err != nil {
		return entities.ExpensesConfig{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.ExpensesConfig{}, err
	}
	return cfg, nil
}

func toExpensesConfigItem(c entities.ExpensesConfig) expensesConfigItem {
	return expensesConfigItem{
		TechnicianID:        c.TechnicianID,
		RatePerKm:           floatToString(c.RatePerKm),
		RatePerToll:         floatToString(c.RatePerToll),
		RatePerParking:      floatToString(c.RatePerParking),
		RatePerBusTicket:    floatToString(c.RatePerBusTicket),
		RatePerFlight:       floatToString(c.RatePerFlight),
		RatePerLodgingNight: floatToString(c.RatePerLodgingNight),
		RatePerMeal:         floatToString(c.RatePerMeal),
		ServiceRadiusKm:     floatToString(c.ServiceRadiusKm),
		TravelThresholdKm:   floatToString(c.TravelThresholdKm),
		UpdatedAt:           formatTime(c.UpdatedAt),
	}
}

func fromExpensesConfigItem(it expensesConfigItem) entities.ExpensesConfig {
	return entities.ExpensesConfig{
		TechnicianID:        it.TechnicianID,
		RatePerKm:           stringToFloat(it.RatePerKm),
		RatePerToll:         stringToFloat(it.RatePerToll),
		RatePerParking:      stringToFloat(it.RatePerParking),
		RatePerBusTicket:    stringToFloat(it.RatePerBusTicket),
		RatePerFlight:       stringToFloat(it.RatePerFlight),
		RatePerLodgingNight: stringToFloat(it.RatePerLodgingNight),
		RatePerMeal:         stringToFloat(it.RatePerMeal),
		ServiceRadiusKm:     stringToFloat(it.ServiceRadiusKm),
		TravelThresholdKm:   stringToFloat(it.TravelThresholdKm),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
