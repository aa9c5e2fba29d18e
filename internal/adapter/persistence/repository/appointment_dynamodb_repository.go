package repository

import (
	"context"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type appointmentItem struct {
	ID              string `dynamodbav:"id"`
	TechnicianID    string `dynamodbav:"technician_id"`
	ClientID        string `dynamodbav:"client_id"`
	ServiceOrderID  string `dynamodbav:"service_order_id,omitempty"`
	Date            string `dynamodbav:"date"`
	Time            string `dynamodbav:"time"`
	DurationMinutes int    `dynamodbav:"duration_minutes"`
	Status          string `dynamodbav:"status"`
	Notes           string `dynamodbav:"notes,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: technician_id-date-index (PK: technician_id, SK: date)
//
// "date" and "time" are DynamoDB reserved words and always go through
// expression attribute names.
type AppointmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoAPI, tableName string) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toAppointmentItem(a)); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	var it appointmentItem
	found, err := getOne(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) ListByDate(ctx context.Context, technicianID, date string) ([]entities.Appointment, error) {
	return r.queryByTechnician(ctx, "technician_id = :tid AND #date = :date", technicianID, date)
}

func (r *AppointmentDynamoRepository) ListFromDate(ctx context.Context, technicianID, fromDate string) ([]entities.Appointment, error) {
	return r.queryByTechnician(ctx, "technician_id = :tid AND #date >= :date", technicianID, fromDate)
}

func (r *AppointmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	var it appointmentItem
	found, err := update(ctx, r.ddb, r.tableName, "id", id, statusUpdate(string(status)), &it)
	if err != nil || !found {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) queryByTechnician(ctx context.Context, keyCond, technicianID, date string) ([]entities.Appointment, error) {
	items, err := queryAll[appointmentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(technicianIDDateIndex),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeNames: map[string]string{
			"#date": "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid":  &types.AttributeValueMemberS{Value: technicianID},
			":date": &types.AttributeValueMemberS{Value: date},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Appointment, 0, len(items))
	for _, it := range items {
		out = append(out, fromAppointmentItem(it))
	}
	return out, nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:              a.ID,
		TechnicianID:    a.TechnicianID,
		ClientID:        a.ClientID,
		ServiceOrderID:  a.ServiceOrderID,
		Date:            a.Date,
		Time:            a.Time,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       formatTime(a.CreatedAt),
		UpdatedAt:       formatTime(a.UpdatedAt),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:              it.ID,
		TechnicianID:    it.TechnicianID,
		ClientID:        it.ClientID,
		ServiceOrderID:  it.ServiceOrderID,
		Date:            it.Date,
		Time:            it.Time,
		DurationMinutes: it.DurationMinutes,
		Status:          entities.AppointmentStatus(it.Status),
		Notes:           it.Notes,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
