package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates a DynamoDB client from the aws section of the config.
//
// An empty Endpoint targets AWS; any other value (e.g. http://dynamodb:8000)
// targets DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg config.AWSConfig) (*dynamodb.Client, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// TableSpec describes a table by its string hash key and its single-attribute
// or hash+range GSIs.
type TableSpec struct {
	Name    string
	HashKey string
	Indexes []IndexSpec
}

type IndexSpec struct {
	Name     string
	HashKey  string
	RangeKey string
}

// Tables lists every table the service uses with the configured names.
func Tables(t config.TablesConfig) []TableSpec {
	return []TableSpec{
		{Name: t.Budgets, HashKey: "id", Indexes: []IndexSpec{{Name: "technician_id-index", HashKey: "technician_id"}}},
		{Name: t.ServiceOrders, HashKey: "id", Indexes: []IndexSpec{{Name: "technician_id-index", HashKey: "technician_id"}}},
		{Name: t.Products, HashKey: "id", Indexes: []IndexSpec{{Name: "vendor_id-index", HashKey: "vendor_id"}}},
		{Name: t.ServiceCalls, HashKey: "id"},
		{Name: t.Appointments, HashKey: "id", Indexes: []IndexSpec{{Name: "technician_id-date-index", HashKey: "technician_id", RangeKey: "date"}}},
		{Name: t.ExpensesConfigs, HashKey: "technician_id"},
		{Name: t.Payments, HashKey: "id", Indexes: []IndexSpec{{Name: "budget_id-index", HashKey: "budget_id"}}},
	}
}

// EnsureTables creates missing tables on pay-per-request billing. It is meant
// for DynamoDB Local; production tables are provisioned outside the service.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs []TableSpec, log *zap.Logger) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", spec.Name, err)
		}

		if _, err := ddb.CreateTable(ctx, CreateTableInput(spec)); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		log.Info("[database] table created", zap.String("table", spec.Name))
	}
	return nil
}

func CreateTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := map[string]struct{}{spec.HashKey: {}}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.Name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.HashKey), KeyType: types.KeyTypeHash},
		},
	}

	for _, idx := range spec.Indexes {
		keys := []types.KeySchemaElement{{AttributeName: aws.String(idx.HashKey), KeyType: types.KeyTypeHash}}
		attrs[idx.HashKey] = struct{}{}
		if idx.RangeKey != "" {
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(idx.RangeKey), KeyType: types.KeyTypeRange})
			attrs[idx.RangeKey] = struct{}{}
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	for name := range attrs {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return in
}
