package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxBatchGetKeys is the DynamoDB limit for a single BatchGetItem request.
const maxBatchGetKeys = 100

const (
	maxBatchGetAttempts = 5
	maxBatchGetBackoff  = 2 * time.Second
)

var ErrUnprocessedKeys = errors.New("batch get left unprocessed keys")

type productItem struct {
	ID                  string   `dynamodbav:"id"`
	VendorID            string   `dynamodbav:"vendor_id"`
	Name                string   `dynamodbav:"name"`
	Description         string   `dynamodbav:"description,omitempty"`
	Category            string   `dynamodbav:"category"`
	Price               string   `dynamodbav:"price"`
	OriginalPrice       *string  `dynamodbav:"original_price,omitempty"`
	DiscountPercent     *string  `dynamodbav:"discount_percent,omitempty"`
	StockQuantity       int      `dynamodbav:"stock_quantity"`
	CompatibleEquipment []string `dynamodbav:"compatible_equipment,omitempty"`
	PurchaseCost        string   `dynamodbav:"purchase_cost"`
	ShippingCost        string   `dynamodbav:"shipping_cost"`
	AdditionalCosts     string   `dynamodbav:"additional_costs"`
	MarkupPercent       string   `dynamodbav:"markup_percent"`
	CreatedAt           string   `dynamodbav:"created_at"`
	UpdatedAt           string   `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists MarketplaceProduct entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vendor_id-index (PK: vendor_id)
//
// List scans the table; the catalog is filtered in memory.
type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	backoff   retry.BackoffDelayer
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tableName string) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		backoff:   retry.NewExponentialJitterBackoff(maxBatchGetBackoff),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.MarketplaceProduct) (entities.MarketplaceProduct, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toProductItem(p)); err != nil {
		return entities.MarketplaceProduct{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.MarketplaceProduct, error) {
	var it productItem
	found, err := getOne(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.MarketplaceProduct{}, err
	}
	return fromProductItem(it), nil
}

// GetByIDs batch-loads products. Unknown ids are skipped. Unprocessed keys
// are resent with jittered backoff up to maxBatchGetAttempts times.
func (r *ProductDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.MarketplaceProduct, error) {
	out := make([]entities.MarketplaceProduct, 0, len(ids))
	for chunk := range slices.Chunk(ids, maxBatchGetKeys) {
		keys := make([]map[string]types.AttributeValue, 0, len(chunk))
		for _, id := range chunk {
			keys = append(keys, stringKey("id", id))
		}
		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 1; len(request) > 0; attempt++ {
			if attempt > maxBatchGetAttempts {
				return nil, fmt.Errorf("%w: %d keys after %d attempts", ErrUnprocessedKeys, len(request[r.tableName].Keys), maxBatchGetAttempts)
			}
			if attempt > 1 {
				if err := r.wait(ctx, attempt-1); err != nil {
					return nil, err
				}
			}
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			var items []productItem
			if err := attributevalue.UnmarshalListOfMaps(res.Responses[r.tableName], &items); err != nil {
				return nil, err
			}
			for _, it := range items {
				out = append(out, fromProductItem(it))
			}
			request = res.UnprocessedKeys
		}
	}
	return out, nil
}

func (r *ProductDynamoRepository) wait(ctx context.Context, retryAttempt int) error {
	delay, err := r.backoff.BackoffDelay(retryAttempt, ErrUnprocessedKeys)
	if err != nil {
		return err
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.MarketplaceProduct, error) {
	items, err := scanAll[productItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.MarketplaceProduct, 0, len(items))
	for _, it := range items {
		out = append(out, fromProductItem(it))
	}
	// scans come back in hash order; keep listings stable
	slices.SortStableFunc(out, func(a, b entities.MarketplaceProduct) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

func toProductItem(p entities.MarketplaceProduct) productItem {
	return productItem{
		ID:                  p.ID,
		VendorID:            p.VendorID,
		Name:                p.Name,
		Description:         p.Description,
		Category:            string(p.Category),
		Price:               floatToString(p.Price),
		OriginalPrice:       floatPtrToString(p.OriginalPrice),
		DiscountPercent:     floatPtrToString(p.DiscountPercent),
		StockQuantity:       p.StockQuantity,
		CompatibleEquipment: p.CompatibleEquipment,
		PurchaseCost:        floatToString(p.PurchaseCost),
		ShippingCost:        floatToString(p.ShippingCost),
		AdditionalCosts:     floatToString(p.AdditionalCosts),
		MarkupPercent:       floatToString(p.MarkupPercent),
		CreatedAt:           formatTime(p.CreatedAt),
		UpdatedAt:           formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.MarketplaceProduct {
	return entities.MarketplaceProduct{
		ID:                  it.ID,
		VendorID:            it.VendorID,
		Name:                it.Name,
		Description:         it.Description,
		Category:            entities.ProductCategory(it.Category),
		Price:               stringToFloat(it.Price),
		OriginalPrice:       stringToFloatPtr(it.OriginalPrice),
		DiscountPercent:     stringToFloatPtr(it.DiscountPercent),
		StockQuantity:       it.StockQuantity,
		CompatibleEquipment: it.CompatibleEquipment,
		PurchaseCost:        stringToFloat(it.PurchaseCost),
		ShippingCost:        stringToFloat(it.ShippingCost),
		AdditionalCosts:     stringToFloat(it.AdditionalCosts),
		MarkupPercent:       stringToFloat(it.MarkupPercent),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
