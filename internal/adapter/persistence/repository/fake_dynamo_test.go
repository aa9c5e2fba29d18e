package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// fakeDynamo keeps items per table keyed by a single string hash key.
// Query and Scan return the configured pages and record their input.
type fakeDynamo struct {
	mu      sync.Mutex
	hashKey map[string]string
	tables  map[string]map[string]item

	pages       [][]item
	queries     []*dynamodb.QueryInput
	scans       int
	unprocessed int
	// throttled returns every requested key as unprocessed
	throttled  bool
	batchCalls int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{hashKey: map[string]string{}, tables: map[string]map[string]item{}}
}

func (f *fakeDynamo) keyOf(table string, it item) string {
	name := f.hashKey[table]
	if name == "" {
		name = "id"
	}
	if s, ok := it[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) table(name string) map[string]item {
	if f.tables[name] == nil {
		f.tables[name] = map[string]item{}
	}
	return f.tables[name]
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	key := f.keyOf(aws.ToString(in.TableName), in.Item)
	_, exists := t[key]
	cond := aws.ToString(in.ConditionExpression)
	if strings.HasPrefix(cond, "attribute_not_exists") && exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	if strings.HasPrefix(cond, "attribute_exists") && !exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	t[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[f.keyOf(aws.ToString(in.TableName), in.Key)]}, nil
}

// UpdateItem understands the "SET #a = :a, #b = :b" expressions the repositories emit.
func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	key := f.keyOf(aws.ToString(in.TableName), in.Key)
	current, ok := t[key]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	next := item{}
	for k, v := range current {
		next[k] = v
	}
	for _, assign := range strings.Split(strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET "), ",") {
		parts := strings.SplitN(assign, "=", 2)
		name := in.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
		next[name] = in.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
	}
	t[key] = next
	return &dynamodb.UpdateItemOutput{Attributes: next}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, in)
	page, next := f.page(len(f.queries) - 1)
	return &dynamodb.QueryOutput{Items: page, LastEvaluatedKey: next}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	page, next := f.page(f.scans - 1)
	return &dynamodb.ScanOutput{Items: page, LastEvaluatedKey: next}, nil
}

func (f *fakeDynamo) page(i int) ([]item, item) {
	if i >= len(f.pages) {
		return nil, nil
	}
	var next item
	if i < len(f.pages)-1 {
		next = item{"cursor": &types.AttributeValueMemberS{Value: "page"}}
	}
	return f.pages[i], next
}

// BatchGetItem defers the first f.unprocessed keys to a later call.
func (f *fakeDynamo) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++
	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]item{}, UnprocessedKeys: map[string]types.KeysAndAttributes{}}
	for table, req := range in.RequestItems {
		keys := req.Keys
		if f.throttled {
			out.UnprocessedKeys[table] = req
			continue
		}
		if f.unprocessed > 0 && f.unprocessed < len(keys) {
			out.UnprocessedKeys[table] = types.KeysAndAttributes{Keys: keys[:f.unprocessed]}
			keys = keys[f.unprocessed:]
			f.unprocessed = 0
		}
		for _, k := range keys {
			if it, ok := f.table(table)[f.keyOf(table, k)]; ok {
				out.Responses[table] = append(out.Responses[table], it)
			}
		}
	}
	return out, nil
}
