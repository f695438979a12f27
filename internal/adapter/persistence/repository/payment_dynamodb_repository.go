package repository

import (
	"context"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/infrastructure/database"
	"payment_service/internal/infrastructure/serialization"
	"payment_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const DefaultPaymentsTableName = "payments"

// PaymentDynamoRepository persists payments in DynamoDB as flattened
// serialization.Document items.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//   - GSI: customer_id-index (PK: customer_id)
//
// FindPage and CountAll scan the table; DynamoDB has no offset paging.
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

// Save upserts p. Last write wins.
func (r *PaymentDynamoRepository) Save(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	doc := serialization.ToDocument(p)
	av, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return nil, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return nil, err
	}
	return serialization.FromDocument(doc)
}

func (r *PaymentDynamoRepository) FindByID(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return fromItem(out.Item)
}

func (r *PaymentDynamoRepository) FindEligibleForCancel(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	return r.findEligible(ctx, id)
}

func (r *PaymentDynamoRepository) FindEligibleForRefund(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	return r.findEligible(ctx, id)
}

func (r *PaymentDynamoRepository) findEligible(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil || !isEligibleForReversal(p) {
		return nil, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) FindByOrderID(ctx context.Context, orderID string) ([]entities.PaymentMethod, error) {
	return r.queryIndex(ctx, database.PaymentsOrderIDIndex, "order_id", orderID)
}

func (r *PaymentDynamoRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entities.PaymentMethod, error) {
	return r.queryIndex(ctx, database.PaymentsCustomerIDIndex, "customer_id", customerID.String())
}

func (r *PaymentDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.PaymentMethod, error) {
	pager := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	items := make([]entities.PaymentMethod, 0)
	for pager.HasMorePages() {
		out, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			p, err := fromItem(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, p)
		}
	}
	sortOldestFirst(items)
	return items, nil
}

func (r *PaymentDynamoRepository) CountAll(ctx context.Context) (int64, error) {
	pager := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})

	var total int64
	for pager.HasMorePages() {
		out, err := pager.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int64(out.Count)
	}
	return total, nil
}

func (r *PaymentDynamoRepository) FindPage(ctx context.Context, size, offset int) ([]entities.PaymentMethod, error) {
	pager := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	all := make([]entities.PaymentMethod, 0)
	for pager.HasMorePages() {
		out, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			p, err := fromItem(raw)
			if err != nil {
				return nil, err
			}
			all = append(all, p)
		}
	}
	sortNewestFirst(all)
	return pageOf(all, size, offset), nil
}

func fromItem(item map[string]types.AttributeValue) (entities.PaymentMethod, error) {
	var doc serialization.Document
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, failure.Conversion("decode payment item", err)
	}
	return serialization.FromDocument(doc)
}
