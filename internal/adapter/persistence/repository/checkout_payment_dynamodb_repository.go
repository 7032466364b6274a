package repository

import (
	"context"
	"fmt"
	"time"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type checkoutPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	EncodedItems string                 `dynamodbav:"encoded_items"`
	Total        int                    `dynamodbav:"total"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// CheckoutPaymentDynamoRepository persists CheckoutPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CheckoutPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICheckoutPaymentRepository = (*CheckoutPaymentDynamoRepository)(nil)

func NewCheckoutPaymentDynamoRepository(ddb *dynamodb.Client) *CheckoutPaymentDynamoRepository {
	return newCheckoutPaymentRepository(ddb)
}

func newCheckoutPaymentRepository(ddb dynamoAPI) *CheckoutPaymentDynamoRepository {
	return &CheckoutPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *CheckoutPaymentDynamoRepository) Create(ctx context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) {
	av, err := attributevalue.MarshalMap(toCheckoutPaymentItem(p))
	if err != nil {
		return entities.CheckoutPayment{}, fmt.Errorf("marshal payment: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CheckoutPayment{}, fmt.Errorf("put payment %s: %w", p.ID, err)
	}
	return p, nil
}

func (r *CheckoutPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutPayment{}, fmt.Errorf("get payment %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return entities.CheckoutPayment{}, nil
	}

	var it checkoutPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutPayment{}, fmt.Errorf("unmarshal payment %s: %w", id, err)
	}
	return fromCheckoutPaymentItem(it), nil
}

func toCheckoutPaymentItem(p entities.CheckoutPayment) checkoutPaymentItem {
	return checkoutPaymentItem{
		ID:           p.ID,
		EncodedItems: p.EncodedItems,
		Total:        p.Total,
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromCheckoutPaymentItem(it checkoutPaymentItem) entities.CheckoutPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.CheckoutPayment{
		ID:           it.ID,
		EncodedItems: it.EncodedItems,
		Total:        it.Total,
		Date:         dt,
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
