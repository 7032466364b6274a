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

const defaultHandoffsTableName = "handoffs"

type lineItemAttr struct {
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice int    `dynamodbav:"unit_price"`
}

type handoffItem struct {
	ID           string         `dynamodbav:"id"`
	BaseURL      string         `dynamodbav:"base_url"`
	URL          string         `dynamodbav:"url"`
	EncodedItems string         `dynamodbav:"encoded_items"`
	Items        []lineItemAttr `dynamodbav:"items"`
	Total        int            `dynamodbav:"total"`
	ItemCount    int            `dynamodbav:"item_count"`
	CreatedAt    string         `dynamodbav:"created_at"`
}

// HandoffDynamoRepository keeps an append-only log of hand-offs.
//
// Table requirements:
//   - PK: id (string)
//
// Line item session ids are not stored; they mean nothing outside the
// request that produced them.

type HandoffDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IHandoffRepository = (*HandoffDynamoRepository)(nil)

func NewHandoffDynamoRepository(ddb *dynamodb.Client) *HandoffDynamoRepository {
	return newHandoffRepository(ddb)
}

func newHandoffRepository(ddb dynamoAPI) *HandoffDynamoRepository {
	return &HandoffDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HANDOFFS_TABLE", defaultHandoffsTableName),
	}
}

func (r *HandoffDynamoRepository) Create(ctx context.Context, h entities.Handoff) (entities.Handoff, error) {
	av, err := attributevalue.MarshalMap(toHandoffItem(h))
	if err != nil {
		return entities.Handoff{}, fmt.Errorf("marshal handoff: %w", err)
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
		return entities.Handoff{}, fmt.Errorf("put handoff %s: %w", h.ID, err)
	}
	return h, nil
}

func (r *HandoffDynamoRepository) GetByID(ctx context.Context, id string) (entities.Handoff, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Handoff{}, fmt.Errorf("get handoff %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return entities.Handoff{}, nil
	}

	var it handoffItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Handoff{}, fmt.Errorf("unmarshal handoff %s: %w", id, err)
	}
	return fromHandoffItem(it), nil
}

func toHandoffItem(h entities.Handoff) handoffItem {
	items := make([]lineItemAttr, 0, len(h.Items))
	for _, li := range h.Items {
		items = append(items, lineItemAttr{Name: li.Name, Quantity: li.Quantity, UnitPrice: li.UnitPrice})
	}
	return handoffItem{
		ID:           h.ID,
		BaseURL:      h.BaseURL,
		URL:          h.URL,
		EncodedItems: h.EncodedItems,
		Items:        items,
		Total:        h.Total,
		ItemCount:    len(items),
		CreatedAt:    h.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromHandoffItem(it handoffItem) entities.Handoff {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem{Name: li.Name, Quantity: li.Quantity, UnitPrice: li.UnitPrice})
	}
	return entities.Handoff{
		ID:           it.ID,
		BaseURL:      it.BaseURL,
		URL:          it.URL,
		EncodedItems: it.EncodedItems,
		Items:        items,
		Total:        it.Total,
		CreatedAt:    created,
	}
}
