package repository

import (
	"context"
	"time"

	"payledger/internal/domain/entities"
	"payledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentEventItem struct {
	PaymentID string         `dynamodbav:"payment_id"`
	Sort      string         `dynamodbav:"sort"`
	ID        string         `dynamodbav:"id"`
	EventType string         `dynamodbav:"event_type"`
	Message   string         `dynamodbav:"message"`
	Raw       map[string]any `dynamodbav:"raw,omitempty"`
	CreatedAt string         `dynamodbav:"created_at"`
}

// PaymentEventDynamoRepository reads the audit trail. Events are written by
// PaymentDynamoRepository.ApplyMutation in the same transaction as the
// ledger change; this repository never writes.
//
// Table requirements:
//   - payment_events: PK payment_id (string), SK sort (created_at + id)
type PaymentEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentEventRepository = (*PaymentEventDynamoRepository)(nil)

func NewPaymentEventDynamoRepository(ddb *dynamodb.Client) *PaymentEventDynamoRepository {
	return &PaymentEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_EVENTS_TABLE", defaultEventsTableName),
	}
}

// ListByPaymentID returns events newest-first: the sort key is the RFC3339
// timestamp, so descending key order is descending created_at.
func (r *PaymentEventDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.PaymentEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.PaymentEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, fromPaymentEventItem(it))
	}
	return events, nil
}

func toPaymentEventItem(e entities.PaymentEvent) paymentEventItem {
	created := e.CreatedAt.UTC().Format(time.RFC3339Nano)
	return paymentEventItem{
		PaymentID: e.PaymentID,
		Sort:      created + "#" + e.ID,
		ID:        e.ID,
		EventType: string(e.EventType),
		Message:   e.Message,
		Raw:       e.Raw,
		CreatedAt: created,
	}
}

func fromPaymentEventItem(it paymentEventItem) entities.PaymentEvent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PaymentEvent{
		ID:        it.ID,
		PaymentID: it.PaymentID,
		EventType: entities.PaymentEventType(it.EventType),
		Message:   it.Message,
		Raw:       it.Raw,
		CreatedAt: createdAt,
	}
}
