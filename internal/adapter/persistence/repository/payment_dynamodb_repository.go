package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"payledger/internal/domain/entities"
	"payledger/internal/domain/money"
	"payledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName    = "payments"
	defaultEventsTableName      = "payment_events"
	defaultIdempotencyTableName = "payment_idempotency"
)

type paymentItem struct {
	ID               string         `dynamodbav:"id"`
	OrderID          string         `dynamodbav:"order_id,omitempty"`
	Provider         string         `dynamodbav:"provider"`
	Currency         string         `dynamodbav:"currency"`
	AmountAuthorized string         `dynamodbav:"amount_authorized"`
	AmountCaptured   string         `dynamodbav:"amount_captured"`
	AmountRefunded   string         `dynamodbav:"amount_refunded"`
	FeeAmount        string         `dynamodbav:"fee_amount"`
	Status           string         `dynamodbav:"status"`
	Reference        string         `dynamodbav:"reference,omitempty"`
	TransactionID    string         `dynamodbav:"transaction_id,omitempty"`
	IsTest           bool           `dynamodbav:"is_test"`
	Metadata         map[string]any `dynamodbav:"metadata,omitempty"`
	Version          int64          `dynamodbav:"version"`
	CreatedAt        string         `dynamodbav:"created_at"`
	UpdatedAt        string         `dynamodbav:"updated_at"`
}

type idempotencyItem struct {
	PK             string `dynamodbav:"pk"`
	PaymentID      string `dynamodbav:"payment_id"`
	IdempotencyKey string `dynamodbav:"idempotency_key"`
	Snapshot       string `dynamodbav:"snapshot"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists the Payment ledger in DynamoDB.
//
// Table requirements:
//   - payments: PK id (string), with a `version` number attribute
//   - payment_events: PK payment_id (string), SK sort (string)
//   - payment_idempotency: PK pk (string, "payment_id#key")
//
// Amounts are stored as fixed 2-decimal strings. Mutations go through
// ApplyMutation, which writes the ledger row, the audit event and (when a
// key is supplied) the idempotency record in one TransactWriteItems call
// conditioned on the version read by the caller.
type PaymentDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	eventsTableName string
	idemTableName   string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		eventsTableName: getenvDefault("PAYMENT_EVENTS_TABLE", defaultEventsTableName),
		idemTableName:   getenvDefault("PAYMENT_IDEMPOTENCY_TABLE", defaultIdempotencyTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// ApplyMutation commits the ledger update and audit event atomically. The
// ledger write is conditioned on `version` still holding the value the
// caller read; the written item carries version+1. A cancelled transaction
// with a conditional-check reason maps to interfaces.ErrVersionConflict.
func (r *PaymentDynamoRepository) ApplyMutation(ctx context.Context, m interfaces.PaymentMutation) (entities.Payment, error) {
	expectedVersion := m.Payment.Version
	m.Payment.Version = expectedVersion + 1

	paymentAV, err := attributevalue.MarshalMap(toPaymentItem(m.Payment))
	if err != nil {
		return entities.Payment{}, err
	}
	eventAV, err := attributevalue.MarshalMap(toPaymentEventItem(m.Event))
	if err != nil {
		return entities.Payment{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                paymentAV,
				ConditionExpression: aws.String("#version = :expected"),
				ExpressionAttributeNames: map[string]string{
					"#version": "version",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
				},
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(r.eventsTableName),
				Item:      eventAV,
			},
		},
	}

	if m.IdempotencyKey != "" {
		snapshot, err := json.Marshal(m.Payment)
		if err != nil {
			return entities.Payment{}, err
		}
		idemAV, err := attributevalue.MarshalMap(idempotencyItem{
			PK:             idempotencyPK(m.Payment.ID, m.IdempotencyKey),
			PaymentID:      m.Payment.ID,
			IdempotencyKey: m.IdempotencyKey,
			Snapshot:       string(snapshot),
			CreatedAt:      m.Event.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return entities.Payment{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.idemTableName),
				Item:                idemAV,
				ConditionExpression: aws.String("attribute_not_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{
					"#pk": "pk",
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Payment{}, interfaces.ErrVersionConflict
				}
			}
		}
		return entities.Payment{}, fmt.Errorf("apply payment mutation: %w", err)
	}
	return m.Payment, nil
}

func (r *PaymentDynamoRepository) GetIdempotentResult(ctx context.Context, paymentID, key string) (entities.Payment, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.idemTableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: idempotencyPK(paymentID, key)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, false, nil
	}

	var it idempotencyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, false, err
	}
	var p entities.Payment
	if err := json.Unmarshal([]byte(it.Snapshot), &p); err != nil {
		return entities.Payment{}, false, err
	}
	return p, true, nil
}

// List scans the payments table. Equality filters push down into the scan's
// FilterExpression; amount/date ranges, sorting and offset/limit paging run
// in memory. Operator tooling scale, not a hot path.
func (r *PaymentDynamoRepository) List(ctx context.Context, f interfaces.PaymentFilter) ([]entities.Payment, int, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	applyScanFilter(input, f)

	var items []paymentItem
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, 0, err
			}
			items = append(items, it)
		}
	}

	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		p := fromPaymentItem(it)
		if !matchesRanges(p, f) {
			continue
		}
		payments = append(payments, p)
	}

	sortPayments(payments, f.SortBy, f.Order)
	total := len(payments)
	return page(payments, f.Offset, f.Limit), total, nil
}

func applyScanFilter(input *dynamodb.ScanInput, f interfaces.PaymentFilter) {
	var exprs []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if f.Provider != "" {
		exprs = append(exprs, "#provider = :provider")
		names["#provider"] = "provider"
		values[":provider"] = &types.AttributeValueMemberS{Value: f.Provider}
	}
	if f.Status != "" {
		exprs = append(exprs, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: f.Status}
	}
	if f.OrderID != "" {
		exprs = append(exprs, "#order_id = :order_id")
		names["#order_id"] = "order_id"
		values[":order_id"] = &types.AttributeValueMemberS{Value: f.OrderID}
	}
	if f.IsTest != nil {
		exprs = append(exprs, "#is_test = :is_test")
		names["#is_test"] = "is_test"
		values[":is_test"] = &types.AttributeValueMemberBOOL{Value: *f.IsTest}
	}

	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}
}

func matchesRanges(p entities.Payment, f interfaces.PaymentFilter) bool {
	if f.MinAmount != nil && p.AmountAuthorized.Cmp(*f.MinAmount) < 0 {
		return false
	}
	if f.MaxAmount != nil && p.AmountAuthorized.Cmp(*f.MaxAmount) > 0 {
		return false
	}
	if f.CreatedAfter != nil && p.CreatedAt.Unix() < *f.CreatedAfter {
		return false
	}
	if f.CreatedBefore != nil && p.CreatedAt.Unix() > *f.CreatedBefore {
		return false
	}
	return true
}

func sortPayments(payments []entities.Payment, sortBy, order string) {
	less := func(a, b entities.Payment) bool { return a.CreatedAt.Before(b.CreatedAt) }
	switch sortBy {
	case "updated_at":
		less = func(a, b entities.Payment) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "amount_authorized":
		less = func(a, b entities.Payment) bool { return a.AmountAuthorized.Cmp(b.AmountAuthorized) < 0 }
	case "status":
		less = func(a, b entities.Payment) bool { return a.Status < b.Status }
	}

	sort.SliceStable(payments, func(i, j int) bool {
		if order == "asc" {
			return less(payments[i], payments[j])
		}
		return less(payments[j], payments[i])
	})
}

func page(payments []entities.Payment, offset, limit int) []entities.Payment {
	if offset >= len(payments) {
		return []entities.Payment{}
	}
	end := len(payments)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return payments[offset:end]
}

func idempotencyPK(paymentID, key string) string {
	return paymentID + "#" + key
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:               p.ID,
		OrderID:          p.OrderID,
		Provider:         p.Provider,
		Currency:         p.Currency,
		AmountAuthorized: p.AmountAuthorized.String(),
		AmountCaptured:   p.AmountCaptured.String(),
		AmountRefunded:   p.AmountRefunded.String(),
		FeeAmount:        p.FeeAmount.String(),
		Status:           string(p.Status),
		Reference:        p.Reference,
		TransactionID:    p.TransactionID,
		IsTest:           p.IsTest,
		Metadata:         p.Metadata,
		Version:          p.Version,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payment{
		ID:               it.ID,
		OrderID:          it.OrderID,
		Provider:         it.Provider,
		Currency:         it.Currency,
		AmountAuthorized: money.Parse(it.AmountAuthorized),
		AmountCaptured:   money.Parse(it.AmountCaptured),
		AmountRefunded:   money.Parse(it.AmountRefunded),
		FeeAmount:        money.Parse(it.FeeAmount),
		Status:           entities.PaymentStatus(it.Status),
		Reference:        it.Reference,
		TransactionID:    it.TransactionID,
		IsTest:           it.IsTest,
		Metadata:         it.Metadata,
		Version:          it.Version,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
