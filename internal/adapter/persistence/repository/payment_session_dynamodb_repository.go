package repository

import (
	"context"
	"errors"
	"sort"
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

const defaultSessionsTableName = "payment_sessions"

type paymentSessionItem struct {
	ID           string         `dynamodbav:"id"`
	ProviderKey  string         `dynamodbav:"provider_key"`
	OrderID      string         `dynamodbav:"order_id,omitempty"`
	Amount       string         `dynamodbav:"amount"`
	Currency     string         `dynamodbav:"currency"`
	Status       string         `dynamodbav:"status"`
	ClientSecret string         `dynamodbav:"client_secret,omitempty"`
	IframeURL    string         `dynamodbav:"iframe_url,omitempty"`
	RedirectURL  string         `dynamodbav:"redirect_url,omitempty"`
	Extra        map[string]any `dynamodbav:"extra,omitempty"`
	CreatedAt    string         `dynamodbav:"created_at"`
	UpdatedAt    string         `dynamodbav:"updated_at"`
}

// PaymentSessionDynamoRepository persists PaymentSession entities.
//
// Table requirements:
//   - payment_sessions: PK id (string)
type PaymentSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentSessionRepository = (*PaymentSessionDynamoRepository)(nil)

func NewPaymentSessionDynamoRepository(ddb *dynamodb.Client) *PaymentSessionDynamoRepository {
	return &PaymentSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *PaymentSessionDynamoRepository) Create(ctx context.Context, s entities.PaymentSession) (entities.PaymentSession, error) {
	av, err := attributevalue.MarshalMap(toPaymentSessionItem(s))
	if err != nil {
		return entities.PaymentSession{}, err
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
		return entities.PaymentSession{}, err
	}
	return s, nil
}

func (r *PaymentSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentSession{}, nil
	}

	var it paymentSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentSession{}, err
	}
	return fromPaymentSessionItem(it), nil
}

func (r *PaymentSessionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SessionStatus) (entities.PaymentSession, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentSession{}, nil
		}
		return entities.PaymentSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentSession{}, nil
	}

	var it paymentSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentSession{}, err
	}
	return fromPaymentSessionItem(it), nil
}

// List scans the sessions table; equality filters push into the scan, the
// free-text match and paging run in memory.
func (r *PaymentSessionDynamoRepository) List(ctx context.Context, f interfaces.SessionFilter) ([]entities.PaymentSession, int, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	applySessionScanFilter(input, f)

	var sessions []entities.PaymentSession
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		for _, raw := range out.Items {
			var it paymentSessionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, 0, err
			}
			s := fromPaymentSessionItem(it)
			if !matchesSessionSearch(s, f.Search) {
				continue
			}
			sessions = append(sessions, s)
		}
	}

	sortSessions(sessions)
	total := len(sessions)
	return pageSessions(sessions, f.Offset, f.Limit), total, nil
}

func applySessionScanFilter(input *dynamodb.ScanInput, f interfaces.SessionFilter) {
	var exprs []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if f.ProviderKey != "" {
		exprs = append(exprs, "#provider_key = :provider_key")
		names["#provider_key"] = "provider_key"
		values[":provider_key"] = &types.AttributeValueMemberS{Value: f.ProviderKey}
	}
	if f.OrderID != "" {
		exprs = append(exprs, "#order_id = :order_id")
		names["#order_id"] = "order_id"
		values[":order_id"] = &types.AttributeValueMemberS{Value: f.OrderID}
	}
	if f.Status != "" {
		exprs = append(exprs, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: f.Status}
	}

	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}
}

func matchesSessionSearch(s entities.PaymentSession, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, field := range []string{s.ID, s.OrderID, s.ProviderKey} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func sortSessions(sessions []entities.PaymentSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
}

func pageSessions(sessions []entities.PaymentSession, offset, limit int) []entities.PaymentSession {
	if offset >= len(sessions) {
		return []entities.PaymentSession{}
	}
	end := len(sessions)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return sessions[offset:end]
}

func toPaymentSessionItem(s entities.PaymentSession) paymentSessionItem {
	return paymentSessionItem{
		ID:           s.ID,
		ProviderKey:  s.ProviderKey,
		OrderID:      s.OrderID,
		Amount:       s.Amount.String(),
		Currency:     s.Currency,
		Status:       string(s.Status),
		ClientSecret: s.ClientSecret,
		IframeURL:    s.IframeURL,
		RedirectURL:  s.RedirectURL,
		Extra:        s.Extra,
		CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentSessionItem(it paymentSessionItem) entities.PaymentSession {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentSession{
		ID:           it.ID,
		ProviderKey:  it.ProviderKey,
		OrderID:      it.OrderID,
		Amount:       money.Parse(it.Amount),
		Currency:     it.Currency,
		Status:       entities.SessionStatus(it.Status),
		ClientSecret: it.ClientSecret,
		IframeURL:    it.IframeURL,
		RedirectURL:  it.RedirectURL,
		Extra:        it.Extra,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
