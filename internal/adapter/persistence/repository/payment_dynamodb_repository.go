package repository

import (
	"context"
	"encoding/json"
	"time"

	"autonova/internal/domain/entities"
	"autonova/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName    = "payments"
	paymentsEstimateNumberIndex = "estimate_number-index"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	EstimateNumber    string `dynamodbav:"estimate_number"`
	Amount            string `dynamodbav:"amount"`
	Status            string `dynamodbav:"status"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderResponse  string `dynamodbav:"provider_response,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// EstimatePaymentDynamoRepository persists deposit payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_number-index (PK: estimate_number)

type EstimatePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimatePaymentRepository = (*EstimatePaymentDynamoRepository)(nil)

func NewEstimatePaymentDynamoRepository(ddb *dynamodb.Client) *EstimatePaymentDynamoRepository {
	return &EstimatePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *EstimatePaymentDynamoRepository) Create(ctx context.Context, p entities.EstimatePayment) (entities.EstimatePayment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EstimatePayment{}, err
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
		return entities.EstimatePayment{}, err
	}
	return p, nil
}

func (r *EstimatePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimatePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimatePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimatePayment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimatePayment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *EstimatePaymentDynamoRepository) ListByEstimateNumber(ctx context.Context, number string) ([]entities.EstimatePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsEstimateNumberIndex),
		KeyConditionExpression: aws.String("#n = :number"),
		ExpressionAttributeNames: map[string]string{
			"#n": "estimate_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []paymentItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	payments := make([]entities.EstimatePayment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.EstimatePayment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		EstimateNumber:    p.EstimateNumber,
		Amount:            p.Amount.String(),
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderResponse:  string(p.ProviderResponse),
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.EstimatePayment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.EstimatePayment{
		ID:                it.ID,
		EstimateNumber:    it.EstimateNumber,
		Amount:            decimalFromString(it.Amount),
		Status:            entities.PaymentStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         createdAt,
	}
	if it.ProviderResponse != "" {
		p.ProviderResponse = json.RawMessage(it.ProviderResponse)
	}
	return p
}
