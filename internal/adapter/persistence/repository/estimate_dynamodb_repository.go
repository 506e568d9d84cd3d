package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"autonova/internal/domain/entities"
	"autonova/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"

	// Per-date counter items share the estimates table under a SEQ- key, so
	// number issuance needs no second table.
	sequenceKeyPrefix   = "SEQ-"
	estimateKeyPrefix   = "EST-"
	estimateNumberAttr  = "estimate_number"
	estimateVersionAttr = "version"
)

type estimatePartItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	PartNumber string `dynamodbav:"part_number,omitempty"`
	Quantity   int    `dynamodbav:"quantity"`
	UnitPrice  string `dynamodbav:"unit_price"`
	TotalPrice string `dynamodbav:"total_price"`
	Notes      string `dynamodbav:"notes,omitempty"`
}

type estimateLabourItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Hours       string `dynamodbav:"hours"`
	HourlyRate  string `dynamodbav:"hourly_rate"`
	TotalCost   string `dynamodbav:"total_cost"`
	Notes       string `dynamodbav:"notes,omitempty"`
}

type estimateItem struct {
	EstimateNumber          string               `dynamodbav:"estimate_number"`
	CustomerID              string               `dynamodbav:"customer_id"`
	VehicleID               string               `dynamodbav:"vehicle_id"`
	InsuranceCompanyID      string               `dynamodbav:"insurance_company_id,omitempty"`
	InsuranceClaimNumber    string               `dynamodbav:"insurance_claim_number,omitempty"`
	Description             string               `dynamodbav:"description,omitempty"`
	EstimatedCompletionDate string               `dynamodbav:"estimated_completion_date,omitempty"`
	Status                  string               `dynamodbav:"status"`
	Parts                   []estimatePartItem   `dynamodbav:"parts"`
	Labour                  []estimateLabourItem `dynamodbav:"labour"`
	PartsTotal              string               `dynamodbav:"parts_total"`
	LabourTotal             string               `dynamodbav:"labour_total"`
	TaxAmount               string               `dynamodbav:"tax_amount"`
	GrandTotal              string               `dynamodbav:"grand_total"`
	ApprovedBy              string               `dynamodbav:"approved_by,omitempty"`
	ApprovedAt              string               `dynamodbav:"approved_at,omitempty"`
	RejectionReason         string               `dynamodbav:"rejection_reason,omitempty"`
	CreatedBy               string               `dynamodbav:"created_by"`
	CreatedAt               string               `dynamodbav:"created_at"`
	UpdatedAt               string               `dynamodbav:"updated_at"`
	Version                 int64                `dynamodbav:"version"`
}

// EstimateDynamoRepository persists the Estimate aggregate in DynamoDB.
//
// Table requirements:
//   - PK: estimate_number (string)
//
// The whole aggregate (core fields, line lists, derived totals) lives on one
// item, so a line mutation plus its recalculated totals is a single atomic
// write. Concurrent writers are serialized by a version condition; losing
// writers get ConflictError.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#n)"),
		ExpressionAttributeNames: map[string]string{
			"#n": estimateNumberAttr,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, entities.NewConflictError("estimate number already issued: " + e.EstimateNumber)
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			estimateNumberAttr: &types.AttributeValueMemberS{Value: number},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context, filter interfaces.EstimateFilter) ([]entities.Estimate, error) {
	// Counter items live in the same table; begins_with keeps them out.
	filterExpr := "begins_with(#n, :est)"
	names := map[string]string{"#n": estimateNumberAttr}
	values := map[string]types.AttributeValue{
		":est": &types.AttributeValueMemberS{Value: estimateKeyPrefix},
	}

	if filter.Status != "" {
		filterExpr += " AND #status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: filter.Status}
	}
	if filter.CustomerID != "" {
		filterExpr += " AND #customer_id = :customer_id"
		names["#customer_id"] = "customer_id"
		values[":customer_id"] = &types.AttributeValueMemberS{Value: filter.CustomerID}
	}
	if filter.VehicleID != "" {
		filterExpr += " AND #vehicle_id = :vehicle_id"
		names["#vehicle_id"] = "vehicle_id"
		values[":vehicle_id"] = &types.AttributeValueMemberS{Value: filter.VehicleID}
	}

	var estimates []entities.Estimate
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filterExpr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			estimates = append(estimates, fromEstimateItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.After(estimates[j].CreatedAt)
	})
	return estimates, nil
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	expected := e.Version
	e.Version = expected + 1

	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#v = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#v": estimateVersionAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: int64ToString(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, entities.NewConflictError("estimate " + e.EstimateNumber + " was modified concurrently")
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, number string, version int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			estimateNumberAttr: &types.AttributeValueMemberS{Value: number},
		},
		ConditionExpression: aws.String("#v = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#v": estimateVersionAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: int64ToString(version)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.NewConflictError("estimate " + number + " was modified concurrently")
		}
		return err
	}
	return nil
}

// NextSequence atomically increments and returns the day's counter. ADD on a
// missing item initializes it, so the first estimate of a date gets 1.
func (r *EstimateDynamoRepository) NextSequence(ctx context.Context, datePrefix string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			estimateNumberAttr: &types.AttributeValueMemberS{Value: sequenceKeyPrefix + datePrefix},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	var counter struct {
		Seq int `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	if counter.Seq < 1 {
		return 1, nil
	}
	return counter.Seq, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		EstimateNumber:       e.EstimateNumber,
		CustomerID:           e.CustomerID,
		VehicleID:            e.VehicleID,
		InsuranceCompanyID:   e.InsuranceCompanyID,
		InsuranceClaimNumber: e.InsuranceClaimNumber,
		Description:          e.Description,
		Status:               string(e.Status),
		Parts:                make([]estimatePartItem, 0, len(e.Parts)),
		Labour:               make([]estimateLabourItem, 0, len(e.Labour)),
		PartsTotal:           e.PartsTotal.String(),
		LabourTotal:          e.LabourTotal.String(),
		TaxAmount:            e.TaxAmount.String(),
		GrandTotal:           e.GrandTotal.String(),
		ApprovedBy:           e.ApprovedBy,
		RejectionReason:      e.RejectionReason,
		CreatedBy:            e.CreatedBy,
		CreatedAt:            e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            e.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:              e.Version,
	}
	if e.EstimatedCompletionDate != nil {
		it.EstimatedCompletionDate = e.EstimatedCompletionDate.UTC().Format(time.RFC3339Nano)
	}
	if e.ApprovedAt != nil {
		it.ApprovedAt = e.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	for _, p := range e.Parts {
		it.Parts = append(it.Parts, estimatePartItem{
			ID:         p.ID,
			Name:       p.Name,
			PartNumber: p.PartNumber,
			Quantity:   p.Quantity,
			UnitPrice:  p.UnitPrice.String(),
			TotalPrice: p.TotalPrice.String(),
			Notes:      p.Notes,
		})
	}
	for _, l := range e.Labour {
		it.Labour = append(it.Labour, estimateLabourItem{
			ID:          l.ID,
			Description: l.Description,
			Hours:       l.Hours.String(),
			HourlyRate:  l.HourlyRate.String(),
			TotalCost:   l.TotalCost.String(),
			Notes:       l.Notes,
		})
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	e := entities.Estimate{
		EstimateNumber:       it.EstimateNumber,
		CustomerID:           it.CustomerID,
		VehicleID:            it.VehicleID,
		InsuranceCompanyID:   it.InsuranceCompanyID,
		InsuranceClaimNumber: it.InsuranceClaimNumber,
		Description:          it.Description,
		Status:               entities.EstimateStatus(it.Status),
		PartsTotal:           decimalFromString(it.PartsTotal),
		LabourTotal:          decimalFromString(it.LabourTotal),
		TaxAmount:            decimalFromString(it.TaxAmount),
		GrandTotal:           decimalFromString(it.GrandTotal),
		ApprovedBy:           it.ApprovedBy,
		RejectionReason:      it.RejectionReason,
		CreatedBy:            it.CreatedBy,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
		Version:              it.Version,
	}
	if it.EstimatedCompletionDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.EstimatedCompletionDate); err == nil {
			e.EstimatedCompletionDate = &t
		}
	}
	if it.ApprovedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			e.ApprovedAt = &t
		}
	}
	for _, p := range it.Parts {
		e.Parts = append(e.Parts, entities.EstimatePart{
			ID:         p.ID,
			Name:       p.Name,
			PartNumber: p.PartNumber,
			Quantity:   p.Quantity,
			UnitPrice:  decimalFromString(p.UnitPrice),
			TotalPrice: decimalFromString(p.TotalPrice),
			Notes:      p.Notes,
		})
	}
	for _, l := range it.Labour {
		e.Labour = append(e.Labour, entities.EstimateLabour{
			ID:          l.ID,
			Description: l.Description,
			Hours:       decimalFromString(l.Hours),
			HourlyRate:  decimalFromString(l.HourlyRate),
			TotalCost:   decimalFromString(l.TotalCost),
			Notes:       l.Notes,
		})
	}
	return e
}
