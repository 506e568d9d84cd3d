package repository

import (
	"context"
	"sort"
	"time"

	"autonova/internal/domain/entities"
	"autonova/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Registry repositories persist the reference data estimates point at.
// All tables use a plain string id PK; users additionally need a
// username-index GSI for login lookups.

const (
	defaultCustomersTableName  = "customers"
	defaultVehiclesTableName   = "vehicles"
	defaultInsurersTableName   = "insurance_companies"
	defaultUsersTableName      = "users"
	usersUsernameIndex         = "username-index"
	registryTimestampFormat    = time.RFC3339Nano
	registryIDConditionExpr    = "attribute_not_exists(#id)"
	registryIDConditionAttrKey = "#id"
)

var registryIDConditionNames = map[string]string{registryIDConditionAttrKey: "id"}

type customerItem struct {
	ID        string `dynamodbav:"id"`
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone"`
	Address   string `dynamodbav:"address,omitempty"`
	City      string `dynamodbav:"city,omitempty"`
	State     string `dynamodbav:"state,omitempty"`
	ZipCode   string `dynamodbav:"zip_code,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(registryIDConditionExpr),
		ExpressionAttributeNames: registryIDConditionNames,
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	var customers []entities.Customer
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []customerItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			customers = append(customers, fromCustomerItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})
	return customers, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		CreatedAt: c.CreatedAt.UTC().Format(registryTimestampFormat),
		UpdatedAt: c.UpdatedAt.UTC().Format(registryTimestampFormat),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(registryTimestampFormat, it.CreatedAt)
	updatedAt, _ := time.Parse(registryTimestampFormat, it.UpdatedAt)
	return entities.Customer{
		ID:        it.ID,
		FirstName: it.FirstName,
		LastName:  it.LastName,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		City:      it.City,
		State:     it.State,
		ZipCode:   it.ZipCode,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	CustomerID   string `dynamodbav:"customer_id"`
	Make         string `dynamodbav:"make"`
	Model        string `dynamodbav:"model"`
	Year         int    `dynamodbav:"year"`
	Color        string `dynamodbav:"color,omitempty"`
	VIN          string `dynamodbav:"vin,omitempty"`
	LicensePlate string `dynamodbav:"license_plate,omitempty"`
	Mileage      int    `dynamodbav:"mileage,omitempty"`
	EngineType   string `dynamodbav:"engine_type,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(registryIDConditionExpr),
		ExpressionAttributeNames: registryIDConditionNames,
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}
	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	var vehicles []entities.Vehicle
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []vehicleItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			vehicles = append(vehicles, fromVehicleItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(vehicles, func(i, j int) bool {
		return vehicles[i].CreatedAt.After(vehicles[j].CreatedAt)
	})
	return vehicles, nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Color:        v.Color,
		VIN:          v.VIN,
		LicensePlate: v.LicensePlate,
		Mileage:      v.Mileage,
		EngineType:   v.EngineType,
		CreatedAt:    v.CreatedAt.UTC().Format(registryTimestampFormat),
		UpdatedAt:    v.UpdatedAt.UTC().Format(registryTimestampFormat),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	createdAt, _ := time.Parse(registryTimestampFormat, it.CreatedAt)
	updatedAt, _ := time.Parse(registryTimestampFormat, it.UpdatedAt)
	return entities.Vehicle{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		Make:         it.Make,
		Model:        it.Model,
		Year:         it.Year,
		Color:        it.Color,
		VIN:          it.VIN,
		LicensePlate: it.LicensePlate,
		Mileage:      it.Mileage,
		EngineType:   it.EngineType,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

type insuranceCompanyItem struct {
	ID          string `dynamodbav:"id"`
	CompanyName string `dynamodbav:"company_name"`
	ContactName string `dynamodbav:"contact_name,omitempty"`
	Email       string `dynamodbav:"email,omitempty"`
	Phone       string `dynamodbav:"phone"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type InsuranceCompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInsuranceCompanyRepository = (*InsuranceCompanyDynamoRepository)(nil)

func NewInsuranceCompanyDynamoRepository(ddb *dynamodb.Client) *InsuranceCompanyDynamoRepository {
	return &InsuranceCompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSURERS_TABLE", defaultInsurersTableName),
	}
}

func (r *InsuranceCompanyDynamoRepository) Create(ctx context.Context, ic entities.InsuranceCompany) (entities.InsuranceCompany, error) {
	av, err := attributevalue.MarshalMap(toInsuranceCompanyItem(ic))
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(registryIDConditionExpr),
		ExpressionAttributeNames: registryIDConditionNames,
	})
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	return ic, nil
}

func (r *InsuranceCompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	if len(out.Item) == 0 {
		return entities.InsuranceCompany{}, nil
	}
	var it insuranceCompanyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InsuranceCompany{}, err
	}
	return fromInsuranceCompanyItem(it), nil
}

func (r *InsuranceCompanyDynamoRepository) List(ctx context.Context) ([]entities.InsuranceCompany, error) {
	var insurers []entities.InsuranceCompany
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []insuranceCompanyItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			insurers = append(insurers, fromInsuranceCompanyItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(insurers, func(i, j int) bool {
		return insurers[i].CreatedAt.After(insurers[j].CreatedAt)
	})
	return insurers, nil
}

func toInsuranceCompanyItem(ic entities.InsuranceCompany) insuranceCompanyItem {
	return insuranceCompanyItem{
		ID:          ic.ID,
		CompanyName: ic.CompanyName,
		ContactName: ic.ContactName,
		Email:       ic.Email,
		Phone:       ic.Phone,
		CreatedAt:   ic.CreatedAt.UTC().Format(registryTimestampFormat),
		UpdatedAt:   ic.UpdatedAt.UTC().Format(registryTimestampFormat),
	}
}

func fromInsuranceCompanyItem(it insuranceCompanyItem) entities.InsuranceCompany {
	createdAt, _ := time.Parse(registryTimestampFormat, it.CreatedAt)
	updatedAt, _ := time.Parse(registryTimestampFormat, it.UpdatedAt)
	return entities.InsuranceCompany{
		ID:          it.ID,
		CompanyName: it.CompanyName,
		ContactName: it.ContactName,
		Email:       it.Email,
		Phone:       it.Phone,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

type userItem struct {
	ID           string `dynamodbav:"id"`
	Username     string `dynamodbav:"username"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	FirstName    string `dynamodbav:"first_name"`
	LastName     string `dynamodbav:"last_name"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Role         string `dynamodbav:"role"`
	IsActive     bool   `dynamodbav:"is_active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(registryIDConditionExpr),
		ExpressionAttributeNames: registryIDConditionNames,
	})
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersUsernameIndex),
		KeyConditionExpression: aws.String("#u = :username"),
		ExpressionAttributeNames: map[string]string{
			"#u": "username",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt.UTC().Format(registryTimestampFormat),
		UpdatedAt:    u.UpdatedAt.UTC().Format(registryTimestampFormat),
	}
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(registryTimestampFormat, it.CreatedAt)
	updatedAt, _ := time.Parse(registryTimestampFormat, it.UpdatedAt)
	return entities.User{
		ID:           it.ID,
		Username:     it.Username,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		FirstName:    it.FirstName,
		LastName:     it.LastName,
		Phone:        it.Phone,
		Role:         entities.Role(it.Role),
		IsActive:     it.IsActive,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
