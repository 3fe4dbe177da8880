package repository

import (
	"context"
	"errors"

	"autoservis_spz/internal/domain/entities"
	"autoservis_spz/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersVehicleIDIndex   = "vehicle_id-index"
)

type orderItem struct {
	ID           string `dynamodbav:"id"`
	OrderNumber  int    `dynamodbav:"orderNumber"`
	Date         string `dynamodbav:"date"`
	LicencePlate string `dynamodbav:"licencePlate"`
	// omitted when empty so unlinked orders never appear in the GSI
	VehicleID string `dynamodbav:"vehicleId,omitempty"`

	Company        string `dynamodbav:"company,omitempty"`
	ContactName    string `dynamodbav:"contactName,omitempty"`
	ContactCompany string `dynamodbav:"contactCompany,omitempty"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Email          string `dynamodbav:"email,omitempty"`

	KmState       string `dynamodbav:"kmState,omitempty"`
	RepairRequest string `dynamodbav:"repairRequest,omitempty"`
	Deadline      string `dynamodbav:"deadline,omitempty"`
	Time          string `dynamodbav:"time,omitempty"`
	Note          string `dynamodbav:"note,omitempty"`

	PickUpAddress        string `dynamodbav:"pickUpAddress,omitempty"`
	PickUpTimeCollection string `dynamodbav:"pickUpTimeCollection,omitempty"`
	PickUpTimeReturn     string `dynamodbav:"pickUpTimeReturn,omitempty"`

	AutoService string `dynamodbav:"autoService,omitempty"`
	Vin         string `dynamodbav:"vin,omitempty"`
	Brand       string `dynamodbav:"brand,omitempty"`

	PickUp      string `dynamodbav:"pickUp,omitempty"`
	Nv          string `dynamodbav:"nv,omitempty"`
	Confirmed   string `dynamodbav:"confirmed,omitempty"`
	Calculation string `dynamodbav:"calculation,omitempty"`
	Invoicing   string `dynamodbav:"invoicing,omitempty"`
	Overdue     string `dynamodbav:"overdue,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_id-index (PK: vehicleId)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicleId = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Patch(ctx context.Context, id string, p entities.OrderPatch) (entities.Order, error) {
	expr := newPatchExpr()
	expr.setInt("orderNumber", p.OrderNumber)
	expr.setString("date", p.Date)
	expr.setString("licencePlate", p.LicencePlate)
	expr.setString("vehicleId", p.VehicleID)
	expr.setString("company", p.Company)
	expr.setString("contactName", p.ContactName)
	expr.setString("contactCompany", p.ContactCompany)
	expr.setString("phone", p.Phone)
	expr.setString("email", p.Email)
	expr.setString("kmState", p.KmState)
	expr.setString("repairRequest", p.RepairRequest)
	expr.setString("deadline", p.Deadline)
	expr.setString("time", p.Time)
	expr.setString("note", p.Note)
	expr.setString("pickUpAddress", p.PickUpAddress)
	expr.setString("pickUpTimeCollection", p.PickUpTimeCollection)
	expr.setString("pickUpTimeReturn", p.PickUpTimeReturn)
	expr.setString("autoService", p.AutoService)
	expr.setString("vin", p.Vin)
	expr.setString("brand", p.Brand)
	expr.setFlag("pickUp", p.PickUp)
	expr.setFlag("nv", p.Nv)
	expr.setFlag("confirmed", p.Confirmed)
	expr.setFlag("calculation", p.Calculation)
	expr.setFlag("invoicing", p.Invoicing)
	expr.setFlag("overdue", p.Overdue)

	if expr.empty() {
		return r.GetByID(ctx, id)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr.expression()),
		ExpressionAttributeValues: expr.values,
		ExpressionAttributeNames:  mergeNames(expr.names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		Date:                 o.Date,
		LicencePlate:         o.LicencePlate,
		VehicleID:            o.VehicleID,
		Company:              o.Company,
		ContactName:          o.ContactName,
		ContactCompany:       o.ContactCompany,
		Phone:                o.Phone,
		Email:                o.Email,
		KmState:              o.KmState,
		RepairRequest:        o.RepairRequest,
		Deadline:             o.Deadline,
		Time:                 o.Time,
		Note:                 o.Note,
		PickUpAddress:        o.PickUpAddress,
		PickUpTimeCollection: o.PickUpTimeCollection,
		PickUpTimeReturn:     o.PickUpTimeReturn,
		AutoService:          o.AutoService,
		Vin:                  o.Vin,
		Brand:                o.Brand,
		PickUp:               string(o.PickUp),
		Nv:                   string(o.Nv),
		Confirmed:            string(o.Confirmed),
		Calculation:          string(o.Calculation),
		Invoicing:            string(o.Invoicing),
		Overdue:              string(o.Overdue),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                   it.ID,
		OrderNumber:          it.OrderNumber,
		Date:                 it.Date,
		LicencePlate:         it.LicencePlate,
		VehicleID:            it.VehicleID,
		Company:              it.Company,
		ContactName:          it.ContactName,
		ContactCompany:       it.ContactCompany,
		Phone:                it.Phone,
		Email:                it.Email,
		KmState:              it.KmState,
		RepairRequest:        it.RepairRequest,
		Deadline:             it.Deadline,
		Time:                 it.Time,
		Note:                 it.Note,
		PickUpAddress:        it.PickUpAddress,
		PickUpTimeCollection: it.PickUpTimeCollection,
		PickUpTimeReturn:     it.PickUpTimeReturn,
		AutoService:          it.AutoService,
		Vin:                  it.Vin,
		Brand:                it.Brand,
		PickUp:               entities.Flag(it.PickUp),
		Nv:                   entities.Flag(it.Nv),
		Confirmed:            entities.Flag(it.Confirmed),
		Calculation:          entities.Flag(it.Calculation),
		Invoicing:            entities.Flag(it.Invoicing),
		Overdue:              entities.Flag(it.Overdue),
	}
}
