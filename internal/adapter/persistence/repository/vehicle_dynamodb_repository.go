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
	defaultVehiclesTableName = "vehicles"
	vehiclesPlateIndex       = "licence_plate-index"
)

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	LicencePlate string `dynamodbav:"licencePlate"`

	Make                 string `dynamodbav:"make,omitempty"`
	ModelLine            string `dynamodbav:"modelLine,omitempty"`
	Trim                 string `dynamodbav:"trim,omitempty"`
	EngineCapacity       string `dynamodbav:"engineCapacity,omitempty"`
	PowerKw              string `dynamodbav:"powerKw,omitempty"`
	FuelType             string `dynamodbav:"fuelType,omitempty"`
	Transmission         string `dynamodbav:"transmission,omitempty"`
	Powertrain           string `dynamodbav:"powertrain,omitempty"`
	VinCode              string `dynamodbav:"vinCode,omitempty"`
	Lessor               string `dynamodbav:"lessor,omitempty"`
	OwnershipType        string `dynamodbav:"ownershipType,omitempty"`
	PermanentAddressCity string `dynamodbav:"permanentAddressCity,omitempty"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: licence_plate-index (PK: licencePlate)
//
// The register is small and un-paginated by design, so List is a plain
// paginated Scan.

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
		for _, raw := range out.Items {
			var it vehicleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			vehicles = append(vehicles, fromVehicleItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return vehicles, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
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

func (r *VehicleDynamoRepository) FindByPlate(ctx context.Context, licencePlate string) (entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesPlateIndex),
		KeyConditionExpression: aws.String("licencePlate = :lp"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lp": &types.AttributeValueMemberS{Value: licencePlate},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Items) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Patch(ctx context.Context, id string, p entities.VehiclePatch) (entities.Vehicle, error) {
	expr := newPatchExpr()
	expr.setString("licencePlate", p.LicencePlate)
	expr.setString("make", p.Make)
	expr.setString("modelLine", p.ModelLine)
	expr.setString("trim", p.Trim)
	expr.setString("engineCapacity", p.EngineCapacity)
	expr.setString("powerKw", p.PowerKw)
	expr.setString("fuelType", p.FuelType)
	expr.setString("transmission", p.Transmission)
	expr.setString("powertrain", p.Powertrain)
	expr.setString("vinCode", p.VinCode)
	expr.setString("lessor", p.Lessor)
	expr.setString("ownershipType", p.OwnershipType)
	expr.setString("permanentAddressCity", p.PermanentAddressCity)

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
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

// Delete is a hard delete and does not look at referencing orders.
func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:                   v.ID,
		LicencePlate:         v.LicencePlate,
		Make:                 v.Make,
		ModelLine:            v.ModelLine,
		Trim:                 v.Trim,
		EngineCapacity:       v.EngineCapacity,
		PowerKw:              v.PowerKw,
		FuelType:             v.FuelType,
		Transmission:         v.Transmission,
		Powertrain:           v.Powertrain,
		VinCode:              v.VinCode,
		Lessor:               v.Lessor,
		OwnershipType:        v.OwnershipType,
		PermanentAddressCity: v.PermanentAddressCity,
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:                   it.ID,
		LicencePlate:         it.LicencePlate,
		Make:                 it.Make,
		ModelLine:            it.ModelLine,
		Trim:                 it.Trim,
		EngineCapacity:       it.EngineCapacity,
		PowerKw:              it.PowerKw,
		FuelType:             it.FuelType,
		Transmission:         it.Transmission,
		Powertrain:           it.Powertrain,
		VinCode:              it.VinCode,
		Lessor:               it.Lessor,
		OwnershipType:        it.OwnershipType,
		PermanentAddressCity: it.PermanentAddressCity,
	}
}
