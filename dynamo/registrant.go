package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finwise-academy/webinar-checkout/registrant"
	"github.com/google/uuid"
)

var _ registrant.Repository = &DB{}

// Keyed by lowercased email so the PK is the unique-email constraint.
// GSI1 is keyed by the registrant id for lookups during verification.
type registrantDynamo struct {
	PK     string
	SK     string
	GSI1PK string
	GSI1SK string

	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	CourseID     string
	Status       registrant.Status
	PaymentID    string
	RegisteredAt time.Time
}

const (
	registrantEntityName = "REGISTRANT"
)

func registrantPK(email string) string {
	return fmt.Sprintf("%s#%s", registrantEntityName, strings.ToLower(email))
}

func registrantSK() string {
	return registrantEntityName
}

func registrantGSI1PK(id uuid.UUID) string {
	return fmt.Sprintf("%sID#%s", registrantEntityName, id)
}

func registrantToDynamo(reg registrant.Registrant) registrantDynamo {
	return registrantDynamo{
		PK:           registrantPK(reg.Email),
		SK:           registrantSK(),
		GSI1PK:       registrantGSI1PK(reg.ID),
		GSI1SK:       registrantSK(),
		ID:           reg.ID,
		Name:         reg.Name,
		Email:        reg.Email,
		Phone:        reg.Phone,
		CourseID:     reg.CourseID,
		Status:       reg.Status,
		PaymentID:    reg.PaymentID,
		RegisteredAt: reg.RegisteredAt,
	}
}

func dynamoToRegistrant(dynReg registrantDynamo) registrant.Registrant {
	return registrant.Registrant{
		ID:           dynReg.ID,
		Name:         dynReg.Name,
		Email:        dynReg.Email,
		Phone:        dynReg.Phone,
		CourseID:     dynReg.CourseID,
		Status:       dynReg.Status,
		PaymentID:    dynReg.PaymentID,
		RegisteredAt: dynReg.RegisteredAt,
	}
}

func (d *DB) CreateRegistrant(ctx context.Context, reg registrant.Registrant) error {
	dynamoReg := registrantToDynamo(reg)

	item, err := attributevalue.MarshalMap(dynamoReg)
	if err != nil {
		return registrant.NewFailedToTranslateToDBModelError("Failed to translate registrant to dynamo model", err)
	}
	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(newEntityConditional()))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condFailedErr) {
			return registrant.NewRegistrantAlreadyExistsError(fmt.Sprintf("Registrant with email %q already exists", reg.Email), err)
		}
		return registrant.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}

func (d *DB) GetRegistrantByEmail(ctx context.Context, email string) (registrant.Registrant, error) {
	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: registrantPK(email)},
			"SK": &types.AttributeValueMemberS{Value: registrantSK()},
		},
	})
	if err != nil {
		return registrant.Registrant{}, registrant.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registrant with email %q", email), err)
	}

	if len(resp.Item) == 0 {
		return registrant.Registrant{}, registrant.NewRegistrantDoesNotExistError(fmt.Sprintf("Registrant with email %q not found", email), nil)
	}

	var dynReg registrantDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &dynReg)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal registrant from dynamo: %s", err))
	}

	return dynamoToRegistrant(dynReg), nil
}

func (d *DB) GetRegistrant(ctx context.Context, id uuid.UUID) (registrant.Registrant, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(registrantGSI1PK(id)))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build dynamo key expression: %s", err))
	}

	result, err := d.dynamoClient.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(d.tableName),
		IndexName:                 aws.String(gsi1),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return registrant.Registrant{}, registrant.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registrant with id %q", id), err)
	}

	if len(result.Items) == 0 {
		return registrant.Registrant{}, registrant.NewRegistrantDoesNotExistError(fmt.Sprintf("Registrant with id %q not found", id), nil)
	}

	var dynReg registrantDynamo
	err = attributevalue.UnmarshalMap(result.Items[0], &dynReg)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal registrant from dynamo: %s", err))
	}

	return dynamoToRegistrant(dynReg), nil
}

func (d *DB) UpdateRegistrantStatus(ctx context.Context, id uuid.UUID, status registrant.Status, paymentID string) error {
	// The table is keyed by email, so resolve the id first.
	reg, err := d.GetRegistrant(ctx, id)
	if err != nil {
		return err
	}

	update := expression.Set(expression.Name("Status"), expression.Value(status))
	if paymentID != "" {
		update = update.Set(expression.Name("PaymentID"), expression.Value(paymentID))
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithUpdate(update).
		WithCondition(existingEntityConditional()))

	_, err = d.dynamoClient.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: registrantPK(reg.Email)},
			"SK": &types.AttributeValueMemberS{Value: registrantSK()},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condFailedErr) {
			return registrant.NewRegistrantDoesNotExistError(fmt.Sprintf("Registrant with id %q not found", id), err)
		}
		return registrant.NewFailedToWriteError("Failed UpdateItem call", err)
	}

	return nil
}
