package main

import (
	"context"
	"log/slog"
	"os"

	lambdaEvents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	cabinetData "lockhub.me/lockers/internal/dynamodb/cabinets"
	"lockhub.me/lockers/internal/dynamodb/eraser"
	"lockhub.me/lockers/internal/dynamodb/refs"
	"lockhub.me/lockers/internal/dynamodb/token"
	"lockhub.me/lockers/internal/events"
)

func HandleRequest(ctx context.Context, event lambdaEvents.DynamoDBEvent) error {
	tableName := os.Getenv("TABLE_NAME")
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}

	logger := slog.Default()
	client := dynamodb.NewFromConfig(cfg)
	marshaler := token.NewGCM()
	collectionEraser := eraser.New(tableName, *client, logger)

	handlers := []events.EventFilter{
		events.DefaultGroupCascadeHandler(
			refs.NewParticipatedGroupService(tableName, *client, marshaler),
			collectionEraser,
			logger,
		),
		events.DefaultReleaseCabinetHandler(
			cabinetData.NewCabinetService(tableName, *client),
			logger,
		),
		events.DefaultUserCascadeHandler(collectionEraser, logger),
	}

	for _, record := range event.Records {
		for _, handler := range handlers {
			if handler.Filter(record) {
				if err := handler.Apply(ctx, record); err != nil {
					logger.ErrorContext(ctx, "failed to handle record",
						"eventID", record.EventID,
						"error", err,
					)
					// Surface the error so the stream redelivers the batch;
					// every handler tolerates a rerun.
					return err
				}
			}
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
