package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"lockhub.me/lockers/internal/data"
	userData "lockhub.me/lockers/internal/dynamodb/users"
)

// HandleRequest runs on user-pool post confirmation and creates the user
// document for the fresh identity. The put is idempotent, redelivery of the
// trigger is harmless.
func HandleRequest(ctx context.Context, event events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	tableName := os.Getenv("TABLE_NAME")
	indexName := os.Getenv("INDEX_NAME")
	if indexName == "" {
		indexName = "GS1"
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return event, err
	}
	client := dynamodb.NewFromConfig(cfg)
	users := userData.NewUserService(tableName, *client, indexName)
	user, err := users.CreateWithId(event.Request.UserAttributes["sub"], data.UserInputDTO{
		Email: event.Request.UserAttributes["email"],
	})
	if err != nil {
		return event, err
	}
	slog.InfoContext(ctx, "created user document", "userId", user.UserId())
	return event, nil
}

func main() {
	lambda.Start(HandleRequest)
}
