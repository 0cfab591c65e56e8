package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	cabinetData "lockhub.me/lockers/internal/dynamodb/cabinets"
	groupData "lockhub.me/lockers/internal/dynamodb/groups"
	"lockhub.me/lockers/internal/dynamodb/refs"
	stateData "lockhub.me/lockers/internal/dynamodb/state"
	"lockhub.me/lockers/internal/dynamodb/token"
	userData "lockhub.me/lockers/internal/dynamodb/users"
	"lockhub.me/lockers/internal/routes"
	"lockhub.me/lockers/internal/routes/account"
	"lockhub.me/lockers/internal/routes/cabinets"
	"lockhub.me/lockers/internal/routes/groups"
	"lockhub.me/lockers/internal/sns/services"
)

type App struct {
	Router routes.Router
}

func NewApp() App {
	tableName := os.Getenv("TABLE_NAME")
	stateTableName := os.Getenv("STATE_TABLE_NAME")
	topicArn := os.Getenv("TOPIC_ARN")
	indexName := os.Getenv("INDEX_NAME")
	if indexName == "" {
		indexName = "GS1"
	}
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		panic("Failed to load AWS config.")
	}
	client := dynamodb.NewFromConfig(cfg)
	snsClient := sns.NewFromConfig(cfg)
	marshaler := token.NewGCM()
	users := userData.NewUserService(tableName, *client, indexName)
	groupService := groupData.NewGroupService(tableName, *client, indexName)
	router := routes.NewRouter(
		account.NewRoute(users),
		groups.NewRoute(
			groupService,
			users,
			refs.NewParticipatedGroupService(tableName, *client, marshaler),
			refs.NewMemberRefService(tableName, *client, marshaler),
			refs.NewCabinetRefService(tableName, *client, marshaler),
		),
		cabinets.NewRoute(
			cabinetData.NewCabinetService(tableName, *client),
			groupService,
			stateData.NewOpenStateService(stateTableName, *client),
			&services.NotificationSNSService{
				Sns:      *snsClient,
				TopicArn: topicArn,
			},
		),
	)
	return App{
		Router: *router,
	}
}

func (app *App) HandleRequest(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return app.Router.Invoke(request, ctx), nil
}

func main() {
	app := NewApp()
	lambda.Start(app.HandleRequest)
}
