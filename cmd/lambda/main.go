package main

import (
	"context"
	"insightengine/api"
	"insightengine/cmd"
	"insightengine/internal/util"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"
)

type lambdaHandler struct {
	apiHandler *api.ApiHandler
	ginLambda  *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	zap.S().Debugw("lambda request", "method", req.HTTPMethod, "path", req.Path)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	log := zap.S()

	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatalw("failed to load secrets", "error", err)
	}

	apiHandler, err := cmd.InitializeDependencies(secrets)
	if err != nil {
		log.Fatalw("failed to initialize dependencies", "error", err)
	}
	defer cmd.CloseDependencies(apiHandler)

	handler := lambdaHandler{
		apiHandler: apiHandler,
		ginLambda:  ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
