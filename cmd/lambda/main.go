package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/banco-questoes/internal/container"
)

func main() {
	c := container.New(context.Background())
	adapter := httpadapter.New(c.Router())

	lambda.Start(adapter.ProxyWithContext)
}
