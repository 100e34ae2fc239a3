package main

import (
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	_ "github.com/prova-app/prova-api/docs"
	"github.com/prova-app/prova-api/internal/config"
	"github.com/prova-app/prova-api/internal/container"
	"github.com/prova-app/prova-api/internal/router"
)

// @title          Prova API
// @version        1.0
// @description    Online quiz platform: teachers upload CSV test files, students take tests, scores are recorded.
// @BasePath       /api
// @securityDefinitions.basic BasicAuth
func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		AuthHandler:    c.AuthHandler,
		TestHandler:    c.TestContainer.Handler,
		ResultHandler:  c.ResultContainer.Handler,
		AuthMiddleware: c.AuthMiddleware,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	addr := ":" + c.Config.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	config.Log.Infof("Listening on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		config.Log.WithError(err).Fatal("Server stopped")
	}
}
