package container

import (
	"context"
	"log"
	"net/http"

	"github.com/prova-app/prova-api/internal/auth"
	"github.com/prova-app/prova-api/internal/config"
	"github.com/prova-app/prova-api/internal/result"
	"github.com/prova-app/prova-api/internal/storage"
	"github.com/prova-app/prova-api/internal/test"
	"github.com/prova-app/prova-api/internal/user"
)

type Container struct {
	Config          *config.Config
	UserContainer   *user.UserContainer
	TestContainer   *test.TestContainer
	ResultContainer *result.ResultContainer
	AuthHandler     *auth.Handler
	AuthMiddleware  func(http.Handler) http.Handler
}

func New() *Container {
	cfg := config.Load()
	config.Init()
	auth.Init()

	db, err := config.Connect(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatalf("failed to enable uuid-ossp: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &test.Test{}, &result.Result{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	store, err := storage.New(cfg.StorageDir)
	if err != nil {
		log.Fatalf("failed to init file store: %v", err)
	}

	userContainer := user.NewUserContainer(db)
	testContainer := test.NewTestContainer(db, store)
	resultContainer := result.NewResultContainer(db, testContainer.Repo)

	return &Container{
		Config:          cfg,
		UserContainer:   userContainer,
		TestContainer:   testContainer,
		ResultContainer: resultContainer,
		AuthHandler:     auth.NewHandler(userContainer.Service),
		AuthMiddleware:  auth.Middleware(userContainer.Service, userContainer.Repo),
	}
}
