package test

import (
	"github.com/prova-app/prova-api/internal/storage"
	"gorm.io/gorm"
)

type TestContainer struct {
	Handler *Handler
	Service TestService
	Repo    TestRepository
}

func NewTestContainer(db *gorm.DB, store *storage.FileStore) *TestContainer {
	repo := NewRepository(db)
	service := NewService(repo, store)
	handler := NewHandler(service)

	return &TestContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
