package result

import (
	"github.com/prova-app/prova-api/internal/test"
	"gorm.io/gorm"
)

type ResultContainer struct {
	Handler *Handler
	Service ResultService
}

func NewResultContainer(db *gorm.DB, testRepo test.TestRepository) *ResultContainer {
	repo := NewRepository(db)
	service := NewService(repo, testRepo)
	handler := NewHandler(service)

	return &ResultContainer{
		Handler: handler,
		Service: service,
	}
}
