package result

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prova-app/prova-api/internal/config"
	"github.com/prova-app/prova-api/internal/test"
	"github.com/prova-app/prova-api/internal/user"
)

var (
	ErrInvalidTestID = errors.New("invalid test id")
	ErrInvalidScore  = errors.New("score must be non-negative")
)

type ResultService interface {
	Submit(ctx context.Context, u *user.User, dto SubmitResultDTO) (*Result, error)
	ListForTeacher(ctx context.Context, teacher *user.User) ([]ResultRow, error)
}

type resultService struct {
	repo  ResultRepository
	tests test.TestRepository
}

func NewService(repo ResultRepository, tests test.TestRepository) ResultService {
	return &resultService{
		repo:  repo,
		tests: tests,
	}
}

func (s *resultService) Submit(ctx context.Context, u *user.User, dto SubmitResultDTO) (*Result, error) {
	log := config.WithContext(ctx)
	log.Info("Registrando resultado...")

	testID, err := uuid.Parse(dto.TestID)
	if err != nil {
		return nil, ErrInvalidTestID
	}
	if dto.Score < 0 {
		return nil, ErrInvalidScore
	}

	t, err := s.tests.GetByID(testID.String())
	if err != nil {
		log.Errorf("Erro ao buscar teste do resultado: %v", err)
		return nil, err
	}
	if t == nil {
		return nil, test.ErrNotFound
	}

	res := &Result{
		UserID: u.ID,
		TestID: t.ID,
		Score:  dto.Score,
	}

	if err := s.repo.Create(res); err != nil {
		log.Errorf("Erro ao registrar resultado: %v", err)
		return nil, err
	}

	log.Info("Resultado registrado com sucesso", "result_id", res.ID.String())
	return res, nil
}

func (s *resultService) ListForTeacher(ctx context.Context, teacher *user.User) ([]ResultRow, error) {
	log := config.WithContext(ctx)

	rows, err := s.repo.ListByTestCreator(teacher.ID.String())
	if err != nil {
		log.Errorf("Erro ao listar resultados: %v", err)
		return nil, err
	}
	return rows, nil
}
