package test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/prova-app/prova-api/internal/config"
	"github.com/prova-app/prova-api/internal/question"
	"github.com/prova-app/prova-api/internal/storage"
	"github.com/prova-app/prova-api/internal/user"
)

var (
	ErrMissingField = errors.New("title and file are required")
	ErrDecode       = errors.New("file is not valid base64")
	ErrTooLarge     = errors.New("file exceeds the size limit")
	ErrNotFound     = errors.New("test not found")
)

// maxFileBytes caps the decoded upload; the decoder itself enforces no
// limit, so the cap is checked against the encoded length before decoding.
const maxFileBytes = 10 << 20

// maxUploadBytes bounds the raw request body: base64 expansion of
// maxFileBytes plus room for the JSON envelope.
const maxUploadBytes = maxFileBytes/3*4 + 1<<20

type TestService interface {
	Create(ctx context.Context, creator *user.User, dto CreateTestDTO) (*Test, error)
	Get(ctx context.Context, id string) (*Test, []question.Question, error)
	ListFor(ctx context.Context, u *user.User) ([]*Test, error)
}

type testService struct {
	repo  TestRepository
	store *storage.FileStore
}

func NewService(repo TestRepository, store *storage.FileStore) TestService {
	return &testService{
		repo:  repo,
		store: store,
	}
}

func decodeFile(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return data, nil
}

// Create runs the whole ingestion pipeline: decode the payload, persist it,
// parse it back and derive the score ceiling, then record the test. Any
// failure aborts the operation and removes the stored file, so no test ever
// points at a file that does not parse.
func (s *testService) Create(ctx context.Context, creator *user.User, dto CreateTestDTO) (*Test, error) {
	log := config.WithContext(ctx)
	log.Info("Criando novo teste...")

	if dto.Title == "" || dto.File == "" {
		log.Warn("Tentativa de criar teste sem título ou arquivo")
		return nil, ErrMissingField
	}

	if len(dto.File) > base64.StdEncoding.EncodedLen(maxFileBytes) {
		log.Warn("Arquivo enviado excede o limite de tamanho")
		return nil, ErrTooLarge
	}

	data, err := decodeFile(dto.File)
	if err != nil {
		log.Warnf("Arquivo base64 inválido: %v", err)
		return nil, err
	}
	// EncodedLen rounds up to a padding boundary, so re-check exactly
	if len(data) > maxFileBytes {
		return nil, ErrTooLarge
	}

	path, err := s.store.Save(data)
	if err != nil {
		log.Errorf("Erro ao gravar arquivo do teste: %v", err)
		return nil, err
	}

	// read back what was stored, not what was uploaded
	questions, err := question.ParseFile(path)
	if err != nil {
		log.Warnf("Arquivo do teste malformado: %v", err)
		if rmErr := s.store.Remove(path); rmErr != nil {
			log.Errorf("Erro ao remover arquivo inválido: %v", rmErr)
		}
		return nil, err
	}

	t := &Test{
		Title:     dto.Title,
		CreatedBy: creator.ID,
		Path:      path,
		MaxScore:  question.MaxScore(questions),
		MaxTime:   dto.MaxTime,
	}

	if err := s.repo.Create(t); err != nil {
		log.Errorf("Erro ao criar teste: %v", err)
		if rmErr := s.store.Remove(path); rmErr != nil {
			log.Errorf("Erro ao remover arquivo órfão: %v", rmErr)
		}
		return nil, err
	}

	log.Info("Teste criado com sucesso", "test_id", t.ID.String())
	return t, nil
}

// Get resolves a test and re-parses its record file. Questions are derived
// on every read, never cached.
func (s *testService) Get(ctx context.Context, id string) (*Test, []question.Question, error) {
	log := config.WithContext(ctx)

	t, err := s.repo.GetByID(id)
	if err != nil {
		log.Errorf("Erro ao buscar teste: %v", err)
		return nil, nil, err
	}
	if t == nil {
		return nil, nil, ErrNotFound
	}

	questions, err := question.ParseFile(t.Path)
	if err != nil {
		log.Errorf("Erro ao ler arquivo do teste %s: %v", t.ID, err)
		return nil, nil, err
	}

	return t, questions, nil
}

// ListFor returns the catalog visible to a principal: teachers see the
// tests they created, students see every test.
func (s *testService) ListFor(ctx context.Context, u *user.User) ([]*Test, error) {
	log := config.WithContext(ctx)

	if u.IsTeacher {
		return s.repo.ListByCreator(u.ID.String())
	}

	tests, err := s.repo.ListAll()
	if err != nil {
		log.Errorf("Erro ao listar testes: %v", err)
		return nil, err
	}
	return tests, nil
}
