package user

import (
	"context"
	"errors"

	"github.com/prova-app/prova-api/internal/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingField       = errors.New("email and password are required")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// "password" hashed once, only ever fed to the dummy compare.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type UserService interface {
	Register(ctx context.Context, dto RegisterUserDTO) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, dto RegisterUserDTO) (*User, error) {
	log := config.WithContext(ctx)
	log.Info("Registrando novo usuário...")

	if dto.Email == "" || dto.Password == "" {
		log.Warn("Tentativa de registro sem email ou senha")
		return nil, ErrMissingField
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.Errorf("Erro ao consultar usuário existente: %v", err)
		return nil, err
	}
	if existing != nil {
		log.Warn("Email já registrado", "email", dto.Email)
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:      dto.Name,
		Email:     dto.Email,
		Password:  string(hash),
		IsTeacher: dto.IsTeacher,
	}

	if err := s.repo.Create(u); err != nil {
		// Unique index closes the race the pre-check leaves open.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		log.Errorf("Erro ao criar usuário: %v", err)
		return nil, err
	}

	log.Info("Usuário registrado com sucesso", "user_id", u.ID.String())
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// dummy compare so an unknown email takes as long as a wrong password
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
