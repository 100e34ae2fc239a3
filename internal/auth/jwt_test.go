package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prova-app/prova-api/internal/auth"
)

const testSecret = "uma-chave-secreta-para-testes-segura-e-longa"
const testUserID = "3f1d2c4b-0000-0000-0000-000000000001"
const testEmail = "prof@example.com"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() deveria ter causado pânico quando JWT_SECRET está vazio, mas não o fez.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, true, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT falhou: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT falhou inesperadamente: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("UserID incorreto. Esperado: %s, Recebido: %s", testUserID, claims.UserID)
		}
		if claims.Email != testEmail {
			t.Errorf("Email incorreto. Esperado: %s, Recebido: %s", testEmail, claims.Email)
		}
		if !claims.IsTeacher {
			t.Error("IsTeacher deveria ser true")
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, false, -time.Second)
		if err != nil {
			t.Fatalf("GenerateJWT falhou: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT deveria ter falhado com token expirado, mas passou.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Erro incorreto retornado para token expirado. Esperado: %v, Recebido: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		if _, err := auth.ValidateJWT("nem-um-token"); err == nil {
			t.Fatal("ValidateJWT deveria ter falhado com token inválido, mas passou.")
		}
	})
}
