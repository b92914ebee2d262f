package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	"github.com/rafabene/sheetsync-backend/internal/domain/errors"
	"github.com/rafabene/sheetsync-backend/internal/domain/valueobjects"
)

type fakeSessionResolver struct {
	operator *entities.Operator
}

func (r *fakeSessionResolver) CurrentSession(ctx context.Context, sessionToken string) (*entities.Operator, error) {
	if sessionToken != "valid-session-token" || r.operator == nil {
		return nil, errors.ErrUnauthenticated
	}
	return r.operator, nil
}

func setupAuthRouter(resolver SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authMiddleware := NewAuthMiddleware(resolver)

	router.GET("/protected", authMiddleware.RequireSession(), func(c *gin.Context) {
		operator, ok := CurrentOperator(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "operator missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": operator.Email.String()})
	})

	return router
}

func testOperator(t *testing.T) *entities.Operator {
	t.Helper()

	email, err := valueobjects.NewEmail("operator@example.com")
	if err != nil {
		t.Fatalf("falha ao criar email: %v", err)
	}
	return &entities.Operator{Email: email, Name: "Operator"}
}

func TestRequireSession(t *testing.T) {
	t.Run("sem header Authorization retorna 401", func(t *testing.T) {
		router := setupAuthRouter(&fakeSessionResolver{operator: testOperator(t)})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, esperava 401", w.Code)
		}
	})

	t.Run("header sem prefixo Bearer retorna 401", func(t *testing.T) {
		router := setupAuthRouter(&fakeSessionResolver{operator: testOperator(t)})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "valid-session-token")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, esperava 401", w.Code)
		}
	})

	t.Run("token desconhecido retorna 401", func(t *testing.T) {
		router := setupAuthRouter(&fakeSessionResolver{operator: testOperator(t)})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer wrong-token")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, esperava 401", w.Code)
		}
	})

	t.Run("token válido injeta o operador no contexto", func(t *testing.T) {
		router := setupAuthRouter(&fakeSessionResolver{operator: testOperator(t)})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer valid-session-token")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, esperava 200", w.Code)
		}
	})
}
