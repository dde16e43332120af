package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ums-payment-service/internal/handlers"
	"github.com/jeffleon2/ums-payment-service/internal/handlers/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	health := mocks.NewMockHealthChecker(t)
	a := &App{Router: gin.New()}
	a.RegisterRoutes(handlers.NewTransactionHandler(mocks.NewMockTransactionService(t), mocks.NewMockReconciler(t), health))

	registered := map[string]bool{}
	for _, r := range a.Router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, route := range []string{
		"GET /health",
		"GET /metrics",
		"GET /transactions",
		"POST /transactions",
		"GET /transactions/pending",
		"GET /transactions/:id",
		"POST /transactions/:id/approve",
		"POST /transactions/:id/reject",
		"POST /transactions/:id/settle",
		"POST /admin/reconcile",
	} {
		assert.True(t, registered[route], route)
	}

	health.EXPECT().Ping(mock.Anything).Return(nil).Once()
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConfigureLogging_FallsBackToInfo(t *testing.T) {
	configureLogging("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	configureLogging("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	logrus.SetLevel(logrus.InfoLevel)
}
