package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConfigService serves canned declaration configs keyed by id.
type stubConfigService struct {
	configs map[string]service.DeclarationConfigResponse
}

func newStubConfigService() *stubConfigService {
	return &stubConfigService{configs: make(map[string]service.DeclarationConfigResponse)}
}

func (s *stubConfigService) List(_ context.Context, includeDisabled bool) ([]service.DeclarationConfigResponse, error) {
	var res []service.DeclarationConfigResponse
	for _, c := range s.configs {
		if !includeDisabled && !c.Enabled {
			continue
		}
		res = append(res, c)
	}
	return res, nil
}

func (s *stubConfigService) Get(_ context.Context, id string) (service.DeclarationConfigResponse, error) {
	c, ok := s.configs[id]
	if !ok {
		return service.DeclarationConfigResponse{}, fmt.Errorf("declaration rule %s: %w", id, model.ErrNotFound)
	}
	return c, nil
}

func (s *stubConfigService) Create(_ context.Context, req service.CreateDeclarationConfigRequest) (service.DeclarationConfigResponse, error) {
	if req.DueDay != nil && *req.DueDay > 31 {
		return service.DeclarationConfigResponse{}, fmt.Errorf("due_day out of range: %w", model.ErrInvalidRule)
	}
	c := service.DeclarationConfigResponse{ID: "created-id", Type: req.Type, Frequency: req.Frequency, Enabled: true}
	s.configs[c.ID] = c
	return c, nil
}

func (s *stubConfigService) Update(_ context.Context, id string, req service.UpdateDeclarationConfigRequest) (service.DeclarationConfigResponse, error) {
	c, ok := s.configs[id]
	if !ok {
		return service.DeclarationConfigResponse{}, fmt.Errorf("declaration rule %s: %w", id, model.ErrNotFound)
	}
	c.Type = req.Type
	c.Frequency = req.Frequency
	s.configs[id] = c
	return c, nil
}

func (s *stubConfigService) Delete(_ context.Context, id string) error {
	if _, ok := s.configs[id]; !ok {
		return fmt.Errorf("declaration rule %s: %w", id, model.ErrNotFound)
	}
	delete(s.configs, id)
	return nil
}

func setupConfigRouter(svc service.DeclarationConfigService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewDeclarationConfigHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestCreateConfigEndpoint(t *testing.T) {
	router := setupConfigRouter(newStubConfigService())

	rec, envelope := doRequest(t, router, http.MethodPost, "/api/declaration-configs",
		`{"type":"KDV","frequency":"MONTHLY","due_day":26}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", envelope.Status)
}

func TestCreateConfigEndpointRejectsBadPayload(t *testing.T) {
	router := setupConfigRouter(newStubConfigService())

	// Missing required frequency fails binding.
	rec, envelope := doRequest(t, router, http.MethodPost, "/api/declaration-configs",
		`{"type":"KDV"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", envelope.Status)

	// Binding passes but the rule itself is invalid.
	rec, envelope = doRequest(t, router, http.MethodPost, "/api/declaration-configs",
		`{"type":"KDV","frequency":"MONTHLY","due_day":32}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", envelope.Status)
}

func TestGetConfigEndpointNotFound(t *testing.T) {
	router := setupConfigRouter(newStubConfigService())

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/declaration-configs/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", envelope.Status)
	assert.Contains(t, envelope.Error, "unknown")
}

func TestDeleteConfigEndpoint(t *testing.T) {
	svc := newStubConfigService()
	created, err := svc.Create(context.Background(), service.CreateDeclarationConfigRequest{Type: "KDV", Frequency: "MONTHLY"})
	require.NoError(t, err)
	router := setupConfigRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodDelete, "/api/declaration-configs/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", envelope.Status)

	rec, _ = doRequest(t, router, http.MethodDelete, "/api/declaration-configs/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
