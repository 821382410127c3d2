package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DeclarationConfigHandler struct {
	configService service.DeclarationConfigService
}

func NewDeclarationConfigHandler(configService service.DeclarationConfigService) *DeclarationConfigHandler {
	return &DeclarationConfigHandler{configService: configService}
}

func (h *DeclarationConfigHandler) RegisterRoutes(router *gin.RouterGroup) {
	configs := router.Group("/api/declaration-configs")
	{
		configs.GET("", h.ListConfigs)
		configs.POST("", h.CreateConfig)
		configs.GET("/:id", h.GetConfig)
		configs.PUT("/:id", h.UpdateConfig)
		configs.DELETE("/:id", h.DeleteConfig)
	}
}

// ListConfigs returns the declaration rule catalog
// @Summary      List declaration configs
// @Tags         declaration-configs
// @Produce      json
// @Param        include_disabled  query  bool  false  "Include disabled rules"
// @Success      200  {object}  response.Response
// @Router       /api/declaration-configs [get]
func (h *DeclarationConfigHandler) ListConfigs(c *gin.Context) {
	includeDisabled := c.Query("include_disabled") == "true"

	configs, err := h.configService.List(c.Request.Context(), includeDisabled)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, configs))
}

// CreateConfig creates a declaration rule; inconsistent timing fields are rejected
// @Summary      Create declaration config
// @Tags         declaration-configs
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateDeclarationConfigRequest  true  "Rule payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/declaration-configs [post]
func (h *DeclarationConfigHandler) CreateConfig(c *gin.Context) {
	var req service.CreateDeclarationConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	config, err := h.configService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, config))
}

// GetConfig returns a single declaration rule by id
// @Summary      Get declaration config
// @Tags         declaration-configs
// @Produce      json
// @Param        id  path  string  true  "Config ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/declaration-configs/{id} [get]
func (h *DeclarationConfigHandler) GetConfig(c *gin.Context) {
	config, err := h.configService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// UpdateConfig updates a declaration rule
// @Summary      Update declaration config
// @Tags         declaration-configs
// @Accept       json
// @Produce      json
// @Param        id       path  string                                  true  "Config ID"
// @Param        payload  body  service.UpdateDeclarationConfigRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/declaration-configs/{id} [put]
func (h *DeclarationConfigHandler) UpdateConfig(c *gin.Context) {
	var req service.UpdateDeclarationConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	config, err := h.configService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// DeleteConfig deletes an unreferenced rule, or disables it when tax returns reference it
// @Summary      Delete declaration config
// @Tags         declaration-configs
// @Produce      json
// @Param        id  path  string  true  "Config ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/declaration-configs/{id} [delete]
func (h *DeclarationConfigHandler) DeleteConfig(c *gin.Context) {
	if err := h.configService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}
