package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"countries-backend/internal/domains/city"
	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/response"
)

type CityHandler struct {
	service city.Service
}

func NewCityHandler(svc city.Service) *CityHandler {
	return &CityHandler{service: svc}
}

// GetAll handles GET /v1/cities?search=&countryId=&page=&pageSize=
func (h *CityHandler) GetAll(c *gin.Context) {
	search := c.Query("search")

	countryID := uuid.Nil
	if raw := c.Query("countryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid country id")
			return
		}
		countryID = id
	}

	page := queryInt(c, "page", pagination.DefaultPage)
	pageSize := queryInt(c, "pageSize", pagination.DefaultPageSize)

	res := h.service.GetCities(c.Request.Context(), search, countryID, page, pageSize)
	if !res.IsOk() {
		response.FromError(c, res.Err())
		return
	}

	response.Success(c, http.StatusOK, res.Value())
}

// GetByID handles GET /v1/cities/:id
func (h *CityHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid city id")
		return
	}

	res := h.service.GetCityByID(c.Request.Context(), id)
	if !res.IsOk() {
		response.FromError(c, res.Err())
		return
	}

	response.Success(c, http.StatusOK, res.Value())
}

// Create handles POST /v1/cities
func (h *CityHandler) Create(c *gin.Context) {
	var req city.CityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	res := h.service.CreateCity(c.Request.Context(), req)
	if !res.IsOk() {
		response.FromError(c, res.Err())
		return
	}

	response.Success(c, http.StatusCreated, res.Value())
}

// Update handles PUT /v1/cities/:id
func (h *CityHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid city id")
		return
	}

	var req city.CityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	res := h.service.UpdateCity(c.Request.Context(), id, req)
	if !res.IsOk() {
		response.FromError(c, res.Err())
		return
	}

	response.Success(c, http.StatusOK, res.Value())
}

// Delete handles DELETE /v1/cities/:id
func (h *CityHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid city id")
		return
	}

	res := h.service.DeleteCity(c.Request.Context(), id)
	if !res.IsOk() {
		response.FromError(c, res.Err())
		return
	}

	response.NoContent(c)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
