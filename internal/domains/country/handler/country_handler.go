package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"countries-backend/internal/domains/country"
	"countries-backend/internal/shared/pagination"
	"countries-backend/internal/shared/response"
)

type CountryHandler struct {
	service country.Service
}

func NewCountryHandler(svc country.Service) *CountryHandler {
	return &CountryHandler{service: svc}
}

// GetAll handles GET /v1/countries?search=&page=&pageSize=
func (h *CountryHandler) GetAll(c *gin.Context) {
	search := c.Query("search")
	page := queryInt(c, "page", pagination.DefaultPage)
	pageSize := queryInt(c, "pageSize", pagination.DefaultPageSize)

	res := h.service.GetCountries(c.Request.Context(), search, page, pageSize)
	if !res.IsOk() {
		response.FromError(c, res.Err())
		return
	}

	response.Success(c, http.StatusOK, res.Value())
}

// GetByID handles GET /v1/countries/:id
func (h *CountryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid country id")
		return
	}

	res := h.service.GetCountryByID(c.Request.Context(), id)
	if !res.IsOk() {
		response.FromError(c, res.Err())
		return
	}

	response.Success(c, http.StatusOK, res.Value())
}

// Create handles POST /v1/countries
func (h *CountryHandler) Create(c *gin.Context) {
	var req country.CountryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	res := h.service.CreateCountry(c.Request.Context(), req)
	if !res.IsOk() {
		response.FromError(c, res.Err())
		return
	}

	response.Success(c, http.StatusCreated, res.Value())
}

// Update handles PUT /v1/countries/:id
func (h *CountryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid country id")
		return
	}

	var req country.CountryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	res := h.service.UpdateCountry(c.Request.Context(), id, req)
	if !res.IsOk() {
		response.FromError(c, res.Err())
		return
	}

	response.Success(c, http.StatusOK, res.Value())
}

// Delete handles DELETE /v1/countries/:id
func (h *CountryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid country id")
		return
	}

	res := h.service.DeleteCountry(c.Request.Context(), id)
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
