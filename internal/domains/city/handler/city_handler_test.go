package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cityRepo "countries-backend/internal/domains/city/repository"
	cityService "countries-backend/internal/domains/city/service"
	"countries-backend/internal/domains/country"
	countryRepo "countries-backend/internal/domains/country/repository"
)

// testRouter wires the city routes over in-memory stores and returns the
// router plus the id of a seeded country.
func testRouter(t *testing.T) (*gin.Engine, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	countries := countryRepo.NewMemoryRepository()
	cities := cityRepo.NewMemoryRepository()
	countries.SetCityStore(cities)

	seeded := country.New("Argentina", "AR")
	require.True(t, seeded.IsOk())
	require.True(t, countries.Add(context.Background(), seeded.Value()).IsOk())

	h := NewCityHandler(cityService.NewCityService(cities, countries))

	r := gin.New()
	g := r.Group("/api/v1/cities")
	{
		g.GET("", h.GetAll)
		g.GET("/:id", h.GetByID)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	return r, seeded.Value().ID()
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCityReturns201(t *testing.T) {
	r, countryID := testRouter(t)

	body := fmt.Sprintf(`{"name":"Buenos Aires","countryId":"%s"}`, countryID)
	w := do(r, http.MethodPost, "/api/v1/cities", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Buenos Aires")
	assert.Contains(t, w.Body.String(), countryID.String())
}

func TestCreateCityUnknownCountryReturns404(t *testing.T) {
	r, _ := testRouter(t)

	body := fmt.Sprintf(`{"name":"Buenos Aires","countryId":"%s"}`, uuid.New())
	w := do(r, http.MethodPost, "/api/v1/cities", body)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid country id")
}

func TestCreateCityMalformedCountryIDReturns400(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodPost, "/api/v1/cities", `{"name":"Buenos Aires","countryId":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCityMissingNameReturns400(t *testing.T) {
	r, countryID := testRouter(t)

	body := fmt.Sprintf(`{"countryId":"%s"}`, countryID)
	w := do(r, http.MethodPost, "/api/v1/cities", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCitiesFilteredByCountry(t *testing.T) {
	r, countryID := testRouter(t)
	body := fmt.Sprintf(`{"name":"Buenos Aires","countryId":"%s"}`, countryID)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/cities", body).Code)

	w := do(r, http.MethodGet, "/api/v1/cities?countryId="+countryID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var paged struct {
		Data struct {
			TotalCount int `json:"totalCount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paged))
	assert.Equal(t, 1, paged.Data.TotalCount)

	// A different country matches nothing.
	w = do(r, http.MethodGet, "/api/v1/cities?countryId="+uuid.NewString(), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paged))
	assert.Equal(t, 0, paged.Data.TotalCount)
}

func TestGetCitiesMalformedCountryIDReturns400(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/v1/cities?countryId=nope", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCityByIDNotFoundReturns404(t *testing.T) {
	r, _ := testRouter(t)
	id := uuid.New()

	w := do(r, http.MethodGet, "/api/v1/cities/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "City with ID "+id.String()+" not found.")
}

func TestDeleteCityReturns204(t *testing.T) {
	r, countryID := testRouter(t)
	body := fmt.Sprintf(`{"name":"Buenos Aires","countryId":"%s"}`, countryID)
	w := do(r, http.MethodPost, "/api/v1/cities", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	w = do(r, http.MethodDelete, "/api/v1/cities/"+env.Data.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
