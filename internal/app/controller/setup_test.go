package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/showbill/showbill-backend/config"
	"github.com/showbill/showbill-backend/internal/app/controller"
	"github.com/showbill/showbill-backend/internal/app/repository"
	"github.com/showbill/showbill-backend/internal/app/service"
	"github.com/showbill/showbill-backend/internal/db"
	"github.com/showbill/showbill-backend/internal/router"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestServer wires the full stack (repositories through router)
// against an in-memory database.
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	venueRepo := repository.NewVenueRepository(testDB)
	artistRepo := repository.NewArtistRepository(testDB)
	showRepo := repository.NewShowRepository(testDB)

	venueService := service.NewVenueService(venueRepo)
	artistService := service.NewArtistService(artistRepo)
	showService := service.NewShowService(showRepo, venueRepo, artistRepo)

	r := router.NewRouter(
		controller.NewVenueController(venueService),
		controller.NewArtistController(artistService),
		controller.NewShowController(showService),
		&config.Config{
			Server: config.ServerConfig{GinMode: gin.TestMode},
		},
	)
	return r.Setup(), testDB
}

func getJSON(t *testing.T, engine *gin.Engine, path string) (int, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code, decodeBody(t, w)
}

func postForm(t *testing.T, engine *gin.Engine, path string, values url.Values) (int, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code, decodeBody(t, w)
}

func deleteJSON(t *testing.T, engine *gin.Engine, path string) (int, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code, decodeBody(t, w)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	return body
}
