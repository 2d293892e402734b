package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrov/bookshelf/internal/library"
	"github.com/mpetrov/bookshelf/internal/store"
)

func setupStatsRouter(t *testing.T) (*store.Session, *gin.Engine) {
	t.Helper()
	session := setupTestSession(t)
	controller := NewStatsController(session)

	router := gin.New()
	router.GET("/api/stats/general", controller.GetGeneralStats)
	router.GET("/api/stats/weekdays", controller.GetWeekdayAverages)
	router.GET("/api/stats/months", controller.GetMonthlyCounts)
	router.GET("/api/stats/snapshot", controller.GetSnapshot)
	return session, router
}

func TestStatsController_GetGeneralStats(t *testing.T) {
	t.Run("returns zero stats for empty data", func(t *testing.T) {
		_, router := setupStatsRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/stats/general", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(0), response["total_books"])
		assert.Equal(t, false, response["avg_pages_per_day_set"])
	})

	t.Run("reports collection figures", func(t *testing.T) {
		session, router := setupStatsRouter(t)
		session.Books.Add(library.Book{Title: "A", Author: "X", Pages: 100})
		session.Books.Add(library.Book{Title: "B", Author: "X", Pages: 300})
		session.Reading.RecordPages(time.Now().UTC(), 25)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/stats/general", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(2), response["total_books"])
		assert.Equal(t, float64(200), response["avg_book_length"])
		assert.Equal(t, float64(25), response["total_pages_read"])
		assert.Equal(t, float64(1), response["current_streak"])
	})
}

func TestStatsController_GetWeekdayAverages(t *testing.T) {
	t.Run("reports unavailable for an empty log", func(t *testing.T) {
		_, router := setupStatsRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/stats/weekdays", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, false, response["available"])
	})

	t.Run("names each weekday", func(t *testing.T) {
		session, router := setupStatsRouter(t)
		session.Reading.RecordPages(time.Now().UTC(), 10)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/stats/weekdays", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Available bool               `json:"available"`
			Averages  map[string]float64 `json:"averages"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Available)
		assert.Len(t, response.Averages, 7)
		assert.Contains(t, response.Averages, "Monday")
	})
}

func TestStatsController_GetMonthlyCounts(t *testing.T) {
	session, router := setupStatsRouter(t)
	session.Books.Add(library.Book{Title: "A", Author: "X", EndDate: "2024-03-10"})
	session.Books.Add(library.Book{Title: "B", Author: "X", EndDate: "NA"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/stats/months", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Months []struct {
			Month string `json:"month"`
			Count int    `json:"count"`
		} `json:"months"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Months, 12)
	assert.Equal(t, "January", response.Months[0].Month)
	assert.Equal(t, 1, response.Months[2].Count)
}

func TestStatsController_GetSnapshot(t *testing.T) {
	session, router := setupStatsRouter(t)
	now := time.Now().UTC()
	session.Books.Add(library.Book{Title: "A", Author: "X", EndDate: library.FormatDate(now)})
	session.Reading.RecordPages(now, 30)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/stats/snapshot", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["books_this_month"])
	assert.Equal(t, float64(1), response["books_this_year"])
	assert.Equal(t, float64(30), response["pages_today"])
}

func TestHealthController(t *testing.T) {
	session := setupTestSession(t)
	session.Books.Add(library.Book{Title: "A", Author: "X"})
	controller := NewHealthController(session, "test")

	router := gin.New()
	router.GET("/health", controller.GetStatus)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, "test", response["version"])
	assert.Equal(t, float64(1), response["books"])
}
