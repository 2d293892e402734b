package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mpetrov/bookshelf/internal/stats"
	"github.com/mpetrov/bookshelf/internal/store"
)

type StatsController struct {
	session *store.Session
}

func NewStatsController(session *store.Session) *StatsController {
	return &StatsController{
		session: session,
	}
}

// GetGeneralStats returns the headline numbers for the whole collection and
// reading history.
func (controller *StatsController) GetGeneralStats(c *gin.Context) {
	defer controller.session.Lock()()

	general := stats.GeneralStats(controller.session.Books, controller.session.Reading, time.Now().UTC())
	c.IndentedJSON(http.StatusOK, general)
}

// GetWeekdayAverages returns average pages read per day of the week. With no
// reading history the averages are reported as unavailable.
func (controller *StatsController) GetWeekdayAverages(c *gin.Context) {
	defer controller.session.Lock()()

	averages, ok := stats.DayOfWeekAverages(controller.session.Reading, time.Now().UTC())
	if !ok {
		c.IndentedJSON(http.StatusOK, gin.H{"available": false})
		return
	}

	named := make(map[string]float64, len(averages))
	for weekday, avg := range averages {
		named[weekday.String()] = avg
	}
	c.IndentedJSON(http.StatusOK, gin.H{"available": true, "averages": named})
}

// GetMonthlyCounts returns how many books were finished in each calendar
// month, aggregated across years.
func (controller *StatsController) GetMonthlyCounts(c *gin.Context) {
	defer controller.session.Lock()()

	counts := stats.MonthlyBookCounts(controller.session.Books)

	months := make([]gin.H, 0, len(counts))
	for i, count := range counts {
		months = append(months, gin.H{
			"month": time.Month(i + 1).String(),
			"count": count,
		})
	}
	c.IndentedJSON(http.StatusOK, gin.H{"months": months})
}

// GetSnapshot returns activity for the current day, month and year.
func (controller *StatsController) GetSnapshot(c *gin.Context) {
	defer controller.session.Lock()()

	snapshot := stats.CurrentPeriodSnapshot(controller.session.Books, controller.session.Reading, time.Now().UTC())
	c.IndentedJSON(http.StatusOK, snapshot)
}
