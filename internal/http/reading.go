package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mpetrov/bookshelf/internal/library"
	"github.com/mpetrov/bookshelf/internal/readinglog"
	"github.com/mpetrov/bookshelf/internal/store"
)

// ReadingEntryRequest records pages read on a day. An empty date means today.
type ReadingEntryRequest struct {
	Date  string  `json:"date"`
	Pages float64 `json:"pages"`
}

// ReadingEntry is a single day of the log as returned by the API.
type ReadingEntry struct {
	Date  string  `json:"date"`
	Pages float64 `json:"pages"`
}

type ReadingController struct {
	session *store.Session
	auditor MutationAuditor
}

func NewReadingController(session *store.Session, auditor MutationAuditor) *ReadingController {
	return &ReadingController{
		session: session,
		auditor: auditor,
	}
}

// ListEntries returns every logged day in chronological order.
func (controller *ReadingController) ListEntries(c *gin.Context) {
	defer controller.session.Lock()()

	log := controller.session.Reading
	entries := make([]ReadingEntry, 0, log.Len())
	for _, date := range log.Dates() {
		entries = append(entries, ReadingEntry{
			Date:  library.FormatDate(date),
			Pages: log.PagesOn(date),
		})
	}

	c.IndentedJSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// AddEntry records pages read on a day, merging additively with any pages
// already logged for that day.
func (controller *ReadingController) AddEntry(c *gin.Context) {
	var req ReadingEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Pages < 0 {
		respondBadRequest(c, "pages must not be negative")
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, ok := library.ParseDate(req.Date)
		if !ok {
			respondBadRequest(c, "date must be in YYYY-MM-DD format")
			return
		}
		date = parsed
	}

	defer controller.session.Lock()()

	controller.session.Reading.RecordPages(date, req.Pages)
	if err := controller.session.FlushReading(); err != nil {
		respondInternalError(c, err, "saving reading log")
		return
	}

	day := readinglog.Day(date)
	entry := ReadingEntry{Date: library.FormatDate(day), Pages: controller.session.Reading.PagesOn(day)}
	controller.audit("reading_logged", entry)
	respondCreated(c, entry)
}

func (controller *ReadingController) audit(action string, payload any) {
	if controller.auditor == nil {
		return
	}
	if _, err := controller.auditor.SaveMutation(action, payload); err != nil {
		logAuditError(action, err)
	}
}
