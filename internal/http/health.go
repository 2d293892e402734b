package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpetrov/bookshelf/internal/store"
)

type HealthController struct {
	session *store.Session
	version string
}

func NewHealthController(session *store.Session, version string) *HealthController {
	return &HealthController{
		session: session,
		version: version,
	}
}

func (controller *HealthController) GetStatus(c *gin.Context) {
	defer controller.session.Lock()()

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"version":     controller.version,
		"books":       controller.session.Books.Size(),
		"days_logged": controller.session.Reading.Len(),
	})
}
