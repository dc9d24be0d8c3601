package response

import (
	"net/http"

	"anoa.com/civicwaste/pkg/apperror"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParseUserID reads the :id path parameter. An id that is not a uuid cannot name
// any user, so it is reported as not found.
func ParseUserID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.ErrUserNotFound
	}
	return id, nil
}

// ResponseError writes err as {"error": ...}. Internal errors are logged and the
// client only sees fallback.
func ResponseError(c *gin.Context, err error, fallback string) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		log.Error("internal error", "path", c.FullPath(), "err", err)
		c.JSON(code, gin.H{"error": fallback})
		return
	}

	c.JSON(code, gin.H{"error": apperror.PublicMessage(err)})
}
