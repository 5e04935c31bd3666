// api/handlers/send_handlers.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitebeacon/api/ingest"
	"sitebeacon/api/models"
	"sitebeacon/api/store"
)

// CacheHeader carries the continuation token on repeat requests.
const CacheHeader = "x-sitebeacon-cache"

type SendHandlers struct {
	Service *ingest.Service
}

func NewSendHandlers(service *ingest.Service) *SendHandlers {
	return &SendHandlers{Service: service}
}

// Send ingests one tracking beacon. Accepted beacons answer with the
// continuation token; bots get a neutral success so tracker scripts never
// see an error they would retry.
func (h *SendHandlers) Send(c *gin.Context) {
	var req models.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	meta := ingest.RequestMeta{
		IP:         c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
		CacheToken: c.GetHeader(CacheHeader),
		Headers:    c.Request.Header,
	}

	result, err := h.Service.HandleSend(c.Request.Context(), &req, meta)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrWebsiteNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Website not found"})
		case errors.Is(err, ingest.ErrMissingIdentityData):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Data required"})
		case errors.Is(err, ingest.ErrAccessDenied):
			// Deliberately no detail: the caller learns nothing about the
			// block list.
			c.Status(http.StatusForbidden)
		default:
			log.Printf("Error ingesting beacon: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record beacon", "details": err.Error()})
		}
		return
	}

	if result.Bot {
		c.JSON(http.StatusOK, gin.H{"beep": "boop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cache": result.Token})
}

// Heartbeat is a liveness probe for load balancers and the tracker script.
func (h *SendHandlers) Heartbeat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
