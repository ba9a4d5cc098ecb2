package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordvault-backend/internal/http/response"
	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/platform/apierr"
	"github.com/yungbote/recordvault-backend/internal/services"
)

type LookupHandler struct {
	log           *logger.Logger
	recordService services.RecordService
}

func NewLookupHandler(log *logger.Logger, recordService services.RecordService) *LookupHandler {
	return &LookupHandler{
		log:           log.With("handler", "LookupHandler"),
		recordService: recordService,
	}
}

// Find proxies a remote catalog query. An explicit ?url= overrides the
// configured template.
func (h *LookupHandler) Find(c *gin.Context) {
	rec, err := h.recordService.Lookup(
		c.Request.Context(),
		c.Query("url"),
		c.Param("search"),
		c.Param("term"),
	)
	if err != nil {
		ae := apierr.From(err)
		if ae.Status >= 500 {
			h.log.Error("Lookup failed", "error", err, "search", c.Param("search"), "term", c.Param("term"))
		}
		response.RespondError(c, ae.Status, ae.Code, ae)
		return
	}
	response.RespondOK(c, rec)
}
