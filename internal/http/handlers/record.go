package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordvault-backend/internal/http/response"
	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/platform/apierr"
	"github.com/yungbote/recordvault-backend/internal/services"
	"github.com/yungbote/recordvault-backend/internal/types"
)

type RecordHandler struct {
	log           *logger.Logger
	recordService services.RecordService
}

func NewRecordHandler(log *logger.Logger, recordService services.RecordService) *RecordHandler {
	return &RecordHandler{
		log:           log.With("handler", "RecordHandler"),
		recordService: recordService,
	}
}

func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "List failed", err)
		return
	}
	response.RespondOK(c, records)
}

func (h *RecordHandler) Create(c *gin.Context) {
	var rec types.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid record payload: %w", err))
		return
	}
	if err := validateRecord(rec, true); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, err)
		return
	}
	created, err := h.recordService.Create(c.Request.Context(), rec)
	if err != nil {
		h.respondError(c, "Create failed", err)
		return
	}
	response.RespondCreated(c, created)
}

func (h *RecordHandler) Get(c *gin.Context) {
	rec, err := h.recordService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Get failed", err)
		return
	}
	response.RespondOK(c, rec)
}

func (h *RecordHandler) Replace(c *gin.Context) {
	id := c.Param("id")
	var rec types.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid record payload: %w", err))
		return
	}
	if rec.ID != "" && rec.ID != id {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("body id %q does not match path id %q", rec.ID, id))
		return
	}
	rec.ID = id
	if err := validateRecord(rec, false); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, err)
		return
	}
	replaced, err := h.recordService.Replace(c.Request.Context(), id, rec)
	if err != nil {
		h.respondError(c, "Replace failed", err)
		return
	}
	response.RespondAccepted(c, replaced)
}

func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.recordService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "Delete failed", err)
		return
	}
	response.RespondAccepted(c, nil)
}

func (h *RecordHandler) DeleteAll(c *gin.Context) {
	if err := h.recordService.Clear(c.Request.Context()); err != nil {
		h.respondError(c, "DeleteAll failed", err)
		return
	}
	response.RespondAccepted(c, nil)
}

// validateRecord rejects payloads before any store call. requireID is
// false on replace, where the id comes from the path.
func validateRecord(rec types.Record, requireID bool) error {
	if requireID && strings.TrimSpace(rec.ID) == "" {
		return fmt.Errorf("record id is required")
	}
	if strings.TrimSpace(rec.Name) == "" {
		return fmt.Errorf("record name is required")
	}
	if rec.PageCount < 0 {
		return fmt.Errorf("pageCount must not be negative")
	}
	return nil
}

func (h *RecordHandler) respondError(c *gin.Context, op string, err error) {
	ae := apierr.From(err)
	if ae.Status >= 500 {
		h.log.Error(op, "error", err, "path", c.Request.URL.Path)
	}
	response.RespondError(c, ae.Status, ae.Code, ae)
}
