package handler

import (
	"delegated-treasury/internal/adapter/http/dto"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"
	"delegated-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

// HistoryHandler handles /api/v1/history audit log endpoints.
type HistoryHandler struct {
	svc ports.AuditLogService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(svc ports.AuditLogService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// Initialize handles POST /api/v1/history.
func (h *HistoryHandler) Initialize(c *gin.Context) {
	var req dto.InitAuditLogRequest
	if !bindJSON(c, &req) {
		return
	}
	info, err := h.svc.Initialize(c.Request.Context(), req.LogID, req.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, info)
}

// Info handles GET /api/v1/history/:log.
func (h *HistoryHandler) Info(c *gin.Context) {
	info, err := h.svc.Info(c.Request.Context(), c.Param("log"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// SetWriter handles PUT /api/v1/history/:log/writer.
func (h *HistoryHandler) SetWriter(c *gin.Context) {
	var req dto.SetWriterRequest
	if !bindJSON(c, &req) {
		return
	}
	info, err := h.svc.SetWriter(c.Request.Context(), c.Param("log"), req.Writer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// TransferAdmin handles PUT /api/v1/history/:log/admin.
func (h *HistoryHandler) TransferAdmin(c *gin.Context) {
	var req dto.AdminRequest
	if !bindJSON(c, &req) {
		return
	}
	info, err := h.svc.TransferAdmin(c.Request.Context(), c.Param("log"), req.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// Append handles POST /api/v1/history/:log/subjects/:subject/records.
func (h *HistoryHandler) Append(c *gin.Context) {
	subject, err := uint32Param(c, "subject")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AppendRecordRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	logID := c.Param("log")
	seq, err := h.svc.Append(c.Request.Context(), logID, subject, req.Reference, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.AppendRecordResponse{LogID: logID, SubjectID: subject, Sequence: seq})
}

// Count handles GET /api/v1/history/:log/subjects/:subject/count.
func (h *HistoryHandler) Count(c *gin.Context) {
	subject, err := uint32Param(c, "subject")
	if err != nil {
		response.Error(c, err)
		return
	}
	logID := c.Param("log")
	count, err := h.svc.Count(c.Request.Context(), logID, subject)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CountResponse{LogID: logID, SubjectID: subject, Count: count})
}

// Get handles GET /api/v1/history/:log/subjects/:subject/records/:seq.
func (h *HistoryHandler) Get(c *gin.Context) {
	subject, err := uint32Param(c, "subject")
	if err != nil {
		response.Error(c, err)
		return
	}
	seq, err := uint32Param(c, "seq")
	if err != nil {
		response.Error(c, err)
		return
	}

	record, err := h.svc.Get(c.Request.Context(), c.Param("log"), subject, seq)
	if err != nil {
		response.Error(c, err)
		return
	}
	if record == nil {
		response.Error(c, apperror.ErrNotFound("record"))
		return
	}
	response.OK(c, record)
}

// List handles GET /api/v1/history/:log/subjects/:subject/records?start=&limit=.
func (h *HistoryHandler) List(c *gin.Context) {
	subject, err := uint32Param(c, "subject")
	if err != nil {
		response.Error(c, err)
		return
	}
	start, limit, err := pageQuery(c, "start")
	if err != nil {
		response.Error(c, err)
		return
	}

	logID := c.Param("log")
	records, err := h.svc.List(c.Request.Context(), logID, subject, start, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	total, err := h.svc.Count(c.Request.Context(), logID, subject)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, records, start, limit, total)
}
