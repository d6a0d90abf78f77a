// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/packlane/box-picker/internal/service"
)

// newAuditEntry captures the request context shared by all audit records.
func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Subject:    GetSubject(c),
		Fields:     fields,
	}
}

// persistAudit writes the entry in the background so audit logging never
// delays the request.
func persistAudit(loggingService service.LoggingService, entry *model.LogEntry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLog records a caller action such as a packing computation or a
// catalog modification.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	persistAudit(loggingService, newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed caller action together with the error.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message, fields)
	entry.Error = err.Error()
	persistAudit(loggingService, entry)
}
