package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// AuditLogger records one audit entry per authenticated /api call after
// the response is written. The entry is handed to the recorder without
// waiting; nothing in here can fail or delay the request.
func AuditLogger(recorder domain.AuditRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/api/") {
			return
		}

		userID, ok := c.Get(CtxUserID)
		if !ok {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"statusCode": c.Writer.Status(),
			"ip":         c.ClientIP(),
			"userAgent":  c.Request.UserAgent(),
		})

		recorder.Record(&domain.AuditLog{
			UserID:    userID.(string),
			Action:    actionForMethod(c.Request.Method),
			Entity:    entityFromPath(path),
			Details:   string(details),
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
	}
}

// actionForMethod classifies an HTTP method into an audit action.
// LOGIN is the fallback for reads, matching the dashboard's activity view.
func actionForMethod(method string) string {
	switch method {
	case "POST":
		return domain.ActionCreate
	case "PUT", "PATCH":
		return domain.ActionUpdate
	case "DELETE":
		return domain.ActionDelete
	default:
		return domain.ActionLogin
	}
}

// entityFromPath extracts the audited entity as the path segment after
// /api: /api/users/profile -> "users".
func entityFromPath(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segments) >= 2 && segments[1] != "" {
		return segments[1]
	}
	return "unknown"
}
