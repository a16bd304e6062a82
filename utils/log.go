package utils

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"speaker-booking/types"
)

// Request body fields that never belong in the logs table.
var sensitiveFields = []string{"password", "otp_code"}

// CreateSanitizedLogEntry builds a request log row from the request context
// with credential fields masked and all data deep copied off the fasthttp
// buffers.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	path := string([]byte(c.OriginalURL()))
	requestBody := sanitizeBody(string(c.Body()))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	return types.LogEntry{
		Method:       method,
		Path:         path,
		ClientIP:     c.IP(),
		RequestBody:  requestBody,
		ResponseBody: responseBody,
		StatusCode:   c.Response().StatusCode(),
		CreatedAt:    time.Now(),
	}
}

// sanitizeBody masks sensitive fields in a JSON request body. Non-JSON
// bodies are stored as-is.
func sanitizeBody(body string) string {
	if body == "" {
		return body
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return body
	}

	for _, field := range sensitiveFields {
		if _, ok := payload[field]; ok {
			payload[field] = "***"
		}
	}

	sanitized, err := json.Marshal(payload)
	if err != nil {
		return body
	}
	return string(sanitized)
}
