package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	authutils "hr-evaluation-backend/lib/utils/auth-utils"
)

const (
	TagPid       = "pid"
	TagLatency   = "latency"
	TagStatus    = "status"
	TagMethod    = "method"
	TagPath      = "path"
	TagURL       = "url"
	TagIP        = "ip"
	TagBody      = "body"
	TagResBody   = "resBody"
	TagUserID    = "user_id"
	TagRoute     = "route"
	RequestID    = "request_id"
	maxBodyBytes = 4096
)

// FuncTag значение поля записи лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid:     func(_ *fiber.Ctx, d *data) interface{} { return d.pid },
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} { return d.end.Sub(d.start).String() },
		TagStatus:  func(c *fiber.Ctx, _ *data) interface{} { return c.Response().StatusCode() },
		TagMethod:  func(c *fiber.Ctx, _ *data) interface{} { return c.Method() },
		TagPath:    func(c *fiber.Ctx, _ *data) interface{} { return c.Path() },
		TagURL:     func(c *fiber.Ctx, _ *data) interface{} { return c.OriginalURL() },
		TagIP:      func(c *fiber.Ctx, _ *data) interface{} { return c.IP() },
		TagBody:    func(c *fiber.Ctx, _ *data) interface{} { return truncate(c.Body()) },
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} { return resBody(c) },
		TagRoute: func(c *fiber.Ctx, _ *data) interface{} {
			if r := c.Route(); r != nil {
				return r.Path
			}
			return ""
		},
		TagUserID: func(c *fiber.Ctx, _ *data) interface{} {
			sub, _ := authutils.GetClaims(c)["sub"].(string)
			return sub
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			if id, ok := c.Locals("requestid").(string); ok && id != "" {
				return id
			}
			return c.Get(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

// бинарные ответы (xlsx) в лог не пишем
func resBody(c *fiber.Ctx) string {
	contentType := string(c.Response().Header.ContentType())
	if contentType != fiber.MIMEApplicationJSON && contentType != fiber.MIMEApplicationJSONCharsetUTF8 {
		return ""
	}
	return truncate(c.Response().Body())
}

func truncate(body []byte) string {
	if len(body) > maxBodyBytes {
		return string(body[:maxBodyBytes]) + "..."
	}
	return string(body)
}
