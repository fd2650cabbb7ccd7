package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func queryPage(c *fiber.Ctx) int64 {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return int64(page)
}

func queryLimit(c *fiber.Ctx, def, ceiling int) int64 {
	limit := c.QueryInt("limit", def)
	if limit < 1 {
		limit = def
	}
	if limit > ceiling {
		limit = ceiling
	}
	return int64(limit)
}

// queryBool parses an optional boolean query parameter. Unrecognized values
// behave like an absent parameter.
func queryBool(c *fiber.Ctx, key string) *bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "true", "1", "yes":
		v := true
		return &v
	case "false", "0", "no":
		v := false
		return &v
	}
	return nil
}
