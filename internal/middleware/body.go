package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const bodyKey = "middleware.body"

// JSONBody decodes JSON request bodies once, up front. A malformed body is
// answered with 400 and never reaches a handler. The decoded value is
// available to handlers through Body.
func JSONBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Body()
		if len(raw) == 0 || !c.Is("json") {
			return c.Next()
		}

		var body any
		if err := c.App().Config().JSONDecoder(raw, &body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Bad Request",
				"error":   "malformed JSON request body: " + err.Error(),
			})
		}
		c.Locals(bodyKey, body)
		return c.Next()
	}
}

// Body returns the decoded JSON body, or nil when the request had none.
func Body(c *fiber.Ctx) any {
	return c.Locals(bodyKey)
}
