package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header carries the RayID in requests and responses.
	Header = "X-Ray-ID"
	// LocalsKey is the Fiber locals key holding the RayID.
	LocalsKey = "ray_id"
)

// New returns a middleware that assigns a RayID to every request. An
// incoming X-Ray-ID header is reused.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
