package utils

import "github.com/gofiber/fiber/v2"

// GetRealIP prefers the forwarded chain over the socket address. The redeem
// rate limiter keys on this value, so behind a proxy it throttles clients
// rather than the proxy itself.
func GetRealIP(c *fiber.Ctx) string {
	if ips := c.IPs(); len(ips) > 0 {
		return ips[0]
	}
	return c.Get("X-Real-Ip", c.IP())
}
