package context

import "github.com/labstack/echo/v4"

// KeyUsername holds the subject of a verified bearer token.
const KeyUsername ContextKey = "username"

// SetUsername records the authenticated username on the echo context.
func SetUsername(c echo.Context, username string) {
	c.Set(string(KeyUsername), username)
}

// GetUsername returns the authenticated username, if the auth middleware ran.
func GetUsername(c echo.Context) (string, bool) {
	username, ok := c.Get(string(KeyUsername)).(string)

	return username, ok && username != ""
}
