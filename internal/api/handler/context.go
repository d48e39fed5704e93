package handler

import "github.com/labstack/echo/v4"

// ctxUserKey is the echo context key under which the Auth middleware
// stores the authenticated user id.
const ctxUserKey = "userID"

// ctxUserID extracts the user id injected by the Auth middleware. The
// second return is false when the middleware did not run — callers must
// answer 401 in that case rather than proceed unauthenticated.
func ctxUserID(c echo.Context) (int, bool) {
	id, ok := c.Get(ctxUserKey).(int)
	return id, ok
}
