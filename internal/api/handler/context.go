package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxAccountID extracts the account id injected by the Auth middleware and
// fast-fails before any service call: a missing id means the middleware did
// not run or the token carries no subject, either way the request cannot be
// attributed to an account.
func ctxAccountID(c echo.Context) (string, error) {
	accountID, _ := c.Get("account_id").(string)
	if accountID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return accountID, nil
}
