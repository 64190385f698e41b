package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// localeCookie mirrors the persisted preference key of the original client.
const localeCookie = "preferred_language"

// supported is the fixed locale set; anything else falls through.
var supported = map[string]struct{}{
	"fr": {},
	"ar": {},
	"en": {},
}

// Locale resolves the request locale: explicit ?lang= wins and is persisted
// as a cookie, then the cookie, then the fixed default. The resolved locale
// is injected into context under "locale".
func Locale(defaultLocale string) echo.MiddlewareFunc {
	if _, ok := supported[defaultLocale]; !ok {
		defaultLocale = "fr"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			locale := defaultLocale

			if cookie, err := c.Cookie(localeCookie); err == nil {
				if _, ok := supported[cookie.Value]; ok {
					locale = cookie.Value
				}
			}

			if lang := c.QueryParam("lang"); lang != "" {
				if _, ok := supported[lang]; ok {
					locale = lang
					c.SetCookie(&http.Cookie{
						Name:  localeCookie,
						Value: lang,
						Path:  "/",
					})
				}
			}

			c.Set("locale", locale)
			return next(c)
		}
	}
}
