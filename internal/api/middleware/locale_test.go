package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func resolveLocale(t *testing.T, defaultLocale, cookie, query string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	target := "/"
	if query != "" {
		target += "?lang=" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: localeCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	handler := Locale(defaultLocale)(func(c echo.Context) error {
		got, _ = c.Get("locale").(string)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return got, rec
}

func TestLocale_Default(t *testing.T) {
	if got, _ := resolveLocale(t, "fr", "", ""); got != "fr" {
		t.Fatalf("expected fr, got %q", got)
	}
}

func TestLocale_UnknownDefaultFallsBackToFrench(t *testing.T) {
	if got, _ := resolveLocale(t, "de", "", ""); got != "fr" {
		t.Fatalf("expected fr, got %q", got)
	}
}

func TestLocale_Cookie(t *testing.T) {
	if got, _ := resolveLocale(t, "fr", "ar", ""); got != "ar" {
		t.Fatalf("expected ar from cookie, got %q", got)
	}
}

func TestLocale_UnsupportedCookieIgnored(t *testing.T) {
	if got, _ := resolveLocale(t, "fr", "de", ""); got != "fr" {
		t.Fatalf("expected fallback to fr, got %q", got)
	}
}

func TestLocale_QueryOverridesCookieAndPersists(t *testing.T) {
	got, rec := resolveLocale(t, "fr", "ar", "en")
	if got != "en" {
		t.Fatalf("expected en from query, got %q", got)
	}

	persisted := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == localeCookie && c.Value == "en" {
			persisted = true
		}
	}
	if !persisted {
		t.Fatalf("expected %s cookie set to en", localeCookie)
	}
}

func TestLocale_UnsupportedQueryIgnored(t *testing.T) {
	got, rec := resolveLocale(t, "fr", "ar", "de")
	if got != "ar" {
		t.Fatalf("expected cookie value to win, got %q", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("unsupported query must not persist a cookie")
	}
}
