package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchscope/web/internal/i18n"
)

func localeChain(t *testing.T) (http.Handler, *string) {
	t.Helper()
	bundle, err := i18n.Load("../../locales", "en", nil)
	require.NoError(t, err)
	var got string
	h := Session(Locale(bundle)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Lang(r)
	})))
	return h, &got
}

func TestLocaleQueryOverrideWins(t *testing.T) {
	h, got := localeChain(t)
	req := httptest.NewRequest(http.MethodGet, "/?hl=ko", nil)
	req.Header.Set("Accept-Language", "ja")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "ko", *got)
	assert.Equal(t, "ko", rec.Header().Get("Content-Language"))
}

func TestLocaleUnsupportedQueryIgnored(t *testing.T) {
	h, got := localeChain(t)
	req := httptest.NewRequest(http.MethodGet, "/?hl=xx", nil)
	req.Header.Set("Accept-Language", "ja")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// an unknown hl value is never persisted or echoed back
	assert.Equal(t, "ja", *got)
	assert.Equal(t, "ja", rec.Header().Get("Content-Language"))
	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, "hl", c.Name)
	}
}

func TestLocaleUnsupportedCookieIgnored(t *testing.T) {
	h, got := localeChain(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "hl", Value: "xx"})
	req.Header.Set("Accept-Language", "ko")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "ko", *got)
}

func TestLocaleAcceptLanguageFallback(t *testing.T) {
	h, got := localeChain(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ja;q=0.9, ko;q=1.0")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "ko", *got)
}

func TestLocaleCookiePreferred(t *testing.T) {
	h, got := localeChain(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "hl", Value: "zh"})
	req.Header.Set("Accept-Language", "ko")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "zh", *got)
}

func TestLangDefaultsToFallback(t *testing.T) {
	bundle, err := i18n.Load("../../locales", "en", nil)
	require.NoError(t, err)
	var got string
	h := Session(Locale(bundle)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Lang(r)
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	// no hints at all resolves to the bundle fallback
	assert.Equal(t, "en", got)
}
