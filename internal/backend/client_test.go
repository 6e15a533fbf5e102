package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBodyWrapsNonJSON(t *testing.T) {
	raw := NormalizeBody([]byte("<html>502 Bad Gateway</html>"))
	var wrapped map[string]string
	require.NoError(t, json.Unmarshal(raw, &wrapped))
	assert.Equal(t, "<html>502 Bad Gateway</html>", wrapped["raw"])
}

func TestNormalizeBodyPassesJSONThrough(t *testing.T) {
	raw := NormalizeBody([]byte(`  {"ok": true}  `))
	assert.JSONEq(t, `{"ok": true}`, string(raw))
}

func TestDoNeverFailsOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("plain text, not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	var out map[string]string
	err := c.getJSON(context.Background(), "/whatever", "", &out)
	require.NoError(t, err)
	assert.Equal(t, "plain text, not json", out["raw"])
}

func TestErrorMessagePriority(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/detail":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail": "url is required"}`))
		case "/text":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream exploded"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	err := c.getJSON(context.Background(), "/detail", "", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "url is required", apiErr.Message)

	err = c.getJSON(context.Background(), "/text", "", nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream exploded", apiErr.Message)

	err = c.getJSON(context.Background(), "/empty", "", nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, genericFailure, apiErr.Message)
}

func TestBearerHeaderOnlyWithToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.getJSON(context.Background(), "/x", "", nil))
	assert.Empty(t, got)
	require.NoError(t, c.getJSON(context.Background(), "/x", "tok-123", nil))
	assert.Equal(t, "Bearer tok-123", got)
}

func TestURLJoining(t *testing.T) {
	c := NewClient("https://api.searchscope.example/")
	assert.Equal(t, "https://api.searchscope.example/api/analyze", c.URL("/api/analyze"))
	assert.Equal(t, "https://api.searchscope.example/api/analyze", c.URL("api/analyze"))
	assert.Equal(t, "https://other.example/x", c.URL("https://other.example/x"))

	rel := NewClient("")
	assert.Equal(t, "/api/analyze", rel.URL("/api/analyze"))
}

func TestNumberCoercion(t *testing.T) {
	var probe GeoProbe
	require.NoError(t, json.Unmarshal([]byte(`{"status": "200", "load_time_ms": 181.4}`), &probe))
	assert.Equal(t, 200, probe.Status.Int())
	assert.Equal(t, 181, probe.LoadTimeMS.Int())

	require.NoError(t, json.Unmarshal([]byte(`{"status": "nope", "load_time_ms": null}`), &probe))
	assert.Equal(t, 0, probe.Status.Int())
	assert.Equal(t, 0, probe.LoadTimeMS.Int())
}

func TestAnalyzeReturnsRawAndDecoded(t *testing.T) {
	body := `{"url":"https://example.com","seo_result":{"score":72,"meta_title":{"status":"Pass","details":"ok"}},"geo_result":{"us-east":{"status":200,"load_time_ms":120}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analyze", r.URL.Path)
		var req AnalyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.IncludeAEO)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	report, raw, err := c.Analyze(context.Background(), "", AnalyzeRequest{URL: "https://example.com", IncludeAEO: true})
	require.NoError(t, err)
	assert.JSONEq(t, body, string(raw))
	assert.Equal(t, 72, report.SEOResult.Score.Int())
	assert.Equal(t, "Pass", report.SEOResult.MetaTitle.Status)
	assert.Equal(t, 120, report.GeoResult["us-east"].LoadTimeMS.Int())
}

func TestLoginPostsFormEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "user@example.com", r.Form.Get("username"))
		_, _ = w.Write([]byte(`{"access_token":"tok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	tok, err := c.Login(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
}
