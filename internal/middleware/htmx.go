package middleware

import "net/http"

// HTMX flags fragment requests so submit handlers know whether to render
// the output panel alone or the whole page. Boosted navigations carry the
// header too but expect full pages, so they count as non-fragment.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}
