package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError answers a rejected request. Fragment requests get a JSON
// body with HX-Reswap none so htmx leaves the output panel untouched;
// plain form posts get a text response.
func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("HX-Reswap", "none")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
		return
	}
	http.Error(w, msg, code)
}
