package http

import (
	"encoding/json"
	"net/http"
	"strings"
)

// decodeBody fills dst from the request body. JSON bodies are decoded
// directly; anything else is treated as a form-encoded body and read through
// fields, a map of destination pointers keyed by form field name.
//
// Tracker clients historically submit exercise and user forms as
// application/x-www-form-urlencoded, so that path stays first-class rather
// than a fallback.
func decodeBody(r *http.Request, dst any, fields map[string]*string) error {
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		return json.NewDecoder(r.Body).Decode(dst)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	for name, target := range fields {
		*target = r.PostFormValue(name)
	}

	return nil
}
