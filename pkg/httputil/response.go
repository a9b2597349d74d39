// Package httputil provides the response writers used by the mock server.
package httputil

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

// Content types understood by WriteNegotiated.
const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteYAML writes a YAML response with the given status code.
func WriteYAML(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", ContentTypeYAML)
	w.WriteHeader(status)
	if data != nil {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		_ = enc.Encode(data)
		_ = enc.Close()
	}
}

// WantsYAML reports whether the Accept header prefers YAML over JSON.
func WantsYAML(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case ContentTypeYAML, "application/x-yaml", "text/yaml":
			return true
		case ContentTypeJSON:
			return false
		}
	}
	return false
}

// WriteNegotiated writes YAML when the request asks for it and JSON otherwise.
func WriteNegotiated(w http.ResponseWriter, r *http.Request, status int, data any) {
	if WantsYAML(r) {
		WriteYAML(w, status, data)
		return
	}
	WriteJSON(w, status, data)
}

// WriteError writes a JSON error response with the given status code.
func WriteError(w http.ResponseWriter, status int, errCode, message string) {
	WriteJSON(w, status, map[string]string{
		"error":   errCode,
		"message": message,
	})
}

// WriteBadRequest writes a 400 Bad Request error response.
func WriteBadRequest(w http.ResponseWriter, errCode, message string) {
	WriteError(w, http.StatusBadRequest, errCode, message)
}

// WriteNotFound writes a 404 Not Found error response.
func WriteNotFound(w http.ResponseWriter, errCode, message string) {
	WriteError(w, http.StatusNotFound, errCode, message)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, errCode, message string) {
	WriteError(w, http.StatusInternalServerError, errCode, message)
}
