package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/ssargent/gearsave/pkg/logger"
	"gopkg.in/yaml.v3"
)

var errBodyTooLarge = errors.New("request body too large")

// apiKeyMiddleware validates the X-API-Key header
func apiKeyMiddleware(expectedKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" {
				sendError(w, "Missing X-API-Key header", http.StatusUnauthorized)
				return
			}
			if apiKey != expectedKey {
				sendError(w, "Invalid API key", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs one line per request through logrus
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("request")
	})
}

// readBody reads the request body, failing once it exceeds limit bytes.
// A limit of zero or less disables the check.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r.Body)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, errBodyTooLarge
	}
	return body, nil
}

// sendSuccess sends a successful JSON response. The body is marshalled
// before the status is written so a failure can still be reported.
func sendSuccess(w http.ResponseWriter, data interface{}) {
	body, err := marshalSuccess(data)
	if err != nil {
		logger.Log.WithError(err).Error("failed to marshal response")
		sendError(w, fmt.Sprintf("Failed to render response: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, body)
}

// sendRecord sends a response carrying a decoded record, as YAML when the
// request asks for ?format=yaml. JSON has no NaN or infinity, so a record
// holding one is rejected with a pointer to the YAML form.
func sendRecord(w http.ResponseWriter, r *http.Request, data interface{}) {
	if r.URL.Query().Get("format") == "yaml" {
		out, err := yaml.Marshal(data)
		if err != nil {
			sendError(w, fmt.Sprintf("Failed to render record: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
		return
	}

	body, err := marshalSuccess(data)
	var unsupported *json.UnsupportedValueError
	if errors.As(err, &unsupported) {
		sendError(w, fmt.Sprintf("Record cannot be represented as JSON (%s); request it with ?format=yaml", unsupported.Str),
			http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to render record: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, body)
}

func marshalSuccess(data interface{}) ([]byte, error) {
	return json.Marshal(APIResponse{
		Success: true,
		Data:    data,
	})
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(body, '\n'))
}

// sendBinary sends raw record bytes
func sendBinary(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// sendError sends an error JSON response
func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: false,
		Error:   message,
	}
	_ = json.NewEncoder(w).Encode(response)
}
