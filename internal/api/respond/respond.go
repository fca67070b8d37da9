// Package respond holds small helpers for writing HTTP responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// JSON writes v as a JSON response body with the given status code.
func JSON(w http.ResponseWriter, code int, v response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 response with data.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, response{Data: data})
}

// Created writes a 201 response with data.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, response{Data: data})
}

// Fail writes an error response with the given status code.
func Fail(w http.ResponseWriter, code int, err error) {
	JSON(w, code, response{Error: err.Error()})
}

// XML writes a raw XML document; voice webhook responses use it for TwiML.
func XML(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(code)

	if _, err := w.Write([]byte(body)); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to write xml response")
	}
}
