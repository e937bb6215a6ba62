package response

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Problem is an RFC 7807 error body.
type Problem struct {
	Title  string   `json:"title"`
	Status int      `json:"status"`
	Detail string   `json:"detail,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound answers 404 with an empty body.
func NotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

func Error(w http.ResponseWriter, statusCode int, title, detail string, errors []string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Problem{
		Title:  title,
		Status: statusCode,
		Detail: detail,
		Errors: errors,
	})
}

func BadRequest(w http.ResponseWriter, errors []string) {
	Error(w, http.StatusBadRequest, "Bad Request", strings.Join(errors, "; "), errors)
}

func ValidationError(w http.ResponseWriter, errors []string) {
	Error(w, http.StatusBadRequest, "Validation Error", strings.Join(errors, "; "), errors)
}

func UnprocessableEntity(w http.ResponseWriter, detail string) {
	Error(w, http.StatusUnprocessableEntity, "Unprocessable Entity", detail, nil)
}

func InternalServerError(w http.ResponseWriter, title, detail string) {
	if title == "" {
		title = "Internal Server Error"
	}
	Error(w, http.StatusInternalServerError, title, detail, nil)
}
