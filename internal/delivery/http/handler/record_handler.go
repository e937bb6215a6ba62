package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"medical-api/internal/delivery/dto"
	"medical-api/internal/domain/entity"
	"medical-api/internal/usecase"
	"medical-api/pkg/response"
	"medical-api/pkg/validator"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

// RecordHandler serves the report and CRUD endpoints of one entity type.
type RecordHandler[E entity.Entity, Req usecase.Mappable[E], R any] struct {
	usecase   usecase.RecordUsecase[E, Req, R]
	queries   ReportQueryValidator
	validator *validator.CustomValidator
}

// GetReport handles GET /{Entity}/GetReport
func (h *RecordHandler[E, Req, R]) GetReport(w http.ResponseWriter, r *http.Request) {
	query, messages := parseReportQuery(r)
	messages = append(messages, h.queries.ValidateReportQuery(query)...)
	if len(messages) > 0 {
		response.BadRequest(w, messages)
		return
	}

	page, err := h.usecase.GetReport(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if page.Empty() {
		response.NoContent(w)
		return
	}

	response.OK(w, page)
}

// GetByID handles GET /{Entity}/GetById/{id}
func (h *RecordHandler[E, Req, R]) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	record, err := h.usecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, record)
}

// Add handles POST /{Entity}/Add
func (h *RecordHandler[E, Req, R]) Add(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[Req](w, r)
	if !ok {
		return
	}

	record, err := h.usecase.Add(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, record)
}

// Edit handles PUT /{Entity}/Edit
func (h *RecordHandler[E, Req, R]) Edit(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[Req](w, r)
	if !ok {
		return
	}

	record, err := h.usecase.Edit(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, record)
}

// DeleteByID handles DELETE /{Entity}/DeleteById/{id}
func (h *RecordHandler[E, Req, R]) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.usecase.DeleteByID(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	response.NoContent(w)
}

func (h *RecordHandler[E, Req, R]) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, []string{"Id is not a valid value"})
		return 0, false
	}

	if err := h.validator.Validate(&dto.IDParam{ID: id}); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return 0, false
	}

	return id, true
}

// decodeRequest reads a JSON payload. A missing or null payload is
// unprocessable; malformed JSON is a bad request.
func decodeRequest[Req any](w http.ResponseWriter, r *http.Request) (Req, bool) {
	var req Req

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		response.BadRequest(w, []string{"Invalid request body"})
		return req, false
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		response.UnprocessableEntity(w, "Request body is required")
		return req, false
	}

	if err := json.Unmarshal(body, &req); err != nil {
		response.BadRequest(w, []string{"Invalid request body"})
		return req, false
	}

	return req, true
}

// parseReportQuery reads the report parameters. Parameter names match
// case-insensitively, so pageSize and pagesize are the same key.
func parseReportQuery(r *http.Request) (*dto.ReportQuery, []string) {
	values := make(map[string]string)
	for key, v := range r.URL.Query() {
		if len(v) > 0 {
			values[strings.ToLower(key)] = strings.TrimSpace(v[0])
		}
	}

	query := &dto.ReportQuery{
		SortColumn: values["sortcolumn"],
		SortOrder:  strings.ToLower(values["sortorder"]),
	}

	var messages []string
	if raw, ok := values["page"]; ok && raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			messages = append(messages, "Page is not a valid value")
		} else {
			query.Page = &page
		}
	}
	if raw, ok := values["pagesize"]; ok && raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			messages = append(messages, "Page size is not a valid value")
		} else {
			query.PageSize = &pageSize
		}
	}

	return query, messages
}
