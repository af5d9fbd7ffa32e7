package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"settings-server/internal/customfields/domain"
	"settings-server/internal/customfields/httpapi/internal"
	"settings-server/internal/customfields/usecases"
	"settings-server/internal/infra/httpserver"
)

const (
	listValuesErrMessage      = "failed to list field values"
	saveValuesErrMessage      = "failed to save field values"
	emptyValuesErrMessage     = "values batch requires at least one item"
	invalidEntityErrMessage   = "entity type and a non-negative entity id are required"
	valueDefinitionErrMessage = "field definition not found for one of the values"
)

func NewValueController(service usecases.ValueService) *ValueController {
	return &ValueController{
		service: service,
	}
}

var _ httpserver.Controller = &ValueController{}

type ValueController struct {
	service usecases.ValueService
}

func (c *ValueController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/custom-fields/entities/{entityType}/{entityId}/values", c.listValues())
	router.Handle("POST /v1/custom-fields/entities/{entityType}/{entityId}/values", c.saveValues())
	router.Handle("GET /v1/custom-fields/entities/{entityType}/{entityId}/fields", c.listFieldsWithValues())
	router.Handle("GET /v1/custom-fields/entities/{entityType}/{entityId}/fields/grouped", c.listFieldsWithValuesGrouped())
}

func (c *ValueController) listValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, entityID, err := parseEntityPath(r)
		if err != nil {
			http.Error(w, invalidEntityErrMessage, http.StatusBadRequest)
			return
		}

		values, err := c.service.ListValuesByEntity(r.Context(), entityType, entityID)
		if err != nil {
			slog.Error("listing field values", slog.String("error", err.Error()))
			http.Error(w, listValuesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FieldValueResponse, len(values))
		for i, value := range values {
			responses[i] = internal.ToFieldValueResponse(value)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *ValueController) listFieldsWithValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, entityID, err := parseEntityPath(r)
		if err != nil {
			http.Error(w, invalidEntityErrMessage, http.StatusBadRequest)
			return
		}

		fields, err := c.service.FieldsWithValues(r.Context(), entityType, entityID)
		if err != nil {
			slog.Error("listing fields with values", slog.String("error", err.Error()))
			http.Error(w, listValuesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FieldWithValueResponse, len(fields))
		for i, field := range fields {
			responses[i] = internal.ToFieldWithValueResponse(field)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *ValueController) listFieldsWithValuesGrouped() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, entityID, err := parseEntityPath(r)
		if err != nil {
			http.Error(w, invalidEntityErrMessage, http.StatusBadRequest)
			return
		}

		buckets, err := c.service.FieldsWithValuesGrouped(r.Context(), entityType, entityID)
		if err != nil {
			slog.Error("listing grouped fields with values", slog.String("error", err.Error()))
			http.Error(w, listValuesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.GroupedValuesResponse, len(buckets))
		for i, bucket := range buckets {
			fields := make([]internal.FieldWithValueResponse, len(bucket.Items))
			for j, field := range bucket.Items {
				fields[j] = internal.ToFieldWithValueResponse(field)
			}
			responses[i] = internal.GroupedValuesResponse{
				Group:  internal.ToFieldGroupResponse(bucket.Group),
				Fields: fields,
			}
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *ValueController) saveValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, entityID, err := parseEntityPath(r)
		if err != nil {
			http.Error(w, invalidEntityErrMessage, http.StatusBadRequest)
			return
		}

		var body internal.FieldValueBatchRequest
		err = httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding save values request", slog.String("error", err.Error()))
			http.Error(w, saveValuesErrMessage, http.StatusBadRequest)
			return
		}

		actor := domain.ActorID(httpserver.ActorFromRequest(r))

		values, err := c.service.SaveValues(r.Context(), body.ToWrites(entityType, entityID), actor)
		if errors.Is(err, usecases.ErrEmptyBatch) {
			http.Error(w, emptyValuesErrMessage, http.StatusBadRequest)
			return
		}
		if errors.Is(err, usecases.ErrDefinitionNotFound) {
			http.Error(w, valueDefinitionErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("saving field values", slog.String("error", err.Error()))
			http.Error(w, saveValuesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FieldValueResponse, len(values))
		for i, value := range values {
			responses[i] = internal.ToFieldValueResponse(value)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func parseEntityPath(r *http.Request) (string, int64, error) {
	entityType := r.PathValue("entityType")
	if entityType == "" {
		return "", 0, errors.New("entity type is required")
	}

	entityID, err := strconv.ParseInt(r.PathValue("entityId"), 10, 64)
	if err != nil {
		return "", 0, err
	}
	if entityID < 0 {
		return "", 0, strconv.ErrRange
	}

	return entityType, entityID, nil
}
