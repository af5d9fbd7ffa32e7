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
	listDefinitionsErrMessage      = "failed to list field definitions"
	getDefinitionErrMessage        = "failed to get field definition"
	saveDefinitionErrMessage       = "failed to save field definition"
	deleteDefinitionErrMessage     = "failed to delete field definition"
	reorderDefinitionsErrMessage   = "failed to reorder field definitions"
	checkFieldNameErrMessage       = "failed to check field name"
	definitionNotFoundErrMessage   = "field definition not found"
	definitionDuplicatedErrMessage = "field name already exists for entity type"
	listOptionsErrMessage          = "failed to list field options"
	saveOptionsErrMessage          = "failed to save field options"
	reorderOptionsErrMessage       = "failed to reorder field options"
	emptyOptionsErrMessage         = "options batch requires at least one item"
)

func NewDefinitionController(service usecases.DefinitionService, options usecases.OptionService) *DefinitionController {
	return &DefinitionController{
		service: service,
		options: options,
	}
}

var _ httpserver.Controller = &DefinitionController{}

type DefinitionController struct {
	service usecases.DefinitionService
	options usecases.OptionService
}

func (c *DefinitionController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/custom-fields/definitions", c.listDefinitions())
	router.Handle("POST /v1/custom-fields/definitions", c.saveDefinition())
	router.Handle("GET /v1/custom-fields/definitions/grouped", c.listDefinitionsGrouped())
	router.Handle("PUT /v1/custom-fields/definitions/sort-order", c.reorderDefinitions())
	router.Handle("PUT /v1/custom-fields/definitions/options/sort-order", c.reorderOptions())
	router.Handle("GET /v1/custom-fields/definitions/check-name/{entityType}/{name}", c.checkFieldName())
	router.Handle("GET /v1/custom-fields/definitions/{id}", c.getDefinition())
	router.Handle("DELETE /v1/custom-fields/definitions/{id}", c.deleteDefinition())
	router.Handle("GET /v1/custom-fields/definitions/{id}/options", c.listOptions())
	router.Handle("PUT /v1/custom-fields/definitions/{id}/options", c.saveOptions())
}

func (c *DefinitionController) listDefinitions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var (
			definitions []domain.FieldDefinition
			err         error
		)
		switch {
		case httpserver.GetQueryParam(r, "group_id") != "":
			groupID, parseErr := strconv.ParseInt(httpserver.GetQueryParam(r, "group_id"), 10, 64)
			if parseErr != nil {
				http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
				return
			}
			definitions, err = c.service.ListDefinitionsByGroup(ctx, domain.ID(groupID))
		case httpserver.GetQueryParam(r, "entity_type") != "":
			definitions, err = c.service.ListDefinitionsByEntityType(ctx, httpserver.GetQueryParam(r, "entity_type"))
		default:
			definitions, err = c.service.ListDefinitions(ctx)
		}
		if err != nil {
			slog.Error("listing field definitions", slog.String("error", err.Error()))
			http.Error(w, listDefinitionsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FieldDefinitionResponse, len(definitions))
		for i, definition := range definitions {
			responses[i] = internal.ToFieldDefinitionResponse(definition)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *DefinitionController) listDefinitionsGrouped() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType := httpserver.GetQueryParam(r, "entity_type")

		buckets, err := c.service.ListDefinitionsGrouped(r.Context(), entityType)
		if err != nil {
			slog.Error("listing grouped field definitions", slog.String("error", err.Error()))
			http.Error(w, listDefinitionsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.GroupedDefinitionsResponse, len(buckets))
		for i, bucket := range buckets {
			fields := make([]internal.FieldDefinitionResponse, len(bucket.Items))
			for j, definition := range bucket.Items {
				fields[j] = internal.ToFieldDefinitionResponse(definition)
			}
			responses[i] = internal.GroupedDefinitionsResponse{
				Group:  internal.ToFieldGroupResponse(bucket.Group),
				Fields: fields,
			}
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *DefinitionController) getDefinition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		definition, err := c.service.GetDefinition(r.Context(), id)
		if errors.Is(err, usecases.ErrDefinitionNotFound) {
			http.Error(w, definitionNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting field definition", slog.String("error", err.Error()))
			http.Error(w, getDefinitionErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldDefinitionResponse(definition))
	}
}

func (c *DefinitionController) checkFieldName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		excludeID, err := parseExcludeID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		exists, err := c.service.FieldNameExists(r.Context(), r.PathValue("entityType"), r.PathValue("name"), excludeID)
		if err != nil {
			slog.Error("checking field name", slog.String("error", err.Error()))
			http.Error(w, checkFieldNameErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.NameCheckResponse{Exists: exists})
	}
}

func (c *DefinitionController) saveDefinition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FieldDefinitionSaveRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding save definition request", slog.String("error", err.Error()))
			http.Error(w, saveDefinitionErrMessage, http.StatusBadRequest)
			return
		}

		actor := domain.ActorID(httpserver.ActorFromRequest(r))

		definition, err := c.service.SaveDefinition(r.Context(), body.ToDomain(), actor)
		if errors.Is(err, usecases.ErrFieldNameTaken) {
			http.Error(w, definitionDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrDefinitionNotFound) {
			http.Error(w, definitionNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrGroupNotFound) {
			http.Error(w, groupNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("saving field definition", slog.String("error", err.Error()))
			http.Error(w, saveDefinitionErrMessage, http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if body.ID == 0 {
			status = http.StatusCreated
		}
		httpserver.ReplyJSONResponse(w, status, internal.ToFieldDefinitionResponse(definition))
	}
}

func (c *DefinitionController) deleteDefinition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		actor := domain.ActorID(httpserver.ActorFromRequest(r))

		err = c.service.DeleteDefinition(r.Context(), id, actor)
		if errors.Is(err, usecases.ErrDefinitionNotFound) {
			http.Error(w, definitionNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting field definition", slog.String("error", err.Error()))
			http.Error(w, deleteDefinitionErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *DefinitionController) reorderDefinitions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ReorderRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding reorder definitions request", slog.String("error", err.Error()))
			http.Error(w, reorderDefinitionsErrMessage, http.StatusBadRequest)
			return
		}

		actor := domain.ActorID(httpserver.ActorFromRequest(r))

		err = c.service.ReorderDefinitions(r.Context(), body.ToIDs(), actor)
		if errors.Is(err, usecases.ErrEmptyReorder) {
			http.Error(w, emptyReorderErrMessage, http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("reordering field definitions", slog.String("error", err.Error()))
			http.Error(w, reorderDefinitionsErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *DefinitionController) listOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		options, err := c.options.ListOptions(r.Context(), id)
		if err != nil {
			slog.Error("listing field options", slog.String("error", err.Error()))
			http.Error(w, listOptionsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FieldOptionResponse, len(options))
		for i, option := range options {
			responses[i] = internal.ToFieldOptionResponse(option)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *DefinitionController) saveOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		var body []internal.FieldOptionSaveRequest
		err = httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding save options request", slog.String("error", err.Error()))
			http.Error(w, saveOptionsErrMessage, http.StatusBadRequest)
			return
		}

		desired := make([]domain.FieldOption, len(body))
		for i, option := range body {
			desired[i] = option.ToDomain()
		}

		actor := domain.ActorID(httpserver.ActorFromRequest(r))

		options, err := c.options.ReconcileOptions(r.Context(), id, desired, actor)
		if errors.Is(err, usecases.ErrEmptyBatch) {
			http.Error(w, emptyOptionsErrMessage, http.StatusBadRequest)
			return
		}
		if errors.Is(err, usecases.ErrDefinitionNotFound) {
			http.Error(w, definitionNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("reconciling field options", slog.String("error", err.Error()))
			http.Error(w, saveOptionsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FieldOptionResponse, len(options))
		for i, option := range options {
			responses[i] = internal.ToFieldOptionResponse(option)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *DefinitionController) reorderOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ReorderRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding reorder options request", slog.String("error", err.Error()))
			http.Error(w, reorderOptionsErrMessage, http.StatusBadRequest)
			return
		}

		actor := domain.ActorID(httpserver.ActorFromRequest(r))

		err = c.options.ReorderOptions(r.Context(), body.ToIDs(), actor)
		if errors.Is(err, usecases.ErrEmptyReorder) {
			http.Error(w, emptyReorderErrMessage, http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("reordering field options", slog.String("error", err.Error()))
			http.Error(w, reorderOptionsErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
