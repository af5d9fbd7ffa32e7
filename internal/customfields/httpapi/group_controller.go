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
	listGroupsErrMessage      = "failed to list field groups"
	getGroupErrMessage        = "failed to get field group"
	saveGroupErrMessage       = "failed to save field group"
	deleteGroupErrMessage     = "failed to delete field group"
	reorderGroupsErrMessage   = "failed to reorder field groups"
	checkGroupNameErrMessage  = "failed to check field group name"
	groupNotFoundErrMessage   = "field group not found"
	groupDuplicatedErrMessage = "field group name already exists for entity type"
	invalidIDErrMessage       = "id must be a positive integer"
	emptyReorderErrMessage    = "reorder requires at least one id"
)

func NewGroupController(service usecases.GroupService) *GroupController {
	return &GroupController{
		service: service,
	}
}

var _ httpserver.Controller = &GroupController{}

type GroupController struct {
	service usecases.GroupService
}

func (c *GroupController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/custom-fields/groups", c.listGroups())
	router.Handle("POST /v1/custom-fields/groups", c.saveGroup())
	router.Handle("PUT /v1/custom-fields/groups/sort-order", c.reorderGroups())
	router.Handle("GET /v1/custom-fields/groups/check-name/{entityType}/{name}", c.checkGroupName())
	router.Handle("GET /v1/custom-fields/groups/{id}", c.getGroup())
	router.Handle("DELETE /v1/custom-fields/groups/{id}", c.deleteGroup())
}

func (c *GroupController) listGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType := httpserver.GetQueryParam(r, "entity_type")

		groups, err := c.service.ListGroups(r.Context(), entityType)
		if err != nil {
			slog.Error("listing field groups", slog.String("error", err.Error()))
			http.Error(w, listGroupsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FieldGroupResponse, len(groups))
		for i, group := range groups {
			responses[i] = internal.ToFieldGroupResponse(group)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *GroupController) getGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		group, err := c.service.GetGroup(r.Context(), id)
		if errors.Is(err, usecases.ErrGroupNotFound) {
			http.Error(w, groupNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting field group", slog.String("error", err.Error()))
			http.Error(w, getGroupErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldGroupResponse(group))
	}
}

func (c *GroupController) checkGroupName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		excludeID, err := parseExcludeID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		exists, err := c.service.GroupNameExists(r.Context(), r.PathValue("entityType"), r.PathValue("name"), excludeID)
		if err != nil {
			slog.Error("checking field group name", slog.String("error", err.Error()))
			http.Error(w, checkGroupNameErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.NameCheckResponse{Exists: exists})
	}
}

func (c *GroupController) saveGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FieldGroupSaveRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding save group request", slog.String("error", err.Error()))
			http.Error(w, saveGroupErrMessage, http.StatusBadRequest)
			return
		}

		actor := domain.ActorID(httpserver.ActorFromRequest(r))

		group, err := c.service.SaveGroup(r.Context(), body.ToDomain(), actor)
		if errors.Is(err, usecases.ErrGroupNameTaken) {
			http.Error(w, groupDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrGroupNotFound) {
			http.Error(w, groupNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("saving field group", slog.String("error", err.Error()))
			http.Error(w, saveGroupErrMessage, http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if body.ID == 0 {
			status = http.StatusCreated
		}
		httpserver.ReplyJSONResponse(w, status, internal.ToFieldGroupResponse(group))
	}
}

func (c *GroupController) deleteGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		actor := domain.ActorID(httpserver.ActorFromRequest(r))

		err = c.service.DeleteGroup(r.Context(), id, actor)
		if errors.Is(err, usecases.ErrGroupNotFound) {
			http.Error(w, groupNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting field group", slog.String("error", err.Error()))
			http.Error(w, deleteGroupErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *GroupController) reorderGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ReorderRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding reorder groups request", slog.String("error", err.Error()))
			http.Error(w, reorderGroupsErrMessage, http.StatusBadRequest)
			return
		}

		actor := domain.ActorID(httpserver.ActorFromRequest(r))

		err = c.service.ReorderGroups(r.Context(), body.ToIDs(), actor)
		if errors.Is(err, usecases.ErrEmptyReorder) {
			http.Error(w, emptyReorderErrMessage, http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("reordering field groups", slog.String("error", err.Error()))
			http.Error(w, reorderGroupsErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func parsePathID(r *http.Request) (domain.ID, error) {
	raw, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if raw <= 0 {
		return 0, strconv.ErrRange
	}
	return domain.ID(raw), nil
}

// parseExcludeID reads the optional exclude_id query parameter; zero means
// no record is excluded from the check.
func parseExcludeID(r *http.Request) (domain.ID, error) {
	raw := httpserver.GetQueryParam(r, "exclude_id")
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, strconv.ErrRange
	}
	return domain.ID(id), nil
}
