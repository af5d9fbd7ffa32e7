package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"settings-server/internal/infra/httpserver"
	"settings-server/internal/referencedata/httpapi/internal"
	"settings-server/internal/referencedata/usecases"
)

const (
	listGeneralCodesErrMessage      = "failed to list general codes"
	getGeneralCodeErrMessage        = "failed to get general code"
	saveGeneralCodeErrMessage       = "failed to save general code"
	deleteGeneralCodeErrMessage     = "failed to delete general code"
	generalCodeNotFoundErrMessage   = "general code not found"
	generalCodeDuplicatedErrMessage = "general code already exists for type, number and language"
	invalidFilterErrMessage         = "code_type must be an integer"
)

func NewGeneralCodeController(service usecases.GeneralCodeService) *GeneralCodeController {
	return &GeneralCodeController{
		service: service,
	}
}

var _ httpserver.Controller = &GeneralCodeController{}

type GeneralCodeController struct {
	service usecases.GeneralCodeService
}

func (c *GeneralCodeController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/general-codes", c.listGeneralCodes())
	router.Handle("POST /v1/general-codes", c.saveGeneralCode())
	router.Handle("GET /v1/general-codes/lookup", c.lookupGeneralCode())
	router.Handle("GET /v1/general-codes/{id}", c.getGeneralCode())
	router.Handle("DELETE /v1/general-codes/{id}", c.deleteGeneralCode())
}

func (c *GeneralCodeController) listGeneralCodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter usecases.GeneralCodeFilter
		if raw := httpserver.GetQueryParam(r, "code_type"); raw != "" {
			codeType, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, invalidFilterErrMessage, http.StatusBadRequest)
				return
			}
			filter.CodeType = &codeType
		}
		filter.LanguageCode = httpserver.GetQueryParam(r, "language_code")

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		codes, total, err := c.service.ListGeneralCodes(r.Context(), filter, pagination)
		if err != nil {
			slog.Error("listing general codes", slog.String("error", err.Error()))
			http.Error(w, listGeneralCodesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.GeneralCodeResponse, len(codes))
		for i, code := range codes {
			responses[i] = internal.ToGeneralCodeResponse(code)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *GeneralCodeController) getGeneralCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		code, err := c.service.GetGeneralCode(r.Context(), id)
		if errors.Is(err, usecases.ErrGeneralCodeNotFound) {
			http.Error(w, generalCodeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting general code", slog.String("error", err.Error()))
			http.Error(w, getGeneralCodeErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGeneralCodeResponse(code))
	}
}

func (c *GeneralCodeController) lookupGeneralCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codeType, errType := strconv.Atoi(httpserver.GetQueryParam(r, "code_type"))
		codeNumber, errNumber := strconv.Atoi(httpserver.GetQueryParam(r, "code_number"))
		languageCode := httpserver.GetQueryParam(r, "language_code")
		if errType != nil || errNumber != nil || languageCode == "" {
			http.Error(w, "code_type, code_number and language_code are required", http.StatusBadRequest)
			return
		}

		code, err := c.service.GetGeneralCodeByNaturalKey(r.Context(), codeType, codeNumber, languageCode)
		if errors.Is(err, usecases.ErrGeneralCodeNotFound) {
			http.Error(w, generalCodeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("looking up general code", slog.String("error", err.Error()))
			http.Error(w, getGeneralCodeErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGeneralCodeResponse(code))
	}
}

func (c *GeneralCodeController) saveGeneralCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.GeneralCodeSaveRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding save general code request", slog.String("error", err.Error()))
			http.Error(w, saveGeneralCodeErrMessage, http.StatusBadRequest)
			return
		}

		code, err := c.service.SaveGeneralCode(r.Context(), body.ToDomain())
		if errors.Is(err, usecases.ErrGeneralCodeDuplicated) {
			http.Error(w, generalCodeDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrGeneralCodeNotFound) {
			http.Error(w, generalCodeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("saving general code", slog.String("error", err.Error()))
			http.Error(w, saveGeneralCodeErrMessage, http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if body.ID == 0 {
			status = http.StatusCreated
		}
		httpserver.ReplyJSONResponse(w, status, internal.ToGeneralCodeResponse(code))
	}
}

func (c *GeneralCodeController) deleteGeneralCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		err = c.service.DeleteGeneralCode(r.Context(), id)
		if errors.Is(err, usecases.ErrGeneralCodeNotFound) {
			http.Error(w, generalCodeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting general code", slog.String("error", err.Error()))
			http.Error(w, deleteGeneralCodeErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
