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
	listCountriesErrMessage     = "failed to list countries"
	getCountryErrMessage        = "failed to get country"
	saveCountryErrMessage       = "failed to save country"
	deleteCountryErrMessage     = "failed to delete country"
	countryNotFoundErrMessage   = "country not found"
	countryDuplicatedErrMessage = "country code or name already exists"
	invalidIDErrMessage         = "id must be a positive integer"
)

func NewCountryController(service usecases.CountryService) *CountryController {
	return &CountryController{
		service: service,
	}
}

var _ httpserver.Controller = &CountryController{}

type CountryController struct {
	service usecases.CountryService
}

func (c *CountryController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/countries", c.listCountries())
	router.Handle("POST /v1/countries", c.saveCountry())
	router.Handle("GET /v1/countries/{id}", c.getCountry())
	router.Handle("DELETE /v1/countries/{id}", c.deleteCountry())
}

func (c *CountryController) listCountries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		countries, total, err := c.service.ListCountries(r.Context(), pagination)
		if err != nil {
			slog.Error("listing countries", slog.String("error", err.Error()))
			http.Error(w, listCountriesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.CountryResponse, len(countries))
		for i, country := range countries {
			responses[i] = internal.ToCountryResponse(country)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *CountryController) getCountry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		country, err := c.service.GetCountry(r.Context(), id)
		if errors.Is(err, usecases.ErrCountryNotFound) {
			http.Error(w, countryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting country", slog.String("error", err.Error()))
			http.Error(w, getCountryErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCountryResponse(country))
	}
}

func (c *CountryController) saveCountry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CountrySaveRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding save country request", slog.String("error", err.Error()))
			http.Error(w, saveCountryErrMessage, http.StatusBadRequest)
			return
		}

		country, err := c.service.SaveCountry(r.Context(), body.ToDomain())
		if errors.Is(err, usecases.ErrCountryDuplicated) {
			http.Error(w, countryDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrCountryNotFound) {
			http.Error(w, countryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("saving country", slog.String("error", err.Error()))
			http.Error(w, saveCountryErrMessage, http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if body.ID == 0 {
			status = http.StatusCreated
		}
		httpserver.ReplyJSONResponse(w, status, internal.ToCountryResponse(country))
	}
}

func (c *CountryController) deleteCountry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r)
		if err != nil {
			http.Error(w, invalidIDErrMessage, http.StatusBadRequest)
			return
		}

		err = c.service.DeleteCountry(r.Context(), id)
		if errors.Is(err, usecases.ErrCountryNotFound) {
			http.Error(w, countryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting country", slog.String("error", err.Error()))
			http.Error(w, deleteCountryErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func parsePathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
