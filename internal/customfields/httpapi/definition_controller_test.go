package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"settings-server/internal/customfields/httpapi"
	httpapi_internal "settings-server/internal/customfields/httpapi/internal"
	"settings-server/internal/customfields/persistence"
	"settings-server/internal/customfields/usecases"
	"settings-server/internal/infra/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DefinitionController", func() {
	var router *http.ServeMux
	var recorder *httptest.ResponseRecorder

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

		orm, err := sql.NewMemoryORM()
		Expect(err).NotTo(HaveOccurred())
		groups, err := persistence.NewGroupRepository(orm)
		Expect(err).NotTo(HaveOccurred())
		definitions, err := persistence.NewDefinitionRepository(orm)
		Expect(err).NotTo(HaveOccurred())
		options, err := persistence.NewOptionRepository(orm)
		Expect(err).NotTo(HaveOccurred())
		values, err := persistence.NewValueRepository(orm)
		Expect(err).NotTo(HaveOccurred())

		optionService := usecases.NewOptionService(options, definitions, values)
		definitionService := usecases.NewDefinitionService(definitions, groups, values, optionService, options)
		controller := httpapi.NewDefinitionController(definitionService, optionService)

		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	saveDefinition := func(body string) *httptest.ResponseRecorder {
		request := httptest.NewRequest("POST", "/v1/custom-fields/definitions", bytes.NewBufferString(body))
		request.Header.Set("X-User-ID", "42")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)
		return response
	}

	Context("checkFieldName", func() {
		It("should report conflicts case-insensitively", func() {
			created := saveDefinition(`{"entity_type":"customer","name":"phone","field_type":"text","is_active":true,"is_visible":true}`)
			Expect(created.Code).To(Equal(http.StatusCreated))

			request := httptest.NewRequest("GET", "/v1/custom-fields/definitions/check-name/CUSTOMER/Phone", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body httpapi_internal.NameCheckResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Exists).To(BeTrue())
		})

		When("no definition carries the name", func() {
			It("should report no conflict", func() {
				request := httptest.NewRequest("GET", "/v1/custom-fields/definitions/check-name/customer/phone", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var body httpapi_internal.NameCheckResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
				Expect(body.Exists).To(BeFalse())
			})
		})

		When("the only match is the excluded record", func() {
			It("should report no conflict", func() {
				created := saveDefinition(`{"entity_type":"customer","name":"phone","field_type":"text","is_active":true,"is_visible":true}`)
				var stored httpapi_internal.FieldDefinitionResponse
				Expect(json.Unmarshal(created.Body.Bytes(), &stored)).To(Succeed())

				request := httptest.NewRequest("GET", "/v1/custom-fields/definitions/check-name/customer/phone?exclude_id=1", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var body httpapi_internal.NameCheckResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
				Expect(body.Exists).To(BeFalse())
			})
		})
	})
})
