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

var _ = Describe("GroupController", func() {
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

		controller := httpapi.NewGroupController(usecases.NewGroupService(groups, definitions))

		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	saveGroup := func(body string) *httptest.ResponseRecorder {
		request := httptest.NewRequest("POST", "/v1/custom-fields/groups", bytes.NewBufferString(body))
		request.Header.Set("X-User-ID", "42")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)
		return response
	}

	Context("saveGroup", func() {
		When("creating a new group", func() {
			It("should return 201 with the stored record", func() {
				response := saveGroup(`{"entity_type":"customer","name":"contact","display_name":"Contact","sort_order":10,"is_active":true}`)

				Expect(response.Code).To(Equal(http.StatusCreated))

				var body httpapi_internal.FieldGroupResponse
				Expect(json.Unmarshal(response.Body.Bytes(), &body)).To(Succeed())
				Expect(body.ID).NotTo(BeZero())
				Expect(body.Name).To(Equal("contact"))
				Expect(body.CreatedBy).To(Equal(int64(42)))
			})
		})

		When("the name is already taken for the entity type", func() {
			It("should return 409", func() {
				Expect(saveGroup(`{"entity_type":"customer","name":"contact","is_active":true}`).Code).To(Equal(http.StatusCreated))

				response := saveGroup(`{"entity_type":"Customer","name":"Contact","is_active":true}`)
				Expect(response.Code).To(Equal(http.StatusConflict))
			})
		})

		When("updating an existing group", func() {
			It("should return 200", func() {
				created := saveGroup(`{"entity_type":"customer","name":"contact","is_active":true}`)
				var stored httpapi_internal.FieldGroupResponse
				Expect(json.Unmarshal(created.Body.Bytes(), &stored)).To(Succeed())

				payload, err := json.Marshal(httpapi_internal.FieldGroupSaveRequest{
					ID:         stored.ID,
					EntityType: "customer",
					Name:       "contact",
					SortOrder:  99,
					IsActive:   true,
				})
				Expect(err).NotTo(HaveOccurred())

				response := saveGroup(string(payload))
				Expect(response.Code).To(Equal(http.StatusOK))
			})
		})

		When("the body is not valid JSON", func() {
			It("should return 400", func() {
				Expect(saveGroup(`{not json`).Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("listGroups", func() {
		It("should filter by entity type", func() {
			Expect(saveGroup(`{"entity_type":"customer","name":"contact","is_active":true}`).Code).To(Equal(http.StatusCreated))
			Expect(saveGroup(`{"entity_type":"supplier","name":"billing","is_active":true}`).Code).To(Equal(http.StatusCreated))

			request := httptest.NewRequest("GET", "/v1/custom-fields/groups?entity_type=customer", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body []httpapi_internal.FieldGroupResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveLen(1))
			Expect(body[0].EntityType).To(Equal("customer"))
		})
	})

	Context("getGroup", func() {
		When("the group does not exist", func() {
			It("should return 404", func() {
				request := httptest.NewRequest("GET", "/v1/custom-fields/groups/999", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not a positive integer", func() {
			It("should return 400", func() {
				request := httptest.NewRequest("GET", "/v1/custom-fields/groups/banana", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("checkGroupName", func() {
		It("should report conflicts case-insensitively", func() {
			Expect(saveGroup(`{"entity_type":"customer","name":"contact","is_active":true}`).Code).To(Equal(http.StatusCreated))

			request := httptest.NewRequest("GET", "/v1/custom-fields/groups/check-name/CUSTOMER/Contact", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body httpapi_internal.NameCheckResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Exists).To(BeTrue())
		})

		When("the only match is the excluded record", func() {
			It("should report no conflict", func() {
				created := saveGroup(`{"entity_type":"customer","name":"contact","is_active":true}`)
				var stored httpapi_internal.FieldGroupResponse
				Expect(json.Unmarshal(created.Body.Bytes(), &stored)).To(Succeed())

				request := httptest.NewRequest("GET", "/v1/custom-fields/groups/check-name/customer/contact?exclude_id=1", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var body httpapi_internal.NameCheckResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
				Expect(body.Exists).To(BeFalse())
			})
		})

		When("the exclude id is not numeric", func() {
			It("should return 400", func() {
				request := httptest.NewRequest("GET", "/v1/custom-fields/groups/check-name/customer/contact?exclude_id=banana", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("deleteGroup", func() {
		It("should return 204 and remove the record", func() {
			created := saveGroup(`{"entity_type":"customer","name":"contact","is_active":true}`)
			var stored httpapi_internal.FieldGroupResponse
			Expect(json.Unmarshal(created.Body.Bytes(), &stored)).To(Succeed())

			request := httptest.NewRequest("DELETE", "/v1/custom-fields/groups/1", nil)
			router.ServeHTTP(recorder, request)
			Expect(recorder.Code).To(Equal(http.StatusNoContent))

			check := httptest.NewRecorder()
			router.ServeHTTP(check, httptest.NewRequest("GET", "/v1/custom-fields/groups/1", nil))
			Expect(check.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("reorderGroups", func() {
		It("should return 204 and apply the new order", func() {
			Expect(saveGroup(`{"entity_type":"customer","name":"a","sort_order":10,"is_active":true}`).Code).To(Equal(http.StatusCreated))
			Expect(saveGroup(`{"entity_type":"customer","name":"b","sort_order":20,"is_active":true}`).Code).To(Equal(http.StatusCreated))

			request := httptest.NewRequest("PUT", "/v1/custom-fields/groups/sort-order", bytes.NewBufferString(`{"ids":[2,1]}`))
			router.ServeHTTP(recorder, request)
			Expect(recorder.Code).To(Equal(http.StatusNoContent))

			list := httptest.NewRecorder()
			router.ServeHTTP(list, httptest.NewRequest("GET", "/v1/custom-fields/groups?entity_type=customer", nil))

			var body []httpapi_internal.FieldGroupResponse
			Expect(json.Unmarshal(list.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveLen(2))
			Expect(body[0].Name).To(Equal("b"))
			Expect(body[1].Name).To(Equal("a"))
		})

		When("the id list is empty", func() {
			It("should return 400", func() {
				request := httptest.NewRequest("PUT", "/v1/custom-fields/groups/sort-order", bytes.NewBufferString(`{"ids":[]}`))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})
})
