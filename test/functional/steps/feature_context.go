package steps

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"settings-server/internal/customfields/httpapi"
	"settings-server/internal/customfields/persistence"
	"settings-server/internal/customfields/usecases"
	"settings-server/internal/infra/sql"
	"settings-server/test/functional/driver"

	"github.com/cucumber/godog"
)

// FeatureContext drives the HTTP API of an in-process server instance
// backed by an in-memory database.
type FeatureContext struct {
	server       *httptest.Server
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	responseList []map[string]any
	groupID      int64
	definitions  map[string]int64
	entityType   string
}

func NewFeatureContext() *FeatureContext {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	server := startServer()
	return &FeatureContext{
		server:      server,
		apiDriver:   driver.NewAPIDriver(server.URL),
		definitions: make(map[string]int64),
	}
}

func (fc *FeatureContext) Close() {
	fc.server.Close()
}

func startServer() *httptest.Server {
	orm, err := sql.NewMemoryORM()
	if err != nil {
		panic(err)
	}

	groups, err := persistence.NewGroupRepository(orm)
	if err != nil {
		panic(err)
	}
	definitions, err := persistence.NewDefinitionRepository(orm)
	if err != nil {
		panic(err)
	}
	options, err := persistence.NewOptionRepository(orm)
	if err != nil {
		panic(err)
	}
	values, err := persistence.NewValueRepository(orm)
	if err != nil {
		panic(err)
	}

	optionService := usecases.NewOptionService(options, definitions, values)
	definitionService := usecases.NewDefinitionService(definitions, groups, values, optionService, options)
	groupService := usecases.NewGroupService(groups, definitions)
	valueService := usecases.NewValueService(values, definitions, groups, definitionService)

	router := http.NewServeMux()
	httpapi.NewGroupController(groupService).AddRoutes(router)
	httpapi.NewDefinitionController(definitionService, optionService).AddRoutes(router)
	httpapi.NewValueController(valueService).AddRoutes(router)

	return httptest.NewServer(router)
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	ctx.When(`^I create a field group named "([^"]*)" for entity type "([^"]*)"$`, fc.iCreateAFieldGroup)
	ctx.Given(`^a field group named "([^"]*)" exists for entity type "([^"]*)"$`, fc.aFieldGroupExists)
	ctx.When(`^I get the field group by its id$`, fc.iGetTheFieldGroupByItsID)
	ctx.Then(`^the response should contain the group named "([^"]*)"$`, fc.theResponseShouldContainTheGroupNamed)

	ctx.When(`^I create a "([^"]*)" field named "([^"]*)" in the group$`, fc.iCreateAFieldInTheGroup)
	ctx.Given(`^a "([^"]*)" field named "([^"]*)" exists for entity type "([^"]*)"$`, fc.aFieldExists)
	ctx.When(`^I list the grouped definitions for entity type "([^"]*)"$`, fc.iListTheGroupedDefinitions)
	ctx.Then(`^the listing should contain a "([^"]*)" bucket with (\d+) fields?$`, fc.theListingShouldContainABucket)

	ctx.When(`^I save the text "([^"]*)" for field "([^"]*)" on "([^"]*)" (\d+)$`, fc.iSaveTheTextForField)
	ctx.When(`^I fetch the fields with values for "([^"]*)" (\d+)$`, fc.iFetchTheFieldsWithValues)
	ctx.Then(`^the field "([^"]*)" should carry the text "([^"]*)"$`, fc.theFieldShouldCarryTheText)
	ctx.Then(`^the field "([^"]*)" should carry no value$`, fc.theFieldShouldCarryNoValue)
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(expected int) error {
	if fc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if fc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d", expected, fc.response.StatusCode)
	}
	return nil
}

func (fc *FeatureContext) iCreateAFieldGroup(name, entityType string) error {
	response, err := fc.apiDriver.CreateGroup(entityType, name)
	if err != nil {
		return err
	}
	fc.response = response
	fc.entityType = entityType

	if response.StatusCode == http.StatusCreated {
		if err := fc.decodeObject(); err != nil {
			return err
		}
		fc.groupID = int64(fc.responseData["id"].(float64))
	}
	return nil
}

func (fc *FeatureContext) aFieldGroupExists(name, entityType string) error {
	if err := fc.iCreateAFieldGroup(name, entityType); err != nil {
		return err
	}
	return fc.theResponseStatusCodeShouldBe(http.StatusCreated)
}

func (fc *FeatureContext) iGetTheFieldGroupByItsID() error {
	response, err := fc.apiDriver.GetGroup(fc.groupID)
	if err != nil {
		return err
	}
	fc.response = response
	return fc.decodeObject()
}

func (fc *FeatureContext) theResponseShouldContainTheGroupNamed(name string) error {
	if fc.responseData["name"] != name {
		return fmt.Errorf("expected group named %q, got %v", name, fc.responseData["name"])
	}
	return nil
}

func (fc *FeatureContext) iCreateAFieldInTheGroup(fieldType, name string) error {
	groupID := fc.groupID
	response, err := fc.apiDriver.CreateDefinition(fc.entityType, name, fieldType, &groupID, nil)
	if err != nil {
		return err
	}
	fc.response = response

	if response.StatusCode == http.StatusCreated {
		if err := fc.decodeObject(); err != nil {
			return err
		}
		fc.definitions[name] = int64(fc.responseData["id"].(float64))
	}
	return nil
}

func (fc *FeatureContext) aFieldExists(fieldType, name, entityType string) error {
	response, err := fc.apiDriver.CreateDefinition(entityType, name, fieldType, nil, nil)
	if err != nil {
		return err
	}
	fc.response = response
	fc.entityType = entityType

	if err := fc.theResponseStatusCodeShouldBe(http.StatusCreated); err != nil {
		return err
	}
	if err := fc.decodeObject(); err != nil {
		return err
	}
	fc.definitions[name] = int64(fc.responseData["id"].(float64))
	return nil
}

func (fc *FeatureContext) iListTheGroupedDefinitions(entityType string) error {
	response, err := fc.apiDriver.ListDefinitionsGrouped(entityType)
	if err != nil {
		return err
	}
	fc.response = response
	return fc.decodeList()
}

func (fc *FeatureContext) theListingShouldContainABucket(groupName string, fieldCount int) error {
	for _, bucket := range fc.responseList {
		group, ok := bucket["group"].(map[string]any)
		if !ok || group["name"] != groupName {
			continue
		}
		fields, _ := bucket["fields"].([]any)
		if len(fields) != fieldCount {
			return fmt.Errorf("expected %d fields in bucket %q, got %d", fieldCount, groupName, len(fields))
		}
		return nil
	}
	return fmt.Errorf("no bucket named %q in listing", groupName)
}

func (fc *FeatureContext) iSaveTheTextForField(text, fieldName, entityType string, entityID int) error {
	definitionID, ok := fc.definitions[fieldName]
	if !ok {
		return fmt.Errorf("unknown field %q", fieldName)
	}

	response, err := fc.apiDriver.SaveValues(entityType, int64(entityID), []map[string]any{
		{"field_definition_id": definitionID, "text_value": text},
	})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iFetchTheFieldsWithValues(entityType string, entityID int) error {
	response, err := fc.apiDriver.GetFieldsWithValues(entityType, int64(entityID))
	if err != nil {
		return err
	}
	fc.response = response
	return fc.decodeList()
}

func (fc *FeatureContext) theFieldShouldCarryTheText(fieldName, text string) error {
	field, err := fc.findFieldWithValue(fieldName)
	if err != nil {
		return err
	}

	value, ok := field["value"].(map[string]any)
	if !ok {
		return fmt.Errorf("field %q carries no value", fieldName)
	}
	if value["text_value"] != text {
		return fmt.Errorf("expected text %q on field %q, got %v", text, fieldName, value["text_value"])
	}
	return nil
}

func (fc *FeatureContext) theFieldShouldCarryNoValue(fieldName string) error {
	field, err := fc.findFieldWithValue(fieldName)
	if err != nil {
		return err
	}
	if field["value"] != nil {
		return fmt.Errorf("expected no value on field %q, got %v", fieldName, field["value"])
	}
	return nil
}

func (fc *FeatureContext) findFieldWithValue(fieldName string) (map[string]any, error) {
	for _, item := range fc.responseList {
		definition, ok := item["definition"].(map[string]any)
		if ok && definition["name"] == fieldName {
			return item, nil
		}
	}
	return nil, fmt.Errorf("field %q not present in response", fieldName)
}

func (fc *FeatureContext) decodeObject() error {
	defer fc.response.Body.Close()
	fc.responseData = nil
	return json.NewDecoder(fc.response.Body).Decode(&fc.responseData)
}

func (fc *FeatureContext) decodeList() error {
	defer fc.response.Body.Close()
	fc.responseList = nil
	return json.NewDecoder(fc.response.Body).Decode(&fc.responseList)
}
