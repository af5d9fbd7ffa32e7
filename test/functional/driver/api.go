package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) CreateGroup(entityType, name string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"entity_type":  entityType,
		"name":         name,
		"display_name": name,
		"is_active":    true,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/custom-fields/groups", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetGroup(id int64) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/custom-fields/groups/%d", d.baseURL, id))
}

func (d *APIDriver) ListGroups(entityType string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/custom-fields/groups?entity_type=%s", d.baseURL, entityType))
}

func (d *APIDriver) DeleteGroup(id int64) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/custom-fields/groups/%d", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CreateDefinition(entityType, name, fieldType string, groupID *int64, options []map[string]any) (*http.Response, error) {
	body := map[string]any{
		"entity_type":  entityType,
		"name":         name,
		"display_name": name,
		"field_type":   fieldType,
		"is_active":    true,
		"is_visible":   true,
	}
	if groupID != nil {
		body["group_id"] = *groupID
	}
	if len(options) > 0 {
		body["options"] = options
	}

	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/custom-fields/definitions", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) ListDefinitionsGrouped(entityType string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/custom-fields/definitions/grouped?entity_type=%s", d.baseURL, entityType))
}

func (d *APIDriver) SaveValues(entityType string, entityID int64, values []map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"values": values})
	if err != nil {
		panic(err)
	}
	return d.client.Post(
		fmt.Sprintf("%s/v1/custom-fields/entities/%s/%d/values", d.baseURL, entityType, entityID),
		"application/json",
		bytes.NewBuffer(reqBody),
	)
}

func (d *APIDriver) GetFieldsWithValues(entityType string, entityID int64) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/custom-fields/entities/%s/%d/fields", d.baseURL, entityType, entityID))
}
