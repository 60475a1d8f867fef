// Package dto defines data transfer objects for the records feature's HTTP transport layer.
package dto

import "scorecard_backend/internal/feature/records/domain/entity"

// ListResp carries the user's saved company names.
type ListResp struct {
	Companies []string `json:"companies"`
}

// DetailResp is one company's saved record. The record is nested rather than
// embedded because its "company" sub-record key would collide with the
// company name field.
type DetailResp struct {
	Company string               `json:"company"`
	Record  entity.CompanyRecord `json:"record"`
}
