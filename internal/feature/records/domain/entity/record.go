// Package entity defines the persisted record shapes shared by the record
// store and the records feature.
package entity

import (
	"encoding/json"

	fundamentalsentity "scorecard_backend/internal/feature/fundamentals/domain/entity"
	growthentity "scorecard_backend/internal/feature/growth/domain/entity"
	riskentity "scorecard_backend/internal/feature/risk/domain/entity"
)

// riskKey is the reserved user-level key holding the risk profile. It sits
// alongside company names in the document, so a company literally named
// "risk" cannot be stored.
const riskKey = "risk"

// CompanyRecord groups the saved evaluations for one company. Either
// sub-record may be absent; writing one never disturbs the other.
type CompanyRecord struct {
	Growth  *growthentity.Result       `json:"growth,omitempty"`
	Company *fundamentalsentity.Result `json:"company,omitempty"`
}

// Empty reports whether the record holds no evaluation at all.
func (r CompanyRecord) Empty() bool {
	return r.Growth == nil && r.Company == nil
}

// UserRecord is everything stored for one user: an optional risk profile and
// a mapping from company name to that company's record.
type UserRecord struct {
	Risk      *riskentity.Profile
	Companies map[string]*CompanyRecord
}

// NewUserRecord returns an empty record with an initialized company map.
func NewUserRecord() *UserRecord {
	return &UserRecord{Companies: make(map[string]*CompanyRecord)}
}

// MarshalJSON flattens the record into a single object where the risk
// profile lives under the reserved "risk" key, sibling to the company keys.
// This matches the durable document layout exactly.
func (u UserRecord) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(u.Companies)+1)
	for name, rec := range u.Companies {
		doc[name] = rec
	}
	if u.Risk != nil {
		doc[riskKey] = u.Risk
	}
	return json.Marshal(doc)
}

// UnmarshalJSON splits the flattened object back into the risk profile and
// the company map.
func (u *UserRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.Risk = nil
	u.Companies = make(map[string]*CompanyRecord, len(raw))
	for key, val := range raw {
		if key == riskKey {
			var profile riskentity.Profile
			if err := json.Unmarshal(val, &profile); err != nil {
				return err
			}
			u.Risk = &profile
			continue
		}
		var rec CompanyRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return err
		}
		u.Companies[key] = &rec
	}
	return nil
}
