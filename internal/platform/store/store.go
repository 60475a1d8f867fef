// Package store implements the JSON-document record store. The whole store
// is loaded once at startup, held in memory as the source of truth, and the
// entire document is rewritten after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	fundamentalsentity "scorecard_backend/internal/feature/fundamentals/domain/entity"
	growthentity "scorecard_backend/internal/feature/growth/domain/entity"
	recordsentity "scorecard_backend/internal/feature/records/domain/entity"
	riskentity "scorecard_backend/internal/feature/risk/domain/entity"
)

// Store is the process-wide record keeper. A single mutex serializes
// mutate+persist so overlapping requests cannot lose each other's writes.
type Store struct {
	path string

	mu   sync.Mutex
	data map[string]*recordsentity.UserRecord
}

// Open loads the durable document at path, or starts empty when it does not
// exist yet. Any other read or decode failure is returned as-is; starting
// with a half-read document would risk silently dropping user data on the
// next persist.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]*recordsentity.UserRecord),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store document: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decode store document %s: %w", path, err)
	}
	return s, nil
}

// userLocked returns the record for a user, creating an empty one on first
// write. Callers must hold mu.
func (s *Store) userLocked(user string) *recordsentity.UserRecord {
	rec, ok := s.data[user]
	if !ok {
		rec = recordsentity.NewUserRecord()
		s.data[user] = rec
	}
	return rec
}

// companyLocked returns the company record for a user, creating it on first
// write. Callers must hold mu.
func (s *Store) companyLocked(user, company string) *recordsentity.CompanyRecord {
	u := s.userLocked(user)
	rec, ok := u.Companies[company]
	if !ok {
		rec = &recordsentity.CompanyRecord{}
		u.Companies[company] = rec
	}
	return rec
}

// UpsertGrowth merges a growth result into the company's record, preserving
// any fundamentals sub-record, then rewrites the document.
func (s *Store) UpsertGrowth(ctx context.Context, user, company string, res growthentity.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.companyLocked(user, company).Growth = &res
	return s.persistLocked()
}

// UpsertFundamentals merges a fundamentals result into the company's record,
// preserving any growth sub-record, then rewrites the document.
func (s *Store) UpsertFundamentals(ctx context.Context, user, company string, res fundamentalsentity.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.companyLocked(user, company).Company = &res
	return s.persistLocked()
}

// UpsertRisk sets the user-level risk profile, then rewrites the document.
// The profile is a sibling of the company records, never nested under one.
func (s *Store) UpsertRisk(ctx context.Context, user string, profile riskentity.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userLocked(user).Risk = &profile
	return s.persistLocked()
}

// ListCompanies returns the names of all companies with any saved record for
// the user, sorted for a stable order. Unknown users yield an empty list.
func (s *Store) ListCompanies(ctx context.Context, user string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.data[user]
	if !ok {
		return []string{}, nil
	}
	names := make([]string, 0, len(rec.Companies))
	for name := range rec.Companies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Get returns a copy of the company's record and whether one exists.
// Absent users or companies are reported via the bool, never as an error.
func (s *Store) Get(ctx context.Context, user, company string) (recordsentity.CompanyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.data[user]
	if !ok {
		return recordsentity.CompanyRecord{}, false, nil
	}
	c, ok := rec.Companies[company]
	if !ok {
		return recordsentity.CompanyRecord{}, false, nil
	}
	return *c, true, nil
}

// Delete removes both sub-records for the company. Deleting an unknown user
// or company is a no-op; the document is rewritten only when something was
// actually removed. The user's risk profile is never touched.
func (s *Store) Delete(ctx context.Context, user, company string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.data[user]
	if !ok {
		return false, nil
	}
	if _, ok := rec.Companies[company]; !ok {
		return false, nil
	}
	delete(rec.Companies, company)
	if err := s.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// persistLocked serializes the whole store and fully replaces the document.
// The write is not atomic; a crash mid-write can corrupt the file. Callers
// must hold mu.
func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "    ")
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write store document %s: %w", s.path, err)
	}
	return nil
}
