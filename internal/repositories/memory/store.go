// Package memory provides in-process implementations of every repository port.
// All state lives behind a single lock, so the multi-entity writes (disposal,
// maintenance, depreciation supersession) are atomic.
package memory

import (
	"sort"
	"sync"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
)

type entry[T any] struct {
	seq   int64
	value T
}

// Store keeps all ledger entities in maps keyed by id.
type Store struct {
	mu  sync.RWMutex
	seq int64

	assets       map[string]entry[domain.Asset]
	categories   map[string]entry[domain.Category]
	credits      map[string]entry[domain.TaxCreditCalculation]
	depreciation map[string]entry[domain.DepreciationCalculation]
	disposals    map[string]entry[domain.DisposalRecord]
	maintenance  map[string]entry[domain.MaintenanceRecord]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		assets:       make(map[string]entry[domain.Asset]),
		categories:   make(map[string]entry[domain.Category]),
		credits:      make(map[string]entry[domain.TaxCreditCalculation]),
		depreciation: make(map[string]entry[domain.DepreciationCalculation]),
		disposals:    make(map[string]entry[domain.DisposalRecord]),
		maintenance:  make(map[string]entry[domain.MaintenanceRecord]),
	}
}

// NewRepositoryProvider wires a fresh store into every repository slot.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	s := NewStore()
	return s.Provider()
}

// Provider exposes the store through the repository ports.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:        s,
		CategoryRepo:     s,
		TaxCreditRepo:    s,
		DepreciationRepo: s,
		DisposalRepo:     s,
		MaintenanceRepo:  s,
	}
}

// next must be called with the write lock held.
func (s *Store) next() int64 {
	s.seq++
	return s.seq
}

// sortedValues returns the map values in insertion order, filtered by keep and
// deep-copied with clone.
func sortedValues[T any](m map[string]entry[T], keep func(T) bool, clone func(T) T) []T {
	entries := make([]entry[T], 0, len(m))
	for _, e := range m {
		if keep == nil || keep(e.value) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]T, 0, len(entries))
	for _, e := range entries {
		out = append(out, clone(e.value))
	}
	return out
}

var (
	_ portsrepo.AssetRepositoryFacade        = (*Store)(nil)
	_ portsrepo.CategoryRepositoryFacade     = (*Store)(nil)
	_ portsrepo.TaxCreditRepositoryFacade    = (*Store)(nil)
	_ portsrepo.DepreciationRepositoryFacade = (*Store)(nil)
	_ portsrepo.DisposalRepositoryFacade     = (*Store)(nil)
	_ portsrepo.MaintenanceRepositoryFacade  = (*Store)(nil)
)
