// Package state is the single source of truth for the active region and the
// in-flight order/ride drafts. Mutators replace whole session snapshots, so a
// version compare is enough to notice any change.
package state

import (
	"log"
	"strings"
	"sync"

	"clampacked-backend/catalog"
	"clampacked-backend/models"
)

// RegionStorage persists the one durable datum, the chosen region id. Any
// key/value backend that can hold a string satisfies it.
type RegionStorage interface {
	LoadActiveRegion() (string, error)
	SaveActiveRegion(id string) error
}

// Store holds the active region and all live session snapshots.
type Store struct {
	mu       sync.RWMutex
	region   *models.Region
	sessions map[string]models.Session
	storage  RegionStorage
}

// NewStore returns a store on the default region. Pass nil storage to run
// without persistence (tests, demo mode).
func NewStore(storage RegionStorage) *Store {
	return &Store{
		region:   catalog.DefaultRegion(),
		sessions: make(map[string]models.Session),
		storage:  storage,
	}
}

// LoadPersisted adopts the persisted region selection if one exists and still
// resolves in the catalog. A failed read is the same as no stored value: the
// default region stands. Intended to run in a goroutine at startup so the
// first requests are never blocked on storage.
func (s *Store) LoadPersisted() {
	if s.storage == nil {
		return
	}
	id, err := s.storage.LoadActiveRegion()
	if err != nil || strings.TrimSpace(id) == "" {
		return
	}
	region, ok := catalog.GetRegion(id)
	if !ok {
		log.Printf("Persisted region %q no longer in catalog, keeping default", id)
		return
	}
	s.mu.Lock()
	s.region = region
	s.mu.Unlock()
}

// Region returns the active region.
func (s *Store) Region() models.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.region
}

// Session returns the snapshot for a session id, creating an empty one on
// first use.
func (s *Store) Session(id string) models.Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess = models.NewSession(id)
	s.sessions[id] = sess
	return sess
}

// update applies fn to a copy of the session snapshot and swaps it in.
func (s *Store) update(id string, fn func(*models.Session)) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = models.NewSession(id)
	}
	fn(&sess)
	sess.Version++
	s.sessions[id] = sess
	return sess
}

// SetMode records the coarse navigation context. It is a UI hint only and
// leaves both drafts alone.
func (s *Store) SetMode(sessionID string, mode models.ServiceMode) models.Session {
	return s.update(sessionID, func(sess *models.Session) {
		sess.Mode = mode
	})
}

// SetSelectedIsland records the island shortcut used by the home-screen map.
func (s *Store) SetSelectedIsland(sessionID, islandID string) models.Session {
	return s.update(sessionID, func(sess *models.Session) {
		sess.SelectedIslandID = islandID
	})
}

// SetOrderDetails merges the set fields of the patch into the order draft,
// last write wins. No validation happens here; readiness is checked when the
// order screen asks for it.
func (s *Store) SetOrderDetails(sessionID string, patch OrderPatch) models.Session {
	return s.update(sessionID, func(sess *models.Session) {
		patch.apply(&sess.Order)
		if patch.IslandID != nil {
			sess.SelectedIslandID = *patch.IslandID
		}
	})
}

// ResetOrder discards the order draft and the island shortcut. Called on
// completion, abandonment, and region switch.
func (s *Store) ResetOrder(sessionID string) models.Session {
	return s.update(sessionID, func(sess *models.Session) {
		sess.Order = models.OrderDraft{}
		sess.SelectedIslandID = ""
	})
}

// SetRideDetails merges the set fields of the patch into the ride draft.
// Passenger counts below 1 are clamped to the floor.
func (s *Store) SetRideDetails(sessionID string, patch RidePatch) models.Session {
	return s.update(sessionID, func(sess *models.Session) {
		patch.apply(&sess.Ride)
	})
}

// ResetRide restores the ride draft to its empty shape, passengers back to 1.
func (s *Store) ResetRide(sessionID string) models.Session {
	return s.update(sessionID, func(sess *models.Session) {
		sess.Ride = models.EmptyRideDraft()
	})
}

// SetRegionByID swaps the active region, persists the choice, and invalidates
// every session's drafts: island, store, and ride ids only mean something
// inside one region's namespace. An unknown id is a no-op and the previous
// region stays active.
func (s *Store) SetRegionByID(id string) (models.Region, bool) {
	region, ok := catalog.GetRegion(id)
	if !ok {
		return s.Region(), false
	}

	s.mu.Lock()
	s.region = region
	for key, sess := range s.sessions {
		sess.Order = models.OrderDraft{}
		sess.Ride = models.EmptyRideDraft()
		sess.SelectedIslandID = ""
		sess.Version++
		s.sessions[key] = sess
	}
	s.mu.Unlock()

	// Best-effort persistence: a lost write means the next restart falls
	// back to the default region, nothing worse.
	if s.storage != nil {
		go func() {
			if err := s.storage.SaveActiveRegion(id); err != nil {
				log.Printf("Could not persist region selection %q: %v", id, err)
			}
		}()
	}

	return *region, true
}
