package usecase

import (
	"sync"

	"WyckoffLab/internal/domain/models"

	"github.com/google/uuid"
)

// MarkerSet holds the user-placed annotations of one chart session together
// with the placement mode: idle, or armed with exactly one concept awaiting
// the next chart click. Arming is single-shot: a successful placement
// returns the set to idle.
type MarkerSet struct {
	mu      sync.Mutex
	markers []models.Marker
	armed   models.Concept // empty when idle
}

func NewMarkerSet() *MarkerSet {
	return &MarkerSet{}
}

// Arm selects the concept for the next placement, replacing any previously
// armed concept.
func (m *MarkerSet) Arm(concept models.Concept) error {
	if !models.IsValidConcept(concept) {
		return ErrUnknownConcept
	}
	m.mu.Lock()
	m.armed = concept
	m.mu.Unlock()
	return nil
}

// Disarm returns to idle, discarding the pending concept.
func (m *MarkerSet) Disarm() {
	m.mu.Lock()
	m.armed = ""
	m.mu.Unlock()
}

// Armed returns the pending concept and whether one is armed.
func (m *MarkerSet) Armed() (models.Concept, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.armed, m.armed != ""
}

// Place creates a marker for the armed concept at (time, price), appends it,
// and disarms. Fails with ErrNotArmed when idle.
func (m *MarkerSet) Place(time int64, price float64) (models.Marker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.armed == "" {
		return models.Marker{}, ErrNotArmed
	}

	marker := models.Marker{
		ID:      uuid.NewString(),
		Concept: m.armed,
		Time:    time,
		Price:   price,
	}
	m.markers = append(m.markers, marker)
	m.armed = ""
	return marker, nil
}

// Remove deletes a marker by id; absent ids are a no-op.
func (m *MarkerSet) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, mk := range m.markers {
		if mk.ID == id {
			m.markers = append(m.markers[:i], m.markers[i+1:]...)
			return
		}
	}
}

// Clear empties the set.
func (m *MarkerSet) Clear() {
	m.mu.Lock()
	m.markers = nil
	m.mu.Unlock()
}

// All returns markers in insertion order.
func (m *MarkerSet) All() []models.Marker {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]models.Marker, len(m.markers))
	copy(cp, m.markers)
	return cp
}

// Len returns the marker count.
func (m *MarkerSet) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.markers)
}
