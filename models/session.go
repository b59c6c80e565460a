package models

// ServiceMode is the coarse navigation context the client is in. It is a UI
// hint only; changing it has no effect on the drafts.
type ServiceMode string

const (
	ModeHome     ServiceMode = "home"
	ModeDelivery ServiceMode = "delivery"
	ModeTaxi     ServiceMode = "taxi"
)

// ValidMode reports whether m is one of the known service modes.
func ValidMode(m ServiceMode) bool {
	switch m {
	case ModeHome, ModeDelivery, ModeTaxi:
		return true
	}
	return false
}

// OrderDraft accumulates the delivery wizard's selections. It lives only for
// the session and is discarded on completion, abandonment, or region switch.
type OrderDraft struct {
	IslandID     string        `json:"island_id,omitempty"`
	StoreID      string        `json:"store_id,omitempty"`
	DeliveryDate *DeliveryDate `json:"delivery_date,omitempty"`
	PickupCode   string        `json:"pickup_code,omitempty"`
	OrderNote    string        `json:"order_note,omitempty"`
	PDFUploaded  bool          `json:"pdf_uploaded,omitempty"`
}

// RideDraft accumulates the taxi booking wizard's selections.
// Passengers never drops below 1.
type RideDraft struct {
	FromID       string `json:"from_id,omitempty"`
	ToID         string `json:"to_id,omitempty"`
	RideID       string `json:"ride_id,omitempty"`
	Passengers   int    `json:"passengers"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// EmptyRideDraft returns a fresh ride draft with the passenger floor applied.
func EmptyRideDraft() RideDraft {
	return RideDraft{Passengers: 1}
}

// Session is one client's draft state snapshot. Mutators in the state package
// replace the whole snapshot rather than editing fields in place, so Version
// comparisons are enough to detect any change.
type Session struct {
	ID               string      `json:"id"`
	Mode             ServiceMode `json:"mode"`
	SelectedIslandID string      `json:"selected_island_id,omitempty"`
	Order            OrderDraft  `json:"order"`
	Ride             RideDraft   `json:"ride"`
	Version          uint64      `json:"version"`
}

// NewSession returns an empty session in home mode.
func NewSession(id string) Session {
	return Session{
		ID:      id,
		Mode:    ModeHome,
		Ride:    EmptyRideDraft(),
		Version: 1,
	}
}
