package models

import "strings"

// FlowType describes how a partner store accepts orders. It determines which
// fields an order draft must carry before it can be submitted.
type FlowType string

const (
	FlowPDFUpload  FlowType = "pdf_upload"
	FlowPickupCode FlowType = "pickup_code"
	FlowAutomatic  FlowType = "automatic"
	FlowOrderNote  FlowType = "order_note"
	FlowCallOrder  FlowType = "call_order"
	FlowDropPoint  FlowType = "drop_point"
)

// MinPickupCodeLength is the shortest pickup confirmation code accepted by
// partner store websites.
const MinPickupCodeLength = 4

// FlowLabels maps each flow type to the label shown on store cards.
var FlowLabels = map[FlowType]string{
	FlowPDFUpload:  "Upload your shopping list",
	FlowPickupCode: "Enter pickup confirmation",
	FlowAutomatic:  "We handle everything",
	FlowOrderNote:  "Add order details",
	FlowCallOrder:  "Call to place order",
	FlowDropPoint:  "Drop point pickup",
}

// Label returns the display label for the flow type, or an empty string for
// an unknown value.
func (f FlowType) Label() string {
	return FlowLabels[f]
}

// OrderReady reports whether an order draft carries everything the store's
// flow type requires. Unknown flow types are never ready.
func OrderReady(flow FlowType, draft OrderDraft) bool {
	switch flow {
	case FlowPDFUpload:
		return draft.PDFUploaded
	case FlowPickupCode:
		return len(draft.PickupCode) >= MinPickupCodeLength
	case FlowOrderNote:
		return strings.TrimSpace(draft.OrderNote) != ""
	case FlowAutomatic, FlowCallOrder, FlowDropPoint:
		return true
	default:
		return false
	}
}

type Island struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ShortName    string   `json:"short_name"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	DeliveryDays []string `json:"delivery_days,omitempty"`
	IsMainland   bool     `json:"is_mainland,omitempty"`
}

type Store struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	FlowType    FlowType `json:"flow_type"`
	Description string   `json:"description"`
}

type Captain struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Boat   string  `json:"boat"`
	Rating float64 `json:"rating"`
	Trips  int     `json:"trips"`
}

// Region is one tenant configuration: the islands, partner stores, captains,
// and base pricing for a single island community. Regions are static data and
// never mutated at runtime; switching tenants swaps the whole record.
type Region struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Tagline         string    `json:"tagline"`
	BrandName       string    `json:"brand_name"`
	PrimaryColor    string    `json:"primary_color"`
	SecondaryColor  string    `json:"secondary_color"`
	BaseDeliveryFee float64   `json:"base_delivery_fee"`
	BaseTaxiRate    float64   `json:"base_taxi_rate"`
	Islands         []Island  `json:"islands"`
	Stores          []Store   `json:"stores"`
	Captains        []Captain `json:"captains"`
}

// Island returns the island with the given id, or nil.
func (r *Region) Island(id string) *Island {
	for i := range r.Islands {
		if r.Islands[i].ID == id {
			return &r.Islands[i]
		}
	}
	return nil
}

// Store returns the store with the given id, or nil.
func (r *Region) Store(id string) *Store {
	for i := range r.Stores {
		if r.Stores[i].ID == id {
			return &r.Stores[i]
		}
	}
	return nil
}

// DeliveryIslands returns the islands that are valid delivery destinations.
// Mainland entries are taxi endpoints only.
func (r *Region) DeliveryIslands() []Island {
	out := make([]Island, 0, len(r.Islands))
	for _, isl := range r.Islands {
		if !isl.IsMainland {
			out = append(out, isl)
		}
	}
	return out
}
