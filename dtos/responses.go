package dtos

import "clampacked-backend/models"

// RegionSummary is the region-picker card: identity, branding, and the
// headline counts the admin screen shows.
type RegionSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Tagline      string `json:"tagline"`
	BrandName    string `json:"brand_name"`
	PrimaryColor string `json:"primary_color"`
	IslandCount  int    `json:"island_count"`
	StoreCount   int    `json:"store_count"`
	CaptainCount int    `json:"captain_count"`
}

// SummarizeRegion builds the picker card for a region. The island count
// excludes mainland entries, matching what the settings screen displays.
func SummarizeRegion(r models.Region) RegionSummary {
	return RegionSummary{
		ID:           r.ID,
		Name:         r.Name,
		Tagline:      r.Tagline,
		BrandName:    r.BrandName,
		PrimaryColor: r.PrimaryColor,
		IslandCount:  len(r.DeliveryIslands()),
		StoreCount:   len(r.Stores),
		CaptainCount: len(r.Captains),
	}
}

// SessionResponse is a session snapshot plus the derived readiness flag the
// order screen uses to enable its submit button.
type SessionResponse struct {
	models.Session
	OrderReady bool `json:"order_ready"`
}

// OrderConfirmation is returned when a delivery order draft is submitted.
// Nothing is persisted; this is the confirmation screen's payload.
type OrderConfirmation struct {
	ConfirmationID string               `json:"confirmation_id"`
	StoreName      string               `json:"store_name"`
	FlowType       models.FlowType      `json:"flow_type"`
	IslandName     string               `json:"island_name"`
	DeliveryDate   *models.DeliveryDate `json:"delivery_date,omitempty"`
	DeliveryFee    float64              `json:"delivery_fee"`
}

// RideConfirmation is returned when a taxi booking draft is submitted.
type RideConfirmation struct {
	BookingRef    string         `json:"booking_ref"`
	FromName      string         `json:"from_name"`
	ToName        string         `json:"to_name"`
	Captain       models.Captain `json:"captain"`
	DepartureTime string         `json:"departure_time"`
	Passengers    int            `json:"passengers"`
	TotalPrice    float64        `json:"total_price"`
	ContactName   string         `json:"contact_name,omitempty"`
}

// IslandWithDelivery pairs an island with its soonest delivery date for the
// island-select screen.
type IslandWithDelivery struct {
	models.Island
	NextDelivery *models.DeliveryDate `json:"next_delivery,omitempty"`
}

// StoreWithLabel pairs a store with its flow label for the store list.
type StoreWithLabel struct {
	models.Store
	FlowLabel string `json:"flow_label"`
}

// RouteQuote is the price/duration estimate shown before rides load.
type RouteQuote struct {
	models.TaxiRoute
	FromName string `json:"from_name"`
	ToName   string `json:"to_name"`
}
