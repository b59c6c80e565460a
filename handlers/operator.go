package handlers

import (
	"net/http"

	"clampacked-backend/catalog"
	"clampacked-backend/dtos"
	"clampacked-backend/models"
	"clampacked-backend/state"

	"github.com/gin-gonic/gin"
)

// OperatorHandler serves the operator console's read-only views. The screens
// render editable-looking fields, but nothing writes back into the catalog;
// pricing and schedules are static configuration in this version.
type OperatorHandler struct {
	State *state.Store
}

type faqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var operatorFAQs = []faqItem{
	{
		Question: "How do I add a new captain?",
		Answer:   `Go to Captains in Operator Settings, tap "Add" and fill in their details including name, boat information, and contact details.`,
	},
	{
		Question: "How are delivery fees calculated?",
		Answer:   "Fees include a base delivery charge plus distance surcharges for remote islands. You can adjust these in the Pricing section.",
	},
	{
		Question: "Can I change delivery days for an island?",
		Answer:   "Yes! Go to Delivery Schedule and toggle the available days for each island. Changes apply to future bookings only.",
	},
	{
		Question: "How do I partner with a new store?",
		Answer:   "Contact us through the support options below. We'll help set up the integration based on how the store accepts orders.",
	},
}

// regionRoutes filters the static route table down to pairs whose endpoints
// both belong to the given region.
func regionRoutes(region models.Region) []models.TaxiRoute {
	routes := []models.TaxiRoute{}
	for _, r := range catalog.TaxiRoutes {
		if region.Island(r.From) != nil && region.Island(r.To) != nil {
			routes = append(routes, r)
		}
	}
	return routes
}

// GetPricing returns the active region's base fees and its route price table.
func (h *OperatorHandler) GetPricing(c *gin.Context) {
	region := h.State.Region()
	c.JSON(http.StatusOK, gin.H{
		"base_delivery_fee": region.BaseDeliveryFee,
		"base_taxi_rate":    region.BaseTaxiRate,
		"routes":            regionRoutes(region),
	})
}

// GetSchedule returns each delivery island's configured days and next date.
func (h *OperatorHandler) GetSchedule(c *gin.Context) {
	region := h.State.Region()

	type islandSchedule struct {
		IslandID     string               `json:"island_id"`
		IslandName   string               `json:"island_name"`
		DeliveryDays []string             `json:"delivery_days"`
		NextDelivery *models.DeliveryDate `json:"next_delivery,omitempty"`
		Upcoming     int                  `json:"upcoming"`
	}

	schedule := []islandSchedule{}
	for _, isl := range region.DeliveryIslands() {
		entry := islandSchedule{
			IslandID:     isl.ID,
			IslandName:   isl.Name,
			DeliveryDays: isl.DeliveryDays,
			Upcoming:     len(catalog.DeliverySchedules[isl.ID]),
		}
		if next, ok := catalog.NextDelivery(isl.ID); ok {
			entry.NextDelivery = &next
		}
		schedule = append(schedule, entry)
	}

	c.JSON(http.StatusOK, schedule)
}

// GetCaptains returns the active region's fleet roster.
func (h *OperatorHandler) GetCaptains(c *gin.Context) {
	region := h.State.Region()
	c.JSON(http.StatusOK, region.Captains)
}

// GetStores returns the partner store list with flow labels, the operator's
// view of how each store takes orders.
func (h *OperatorHandler) GetStores(c *gin.Context) {
	region := h.State.Region()

	stores := make([]dtos.StoreWithLabel, 0, len(region.Stores))
	for _, s := range region.Stores {
		stores = append(stores, dtos.StoreWithLabel{Store: s, FlowLabel: s.FlowType.Label()})
	}
	c.JSON(http.StatusOK, stores)
}

// GetSupport returns the support contact block and operator FAQs.
func (h *OperatorHandler) GetSupport(c *gin.Context) {
	region := h.State.Region()
	c.JSON(http.StatusOK, gin.H{
		"brand_name": region.BrandName,
		"email":      "support@clampacked.com",
		"phone":      "(360) 555-1234",
		"faqs":       operatorFAQs,
	})
}
