// Package catalog holds the compiled-in tenant configurations and the static
// schedule, route, and ride tables the screens read. The catalog is read-only;
// the operator console renders it but never writes back.
package catalog

import "clampacked-backend/models"

var (
	captainMike  = models.Captain{ID: "mike", Name: "Captain Mike", Boat: "Sea Sprite", Rating: 4.9, Trips: 342}
	captainSarah = models.Captain{ID: "sarah", Name: "Captain Sarah", Boat: "Island Runner", Rating: 4.8, Trips: 256}
	captainTom   = models.Captain{ID: "tom", Name: "Captain Tom", Boat: "Wave Dancer", Rating: 4.7, Trips: 189}
	captainJim   = models.Captain{ID: "jim", Name: "Captain Jim", Boat: "Nor'easter", Rating: 4.9, Trips: 512}
	captainLisa  = models.Captain{ID: "lisa", Name: "Captain Lisa", Boat: "Lobster Lady", Rating: 4.8, Trips: 389}
	captainBob   = models.Captain{ID: "bob", Name: "Captain Bob", Boat: "Great Lakes Runner", Rating: 4.9, Trips: 678}
	captainNancy = models.Captain{ID: "nancy", Name: "Captain Nancy", Boat: "Northern Star", Rating: 4.7, Trips: 234}
)

// Regions is the full tenant catalog in declaration order. The first entry is
// the default region adopted when no selection has been persisted.
var Regions = []models.Region{
	{
		ID:              "san-juan",
		Name:            "San Juan Islands",
		Tagline:         "Washington State",
		BrandName:       "Clam Packed",
		PrimaryColor:    "#39ADB8",
		SecondaryColor:  "#ED9739",
		BaseDeliveryFee: 25,
		BaseTaxiRate:    45,
		Islands: []models.Island{
			{ID: "orcas", Name: "Orcas Island", ShortName: "Orcas", X: 0.55, Y: 0.22, DeliveryDays: []string{"Tuesday", "Friday"}},
			{ID: "sanJuan", Name: "San Juan Island", ShortName: "San Juan", X: 0.25, Y: 0.45, DeliveryDays: []string{"Wednesday", "Saturday"}},
			{ID: "lopez", Name: "Lopez Island", ShortName: "Lopez", X: 0.55, Y: 0.65, DeliveryDays: []string{"Thursday"}},
			{ID: "anacortes", Name: "Anacortes", ShortName: "Anacortes", X: 0.78, Y: 0.82, IsMainland: true},
		},
		Stores: []models.Store{
			{ID: "traderjoes", Name: "Trader Joe's", FlowType: models.FlowPDFUpload, Description: "Upload your shopping list"},
			{ID: "safeway", Name: "Safeway", FlowType: models.FlowPickupCode, Description: "Enter pickup confirmation"},
			{ID: "hela", Name: "Hela Provisions", FlowType: models.FlowAutomatic, Description: "We handle everything"},
			{ID: "chefstore", Name: "CHEF'STORE", FlowType: models.FlowOrderNote, Description: "Add order details"},
			{ID: "chs", Name: "CHS Farm & Home", FlowType: models.FlowCallOrder, Description: "Call to place order"},
			{ID: "azure", Name: "Azure Standard", FlowType: models.FlowDropPoint, Description: "Drop point pickup"},
		},
		Captains: []models.Captain{captainMike, captainSarah, captainTom},
	},
	{
		ID:              "casco-bay",
		Name:            "Casco Bay Islands",
		Tagline:         "Maine",
		BrandName:       "Casco Cargo",
		PrimaryColor:    "#2E7D5A",
		SecondaryColor:  "#D4853A",
		BaseDeliveryFee: 20,
		BaseTaxiRate:    35,
		Islands: []models.Island{
			{ID: "peaks", Name: "Peaks Island", ShortName: "Peaks", X: 0.45, Y: 0.30, DeliveryDays: []string{"Monday", "Thursday"}},
			{ID: "longIsland", Name: "Long Island", ShortName: "Long Island", X: 0.60, Y: 0.45, DeliveryDays: []string{"Tuesday", "Friday"}},
			{ID: "chebeague", Name: "Chebeague Island", ShortName: "Chebeague", X: 0.35, Y: 0.55, DeliveryDays: []string{"Wednesday"}},
			{ID: "cliffIsland", Name: "Cliff Island", ShortName: "Cliff", X: 0.55, Y: 0.70, DeliveryDays: []string{"Friday"}},
			{ID: "portland", Name: "Portland", ShortName: "Portland", X: 0.25, Y: 0.82, IsMainland: true},
		},
		Stores: []models.Store{
			{ID: "hannaford", Name: "Hannaford", FlowType: models.FlowPickupCode, Description: "Enter pickup confirmation"},
			{ID: "traderjoes", Name: "Trader Joe's", FlowType: models.FlowPDFUpload, Description: "Upload your shopping list"},
			{ID: "wholeFoods", Name: "Whole Foods", FlowType: models.FlowAutomatic, Description: "We handle everything"},
			{ID: "portlandFood", Name: "Portland Food Co-op", FlowType: models.FlowOrderNote, Description: "Add order details"},
		},
		Captains: []models.Captain{captainJim, captainLisa},
	},
	{
		ID:              "mackinac",
		Name:            "Mackinac Island",
		Tagline:         "Michigan",
		BrandName:       "Mackinac Move",
		PrimaryColor:    "#4A6FA5",
		SecondaryColor:  "#C7522A",
		BaseDeliveryFee: 30,
		BaseTaxiRate:    50,
		Islands: []models.Island{
			{ID: "mackinac", Name: "Mackinac Island", ShortName: "Mackinac", X: 0.50, Y: 0.35, DeliveryDays: []string{"Monday", "Wednesday", "Friday"}},
			{ID: "boisBlanc", Name: "Bois Blanc Island", ShortName: "Bois Blanc", X: 0.70, Y: 0.55, DeliveryDays: []string{"Tuesday", "Saturday"}},
			{ID: "stIgnace", Name: "St. Ignace", ShortName: "St. Ignace", X: 0.30, Y: 0.75, IsMainland: true},
			{ID: "mackinawCity", Name: "Mackinaw City", ShortName: "Mackinaw City", X: 0.65, Y: 0.82, IsMainland: true},
		},
		Stores: []models.Store{
			{ID: "meijer", Name: "Meijer", FlowType: models.FlowPickupCode, Description: "Enter pickup confirmation"},
			{ID: "familyFare", Name: "Family Fare", FlowType: models.FlowAutomatic, Description: "We handle everything"},
			{ID: "glenns", Name: "Glenn's Market", FlowType: models.FlowOrderNote, Description: "Add order details"},
		},
		Captains: []models.Captain{captainBob, captainNancy},
	},
}

// ListRegions returns the catalog in declaration order. Never empty.
func ListRegions() []models.Region {
	return Regions
}

// GetRegion resolves a region by id. Callers treat a miss as "keep the
// previous region"; it is never an error.
func GetRegion(id string) (*models.Region, bool) {
	for i := range Regions {
		if Regions[i].ID == id {
			return &Regions[i], true
		}
	}
	return nil, false
}

// DefaultRegion is the region used when no persisted selection exists.
func DefaultRegion() *models.Region {
	return &Regions[0]
}
