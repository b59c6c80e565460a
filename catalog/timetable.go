package catalog

import "clampacked-backend/models"

// DeliverySchedules lists upcoming delivery dates per island id, soonest
// first. Islands with no entry simply have no upcoming deliveries.
var DeliverySchedules = map[string][]models.DeliveryDate{
	"orcas": {
		{Date: "2026-02-10", DisplayDate: "Tue, Feb 10", OrderDeadline: "Fri, Feb 6"},
		{Date: "2026-02-24", DisplayDate: "Tue, Feb 24", OrderDeadline: "Fri, Feb 20"},
		{Date: "2026-03-10", DisplayDate: "Tue, Mar 10", OrderDeadline: "Fri, Mar 6"},
		{Date: "2026-03-24", DisplayDate: "Tue, Mar 24", OrderDeadline: "Fri, Mar 20"},
	},
	"sanJuan": {
		{Date: "2026-02-11", DisplayDate: "Wed, Feb 11", OrderDeadline: "Sat, Feb 7"},
		{Date: "2026-02-25", DisplayDate: "Wed, Feb 25", OrderDeadline: "Sat, Feb 21"},
		{Date: "2026-03-11", DisplayDate: "Wed, Mar 11", OrderDeadline: "Sat, Mar 7"},
		{Date: "2026-03-25", DisplayDate: "Wed, Mar 25", OrderDeadline: "Sat, Mar 21"},
	},
	"lopez": {
		{Date: "2026-02-12", DisplayDate: "Thu, Feb 12", OrderDeadline: "Sun, Feb 8"},
		{Date: "2026-02-26", DisplayDate: "Thu, Feb 26", OrderDeadline: "Sun, Feb 22"},
		{Date: "2026-03-12", DisplayDate: "Thu, Mar 12", OrderDeadline: "Sun, Mar 8"},
		{Date: "2026-03-26", DisplayDate: "Thu, Mar 26", OrderDeadline: "Sun, Mar 22"},
	},
	"peaks": {
		{Date: "2026-02-09", DisplayDate: "Mon, Feb 9", OrderDeadline: "Thu, Feb 5"},
		{Date: "2026-02-12", DisplayDate: "Thu, Feb 12", OrderDeadline: "Sun, Feb 8"},
		{Date: "2026-02-23", DisplayDate: "Mon, Feb 23", OrderDeadline: "Thu, Feb 19"},
	},
	"longIsland": {
		{Date: "2026-02-10", DisplayDate: "Tue, Feb 10", OrderDeadline: "Fri, Feb 6"},
		{Date: "2026-02-13", DisplayDate: "Fri, Feb 13", OrderDeadline: "Mon, Feb 9"},
		{Date: "2026-02-24", DisplayDate: "Tue, Feb 24", OrderDeadline: "Fri, Feb 20"},
	},
	"chebeague": {
		{Date: "2026-02-11", DisplayDate: "Wed, Feb 11", OrderDeadline: "Sat, Feb 7"},
		{Date: "2026-02-25", DisplayDate: "Wed, Feb 25", OrderDeadline: "Sat, Feb 21"},
	},
	"cliffIsland": {
		{Date: "2026-02-13", DisplayDate: "Fri, Feb 13", OrderDeadline: "Mon, Feb 9"},
		{Date: "2026-02-27", DisplayDate: "Fri, Feb 27", OrderDeadline: "Mon, Feb 23"},
	},
	"mackinac": {
		{Date: "2026-02-09", DisplayDate: "Mon, Feb 9", OrderDeadline: "Thu, Feb 5"},
		{Date: "2026-02-11", DisplayDate: "Wed, Feb 11", OrderDeadline: "Sat, Feb 7"},
		{Date: "2026-02-13", DisplayDate: "Fri, Feb 13", OrderDeadline: "Mon, Feb 9"},
	},
	"boisBlanc": {
		{Date: "2026-02-10", DisplayDate: "Tue, Feb 10", OrderDeadline: "Fri, Feb 6"},
		{Date: "2026-02-14", DisplayDate: "Sat, Feb 14", OrderDeadline: "Tue, Feb 10"},
	},
}

// TaxiRoutes is the priced route table. Pairs are unordered: a lookup for
// (from, to) matches a row declared as (to, from).
var TaxiRoutes = []models.TaxiRoute{
	{From: "orcas", To: "sanJuan", BasePrice: 45, Duration: "25 min"},
	{From: "orcas", To: "lopez", BasePrice: 55, Duration: "35 min"},
	{From: "sanJuan", To: "lopez", BasePrice: 40, Duration: "20 min"},
	{From: "anacortes", To: "orcas", BasePrice: 75, Duration: "45 min"},
	{From: "anacortes", To: "sanJuan", BasePrice: 70, Duration: "40 min"},
	{From: "anacortes", To: "lopez", BasePrice: 65, Duration: "35 min"},

	{From: "portland", To: "peaks", BasePrice: 25, Duration: "20 min"},
	{From: "portland", To: "longIsland", BasePrice: 35, Duration: "30 min"},
	{From: "portland", To: "chebeague", BasePrice: 40, Duration: "35 min"},
	{From: "portland", To: "cliffIsland", BasePrice: 45, Duration: "45 min"},
	{From: "peaks", To: "longIsland", BasePrice: 20, Duration: "15 min"},
	{From: "chebeague", To: "cliffIsland", BasePrice: 25, Duration: "20 min"},

	{From: "stIgnace", To: "mackinac", BasePrice: 30, Duration: "15 min"},
	{From: "mackinawCity", To: "mackinac", BasePrice: 35, Duration: "18 min"},
	{From: "mackinac", To: "boisBlanc", BasePrice: 45, Duration: "30 min"},
}

// AvailableRides is the current ride board.
var AvailableRides = []models.AvailableRide{
	{ID: "1", From: "orcas", To: "sanJuan", Captain: captainMike, DepartureTime: "Today 2:30 PM", SeatsLeft: 2, Price: 45},
	{ID: "2", From: "orcas", To: "sanJuan", Captain: captainSarah, DepartureTime: "Tomorrow 8:00 AM", SeatsLeft: 4, Price: 35},
	{ID: "3", From: "sanJuan", To: "lopez", Captain: captainTom, DepartureTime: "Today 4:00 PM", SeatsLeft: 3, Price: 40},
	{ID: "4", From: "anacortes", To: "orcas", Captain: captainMike, DepartureTime: "Tomorrow 10:00 AM", SeatsLeft: 5, Price: 75},
	{ID: "5", From: "portland", To: "peaks", Captain: captainJim, DepartureTime: "Today 3:15 PM", SeatsLeft: 6, Price: 25},
	{ID: "6", From: "peaks", To: "longIsland", Captain: captainLisa, DepartureTime: "Tomorrow 9:30 AM", SeatsLeft: 4, Price: 20},
	{ID: "7", From: "stIgnace", To: "mackinac", Captain: captainBob, DepartureTime: "Today 1:00 PM", SeatsLeft: 8, Price: 30},
	{ID: "8", From: "mackinawCity", To: "mackinac", Captain: captainNancy, DepartureTime: "Today 5:45 PM", SeatsLeft: 3, Price: 35},
}

// CurrentFerryStatus feeds the disruption banner on the home screen.
var CurrentFerryStatus = models.FerryStatus{
	HasDisruption: true,
	Message:       "WSF delays today — water taxis ready!",
	Details:       "Washington State Ferries experiencing mechanical issues until 6 PM",
}

// NextDelivery returns the soonest delivery date for an island, if any.
func NextDelivery(islandID string) (models.DeliveryDate, bool) {
	schedule := DeliverySchedules[islandID]
	if len(schedule) == 0 {
		return models.DeliveryDate{}, false
	}
	return schedule[0], true
}

// RouteInfo looks up the priced route between two locations, matching either
// endpoint order.
func RouteInfo(from, to string) (models.TaxiRoute, bool) {
	for _, r := range TaxiRoutes {
		if (r.From == from && r.To == to) || (r.From == to && r.To == from) {
			return r, true
		}
	}
	return models.TaxiRoute{}, false
}

// RidesForRoute returns the rides serving a route in either direction. An
// empty result is an empty ride board, not an error.
func RidesForRoute(from, to string) []models.AvailableRide {
	rides := []models.AvailableRide{}
	for _, r := range AvailableRides {
		if (r.From == from && r.To == to) || (r.From == to && r.To == from) {
			rides = append(rides, r)
		}
	}
	return rides
}

// GetRide resolves a ride by id.
func GetRide(id string) (models.AvailableRide, bool) {
	for _, r := range AvailableRides {
		if r.ID == id {
			return r, true
		}
	}
	return models.AvailableRide{}, false
}

// LocationName resolves an island or mainland id to its short display name.
// Unknown ids come back unchanged so a stale id still renders something.
func LocationName(id string) string {
	for i := range Regions {
		if isl := Regions[i].Island(id); isl != nil {
			if isl.ShortName != "" {
				return isl.ShortName
			}
			return isl.Name
		}
	}
	return id
}
