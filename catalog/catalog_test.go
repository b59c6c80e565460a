package catalog

import (
	"reflect"
	"testing"
)

func TestGetRegionRoundTrip(t *testing.T) {
	for _, r := range ListRegions() {
		got, ok := GetRegion(r.ID)
		if !ok {
			t.Fatalf("region %s not found by its own id", r.ID)
		}
		if got.ID != r.ID || got.BrandName != r.BrandName {
			t.Errorf("GetRegion(%s) returned a different region: %s", r.ID, got.ID)
		}
	}
}

func TestGetRegionMiss(t *testing.T) {
	if _, ok := GetRegion("nonexistent"); ok {
		t.Error("expected miss for unknown region id")
	}
}

func TestDefaultRegionIsFirst(t *testing.T) {
	def := DefaultRegion()
	if def.ID != Regions[0].ID {
		t.Errorf("default region should be the first catalog entry, got %s", def.ID)
	}
	if def.ID != "san-juan" {
		t.Errorf("expected san-juan as default, got %s", def.ID)
	}
}

func TestEveryRegionHasIslandsAndAMainland(t *testing.T) {
	for _, r := range ListRegions() {
		if len(r.DeliveryIslands()) == 0 {
			t.Errorf("region %s has no delivery islands", r.ID)
		}
		mainland := false
		for _, isl := range r.Islands {
			if isl.IsMainland {
				mainland = true
			}
			if isl.X < 0 || isl.X > 1 || isl.Y < 0 || isl.Y > 1 {
				t.Errorf("region %s island %s has coordinates outside [0,1]", r.ID, isl.ID)
			}
		}
		if !mainland {
			t.Errorf("region %s has no mainland hub", r.ID)
		}
	}
}

func TestCascoBayContents(t *testing.T) {
	region, ok := GetRegion("casco-bay")
	if !ok {
		t.Fatal("casco-bay missing from catalog")
	}
	if region.BrandName != "Casco Cargo" {
		t.Errorf("expected brand Casco Cargo, got %s", region.BrandName)
	}

	for _, id := range []string{"peaks", "longIsland", "chebeague", "cliffIsland"} {
		isl := region.Island(id)
		if isl == nil {
			t.Errorf("casco-bay missing island %s", id)
			continue
		}
		if isl.IsMainland {
			t.Errorf("island %s should not be mainland", id)
		}
	}
	portland := region.Island("portland")
	if portland == nil || !portland.IsMainland {
		t.Error("casco-bay should have portland as its mainland hub")
	}
}

func TestEveryStoreFlowHasLabel(t *testing.T) {
	for _, r := range ListRegions() {
		for _, s := range r.Stores {
			if s.FlowType.Label() == "" {
				t.Errorf("region %s store %s has unlabeled flow type %q", r.ID, s.ID, s.FlowType)
			}
		}
	}
}

func TestNextDeliveryFirstEntry(t *testing.T) {
	next, ok := NextDelivery("orcas")
	if !ok {
		t.Fatal("orcas should have a schedule")
	}
	if next.Date != "2026-02-10" {
		t.Errorf("expected soonest orcas delivery 2026-02-10, got %s", next.Date)
	}
	if next != DeliverySchedules["orcas"][0] {
		t.Error("next delivery should be the first schedule entry")
	}
}

func TestNextDeliveryAbsentWithoutSchedule(t *testing.T) {
	if _, ok := NextDelivery("anacortes"); ok {
		t.Error("mainland hub should have no delivery schedule")
	}
	if _, ok := NextDelivery("atlantis"); ok {
		t.Error("unknown island should have no delivery schedule")
	}
}

func TestSchedulesAreChronological(t *testing.T) {
	for island, schedule := range DeliverySchedules {
		for i := 1; i < len(schedule); i++ {
			if schedule[i].Date <= schedule[i-1].Date {
				t.Errorf("%s schedule out of order at entry %d: %s after %s",
					island, i, schedule[i].Date, schedule[i-1].Date)
			}
		}
	}
}

func TestRouteInfoUnorderedPair(t *testing.T) {
	forward, ok := RouteInfo("orcas", "sanJuan")
	if !ok {
		t.Fatal("expected a route between orcas and sanJuan")
	}
	reverse, ok := RouteInfo("sanJuan", "orcas")
	if !ok {
		t.Fatal("expected the reverse lookup to match the same route")
	}
	if forward != reverse {
		t.Errorf("route lookup is not symmetric: %+v vs %+v", forward, reverse)
	}
	if forward.BasePrice != 45 {
		t.Errorf("expected base price 45, got %v", forward.BasePrice)
	}
}

func TestRouteInfoMiss(t *testing.T) {
	if _, ok := RouteInfo("orcas", "portland"); ok {
		t.Error("no route should cross regions")
	}
}

func TestRidesForRouteSymmetry(t *testing.T) {
	ab := RidesForRoute("orcas", "sanJuan")
	ba := RidesForRoute("sanJuan", "orcas")
	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("ride listing not symmetric: %d vs %d rides", len(ab), len(ba))
	}
	if len(ab) != 2 {
		t.Errorf("expected 2 rides between orcas and sanJuan, got %d", len(ab))
	}
}

func TestRidesForRouteEmptyIsNotNil(t *testing.T) {
	rides := RidesForRoute("lopez", "anacortes")
	if rides == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(rides) != 0 {
		t.Errorf("expected no rides, got %d", len(rides))
	}
}

func TestGetRide(t *testing.T) {
	ride, ok := GetRide("1")
	if !ok {
		t.Fatal("ride 1 should exist")
	}
	if ride.Captain.ID != "mike" {
		t.Errorf("expected captain mike on ride 1, got %s", ride.Captain.ID)
	}
	if _, ok := GetRide("999"); ok {
		t.Error("unknown ride id should miss")
	}
}

func TestRideEndpointsResolve(t *testing.T) {
	for _, ride := range AvailableRides {
		// LocationName falls back to the raw id only for unknown ids;
		// every ride endpoint must be a real catalog location.
		if LocationName(ride.From) == ride.From {
			t.Errorf("ride %s departs unknown location %s", ride.ID, ride.From)
		}
		if LocationName(ride.To) == ride.To {
			t.Errorf("ride %s arrives at unknown location %s", ride.ID, ride.To)
		}
		if ride.SeatsLeft < 0 {
			t.Errorf("ride %s has negative seats", ride.ID)
		}
		if ride.Price <= 0 {
			t.Errorf("ride %s has no price", ride.ID)
		}
	}
}

func TestLocationName(t *testing.T) {
	if got := LocationName("sanJuan"); got != "San Juan" {
		t.Errorf("expected short name San Juan, got %q", got)
	}
	if got := LocationName("portland"); got != "Portland" {
		t.Errorf("expected Portland, got %q", got)
	}
	if got := LocationName("atlantis"); got != "atlantis" {
		t.Errorf("unknown id should come back unchanged, got %q", got)
	}
}
