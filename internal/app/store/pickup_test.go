package store

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestPickupSearchPath(t *testing.T) {
	path := pickupSearchPath(-23.55, -46.63, 10)
	for _, want := range []string{"lat=-23.55", "lon=-46.63", "maxDistance=10", "/_search?"} {
		if !strings.Contains(path, want) {
			t.Errorf("path %q missing %q", path, want)
		}
	}
}

func TestPickupSearchPath_DefaultRadius(t *testing.T) {
	path := pickupSearchPath(-23.55, -46.63, 0)
	if !strings.Contains(path, "maxDistance=50") {
		t.Errorf("non-positive radius must fall back to 50, got %q", path)
	}
}

func TestNearPickupPoints(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "pickuppoints/_search", data: map[string]any{
			"items": []map[string]any{
				{
					"id":       "pp-downtown",
					"name":     "Downtown Store",
					"isActive": true,
					"distance": 2.4,
					"address":  map[string]any{"addressId": "X"},
					"businessHours": []map[string]any{
						{"dayOfWeek": 1, "openingTime": "09:00", "closingTime": "18:00"},
					},
				},
				{"id": "pp-mall", "name": "Mall Kiosk", "isActive": false, "distance": 7.1},
			},
		}},
	})
	svc := newSvc(t, srv)

	points, err := svc.NearPickupPoints(context.Background(), -23.55, -46.63, 10)
	if err != nil {
		t.Fatalf("NearPickupPoints: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 pickup points, got %d", len(points))
	}
	if points[0].ID != "pp-downtown" || points[0].Distance != 2.4 {
		t.Errorf("points[0] unexpected: %+v", points[0])
	}
	if points[0].Address == nil || points[0].Address.AddressID != "X" {
		t.Errorf("points[0].Address unexpected: %+v", points[0].Address)
	}
	if len(points[0].BusinessHours) != 1 || points[0].BusinessHours[0].OpeningTime != "09:00" {
		t.Errorf("points[0].BusinessHours unexpected: %+v", points[0].BusinessHours)
	}
}

func TestPickupPoint_ByID(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "pickuppoints/pp-downtown", data: map[string]any{
			"id":       "pp-downtown",
			"name":     "Downtown Store",
			"isActive": true,
		}},
	})
	svc := newSvc(t, srv)

	point, err := svc.PickupPoint(context.Background(), "pp-downtown")
	if err != nil {
		t.Fatalf("PickupPoint: %v", err)
	}
	if point.ID != "pp-downtown" || point.Name != "Downtown Store" || !point.IsActive {
		t.Errorf("point unexpected: %+v", point)
	}
}

func TestPickupPoint_MissingID(t *testing.T) {
	svc := newSvc(t, newRoutingServer(t, nil))

	_, err := svc.PickupPoint(context.Background(), "")
	if !IsInputError(err) {
		t.Errorf("expected InputError, got %v", err)
	}
}
