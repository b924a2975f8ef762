package store

import (
	"context"
	"net/http"
	"testing"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		cents int64
		want  float64
	}{
		{0, 0},
		{1, 0.01},
		{100, 1},
		{7590, 75.9},
		{-250, -2.5},
	}
	for _, tt := range tests {
		if got := NormalizePrice(tt.cents); got != tt.want {
			t.Errorf("NormalizePrice(%d) = %v, want %v", tt.cents, got, tt.want)
		}
	}
}

func simulationResp() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"id": "sku-1", "requestIndex": 0, "quantity": 1, "price": 7590, "sellingPrice": 7590},
		},
		"logisticsInfo": []map[string]any{
			{
				"itemIndex": 0,
				"slas": []map[string]any{
					{
						"id":              "pickup-downtown",
						"deliveryChannel": "pickup-in-point",
						"price":           0,
						"pickupStoreInfo": map[string]any{
							"isPickupStore": true,
							"friendlyName":  "Downtown Store",
							"address":       map[string]any{"addressId": "X"},
						},
					},
					{
						"id":              "express",
						"deliveryChannel": "delivery",
						"price":           1290,
					},
				},
			},
		},
		"postalCode": "01310-000",
		"country":    "BRA",
	}
}

func TestShippingSimulation(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "/orderForms/simulation", data: simulationResp()},
	})
	svc := newSvc(t, srv)

	result, err := svc.ShippingSimulation(context.Background(), []SimulationItem{{ID: "sku-1", Quantity: 1, Seller: "1"}}, "01310-000", "BRA")
	if err != nil {
		t.Fatalf("ShippingSimulation: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].Price != 7590 {
		t.Errorf("result.Items unexpected: %+v", result.Items)
	}
	if len(result.LogisticsInfo) != 1 || len(result.LogisticsInfo[0].SLAs) != 2 {
		t.Fatalf("logisticsInfo unexpected: %+v", result.LogisticsInfo)
	}
}

func TestShippingSimulation_EmptyItems(t *testing.T) {
	svc := newSvc(t, newRoutingServer(t, nil))

	_, err := svc.ShippingSimulation(context.Background(), nil, "", "")
	if !IsInputError(err) {
		t.Errorf("expected InputError, got %v", err)
	}
}

func TestSkuPickupSLAs_FiltersDeliveryChannel(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "/orderForms/simulation", data: simulationResp()},
	})
	svc := newSvc(t, srv)

	slas, err := svc.SkuPickupSLAs(context.Background(), "sku-1", "01310-000", "BRA")
	if err != nil {
		t.Fatalf("SkuPickupSLAs: %v", err)
	}
	if len(slas) != 1 {
		t.Fatalf("expected exactly 1 pickup SLA, got %d", len(slas))
	}
	if slas[0].ID != "pickup-downtown" {
		t.Errorf("sla.ID: want pickup-downtown, got %q", slas[0].ID)
	}
	if slas[0].DeliveryChannel != DeliveryChannelPickup {
		t.Errorf("deliveryChannel: want %q, got %q", DeliveryChannelPickup, slas[0].DeliveryChannel)
	}
}

func TestSkuPickupSLA_MatchesByAddressID(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "/orderForms/simulation", data: simulationResp()},
	})
	svc := newSvc(t, srv)

	sla, err := svc.SkuPickupSLA(context.Background(), "sku-1", "X", "01310-000", "BRA")
	if err != nil {
		t.Fatalf("SkuPickupSLA: %v", err)
	}
	if sla == nil {
		t.Fatal("expected a matching SLA, got nil")
	}
	if sla.ID != "pickup-downtown" {
		t.Errorf("sla.ID: want pickup-downtown, got %q", sla.ID)
	}
}

func TestSkuPickupSLA_UnknownPickupID(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "/orderForms/simulation", data: simulationResp()},
	})
	svc := newSvc(t, srv)

	sla, err := svc.SkuPickupSLA(context.Background(), "sku-1", "unknown", "01310-000", "BRA")
	if err != nil {
		t.Fatalf("SkuPickupSLA: %v", err)
	}
	if sla != nil {
		t.Errorf("expected nil for unknown pickup id, got %+v", sla)
	}
}
