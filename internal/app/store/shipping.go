package store

import "context"

type simulationPayload struct {
	Items      []SimulationItem `json:"items"`
	PostalCode string           `json:"postalCode,omitempty"`
	Country    string           `json:"country,omitempty"`
}

// ShippingSimulation runs the platform's logistics simulation for the given
// items and destination.
func (s *Service) ShippingSimulation(ctx context.Context, items []SimulationItem, postalCode, country string) (SimulationResult, error) {
	if len(items) == 0 {
		return SimulationResult{}, errInput("items must not be empty")
	}

	payload := simulationPayload{
		Items:      items,
		PostalCode: postalCode,
		Country:    country,
	}
	var result SimulationResult
	if err := s.platform.Post(ctx, simulationPath, payload, &result); err != nil {
		return SimulationResult{}, err
	}
	return result, nil
}

// SkuPickupSLAs simulates shipping a single unit of the sku and returns only
// the SLAs fulfilled at a pickup point.
func (s *Service) SkuPickupSLAs(ctx context.Context, itemID, postalCode, country string) ([]SLA, error) {
	if itemID == "" {
		return nil, errInput("itemId is required")
	}

	items := []SimulationItem{{ID: itemID, Quantity: 1, Seller: "1"}}
	result, err := s.ShippingSimulation(ctx, items, postalCode, country)
	if err != nil {
		return nil, err
	}
	return pickupSLAs(result), nil
}

// SkuPickupSLA returns the pickup SLA whose store address matches pickupID,
// or nil when the point does not serve the sku.
func (s *Service) SkuPickupSLA(ctx context.Context, itemID, pickupID, postalCode, country string) (*SLA, error) {
	slas, err := s.SkuPickupSLAs(ctx, itemID, postalCode, country)
	if err != nil {
		return nil, err
	}
	for i := range slas {
		info := slas[i].PickupStoreInfo
		if info != nil && info.Address != nil && info.Address.AddressID == pickupID {
			return &slas[i], nil
		}
	}
	return nil, nil
}

func pickupSLAs(result SimulationResult) []SLA {
	var out []SLA
	for _, li := range result.LogisticsInfo {
		for _, sla := range li.SLAs {
			if sla.DeliveryChannel == DeliveryChannelPickup {
				out = append(out, sla)
			}
		}
	}
	return out
}
