package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const pickupPointsBase = "/api/logistics/pvt/configuration/pickuppoints"

// defaultPickupRadius bounds the pickup-point search, in km, when the caller
// gives no radius.
const defaultPickupRadius = 50

func pickupSearchPath(lat, long float64, maxDistance int) string {
	if maxDistance <= 0 {
		maxDistance = defaultPickupRadius
	}
	q := url.Values{}
	q.Set("page", "1")
	q.Set("pageSize", "100")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(long, 'f', -1, 64))
	q.Set("maxDistance", strconv.Itoa(maxDistance))
	return fmt.Sprintf("%s/_search?%s", pickupPointsBase, q.Encode())
}

// NearPickupPoints searches the logistics API for pickup points around the
// given coordinates. maxDistance is in km; non-positive means the default
// radius.
func (s *Service) NearPickupPoints(ctx context.Context, lat, long float64, maxDistance int) ([]PickupPoint, error) {
	var env struct {
		Items []PickupPoint `json:"items"`
	}
	if err := s.platform.Get(ctx, pickupSearchPath(lat, long, maxDistance), &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// PickupPoint fetches a single pickup point by its logistics id.
func (s *Service) PickupPoint(ctx context.Context, id string) (PickupPoint, error) {
	if id == "" {
		return PickupPoint{}, errInput("pickupPointId is required")
	}
	var pp PickupPoint
	if err := s.platform.Get(ctx, pickupPointsBase+"/"+url.PathEscape(id), &pp); err != nil {
		return PickupPoint{}, err
	}
	return pp, nil
}
