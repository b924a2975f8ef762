package store

import (
	"context"
	"net/url"
)

// Orders lists the shopper's orders, newest first (platform ordering).
func (s *Service) Orders(ctx context.Context) ([]Order, error) {
	var env struct {
		List []Order `json:"list"`
	}
	if err := s.platform.Get(ctx, ordersPath, &env); err != nil {
		return nil, err
	}
	return env.List, nil
}

func (s *Service) Order(ctx context.Context, orderID string) (Order, error) {
	if orderID == "" {
		return Order{}, errInput("orderId is required")
	}
	var order Order
	if err := s.platform.Get(ctx, ordersPath+"/"+url.PathEscape(orderID), &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

// CancelOrder files a user cancellation request for the order. The platform
// processes it asynchronously; true only means the request was accepted.
func (s *Service) CancelOrder(ctx context.Context, orderID, reason string) (bool, error) {
	if orderID == "" {
		return false, errInput("orderId is required")
	}
	body := map[string]string{"reason": reason}
	if err := s.platform.Post(ctx, ordersPath+"/"+url.PathEscape(orderID)+"/user-cancel-request", body, nil); err != nil {
		return false, err
	}
	return true, nil
}
