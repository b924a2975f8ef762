package store

import "context"

// The updateOrderForm* setters all follow the same shape: validate the id,
// POST the attachment, return the fresh snapshot the platform sends back.

func (s *Service) UpdateOrderFormProfile(ctx context.Context, orderFormID string, profile ClientProfileData) (OrderForm, error) {
	if orderFormID == "" {
		return OrderForm{}, errInput("orderFormId is required")
	}
	var form OrderForm
	if err := s.platform.Post(ctx, attachmentPath(orderFormID, "clientProfileData"), profile, &form); err != nil {
		return OrderForm{}, err
	}
	return form, nil
}

func (s *Service) UpdateOrderFormShipping(ctx context.Context, orderFormID string, address Address) (OrderForm, error) {
	if orderFormID == "" {
		return OrderForm{}, errInput("orderFormId is required")
	}
	payload := struct {
		SelectedAddresses []Address `json:"selectedAddresses"`
	}{
		SelectedAddresses: []Address{address},
	}
	var form OrderForm
	if err := s.platform.Post(ctx, attachmentPath(orderFormID, "shippingData"), payload, &form); err != nil {
		return OrderForm{}, err
	}
	return form, nil
}

func (s *Service) UpdateOrderFormPayment(ctx context.Context, orderFormID string, payments []PaymentInput) (OrderForm, error) {
	if orderFormID == "" {
		return OrderForm{}, errInput("orderFormId is required")
	}
	payload := struct {
		Payments []PaymentInput `json:"payments"`
	}{
		Payments: payments,
	}
	var form OrderForm
	if err := s.platform.Post(ctx, attachmentPath(orderFormID, "paymentData"), payload, &form); err != nil {
		return OrderForm{}, err
	}
	return form, nil
}

// UpdateOrderFormIgnoreProfileData toggles whether the checkout reuses the
// profile the platform has on file for the shopper's email.
func (s *Service) UpdateOrderFormIgnoreProfileData(ctx context.Context, orderFormID string, ignore bool) (OrderForm, error) {
	if orderFormID == "" {
		return OrderForm{}, errInput("orderFormId is required")
	}
	payload := struct {
		IgnoreProfileData bool `json:"ignoreProfileData"`
	}{
		IgnoreProfileData: ignore,
	}
	var form OrderForm
	if err := s.platform.Post(ctx, orderFormPath(orderFormID)+"/profile", payload, &form); err != nil {
		return OrderForm{}, err
	}
	return form, nil
}

// UpdateOrderFormCheckin flags the order form as an in-store pickup checkin.
// The checkin endpoint returns no useful body, so the form is re-fetched.
func (s *Service) UpdateOrderFormCheckin(ctx context.Context, orderFormID string, checkin CheckinInput) (OrderForm, error) {
	if orderFormID == "" {
		return OrderForm{}, errInput("orderFormId is required")
	}
	if err := s.platform.Post(ctx, orderFormPath(orderFormID)+"/checkIn", checkin, nil); err != nil {
		return OrderForm{}, err
	}
	return s.fetchOrderForm(ctx, orderFormID)
}
