package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.87

import (
	"context"

	"github.com/FlavioOdas/store-graphql/graph/model"
	"github.com/FlavioOdas/store-graphql/internal/cookies"
)

// resolveOrderFormID picks the explicit argument when given, otherwise the
// id carried by the inbound checkout cookie. The service rejects "" with an
// input error.
func resolveOrderFormID(ctx context.Context, arg *string) string {
	if arg != nil && *arg != "" {
		return *arg
	}
	return cookies.OrderFormIDFromContext(ctx)
}

// AddItem is the resolver for the addItem field.
func (r *mutationResolver) AddItem(ctx context.Context, orderFormID *string, items []*model.ItemInput) (*model.OrderForm, error) {
	form, err := r.Store.AddItems(ctx, resolveOrderFormID(ctx, orderFormID), fromItemInputs(items))
	if err != nil {
		return nil, err
	}
	return toModelOrderForm(form), nil
}

// UpdateItems is the resolver for the updateItems field.
func (r *mutationResolver) UpdateItems(ctx context.Context, orderFormID *string, items []*model.ItemInput) (*model.OrderForm, error) {
	form, err := r.Store.UpdateItems(ctx, resolveOrderFormID(ctx, orderFormID), fromItemInputs(items))
	if err != nil {
		return nil, err
	}
	return toModelOrderForm(form), nil
}

// AddAssemblyOptions is the resolver for the addAssemblyOptions field.
func (r *mutationResolver) AddAssemblyOptions(ctx context.Context, orderFormID *string, itemID string, assemblyOptionsID string, options []*model.AssemblyOptionInput) (*model.OrderForm, error) {
	form, err := r.Store.AddAssemblyOptions(ctx, resolveOrderFormID(ctx, orderFormID), itemID, assemblyOptionsID, fromAssemblyOptions(options))
	if err != nil {
		return nil, err
	}
	return toModelOrderForm(form), nil
}

// CancelOrder is the resolver for the cancelOrder field.
func (r *mutationResolver) CancelOrder(ctx context.Context, orderID string, reason *string) (bool, error) {
	return r.Store.CancelOrder(ctx, orderID, deref(reason))
}

// CreatePaymentSession is the resolver for the createPaymentSession field.
func (r *mutationResolver) CreatePaymentSession(ctx context.Context) (*model.PaymentSession, error) {
	session, err := r.Store.CreatePaymentSession(ctx)
	if err != nil {
		return nil, err
	}
	return toModelPaymentSession(session), nil
}

// CreatePaymentTokens is the resolver for the createPaymentTokens field.
func (r *mutationResolver) CreatePaymentTokens(ctx context.Context, sessionID string, payments []*model.PaymentTokenInput) ([]*model.PaymentToken, error) {
	tokens, err := r.Store.CreatePaymentTokens(ctx, sessionID, fromTokenInputs(payments))
	if err != nil {
		return nil, err
	}
	return toModelPaymentTokens(tokens), nil
}

// UpdateOrderFormProfile is the resolver for the updateOrderFormProfile field.
func (r *mutationResolver) UpdateOrderFormProfile(ctx context.Context, orderFormID *string, profile model.OrderFormProfileInput) (*model.OrderForm, error) {
	form, err := r.Store.UpdateOrderFormProfile(ctx, resolveOrderFormID(ctx, orderFormID), fromProfileInput(profile))
	if err != nil {
		return nil, err
	}
	return toModelOrderForm(form), nil
}

// UpdateOrderFormShipping is the resolver for the updateOrderFormShipping field.
func (r *mutationResolver) UpdateOrderFormShipping(ctx context.Context, orderFormID *string, address model.OrderFormAddressInput) (*model.OrderForm, error) {
	form, err := r.Store.UpdateOrderFormShipping(ctx, resolveOrderFormID(ctx, orderFormID), fromAddressInput(address))
	if err != nil {
		return nil, err
	}
	return toModelOrderForm(form), nil
}

// UpdateOrderFormPayment is the resolver for the updateOrderFormPayment field.
func (r *mutationResolver) UpdateOrderFormPayment(ctx context.Context, orderFormID *string, payments []*model.OrderFormPaymentInput) (*model.OrderForm, error) {
	form, err := r.Store.UpdateOrderFormPayment(ctx, resolveOrderFormID(ctx, orderFormID), fromPaymentInputs(payments))
	if err != nil {
		return nil, err
	}
	return toModelOrderForm(form), nil
}

// UpdateOrderFormIgnoreProfileData is the resolver for the updateOrderFormIgnoreProfileData field.
func (r *mutationResolver) UpdateOrderFormIgnoreProfileData(ctx context.Context, orderFormID *string, ignoreProfileData bool) (*model.OrderForm, error) {
	form, err := r.Store.UpdateOrderFormIgnoreProfileData(ctx, resolveOrderFormID(ctx, orderFormID), ignoreProfileData)
	if err != nil {
		return nil, err
	}
	return toModelOrderForm(form), nil
}

// UpdateOrderFormCheckin is the resolver for the updateOrderFormCheckin field.
func (r *mutationResolver) UpdateOrderFormCheckin(ctx context.Context, orderFormID *string, checkin model.OrderFormCheckinInput) (*model.OrderForm, error) {
	form, err := r.Store.UpdateOrderFormCheckin(ctx, resolveOrderFormID(ctx, orderFormID), fromCheckinInput(checkin))
	if err != nil {
		return nil, err
	}
	return toModelOrderForm(form), nil
}

// OrderForm is the resolver for the orderForm field.
func (r *queryResolver) OrderForm(ctx context.Context, orderFormID *string) (*model.OrderForm, error) {
	form, err := r.Store.OrderForm(ctx, resolveOrderFormID(ctx, orderFormID))
	if err != nil {
		return nil, err
	}
	return toModelOrderForm(form), nil
}

// Orders is the resolver for the orders field.
func (r *queryResolver) Orders(ctx context.Context) ([]*model.Order, error) {
	orders, err := r.Store.Orders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toModelOrder(o))
	}
	return out, nil
}

// Order is the resolver for the order field.
func (r *queryResolver) Order(ctx context.Context, id string) (*model.Order, error) {
	order, err := r.Store.Order(ctx, id)
	if err != nil {
		return nil, err
	}
	return toModelOrder(order), nil
}

// Shipping is the resolver for the shipping field.
func (r *queryResolver) Shipping(ctx context.Context, items []*model.SimulationItemInput, postalCode *string, country *string) (*model.SimulationResult, error) {
	result, err := r.Store.ShippingSimulation(ctx, fromSimulationItems(items), deref(postalCode), deref(country))
	if err != nil {
		return nil, err
	}
	return toModelSimulation(result), nil
}

// SkuPickupSLAs is the resolver for the skuPickupSLAs field.
func (r *queryResolver) SkuPickupSLAs(ctx context.Context, itemID string, postalCode *string, country *string) ([]*model.SLA, error) {
	slas, err := r.Store.SkuPickupSLAs(ctx, itemID, deref(postalCode), deref(country))
	if err != nil {
		return nil, err
	}
	out := make([]*model.SLA, 0, len(slas))
	for _, sla := range slas {
		out = append(out, toModelSLA(sla))
	}
	return out, nil
}

// SkuPickupSLA is the resolver for the skuPickupSLA field.
func (r *queryResolver) SkuPickupSLA(ctx context.Context, itemID string, pickupID string, postalCode *string, country *string) (*model.SLA, error) {
	sla, err := r.Store.SkuPickupSLA(ctx, itemID, pickupID, deref(postalCode), deref(country))
	if err != nil {
		return nil, err
	}
	if sla == nil {
		return nil, nil
	}
	return toModelSLA(*sla), nil
}

// NearPickupPoints is the resolver for the nearPickupPoints field.
func (r *queryResolver) NearPickupPoints(ctx context.Context, lat float64, long float64, maxDistance *int) ([]*model.PickupPoint, error) {
	radius := 0
	if maxDistance != nil {
		radius = *maxDistance
	}
	points, err := r.Store.NearPickupPoints(ctx, lat, long, radius)
	if err != nil {
		return nil, err
	}
	out := make([]*model.PickupPoint, 0, len(points))
	for _, p := range points {
		out = append(out, toModelPickupPoint(p))
	}
	return out, nil
}

// PickupPoint is the resolver for the pickupPoint field.
func (r *queryResolver) PickupPoint(ctx context.Context, id string) (*model.PickupPoint, error) {
	point, err := r.Store.PickupPoint(ctx, id)
	if err != nil {
		return nil, err
	}
	return toModelPickupPoint(point), nil
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
