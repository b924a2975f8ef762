package graph

// This file will not be regenerated automatically.
//
// It serves as dependency injection for your app, add any dependencies you require here.

import (
	"context"

	"github.com/FlavioOdas/store-graphql/internal/app/store"
)

// StoreService is the interface the domain service must satisfy.
// *store.Service implements it automatically (structural typing); defining it
// here lets tests inject a lightweight mock without touching the real
// platform HTTP clients.
type StoreService interface {
	OrderForm(ctx context.Context, id string) (store.OrderForm, error)
	AddItems(ctx context.Context, orderFormID string, items []store.ItemInput) (store.OrderForm, error)
	UpdateItems(ctx context.Context, orderFormID string, items []store.ItemInput) (store.OrderForm, error)
	AddAssemblyOptions(ctx context.Context, orderFormID, itemUniqueID, assemblyID string, options []store.AssemblyOptionInput) (store.OrderForm, error)

	Orders(ctx context.Context) ([]store.Order, error)
	Order(ctx context.Context, orderID string) (store.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) (bool, error)

	ShippingSimulation(ctx context.Context, items []store.SimulationItem, postalCode, country string) (store.SimulationResult, error)
	SkuPickupSLAs(ctx context.Context, itemID, postalCode, country string) ([]store.SLA, error)
	SkuPickupSLA(ctx context.Context, itemID, pickupID, postalCode, country string) (*store.SLA, error)
	NearPickupPoints(ctx context.Context, lat, long float64, maxDistance int) ([]store.PickupPoint, error)
	PickupPoint(ctx context.Context, id string) (store.PickupPoint, error)

	UpdateOrderFormProfile(ctx context.Context, orderFormID string, profile store.ClientProfileData) (store.OrderForm, error)
	UpdateOrderFormShipping(ctx context.Context, orderFormID string, address store.Address) (store.OrderForm, error)
	UpdateOrderFormPayment(ctx context.Context, orderFormID string, payments []store.PaymentInput) (store.OrderForm, error)
	UpdateOrderFormIgnoreProfileData(ctx context.Context, orderFormID string, ignore bool) (store.OrderForm, error)
	UpdateOrderFormCheckin(ctx context.Context, orderFormID string, checkin store.CheckinInput) (store.OrderForm, error)

	CreatePaymentSession(ctx context.Context) (store.PaymentSession, error)
	CreatePaymentTokens(ctx context.Context, sessionID string, cards []store.PaymentTokenRequest) ([]store.PaymentToken, error)
}

// Resolver is the root dependency-injection struct wired in cmd/api/main.go.
// Store accepts any value that satisfies StoreService — in production that is
// *store.Service; in tests it is a lightweight stub.
type Resolver struct {
	Store StoreService
}

// stringPtrOrNil converts an empty string to nil and a non-empty string to a
// pointer. Used when mapping service layer strings to nullable GraphQL fields.
func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// deref returns the pointed-to string, or "" for nil. The inverse of
// stringPtrOrNil, used when mapping nullable GraphQL arguments to the
// service layer.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
