package graph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/FlavioOdas/store-graphql/graph"
	"github.com/FlavioOdas/store-graphql/graph/model"
	"github.com/FlavioOdas/store-graphql/internal/app/store"
	"github.com/FlavioOdas/store-graphql/internal/cookies"
)

// ---------------------------------------------------------------------------
// Mock StoreService
// ---------------------------------------------------------------------------

// mockStoreService implements graph.StoreService for tests.
// Each method field can be overridden per test; the zero value returns an
// empty result and no error.
type mockStoreService struct {
	orderFormFn          func(ctx context.Context, id string) (store.OrderForm, error)
	addItemsFn           func(ctx context.Context, orderFormID string, items []store.ItemInput) (store.OrderForm, error)
	updateItemsFn        func(ctx context.Context, orderFormID string, items []store.ItemInput) (store.OrderForm, error)
	addAssemblyOptionsFn func(ctx context.Context, orderFormID, itemUniqueID, assemblyID string, options []store.AssemblyOptionInput) (store.OrderForm, error)

	ordersFn      func(ctx context.Context) ([]store.Order, error)
	orderFn       func(ctx context.Context, orderID string) (store.Order, error)
	cancelOrderFn func(ctx context.Context, orderID, reason string) (bool, error)

	shippingSimulationFn func(ctx context.Context, items []store.SimulationItem, postalCode, country string) (store.SimulationResult, error)
	skuPickupSLAsFn      func(ctx context.Context, itemID, postalCode, country string) ([]store.SLA, error)
	skuPickupSLAFn       func(ctx context.Context, itemID, pickupID, postalCode, country string) (*store.SLA, error)
	nearPickupPointsFn   func(ctx context.Context, lat, long float64, maxDistance int) ([]store.PickupPoint, error)
	pickupPointFn        func(ctx context.Context, id string) (store.PickupPoint, error)

	updateProfileFn  func(ctx context.Context, orderFormID string, profile store.ClientProfileData) (store.OrderForm, error)
	updateShippingFn func(ctx context.Context, orderFormID string, address store.Address) (store.OrderForm, error)
	updatePaymentFn  func(ctx context.Context, orderFormID string, payments []store.PaymentInput) (store.OrderForm, error)
	updateIgnoreFn   func(ctx context.Context, orderFormID string, ignore bool) (store.OrderForm, error)
	updateCheckinFn  func(ctx context.Context, orderFormID string, checkin store.CheckinInput) (store.OrderForm, error)

	createPaymentSessionFn func(ctx context.Context) (store.PaymentSession, error)
	createPaymentTokensFn  func(ctx context.Context, sessionID string, cards []store.PaymentTokenRequest) ([]store.PaymentToken, error)
}

func (m *mockStoreService) OrderForm(ctx context.Context, id string) (store.OrderForm, error) {
	if m.orderFormFn != nil {
		return m.orderFormFn(ctx, id)
	}
	return store.OrderForm{}, nil
}

func (m *mockStoreService) AddItems(ctx context.Context, orderFormID string, items []store.ItemInput) (store.OrderForm, error) {
	if m.addItemsFn != nil {
		return m.addItemsFn(ctx, orderFormID, items)
	}
	return store.OrderForm{}, nil
}

func (m *mockStoreService) UpdateItems(ctx context.Context, orderFormID string, items []store.ItemInput) (store.OrderForm, error) {
	if m.updateItemsFn != nil {
		return m.updateItemsFn(ctx, orderFormID, items)
	}
	return store.OrderForm{}, nil
}

func (m *mockStoreService) AddAssemblyOptions(ctx context.Context, orderFormID, itemUniqueID, assemblyID string, options []store.AssemblyOptionInput) (store.OrderForm, error) {
	if m.addAssemblyOptionsFn != nil {
		return m.addAssemblyOptionsFn(ctx, orderFormID, itemUniqueID, assemblyID, options)
	}
	return store.OrderForm{}, nil
}

func (m *mockStoreService) Orders(ctx context.Context) ([]store.Order, error) {
	if m.ordersFn != nil {
		return m.ordersFn(ctx)
	}
	return nil, nil
}

func (m *mockStoreService) Order(ctx context.Context, orderID string) (store.Order, error) {
	if m.orderFn != nil {
		return m.orderFn(ctx, orderID)
	}
	return store.Order{}, nil
}

func (m *mockStoreService) CancelOrder(ctx context.Context, orderID, reason string) (bool, error) {
	if m.cancelOrderFn != nil {
		return m.cancelOrderFn(ctx, orderID, reason)
	}
	return false, nil
}

func (m *mockStoreService) ShippingSimulation(ctx context.Context, items []store.SimulationItem, postalCode, country string) (store.SimulationResult, error) {
	if m.shippingSimulationFn != nil {
		return m.shippingSimulationFn(ctx, items, postalCode, country)
	}
	return store.SimulationResult{}, nil
}

func (m *mockStoreService) SkuPickupSLAs(ctx context.Context, itemID, postalCode, country string) ([]store.SLA, error) {
	if m.skuPickupSLAsFn != nil {
		return m.skuPickupSLAsFn(ctx, itemID, postalCode, country)
	}
	return nil, nil
}

func (m *mockStoreService) SkuPickupSLA(ctx context.Context, itemID, pickupID, postalCode, country string) (*store.SLA, error) {
	if m.skuPickupSLAFn != nil {
		return m.skuPickupSLAFn(ctx, itemID, pickupID, postalCode, country)
	}
	return nil, nil
}

func (m *mockStoreService) NearPickupPoints(ctx context.Context, lat, long float64, maxDistance int) ([]store.PickupPoint, error) {
	if m.nearPickupPointsFn != nil {
		return m.nearPickupPointsFn(ctx, lat, long, maxDistance)
	}
	return nil, nil
}

func (m *mockStoreService) PickupPoint(ctx context.Context, id string) (store.PickupPoint, error) {
	if m.pickupPointFn != nil {
		return m.pickupPointFn(ctx, id)
	}
	return store.PickupPoint{}, nil
}

func (m *mockStoreService) UpdateOrderFormProfile(ctx context.Context, orderFormID string, profile store.ClientProfileData) (store.OrderForm, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, orderFormID, profile)
	}
	return store.OrderForm{}, nil
}

func (m *mockStoreService) UpdateOrderFormShipping(ctx context.Context, orderFormID string, address store.Address) (store.OrderForm, error) {
	if m.updateShippingFn != nil {
		return m.updateShippingFn(ctx, orderFormID, address)
	}
	return store.OrderForm{}, nil
}

func (m *mockStoreService) UpdateOrderFormPayment(ctx context.Context, orderFormID string, payments []store.PaymentInput) (store.OrderForm, error) {
	if m.updatePaymentFn != nil {
		return m.updatePaymentFn(ctx, orderFormID, payments)
	}
	return store.OrderForm{}, nil
}

func (m *mockStoreService) UpdateOrderFormIgnoreProfileData(ctx context.Context, orderFormID string, ignore bool) (store.OrderForm, error) {
	if m.updateIgnoreFn != nil {
		return m.updateIgnoreFn(ctx, orderFormID, ignore)
	}
	return store.OrderForm{}, nil
}

func (m *mockStoreService) UpdateOrderFormCheckin(ctx context.Context, orderFormID string, checkin store.CheckinInput) (store.OrderForm, error) {
	if m.updateCheckinFn != nil {
		return m.updateCheckinFn(ctx, orderFormID, checkin)
	}
	return store.OrderForm{}, nil
}

func (m *mockStoreService) CreatePaymentSession(ctx context.Context) (store.PaymentSession, error) {
	if m.createPaymentSessionFn != nil {
		return m.createPaymentSessionFn(ctx)
	}
	return store.PaymentSession{}, nil
}

func (m *mockStoreService) CreatePaymentTokens(ctx context.Context, sessionID string, cards []store.PaymentTokenRequest) ([]store.PaymentToken, error) {
	if m.createPaymentTokensFn != nil {
		return m.createPaymentTokensFn(ctx, sessionID, cards)
	}
	return nil, nil
}

// newResolver wires a Resolver backed by the provided mock service.
func newResolver(svc graph.StoreService) *graph.Resolver {
	return &graph.Resolver{Store: svc}
}

// cookieCtx returns a context carrying an order-form id as the checkout
// middleware would after parsing the inbound cookie.
func cookieCtx(orderFormID string) context.Context {
	return cookies.WithOrderFormID(context.Background(), orderFormID)
}

// ---------------------------------------------------------------------------
// Order-form id resolution: explicit argument vs. cookie context
// ---------------------------------------------------------------------------

func TestOrderFormResolver_ExplicitArgWins(t *testing.T) {
	var capturedID string
	r := newResolver(&mockStoreService{
		orderFormFn: func(_ context.Context, id string) (store.OrderForm, error) {
			capturedID = id
			return store.OrderForm{ID: id}, nil
		},
	})

	arg := "OF-arg"
	_, err := r.Query().OrderForm(cookieCtx("OF-cookie"), &arg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedID != "OF-arg" {
		t.Errorf("id: want OF-arg, got %q", capturedID)
	}
}

func TestOrderFormResolver_FallsBackToCookie(t *testing.T) {
	var capturedID string
	r := newResolver(&mockStoreService{
		orderFormFn: func(_ context.Context, id string) (store.OrderForm, error) {
			capturedID = id
			return store.OrderForm{ID: id}, nil
		},
	})

	_, err := r.Query().OrderForm(cookieCtx("OF-cookie"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedID != "OF-cookie" {
		t.Errorf("id: want OF-cookie, got %q", capturedID)
	}
}

func TestOrderFormResolver_EmptyArgFallsBackToCookie(t *testing.T) {
	var capturedID string
	r := newResolver(&mockStoreService{
		orderFormFn: func(_ context.Context, id string) (store.OrderForm, error) {
			capturedID = id
			return store.OrderForm{ID: id}, nil
		},
	})

	empty := ""
	_, err := r.Query().OrderForm(cookieCtx("OF-cookie"), &empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedID != "OF-cookie" {
		t.Errorf("id: want OF-cookie, got %q", capturedID)
	}
}

func TestOrderFormResolver_NoArgNoCookie_ForwardsEmpty(t *testing.T) {
	var capturedID string
	r := newResolver(&mockStoreService{
		orderFormFn: func(_ context.Context, id string) (store.OrderForm, error) {
			capturedID = id
			return store.OrderForm{}, &store.InputError{Msg: "orderFormId is required"}
		},
	})

	_, err := r.Query().OrderForm(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if capturedID != "" {
		t.Errorf("id: want empty, got %q", capturedID)
	}
}

// ---------------------------------------------------------------------------
// OrderForm type mapping
// ---------------------------------------------------------------------------

func TestOrderFormResolver_TypeMapping(t *testing.T) {
	r := newResolver(&mockStoreService{
		orderFormFn: func(_ context.Context, id string) (store.OrderForm, error) {
			return store.OrderForm{
				ID:           id,
				SalesChannel: "1",
				LoggedIn:     true,
				Value:        1250,
				Items: []store.OrderFormItem{
					{ID: "sku-1", UniqueID: "uid-1", Name: "Mug", Quantity: 2, Price: 625, ListPrice: 700, SellingPrice: 625},
				},
				MarketingData: &store.MarketingData{UTMSource: "social", MarketingTags: []string{"vip"}},
			}, nil
		},
	})

	arg := "OF-1"
	form, err := r.Query().OrderForm(context.Background(), &arg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.OrderFormID != "OF-1" {
		t.Errorf("OrderFormID: want OF-1, got %q", form.OrderFormID)
	}
	if form.Value != 12.5 {
		t.Errorf("Value: want 12.5, got %v", form.Value)
	}
	if !form.LoggedIn {
		t.Error("LoggedIn: want true")
	}
	if len(form.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(form.Items))
	}
	item := form.Items[0]
	if item.Price != 6.25 || item.ListPrice != 7 || item.SellingPrice != 6.25 {
		t.Errorf("item prices unexpected: %+v", item)
	}
	if item.Name == nil || *item.Name != "Mug" {
		t.Errorf("item.Name: want Mug, got %v", item.Name)
	}
	if form.MarketingData == nil || form.MarketingData.UtmSource == nil || *form.MarketingData.UtmSource != "social" {
		t.Errorf("MarketingData unexpected: %+v", form.MarketingData)
	}
}

func TestOrderFormResolver_EmptyStringsMapToNil(t *testing.T) {
	r := newResolver(&mockStoreService{
		orderFormFn: func(_ context.Context, id string) (store.OrderForm, error) {
			return store.OrderForm{ID: id, SalesChannel: "", UserType: ""}, nil
		},
	})

	arg := "OF-1"
	form, err := r.Query().OrderForm(context.Background(), &arg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.SalesChannel != nil {
		t.Errorf("empty SalesChannel should map to nil, got %v", form.SalesChannel)
	}
	if form.UserType != nil {
		t.Errorf("empty UserType should map to nil, got %v", form.UserType)
	}
	if form.MarketingData != nil {
		t.Errorf("absent MarketingData should map to nil, got %+v", form.MarketingData)
	}
}

func TestOrderFormResolver_ServiceError(t *testing.T) {
	r := newResolver(&mockStoreService{
		orderFormFn: func(_ context.Context, _ string) (store.OrderForm, error) {
			return store.OrderForm{}, errors.New("checkout unavailable")
		},
	})

	arg := "OF-1"
	_, err := r.Query().OrderForm(context.Background(), &arg)
	if err == nil {
		t.Fatal("expected service error, got nil")
	}
}

// ---------------------------------------------------------------------------
// AddItem mutation
// ---------------------------------------------------------------------------

func TestAddItemResolver_InputMapping(t *testing.T) {
	var capturedItems []store.ItemInput
	r := newResolver(&mockStoreService{
		addItemsFn: func(_ context.Context, _ string, items []store.ItemInput) (store.OrderForm, error) {
			capturedItems = items
			return store.OrderForm{ID: "OF-1"}, nil
		},
	})

	idx := 3
	_, err := r.Mutation().AddItem(cookieCtx("OF-1"), nil, []*model.ItemInput{
		{ID: "sku-1", Quantity: 2, Seller: "1", Index: &idx},
		{ID: "sku-bundle", Quantity: 1, Seller: "1", Options: []*model.AssemblyOptionInput{
			{AssemblyID: "gift-wrap", ID: "sku-ribbon", Quantity: 1, Seller: "1"},
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capturedItems) != 2 {
		t.Fatalf("expected 2 items, got %d", len(capturedItems))
	}
	if capturedItems[0].ID != "sku-1" || capturedItems[0].Quantity != 2 {
		t.Errorf("items[0] unexpected: %+v", capturedItems[0])
	}
	if capturedItems[0].Index == nil || *capturedItems[0].Index != 3 {
		t.Errorf("items[0].Index: want 3, got %v", capturedItems[0].Index)
	}
	if len(capturedItems[0].Options) != 0 {
		t.Errorf("items[0].Options: want none, got %+v", capturedItems[0].Options)
	}
	if len(capturedItems[1].Options) != 1 {
		t.Fatalf("items[1].Options: want 1, got %d", len(capturedItems[1].Options))
	}
	opt := capturedItems[1].Options[0]
	if opt.AssemblyID != "gift-wrap" || opt.ID != "sku-ribbon" {
		t.Errorf("option unexpected: %+v", opt)
	}
}

func TestAddItemResolver_ServiceError(t *testing.T) {
	r := newResolver(&mockStoreService{
		addItemsFn: func(_ context.Context, _ string, _ []store.ItemInput) (store.OrderForm, error) {
			return store.OrderForm{}, errors.New("sku unavailable")
		},
	})

	_, err := r.Mutation().AddItem(cookieCtx("OF-1"), nil, []*model.ItemInput{{ID: "sku-1", Quantity: 1, Seller: "1"}})
	if err == nil {
		t.Fatal("expected service error, got nil")
	}
}

// ---------------------------------------------------------------------------
// Orders / cancelOrder
// ---------------------------------------------------------------------------

func TestOrdersResolver_TypeMapping(t *testing.T) {
	r := newResolver(&mockStoreService{
		ordersFn: func(_ context.Context) ([]store.Order, error) {
			return []store.Order{
				{OrderID: "ord-1", Status: "invoiced", Value: 9900, CreationDate: "2024-01-15T10:00:00Z"},
			}, nil
		},
	})

	orders, err := r.Query().Orders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	o := orders[0]
	if o.OrderID != "ord-1" {
		t.Errorf("OrderID: want ord-1, got %q", o.OrderID)
	}
	if o.Value != 99 {
		t.Errorf("Value: want 99, got %v", o.Value)
	}
	if o.Status == nil || *o.Status != "invoiced" {
		t.Errorf("Status: want invoiced, got %v", o.Status)
	}
}

func TestCancelOrderResolver_Passthrough(t *testing.T) {
	var capturedID, capturedReason string
	r := newResolver(&mockStoreService{
		cancelOrderFn: func(_ context.Context, orderID, reason string) (bool, error) {
			capturedID, capturedReason = orderID, reason
			return true, nil
		},
	})

	reason := "changed my mind"
	ok, err := r.Mutation().CancelOrder(context.Background(), "ord-1", &reason)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}
	if capturedID != "ord-1" || capturedReason != "changed my mind" {
		t.Errorf("forwarded args unexpected: %q %q", capturedID, capturedReason)
	}
}

func TestCancelOrderResolver_NilReasonForwardedAsEmpty(t *testing.T) {
	var capturedReason string
	r := newResolver(&mockStoreService{
		cancelOrderFn: func(_ context.Context, _, reason string) (bool, error) {
			capturedReason = reason
			return true, nil
		},
	})

	_, err := r.Mutation().CancelOrder(context.Background(), "ord-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedReason != "" {
		t.Errorf("nil reason should forward as empty string, got %q", capturedReason)
	}
}

// ---------------------------------------------------------------------------
// Shipping queries
// ---------------------------------------------------------------------------

func TestShippingResolver_MappingAndForwarding(t *testing.T) {
	var capturedPostal, capturedCountry string
	r := newResolver(&mockStoreService{
		shippingSimulationFn: func(_ context.Context, items []store.SimulationItem, postalCode, country string) (store.SimulationResult, error) {
			capturedPostal, capturedCountry = postalCode, country
			return store.SimulationResult{
				Items: []store.SimulationResultItem{
					{ID: items[0].ID, Quantity: items[0].Quantity, Price: 7590, SellingPrice: 7590},
				},
				PostalCode: postalCode,
				Country:    country,
			}, nil
		},
	})

	postal := "01310-000"
	country := "BRA"
	result, err := r.Query().Shipping(context.Background(), []*model.SimulationItemInput{
		{ID: "sku-1", Quantity: 1, Seller: "1"},
	}, &postal, &country)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedPostal != postal || capturedCountry != country {
		t.Errorf("forwarded args unexpected: %q %q", capturedPostal, capturedCountry)
	}
	if len(result.Items) != 1 || result.Items[0].Price != 75.9 {
		t.Errorf("result.Items unexpected: %+v", result.Items)
	}
	if result.PostalCode == nil || *result.PostalCode != postal {
		t.Errorf("PostalCode: want %q, got %v", postal, result.PostalCode)
	}
}

func TestSkuPickupSLAResolver_NoMatchReturnsNil(t *testing.T) {
	r := newResolver(&mockStoreService{
		skuPickupSLAFn: func(_ context.Context, _, _, _, _ string) (*store.SLA, error) {
			return nil, nil
		},
	})

	sla, err := r.Query().SkuPickupSLA(context.Background(), "sku-1", "unknown", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sla != nil {
		t.Errorf("expected nil for no match, got %+v", sla)
	}
}

func TestSkuPickupSLAsResolver_TypeMapping(t *testing.T) {
	r := newResolver(&mockStoreService{
		skuPickupSLAsFn: func(_ context.Context, _, _, _ string) ([]store.SLA, error) {
			return []store.SLA{
				{
					ID:              "pickup-downtown",
					Name:            "Downtown",
					DeliveryChannel: store.DeliveryChannelPickup,
					Price:           0,
					PickupStoreInfo: &store.PickupStoreInfo{
						IsPickupStore: true,
						FriendlyName:  "Downtown Store",
						Address:       &store.Address{AddressID: "X"},
					},
				},
			}, nil
		},
	})

	slas, err := r.Query().SkuPickupSLAs(context.Background(), "sku-1", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slas) != 1 {
		t.Fatalf("expected 1 SLA, got %d", len(slas))
	}
	sla := slas[0]
	if sla.ID != "pickup-downtown" {
		t.Errorf("ID: want pickup-downtown, got %q", sla.ID)
	}
	if sla.PickupStoreInfo == nil || !sla.PickupStoreInfo.IsPickupStore {
		t.Fatalf("PickupStoreInfo unexpected: %+v", sla.PickupStoreInfo)
	}
	if sla.PickupStoreInfo.Address == nil || sla.PickupStoreInfo.Address.AddressID == nil || *sla.PickupStoreInfo.Address.AddressID != "X" {
		t.Errorf("pickup address unexpected: %+v", sla.PickupStoreInfo.Address)
	}
}

func TestNearPickupPointsResolver_TypeMapping(t *testing.T) {
	var capturedLat, capturedLong float64
	var capturedRadius int
	r := newResolver(&mockStoreService{
		nearPickupPointsFn: func(_ context.Context, lat, long float64, maxDistance int) ([]store.PickupPoint, error) {
			capturedLat, capturedLong, capturedRadius = lat, long, maxDistance
			return []store.PickupPoint{
				{
					ID:       "pp-downtown",
					Name:     "Downtown Store",
					IsActive: true,
					Distance: 2.4,
					Address:  &store.Address{AddressID: "X", City: "São Paulo"},
					BusinessHours: []store.BusinessHour{
						{DayOfWeek: 1, OpeningTime: "09:00", ClosingTime: "18:00"},
					},
				},
			}, nil
		},
	})

	radius := 10
	points, err := r.Query().NearPickupPoints(context.Background(), -23.55, -46.63, &radius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedLat != -23.55 || capturedLong != -46.63 || capturedRadius != 10 {
		t.Errorf("forwarded args unexpected: %v %v %d", capturedLat, capturedLong, capturedRadius)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 pickup point, got %d", len(points))
	}
	p := points[0]
	if p.ID != "pp-downtown" || !p.IsActive || p.Distance != 2.4 {
		t.Errorf("point unexpected: %+v", p)
	}
	if p.Name == nil || *p.Name != "Downtown Store" {
		t.Errorf("Name: want Downtown Store, got %v", p.Name)
	}
	if len(p.BusinessHours) != 1 || p.BusinessHours[0].DayOfWeek != 1 {
		t.Fatalf("BusinessHours unexpected: %+v", p.BusinessHours)
	}
	if p.BusinessHours[0].OpeningTime == nil || *p.BusinessHours[0].OpeningTime != "09:00" {
		t.Errorf("OpeningTime: want 09:00, got %v", p.BusinessHours[0].OpeningTime)
	}
}

func TestNearPickupPointsResolver_NilRadiusForwardedAsZero(t *testing.T) {
	var capturedRadius int
	r := newResolver(&mockStoreService{
		nearPickupPointsFn: func(_ context.Context, _, _ float64, maxDistance int) ([]store.PickupPoint, error) {
			capturedRadius = maxDistance
			return nil, nil
		},
	})

	_, err := r.Query().NearPickupPoints(context.Background(), -23.55, -46.63, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedRadius != 0 {
		t.Errorf("nil radius should forward as 0, got %d", capturedRadius)
	}
}

func TestPickupPointResolver_IDForwarded(t *testing.T) {
	var capturedID string
	r := newResolver(&mockStoreService{
		pickupPointFn: func(_ context.Context, id string) (store.PickupPoint, error) {
			capturedID = id
			return store.PickupPoint{ID: id, Name: "Mall Kiosk"}, nil
		},
	})

	point, err := r.Query().PickupPoint(context.Background(), "pp-mall")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedID != "pp-mall" {
		t.Errorf("id: want pp-mall, got %q", capturedID)
	}
	if point.ID != "pp-mall" || point.Name == nil || *point.Name != "Mall Kiosk" {
		t.Errorf("point unexpected: %+v", point)
	}
}

// ---------------------------------------------------------------------------
// Payment mutations
// ---------------------------------------------------------------------------

func TestUpdateOrderFormPaymentResolver_ConvertsToCents(t *testing.T) {
	var capturedPayments []store.PaymentInput
	r := newResolver(&mockStoreService{
		updatePaymentFn: func(_ context.Context, _ string, payments []store.PaymentInput) (store.OrderForm, error) {
			capturedPayments = payments
			return store.OrderForm{ID: "OF-1"}, nil
		},
	})

	_, err := r.Mutation().UpdateOrderFormPayment(cookieCtx("OF-1"), nil, []*model.OrderFormPaymentInput{
		{PaymentSystem: "2", ReferenceValue: 75.9, Value: 75.9, Installments: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capturedPayments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(capturedPayments))
	}
	p := capturedPayments[0]
	if p.ReferenceValue != 7590 || p.Value != 7590 {
		t.Errorf("cents conversion unexpected: %+v", p)
	}
}

func TestCreatePaymentTokensResolver_InputMapping(t *testing.T) {
	var capturedSession string
	var capturedCards []store.PaymentTokenRequest
	r := newResolver(&mockStoreService{
		createPaymentTokensFn: func(_ context.Context, sessionID string, cards []store.PaymentTokenRequest) ([]store.PaymentToken, error) {
			capturedSession = sessionID
			capturedCards = cards
			return []store.PaymentToken{{Token: "tok-1", Bin: "411111", LastDigits: "1111"}}, nil
		},
	})

	tokens, err := r.Mutation().CreatePaymentTokens(context.Background(), "sess-1", []*model.PaymentTokenInput{
		{PaymentSystem: "2", CardHolder: "JOHN DOE", CardNumber: "4111111111111111", Csc: "123", ExpiryDate: "12/30"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedSession != "sess-1" {
		t.Errorf("sessionID: want sess-1, got %q", capturedSession)
	}
	if len(capturedCards) != 1 || capturedCards[0].CSC != "123" {
		t.Errorf("cards unexpected: %+v", capturedCards)
	}
	if len(tokens) != 1 || tokens[0].Token != "tok-1" {
		t.Fatalf("tokens unexpected: %+v", tokens)
	}
	if tokens[0].Bin == nil || *tokens[0].Bin != "411111" {
		t.Errorf("Bin: want 411111, got %v", tokens[0].Bin)
	}
}

// ---------------------------------------------------------------------------
// Full checkout workflow through the resolver layer
// ---------------------------------------------------------------------------

// TestWorkflow_FullCheckoutFlow exercises the complete buyer journey:
//  1. Load the order form (id from the checkout cookie).
//  2. Add an item to the cart.
//  3. Simulate shipping for the cart.
//  4. Attach a shipping address.
//  5. Tokenize a card and attach the payment.
func TestWorkflow_FullCheckoutFlow(t *testing.T) {
	ctx := cookieCtx("OF-1")

	baseForm := store.OrderForm{ID: "OF-1", SalesChannel: "1", Value: 0}
	formWithItem := store.OrderForm{
		ID:    "OF-1",
		Value: 7590,
		Items: []store.OrderFormItem{
			{ID: "sku-1", UniqueID: "uid-1", Quantity: 1, Price: 7590, SellingPrice: 7590},
		},
	}

	svc := &mockStoreService{
		orderFormFn: func(_ context.Context, id string) (store.OrderForm, error) {
			if id != "OF-1" {
				t.Errorf("OrderForm called with wrong id: %q", id)
			}
			return baseForm, nil
		},
		addItemsFn: func(_ context.Context, orderFormID string, items []store.ItemInput) (store.OrderForm, error) {
			if orderFormID != "OF-1" {
				t.Errorf("AddItems called with wrong id: %q", orderFormID)
			}
			if len(items) != 1 || items[0].ID != "sku-1" {
				t.Errorf("AddItems items unexpected: %+v", items)
			}
			return formWithItem, nil
		},
		shippingSimulationFn: func(_ context.Context, items []store.SimulationItem, postalCode, _ string) (store.SimulationResult, error) {
			if len(items) != 1 || items[0].ID != "sku-1" {
				t.Errorf("simulation items unexpected: %+v", items)
			}
			return store.SimulationResult{
				LogisticsInfo: []store.LogisticsInfo{
					{ItemIndex: 0, SLAs: []store.SLA{{ID: "express", DeliveryChannel: "delivery", Price: 1290}}},
				},
				PostalCode: postalCode,
			}, nil
		},
		updateShippingFn: func(_ context.Context, orderFormID string, address store.Address) (store.OrderForm, error) {
			if address.PostalCode != "01310-000" {
				t.Errorf("address.PostalCode: want 01310-000, got %q", address.PostalCode)
			}
			out := formWithItem
			out.ShippingData = &store.ShippingData{Address: &address}
			return out, nil
		},
		createPaymentSessionFn: func(_ context.Context) (store.PaymentSession, error) {
			return store.PaymentSession{ID: "sess-1"}, nil
		},
		createPaymentTokensFn: func(_ context.Context, sessionID string, _ []store.PaymentTokenRequest) ([]store.PaymentToken, error) {
			if sessionID != "sess-1" {
				t.Errorf("tokens created against wrong session: %q", sessionID)
			}
			return []store.PaymentToken{{Token: "tok-1"}}, nil
		},
		updatePaymentFn: func(_ context.Context, orderFormID string, payments []store.PaymentInput) (store.OrderForm, error) {
			if len(payments) != 1 || payments[0].TokenID != "tok-1" {
				t.Errorf("payments unexpected: %+v", payments)
			}
			return formWithItem, nil
		},
	}

	resolver := newResolver(svc)
	qr := resolver.Query()
	mr := resolver.Mutation()

	// Step 1: load the order form via the cookie-carried id.
	form, err := qr.OrderForm(ctx, nil)
	if err != nil {
		t.Fatalf("OrderForm: %v", err)
	}
	if form.OrderFormID != "OF-1" {
		t.Fatalf("form.OrderFormID: want OF-1, got %q", form.OrderFormID)
	}

	// Step 2: add an item.
	form, err = mr.AddItem(ctx, nil, []*model.ItemInput{{ID: "sku-1", Quantity: 1, Seller: "1"}})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(form.Items) != 1 || form.Items[0].Price != 75.9 {
		t.Fatalf("form.Items unexpected: %+v", form.Items)
	}

	// Step 3: simulate shipping for the cart contents.
	postal := "01310-000"
	sim, err := qr.Shipping(ctx, []*model.SimulationItemInput{
		{ID: form.Items[0].ID, Quantity: form.Items[0].Quantity, Seller: "1"},
	}, &postal, nil)
	if err != nil {
		t.Fatalf("Shipping: %v", err)
	}
	if len(sim.LogisticsInfo) != 1 || len(sim.LogisticsInfo[0].Slas) != 1 {
		t.Fatalf("simulation unexpected: %+v", sim.LogisticsInfo)
	}
	if sim.LogisticsInfo[0].Slas[0].Price != 12.9 {
		t.Errorf("sla price: want 12.9, got %v", sim.LogisticsInfo[0].Slas[0].Price)
	}

	// Step 4: attach the shipping address.
	form, err = mr.UpdateOrderFormShipping(ctx, nil, model.OrderFormAddressInput{
		PostalCode: &postal,
		Country:    strPtr("BRA"),
	})
	if err != nil {
		t.Fatalf("UpdateOrderFormShipping: %v", err)
	}
	if form.ShippingData == nil || form.ShippingData.Address == nil {
		t.Fatal("expected shipping address on the form")
	}

	// Step 5: tokenize the card and attach the payment.
	session, err := mr.CreatePaymentSession(ctx)
	if err != nil {
		t.Fatalf("CreatePaymentSession: %v", err)
	}
	tokens, err := mr.CreatePaymentTokens(ctx, session.ID, []*model.PaymentTokenInput{
		{PaymentSystem: "2", CardHolder: "JOHN DOE", CardNumber: "4111111111111111", Csc: "123", ExpiryDate: "12/30"},
	})
	if err != nil {
		t.Fatalf("CreatePaymentTokens: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	tokenID := tokens[0].Token
	_, err = mr.UpdateOrderFormPayment(ctx, nil, []*model.OrderFormPaymentInput{
		{PaymentSystem: "2", ReferenceValue: 75.9, Value: 75.9, Installments: 1, TokenID: &tokenID},
	})
	if err != nil {
		t.Fatalf("UpdateOrderFormPayment: %v", err)
	}
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }
