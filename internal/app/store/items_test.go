package store

import (
	"context"
	"net/http"
	"testing"
)

func addItemResp(items ...map[string]any) map[string]any {
	return map[string]any{
		"orderFormId": "OF-1",
		"items":       items,
	}
}

func respItem(sku, uniqueID string) map[string]any {
	return map[string]any{
		"id":       sku,
		"uniqueId": uniqueID,
		"quantity": 1,
		"seller":   "1",
		"price":    1000,
	}
}

// ---------------------------------------------------------------------------
// AddItems
// ---------------------------------------------------------------------------

func TestAddItems_NoOptions_SingleCallNoRefetch(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "/items", data: addItemResp(respItem("sku-1", "uid-1"))},
		{method: http.MethodGet, keyword: "/orderForm/", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	form, err := svc.AddItems(context.Background(), "OF-1", []ItemInput{
		{ID: "sku-1", Quantity: 1, Seller: "1"},
	})
	if err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	if len(form.Items) != 1 || form.Items[0].ID != "sku-1" {
		t.Errorf("form.Items unexpected: %+v", form.Items)
	}
	if got := srv.Hits("/items"); got != 1 {
		t.Errorf("add-item calls: want 1, got %d", got)
	}
	if got := srv.Hits("/orderForm/"); got != 0 {
		t.Errorf("re-fetches: want 0, got %d", got)
	}
}

func TestAddItems_WithOptions_AttachesAndRefetches(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "assemblyOptions", data: map[string]any{}},
		{method: http.MethodPost, keyword: "/items", data: addItemResp(
			respItem("sku-plain", "uid-1"),
			respItem("sku-bundle", "uid-2"),
		)},
		{method: http.MethodGet, keyword: "/orderForm/", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	_, err := svc.AddItems(context.Background(), "OF-1", []ItemInput{
		{ID: "sku-plain", Quantity: 1, Seller: "1"},
		{ID: "sku-bundle", Quantity: 1, Seller: "1", Options: []AssemblyOptionInput{
			{AssemblyID: "gift-wrap", ID: "sku-ribbon", Quantity: 1, Seller: "1"},
		}},
	})
	if err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	if got := srv.Hits("/items"); got != 1 {
		t.Errorf("add-item calls: want 1, got %d", got)
	}
	if got := srv.Hits("assemblyOptions"); got != 1 {
		t.Errorf("assembly calls: want 1, got %d", got)
	}
	if got := srv.Hits("/orderForm/"); got != 1 {
		t.Errorf("re-fetches: want 1, got %d", got)
	}
}

func TestAddItems_TwoItemsWithOptions_TwoAttachCalls(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "assemblyOptions", data: map[string]any{}},
		{method: http.MethodPost, keyword: "/items", data: addItemResp(
			respItem("sku-a", "uid-1"),
			respItem("sku-b", "uid-2"),
		)},
		{method: http.MethodGet, keyword: "/orderForm/", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	opts := []AssemblyOptionInput{{AssemblyID: "engraving", ID: "sku-text", Quantity: 1, Seller: "1"}}
	_, err := svc.AddItems(context.Background(), "OF-1", []ItemInput{
		{ID: "sku-a", Quantity: 1, Seller: "1", Options: opts},
		{ID: "sku-b", Quantity: 1, Seller: "1", Options: opts},
	})
	if err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	if got := srv.Hits("assemblyOptions"); got != 2 {
		t.Errorf("assembly calls: want 2, got %d", got)
	}
	if got := srv.Hits("/orderForm/"); got != 1 {
		t.Errorf("re-fetches: want 1, got %d", got)
	}
}

func TestAddItems_Validation(t *testing.T) {
	svc := newSvc(t, newRoutingServer(t, nil))

	if _, err := svc.AddItems(context.Background(), "", []ItemInput{{ID: "sku-1"}}); !IsInputError(err) {
		t.Errorf("missing orderFormId: expected InputError, got %v", err)
	}
	if _, err := svc.AddItems(context.Background(), "OF-1", nil); !IsInputError(err) {
		t.Errorf("empty items: expected InputError, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func TestAddedItemIndex_ScansFromTail(t *testing.T) {
	items := []OrderFormItem{
		{ID: "sku-1", UniqueID: "old"},
		{ID: "sku-2", UniqueID: "uid-2"},
		{ID: "sku-1", UniqueID: "new"},
	}
	used := map[int]bool{}

	if got := addedItemIndex(items, "sku-1", used); got != 2 {
		t.Errorf("first lookup: want index 2, got %d", got)
	}
	used[2] = true
	if got := addedItemIndex(items, "sku-1", used); got != 0 {
		t.Errorf("second lookup: want index 0, got %d", got)
	}
	if got := addedItemIndex(items, "sku-absent", used); got != -1 {
		t.Errorf("absent sku: want -1, got %d", got)
	}
}

func TestAddedItemIndex_SkipsAssemblyChildren(t *testing.T) {
	parent := 0
	items := []OrderFormItem{
		{ID: "sku-1", UniqueID: "uid-1"},
		{ID: "sku-1", UniqueID: "uid-child", ParentItemIndex: &parent},
	}
	if got := addedItemIndex(items, "sku-1", map[int]bool{}); got != 0 {
		t.Errorf("want parent index 0, got %d", got)
	}
}

func TestGroupOptionsByAssembly(t *testing.T) {
	groups := groupOptionsByAssembly([]AssemblyOptionInput{
		{AssemblyID: "wrap", ID: "a", Quantity: 1, Seller: "1"},
		{AssemblyID: "card", ID: "b", Quantity: 1, Seller: "1"},
		{AssemblyID: "wrap", ID: "c", Quantity: 2, Seller: "1"},
	})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].assemblyID != "wrap" || len(groups[0].items) != 2 {
		t.Errorf("groups[0] unexpected: %+v", groups[0])
	}
	if groups[1].assemblyID != "card" || len(groups[1].items) != 1 {
		t.Errorf("groups[1] unexpected: %+v", groups[1])
	}
}

// ---------------------------------------------------------------------------
// UpdateItems / AddAssemblyOptions
// ---------------------------------------------------------------------------

func TestUpdateItems(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "/items/update", data: addItemResp(respItem("sku-1", "uid-1"))},
	})
	svc := newSvc(t, srv)

	form, err := svc.UpdateItems(context.Background(), "OF-1", []ItemInput{
		{ID: "sku-1", Quantity: 3, Seller: "1"},
	})
	if err != nil {
		t.Fatalf("UpdateItems: %v", err)
	}
	if form.ID != "OF-1" {
		t.Errorf("form.ID: want OF-1, got %q", form.ID)
	}
}

func TestAddAssemblyOptions_TargetsItemByUniqueID(t *testing.T) {
	current := addItemResp(respItem("sku-a", "uid-a"), respItem("sku-b", "uid-b"))
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "/items/1/assemblyOptions/", data: map[string]any{}},
		{method: http.MethodGet, keyword: "/orderForm/", data: current},
	})
	svc := newSvc(t, srv)

	_, err := svc.AddAssemblyOptions(context.Background(), "OF-1", "uid-b", "gift-wrap", []AssemblyOptionInput{
		{AssemblyID: "gift-wrap", ID: "sku-ribbon", Quantity: 1, Seller: "1"},
	})
	if err != nil {
		t.Fatalf("AddAssemblyOptions: %v", err)
	}
	if got := srv.Hits("/items/1/assemblyOptions/"); got != 1 {
		t.Errorf("assembly calls for index 1: want 1, got %d", got)
	}
	// fetch before + re-fetch after
	if got := srv.Hits("/orderForm/"); got != 2 {
		t.Errorf("order-form fetches: want 2, got %d", got)
	}
}

func TestAddAssemblyOptions_UnknownItem(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "/orderForm/", data: addItemResp(respItem("sku-a", "uid-a"))},
	})
	svc := newSvc(t, srv)

	_, err := svc.AddAssemblyOptions(context.Background(), "OF-1", "uid-missing", "gift-wrap", []AssemblyOptionInput{
		{AssemblyID: "gift-wrap", ID: "sku-ribbon", Quantity: 1, Seller: "1"},
	})
	if !IsInputError(err) {
		t.Errorf("expected InputError for unknown item, got %v", err)
	}
}
