package store

import (
	"context"
	"fmt"
)

type orderItemsPayload struct {
	OrderItems []ItemInput `json:"orderItems"`
}

type assemblyPayload struct {
	NoSplitItem bool                `json:"noSplitItem"`
	Composition assemblyComposition `json:"composition"`
}

type assemblyComposition struct {
	Items []assemblyCompositionItem `json:"items"`
}

type assemblyCompositionItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Seller   string `json:"seller"`
}

// ---------------------------------------------------------------------------
// AddItems
// ---------------------------------------------------------------------------

// AddItems adds items to the order form and attaches any assembly options.
//
// The base add-item call receives every item with its options stripped
// (ItemInput marshals without them). Each item that carried options then
// gets one follow-up call per assembly id, targeting the index the platform
// assigned to it. When no item carried options the add-item response is
// already the current form and is returned directly; otherwise the form is
// re-fetched, since attaching options changes computed totals and item ids
// not reflected in the add-item response.
func (s *Service) AddItems(ctx context.Context, orderFormID string, items []ItemInput) (OrderForm, error) {
	if orderFormID == "" {
		return OrderForm{}, errInput("orderFormId is required")
	}
	if len(items) == 0 {
		return OrderForm{}, errInput("items must not be empty")
	}

	var withOptions []ItemInput
	for _, it := range items {
		if len(it.Options) > 0 {
			withOptions = append(withOptions, it)
		}
	}

	var form OrderForm
	if err := s.platform.Post(ctx, itemsPath(orderFormID), orderItemsPayload{OrderItems: items}, &form); err != nil {
		return OrderForm{}, err
	}
	if len(withOptions) == 0 {
		return form, nil
	}

	used := make(map[int]bool, len(withOptions))
	for _, it := range withOptions {
		idx := addedItemIndex(form.Items, it.ID, used)
		if idx < 0 {
			return OrderForm{}, fmt.Errorf("added item %s not found in order form %s", it.ID, orderFormID)
		}
		used[idx] = true
		for _, group := range groupOptionsByAssembly(it.Options) {
			payload := assemblyPayload{
				NoSplitItem: true,
				Composition: assemblyComposition{Items: group.items},
			}
			if err := s.platform.Post(ctx, assemblyPath(orderFormID, idx, group.assemblyID), payload, nil); err != nil {
				return OrderForm{}, err
			}
		}
	}

	return s.fetchOrderForm(ctx, orderFormID)
}

// addedItemIndex locates the just-added item for skuID in the returned item
// list. The platform appends new items, so the scan runs from the tail;
// used guards against two input items sharing a sku.
func addedItemIndex(items []OrderFormItem, skuID string, used map[int]bool) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].ID == skuID && !used[i] && !items[i].IsAssemblyChild() {
			return i
		}
	}
	return -1
}

type assemblyGroup struct {
	assemblyID string
	items      []assemblyCompositionItem
}

// groupOptionsByAssembly buckets options by assembly id, preserving
// first-seen order so follow-up calls are deterministic.
func groupOptionsByAssembly(options []AssemblyOptionInput) []assemblyGroup {
	var groups []assemblyGroup
	index := make(map[string]int, len(options))
	for _, opt := range options {
		item := assemblyCompositionItem{
			ID:       opt.ID,
			Quantity: opt.Quantity,
			Seller:   opt.Seller,
		}
		if i, ok := index[opt.AssemblyID]; ok {
			groups[i].items = append(groups[i].items, item)
			continue
		}
		index[opt.AssemblyID] = len(groups)
		groups = append(groups, assemblyGroup{assemblyID: opt.AssemblyID, items: []assemblyCompositionItem{item}})
	}
	return groups
}

// ---------------------------------------------------------------------------
// UpdateItems
// ---------------------------------------------------------------------------

// UpdateItems rewrites quantities (or removes, with quantity 0) of items
// already in the order form.
func (s *Service) UpdateItems(ctx context.Context, orderFormID string, items []ItemInput) (OrderForm, error) {
	if orderFormID == "" {
		return OrderForm{}, errInput("orderFormId is required")
	}
	if len(items) == 0 {
		return OrderForm{}, errInput("items must not be empty")
	}

	var form OrderForm
	if err := s.platform.Post(ctx, itemsPath(orderFormID)+"/update", orderItemsPayload{OrderItems: items}, &form); err != nil {
		return OrderForm{}, err
	}
	return form, nil
}

// ---------------------------------------------------------------------------
// AddAssemblyOptions
// ---------------------------------------------------------------------------

// AddAssemblyOptions attaches assembly options to an item already present in
// the order form, addressed by its uniqueId.
func (s *Service) AddAssemblyOptions(ctx context.Context, orderFormID, itemUniqueID, assemblyID string, options []AssemblyOptionInput) (OrderForm, error) {
	if orderFormID == "" {
		return OrderForm{}, errInput("orderFormId is required")
	}
	if itemUniqueID == "" {
		return OrderForm{}, errInput("itemId is required")
	}
	if len(options) == 0 {
		return OrderForm{}, errInput("options must not be empty")
	}

	form, err := s.fetchOrderForm(ctx, orderFormID)
	if err != nil {
		return OrderForm{}, err
	}
	idx := -1
	for i, it := range form.Items {
		if it.UniqueID == itemUniqueID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return OrderForm{}, errInput("item not found in order form")
	}

	composition := make([]assemblyCompositionItem, 0, len(options))
	for _, opt := range options {
		composition = append(composition, assemblyCompositionItem{
			ID:       opt.ID,
			Quantity: opt.Quantity,
			Seller:   opt.Seller,
		})
	}
	payload := assemblyPayload{
		NoSplitItem: true,
		Composition: assemblyComposition{Items: composition},
	}
	if err := s.platform.Post(ctx, assemblyPath(orderFormID, idx, assemblyID), payload, nil); err != nil {
		return OrderForm{}, err
	}

	return s.fetchOrderForm(ctx, orderFormID)
}
