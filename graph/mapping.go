package graph

import (
	"math"

	"github.com/FlavioOdas/store-graphql/graph/model"
	"github.com/FlavioOdas/store-graphql/internal/app/store"
)

// ---------------------------------------------------------------------------
// Service -> model
// ---------------------------------------------------------------------------

func toModelOrderForm(f store.OrderForm) *model.OrderForm {
	return &model.OrderForm{
		OrderFormID:           f.ID,
		SalesChannel:          stringPtrOrNil(f.SalesChannel),
		LoggedIn:              f.LoggedIn,
		UserProfileID:         stringPtrOrNil(f.UserProfileID),
		UserType:              stringPtrOrNil(f.UserType),
		Value:                 store.NormalizePrice(f.Value),
		Items:                 toModelItems(f.Items),
		MarketingData:         toModelMarketingData(f.MarketingData),
		ClientProfileData:     toModelClientProfile(f.ClientProfileData),
		ClientPreferencesData: toModelClientPreferences(f.ClientPreferencesData),
		StorePreferencesData:  toModelStorePreferences(f.StorePreferencesData),
		ShippingData:          toModelShippingData(f.ShippingData),
		Messages:              toModelMessages(f.Messages),
	}
}

func toModelItems(items []store.OrderFormItem) []*model.OrderFormItem {
	out := make([]*model.OrderFormItem, 0, len(items))
	for _, it := range items {
		out = append(out, &model.OrderFormItem{
			ID:                    it.ID,
			UniqueID:              it.UniqueID,
			ProductID:             stringPtrOrNil(it.ProductID),
			Name:                  stringPtrOrNil(it.Name),
			SkuName:               stringPtrOrNil(it.SkuName),
			Quantity:              it.Quantity,
			Seller:                stringPtrOrNil(it.Seller),
			Price:                 store.NormalizePrice(it.Price),
			ListPrice:             store.NormalizePrice(it.ListPrice),
			SellingPrice:          store.NormalizePrice(it.SellingPrice),
			ImageURL:              stringPtrOrNil(it.ImageURL),
			DetailURL:             stringPtrOrNil(it.DetailURL),
			Availability:          stringPtrOrNil(it.Availability),
			ParentItemIndex:       it.ParentItemIndex,
			ParentAssemblyBinding: it.ParentAssemblyBinding,
		})
	}
	return out
}

func toModelMarketingData(md *store.MarketingData) *model.MarketingData {
	if md == nil {
		return nil
	}
	return &model.MarketingData{
		UtmSource:     stringPtrOrNil(md.UTMSource),
		UtmMedium:     stringPtrOrNil(md.UTMMedium),
		UtmCampaign:   stringPtrOrNil(md.UTMCampaign),
		UtmiCampaign:  stringPtrOrNil(md.UTMICampaign),
		UtmiPage:      stringPtrOrNil(md.UTMIPage),
		UtmiPart:      stringPtrOrNil(md.UTMIPart),
		Coupon:        stringPtrOrNil(md.Coupon),
		MarketingTags: md.MarketingTags,
	}
}

func toModelClientProfile(p *store.ClientProfileData) *model.ClientProfileData {
	if p == nil {
		return nil
	}
	return &model.ClientProfileData{
		Email:         stringPtrOrNil(p.Email),
		FirstName:     stringPtrOrNil(p.FirstName),
		LastName:      stringPtrOrNil(p.LastName),
		Document:      stringPtrOrNil(p.Document),
		DocumentType:  stringPtrOrNil(p.DocumentType),
		Phone:         stringPtrOrNil(p.Phone),
		CorporateName: stringPtrOrNil(p.CorporateName),
		IsCorporate:   p.IsCorporate,
	}
}

func toModelClientPreferences(p *store.ClientPreferencesData) *model.ClientPreferencesData {
	if p == nil {
		return nil
	}
	return &model.ClientPreferencesData{
		Locale:          stringPtrOrNil(p.Locale),
		OptinNewsLetter: p.OptinNewsLetter,
	}
}

func toModelStorePreferences(p *store.StorePreferencesData) *model.StorePreferencesData {
	if p == nil {
		return nil
	}
	return &model.StorePreferencesData{
		CountryCode:  stringPtrOrNil(p.CountryCode),
		CurrencyCode: stringPtrOrNil(p.CurrencyCode),
		TimeZone:     stringPtrOrNil(p.TimeZone),
	}
}

func toModelShippingData(sd *store.ShippingData) *model.ShippingData {
	if sd == nil {
		return nil
	}
	available := make([]*model.Address, 0, len(sd.AvailableAddresses))
	for i := range sd.AvailableAddresses {
		available = append(available, toModelAddress(&sd.AvailableAddresses[i]))
	}
	return &model.ShippingData{
		Address:            toModelAddress(sd.Address),
		AvailableAddresses: available,
		LogisticsInfo:      toModelLogistics(sd.LogisticsInfo),
	}
}

func toModelAddress(a *store.Address) *model.Address {
	if a == nil {
		return nil
	}
	return &model.Address{
		AddressID:      stringPtrOrNil(a.AddressID),
		AddressType:    stringPtrOrNil(a.AddressType),
		ReceiverName:   stringPtrOrNil(a.ReceiverName),
		PostalCode:     stringPtrOrNil(a.PostalCode),
		City:           stringPtrOrNil(a.City),
		State:          stringPtrOrNil(a.State),
		Country:        stringPtrOrNil(a.Country),
		Street:         stringPtrOrNil(a.Street),
		Number:         stringPtrOrNil(a.Number),
		Neighborhood:   stringPtrOrNil(a.Neighborhood),
		Complement:     stringPtrOrNil(a.Complement),
		GeoCoordinates: a.GeoCoordinates,
	}
}

func toModelLogistics(lis []store.LogisticsInfo) []*model.LogisticsInfo {
	out := make([]*model.LogisticsInfo, 0, len(lis))
	for _, li := range lis {
		slas := make([]*model.SLA, 0, len(li.SLAs))
		for i := range li.SLAs {
			slas = append(slas, toModelSLA(li.SLAs[i]))
		}
		out = append(out, &model.LogisticsInfo{
			ItemIndex:   li.ItemIndex,
			SelectedSLA: stringPtrOrNil(li.SelectedSLA),
			Slas:        slas,
		})
	}
	return out
}

func toModelSLA(sla store.SLA) *model.SLA {
	out := &model.SLA{
		ID:               sla.ID,
		Name:             stringPtrOrNil(sla.Name),
		DeliveryChannel:  sla.DeliveryChannel,
		Price:            store.NormalizePrice(sla.Price),
		ShippingEstimate: stringPtrOrNil(sla.ShippingEstimate),
	}
	if info := sla.PickupStoreInfo; info != nil {
		out.PickupStoreInfo = &model.PickupStoreInfo{
			IsPickupStore:  info.IsPickupStore,
			FriendlyName:   stringPtrOrNil(info.FriendlyName),
			AdditionalInfo: stringPtrOrNil(info.AdditionalInfo),
			Address:        toModelAddress(info.Address),
		}
	}
	return out
}

func toModelMessages(msgs []store.Message) []*model.Message {
	out := make([]*model.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &model.Message{
			Code:   stringPtrOrNil(m.Code),
			Text:   stringPtrOrNil(m.Text),
			Status: stringPtrOrNil(m.Status),
		})
	}
	return out
}

func toModelSimulation(res store.SimulationResult) *model.SimulationResult {
	items := make([]*model.SimulationResultItem, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, &model.SimulationResultItem{
			ID:           it.ID,
			RequestIndex: it.RequestIndex,
			Quantity:     it.Quantity,
			Seller:       stringPtrOrNil(it.Seller),
			Price:        store.NormalizePrice(it.Price),
			ListPrice:    store.NormalizePrice(it.ListPrice),
			SellingPrice: store.NormalizePrice(it.SellingPrice),
			Availability: stringPtrOrNil(it.Availability),
		})
	}
	return &model.SimulationResult{
		Items:         items,
		LogisticsInfo: toModelLogistics(res.LogisticsInfo),
		PostalCode:    stringPtrOrNil(res.PostalCode),
		Country:       stringPtrOrNil(res.Country),
	}
}

func toModelPickupPoint(p store.PickupPoint) *model.PickupPoint {
	hours := make([]*model.BusinessHour, 0, len(p.BusinessHours))
	for _, h := range p.BusinessHours {
		hours = append(hours, &model.BusinessHour{
			DayOfWeek:   h.DayOfWeek,
			OpeningTime: stringPtrOrNil(h.OpeningTime),
			ClosingTime: stringPtrOrNil(h.ClosingTime),
		})
	}
	return &model.PickupPoint{
		ID:            p.ID,
		Name:          stringPtrOrNil(p.Name),
		Description:   stringPtrOrNil(p.Description),
		Instructions:  stringPtrOrNil(p.Instructions),
		IsActive:      p.IsActive,
		Distance:      p.Distance,
		Address:       toModelAddress(p.Address),
		BusinessHours: hours,
	}
}

func toModelOrder(o store.Order) *model.Order {
	return &model.Order{
		OrderID:           o.OrderID,
		OrderGroup:        stringPtrOrNil(o.OrderGroup),
		Status:            stringPtrOrNil(o.Status),
		StatusDescription: stringPtrOrNil(o.StatusDescription),
		Value:             store.NormalizePrice(o.Value),
		SalesChannel:      stringPtrOrNil(o.SalesChannel),
		CreationDate:      stringPtrOrNil(o.CreationDate),
	}
}

func toModelPaymentSession(s store.PaymentSession) *model.PaymentSession {
	return &model.PaymentSession{
		ID:        s.ID,
		Name:      stringPtrOrNil(s.Name),
		ExpiresAt: stringPtrOrNil(s.ExpiresAt),
	}
}

func toModelPaymentTokens(tokens []store.PaymentToken) []*model.PaymentToken {
	out := make([]*model.PaymentToken, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, &model.PaymentToken{
			Token:         t.Token,
			PaymentSystem: stringPtrOrNil(t.PaymentSystem),
			Bin:           stringPtrOrNil(t.Bin),
			LastDigits:    stringPtrOrNil(t.LastDigits),
			ExpiresAt:     stringPtrOrNil(t.ExpiresAt),
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Model -> service
// ---------------------------------------------------------------------------

func fromItemInputs(items []*model.ItemInput) []store.ItemInput {
	out := make([]store.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, store.ItemInput{
			ID:       it.ID,
			Quantity: it.Quantity,
			Seller:   it.Seller,
			Index:    it.Index,
			Options:  fromAssemblyOptions(it.Options),
		})
	}
	return out
}

func fromAssemblyOptions(options []*model.AssemblyOptionInput) []store.AssemblyOptionInput {
	if len(options) == 0 {
		return nil
	}
	out := make([]store.AssemblyOptionInput, 0, len(options))
	for _, opt := range options {
		out = append(out, store.AssemblyOptionInput{
			AssemblyID: opt.AssemblyID,
			ID:         opt.ID,
			Quantity:   opt.Quantity,
			Seller:     opt.Seller,
		})
	}
	return out
}

func fromSimulationItems(items []*model.SimulationItemInput) []store.SimulationItem {
	out := make([]store.SimulationItem, 0, len(items))
	for _, it := range items {
		out = append(out, store.SimulationItem{
			ID:       it.ID,
			Quantity: it.Quantity,
			Seller:   it.Seller,
		})
	}
	return out
}

func fromProfileInput(p model.OrderFormProfileInput) store.ClientProfileData {
	out := store.ClientProfileData{
		Email:         p.Email,
		FirstName:     deref(p.FirstName),
		LastName:      deref(p.LastName),
		Document:      deref(p.Document),
		DocumentType:  deref(p.DocumentType),
		Phone:         deref(p.Phone),
		CorporateName: deref(p.CorporateName),
	}
	if p.IsCorporate != nil {
		out.IsCorporate = *p.IsCorporate
	}
	return out
}

func fromAddressInput(a model.OrderFormAddressInput) store.Address {
	return store.Address{
		AddressID:      deref(a.AddressID),
		AddressType:    deref(a.AddressType),
		ReceiverName:   deref(a.ReceiverName),
		PostalCode:     deref(a.PostalCode),
		City:           deref(a.City),
		State:          deref(a.State),
		Country:        deref(a.Country),
		Street:         deref(a.Street),
		Number:         deref(a.Number),
		Neighborhood:   deref(a.Neighborhood),
		Complement:     deref(a.Complement),
		GeoCoordinates: a.GeoCoordinates,
	}
}

// toCents reverses the platform's price normalization for values arriving as
// GraphQL floats.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromPaymentInputs(payments []*model.OrderFormPaymentInput) []store.PaymentInput {
	out := make([]store.PaymentInput, 0, len(payments))
	for _, p := range payments {
		out = append(out, store.PaymentInput{
			PaymentSystem:  p.PaymentSystem,
			ReferenceValue: toCents(p.ReferenceValue),
			Value:          toCents(p.Value),
			Installments:   p.Installments,
			AccountID:      deref(p.AccountID),
			Bin:            deref(p.Bin),
			TokenID:        deref(p.TokenID),
		})
	}
	return out
}

func fromCheckinInput(c model.OrderFormCheckinInput) store.CheckinInput {
	return store.CheckinInput{
		IsCheckedIn:   c.IsCheckedIn,
		PickupPointID: deref(c.PickupPointID),
	}
}

func fromTokenInputs(cards []*model.PaymentTokenInput) []store.PaymentTokenRequest {
	out := make([]store.PaymentTokenRequest, 0, len(cards))
	for _, c := range cards {
		out = append(out, store.PaymentTokenRequest{
			PaymentSystem:     c.PaymentSystem,
			PaymentSystemName: deref(c.PaymentSystemName),
			Group:             deref(c.Group),
			CardHolder:        c.CardHolder,
			CardNumber:        c.CardNumber,
			CSC:               c.Csc,
			ExpiryDate:        c.ExpiryDate,
			Document:          deref(c.Document),
		})
	}
	return out
}
