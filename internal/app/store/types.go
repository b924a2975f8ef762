package store

// ---------------------------------------------------------------------------
// Order form (platform checkout aggregate)
// ---------------------------------------------------------------------------
//
// The order form is owned by the platform; this layer never mutates it
// locally. Every write below is a remote call returning a fresh snapshot.

type OrderForm struct {
	ID                    string                 `json:"orderFormId"`
	SalesChannel          string                 `json:"salesChannel"`
	LoggedIn              bool                   `json:"loggedIn"`
	UserProfileID         string                 `json:"userProfileId"`
	UserType              string                 `json:"userType"`
	Value                 int64                  `json:"value"`
	Items                 []OrderFormItem        `json:"items"`
	MarketingData         *MarketingData         `json:"marketingData"`
	ClientProfileData     *ClientProfileData     `json:"clientProfileData"`
	ClientPreferencesData *ClientPreferencesData `json:"clientPreferencesData"`
	StorePreferencesData  *StorePreferencesData  `json:"storePreferencesData"`
	ShippingData          *ShippingData          `json:"shippingData"`
	Messages              []Message              `json:"messages"`
}

type OrderFormItem struct {
	ID                    string  `json:"id"`
	UniqueID              string  `json:"uniqueId"`
	ProductID             string  `json:"productId"`
	Name                  string  `json:"name"`
	SkuName               string  `json:"skuName"`
	Quantity              int     `json:"quantity"`
	Seller                string  `json:"seller"`
	Price                 int64   `json:"price"`
	ListPrice             int64   `json:"listPrice"`
	SellingPrice          int64   `json:"sellingPrice"`
	ImageURL              string  `json:"imageUrl"`
	DetailURL             string  `json:"detailUrl"`
	Availability          string  `json:"availability"`
	ParentItemIndex       *int    `json:"parentItemIndex"`
	ParentAssemblyBinding *string `json:"parentAssemblyBinding"`
}

// IsAssemblyChild reports whether the item is a sub-item attached through an
// assembly option. The parent relation is inferred, not stored as a reference.
func (it OrderFormItem) IsAssemblyChild() bool {
	return it.ParentItemIndex != nil || it.ParentAssemblyBinding != nil
}

type MarketingData struct {
	UTMSource     string   `json:"utmSource,omitempty"`
	UTMMedium     string   `json:"utmMedium,omitempty"`
	UTMCampaign   string   `json:"utmCampaign,omitempty"`
	UTMICampaign  string   `json:"utmiCampaign,omitempty"`
	UTMIPage      string   `json:"utmiPage,omitempty"`
	UTMIPart      string   `json:"utmiPart,omitempty"`
	Coupon        string   `json:"coupon,omitempty"`
	MarketingTags []string `json:"marketingTags,omitempty"`
}

type ClientProfileData struct {
	Email          string `json:"email,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Document       string `json:"document,omitempty"`
	DocumentType   string `json:"documentType,omitempty"`
	Phone          string `json:"phone,omitempty"`
	CorporateName  string `json:"corporateName,omitempty"`
	IsCorporate    bool   `json:"isCorporate,omitempty"`
}

type ClientPreferencesData struct {
	Locale          string `json:"locale,omitempty"`
	OptinNewsLetter bool   `json:"optinNewsLetter,omitempty"`
}

type StorePreferencesData struct {
	CountryCode  string `json:"countryCode"`
	CurrencyCode string `json:"currencyCode"`
	TimeZone     string `json:"timeZone"`
}

type Message struct {
	Code   string `json:"code"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

// ---------------------------------------------------------------------------
// Shipping
// ---------------------------------------------------------------------------

// DeliveryChannelPickup marks SLAs fulfilled at a pickup point rather than
// delivered to an address.
const DeliveryChannelPickup = "pickup-in-point"

type ShippingData struct {
	Address            *Address        `json:"address"`
	AvailableAddresses []Address       `json:"availableAddresses"`
	LogisticsInfo      []LogisticsInfo `json:"logisticsInfo"`
}

type Address struct {
	AddressID      string    `json:"addressId,omitempty"`
	AddressType    string    `json:"addressType,omitempty"`
	ReceiverName   string    `json:"receiverName,omitempty"`
	PostalCode     string    `json:"postalCode,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Country        string    `json:"country,omitempty"`
	Street         string    `json:"street,omitempty"`
	Number         string    `json:"number,omitempty"`
	Neighborhood   string    `json:"neighborhood,omitempty"`
	Complement     string    `json:"complement,omitempty"`
	GeoCoordinates []float64 `json:"geoCoordinates,omitempty"`
}

type LogisticsInfo struct {
	ItemIndex   int    `json:"itemIndex"`
	SelectedSLA string `json:"selectedSla"`
	SLAs        []SLA  `json:"slas"`
}

type SLA struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	DeliveryChannel  string           `json:"deliveryChannel"`
	Price            int64            `json:"price"`
	ShippingEstimate string           `json:"shippingEstimate"`
	PickupStoreInfo  *PickupStoreInfo `json:"pickupStoreInfo"`
}

type PickupStoreInfo struct {
	IsPickupStore  bool     `json:"isPickupStore"`
	FriendlyName   string   `json:"friendlyName"`
	AdditionalInfo string   `json:"additionalInfo"`
	Address        *Address `json:"address"`
}

type SimulationItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Seller   string `json:"seller"`
}

type SimulationResult struct {
	Items         []SimulationResultItem `json:"items"`
	LogisticsInfo []LogisticsInfo        `json:"logisticsInfo"`
	PostalCode    string                 `json:"postalCode"`
	Country       string                 `json:"country"`
}

type SimulationResultItem struct {
	ID           string `json:"id"`
	RequestIndex int    `json:"requestIndex"`
	Quantity     int    `json:"quantity"`
	Seller       string `json:"seller"`
	Price        int64  `json:"price"`
	ListPrice    int64  `json:"listPrice"`
	SellingPrice int64  `json:"sellingPrice"`
	Availability string `json:"availability"`
}

// NormalizePrice converts the platform's integer price encoding (hundredths
// of the currency unit) to a decimal amount.
func NormalizePrice(cents int64) float64 {
	return float64(cents) / 100
}

// ---------------------------------------------------------------------------
// Pickup points (logistics API)
// ---------------------------------------------------------------------------

// PickupPoint is a physical store registered with the logistics API. Distance
// is in km from the searched coordinates; zero when fetched by id.
type PickupPoint struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Instructions  string         `json:"instructions"`
	IsActive      bool           `json:"isActive"`
	Distance      float64        `json:"distance"`
	Address       *Address       `json:"address"`
	BusinessHours []BusinessHour `json:"businessHours"`
}

type BusinessHour struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

// SessionFields are the per-request marketing parameters carried by the
// platform session. Retrieval is best-effort: on failure the zero value is
// used and personalization is skipped.
type SessionFields struct {
	UTMSource    string
	UTMMedium    string
	UTMCampaign  string
	UTMICampaign string
	UTMIPage     string
	UTMIPart     string
	Locale       string
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

type Order struct {
	OrderID           string `json:"orderId"`
	OrderGroup        string `json:"orderGroup"`
	Status            string `json:"status"`
	StatusDescription string `json:"statusDescription"`
	Value             int64  `json:"value"`
	SalesChannel      string `json:"salesChannel"`
	CreationDate      string `json:"creationDate"`
}

// ---------------------------------------------------------------------------
// Payments
// ---------------------------------------------------------------------------

type PaymentSession struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ExpiresAt string `json:"expiresAt"`
}

type PaymentTokenRequest struct {
	PaymentSystem     string `json:"paymentSystem"`
	PaymentSystemName string `json:"paymentSystemName,omitempty"`
	Group             string `json:"group,omitempty"`
	CardHolder        string `json:"cardHolder"`
	CardNumber        string `json:"cardNumber"`
	CSC               string `json:"csc"`
	ExpiryDate        string `json:"expiryDate"`
	Document          string `json:"document,omitempty"`
}

type PaymentToken struct {
	Token         string `json:"token"`
	PaymentSystem string `json:"paymentSystem"`
	Bin           string `json:"bin"`
	LastDigits    string `json:"lastDigits"`
	ExpiresAt     string `json:"expiresAt"`
}

// PaymentInput is one entry of the order form's paymentData attachment.
type PaymentInput struct {
	PaymentSystem  string `json:"paymentSystem"`
	ReferenceValue int64  `json:"referenceValue"`
	Value          int64  `json:"value"`
	Installments   int    `json:"installments"`
	AccountID      string `json:"accountId,omitempty"`
	Bin            string `json:"bin,omitempty"`
	TokenID        string `json:"tokenId,omitempty"`
}

// ---------------------------------------------------------------------------
// Mutation inputs
// ---------------------------------------------------------------------------

// ItemInput is one item of an addItem/updateItems call. Options never reach
// the base add-item payload; they are attached by follow-up calls.
type ItemInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Seller   string `json:"seller"`
	Index    *int   `json:"index,omitempty"`

	Options []AssemblyOptionInput `json:"-"`
}

type AssemblyOptionInput struct {
	AssemblyID string `json:"assemblyId"`
	ID         string `json:"id"`
	Quantity   int    `json:"quantity"`
	Seller     string `json:"seller"`
}

type CheckinInput struct {
	IsCheckedIn   bool   `json:"isCheckedIn"`
	PickupPointID string `json:"pickupPointId,omitempty"`
}
