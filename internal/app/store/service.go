package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/FlavioOdas/store-graphql/internal/payments"
	"github.com/FlavioOdas/store-graphql/internal/platform"
)

// ---------------------------------------------------------------------------
// Checkout API paths
// ---------------------------------------------------------------------------

const (
	checkoutBase   = "/api/checkout/pub"
	simulationPath = checkoutBase + "/orderForms/simulation"
	ordersPath     = checkoutBase + "/orders"

	// sessionPath requests only the public namespace fields this layer
	// consumes: UTM parameters plus the shopper locale.
	sessionPath = "/api/sessions?items=" +
		"public.utm_source,public.utm_medium,public.utm_campaign," +
		"public.utmi_cp,public.utmi_p,public.utmi_pc,public.locale"
)

func orderFormPath(id string) string {
	return checkoutBase + "/orderForm/" + url.PathEscape(id)
}

func itemsPath(id string) string {
	return orderFormPath(id) + "/items"
}

func assemblyPath(id string, itemIndex int, assemblyID string) string {
	return fmt.Sprintf("%s/items/%d/assemblyOptions/%s", orderFormPath(id), itemIndex, url.PathEscape(assemblyID))
}

func attachmentPath(id, name string) string {
	return orderFormPath(id) + "/attachments/" + name
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

// InputError reports invalid caller input (missing order-form id, empty item
// list). The GraphQL layer surfaces it as a user error; everything else
// propagates as an upstream failure.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func errInput(msg string) error { return &InputError{Msg: msg} }

func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service struct {
	platform *platform.Client
	payments *payments.Client
}

func NewService(platformClient *platform.Client, paymentsClient *payments.Client) *Service {
	return &Service{
		platform: platformClient,
		payments: paymentsClient,
	}
}

// ---------------------------------------------------------------------------
// OrderForm
// ---------------------------------------------------------------------------

// OrderForm fetches the order form and the shopper session in parallel, then
// folds the session's marketing parameters into the form when they changed
// and syncs the shopper locale. Session retrieval and locale sync are
// best-effort; only the order-form fetch itself can fail the call.
func (s *Service) OrderForm(ctx context.Context, id string) (OrderForm, error) {
	if id == "" {
		return OrderForm{}, errInput("orderFormId is required")
	}

	var (
		form OrderForm
		sess SessionFields
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.platform.Get(gctx, orderFormPath(id), &form)
	})
	g.Go(func() error {
		sess = s.sessionFields(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return OrderForm{}, err
	}

	if needsMarketingUpdate(form.MarketingData, sess) {
		md := mergeMarketingData(form.MarketingData, sess)
		var updated OrderForm
		if err := s.platform.Post(ctx, attachmentPath(id, "marketingData"), md, &updated); err != nil {
			return OrderForm{}, err
		}
		form = updated
	}

	return s.syncLocale(ctx, form, sess), nil
}

func (s *Service) fetchOrderForm(ctx context.Context, id string) (OrderForm, error) {
	var form OrderForm
	if err := s.platform.Get(ctx, orderFormPath(id), &form); err != nil {
		return OrderForm{}, err
	}
	return form, nil
}

// sessionFields retrieves the shopper session. Failures degrade to the zero
// value: personalization is nice-to-have, never a reason to fail checkout.
func (s *Service) sessionFields(ctx context.Context) SessionFields {
	var env struct {
		Namespaces struct {
			Public map[string]struct {
				Value string `json:"value"`
			} `json:"public"`
		} `json:"namespaces"`
	}
	if err := s.platform.Get(ctx, sessionPath, &env); err != nil {
		return SessionFields{}
	}
	pub := func(key string) string { return env.Namespaces.Public[key].Value }
	return SessionFields{
		UTMSource:    pub("utm_source"),
		UTMMedium:    pub("utm_medium"),
		UTMCampaign:  pub("utm_campaign"),
		UTMICampaign: pub("utmi_cp"),
		UTMIPage:     pub("utmi_p"),
		UTMIPart:     pub("utmi_pc"),
		Locale:       pub("locale"),
	}
}

// syncLocale aligns the order form's client preferences with the session
// locale. On any failure the original form is returned unchanged.
func (s *Service) syncLocale(ctx context.Context, form OrderForm, sess SessionFields) OrderForm {
	if sess.Locale == "" {
		return form
	}
	want, err := language.Parse(sess.Locale)
	if err != nil {
		return form
	}

	current := ""
	if form.ClientPreferencesData != nil {
		current = form.ClientPreferencesData.Locale
	}
	if cur, err := language.Parse(current); err == nil && cur.String() == want.String() {
		return form
	}

	payload := ClientPreferencesData{Locale: want.String()}
	if form.ClientPreferencesData != nil {
		payload.OptinNewsLetter = form.ClientPreferencesData.OptinNewsLetter
	}

	var updated OrderForm
	if err := s.platform.Post(ctx, attachmentPath(form.ID, "clientPreferencesData"), payload, &updated); err != nil {
		return form
	}
	return updated
}
