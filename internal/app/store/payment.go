package store

import (
	"context"
	"net/url"
)

// CreatePaymentSession opens a tokenization session with the payment
// gateway. The session id scopes the subsequent token creation call.
func (s *Service) CreatePaymentSession(ctx context.Context) (PaymentSession, error) {
	var session PaymentSession
	if err := s.payments.Post(ctx, "/sessions", nil, &session); err != nil {
		return PaymentSession{}, err
	}
	return session, nil
}

// CreatePaymentTokens exchanges raw card data for gateway tokens under an
// existing session. Card data is forwarded verbatim; nothing is stored here.
func (s *Service) CreatePaymentTokens(ctx context.Context, sessionID string, cards []PaymentTokenRequest) ([]PaymentToken, error) {
	if sessionID == "" {
		return nil, errInput("sessionId is required")
	}
	if len(cards) == 0 {
		return nil, errInput("payments must not be empty")
	}

	payload := struct {
		Payments []PaymentTokenRequest `json:"payments"`
	}{
		Payments: cards,
	}
	var env struct {
		Tokens []PaymentToken `json:"tokens"`
	}
	if err := s.payments.Post(ctx, "/sessions/"+url.PathEscape(sessionID)+"/tokens", payload, &env); err != nil {
		return nil, err
	}
	return env.Tokens, nil
}
