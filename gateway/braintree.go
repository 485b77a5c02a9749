// Package gateway wraps the payment provider behind a small interface so
// the checkout flow can be exercised without talking to Braintree.
package gateway

import (
	"context"

	"github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"
)

// SaleResult is the outcome of a successful sale submission.
type SaleResult struct {
	TransactionID string
	Status        string
}

// Gateway issues client tokens and submits sale transactions.
type Gateway interface {
	ClientToken(ctx context.Context) (string, error)
	Sale(ctx context.Context, amount decimal.Decimal, nonce string) (*SaleResult, error)
}

// Braintree is the production Gateway implementation.
type Braintree struct {
	bt *braintree.Braintree
}

// NewBraintree builds a gateway client. env is "sandbox" or "production".
func NewBraintree(env, merchantID, publicKey, privateKey string) *Braintree {
	environment := braintree.Sandbox
	if env == "production" {
		environment = braintree.Production
	}
	return &Braintree{bt: braintree.New(environment, merchantID, publicKey, privateKey)}
}

func (g *Braintree) ClientToken(ctx context.Context) (string, error) {
	return g.bt.ClientToken().Generate(ctx)
}

func (g *Braintree) Sale(ctx context.Context, amount decimal.Decimal, nonce string) (*SaleResult, error) {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	tx, err := g.bt.Transaction().Create(ctx, &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             braintree.NewDecimal(cents, 2),
		PaymentMethodNonce: nonce,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	})
	if err != nil {
		return nil, err
	}
	return &SaleResult{TransactionID: tx.Id, Status: string(tx.Status)}, nil
}
