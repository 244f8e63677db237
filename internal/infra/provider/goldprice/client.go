// Package goldprice implements the gold quote provider. The spot price comes
// from gold-api.com and the USD to IDR rate from the Frankfurter API.
package goldprice

import (
	"context"

	"muslimhub/config"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/infra/provider"
)

type client struct {
	http        *provider.Client
	goldBaseURL string
	exchangeURL string
}

// NewClient creates the gold quote provider.
func NewClient(httpClient *provider.Client, cfg *config.ProvidersConfig) service.GoldQuoteProvider {
	return &client{
		http:        httpClient,
		goldBaseURL: cfg.GoldAPIBaseURL,
		exchangeURL: cfg.FrankfurterBaseURL,
	}
}

type spotResponse struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

func (c *client) XAUPricePerOunceUSD(ctx context.Context) (float64, error) {
	var resp spotResponse
	if err := c.http.GetJSON(ctx, c.goldBaseURL+"/price/XAU", nil, &resp); err != nil {
		return 0, errors.Wrap(err, "failed to fetch gold spot price")
	}
	if resp.Price <= 0 {
		return 0, errors.New("gold API returned non-positive price")
	}

	return resp.Price, nil
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *client) USDToIDRRate(ctx context.Context) (float64, error) {
	var resp ratesResponse
	endpoint := c.exchangeURL + "/latest?from=USD&to=IDR"
	if err := c.http.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return 0, errors.Wrap(err, "failed to fetch USD/IDR rate")
	}

	rate, ok := resp.Rates["IDR"]
	if !ok || rate <= 0 {
		return 0, errors.New("exchange API returned no IDR rate")
	}

	return rate, nil
}
