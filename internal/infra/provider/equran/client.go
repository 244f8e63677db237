// Package equran implements the Quran text and doa providers against the
// equran.id APIs.
package equran

import (
	"context"
	"fmt"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/infra/provider"
)

// Client implements service.QuranProvider and service.DoaProvider.
type Client struct {
	http       *provider.Client
	baseURL    string
	doaBaseURL string
}

// NewClient creates the equran.id client. It serves both the Quran text and
// the doa ports; the doa collection lives on its own base URL.
func NewClient(httpClient *provider.Client, cfg *config.ProvidersConfig) *Client {
	return &Client{
		http:       httpClient,
		baseURL:    cfg.EquranBaseURL,
		doaBaseURL: cfg.EquranDoaBaseURL,
	}
}

type listResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    []entity.Surah `json:"data"`
}

type detailResponse struct {
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Data    entity.SurahDetail `json:"data"`
}

type doaResponse struct {
	Status string       `json:"status"`
	Total  int          `json:"total"`
	Data   []entity.Doa `json:"data"`
}

func (c *Client) SurahList(ctx context.Context) ([]entity.Surah, error) {
	var resp listResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/surat", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch surah list")
	}
	if resp.Code != 200 || len(resp.Data) == 0 {
		return nil, errors.Errorf("surah list API returned code %d (%s)", resp.Code, resp.Message)
	}

	return resp.Data, nil
}

func (c *Client) SurahDetail(ctx context.Context, number int) (*entity.SurahDetail, error) {
	var resp detailResponse
	endpoint := fmt.Sprintf("%s/surat/%d", c.baseURL, number)
	if err := c.http.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch surah %d", number)
	}
	if resp.Code != 200 || resp.Data.Number == 0 {
		return nil, errors.Errorf("surah detail API returned code %d (%s)", resp.Code, resp.Message)
	}

	return &resp.Data, nil
}

// DoaList fetches the full supplication collection.
func (c *Client) DoaList(ctx context.Context) ([]entity.Doa, error) {
	var resp doaResponse
	if err := c.http.GetJSON(ctx, c.doaBaseURL, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch doa list")
	}
	if len(resp.Data) == 0 {
		return nil, errors.Errorf("doa API returned status %q with no entries", resp.Status)
	}

	return resp.Data, nil
}

var (
	_ service.QuranProvider = (*Client)(nil)
	_ service.DoaProvider   = (*Client)(nil)
)
