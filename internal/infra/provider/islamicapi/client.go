// Package islamicapi implements the Asmaul Husna, tahlil, kisah nabi, and
// zakat nisab providers against the IslamicAPI service.
package islamicapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/infra/provider"
)

// Client implements the IslamicAPI-backed content ports.
type Client struct {
	http    *provider.Client
	baseURL string
	apiKey  string
}

// NewClient creates the IslamicAPI client. One client serves the Asmaul
// Husna, tahlil, kisah nabi, and nisab ports.
func NewClient(httpClient *provider.Client, cfg *config.ProvidersConfig) *Client {
	return &Client{http: httpClient, baseURL: cfg.IslamicAPIBaseURL, apiKey: cfg.IslamicAPIKey}
}

type namesResponse struct {
	Code int `json:"code"`
	Data []struct {
		Number          int    `json:"number"`
		Arabic          string `json:"arabic"`
		Transliteration string `json:"latin"`
		English         struct {
			Translation string `json:"translation"`
			Meaning     string `json:"meaning"`
		} `json:"en"`
		Indonesian struct {
			Translation string `json:"translation"`
			Meaning     string `json:"meaning"`
		} `json:"id"`
		AudioURL string `json:"audio_url"`
	} `json:"data"`
}

// Names fetches the 99 names with English and Indonesian translations.
func (c *Client) Names(ctx context.Context) ([]entity.AsmaulHusnaName, error) {
	endpoint := fmt.Sprintf("%s/asmaul-husna?%s", c.baseURL, c.query(nil).Encode())

	var resp namesResponse
	if err := c.http.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch asmaul husna")
	}
	if len(resp.Data) == 0 {
		return nil, errors.Errorf("asmaul husna API returned code %d with no names", resp.Code)
	}

	names := make([]entity.AsmaulHusnaName, 0, len(resp.Data))
	for _, item := range resp.Data {
		names = append(names, entity.AsmaulHusnaName{
			ID:              item.Number,
			Arabic:          item.Arabic,
			Transliteration: item.Transliteration,
			TranslationEN:   item.English.Translation,
			TranslationID:   item.Indonesian.Translation,
			MeaningEN:       item.English.Meaning,
			MeaningID:       item.Indonesian.Meaning,
			AudioURL:        item.AudioURL,
		})
	}

	return names, nil
}

// flexString decodes a field the API serves as either a JSON string or a
// bare number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(strings.Trim(string(data), `"`))
	if trimmed == "null" {
		trimmed = ""
	}
	*f = flexString(trimmed)

	return nil
}

type tahlilResponse struct {
	Code int `json:"code"`
	Data []struct {
		Number      flexString `json:"no"`
		Title       string     `json:"judul"`
		Arabic      string     `json:"arab"`
		Translation string     `json:"id"`
	} `json:"data"`
}

// Tahlil fetches the tahlil sequence and normalizes it to the internal
// model. Entries with neither Arabic text nor a translation are dropped.
func (c *Client) Tahlil(ctx context.Context) ([]entity.TahlilItem, error) {
	endpoint := fmt.Sprintf("%s/tahlil?%s", c.baseURL, c.query(nil).Encode())

	var resp tahlilResponse
	if err := c.http.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch tahlil")
	}

	items := make([]entity.TahlilItem, 0, len(resp.Data))
	for i, raw := range resp.Data {
		if raw.Arabic == "" && raw.Translation == "" {
			continue
		}

		number, err := strconv.Atoi(string(raw.Number))
		if err != nil || number <= 0 {
			number = i + 1
		}
		title := strings.TrimSpace(raw.Title)
		if title == "" {
			title = fmt.Sprintf("Bacaan Tahlil %d", number)
		}

		items = append(items, entity.TahlilItem{
			Number:      number,
			Title:       title,
			Arabic:      raw.Arabic,
			Translation: raw.Translation,
		})
	}
	if len(items) == 0 {
		return nil, errors.Errorf("tahlil API returned code %d with no readable entries", resp.Code)
	}

	return items, nil
}

type kisahNabiResponse struct {
	Code int `json:"code"`
	Data []struct {
		Name      string     `json:"name"`
		BirthYear flexString `json:"thn_kelahiran"`
		Age       flexString `json:"usia"`
		Place     string     `json:"tmp"`
		ImageURL  string     `json:"image_url"`
		Story     string     `json:"description"`
	} `json:"data"`
}

// KisahNabi fetches the prophet stories. Entries without a story body are
// dropped; plain-http image URLs are upgraded to https.
func (c *Client) KisahNabi(ctx context.Context) ([]entity.KisahNabi, error) {
	endpoint := fmt.Sprintf("%s/kisahnabi?%s", c.baseURL, c.query(nil).Encode())

	var resp kisahNabiResponse
	if err := c.http.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch kisah nabi")
	}

	stories := make([]entity.KisahNabi, 0, len(resp.Data))
	for _, raw := range resp.Data {
		story := strings.TrimSpace(raw.Story)
		if story == "" {
			continue
		}

		imageURL := strings.TrimSpace(raw.ImageURL)
		if rest, found := strings.CutPrefix(imageURL, "http://"); found {
			imageURL = "https://" + rest
		}

		stories = append(stories, entity.KisahNabi{
			Name:      strings.TrimSpace(raw.Name),
			BirthYear: string(raw.BirthYear),
			Age:       string(raw.Age),
			Place:     strings.TrimSpace(raw.Place),
			ImageURL:  imageURL,
			Story:     story,
		})
	}
	if len(stories) == 0 {
		return nil, errors.Errorf("kisah nabi API returned code %d with no stories", resp.Code)
	}

	return stories, nil
}

type nisabResponse struct {
	Code int `json:"code"`
	Data struct {
		Currency string `json:"currency"`
		Gold     struct {
			UnitPrice float64 `json:"price_per_unit"`
			Nisab     float64 `json:"nisab"`
		} `json:"gold"`
		Silver struct {
			UnitPrice float64 `json:"price_per_unit"`
			Nisab     float64 `json:"nisab"`
		} `json:"silver"`
	} `json:"data"`
}

// Nisab fetches the gold and silver thresholds for the given standard.
func (c *Client) Nisab(ctx context.Context, standard entity.NisabStandard, currency, unit string) (*entity.NisabThresholds, error) {
	query := c.query(url.Values{
		"currency":      {currency},
		"unit":          {unit},
		"gold_weight":   {fmt.Sprintf("%g", standard.GoldWeight())},
		"silver_weight": {fmt.Sprintf("%g", standard.SilverWeight())},
	})
	endpoint := fmt.Sprintf("%s/zakat/nisab?%s", c.baseURL, query.Encode())

	var resp nisabResponse
	if err := c.http.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch nisab")
	}
	if resp.Data.Gold.Nisab <= 0 || resp.Data.Silver.Nisab <= 0 {
		return nil, errors.Errorf("nisab API returned code %d with empty thresholds", resp.Code)
	}

	return &entity.NisabThresholds{
		Gold: entity.MetalThreshold{
			Weight:      standard.GoldWeight(),
			UnitPrice:   resp.Data.Gold.UnitPrice,
			NisabAmount: resp.Data.Gold.Nisab,
		},
		Silver: entity.MetalThreshold{
			Weight:      standard.SilverWeight(),
			UnitPrice:   resp.Data.Silver.UnitPrice,
			NisabAmount: resp.Data.Silver.Nisab,
		},
		Currency: resp.Data.Currency,
		Standard: standard,
	}, nil
}

func (c *Client) query(extra url.Values) url.Values {
	values := url.Values{}
	for key, vals := range extra {
		values[key] = vals
	}
	if c.apiKey != "" {
		values.Set("api_key", c.apiKey)
	}

	return values
}

var (
	_ service.AsmaulHusnaProvider = (*Client)(nil)
	_ service.TahlilProvider      = (*Client)(nil)
	_ service.KisahNabiProvider   = (*Client)(nil)
	_ service.NisabProvider       = (*Client)(nil)
)
