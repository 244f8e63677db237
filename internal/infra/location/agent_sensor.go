// Package location implements the device location sensors.
package location

import (
	"context"
	"encoding/json"
	"net/http"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
)

// agentSensor reads the current coordinate from a companion device agent
// over HTTP. The agent owns the actual GPS hardware and its permission
// prompts; this adapter only maps its responses onto the sensor port.
type agentSensor struct {
	client *http.Client
	url    string
}

// NewAgentSensor creates a sensor backed by the device-agent endpoint.
func NewAgentSensor(cfg *config.LocationConfig) (service.LocationSensor, error) {
	if cfg.AgentURL == "" {
		return nil, errors.New("agent location sensor requires location.agentUrl")
	}

	// No client-level timeout; each read is bounded by the caller's context
	// so foreground and background reads can use different deadlines.
	return &agentSensor{client: &http.Client{}, url: cfg.AgentURL}, nil
}

func (s *agentSensor) CurrentCoordinate(ctx context.Context) (entity.Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to build agent request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return entity.Coordinate{}, service.ErrLocationUnavailable
		}

		return entity.Coordinate{}, errors.Wrap(service.ErrLocationUnavailable, err.Error())
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return entity.Coordinate{}, service.ErrLocationPermissionDenied
	default:
		return entity.Coordinate{}, errors.Wrapf(service.ErrLocationUnavailable, "agent returned %d", resp.StatusCode)
	}

	var payload struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.Coordinate{}, errors.Wrap(service.ErrLocationUnavailable, "malformed agent response")
	}

	coord := entity.Coordinate{Latitude: payload.Latitude, Longitude: payload.Longitude}
	if !coord.Valid() {
		return entity.Coordinate{}, errors.Wrap(service.ErrLocationUnavailable, "coordinate out of range")
	}

	return coord, nil
}
