package capability

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/JokeDeck/internal/models"
)

const (
	// MsgLocationFailed is reported when the provider denies or fails the lookup.
	MsgLocationFailed = "Unable to retrieve your location."
	// MsgLocationUnsupported is reported when no provider is configured.
	MsgLocationUnsupported = "Geolocation is not supported by this client."
)

// Locator performs single-shot geolocation lookups against an ip-api style
// HTTP provider.
type Locator struct {
	client *http.Client
	url    string
	log    *zap.Logger
}

// NewLocator constructs a Locator. An empty url marks geolocation as
// unsupported.
func NewLocator(client *http.Client, url string, log *zap.Logger) *Locator {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Locator{client: client, url: url, log: log}
}

// Request issues exactly one lookup and returns its Result.
func (l *Locator) Request(ctx context.Context) Result[models.Coordinates] {
	if l.url == "" {
		return Failure[models.Coordinates](MsgLocationUnsupported)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		l.log.Warn("build geolocation request", zap.Error(err))
		return Failure[models.Coordinates](MsgLocationFailed)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		l.log.Warn("geolocation lookup", zap.Error(err))
		return Failure[models.Coordinates](MsgLocationFailed)
	}
	defer resp.Body.Close()

	var body struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		l.log.Warn("decode geolocation response", zap.Error(err))
		return Failure[models.Coordinates](MsgLocationFailed)
	}
	if resp.StatusCode != http.StatusOK || body.Status != "success" {
		l.log.Warn("geolocation denied",
			zap.Int("code", resp.StatusCode),
			zap.String("status", body.Status),
			zap.String("message", body.Message),
		)
		return Failure[models.Coordinates](MsgLocationFailed)
	}
	return Success(models.Coordinates{Latitude: body.Lat, Longitude: body.Lon})
}
