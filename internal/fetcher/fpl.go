package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"fplthreats/internal/player"
	"fplthreats/internal/version"
)

const (
	bootstrapPath     = "/bootstrap-static/"
	elementSummaryFmt = "/element-summary/%d/"
	defaultBaseURL    = "https://fantasy.premierleague.com/api"
)

// FPLOptions parameterise the Fantasy Premier League client.
type FPLOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// FPL reads the public Fantasy Premier League endpoints.
type FPL struct {
	opts    FPLOptions
	logger  zerolog.Logger
	client  *http.Client
	baseURL string
}

// NewFPL constructs an FPL API client.
func NewFPL(opts FPLOptions, logger zerolog.Logger) *FPL {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &FPL{
		opts:    opts,
		logger:  logger.With().Str("component", "fpl_fetcher").Logger(),
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// FetchCatalog downloads bootstrap-static and validates every element.
func (f *FPL) FetchCatalog(ctx context.Context) ([]player.Player, error) {
	payload, err := f.get(ctx, bootstrapPath)
	if err != nil {
		return nil, err
	}

	var res bootstrapResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("decode bootstrap-static: %w", err)
	}

	players := make([]player.Player, 0, len(res.Elements))
	skipped := 0
	for _, e := range res.Elements {
		if !player.Position(e.ElementType).Valid() {
			skipped++
			continue
		}
		p, err := parseElement(e)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	if skipped > 0 {
		f.logger.Debug().Int("skipped", skipped).Msg("ignored non-player elements")
	}
	f.logger.Debug().Int("players", len(players)).Msg("catalog fetched")
	return players, nil
}

// FetchHistory downloads the element summary for one player.
func (f *FPL) FetchHistory(ctx context.Context, playerID int) ([]player.HistoryRow, error) {
	payload, err := f.get(ctx, fmt.Sprintf(elementSummaryFmt, playerID))
	if err != nil {
		return nil, err
	}

	var res summaryResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("decode element-summary %d: %w", playerID, err)
	}
	return parseHistory(playerID, res.History), nil
}

func (f *FPL) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if ua := strings.TrimSpace(f.opts.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	} else {
		req.Header.Set("User-Agent", version.UserAgent())
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrFetch, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrFetch, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseHTTPError(path, resp.StatusCode, body)
	}
	return body, nil
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func parseHTTPError(path string, status int, payload []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(payload, &apiErr); err == nil && apiErr.Detail != "" {
		return fmt.Errorf("%w: GET %s (%d): %s", ErrFetch, path, status, apiErr.Detail)
	}
	if len(payload) > 0 && len(payload) < 512 {
		return fmt.Errorf("%w: GET %s (%d): %s", ErrFetch, path, status, strings.TrimSpace(string(payload)))
	}
	return fmt.Errorf("%w: GET %s (%d)", ErrFetch, path, status)
}

var (
	_ CatalogFetcher = (*FPL)(nil)
	_ HistoryFetcher = (*FPL)(nil)
)
