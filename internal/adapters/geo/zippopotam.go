package geo

import (
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/platform/obs"
	"advocacy-dispatch-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// ZippopotamResolver implements StateResolver against the Zippopotam US
// postal-code API.
//
// It coordinates:
//   - Zip normalization
//   - An optional persistent resolution cache
//   - External API calls with retry/backoff
//
// The resolver is safe for concurrent use.
type ZippopotamResolver struct {
	session *http.Client
	baseURL string
	cache   ports.ResolutionCache
}

func NewZippopotamResolver(cache ports.ResolutionCache) *ZippopotamResolver {
	return &ZippopotamResolver{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.zippopotam.us",
		cache:   cache,
	}
}

type zippopotamResponse struct {
	Places []struct {
		PlaceName   string `json:"place name"`
		State       string `json:"state"`
		StateAbbrev string `json:"state abbreviation"`
	} `json:"places"`
}

// ResolveState maps a 5-digit zip to its state. Unknown zips fail with
// ErrRecipientLookupFailed; cached hits never touch the network.
func (z *ZippopotamResolver) ResolveState(ctx context.Context, zip string) (_ ports.Resolution, err error) {
	defer obs.Time(ctx, "zippopotam.ResolveState")(&err)

	zip = strings.TrimSpace(zip)
	if len(zip) != 5 {
		return ports.Resolution{}, fmt.Errorf("resolve state: invalid zip %q: %w", zip, domain.ErrRecipientLookupFailed)
	}

	if z.cache != nil {
		res, ok, err := z.cache.Get(ctx, zip)
		if err != nil {
			return ports.Resolution{}, fmt.Errorf("resolve state: read resolution cache: %w", err)
		}
		if ok {
			return res, nil
		}
	}

	endpoint := z.baseURL + "/us/" + zip

	resp, err := z.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			return ports.Resolution{}, fmt.Errorf("resolve state: zip %q not found: %w", zip, domain.ErrRecipientLookupFailed)
		}
		return ports.Resolution{}, fmt.Errorf("resolve state: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded zippopotamResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.Resolution{}, fmt.Errorf("resolve state: decode response: %w", err)
	}

	if len(decoded.Places) == 0 {
		return ports.Resolution{}, fmt.Errorf("resolve state: zip %q has no places: %w", zip, domain.ErrRecipientLookupFailed)
	}

	res := ports.Resolution{
		StateAbbrev: decoded.Places[0].StateAbbrev,
		StateName:   decoded.Places[0].State,
		City:        decoded.Places[0].PlaceName,
	}

	if z.cache != nil {
		if err := z.cache.Put(ctx, zip, res); err != nil {
			log.Printf("resolution cache write failed: %v", err)
		}
	}

	return res, nil
}
