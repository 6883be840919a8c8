package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type resolverPayload struct {
	Response []struct {
		Title       string            `json:"title"`
		Resolutions map[string]string `json:"resolutions"`
	} `json:"response"`
}

const fastDownloadKey = "Fast Download"

// Resolve asks the resolver API for a direct download link for sourceURL.
func (d *DefaultService) Resolve(ctx context.Context, sourceURL string) (DirectLink, error) {
	endpoint := d.cfg.ResolverURL + "?url=" + url.QueryEscape(sourceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return DirectLink{}, &ResolutionError{Reason: "failed to build resolver request", Err: err}
	}

	resp, err := d.resolveHTTP.Do(req)
	if err != nil {
		return DirectLink{}, &ResolutionError{Reason: "resolver unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DirectLink{}, &ResolutionError{Reason: "resolver returned status " + resp.Status}
	}

	var payload resolverPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return DirectLink{}, &ResolutionError{Reason: "invalid resolver response", Err: err}
	}

	if len(payload.Response) == 0 {
		return DirectLink{}, &ResolutionError{Reason: "no download links found"}
	}

	entry := payload.Response[0]
	directURL, ok := entry.Resolutions[fastDownloadKey]
	if !ok || directURL == "" {
		return DirectLink{}, &ResolutionError{Reason: "no fast download link in resolver response"}
	}

	title := SanitizeTitle(entry.Title)
	if title == "" {
		return DirectLink{}, &ResolutionError{Reason: "resolver response has no usable title"}
	}

	return DirectLink{URL: directURL, Title: title}, nil
}
