package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-steam-guard/internal/config"
	"github.com/MKhiriev/go-steam-guard/models"
	"github.com/go-resty/resty/v2"
)

type confirmationHTTPAdapter struct {
	client *resty.Client
}

func NewConfirmationHTTPAdapter(cfg config.ClientAdapter) ConfirmationAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &confirmationHTTPAdapter{client: cli}
}

func (a *confirmationHTTPAdapter) GetList(ctx context.Context, query models.ConfirmationQuery, session models.Session) (models.ConfirmationListResponse, error) {
	resp, err := a.signedRequest(ctx, query, session).Get("/getlist")
	if err != nil {
		return models.ConfirmationListResponse{}, fmt.Errorf("%w: getlist request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfirmationListResponse{}, err
	}

	var list models.ConfirmationListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.ConfirmationListResponse{}, fmt.Errorf("%w: decode getlist response: %w", ErrMalformedResponse, err)
	}

	return list, nil
}

func (a *confirmationHTTPAdapter) Act(ctx context.Context, op string, confirmation models.Confirmation, query models.ConfirmationQuery, session models.Session) (models.ConfirmationActionResponse, error) {
	resp, err := a.signedRequest(ctx, query, session).
		SetQueryParam("op", op).
		SetQueryParam("cid", confirmation.ID).
		SetQueryParam("ck", confirmation.Key).
		Get("/ajaxop")
	if err != nil {
		return models.ConfirmationActionResponse{}, fmt.Errorf("%w: ajaxop request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfirmationActionResponse{}, err
	}

	var action models.ConfirmationActionResponse
	if err = json.Unmarshal(resp.Body(), &action); err != nil {
		return models.ConfirmationActionResponse{}, fmt.Errorf("%w: decode ajaxop response: %w", ErrMalformedResponse, err)
	}

	return action, nil
}

// signedRequest assembles the query parameters shared by both endpoints and
// forwards the captured session cookies verbatim.
func (a *confirmationHTTPAdapter) signedRequest(ctx context.Context, query models.ConfirmationQuery, session models.Session) *resty.Request {
	return a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"p":   query.DeviceID,
			"a":   query.SteamID,
			"k":   query.Signature,
			"t":   strconv.FormatInt(query.Time, 10),
			"m":   "ios",
			"tag": query.Tag,
		}).
		SetCookies(session.Cookies)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
}
