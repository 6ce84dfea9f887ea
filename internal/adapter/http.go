package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/christmas-gifter/internal/config"
	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/utils"
	"github.com/MKhiriev/christmas-gifter/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string
	token   string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for transport
// integrity signatures.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	var account models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&account).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return account, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. The returned account
// summary carries the onboarding flag.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	var account models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&account).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return account, nil
}

// GetPeople implements [ServerAdapter]. It GETs /api/people and decodes the
// ordered recipient list.
func (h *httpServerAdapter) GetPeople(ctx context.Context) ([]models.Person, error) {
	resp, err := h.authedRequest(ctx).Get("/api/people")
	if err != nil {
		return nil, fmt.Errorf("get people request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pr models.PeopleResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, fmt.Errorf("decode people response: %w", err)
	}
	return pr.People, nil
}

// ReplacePeople implements [ServerAdapter]. It POSTs the signed payload to
// POST /api/people and returns the recreated recipient list.
func (h *httpServerAdapter) ReplacePeople(ctx context.Context, request models.ReplacePeopleRequest) ([]models.Person, error) {
	resp, err := h.signedRequest(ctx, request).Post("/api/people")
	if err != nil {
		return nil, fmt.Errorf("replace people request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pr models.PeopleResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, fmt.Errorf("decode people response: %w", err)
	}
	return pr.People, nil
}

// AppendPerson implements [ServerAdapter]. It POSTs the signed payload to
// POST /api/people/add and returns the created person.
func (h *httpServerAdapter) AppendPerson(ctx context.Context, request models.AppendPersonRequest) (models.Person, error) {
	resp, err := h.signedRequest(ctx, request).Post("/api/people/add")
	if err != nil {
		return models.Person{}, fmt.Errorf("append person request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Person{}, err
	}

	var person models.Person
	if err = json.Unmarshal(resp.Body(), &person); err != nil {
		return models.Person{}, fmt.Errorf("decode person response: %w", err)
	}
	return person, nil
}

// ReorderPeople implements [ServerAdapter]. It POSTs the signed permutation to
// POST /api/people/reorder. Returns [ErrConflict] (wrapped) when the id set
// does not match the server's.
func (h *httpServerAdapter) ReorderPeople(ctx context.Context, request models.ReorderPeopleRequest) error {
	resp, err := h.signedRequest(ctx, request).Post("/api/people/reorder")
	if err != nil {
		return fmt.Errorf("reorder people request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeletePerson implements [ServerAdapter]. It DELETEs /api/people/{personID}.
func (h *httpServerAdapter) DeletePerson(ctx context.Context, personID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/people/%d", personID))
	if err != nil {
		return fmt.Errorf("delete person request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateGifts implements [ServerAdapter]. It POSTs the signed batch to
// POST /api/gifts and returns the created gifts.
func (h *httpServerAdapter) CreateGifts(ctx context.Context, request models.CreateGiftsRequest) ([]models.Gift, error) {
	resp, err := h.signedRequest(ctx, request).Post("/api/gifts")
	if err != nil {
		return nil, fmt.Errorf("create gifts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var gr models.GiftsResponse
	if err = json.Unmarshal(resp.Body(), &gr); err != nil {
		return nil, fmt.Errorf("decode gifts response: %w", err)
	}
	return gr.Gifts, nil
}

// UpsertGift implements [ServerAdapter]. It PUTs the signed payload to
// PUT /api/gifts and returns the created or updated gift.
func (h *httpServerAdapter) UpsertGift(ctx context.Context, request models.UpsertGiftRequest) (models.Gift, error) {
	resp, err := h.signedRequest(ctx, request).Put("/api/gifts")
	if err != nil {
		return models.Gift{}, fmt.Errorf("upsert gift request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Gift{}, err
	}

	var gr models.GiftResponse
	if err = json.Unmarshal(resp.Body(), &gr); err != nil {
		return models.Gift{}, fmt.Errorf("decode gift response: %w", err)
	}
	return gr.Gift, nil
}

// UpdateGiftStatus implements [ServerAdapter]. It PATCHes the signed sparse
// update to PATCH /api/gifts and returns the updated gift.
func (h *httpServerAdapter) UpdateGiftStatus(ctx context.Context, update models.GiftStatusUpdate) (models.Gift, error) {
	resp, err := h.signedRequest(ctx, update).Patch("/api/gifts")
	if err != nil {
		return models.Gift{}, fmt.Errorf("update gift status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Gift{}, err
	}

	var gr models.GiftResponse
	if err = json.Unmarshal(resp.Body(), &gr); err != nil {
		return models.Gift{}, fmt.Errorf("decode gift response: %w", err)
	}
	return gr.Gift, nil
}

// DeleteGift implements [ServerAdapter]. It DELETEs /api/gifts/{giftID}.
func (h *httpServerAdapter) DeleteGift(ctx context.Context, giftID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/gifts/%d", giftID))
	if err != nil {
		return fmt.Errorf("delete gift request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetServerVersion implements [ServerAdapter]. It GETs /api/version/ and
// returns the plain-text version string.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest serialises the payload itself so the integrity signature is
// computed over the exact bytes that go on the wire. The HashSHA256 header is
// only attached when a hash key is configured; the server skips the check
// when the header is absent.
func (h *httpServerAdapter) signedRequest(ctx context.Context, payload any) *resty.Request {
	req := h.authedRequest(ctx).SetHeader("Content-Type", "application/json")

	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.signedRequest").Msg("failed to marshal payload")
		return req.SetBody(payload)
	}

	req.SetBody(body)
	if h.hashKey != "" {
		req.SetHeader("HashSHA256", hex.EncodeToString(utils.Hash(body)))
	}
	return req
}
