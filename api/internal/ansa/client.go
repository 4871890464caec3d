package ansa

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ansadash/api/internal/apierror"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/logger"
	"ansadash/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const defaultTimeout = 30 * time.Second

// Client talks to the Ansa API. Merchant-scoped calls authorize with the
// secret key resolved for the caller's merchant; internal-admin calls use
// the shared admin key. Every response body is validated before it is
// returned, so handlers never see a half-formed upstream payload.
type Client struct {
	host     string
	adminKey string
	http     *http.Client
	validate *validator.Validate
	log      logger.Logger
}

func NewClient(host, adminKey string, l logger.Logger) *Client {
	return &Client{
		host:     strings.TrimRight(host, "/"),
		adminKey: adminKey,
		http:     &http.Client{Timeout: defaultTimeout},
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      l,
	}
}

// wireError is the {code, message} body Ansa returns on non-2xx statuses.
// Some codes get remapped by the operations (e.g. invalid_customer_id).
type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do performs one request and hands back the status and raw body. Network
// failures come back as INTERNAL; status interpretation is left to the
// operation since several endpoints overload 400/404.
func (c *Client) do(ctx context.Context, method, path, authKey string, query url.Values, body any) (int, []byte, *apierror.Error) {
	u := c.host + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, apierror.Internal(domain.ErrMsgInternalServerError, apierror.WithCause(err))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, nil, apierror.Internal(domain.ErrMsgInternalServerError, apierror.WithCause(err))
	}
	req.Header.Set("Authorization", authKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, apierror.Internal(domain.ErrMsgAnsaNetwork, apierror.WithCause(err),
			apierror.WithAnnotation("path", path))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, apierror.Internal(domain.ErrMsgAnsaNetwork, apierror.WithCause(err),
			apierror.WithAnnotation("path", path))
	}
	return resp.StatusCode, raw, nil
}

// upstreamErr converts a non-2xx upstream response into an INTERNAL error
// carrying the status and, when parseable, the upstream code and message.
func (c *Client) upstreamErr(path string, status int, raw []byte) *apierror.Error {
	opts := []apierror.Option{
		apierror.WithLabel(apierror.LABEL_ANSA_STATUS_CODE, strconv.Itoa(status)),
		apierror.WithAnnotation("path", path),
	}
	var we wireError
	if err := json.Unmarshal(raw, &we); err == nil && we.Code != "" {
		opts = append(opts, apierror.WithAnnotation("upstreamCode", we.Code),
			apierror.WithAnnotation("upstreamMessage", we.Message))
	}
	return apierror.Internal(domain.ErrMsgAnsaBadShape, opts...)
}

// upstreamCode extracts the machine code from an error body, "" if absent.
func upstreamCode(raw []byte) string {
	var we wireError
	if err := json.Unmarshal(raw, &we); err != nil {
		return ""
	}
	return we.Code
}

// decode unmarshals a wire payload into T, mapping malformed JSON to the
// bad-shape INTERNAL error rather than letting it leak to the client.
func decode[T any](c *Client, path string, raw []byte) (*T, *apierror.Error) {
	out, err := utils.Unmarshal[T](raw)
	if err != nil {
		return nil, apierror.Internal(domain.ErrMsgAnsaBadShape, apierror.WithCause(err),
			apierror.WithAnnotation("path", path))
	}
	return out, nil
}

// checkShape runs the validator over a reshaped payload. A failure means
// Ansa sent something outside its own contract and the caller gets a 500,
// never partially-validated data.
func (c *Client) checkShape(path string, v any) *apierror.Error {
	if err := c.validate.Struct(v); err != nil {
		return apierror.Internal(domain.ErrMsgAnsaBadShape, apierror.WithCause(err),
			apierror.WithAnnotation("path", path))
	}
	return nil
}

func pageQuery(cursor string, limit int) url.Values {
	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
