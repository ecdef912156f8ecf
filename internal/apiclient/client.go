package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/config"
)

const RequestIDHeader = "X-Request-ID"

var ErrUnexpectedJSON = errors.New("expected binary body, got json")

// Envelope is the part every API response shares.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	authorized bool
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// WithToken returns a client whose requests carry Authorization: Bearer token.
func (c *Client) WithToken(token string) *Client {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c.httpClient)
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	hc := oauth2.NewClient(ctx, src)
	hc.Timeout = c.httpClient.Timeout

	return &Client{
		baseURL:    c.baseURL,
		httpClient: hc,
		authorized: true,
	}
}

func (c *Client) Authorized() bool {
	return c.authorized
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// JSON sends in (if non-nil) as a JSON body and decodes the response into out
// (if non-nil) after checking the success envelope.
func (c *Client) JSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return apperr.Transport(fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(data)
	}

	resp, ctx, err := c.do(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(ctx, resp, out)
}

// Multipart streams r as a single file part named field.
func (c *Client) Multipart(ctx context.Context, path, field, filename, contentType string, r io.Reader, out any) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		part, err := mw.CreatePart(h)
		if err == nil {
			_, err = io.Copy(part, r)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	resp, ctx, err := c.do(ctx, http.MethodPost, path, pr, mw.FormDataContentType())
	if err != nil {
		pr.CloseWithError(err)
		return err
	}
	defer resp.Body.Close()

	return decode(ctx, resp, out)
}

// Download posts in as JSON and copies a binary response body into w.
func (c *Client) Download(ctx context.Context, path string, in any, w io.Writer) (int64, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return 0, apperr.Transport(fmt.Errorf("encode request: %w", err))
	}

	resp, ctx, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, decode(ctx, resp, nil)
	}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := decode(ctx, resp, nil); err != nil {
			return 0, err
		}
		return 0, apperr.Transport(ErrUnexpectedJSON)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("download interrupted")
		return n, apperr.Transport(err)
	}
	return n, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, context.Context, error) {
	id := uuid.NewString()
	ctx = config.ContextWithRequestID(ctx, id)
	log := config.WithContext(ctx).WithField("method", method).WithField("path", path)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, ctx, apperr.Transport(fmt.Errorf("build request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, id)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("request failed")
		return nil, ctx, apperr.Transport(err)
	}

	log.WithField("status", resp.StatusCode).
		WithField("elapsed", time.Since(start).String()).
		Debug("request completed")
	return resp, ctx, nil
}

func decode(ctx context.Context, resp *http.Response, out any) error {
	log := config.WithContext(ctx).WithField("status", resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("failed to read response body")
		return apperr.Transport(err)
	}

	var env Envelope
	envErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("body", truncate(raw, 512)).Warn("api returned an error status")
		if envErr != nil {
			return apperr.Server(resp.StatusCode, "")
		}
		return apperr.Server(resp.StatusCode, env.Error)
	}

	if envErr != nil {
		log.WithError(envErr).Error("failed to decode response envelope")
		return apperr.Transport(fmt.Errorf("decode response: %w", envErr))
	}
	if !env.Success {
		log.WithField("error", env.Error).Warn("api reported failure")
		return apperr.Server(resp.StatusCode, env.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.WithError(err).Error("failed to decode response payload")
		return apperr.Transport(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
