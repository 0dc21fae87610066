package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/convox/logger"
	"github.com/convox/stdsdk"
	"github.com/lexcomply/admin/pkg/helpers"
	"github.com/lexcomply/admin/pkg/httperr"
	"github.com/lexcomply/admin/pkg/jwt"
	"github.com/lexcomply/admin/pkg/structs"
	"github.com/pkg/errors"
)

const DefaultEndpoint = "http://localhost:3000/api"

// ErrTokenExpired is returned before any request is sent when the session
// token has already expired.
var ErrTokenExpired = jwt.ErrExpired

// ErrEmptyResponse is returned when a call that expects a record gets a
// successful response with no body.
var ErrEmptyResponse = errors.New("empty response from server")

type Client struct {
	*stdsdk.Client
	Debug   bool
	Logger  *logger.Logger
	Token   string
	Version string

	ctx context.Context
}

// ensure interface parity
var _ structs.Provider = &Client{}

func New(endpoint string) (*Client, error) {
	s, err := stdsdk.New(helpers.CoalesceString(endpoint, DefaultEndpoint))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	c := &Client{
		Client:  s,
		Debug:   os.Getenv("LEXADMIN_DEBUG") == "true",
		Version: "dev",
		ctx:     context.Background(),
	}

	c.Client.Headers = c.Headers

	return c, nil
}

func NewFromEnv() (*Client, error) {
	c, err := New(os.Getenv("LEXADMIN_URL"))
	if err != nil {
		return nil, err
	}

	c.Token = os.Getenv("LEXADMIN_TOKEN")

	return c, nil
}

func (c *Client) Headers() http.Header {
	h := http.Header{}

	h.Set("User-Agent", fmt.Sprintf("lexadmin/%s", c.Version))
	h.Set("Version", c.Version)

	if c.Token != "" {
		h.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	return h
}

// WithContext returns a copy of the client whose requests are bound to ctx.
func (c *Client) WithContext(ctx context.Context) structs.Provider {
	s := *c.Client

	cc := *c
	cc.Client = &s
	cc.ctx = ctx
	cc.Client.Headers = cc.Headers

	return &cc
}

func (c *Client) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}

	return c.ctx
}

func (c *Client) Delete(path string, opts stdsdk.RequestOptions, out interface{}) error {
	return c.do("DELETE", path, opts, out)
}

func (c *Client) Get(path string, opts stdsdk.RequestOptions, out interface{}) error {
	return c.do("GET", path, opts, out)
}

func (c *Client) Post(path string, opts stdsdk.RequestOptions, out interface{}) error {
	return c.do("POST", path, opts, out)
}

func (c *Client) Put(path string, opts stdsdk.RequestOptions, out interface{}) error {
	return c.do("PUT", path, opts, out)
}

func (c *Client) requestLogger() *logger.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	if c.Debug {
		return logger.NewWriter("ns=sdk", os.Stderr)
	}

	return logger.NewWriter("ns=sdk", io.Discard)
}

func (c *Client) do(method, path string, opts stdsdk.RequestOptions, out interface{}) error {
	log := c.requestLogger().At("request").Namespace("method=%s path=%q", method, path).Start()

	if err := c.checkToken(time.Now()); err != nil {
		return log.Error(err)
	}

	req, err := c.Request(method, path, opts)
	if err != nil {
		return log.Error(errors.WithStack(err))
	}

	res, err := stdsdk.DefaultClient.Do(req.WithContext(c.Context()))
	if err != nil {
		return log.Error(errors.WithStack(err))
	}

	defer res.Body.Close()

	if err := responseError(res); err != nil {
		return log.Error(errors.WithStack(err))
	}

	log.Successf("status=%d", res.StatusCode)

	return unmarshalReader(res.Body, out)
}

// checkToken only rejects tokens it can read; opaque tokens are left for
// the server to judge.
func (c *Client) checkToken(now time.Time) error {
	if c.Token == "" {
		return nil
	}

	claims, err := jwt.Parse(c.Token)
	if err != nil {
		return nil
	}

	if claims.Expired(now) {
		return ErrTokenExpired
	}

	return nil
}

func responseError(res *http.Response) error {
	if res.StatusCode < 400 {
		return nil
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(data, &e); err == nil {
		return httperr.New(res.StatusCode, helpers.CoalesceString(e.Error, e.Message))
	}

	return httperr.New(res.StatusCode, strings.TrimSpace(string(data)))
}

func unmarshalReader(r io.Reader, out interface{}) error {
	if out == nil {
		return nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return errors.WithStack(ErrEmptyResponse)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.WithStack(err)
	}

	if v := reflect.ValueOf(out); v.Kind() == reflect.Ptr && v.Elem().Kind() == reflect.Ptr && v.Elem().IsNil() {
		return errors.WithStack(ErrEmptyResponse)
	}

	return nil
}
