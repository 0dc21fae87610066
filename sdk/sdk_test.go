package sdk_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/convox/logger"
	"github.com/convox/stdapi"
	"github.com/convox/stdsdk"
	"github.com/lexcomply/admin/pkg/httperr"
	"github.com/lexcomply/admin/pkg/jwt"
	"github.com/lexcomply/admin/pkg/jwt/jwttest"
	"github.com/lexcomply/admin/pkg/structs"
	"github.com/lexcomply/admin/sdk"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, s *stdapi.Server, fn func(*sdk.Client)) {
	ht := httptest.NewServer(s)
	defer ht.Close()

	c, err := sdk.New(ht.URL)
	require.NoError(t, err)

	fn(c)
}

func renderStatus(c *stdapi.Context, code int, body string) error {
	c.Response().WriteHeader(code)
	_, err := c.Response().Write([]byte(body))
	return err
}

func TestNew(t *testing.T) {
	c, err := sdk.New("")
	require.NoError(t, err)
	require.Equal(t, sdk.DefaultEndpoint, c.Endpoint.String())
	require.Equal(t, "dev", c.Version)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LEXADMIN_URL", "https://lex.example.org/api")
	t.Setenv("LEXADMIN_TOKEN", "token1")
	t.Setenv("LEXADMIN_DEBUG", "true")

	c, err := sdk.NewFromEnv()
	require.NoError(t, err)
	require.Equal(t, "lex.example.org", c.Endpoint.Host)
	require.Equal(t, "token1", c.Token)
	require.True(t, c.Debug)
}

func TestHeaders(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/auth", func(c *stdapi.Context) error {
		require.Equal(t, "Bearer token1", c.Header("Authorization"))
		require.Equal(t, "lexadmin/1.2.3", c.Header("User-Agent"))
		require.Equal(t, "1.2.3", c.Header("Version"))
		return c.RenderOK()
	})

	testServer(t, s, func(c *sdk.Client) {
		c.Token = "token1"
		c.Version = "1.2.3"
		require.NoError(t, c.Auth())
	})
}

func TestHeadersNoToken(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/auth", func(c *stdapi.Context) error {
		require.Equal(t, "", c.Header("Authorization"))
		return c.RenderOK()
	})

	testServer(t, s, func(c *sdk.Client) {
		require.NoError(t, c.Auth())
	})
}

func TestExpiredTokenFailsFast(t *testing.T) {
	calls := 0

	s := stdapi.New("api", "api")
	s.Route("GET", "/subjects", func(c *stdapi.Context) error {
		calls++
		return c.RenderJSON(structs.Subjects{})
	})

	token, err := jwttest.Sign("secret", jwt.Claims{UserID: "u1"}, -time.Minute)
	require.NoError(t, err)

	testServer(t, s, func(c *sdk.Client) {
		c.Token = token

		_, err := c.SubjectList(structs.SubjectListOptions{})
		require.ErrorIs(t, err, sdk.ErrTokenExpired)
		require.Equal(t, 0, calls)
	})
}

func TestValidTokenPasses(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/subjects", func(c *stdapi.Context) error {
		return c.RenderJSON(structs.Subjects{})
	})

	token, err := jwttest.Sign("secret", jwt.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)

	testServer(t, s, func(c *sdk.Client) {
		c.Token = token

		ss, err := c.SubjectList(structs.SubjectListOptions{})
		require.NoError(t, err)
		require.Len(t, ss, 0)
	})
}

func TestErrorJSON(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("POST", "/subjects", func(c *stdapi.Context) error {
		return renderStatus(c, 409, `{"message":"Subject already exists"}`)
	})

	testServer(t, s, func(c *sdk.Client) {
		_, err := c.SubjectCreate("Agua", structs.SubjectCreateOptions{})
		require.EqualError(t, err, "Subject already exists")
		require.Equal(t, 409, httperr.Code(err))
	})
}

func TestErrorJSONErrorField(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/subjects/s1", func(c *stdapi.Context) error {
		return renderStatus(c, 404, `{"error":"Subject not found"}`)
	})

	testServer(t, s, func(c *sdk.Client) {
		_, err := c.SubjectGet("s1")
		require.EqualError(t, err, "Subject not found")
		require.Equal(t, 404, httperr.Code(err))
	})
}

func TestErrorText(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/jobs/j1", func(c *stdapi.Context) error {
		return renderStatus(c, 500, "queue unavailable\n")
	})

	testServer(t, s, func(c *sdk.Client) {
		_, err := c.JobGet("j1")
		require.EqualError(t, err, "queue unavailable")

		he, ok := httperr.As(err)
		require.True(t, ok)
		require.GreaterOrEqual(t, he.Code(), 500)
	})
}

func TestErrorBareStatus(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("DELETE", "/subjects/s1", func(c *stdapi.Context) error {
		return renderStatus(c, 403, "")
	})

	testServer(t, s, func(c *sdk.Client) {
		err := c.SubjectDelete("s1")
		require.EqualError(t, err, "response status 403")
		require.Equal(t, 403, httperr.Code(err))
	})
}

func TestWithContextCanceled(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/jobs/j1", func(c *stdapi.Context) error {
		return c.RenderJSON(structs.Job{ID: "j1"})
	})

	testServer(t, s, func(c *sdk.Client) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.WithContext(ctx).JobGet("j1")
		require.True(t, errors.Is(err, context.Canceled))

		j, err := c.JobGet("j1")
		require.NoError(t, err)
		require.Equal(t, "j1", j.ID)
	})
}

func TestWithContextKeepsToken(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/auth", func(c *stdapi.Context) error {
		require.Equal(t, "Bearer token1", c.Header("Authorization"))
		return c.RenderOK()
	})

	testServer(t, s, func(c *sdk.Client) {
		c.Token = "token1"
		require.NoError(t, c.WithContext(context.Background()).Auth())
	})
}

func TestRequestLogging(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/jobs/j1", func(c *stdapi.Context) error {
		return c.RenderJSON(structs.Job{ID: "j1"})
	})
	s.Route("GET", "/jobs/j2", func(c *stdapi.Context) error {
		return renderStatus(c, 404, "")
	})

	testServer(t, s, func(c *sdk.Client) {
		var buf bytes.Buffer
		c.Logger = logger.NewWriter("ns=sdk", &buf)

		_, err := c.JobGet("j1")
		require.NoError(t, err)
		require.Contains(t, buf.String(), `ns=sdk at=request method=GET path="/jobs/j1" state=success status=200`)

		_, err = c.JobGet("j2")
		require.Error(t, err)
		require.Contains(t, buf.String(), `path="/jobs/j2" error="response status 404"`)
	})
}

func TestEmptyResponse(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/jobs/j1", func(c *stdapi.Context) error {
		return renderStatus(c, 200, "")
	})
	s.Route("GET", "/jobs/j2", func(c *stdapi.Context) error {
		return renderStatus(c, 200, "null")
	})
	s.Route("POST", "/req-identification", func(c *stdapi.Context) error {
		return renderStatus(c, 201, "  ")
	})

	testServer(t, s, func(c *sdk.Client) {
		j, err := c.JobGet("j1")
		require.Nil(t, j)
		require.True(t, errors.Is(err, sdk.ErrEmptyResponse))

		j, err = c.JobGet("j2")
		require.Nil(t, j)
		require.True(t, errors.Is(err, sdk.ErrEmptyResponse))

		rc, err := c.ReqIdentificationCreate("Planta Norte", structs.ReqIdentificationCreateOptions{LegalBases: []string{"lb1"}})
		require.Nil(t, rc)
		require.EqualError(t, err, "empty response from server")
	})
}

func TestRawGet(t *testing.T) {
	s := stdapi.New("api", "api")
	s.Route("GET", "/health", func(c *stdapi.Context) error {
		require.Equal(t, "1", c.Query("deep"))
		return c.RenderJSON(map[string]string{"status": "ok"})
	})

	testServer(t, s, func(c *sdk.Client) {
		var v map[string]string

		var i sdk.Interface = c

		err := i.Get("/health", stdsdk.RequestOptions{Query: stdsdk.Query{"deep": "1"}}, &v)
		require.NoError(t, err)
		require.Equal(t, "ok", v["status"])
	})
}
