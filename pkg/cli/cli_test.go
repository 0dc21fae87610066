package cli_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/lexcomply/admin/pkg/cli"
	mocksdk "github.com/lexcomply/admin/pkg/mock/sdk"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/require"
)

type result struct {
	Code   int
	Stdout string
	Stderr string
}

func (r *result) RequireStderr(t *testing.T, lines []string) {
	require.Equal(t, lines, split(r.Stderr))
}

func (r *result) RequireStdout(t *testing.T, lines []string) {
	require.Equal(t, lines, split(r.Stdout))
}

func (r *result) StdoutLines() int {
	return len(split(r.Stdout))
}

func split(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func testClient(t *testing.T, fn func(*cli.Engine, *mocksdk.Interface)) {
	t.Setenv("LEXADMIN_TOKEN", "")
	t.Setenv("LEXADMIN_URL", "")

	cli.WaitInterval = time.Millisecond

	i := &mocksdk.Interface{}

	c := cli.New("lexadmin", "test")
	c.Client = i
	c.Settings = t.TempDir()

	fn(c, i)

	i.AssertExpectations(t)
}

func testExecute(e *cli.Engine, cmd string, stdin io.Reader) (*result, error) {
	if stdin == nil {
		stdin = &bytes.Buffer{}
	}

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}

	e.Reader.Reader = stdin

	e.Writer.Color = false
	e.Writer.Stdout = &stdout
	e.Writer.Stderr = &stderr

	cp, err := shellquote.Split(cmd)
	if err != nil {
		return nil, err
	}

	code := e.Execute(cp)

	res := &result{
		Code:   code,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	return res, nil
}
