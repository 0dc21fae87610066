package cli

import (
	"os"
	"strings"

	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/pkg/helpers"
	"github.com/lexcomply/admin/pkg/paging"
	"github.com/lexcomply/admin/sdk"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

func currentHost(c *stdcli.Context) string {
	if h := c.String("host"); h != "" {
		return h
	}

	if h := os.Getenv("LEXADMIN_URL"); h != "" {
		return h
	}

	h, _ := c.SettingRead("host")

	return helpers.CoalesceString(h, sdk.DefaultEndpoint)
}

func currentToken(c *stdcli.Context) string {
	if t := os.Getenv("LEXADMIN_TOKEN"); t != "" {
		return t
	}

	t, _ := c.SettingRead("token")

	return t
}

func currentPage(c *stdcli.Context) paging.Page {
	return paging.New(c.Int("page"), c.Int("page-size"))
}

// list splits a comma separated flag value, returning nil when it is empty.
func list(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	ids := []string{}

	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

func printPage[T any](c *stdcli.Context, t *stdcli.Table, items []T, row func(T) []string) error {
	p := currentPage(c)

	for _, item := range paging.Slice(items, p) {
		t.AddRow(row(item)...)
	}

	if err := t.Print(); err != nil {
		return err
	}

	return c.Writef("%s\n", p.Summary(len(items)))
}

func validateDate(s *string) error {
	if s == nil {
		return nil
	}

	d, err := helpers.Date(*s)
	if err != nil {
		return err
	}

	*s = d

	return nil
}

func readDocument(c *stdcli.Context) ([]byte, error) {
	path := c.String("document")
	if path == "" {
		return nil, nil
	}

	if !helpers.FileExists(path) {
		return nil, errors.Errorf("no such file: %s", path)
	}

	_, data, err := helpers.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return data, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// loadEntries reads a yaml file holding one list of T per document.
func loadEntries[T any](path string) ([]T, error) {
	_, data, err := helpers.ReadFile(path)
	if err != nil {
		return nil, err
	}

	entries := []T{}

	for _, doc := range helpers.YAMLDocuments(data) {
		var ee []T

		if err := yaml.Unmarshal(doc, &ee); err != nil {
			return nil, errors.Wrap(err, path)
		}

		entries = append(entries, ee...)
	}

	return entries, nil
}
