package cli

import (
	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/sdk"
)

func init() {
	register("version", "display version information", Version, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Validate: stdcli.Args(0),
	})
}

func Version(rack sdk.Interface, c *stdcli.Context) error {
	c.Writef("client: <info>%s</info>\n", c.Version())

	if currentToken(c) == "" {
		c.Writef("server: <info>none</info>\n")
		return nil
	}

	if err := rack.Auth(); err != nil {
		return err
	}

	c.Writef("server: <info>%s</info>\n", currentHost(c))

	return nil
}
