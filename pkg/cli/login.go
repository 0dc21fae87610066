package cli

import (
	"time"

	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/pkg/helpers"
	"github.com/lexcomply/admin/pkg/jwt"
	"github.com/lexcomply/admin/sdk"
	"github.com/pkg/errors"
)

func init() {
	registerWithoutProvider("login", "authenticate with a session token", Login, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<token>",
		Validate: stdcli.Args(1),
	})

	registerWithoutProvider("logout", "forget the session token", Logout, stdcli.CommandOptions{
		Validate: stdcli.Args(0),
	})

	registerWithoutProvider("whoami", "show the current session", Whoami, stdcli.CommandOptions{
		Validate: stdcli.Args(0),
	})
}

func Login(_ sdk.Interface, c *stdcli.Context) error {
	host := currentHost(c)
	token := c.Arg(0)

	c.Startf("Authenticating with <info>%s</info>", host)

	cl, err := sdk.New(host)
	if err != nil {
		return err
	}

	cl.Token = token
	cl.Version = c.Version()

	if err := cl.Auth(); err != nil {
		return err
	}

	if err := c.SettingWrite("host", host); err != nil {
		return err
	}

	if err := c.SettingWrite("token", token); err != nil {
		return err
	}

	return c.OK()
}

func Logout(_ sdk.Interface, c *stdcli.Context) error {
	c.Startf("Logging out")

	if err := c.SettingDelete("token"); err != nil {
		return err
	}

	return c.OK()
}

func Whoami(_ sdk.Interface, c *stdcli.Context) error {
	token := currentToken(c)
	if token == "" {
		return errors.New("not logged in, try `lexadmin login`")
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return err
	}

	i := c.Info()

	i.Add("Host", currentHost(c))
	i.Add("User", claims.Identity())

	if claims.Name != "" {
		i.Add("Name", claims.Name)
	}

	if claims.Email != "" {
		i.Add("Email", claims.Email)
	}

	if claims.Role != "" {
		i.Add("Role", claims.Role)
	}

	if claims.ExpiresAt != nil {
		if claims.Expired(time.Now()) {
			i.Add("Expires", "expired")
		} else {
			i.Add("Expires", helpers.Ago(claims.ExpiresAt.Time))
		}
	}

	return i.Print()
}
