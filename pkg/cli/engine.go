package cli

import (
	"strings"

	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/pkg/messages"
	"github.com/lexcomply/admin/sdk"
)

type Engine struct {
	*stdcli.Engine
	Client sdk.Interface
}

func (e *Engine) Command(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	r := resource(command)

	wfn := func(c *stdcli.Context) error {
		return describe(r, fn(e.currentClient(c), c))
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) CommandWithoutProvider(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	r := resource(command)

	wfn := func(c *stdcli.Context) error {
		return describe(r, fn(nil, c))
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) RegisterCommands() {
	for _, c := range commands {
		if c.Provider {
			e.Command(c.Command, c.Description, c.Handler, c.Opts)
		} else {
			e.CommandWithoutProvider(c.Command, c.Description, c.Handler, c.Opts)
		}
	}
}

func (e *Engine) currentClient(c *stdcli.Context) sdk.Interface {
	if e.Client != nil {
		return e.Client
	}

	sc, err := sdk.New(currentHost(c))
	if err != nil {
		c.Fail(err)
	}

	sc.Token = currentToken(c)
	sc.Version = c.Version()

	return sc
}

var resources = map[string]messages.Resource{
	"aspects":         messages.Aspect,
	"identifications": messages.ReqIdentification,
	"jobs":            messages.Job,
	"legal-bases":     messages.LegalBasis,
	"login":           messages.Session,
	"requirements":    messages.Requirement,
	"subjects":        messages.Subject,
	"version":         messages.Session,
}

func resource(command string) messages.Resource {
	return resources[strings.Split(command, " ")[0]]
}

// describe swaps api and transport failures for a readable title and
// message. Local errors pass through unchanged.
func describe(r messages.Resource, err error) error {
	if err == nil {
		return nil
	}

	if messages.Classify(err) == messages.Unknown {
		return err
	}

	return messages.For(r, err)
}

var commands = []command{}

type command struct {
	Command     string
	Description string
	Handler     HandlerFunc
	Opts        stdcli.CommandOptions
	Provider    bool
}

func register(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Provider:    true,
	})
}

func registerWithoutProvider(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Provider:    false,
	})
}
