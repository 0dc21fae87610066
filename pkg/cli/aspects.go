package cli

import (
	"strconv"
	"strings"

	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/pkg/state"
	"github.com/lexcomply/admin/pkg/structs"
	"github.com/lexcomply/admin/sdk"
	"github.com/pkg/errors"
)

func init() {
	register("aspects", "list aspects of a subject", Aspects, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.AspectListOptions{}), flagHost, flagPage, flagPageSize),
		Usage:    "<subject>",
		Validate: stdcli.Args(1),
	})

	register("aspects create", "create an aspect", AspectsCreate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.AspectCreateOptions{}), flagHost),
		Usage:    "<subject> <name>",
		Validate: stdcli.Args(2),
	})

	register("aspects delete", "delete one or more aspects", AspectsDelete, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<subject> <id> [id...]",
		Validate: stdcli.ArgsMin(2),
	})

	register("aspects import", "create aspects from a yaml file", AspectsImport, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<subject> <file>",
		Validate: stdcli.Args(2),
	})

	register("aspects info", "get information about an aspect", AspectsInfo, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<subject> <id>",
		Validate: stdcli.Args(2),
	})

	register("aspects update", "update an aspect", AspectsUpdate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.AspectUpdateOptions{}), flagHost),
		Usage:    "<subject> <id>",
		Validate: stdcli.Args(2),
	})
}

type aspectEntry struct {
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation"`
	Order        *int   `yaml:"order"`
}

func Aspects(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.AspectListOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	as, err := rack.AspectList(c.Arg(0), opts)
	if err != nil {
		return err
	}

	return aspectsTable(c, state.New(as, structs.AspectID, structs.AspectOrder).Items())
}

func aspectsTable(c *stdcli.Context, as structs.Aspects) error {
	t := c.Table("ID", "NAME", "ABBREVIATION", "ORDER")

	return printPage(c, t, as, func(a structs.Aspect) []string {
		return []string{a.ID, a.Name, a.Abbreviation, strconv.Itoa(a.OrderIndex)}
	})
}

func AspectsCreate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.AspectCreateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	c.Startf("Creating <info>%s</info>", c.Arg(1))

	a, err := rack.AspectCreate(c.Arg(0), c.Arg(1), opts)
	if err != nil {
		return err
	}

	return c.OK(a.ID)
}

func AspectsDelete(rack sdk.Interface, c *stdcli.Context) error {
	subject := c.Arg(0)
	ids := c.Args[1:]

	c.Startf("Deleting <info>%s</info>", strings.Join(ids, ", "))

	if len(ids) == 1 {
		if err := rack.AspectDelete(subject, ids[0]); err != nil {
			return err
		}
	} else {
		if err := rack.AspectDeleteBatch(subject, ids); err != nil {
			return err
		}
	}

	return c.OK()
}

func AspectsImport(rack sdk.Interface, c *stdcli.Context) error {
	subject := c.Arg(0)

	entries, err := loadEntries[aspectEntry](c.Arg(1))
	if err != nil {
		return err
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return errors.Errorf("entry %d: name required", i+1)
		}
	}

	as, err := rack.AspectList(subject, structs.AspectListOptions{})
	if err != nil {
		return err
	}

	local := state.New(as, structs.AspectID, structs.AspectOrder)

	for _, e := range entries {
		c.Startf("Creating <info>%s</info>", e.Name)

		a, err := rack.AspectCreate(subject, e.Name, structs.AspectCreateOptions{
			Abbreviation: optional(e.Abbreviation),
			OrderIndex:   e.Order,
		})
		if err != nil {
			return err
		}

		local.Add(*a)

		c.OK(a.ID)
	}

	return aspectsTable(c, local.Items())
}

func AspectsInfo(rack sdk.Interface, c *stdcli.Context) error {
	a, err := rack.AspectGet(c.Arg(0), c.Arg(1))
	if err != nil {
		return err
	}

	i := c.Info()

	i.Add("Id", a.ID)
	i.Add("Name", a.Name)
	i.Add("Abbreviation", a.Abbreviation)
	i.Add("Order", strconv.Itoa(a.OrderIndex))
	i.Add("Subject", a.SubjectName)

	return i.Print()
}

func AspectsUpdate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.AspectUpdateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	as, err := rack.AspectList(c.Arg(0), structs.AspectListOptions{})
	if err != nil {
		return err
	}

	local := state.New(as, structs.AspectID, structs.AspectOrder)

	c.Startf("Updating <info>%s</info>", c.Arg(1))

	a, err := rack.AspectUpdate(c.Arg(0), c.Arg(1), opts)
	if err != nil {
		return err
	}

	local.Replace(*a)

	c.OK()

	return aspectsTable(c, local.Items())
}
