package cli

import (
	"strings"

	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/pkg/structs"
	"github.com/lexcomply/admin/sdk"
)

func init() {
	register("requirements", "list requirements", Requirements, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.RequirementListOptions{}), flagHost, flagPage, flagPageSize),
		Validate: stdcli.Args(0),
	})

	register("requirements create", "create a requirement", RequirementsCreate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.RequirementCreateOptions{}), flagAspects, flagHost),
		Usage:    "<number> <name>",
		Validate: stdcli.Args(2),
	})

	register("requirements delete", "delete one or more requirements", RequirementsDelete, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<id> [id...]",
		Validate: stdcli.ArgsMin(1),
	})

	register("requirements info", "get information about a requirement", RequirementsInfo, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<id>",
		Validate: stdcli.Args(1),
	})

	register("requirements update", "update a requirement", RequirementsUpdate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.RequirementUpdateOptions{}), flagAspects, flagHost),
		Usage:    "<id>",
		Validate: stdcli.Args(1),
	})
}

func Requirements(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.RequirementListOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	rs, err := rack.RequirementList(opts)
	if err != nil {
		return err
	}

	t := c.Table("ID", "NUMBER", "NAME", "SUBJECT", "CONDITION", "EVIDENCE", "PERIODICITY")

	return printPage(c, t, rs, func(r structs.Requirement) []string {
		return []string{r.ID, r.Number, r.Name, r.Subject.Name, r.Condition, r.Evidence, r.Periodicity}
	})
}

func RequirementsCreate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.RequirementCreateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	opts.Aspects = list(c.String("aspects"))

	c.Startf("Creating <info>%s</info>", c.Arg(0))

	r, err := rack.RequirementCreate(c.Arg(0), c.Arg(1), opts)
	if err != nil {
		return err
	}

	return c.OK(r.ID)
}

func RequirementsDelete(rack sdk.Interface, c *stdcli.Context) error {
	c.Startf("Deleting <info>%s</info>", strings.Join(c.Args, ", "))

	if len(c.Args) == 1 {
		if err := rack.RequirementDelete(c.Arg(0)); err != nil {
			return err
		}
	} else {
		if err := rack.RequirementDeleteBatch(c.Args); err != nil {
			return err
		}
	}

	return c.OK()
}

func RequirementsInfo(rack sdk.Interface, c *stdcli.Context) error {
	r, err := rack.RequirementGet(c.Arg(0))
	if err != nil {
		return err
	}

	i := c.Info()

	i.Add("Id", r.ID)
	i.Add("Number", r.Number)
	i.Add("Name", r.Name)
	i.Add("Type", r.Type)
	i.Add("Subject", r.Subject.Name)
	i.Add("Aspects", strings.Join(r.Aspects.Names(), ", "))
	i.Add("Condition", r.Condition)
	i.Add("Evidence", r.Evidence)
	i.Add("Periodicity", r.Periodicity)

	if r.MandatoryDescription != "" {
		i.Add("Mandatory", r.MandatoryDescription)
	}

	if r.ComplementaryDescription != "" {
		i.Add("Complementary", r.ComplementaryDescription)
	}

	return i.Print()
}

func RequirementsUpdate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.RequirementUpdateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	opts.Aspects = list(c.String("aspects"))

	c.Startf("Updating <info>%s</info>", c.Arg(0))

	if _, err := rack.RequirementUpdate(c.Arg(0), opts); err != nil {
		return err
	}

	return c.OK()
}
