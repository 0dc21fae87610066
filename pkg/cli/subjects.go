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
	register("subjects", "list subjects", Subjects, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.SubjectListOptions{}), flagHost, flagPage, flagPageSize),
		Validate: stdcli.Args(0),
	})

	register("subjects create", "create a subject", SubjectsCreate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.SubjectCreateOptions{}), flagHost),
		Usage:    "<name>",
		Validate: stdcli.Args(1),
	})

	register("subjects delete", "delete one or more subjects", SubjectsDelete, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<id> [id...]",
		Validate: stdcli.ArgsMin(1),
	})

	register("subjects import", "create subjects from a yaml file", SubjectsImport, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<file>",
		Validate: stdcli.Args(1),
	})

	register("subjects info", "get information about a subject", SubjectsInfo, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<id>",
		Validate: stdcli.Args(1),
	})

	register("subjects update", "update a subject", SubjectsUpdate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.SubjectUpdateOptions{}), flagHost),
		Usage:    "<id>",
		Validate: stdcli.Args(1),
	})
}

type subjectEntry struct {
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation"`
	Order        *int   `yaml:"order"`
}

func Subjects(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.SubjectListOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	ss, err := rack.SubjectList(opts)
	if err != nil {
		return err
	}

	return subjectsTable(c, state.New(ss, structs.SubjectID, structs.SubjectOrder).Items())
}

func subjectsTable(c *stdcli.Context, ss structs.Subjects) error {
	t := c.Table("ID", "NAME", "ABBREVIATION", "ORDER")

	return printPage(c, t, ss, func(s structs.Subject) []string {
		return []string{s.ID, s.Name, s.Abbreviation, strconv.Itoa(s.OrderIndex)}
	})
}

func SubjectsCreate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.SubjectCreateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	c.Startf("Creating <info>%s</info>", c.Arg(0))

	s, err := rack.SubjectCreate(c.Arg(0), opts)
	if err != nil {
		return err
	}

	return c.OK(s.ID)
}

func SubjectsDelete(rack sdk.Interface, c *stdcli.Context) error {
	ids := c.Args

	c.Startf("Deleting <info>%s</info>", strings.Join(ids, ", "))

	if len(ids) == 1 {
		if err := rack.SubjectDelete(ids[0]); err != nil {
			return err
		}
	} else {
		if err := rack.SubjectDeleteBatch(ids); err != nil {
			return err
		}
	}

	return c.OK()
}

func SubjectsImport(rack sdk.Interface, c *stdcli.Context) error {
	entries, err := loadEntries[subjectEntry](c.Arg(0))
	if err != nil {
		return err
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return errors.Errorf("entry %d: name required", i+1)
		}
	}

	ss, err := rack.SubjectList(structs.SubjectListOptions{})
	if err != nil {
		return err
	}

	local := state.New(ss, structs.SubjectID, structs.SubjectOrder)

	for _, e := range entries {
		c.Startf("Creating <info>%s</info>", e.Name)

		s, err := rack.SubjectCreate(e.Name, structs.SubjectCreateOptions{
			Abbreviation: optional(e.Abbreviation),
			OrderIndex:   e.Order,
		})
		if err != nil {
			return err
		}

		local.Add(*s)

		c.OK(s.ID)
	}

	return subjectsTable(c, local.Items())
}

func SubjectsInfo(rack sdk.Interface, c *stdcli.Context) error {
	s, err := rack.SubjectGet(c.Arg(0))
	if err != nil {
		return err
	}

	i := c.Info()

	i.Add("Id", s.ID)
	i.Add("Name", s.Name)
	i.Add("Abbreviation", s.Abbreviation)
	i.Add("Order", strconv.Itoa(s.OrderIndex))

	return i.Print()
}

func SubjectsUpdate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.SubjectUpdateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	ss, err := rack.SubjectList(structs.SubjectListOptions{})
	if err != nil {
		return err
	}

	local := state.New(ss, structs.SubjectID, structs.SubjectOrder)

	c.Startf("Updating <info>%s</info>", c.Arg(0))

	s, err := rack.SubjectUpdate(c.Arg(0), opts)
	if err != nil {
		return err
	}

	local.Replace(*s)

	c.OK()

	return subjectsTable(c, local.Items())
}
