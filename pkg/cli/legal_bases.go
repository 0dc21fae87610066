package cli

import (
	"strings"

	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/pkg/structs"
	"github.com/lexcomply/admin/sdk"
)

func init() {
	register("legal-bases", "list legal bases", LegalBases, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.LegalBasisListOptions{}), flagHost, flagPage, flagPageSize),
		Validate: stdcli.Args(0),
	})

	register("legal-bases create", "create a legal basis", LegalBasesCreate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.LegalBasisCreateOptions{}), flagAspects, flagDocument, flagHost, flagWait),
		Usage:    "<name>",
		Validate: stdcli.Args(1),
	})

	register("legal-bases delete", "delete one or more legal bases", LegalBasesDelete, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<id> [id...]",
		Validate: stdcli.ArgsMin(1),
	})

	register("legal-bases info", "get information about a legal basis", LegalBasesInfo, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<id>",
		Validate: stdcli.Args(1),
	})

	register("legal-bases update", "update a legal basis", LegalBasesUpdate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.LegalBasisUpdateOptions{}), flagAspects, flagDocument, flagHost, flagWait),
		Usage:    "<id>",
		Validate: stdcli.Args(1),
	})
}

func LegalBases(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.LegalBasisListOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	if err := validateDate(opts.From); err != nil {
		return err
	}

	if err := validateDate(opts.To); err != nil {
		return err
	}

	ls, err := rack.LegalBasisList(opts)
	if err != nil {
		return err
	}

	t := c.Table("ID", "NAME", "ABBREVIATION", "CLASSIFICATION", "JURISDICTION", "SUBJECT", "LAST REFORM")

	return printPage(c, t, ls, func(l structs.LegalBasis) []string {
		return []string{l.ID, l.Name, l.Abbreviation, l.Classification, jurisdiction(l), l.Subject.Name, l.LastReform}
	})
}

func LegalBasesCreate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.LegalBasisCreateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	if err := validateDate(opts.LastReform); err != nil {
		return err
	}

	doc, err := readDocument(c)
	if err != nil {
		return err
	}

	opts.Aspects = list(c.String("aspects"))
	opts.Document = doc

	c.Startf("Creating <info>%s</info>", c.Arg(0))

	lc, err := rack.LegalBasisCreate(c.Arg(0), opts)
	if err != nil {
		return err
	}

	if err := c.OK(lc.LegalBasis.ID); err != nil {
		return err
	}

	return extraction(rack, c, lc.JobID)
}

func LegalBasesDelete(rack sdk.Interface, c *stdcli.Context) error {
	c.Startf("Deleting <info>%s</info>", strings.Join(c.Args, ", "))

	if len(c.Args) == 1 {
		if err := rack.LegalBasisDelete(c.Arg(0)); err != nil {
			return err
		}
	} else {
		if err := rack.LegalBasisDeleteBatch(c.Args); err != nil {
			return err
		}
	}

	return c.OK()
}

func LegalBasesInfo(rack sdk.Interface, c *stdcli.Context) error {
	l, err := rack.LegalBasisGet(c.Arg(0))
	if err != nil {
		return err
	}

	i := c.Info()

	i.Add("Id", l.ID)
	i.Add("Name", l.Name)
	i.Add("Abbreviation", l.Abbreviation)
	i.Add("Classification", l.Classification)
	i.Add("Jurisdiction", jurisdiction(*l))
	i.Add("Subject", l.Subject.Name)
	i.Add("Aspects", strings.Join(l.Aspects.Names(), ", "))
	i.Add("Last Reform", l.LastReform)

	if l.URL != "" {
		i.Add("Document", l.URL)
	}

	return i.Print()
}

func LegalBasesUpdate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.LegalBasisUpdateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	if err := validateDate(opts.LastReform); err != nil {
		return err
	}

	doc, err := readDocument(c)
	if err != nil {
		return err
	}

	opts.Aspects = list(c.String("aspects"))
	opts.Document = doc

	c.Startf("Updating <info>%s</info>", c.Arg(0))

	lc, err := rack.LegalBasisUpdate(c.Arg(0), opts)
	if err != nil {
		return err
	}

	if err := c.OK(); err != nil {
		return err
	}

	return extraction(rack, c, lc.JobID)
}

// extraction follows an article extraction job started by a create or
// update, if there is one.
func extraction(rack sdk.Interface, c *stdcli.Context, job string) error {
	if job == "" {
		return nil
	}

	if c.Bool("wait") {
		return waitForJob(rack, c, job)
	}

	return c.Writef("Extracting articles in job <id>%s</id>\n", job)
}

func jurisdiction(l structs.LegalBasis) string {
	return strings.Join(nonEmpty(l.Jurisdiction, l.State, l.Municipality), "/")
}
