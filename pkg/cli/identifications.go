package cli

import (
	"strings"

	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/pkg/helpers"
	"github.com/lexcomply/admin/pkg/structs"
	"github.com/lexcomply/admin/sdk"
)

var flagLegalBases = stdcli.StringFlag("legal-bases", "l", "comma separated legal basis ids")

func init() {
	register("identifications", "list requirement identifications", Identifications, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.ReqIdentificationListOptions{}), flagHost, flagPage, flagPageSize),
		Validate: stdcli.Args(0),
	})

	register("identifications create", "start a requirement identification", IdentificationsCreate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.ReqIdentificationCreateOptions{}), flagHost, flagLegalBases, flagWait),
		Usage:    "<name>",
		Validate: stdcli.Args(1),
	})

	register("identifications delete", "delete one or more requirement identifications", IdentificationsDelete, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<id> [id...]",
		Validate: stdcli.ArgsMin(1),
	})

	register("identifications info", "get information about a requirement identification", IdentificationsInfo, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<id>",
		Validate: stdcli.Args(1),
	})

	register("identifications update", "update a requirement identification", IdentificationsUpdate, stdcli.CommandOptions{
		Flags:    append(stdcli.OptionFlags(structs.ReqIdentificationUpdateOptions{}), flagHost),
		Usage:    "<id>",
		Validate: stdcli.Args(1),
	})

	register("identifications wait", "wait for an identification job to finish", JobsWait, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<job>",
		Validate: stdcli.Args(1),
	})
}

func Identifications(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.ReqIdentificationListOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	rs, err := rack.ReqIdentificationList(opts)
	if err != nil {
		return err
	}

	t := c.Table("ID", "NAME", "STATUS", "SUBJECT", "USER", "CREATED")

	return printPage(c, t, rs, func(r structs.ReqIdentification) []string {
		return []string{r.ID, r.Name, r.Status, r.Subject.Name, r.User.Name, helpers.Ago(r.CreatedAt)}
	})
}

func IdentificationsCreate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.ReqIdentificationCreateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	opts.LegalBases = list(c.String("legal-bases"))

	c.Startf("Creating <info>%s</info>", c.Arg(0))

	rc, err := rack.ReqIdentificationCreate(c.Arg(0), opts)
	if err != nil {
		return err
	}

	if err := c.OK(rc.ReqIdentificationID); err != nil {
		return err
	}

	if rc.JobID == "" {
		return nil
	}

	if c.Bool("wait") {
		return waitForJob(rack, c, rc.JobID)
	}

	return c.Writef("Identifying requirements in job <id>%s</id>\n", rc.JobID)
}

func IdentificationsDelete(rack sdk.Interface, c *stdcli.Context) error {
	c.Startf("Deleting <info>%s</info>", strings.Join(c.Args, ", "))

	if len(c.Args) == 1 {
		if err := rack.ReqIdentificationDelete(c.Arg(0)); err != nil {
			return err
		}
	} else {
		if err := rack.ReqIdentificationDeleteBatch(c.Args); err != nil {
			return err
		}
	}

	return c.OK()
}

func IdentificationsInfo(rack sdk.Interface, c *stdcli.Context) error {
	r, err := rack.ReqIdentificationGet(c.Arg(0))
	if err != nil {
		return err
	}

	names := make([]string, len(r.LegalBases))

	for i, l := range r.LegalBases {
		names[i] = l.Name
	}

	i := c.Info()

	i.Add("Id", r.ID)
	i.Add("Name", r.Name)
	i.Add("Description", r.Description)
	i.Add("Status", r.Status)
	i.Add("Subject", r.Subject.Name)
	i.Add("Jurisdiction", strings.Join(nonEmpty(r.Jurisdiction, r.State, r.Municipality), "/"))
	i.Add("Legal Bases", strings.Join(names, ", "))
	i.Add("Intelligence", r.IntelligenceLevel)
	i.Add("User", r.User.Name)
	i.Add("Created", helpers.Ago(r.CreatedAt))

	return i.Print()
}

func IdentificationsUpdate(rack sdk.Interface, c *stdcli.Context) error {
	var opts structs.ReqIdentificationUpdateOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	c.Startf("Updating <info>%s</info>", c.Arg(0))

	if _, err := rack.ReqIdentificationUpdate(c.Arg(0), opts); err != nil {
		return err
	}

	return c.OK()
}

func nonEmpty(ss ...string) []string {
	out := []string{}

	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}

	return out
}
