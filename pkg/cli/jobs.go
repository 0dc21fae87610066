package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/pkg/helpers"
	"github.com/lexcomply/admin/pkg/structs"
	"github.com/lexcomply/admin/sdk"
	"github.com/pkg/errors"
)

var (
	WaitInterval = 2 * time.Second
	WaitTimeout  = 30 * time.Minute
)

func init() {
	register("jobs info", "get information about a job", JobsInfo, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<job>",
		Validate: stdcli.Args(1),
	})

	register("jobs wait", "wait for a job to finish", JobsWait, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHost},
		Usage:    "<job>",
		Validate: stdcli.Args(1),
	})
}

func JobsInfo(rack sdk.Interface, c *stdcli.Context) error {
	j, err := rack.JobGet(c.Arg(0))
	if err != nil {
		return err
	}

	i := c.Info()

	i.Add("Id", j.ID)
	i.Add("State", j.State)
	i.Add("Progress", fmt.Sprintf("%d%%", j.Progress))

	if j.FailedReason != "" {
		i.Add("Reason", j.FailedReason)
	}

	return i.Print()
}

func JobsWait(rack sdk.Interface, c *stdcli.Context) error {
	return waitForJob(rack, c, c.Arg(0))
}

// waitForJob polls a job until it finishes. An interrupt stops the wait,
// not the job.
func waitForJob(rack sdk.Interface, c *stdcli.Context, id string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := rack.WithContext(ctx)

	pm := progress(fmt.Sprintf("Waiting for job %s... ", id), c.Writer().Stdout, c.Writer().IsTerminal())

	var job *structs.Job

	err := helpers.WaitContext(ctx, WaitInterval, WaitTimeout, 1, func() (bool, error) {
		j, err := p.JobGet(id)
		if err != nil {
			return false, err
		}

		job = j

		pm.Progress(j.Progress)

		return j.Finished(), nil
	})

	pm.Finish()

	if err != nil {
		return err
	}

	if job.State == structs.JobFailed {
		return errors.Errorf("job %s failed: %s", id, helpers.CoalesceString(job.FailedReason, "no reason given"))
	}

	return c.Writef("Job <id>%s</id> <ok>completed</ok>\n", id)
}
