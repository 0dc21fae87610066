package cli

import (
	"fmt"
	"io"
	"time"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// progressMeter draws job progress as a bar on terminals and as one line per
// change everywhere else.
type progressMeter struct {
	bar      *pb.ProgressBar
	finished bool
	last     int
	out      io.Writer
	prefix   string
}

func progress(prefix string, out io.Writer, terminal bool) *progressMeter {
	pm := &progressMeter{last: -1, out: out, prefix: prefix}

	if terminal {
		pm.bar = pb.New(100)
		pm.bar.Prefix(prefix)
		pm.bar.SetMaxWidth(70)
		pm.bar.SetRefreshRate(200 * time.Millisecond)
		pm.bar.ShowCounters = false
		pm.bar.Output = out
		pm.bar.Start()
	}

	return pm
}

func (pm *progressMeter) Progress(percent int) {
	if percent < 0 {
		percent = 0
	}

	if percent > 100 {
		percent = 100
	}

	if pm.bar != nil {
		pm.bar.Set(percent)
		return
	}

	if percent != pm.last {
		fmt.Fprintf(pm.out, "%s%d%%\n", pm.prefix, percent)
		pm.last = percent
	}
}

func (pm *progressMeter) Finish() {
	if pm.finished {
		return
	}

	if pm.bar != nil {
		pm.bar.Finish()
	}

	pm.finished = true
}
