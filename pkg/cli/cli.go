package cli

import (
	"github.com/convox/stdcli"
	"github.com/lexcomply/admin/sdk"
)

type HandlerFunc func(sdk.Interface, *stdcli.Context) error

var (
	flagAspects  = stdcli.StringFlag("aspects", "a", "comma separated aspect ids")
	flagDocument = stdcli.StringFlag("document", "", "path to a pdf or image of the document")
	flagHost     = stdcli.StringFlag("host", "", "api endpoint")
	flagPage     = stdcli.IntFlag("page", "", "page number")
	flagPageSize = stdcli.IntFlag("page-size", "", "records per page")
	flagWait     = stdcli.BoolFlag("wait", "w", "wait for completion")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}
