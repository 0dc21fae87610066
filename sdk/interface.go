package sdk

import (
	"github.com/convox/stdsdk"
	"github.com/lexcomply/admin/pkg/structs"
)

type Interface interface {
	structs.Provider

	// raw http
	Get(string, stdsdk.RequestOptions, interface{}) error
}
