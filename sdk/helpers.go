package sdk

import (
	"encoding/json"

	"github.com/convox/stdsdk"
	"github.com/pkg/errors"
)

// setList stores ids as a json array form field; multipart bodies only
// carry one value per field.
func setList(ro *stdsdk.RequestOptions, name string, ids []string) error {
	if ids == nil {
		return nil
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return errors.WithStack(err)
	}

	if ro.Params == nil {
		ro.Params = stdsdk.Params{}
	}

	ro.Params[name] = string(data)

	return nil
}

func setDocument(ro *stdsdk.RequestOptions, data []byte) {
	if len(data) == 0 {
		return
	}

	ro.Files = stdsdk.Files{"document": data}
}

func batch(ids []string) (stdsdk.RequestOptions, error) {
	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	if err := setList(&ro, "ids", ids); err != nil {
		return ro, err
	}

	return ro, nil
}
