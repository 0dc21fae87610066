package cli_test

import (
	"testing"

	"github.com/lexcomply/admin/pkg/cli"
	"github.com/lexcomply/admin/pkg/httperr"
	mocksdk "github.com/lexcomply/admin/pkg/mock/sdk"
	"github.com/lexcomply/admin/pkg/options"
	"github.com/lexcomply/admin/pkg/structs"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIdentifications(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("ReqIdentificationList", structs.ReqIdentificationListOptions{}).Return(structs.ReqIdentifications{fxReqIdentification}, nil)

		res, err := testExecute(e, "identifications", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			"ID   NAME          STATUS     SUBJECT    USER  CREATED",
			"ri1  Planta Norte  Completed  Ambiental  Ana   2 days ago",
			"page 1 of 1 (1 total)",
		})
	})
}

func TestIdentificationsFilter(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		opts := structs.ReqIdentificationListOptions{Status: options.String("Active"), User: options.String("u1")}
		i.On("ReqIdentificationList", opts).Return(structs.ReqIdentifications{}, nil)

		res, err := testExecute(e, "identifications --status Active -u u1", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStdout(t, []string{
			"ID  NAME  STATUS  SUBJECT  USER  CREATED",
			"page 1 of 1 (0 total)",
		})
	})
}

func TestIdentificationsCreate(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		opts := structs.ReqIdentificationCreateOptions{
			IntelligenceLevel: options.String("High"),
			Subject:           options.String("sub1"),
			LegalBases:        []string{"lb1", "lb2"},
		}
		i.On("ReqIdentificationCreate", "Planta Norte", opts).Return(&structs.ReqIdentificationCreated{ReqIdentificationID: "ri1", JobID: "job2"}, nil)

		res, err := testExecute(e, "identifications create 'Planta Norte' -s sub1 -l lb1,lb2 -i High", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			"Creating Planta Norte... OK, ri1",
			"Identifying requirements in job job2",
		})
	})
}

func TestIdentificationsCreateWait(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		opts := structs.ReqIdentificationCreateOptions{LegalBases: []string{"lb1"}}
		i.On("ReqIdentificationCreate", "Planta Norte", opts).Return(&structs.ReqIdentificationCreated{ReqIdentificationID: "ri1", JobID: "job1"}, nil)
		i.On("WithContext", mock.Anything).Return(i)
		i.On("JobGet", "job1").Return(&fxJobActive, nil).Twice()
		i.On("JobGet", "job1").Return(&fxJobCompleted, nil).Once()

		res, err := testExecute(e, "identifications create 'Planta Norte' --legal-bases lb1 --wait", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			"Creating Planta Norte... OK, ri1",
			"Waiting for job job1... 40%",
			"Waiting for job job1... 100%",
			"Job job1 completed",
		})
	})
}

func TestIdentificationsCreateMixedJurisdictions(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		opts := structs.ReqIdentificationCreateOptions{LegalBases: []string{"lb1", "lb2"}}
		i.On("ReqIdentificationCreate", "Planta Norte", opts).Return(nil, httperr.New(400, "LegalBases must have the same jurisdiction"))

		res, err := testExecute(e, "identifications create 'Planta Norte' -l lb1,lb2", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: Mixed jurisdictions: All selected legal bases must share the same jurisdiction."})
		res.RequireStdout(t, []string{"Creating Planta Norte... "})
	})
}

func TestIdentificationsDelete(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("ReqIdentificationDeleteBatch", []string{"ri1", "ri2"}).Return(nil)

		res, err := testExecute(e, "identifications delete ri1 ri2", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"Deleting ri1, ri2... OK"})
	})
}

func TestIdentificationsDeleteRunning(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("ReqIdentificationDelete", "ri1").Return(httperr.New(409, "Job is still running"))

		res, err := testExecute(e, "identifications delete ri1", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: Identification in progress: The identification cannot change while its analysis job is running."})
	})
}

func TestIdentificationsInfo(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("ReqIdentificationGet", "ri1").Return(&fxReqIdentification, nil)

		res, err := testExecute(e, "identifications info ri1", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			"Id            ri1",
			"Name          Planta Norte",
			"Description   Revision anual",
			"Status        Completed",
			"Subject       Ambiental",
			"Jurisdiction  Federal",
			"Legal Bases   Ley General",
			"Intelligence  High",
			"User          Ana",
			"Created       2 days ago",
		})
	})
}

func TestIdentificationsUpdate(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		opts := structs.ReqIdentificationUpdateOptions{Description: options.String("Revision semestral")}
		i.On("ReqIdentificationUpdate", "ri1", opts).Return(&fxReqIdentification, nil)

		res, err := testExecute(e, "identifications update ri1 -d 'Revision semestral'", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"Updating ri1... OK"})
	})
}

func TestIdentificationsWait(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("WithContext", mock.Anything).Return(i)
		i.On("JobGet", "job1").Return(&fxJobCompleted, nil)

		res, err := testExecute(e, "identifications wait job1", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			"Waiting for job job1... 100%",
			"Job job1 completed",
		})
	})
}
