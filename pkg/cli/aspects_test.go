package cli_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lexcomply/admin/pkg/cli"
	"github.com/lexcomply/admin/pkg/httperr"
	mocksdk "github.com/lexcomply/admin/pkg/mock/sdk"
	"github.com/lexcomply/admin/pkg/options"
	"github.com/lexcomply/admin/pkg/structs"
	"github.com/stretchr/testify/require"
)

func TestAspects(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("AspectList", "sub1", structs.AspectListOptions{}).Return(structs.Aspects{fxAspect2, fxAspect}, nil)

		res, err := testExecute(e, "aspects sub1", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			"ID    NAME  ABBREVIATION  ORDER",
			"asp1  Agua  AG            1",
			"asp2  Aire  AI            2",
			"page 1 of 1 (2 total)",
		})
	})
}

func TestAspectsSubjectNotFound(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("AspectList", "sub9", structs.AspectListOptions{}).Return(nil, httperr.New(404, "Subject not found"))

		res, err := testExecute(e, "aspects sub9", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: Subject not found: The subject for this aspect does not exist."})
		res.RequireStdout(t, []string{""})
	})
}

func TestAspectsCreate(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("AspectCreate", "sub1", "Agua", structs.AspectCreateOptions{Abbreviation: options.String("AG")}).Return(&fxAspect, nil)

		res, err := testExecute(e, "aspects create sub1 Agua --abbreviation AG", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"Creating Agua... OK, asp1"})
	})
}

func TestAspectsDelete(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("AspectDelete", "sub1", "asp1").Return(nil)

		res, err := testExecute(e, "aspects delete sub1 asp1", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"Deleting asp1... OK"})
	})
}

func TestAspectsDeleteBatch(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("AspectDeleteBatch", "sub1", []string{"asp1", "asp2"}).Return(nil)

		res, err := testExecute(e, "aspects delete sub1 asp1 asp2", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"Deleting asp1, asp2... OK"})
	})
}

func TestAspectsImport(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		file := filepath.Join(t.TempDir(), "aspects.yml")

		require.NoError(t, os.WriteFile(file, []byte("- name: Suelo\n  order: 1\n"), 0600))

		fxAspect3 := structs.Aspect{ID: "asp3", SubjectID: "sub1", Name: "Suelo", OrderIndex: 1}

		i.On("AspectList", "sub1", structs.AspectListOptions{}).Return(structs.Aspects{fxAspect, fxAspect2}, nil)
		i.On("AspectCreate", "sub1", "Suelo", structs.AspectCreateOptions{OrderIndex: options.Int(1)}).Return(&fxAspect3, nil)

		res, err := testExecute(e, fmt.Sprintf("aspects import sub1 %s", file), nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			"Creating Suelo... OK, asp3",
			"ID    NAME   ABBREVIATION  ORDER",
			"asp3  Suelo                1",
			"asp1  Agua   AG            1",
			"asp2  Aire   AI            2",
			"page 1 of 1 (3 total)",
		})
	})
}

func TestAspectsImportStopsOnError(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		file := filepath.Join(t.TempDir(), "aspects.yml")

		require.NoError(t, os.WriteFile(file, []byte("- name: Agua\n- name: Suelo\n"), 0600))

		i.On("AspectList", "sub1", structs.AspectListOptions{}).Return(structs.Aspects{fxAspect}, nil)
		i.On("AspectCreate", "sub1", "Agua", structs.AspectCreateOptions{}).Return(nil, httperr.New(409, "Aspect already exists"))

		res, err := testExecute(e, fmt.Sprintf("aspects import sub1 %s", file), nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: Duplicate aspect: An aspect with this name already exists for the subject."})
		res.RequireStdout(t, []string{"Creating Agua... "})
	})
}

func TestAspectsInfo(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("AspectGet", "sub1", "asp1").Return(&fxAspect, nil)

		res, err := testExecute(e, "aspects info sub1 asp1", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			"Id            asp1",
			"Name          Agua",
			"Abbreviation  AG",
			"Order         1",
			"Subject       Ambiental",
		})
	})
}

func TestAspectsUpdate(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		opts := structs.AspectUpdateOptions{Name: options.String("Agua potable"), OrderIndex: options.Int(3)}
		updated := fxAspect
		updated.Name = "Agua potable"
		updated.OrderIndex = 3

		i.On("AspectList", "sub1", structs.AspectListOptions{}).Return(structs.Aspects{fxAspect, fxAspect2}, nil)
		i.On("AspectUpdate", "sub1", "asp1", opts).Return(&updated, nil)

		res, err := testExecute(e, "aspects update sub1 asp1 -n 'Agua potable' -o 3", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			"Updating asp1... OK",
			"ID    NAME          ABBREVIATION  ORDER",
			"asp2  Aire          AI            2",
			"asp1  Agua potable  AG            3",
			"page 1 of 1 (2 total)",
		})
	})
}
