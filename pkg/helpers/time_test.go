package helpers_test

import (
	"testing"
	"time"

	"github.com/lexcomply/admin/pkg/helpers"
	"github.com/stretchr/testify/require"
)

func TestAgo(t *testing.T) {
	require.Equal(t, "", helpers.Ago(time.Time{}))
	require.Equal(t, "2 hours ago", helpers.Ago(time.Now().Add(-2*time.Hour-time.Minute)))
}

func TestDate(t *testing.T) {
	d, err := helpers.Date("2024-03-09")
	require.NoError(t, err)
	require.Equal(t, "2024-03-09", d)

	_, err = helpers.Date("09/03/2024")
	require.EqualError(t, err, `invalid date "09/03/2024", expected YYYY-MM-DD`)

	_, err = helpers.Date("2024-02-30")
	require.Error(t, err)
}
