package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	ticks := testutil.ToFloat64(ticksTotal)
	IncTick()
	IncTick()
	assert.Equal(t, ticks+2, testutil.ToFloat64(ticksTotal))

	denied := testutil.ToFloat64(resolveFailuresTotal.WithLabelValues("access_denied"))
	IncResolveFailure("access_denied")
	assert.Equal(t, denied+1, testutil.ToFloat64(resolveFailuresTotal.WithLabelValues("access_denied")))

	SetSnapshotRows(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(lastSnapshotRows))
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)

	IncTickFailure()
	IncConnection()
	SetSnapshotRows(3)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 4)

	err = testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP netsentry_last_snapshot_rows Rows rendered by the most recent completed tick.
# TYPE netsentry_last_snapshot_rows gauge
netsentry_last_snapshot_rows 3
`), "netsentry_last_snapshot_rows")
	assert.NoError(t, err)
}
