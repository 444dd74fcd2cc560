package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStreamOpened(t *testing.T) {
	before := testutil.ToFloat64(streamClientsActive)

	closeFirst := StreamOpened()
	closeSecond := StreamOpened()
	assert.Equal(t, before+2, testutil.ToFloat64(streamClientsActive))

	closeFirst()
	closeSecond()
	assert.Equal(t, before, testutil.ToFloat64(streamClientsActive))
}

func TestObserveStreamEvent(t *testing.T) {
	before := testutil.ToFloat64(streamEventsTotal)

	ObserveStreamEvent()
	ObserveStreamEvent()

	assert.Equal(t, before+2, testutil.ToFloat64(streamEventsTotal))
}

func TestObserveRequest(t *testing.T) {
	counter := httpRequestsTotal.WithLabelValues("GET", "/api/sensors/latest", "200")
	before := testutil.ToFloat64(counter)

	ObserveRequest("GET", "/api/sensors/latest", 200, 10*time.Millisecond, false)
	ObserveRequest("GET", "/api/sensors/latest", 200, time.Minute, true)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestObserveSimulationRun(t *testing.T) {
	success := simulationRunsTotal.WithLabelValues("success")
	failed := simulationRunsTotal.WithLabelValues("failed")
	beforeSuccess := testutil.ToFloat64(success)
	beforeFailed := testutil.ToFloat64(failed)

	ObserveSimulationRun(true, time.Millisecond)
	ObserveSimulationRun(false, time.Millisecond)

	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailed+1, testutil.ToFloat64(failed))
}

func TestObserveRequest_UnknownMethod(t *testing.T) {
	counter := httpRequestsTotal.WithLabelValues("OTHER", UnmatchedRoute, "404")
	before := testutil.ToFloat64(counter)

	ObserveRequest("PROPFIND", UnmatchedRoute, 404, time.Millisecond, false)
	ObserveRequest("XYZ", UnmatchedRoute, 404, time.Millisecond, false)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestRouteHolder(t *testing.T) {
	ctx, route := WithRouteHolder(context.Background())
	assert.Equal(t, UnmatchedRoute, route())

	SetRoute(ctx, "/api/cron/:type/run")
	assert.Equal(t, "/api/cron/:type/run", route())

	// Contexto sem holder é ignorado
	assert.NotPanics(t, func() { SetRoute(context.Background(), "/healthcheck") })
}
