package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sensor-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/sensoring"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/streaming"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Sensors(service sensoring.SensorService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sensors/latest",
			Method:  http.MethodGet,
			Handler: GetLatestReading(service),
		},
		{
			Path:    "/api/sensors/history",
			Method:  http.MethodGet,
			Handler: GetReadingHistory(service),
		},
	}
}

func Project(service projecting.MetricsService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/project/metrics",
			Method:  http.MethodGet,
			Handler: GetProjectMetrics(service),
		},
	}
}

func Report(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/report/status",
			Method:  http.MethodPost,
			Handler: GenerateStatusReport(reporter),
		},
	}
}

func Stream(streamer streaming.SensorStreamer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/stream/sensors",
			Method:  http.MethodGet,
			Handler: StreamSensors(streamer),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
