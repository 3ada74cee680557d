// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"net/http"

	logger "github.com/d2r2/go-logger"
	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	listenAddress := pflag.String(
		"web.listen-address", ":9776", "Address on which to expose metrics and web interface.",
	)
	metricsPath := pflag.String(
		"web.telemetry-path", "/metrics", "Path under which to expose metrics.",
	)
	defaultPressure := pflag.Float64(
		"default-pressure", 101.325,
		"Barometric pressure in kPa assumed for sensors without a pressure channel.",
	)
	pflag.Parse()
	sensors, err := parseSensors(pflag.Args())
	if err != nil {
		logrus.Fatal(err)
	}

	logger.ChangePackageLogLevel("bsbmp", logger.InfoLevel)
	logger.ChangePackageLogLevel("i2c", logger.InfoLevel)
	logger.ChangePackageLogLevel("sht3x", logger.InfoLevel)

	for _, flags := range sensors {
		sensor, err := flags.NewSensor()
		if err != nil {
			logrus.Fatal(err)
		}
		collector := NewPsychroCollector(sensor, flags, *defaultPressure)
		prometheus.MustRegister(collector)
	}
	prometheus.MustRegister(versioncollector.NewCollector("psychrometer_exporter"))

	logrus.Infof(
		"Serving Prometheus psychrometer exporter on %s%s - for example http://localhost%s%s",
		*listenAddress,
		*metricsPath,
		*listenAddress,
		*metricsPath,
	)
	http.Handle(*metricsPath, promhttp.Handler())
	logrus.Fatal(http.ListenAndServe(*listenAddress, nil))
}
