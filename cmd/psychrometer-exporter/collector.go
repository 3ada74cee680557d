// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"psychrometer/psychro"
)

// psychroCollector polls one sensor on every scrape and derives the
// psychrometric quantities from the corrected temperature and humidity
// readings. Sensors without a pressure channel fall back to the configured
// default barometric pressure for the pressure-dependent quantities.
type psychroCollector struct {
	Sensor           Sensor
	Up               *prometheus.Desc
	TemperatureC     *prometheus.Desc
	HumidityRH       *prometheus.Desc
	PressureKPa      *prometheus.Desc
	VaporPressureKPa *prometheus.Desc
	DewPointC        *prometheus.Desc
	HumidityRatio    *prometheus.Desc
	SpecificHumidity *prometheus.Desc
	AbsoluteHumidity *prometheus.Desc
	RawTemperatureC  *prometheus.Desc
	RawHumidityRH    *prometheus.Desc
	TempOffset       float64
	HumidityOffset   float64
	PressureOffset   float64
	DefaultPressure  float64
}

func NewPsychroCollector(s Sensor, flags SensorFlags, defaultPressure float64) *psychroCollector {
	labels := s.Labels()
	return &psychroCollector{
		Sensor: s,
		Up: prometheus.NewDesc(
			"sensor_up",
			"Value is 1 if reading sensor data was successful, 0 otherwise.",
			nil,
			labels,
		),
		TemperatureC: prometheus.NewDesc(
			"sensor_temperature_celsius",
			"Dry-bulb temperature in Celsius",
			nil,
			labels,
		),
		HumidityRH: prometheus.NewDesc(
			"sensor_humidity_percent",
			"Relative humidity in percent",
			nil,
			labels,
		),
		PressureKPa: prometheus.NewDesc(
			"sensor_pressure_kilopascals",
			"Barometric pressure in kilopascal",
			nil,
			labels,
		),
		VaporPressureKPa: prometheus.NewDesc(
			"sensor_vapor_pressure_kilopascals",
			"Partial pressure of water vapor in kilopascal",
			nil,
			labels,
		),
		DewPointC: prometheus.NewDesc(
			"sensor_dewpoint_celsius",
			"Dew-point temperature in Celsius",
			nil,
			labels,
		),
		HumidityRatio: prometheus.NewDesc(
			"sensor_humidity_ratio",
			"Humidity ratio in kg water / kg dry air",
			nil,
			labels,
		),
		SpecificHumidity: prometheus.NewDesc(
			"sensor_specific_humidity",
			"Specific humidity in kg water / kg moist air",
			nil,
			labels,
		),
		AbsoluteHumidity: prometheus.NewDesc(
			"sensor_humidity_grams_per_cubic_meter",
			"Absolute humidity in gram / cubic meter",
			nil,
			labels,
		),
		RawTemperatureC: prometheus.NewDesc(
			"sensor_raw_temperature_celsius",
			"Uncorrected temperature in Celsius",
			nil,
			labels,
		),
		RawHumidityRH: prometheus.NewDesc(
			"sensor_raw_humidity_percent",
			"Uncorrected relative humidity in percent",
			nil,
			labels,
		),
		TempOffset:      flags.TempOffset,
		HumidityOffset:  flags.HumidityOffset,
		PressureOffset:  flags.PressureOffset,
		DefaultPressure: defaultPressure,
	}
}

func (collector *psychroCollector) Collect(ch chan<- prometheus.Metric) {
	readings, err := collector.Sensor.Poll()
	if err != nil {
		logrus.Print(err)
		ch <- prometheus.MustNewConstMetric(collector.Up, prometheus.GaugeValue, 0.0)
	} else {
		ch <- prometheus.MustNewConstMetric(collector.Up, prometheus.GaugeValue, 1)
	}

	pressure := collector.DefaultPressure
	if readings.pressure != nil {
		pressure = *readings.pressure + collector.PressureOffset
		ch <- prometheus.MustNewConstMetric(collector.PressureKPa, prometheus.GaugeValue, pressure)
	}
	if readings.temperature != nil {
		ch <- prometheus.MustNewConstMetric(
			collector.TemperatureC,
			prometheus.GaugeValue,
			*readings.temperature+collector.TempOffset,
		)
		ch <- prometheus.MustNewConstMetric(
			collector.RawTemperatureC,
			prometheus.GaugeValue,
			*readings.temperature,
		)
	}
	if readings.humidity != nil {
		ch <- prometheus.MustNewConstMetric(
			collector.HumidityRH,
			prometheus.GaugeValue,
			*readings.humidity+collector.HumidityOffset,
		)
		ch <- prometheus.MustNewConstMetric(
			collector.RawHumidityRH,
			prometheus.GaugeValue,
			*readings.humidity,
		)
	}
	if readings.temperature == nil || readings.humidity == nil {
		return
	}

	temperature := *readings.temperature + collector.TempOffset
	relativeHumidity := *readings.humidity + collector.HumidityOffset

	// The sensor measures relative humidity directly, so the actual vapor
	// pressure follows from the RH definition instead of the wet-bulb
	// relation.
	vaporPressure := relativeHumidity / 100.0 * psychro.SaturationVaporPressure(temperature)
	ch <- prometheus.MustNewConstMetric(
		collector.VaporPressureKPa,
		prometheus.GaugeValue,
		round64(vaporPressure, 4),
	)
	ch <- prometheus.MustNewConstMetric(
		collector.AbsoluteHumidity,
		prometheus.GaugeValue,
		round64(psychro.AbsoluteHumidity(relativeHumidity, temperature), 2),
	)

	omega := psychro.HumidityRatio(vaporPressure, pressure)
	ch <- prometheus.MustNewConstMetric(
		collector.HumidityRatio,
		prometheus.GaugeValue,
		round64(omega, 6),
	)
	ch <- prometheus.MustNewConstMetric(
		collector.SpecificHumidity,
		prometheus.GaugeValue,
		round64(psychro.SpecificHumidity(omega), 6),
	)

	// Completely dry air has no dew point.
	dewPoint := psychro.DewPoint(vaporPressure)
	if !math.IsNaN(dewPoint) {
		ch <- prometheus.MustNewConstMetric(
			collector.DewPointC,
			prometheus.GaugeValue,
			round64(dewPoint, 2),
		)
	}
}

func (collector *psychroCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.Up
	ch <- collector.TemperatureC
	ch <- collector.HumidityRH
	ch <- collector.PressureKPa
	ch <- collector.VaporPressureKPa
	ch <- collector.DewPointC
	ch <- collector.HumidityRatio
	ch <- collector.SpecificHumidity
	ch <- collector.AbsoluteHumidity
	ch <- collector.RawTemperatureC
	ch <- collector.RawHumidityRH
}

func round64(value float64, precision int) float64 {
	return math.Round(value*math.Pow10(precision)) / math.Pow10(precision)
}
