// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	bsbmp "github.com/d2r2/go-bsbmp"
	i2c "github.com/d2r2/go-i2c"
	sht3x "github.com/d2r2/go-sht3x"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"psychrometer/psychro"
)

// Readings holds one poll of a sensor. Fields are nil when the sensor has no
// channel for them: SHT3x sensors have no pressure channel, BMP180/BMP280
// have no humidity channel.
type Readings struct {
	temperature *float64 // °C
	humidity    *float64 // percent relative humidity
	pressure    *float64 // kPa
}

type Sensor interface {
	Poll() (Readings, error)
	Labels() prometheus.Labels
}

type BMPSensor struct {
	Address uint8
	Bus     int
	Model   string
	bmp     *bsbmp.BMP
	mutex   sync.Mutex
}

func NewBMPSensor(
	address uint8,
	bus int,
	model string,
	sensorType bsbmp.SensorType,
) (*BMPSensor, error) {
	logrus.Infof("New BMP sensor: %s,address=0x%x,bus=%d", model, address, bus)
	i2c, err := i2c.NewI2C(address, bus)
	if err != nil {
		return nil, err
	}
	bmp, err := bsbmp.NewBMP(sensorType, i2c)
	if err != nil {
		return nil, err
	}
	return &BMPSensor{
		Address: address,
		Bus:     bus,
		Model:   model,
		bmp:     bmp,
	}, nil
}

func (s BMPSensor) Labels() prometheus.Labels {
	return prometheus.Labels{
		"address": fmt.Sprintf("0x%x", s.Address),
		"bus":     fmt.Sprintf("%d", s.Bus),
		"model":   s.Model,
	}
}

func (s BMPSensor) Poll() (Readings, error) {
	var readings Readings

	// TODO: read temperature, humidity, and pressure in one go for BME280
	s.mutex.Lock()
	temp, err := s.bmp.ReadTemperatureC(bsbmp.ACCURACY_STANDARD)
	s.mutex.Unlock()
	if err != nil {
		return readings, err
	}
	rounded_temp := round64(float64(temp), 2)
	readings.temperature = &rounded_temp

	s.mutex.Lock()
	supported, rh, err := s.bmp.ReadHumidityRH(bsbmp.ACCURACY_STANDARD)
	s.mutex.Unlock()
	if err != nil {
		return readings, err
	}
	if supported {
		rounded_rh := round64(float64(rh), 2)
		readings.humidity = &rounded_rh
	}

	s.mutex.Lock()
	pressurePa, err := s.bmp.ReadPressurePa(bsbmp.ACCURACY_STANDARD)
	s.mutex.Unlock()
	if err != nil {
		return readings, err
	}
	pressureKPa := round64(psychro.PaToKPa(float64(pressurePa)), 3)
	readings.pressure = &pressureKPa

	return readings, nil
}

type SHT3xSensor struct {
	Address           uint8
	Bus               int
	Model             string
	I2C               *i2c.I2C
	SHT3X             sht3x.SHT3X
	mutex             sync.Mutex
	repeatability     sht3x.MeasureRepeatability
	repeatability_str string
}

func NewSHT3xSensor(
	address uint8,
	bus int,
	model string,
	repeatability sht3x.MeasureRepeatability,
	repeatability_str string,
) (*SHT3xSensor, error) {
	logrus.Infof(
		"New SHT3x sensor: %s,address=0x%x,bus=%d,repeatability=%s",
		model,
		address,
		bus,
		repeatability_str,
	)
	i2c, err := i2c.NewI2C(address, bus)
	if err != nil {
		return nil, err
	}
	return &SHT3xSensor{
		Address:           address,
		Bus:               bus,
		Model:             model,
		I2C:               i2c,
		SHT3X:             *sht3x.NewSHT3X(),
		repeatability:     repeatability,
		repeatability_str: repeatability_str,
	}, nil
}

func (s SHT3xSensor) Labels() prometheus.Labels {
	return prometheus.Labels{
		"address":       fmt.Sprintf("0x%x", s.Address),
		"bus":           fmt.Sprintf("%d", s.Bus),
		"model":         s.Model,
		"repeatability": s.repeatability_str,
	}
}

func (s SHT3xSensor) Poll() (Readings, error) {
	var readings Readings

	s.mutex.Lock()
	temp, rh, err := s.SHT3X.ReadTemperatureAndRelativeHumidity(s.I2C, s.repeatability)
	s.mutex.Unlock()
	if err != nil {
		return readings, err
	}

	rounded_temp := round64(float64(temp), 2)
	rounded_rh := round64(float64(rh), 2)
	readings.temperature = &rounded_temp
	readings.humidity = &rounded_rh
	return readings, nil
}

type SensorFlags struct {
	Model          string
	Address        *uint8
	Bus            *int
	Repeatability  string
	TempOffset     float64
	HumidityOffset float64
	PressureOffset float64
}

func parseSensorFlags(sensor string) (SensorFlags, error) {
	var flags SensorFlags
	fields := strings.Split(sensor, ",")
	flags.Model = fields[0]
	for _, field := range fields[1:] {
		key_value := strings.SplitN(field, "=", 2)
		var value string
		if len(key_value) == 2 {
			value = key_value[1]
		}
		switch key_value[0] {
		case "address":
			if address8, err := strconv.ParseUint(value, 0, 8); err == nil {
				address := uint8(address8)
				flags.Address = &address
			} else {
				return flags,
					fmt.Errorf("Specified address '%s' is not an unsigned integer: %s", value, err)
			}
		case "bus":
			if bus32, err := strconv.ParseInt(value, 0, 32); err == nil {
				bus := int(bus32)
				flags.Bus = &bus
			} else {
				return flags, fmt.Errorf("Specified bus '%s' is not an integer: %s", value, err)
			}
		case "repeatability":
			flags.Repeatability = value
		case "temp_offset":
			var err error
			flags.TempOffset, err = strconv.ParseFloat(value, 64)
			if err != nil {
				return flags, fmt.Errorf("Failed to parse temperature offset '%s': %s", value, err)
			}
		case "humidity_offset":
			var err error
			flags.HumidityOffset, err = strconv.ParseFloat(value, 64)
			if err != nil {
				return flags, fmt.Errorf("Failed to parse humidity offset '%s': %s", value, err)
			}
		case "pressure_offset":
			var err error
			flags.PressureOffset, err = strconv.ParseFloat(value, 64)
			if err != nil {
				return flags, fmt.Errorf("Failed to parse pressure offset '%s': %s", value, err)
			}
		default:
			return flags, fmt.Errorf("Unknown sensor option '%s'.", key_value[0])
		}
	}
	return flags, nil
}

func (s SensorFlags) NewBMPSensor(sensorType bsbmp.SensorType) (*BMPSensor, error) {
	// Defaults
	if s.Address == nil {
		address := uint8(0x76)
		s.Address = &address
	}
	if s.Bus == nil {
		bus := 0
		s.Bus = &bus
	}

	return NewBMPSensor(*s.Address, *s.Bus, s.Model, sensorType)
}

func (s SensorFlags) NewSHT3xSensor() (*SHT3xSensor, error) {
	// Defaults
	if s.Address == nil {
		address := uint8(0x45)
		s.Address = &address
	}
	if s.Bus == nil {
		bus := 0
		s.Bus = &bus
	}
	if s.Repeatability == "" {
		s.Repeatability = "high"
	}

	var repeatability sht3x.MeasureRepeatability
	switch s.Repeatability {
	case "low":
		repeatability = sht3x.RepeatabilityLow
	case "medium":
		repeatability = sht3x.RepeatabilityMedium
	case "high":
		repeatability = sht3x.RepeatabilityHigh
	default:
		return nil, fmt.Errorf("Unknown repeatability: %s", s.Repeatability)
	}

	return NewSHT3xSensor(*s.Address, *s.Bus, s.Model, repeatability, s.Repeatability)
}

func (s SensorFlags) NewSensor() (Sensor, error) {
	switch s.Model {
	case "BME280":
		return s.NewBMPSensor(bsbmp.BME280)
	case "BMP180":
		return s.NewBMPSensor(bsbmp.BMP180)
	case "BMP280":
		return s.NewBMPSensor(bsbmp.BMP280)
	case "BMP388":
		return s.NewBMPSensor(bsbmp.BMP388)
	case "SHT30", "SHT31", "SHT35":
		return s.NewSHT3xSensor()
	default:
		return nil, fmt.Errorf("Invalid/Unsupported sensor model '%s'!", s.Model)
	}
}

func (s SensorFlags) String() string {
	var b strings.Builder
	b.WriteString(s.Model)
	if s.Address != nil {
		fmt.Fprintf(&b, ",address=0x%x", *s.Address)
	}
	if s.Bus != nil {
		fmt.Fprintf(&b, ",bus=%d", *s.Bus)
	}
	if s.Repeatability != "" {
		fmt.Fprintf(&b, ",repeatability=%s", s.Repeatability)
	}
	if s.TempOffset != 0.0 {
		fmt.Fprintf(&b, ",temp_offset=%g", s.TempOffset)
	}
	if s.HumidityOffset != 0.0 {
		fmt.Fprintf(&b, ",humidity_offset=%g", s.HumidityOffset)
	}
	if s.PressureOffset != 0.0 {
		fmt.Fprintf(&b, ",pressure_offset=%g", s.PressureOffset)
	}
	return b.String()
}

func parseSensors(args []string) ([]SensorFlags, error) {
	sensors := make([]SensorFlags, len(args))

	for i, arg := range args {
		sensor, err := parseSensorFlags(arg)
		if err != nil {
			return nil, fmt.Errorf("sensor %d '%s': %w", i+1, arg, err)
		}
		sensors[i] = sensor
	}

	return sensors, nil
}
