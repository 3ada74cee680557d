// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDewPoint(t *testing.T) {
	dewPoint := DewPoint(2.572166)
	assert.InDelta(t, 21.548, dewPoint, 0.01)
}

func TestDewPointRoundTrip(t *testing.T) {
	// Inverting the Buck equation must recover the temperature the vapor
	// pressure was computed from.
	for temp := -30.0; temp <= 60.0; temp += 0.5 {
		dewPoint := DewPoint(SaturationVaporPressure(temp))
		assert.InDelta(t, temp, dewPoint, 0.01, "round trip at %g °C", temp)
	}
}

func TestDewPointNoMoisture(t *testing.T) {
	assert.True(t, math.IsNaN(DewPoint(0.0)))
	assert.True(t, math.IsNaN(DewPoint(-1.0)))
}

func TestDewPointDeterministic(t *testing.T) {
	first := DewPoint(1.2345)
	second := DewPoint(1.2345)
	assert.Equal(t, first, second)
}
