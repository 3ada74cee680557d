// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPsychrometricCoefficient(t *testing.T) {
	gamma := PsychrometricCoefficient(24.0, 101.325)
	assert.InDelta(t, 0.0687202, gamma, 1e-6)
}

func TestActualVaporPressure(t *testing.T) {
	e := ActualVaporPressure(30.0, 24.0, 101.325)
	assert.InDelta(t, 2.572166, e, 1e-5)
}

func TestActualVaporPressureNoDepression(t *testing.T) {
	// Tdb == Twb means saturated air: e equals e_s(Tdb) exactly.
	e := ActualVaporPressure(0.0, 0.0, 101.325)
	assert.Equal(t, SaturationVaporPressure(0.0), e)
}

func TestActualVaporPressureClampedAtSaturation(t *testing.T) {
	// Twb > Tdb is physically invalid; the result still must not exceed
	// saturation at dry-bulb.
	e := ActualVaporPressure(30.0, 35.0, 101.325)
	assert.Equal(t, SaturationVaporPressure(30.0), e)
}

func TestActualVaporPressureClampedAtZero(t *testing.T) {
	// A large depression overshoots below zero before clamping.
	e := ActualVaporPressure(40.0, 0.0, 101.325)
	assert.Equal(t, 0.0, e)
}

func TestActualVaporPressureWithinPhysicalBounds(t *testing.T) {
	for _, pressure := range []float64{60.0, 101.325, 110.0} {
		for dryBulb := -30.0; dryBulb <= 60.0; dryBulb += 2.5 {
			for wetBulb := -30.0; wetBulb <= dryBulb; wetBulb += 2.5 {
				e := ActualVaporPressure(dryBulb, wetBulb, pressure)
				assert.GreaterOrEqual(t, e, 0.0,
					"Tdb=%g Twb=%g P=%g", dryBulb, wetBulb, pressure)
				assert.LessOrEqual(t, e, SaturationVaporPressure(dryBulb),
					"Tdb=%g Twb=%g P=%g", dryBulb, wetBulb, pressure)
			}
		}
	}
}
