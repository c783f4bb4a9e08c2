package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMetersZeroForSamePoint(t *testing.T) {
	assert.Zero(t, DistanceMeters(31.7683, 35.2137, 31.7683, 35.2137))
}

func TestDistanceMetersJerusalemTelAviv(t *testing.T) {
	// Great-circle distance between the two city centers is about 54km.
	d := DistanceMeters(31.7683, 35.2137, 32.0853, 34.7818)
	assert.InDelta(t, 54000, d, 2000)
}

func TestDistanceMetersIsSymmetric(t *testing.T) {
	a := DistanceMeters(31.7683, 35.2137, 32.0853, 34.7818)
	b := DistanceMeters(32.0853, 34.7818, 31.7683, 35.2137)
	assert.InDelta(t, a, b, 1e-6)
}
