// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"math"
	"testing"
)

func TestHaltonSampleBase2(t *testing.T) {
	// The base-2 Halton sequence is the well-known van der Corput sequence:
	// 1/2, 1/4, 3/4, 1/8, 5/8, ...
	want := []float32{0.5, 0.25, 0.75, 0.125, 0.625}
	for i, w := range want {
		got := haltonSample(uint32(i+1), 2)
		if math.Abs(float64(got-w)) > 1e-6 {
			t.Errorf("haltonSample(%d, 2) = %v, want %v", i+1, got, w)
		}
	}
}

func TestHaltonSampleIsBoundedUnitInterval(t *testing.T) {
	for i := uint32(1); i < 100; i++ {
		v := haltonSample(i, 3)
		if v <= 0 || v >= 1 {
			t.Fatalf("haltonSample(%d, 3) = %v, want a value in (0, 1)", i, v)
		}
	}
}

func TestHaltonJitter2DUsesBases2And3(t *testing.T) {
	x, y := HaltonJitter2D(1)
	wantX, wantY := haltonSample(1, 2), haltonSample(1, 3)
	if x != wantX || y != wantY {
		t.Errorf("HaltonJitter2D(1) = (%v, %v), want (%v, %v)", x, y, wantX, wantY)
	}
}

func TestExternalFeatureEvaluateNoopWhenInactive(t *testing.T) {
	f := &ExternalFeature{Kind: ExternalFeatureUpscaling, Active: false}
	// Evaluate must tolerate a nil CommandList when the feature is inactive,
	// since it returns before touching either argument.
	f.Evaluate(nil, ExternalFeatureInputs{})
}
