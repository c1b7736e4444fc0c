// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "testing"

func TestDetIdentity(t *testing.T) {
	for n := 0; n <= 4; n++ {
		a := make([][]float64, n)
		for i := range a {
			a[i] = make([]float64, n)
			a[i][i] = 1.0
		}
		if d := Det(a); d != 1.0 {
			t.Errorf("Det(I%d) = %v, want 1", n, d)
		}
	}
}

func TestInverse3x3(t *testing.T) {
	a := [][]float64{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
	}
	inv, det := Inverse(a)
	if det != 24 {
		t.Fatalf("det = %v, want 24", det)
	}
	want := [][]float64{{0.5, 0, 0}, {0, 1.0 / 3.0, 0}, {0, 0, 0.25}}
	for i := range want {
		for j := range want[i] {
			if diff := inv[i][j] - want[i][j]; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("inv[%d][%d] = %v, want %v", i, j, inv[i][j], want[i][j])
			}
		}
	}
}

func TestInverseSingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on singular matrix")
		}
	}()
	Inverse([][]float64{{1, 1}, {1, 1}})
}
