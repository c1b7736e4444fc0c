// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "testing"

func TestGenEigenDiagonal(t *testing.T) {
	at := NewTriplet(3, 3, 3)
	at.Put(0, 0, 1.0)
	at.Put(1, 1, 4.0)
	at.Put(2, 2, 9.0)
	a := at.ToCSR()

	bt := NewTriplet(3, 3, 3)
	bt.Put(0, 0, 1.0)
	bt.Put(1, 1, 1.0)
	bt.Put(2, 2, 1.0)
	b := bt.ToCSR()

	res := GenEigen(a, b, 2)
	if len(res.Values) != 2 {
		t.Fatalf("expected 2 eigenvalues, got %d", len(res.Values))
	}
	if diff := res.Values[0] - 1.0; diff > 1e-8 || diff < -1e-8 {
		t.Errorf("smallest eigenvalue = %v, want 1", res.Values[0])
	}
	if diff := res.Values[1] - 4.0; diff > 1e-8 || diff < -1e-8 {
		t.Errorf("second eigenvalue = %v, want 4", res.Values[1])
	}
	for i, r := range res.Resid {
		if r > 1e-6 {
			t.Errorf("residual[%d] = %v, want ~0", i, r)
		}
	}
}
