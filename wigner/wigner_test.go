/*
 * wigner_test.go, part of atomphys.
 *
 *
 * Copyright 2024 The atomphys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package wigner

import (
	"errors"
	"math"
	"sync"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func near(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, 1e-12, 1e-9)
}

func Test3j(Te *testing.T) {
	cases := []struct {
		args [6]float64
		want float64
	}{
		{[6]float64{0, 0, 0, 0, 0, 0}, 1},
		{[6]float64{1, 1, 0, 0, 0, 0}, -math.Sqrt(3) / 3},
		{[6]float64{2, 1, 1, 0, 0, 0}, math.Sqrt(30) / 15},
		{[6]float64{3, 3, 2, 2, -1, -1}, math.Sqrt(7) / 14},
		{[6]float64{10, 6, 6, 0, 0, 0}, -math.Sqrt(73012212) / 96577},
		{[6]float64{10, 6, 6, 10, 0, 0}, 0},
		{[6]float64{4, 3.5, 3.5, 2, 1.5, -3.5}, math.Sqrt(165) / 66},
		{[6]float64{3.5, 3.5, 3, 3.5, -0.5, -3}, -math.Sqrt(66) / 66},
		{[6]float64{3.5, 3.5, 3, 3.5, 0, -3}, 0},
		{[6]float64{4, 4, 4, 4, 0, -4}, math.Sqrt(2002) / 429},
		{[6]float64{4, 4, 4, 4, 0, 3}, 0},
		{[6]float64{4, 4, 9, 4, 0, -4}, 0},
		{[6]float64{4, 9, 4, 4, 0, -4}, 0},
		{[6]float64{9, 4, 4, 4, 0, -4}, 0},
		{[6]float64{4, 4, 4, 5, -2, -3}, 0},
	}
	for _, c := range cases {
		a := c.args
		got, err := Wigner3j(a[0], a[1], a[2], a[3], a[4], a[5])
		if err != nil {
			Te.Fatalf("3j%v: %v", a, err)
		}
		if c.want == 0 && got != 0 {
			Te.Errorf("3j%v = %g, want exactly 0", a, got)
		}
		if !near(got, c.want) {
			Te.Errorf("3j%v = %g, want %g", a, got, c.want)
		}
	}
}

//The second row must add up to zero, for every valid combination.
func Test3jSumRule(Te *testing.T) {
	for j1 := 0.0; j1 <= 2; j1 += 0.5 {
		for j2 := 0.0; j2 <= 2; j2 += 0.5 {
			for j3 := 0.0; j3 <= 2; j3 += 0.5 {
				for m1 := -j1; m1 <= j1; m1++ {
					for m2 := -j2; m2 <= j2; m2++ {
						for m3 := -j3; m3 <= j3; m3++ {
							if m1+m2+m3 == 0 {
								continue
							}
							v, err := Wigner3j(j1, j2, j3, m1, m2, m3)
							if err != nil || v != 0 {
								Te.Fatalf("3j(%g %g %g %g %g %g) = %g, %v; want 0", j1, j2, j3, m1, m2, m3, v, err)
							}
						}
					}
				}
			}
		}
	}
}

//Σ_m1m2 (2j3+1) 3j(j1 j2 j3; m1 m2 m3)^2 = 1 for every allowed m3.
func Test3jOrthogonality(Te *testing.T) {
	j1, j2, j3 := 1.5, 2.0, 2.5
	for m3 := -j3; m3 <= j3; m3++ {
		s := 0.0
		for m1 := -j1; m1 <= j1; m1++ {
			m2 := -m1 - m3
			v, err := Wigner3j(j1, j2, j3, m1, m2, m3)
			if err != nil {
				Te.Fatal(err)
			}
			s += (2*j3 + 1) * v * v
		}
		if !near(s, 1) {
			Te.Errorf("orthogonality sum for m3=%g is %g", m3, s)
		}
	}
}

func Test6j(Te *testing.T) {
	cases := []struct {
		args [6]float64
		want float64
	}{
		{[6]float64{0, 0, 0, 0, 0, 0}, 1},
		{[6]float64{2, 1.5, 1.5, 1, 1.5, 1.5}, 1.0 / 20},
		{[6]float64{3, 2.5, 0.5, 1.5, 2, 1}, math.Sqrt(30) / 30},
		{[6]float64{3.5, 3, 1.5, 3.5, 2, 1.5}, 1.0 / 56},
		{[6]float64{4, 3.5, 1.5, 3.5, 2, 2}, -math.Sqrt(3) / 84},
		{[6]float64{1, 1, 1, 0.5, 0.5, 0.5}, -1.0 / 3},
		//triangle violations
		{[6]float64{1, 1, 3, 1, 1, 1}, 0},
		{[6]float64{1, 1, 1, 1, 1, 3}, 0},
		//triad with half-integer sum
		{[6]float64{1, 1, 0.5, 1, 1, 1}, 0},
	}
	for _, c := range cases {
		a := c.args
		got, err := Wigner6j(a[0], a[1], a[2], a[3], a[4], a[5])
		if err != nil {
			Te.Fatalf("6j%v: %v", a, err)
		}
		if c.want == 0 && got != 0 {
			Te.Errorf("6j%v = %g, want exactly 0", a, got)
		}
		if !near(got, c.want) {
			Te.Errorf("6j%v = %g, want %g", a, got, c.want)
		}
	}
}

//6-j symbols are invariant under column permutations.
func Test6jSymmetry(Te *testing.T) {
	a, err := Wigner6j(2, 1.5, 1.5, 1, 1.5, 1.5)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := Wigner6j(1.5, 2, 1.5, 1.5, 1, 1.5)
	if err != nil {
		Te.Fatal(err)
	}
	c, err := Wigner6j(1.5, 1.5, 2, 1.5, 1.5, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if !near(a, b) || !near(a, c) {
		Te.Errorf("column permutations differ: %g %g %g", a, b, c)
	}
}

func TestInvalid(Te *testing.T) {
	if _, err := Wigner3j(0.3, 1, 1, 0, 0, 0); !errors.Is(err, ErrInvalidQuantumNumber) {
		Te.Errorf("3j with 0.3 gave %v", err)
	}
	if _, err := Wigner3j(1, 1, 1, math.NaN(), 0, 0); !errors.Is(err, ErrInvalidQuantumNumber) {
		Te.Errorf("3j with NaN gave %v", err)
	}
	if _, err := Wigner6j(1, 1, 1, 1, 1, 1.25); !errors.Is(err, ErrInvalidQuantumNumber) {
		Te.Errorf("6j with 1.25 gave %v", err)
	}
	if _, err := Wigner3j(41, 41, 0, 0, 0, 0); !errors.Is(err, ErrOverflow) {
		Te.Errorf("3j with 41 gave %v", err)
	}
	if _, err := Wigner3j(1, 1, 0, -41, 0, 0); !errors.Is(err, ErrOverflow) {
		Te.Errorf("3j with m=-41 gave %v", err)
	}
	if _, err := Wigner6j(100, 100, 100, 100, 100, 100); !errors.Is(err, ErrOverflow) {
		Te.Errorf("6j with 100 gave %v", err)
	}
	var werr *Error
	_, err := Wigner3j(0.3, 1, 1, 0, 0, 0)
	if !errors.As(err, &werr) || !werr.Critical() {
		Te.Errorf("expected a critical *Error, got %v", err)
	}
}

//Memoization is keyed by the exact arguments: a corrupted entry is returned as is.
func TestCache(Te *testing.T) {
	args := [6]float64{5, 5, 0, 0, 0, 0}
	v, err := Wigner3j(5, 5, 0, 0, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if !near(v, -1/math.Sqrt(11)) {
		Te.Errorf("3j(5 5 0 0 0 0) = %g", v)
	}
	cache3j.put(args, 42)
	if got, _ := Wigner3j(5, 5, 0, 0, 0, 0); got != 42 {
		Te.Errorf("cached 3j value not used: %g", got)
	}
	if got, _ := Wigner3j(5, 0, 5, 0, 0, 0); got == 42 {
		Te.Error("cache is not order sensitive")
	}
	cache3j.put(args, v)

	args6 := [6]float64{1, 1, 1, 0.5, 0.5, 0.5}
	w, _ := Wigner6j(1, 1, 1, 0.5, 0.5, 0.5)
	cache6j.put(args6, -7)
	if got, _ := Wigner6j(1, 1, 1, 0.5, 0.5, 0.5); got != -7 {
		Te.Errorf("cached 6j value not used: %g", got)
	}
	cache6j.put(args6, w)
	if n3, n6 := CacheLen(); n3 == 0 || n6 == 0 {
		Te.Errorf("empty caches: %d %d", n3, n6)
	}
}

func TestConcurrent(Te *testing.T) {
	var wg sync.WaitGroup
	res := make([]float64, 16)
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				j := float64(k%7) / 2
				Wigner6j(1, 1, 2, j, j, j+1)
			}
			res[i], _ = Wigner3j(4, 4, 4, 4, 0, -4)
		}(i)
	}
	wg.Wait()
	for _, v := range res {
		if !near(v, math.Sqrt(2002)/429) {
			Te.Errorf("concurrent 3j gave %g", v)
		}
	}
}
