// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.
package slicest

import (
	"errors"
	"slices"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Fatalf("unexpected result %v", got)
	}
	if got := Map([]int(nil), strconv.Itoa); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMapXI_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := MapXI([]int{1, 2, 3}, func(i int, v int) (int, error) {
		calls++
		if i == 1 {
			return 0, boom
		}
		return v, nil
	})
	if !errors.Is(err, boom) || calls != 2 {
		t.Fatalf("expected error after two calls, got %v after %d", err, calls)
	}
}
