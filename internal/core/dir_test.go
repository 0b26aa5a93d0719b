package core

import "testing"

func TestDirRotation(t *testing.T) {
	tests := []struct {
		dir                     Dir
		left, right, turnAround Dir
	}{
		{DirUp, DirLeft, DirRight, DirDown},
		{DirLeft, DirDown, DirUp, DirRight},
		{DirDown, DirRight, DirLeft, DirUp},
		{DirRight, DirUp, DirDown, DirLeft},
		{DirNone, DirNone, DirNone, DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.TurnLeft(); got != tc.left {
				t.Errorf("TurnLeft() = %v, expected %v", got, tc.left)
			}
			if got := tc.dir.TurnRight(); got != tc.right {
				t.Errorf("TurnRight() = %v, expected %v", got, tc.right)
			}
			if got := tc.dir.TurnAround(); got != tc.turnAround {
				t.Errorf("TurnAround() = %v, expected %v", got, tc.turnAround)
			}
		})
	}
}

func TestDirRotationCycles(t *testing.T) {
	for _, d := range Dirs {
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("TurnLeft then TurnRight of %v should be identity", d)
		}
		if d.TurnLeft().TurnLeft().TurnLeft().TurnLeft() != d {
			t.Errorf("four left turns of %v should be identity", d)
		}
		v := d.Vec()
		if v.Add(d.TurnAround().Vec()) != (Vec{}) {
			t.Errorf("%v and its reverse should cancel out", d)
		}
	}
}

func TestDirPerpendicular(t *testing.T) {
	if !DirUp.Perpendicular(DirLeft) {
		t.Error("Up and Left should be perpendicular")
	}
	if DirUp.Perpendicular(DirDown) {
		t.Error("Up and Down should not be perpendicular")
	}
	if DirUp.Perpendicular(DirUp) {
		t.Error("Up and Up should not be perpendicular")
	}
	if DirUp.Perpendicular(DirNone) {
		t.Error("None is never perpendicular")
	}
}

func TestParseDir(t *testing.T) {
	tests := []struct {
		in       string
		expected Dir
		wantErr  bool
	}{
		{"", DirNone, false},
		{"up", DirUp, false},
		{"Left", DirLeft, false},
		{" DOWN ", DirDown, false},
		{"e", DirRight, false},
		{"sideways", DirNone, true},
	}

	for _, tc := range tests {
		got, err := ParseDir(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDir(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDir(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
