package core

import "testing"

func TestInputFrameControls(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Controls
	}{
		{"idle", nil, Controls{}},
		{"up", []Action{ActionUp}, Controls{RowDelta: -1}},
		{"down right", []Action{ActionDown, ActionRight}, Controls{RowDelta: 1, ColDelta: 1}},
		{"left fire", []Action{ActionLeft, ActionFire}, Controls{ColDelta: -1, Fire: true}},
		{"opposites cancel", []Action{ActionUp, ActionDown, ActionLeft, ActionRight}, Controls{}},
		{"quit is not a control", []Action{ActionQuit}, Controls{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Controls(); got != tc.expected {
				t.Errorf("Controls() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Set(ActionUp)
	f.Clear()

	if f.Has(ActionFire) || f.Has(ActionUp) {
		t.Error("Clear should drop all actions")
	}
	if f.Controls() != (Controls{}) {
		t.Error("cleared frame should produce idle controls")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestControlsDelta(t *testing.T) {
	c := Controls{RowDelta: -1, ColDelta: 1}
	d := c.Delta(2)
	if d.Row != -2 || d.Col != 2 {
		t.Errorf("Delta(2) = %+v, expected {-2 2}", d)
	}
}
