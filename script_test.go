package uzu

import "testing"

func TestLoadInputScript(t *testing.T) {
	data := []byte(`
steps:
  - {action: click, x: 100, y: 200}
  - {action: wait, frames: 3}
  - {action: press, button: 1, x: 5, y: 6}
`)

	script, err := LoadInputScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if script.Len() != 3 {
		t.Fatalf("expected 3 steps, got %d", script.Len())
	}
	if script.steps[0].Action != "click" || script.steps[0].X != 100 || script.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if script.steps[1].Action != "wait" || script.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if script.steps[2].Button != MouseButtonRight {
		t.Error("step 2 mismatch")
	}
}

func TestLoadInputScriptJSON(t *testing.T) {
	script, err := LoadInputScript([]byte(`{"steps": [{"action": "drag", "fromX": 1, "toX": 9, "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if script.steps[0].FromX != 1 || script.steps[0].ToX != 9 {
		t.Errorf("step = %+v", script.steps[0])
	}
}

func TestLoadInputScriptInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"syntax":  `steps: [`,
		"empty":   `steps: []`,
		"action":  `steps: [{action: dance}]`,
		"button":  `steps: [{action: press, button: 7}]`,
		"nothing": ``,
	} {
		if _, err := LoadInputScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestInputScriptQueue(t *testing.T) {
	script, err := LoadInputScript([]byte(`
steps:
  - {action: click, x: 50, y: 50}
  - {action: wait, frames: 2}
  - {action: drag, fromX: 0, fromY: 0, toX: 30, toY: 0, frames: 4}
  - {action: press, button: 1, x: 1, y: 1}
  - {action: hold, button: 1, x: 2, y: 1, frames: 2}
  - {action: release, button: 1, x: 2, y: 1}
  - {action: touch, id: 3, x: 10, y: 10, frames: 3}
`))
	if err != nil {
		t.Fatal(err)
	}
	src := NewInjectSource()
	script.Queue(src)
	// click 2 + wait 2 + drag 4 + press 1 + hold 2 + release 1 + touch 3
	if src.Pending() != 15 {
		t.Fatalf("pending = %d, want 15", src.Pending())
	}

	tr := NewTouchTracker(2)
	begins := map[int]int{}
	ends := map[int]int{}
	tr.OnTouchBegin(func(ev TouchEvent) { begins[ev.ID]++ })
	tr.OnTouchEnd(func(id int, _ Vec2) { ends[id]++ })
	for src.Pending() > 0 {
		tr.UpdateFrom(src)
	}
	tr.UpdateFrom(src)

	if begins[LeftButtonTouchID] != 2 || ends[LeftButtonTouchID] != 2 {
		t.Errorf("left: begins=%d ends=%d", begins[LeftButtonTouchID], ends[LeftButtonTouchID])
	}
	if begins[RightButtonTouchID] != 1 || ends[RightButtonTouchID] != 1 {
		t.Errorf("right: begins=%d ends=%d", begins[RightButtonTouchID], ends[RightButtonTouchID])
	}
	if begins[3] != 1 || ends[3] != 1 {
		t.Errorf("touch: begins=%d ends=%d", begins[3], ends[3])
	}
}
