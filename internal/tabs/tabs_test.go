package tabs

import "testing"

func activeCount(c *Controller) int {
	n := 0
	for _, t := range c.Tabs() {
		if c.IsActive(t.ID) {
			n++
		}
	}
	return n
}

func TestController_FirstTabActiveByDefault(t *testing.T) {
	c := NewController(Default())
	if c.Active().ID != Career {
		t.Errorf("Active() = %s, want %s", c.Active().ID, Career)
	}
	if n := activeCount(c); n != 1 {
		t.Errorf("%d tabs active, want 1", n)
	}
}

func TestController_Activate(t *testing.T) {
	tests := []struct {
		name string
		ids  []ID
		want ID
	}{
		{"known tab", []ID{Compare}, Compare},
		{"unknown tab is a no-op", []ID{Browse, "nope"}, Browse},
		{"reactivate same tab", []ID{SkillGap, SkillGap}, SkillGap},
		{"last wins", []ID{Recommend, Browse, Career}, Career},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(Default())
			for _, id := range tt.ids {
				c.Activate(id)
				if n := activeCount(c); n != 1 {
					t.Fatalf("after Activate(%s): %d tabs active, want 1", id, n)
				}
			}
			if got := c.Active().ID; got != tt.want {
				t.Errorf("Active() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestController_NextPrevWrap(t *testing.T) {
	c := NewController(Default())

	c.Prev()
	if c.Active().ID != Browse {
		t.Errorf("Prev() from first = %s, want %s", c.Active().ID, Browse)
	}
	c.Next()
	if c.Active().ID != Career {
		t.Errorf("Next() from last = %s, want %s", c.Active().ID, Career)
	}
}

func TestController_ActivateTrigger(t *testing.T) {
	c := NewController(Default())

	if !c.ActivateTrigger("f4") || c.Active().ID != Compare {
		t.Errorf("ActivateTrigger(f4) -> %s", c.Active().ID)
	}
	if c.ActivateTrigger("f9") || c.Active().ID != Compare {
		t.Errorf("unknown trigger changed the active tab to %s", c.Active().ID)
	}
}

func TestController_TabsIsACopy(t *testing.T) {
	c := NewController(Default())
	tabs := c.Tabs()
	tabs[0].ID = "mutated"

	if c.Tabs()[0].ID != Career {
		t.Error("Tabs() exposed internal state")
	}
}
