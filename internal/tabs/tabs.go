// Package tabs tracks which of a fixed set of tabs is active.
package tabs

// ID identifies a tab
type ID string

// The tabs of the career guide, in display order
const (
	Career    ID = "career"
	Recommend ID = "recommend"
	SkillGap  ID = "gap"
	Compare   ID = "compare"
	Browse    ID = "browse"
)

// Tab is one entry of the tab bar. Trigger is the key that activates it.
type Tab struct {
	ID      ID
	Title   string
	Trigger string
}

// Default returns the career guide's tabs
func Default() []Tab {
	return []Tab{
		{ID: Career, Title: "Career Guidance", Trigger: "f1"},
		{ID: Recommend, Title: "Find Careers", Trigger: "f2"},
		{ID: SkillGap, Title: "Skill Gap", Trigger: "f3"},
		{ID: Compare, Title: "Compare", Trigger: "f4"},
		{ID: Browse, Title: "Browse", Trigger: "f5"},
	}
}

// Controller holds exactly one active tab out of a set fixed at creation
type Controller struct {
	tabs   []Tab
	active int
}

// NewController activates the first tab. It panics on an empty set since
// the one-active-tab invariant cannot hold.
func NewController(tabs []Tab) *Controller {
	if len(tabs) == 0 {
		panic("tabs: controller needs at least one tab")
	}
	owned := make([]Tab, len(tabs))
	copy(owned, tabs)
	return &Controller{tabs: owned}
}

// Activate makes id the only active tab. Unknown ids are ignored.
func (c *Controller) Activate(id ID) {
	if i := c.index(id); i >= 0 {
		c.active = i
	}
}

// ActivateTrigger activates the tab bound to trigger and reports whether one was
func (c *Controller) ActivateTrigger(trigger string) bool {
	for i, t := range c.tabs {
		if t.Trigger == trigger {
			c.active = i
			return true
		}
	}
	return false
}

// Active returns the active tab
func (c *Controller) Active() Tab {
	return c.tabs[c.active]
}

// IsActive reports whether id is the active tab
func (c *Controller) IsActive(id ID) bool {
	return c.tabs[c.active].ID == id
}

// Next activates the following tab, wrapping around
func (c *Controller) Next() {
	c.active = (c.active + 1) % len(c.tabs)
}

// Prev activates the preceding tab, wrapping around
func (c *Controller) Prev() {
	c.active = (c.active - 1 + len(c.tabs)) % len(c.tabs)
}

// Tabs returns a copy of the tab set in display order
func (c *Controller) Tabs() []Tab {
	out := make([]Tab, len(c.tabs))
	copy(out, c.tabs)
	return out
}

func (c *Controller) index(id ID) int {
	for i, t := range c.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
