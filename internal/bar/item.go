package bar

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mj1618/deskbar/internal/platform"
	"github.com/mj1618/deskbar/internal/solutions"
)

// Item is a configured, user-invocable bar element bound to one action, or
// to one action per button for multi-button items.
type Item struct {
	ID      string
	Label   string
	Image   string
	Action  *Action      // single-button items
	Buttons []*ButtonInfo // multi-button items, ordered by key
}

// ButtonInfo is one button of a multi-button item.
type ButtonInfo struct {
	Key    string // the declaring map key
	Label  string
	ID     string // defaults to Key
	Value  string // defaults to ID
	Action *Action
}

// Bar is the decoded configuration tree.
type Bar struct {
	Items []*Item
}

type rawButton struct {
	Label  string  `json:"label"`
	ID     string  `json:"id"`
	Value  *string `json:"value"`
	Action *Action `json:"action"`
}

type rawItem struct {
	ID      string               `json:"id"`
	Kind    string               `json:"kind"`
	Label   string               `json:"label"`
	Image   string               `json:"image"`
	Action  *Action              `json:"action"`
	Buttons map[string]rawButton `json:"buttons"`
}

// UnmarshalJSON decodes an item, applying the button defaulting rules:
// a button's id defaults to its declaring map key, and its value defaults
// to its id.
func (it *Item) UnmarshalJSON(b []byte) error {
	var raw rawItem
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.ID == "" {
		return fmt.Errorf("item: missing id")
	}

	item := Item{
		ID:    raw.ID,
		Label: raw.Label,
		Image: raw.Image,
	}

	switch raw.Kind {
	case "", "button":
		if raw.Action == nil {
			return fmt.Errorf("item %s: missing action", raw.ID)
		}
		item.Action = raw.Action

	case "multi":
		if len(raw.Buttons) == 0 {
			return fmt.Errorf("item %s: multi-button item has no buttons", raw.ID)
		}
		keys := make([]string, 0, len(raw.Buttons))
		for key := range raw.Buttons {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			rb := raw.Buttons[key]
			if rb.Action == nil {
				return fmt.Errorf("item %s: button %s: missing action", raw.ID, key)
			}
			button := &ButtonInfo{
				Key:    key,
				Label:  rb.Label,
				ID:     rb.ID,
				Action: rb.Action,
			}
			if button.ID == "" {
				button.ID = key
			}
			if rb.Value != nil {
				button.Value = *rb.Value
			} else {
				button.Value = button.ID
			}
			item.Buttons = append(item.Buttons, button)
		}

	default:
		return fmt.Errorf("item %s: unknown kind %q (expected button or multi)", raw.ID, raw.Kind)
	}

	*it = item
	return nil
}

// Bind resolves every action in the tree against the platform and the
// shared solutions catalogue.
func (b *Bar) Bind(p *platform.Provider, sols *solutions.Solutions) {
	for _, item := range b.Items {
		if item.Action != nil {
			item.Action.Bind(p, sols)
		}
		for _, button := range item.Buttons {
			button.Action.Bind(p, sols)
		}
	}
}

// Find returns the item with the given id.
func (b *Bar) Find(id string) (*Item, error) {
	for _, item := range b.Items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, fmt.Errorf("no bar item with id %q", id)
}

// Button returns the button with the given id on a multi-button item.
func (it *Item) Button(id string) (*ButtonInfo, error) {
	for _, button := range it.Buttons {
		if button.ID == id {
			return button, nil
		}
	}
	return nil, fmt.Errorf("item %s: no button with id %q", it.ID, id)
}

// Invoke dispatches the item's action. This is the single recovery
// boundary: a panic anywhere below surfaces as an error, never a crash.
// For single-button items source passes through to the action; for
// multi-button items source selects the button by id and the button's
// value becomes the action's source.
func (it *Item) Invoke(p *platform.Provider, source string, toggleState *bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("item %s: invocation panicked: %v", it.ID, r)
		}
	}()

	if it.Action != nil {
		return it.Action.Invoke(p, Invocation{Source: source, ToggleState: toggleState})
	}

	if source == "" {
		return fmt.Errorf("item %s: a button id is required for multi-button items", it.ID)
	}
	button, err := it.Button(source)
	if err != nil {
		return err
	}
	return button.Action.Invoke(p, Invocation{Source: button.Value, ToggleState: toggleState})
}
