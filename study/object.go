package study

import (
	"fmt"
	"strings"

	"github.com/sghaida/poo/holder"
)

// DefaultText is the text every Object starts with.
const DefaultText = "This is a default text attribute"

// Object is a small record with per-instance state (text, items, custom value)
// and a counter shared by every Object built against it.
type Object struct {
	text    string
	items   []any
	custom  string
	id      int
	counter *holder.Counter
}

// NewObject builds an Object and increments counter exactly once.
func NewObject(counter *holder.Counter, customValue string, id int) (*Object, error) {
	if counter == nil {
		return nil, holder.ErrNilCounter
	}
	o := &Object{
		text: DefaultText,
		// each instance gets its own backing array
		items:   []any{10, 20, 30},
		custom:  customValue,
		id:      id,
		counter: counter,
	}
	counter.Increment()
	return o, nil
}

// Greeting returns a short greeting naming the object's identifier.
func (o *Object) Greeting() string {
	return fmt.Sprintf("Hello from object with ID %d!", o.id)
}

// Identifier returns the identifier given at construction.
func (o *Object) Identifier() int { return o.id }

// CustomValue returns the custom value given at construction.
func (o *Object) CustomValue() string { return o.custom }

// Text returns the current text attribute.
func (o *Object) Text() string { return o.text }

// SetText replaces the text attribute of this instance only.
func (o *Object) SetText(s string) { o.text = s }

// AddItem appends item to this instance's list.
func (o *Object) AddItem(item any) { o.items = append(o.items, item) }

// Items returns a copy of the item list.
func (o *Object) Items() []any {
	out := make([]any, len(o.items))
	copy(out, o.items)
	return out
}

// Instances returns how many objects have been built against the shared counter.
func (o *Object) Instances() int { return o.counter.Load() }

// Info describes every attribute of the object, one per line.
func (o *Object) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Instance Info (ID: %d):\n", o.id)
	fmt.Fprintf(&b, "  Custom Value: %s\n", o.custom)
	fmt.Fprintf(&b, "  Text Attribute: %s\n", o.text)
	fmt.Fprintf(&b, "  List Attribute: %v", o.items)
	return b.String()
}

// String implements fmt.Stringer.
func (o *Object) String() string {
	return fmt.Sprintf("<Object | ID: %d, Custom Value: '%s'>", o.id, o.custom)
}
