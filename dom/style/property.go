package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/npillmayer/tyse/core/dimen"
)

// --- Property values --------------------------------------------------

// Value is a raw value for a CSS property. For example, with
//
//     display: block
//
// a property value of Keyword("block") is set. Values form a small closed
// set of variants, exhaustively matched where they are interpreted. The
// cascade itself never inspects a value; it just moves them into property
// maps.
type Value interface {
	fmt.Stringer
	cssValue() // closed set; variants live in this package only
}

// Keyword is an identifier value, e.g. "block", "auto", "inherit".
type Keyword string

func (k Keyword) String() string {
	return string(k)
}

func (k Keyword) cssValue() {}

// Dimen is a fixed length value, held in device units.
type Dimen struct {
	D dimen.DU
}

func (d Dimen) String() string {
	return d.D.String()
}

func (d Dimen) cssValue() {}

// PX is the CSS reference pixel, 1/96 of an inch.
const PX = dimen.PT * 3 / 4

// Color is a color value, e.g. "#ffcc00" or "black".
type Color struct {
	C color.Color
}

func (c Color) String() string {
	return ColorString(c.C)
}

func (c Color) cssValue() {}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Value
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds the specified CSS properties for one element.
// nil is a legal (empty) property map.
//
// Property maps are produced fresh per element by the cascade. They do not
// inherit from parent elements, nor from user-agent defaults: an element
// matching no rule at all has an empty map.
type PropertyMap struct {
	m map[string]Value // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, kv := range pmap.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	s += "}"
	return s
}

// Size returns the number of properties set.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Property returns a style property value, together with an indicator
// wether it has been set for this map. No cascading is performed.
func (pmap *PropertyMap) Property(key string) (Value, bool) {
	if pmap == nil || pmap.m == nil {
		return nil, false
	}
	v, ok := pmap.m[key]
	return v, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pmap *PropertyMap) Set(key string, v Value) {
	if pmap == nil || v == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]Value)
	}
	pmap.m[key] = v
}

// Add a property's value. Does not overwrite an existing value, i.e., does
// nothing if a value is already set.
func (pmap *PropertyMap) Add(key string, v Value) {
	if pmap == nil || v == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]Value)
	}
	if _, exists := pmap.m[key]; !exists {
		pmap.m[key] = v
	}
}

// Properties returns all properties of a map, sorted by property name.
// Sorting makes output and iteration deterministic; the map itself carries
// no meaningful order.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	r := make([]KeyValue, 0, len(pmap.m))
	for k, v := range pmap.m {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}
