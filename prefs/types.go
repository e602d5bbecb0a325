// This file is part of Gopherpad.
//
// Gopherpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpad.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/jetsetilly/gopherpad/curated"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
//
// the string returned by String() is the value written to disk. the Set()
// function must accept the same string.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// hooks are shared by all pref types.
type hooks struct {
	pre func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed. An error returned by the callback prevents the update.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// store calls the store function if the pre hook accepts the new value.
func (h *hooks) store(nv Value, store func()) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	store()
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return FormatBool(p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or string. String
// values are interpreted with ParseBool(). An unrecognised string is an error
// and the value is not changed.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		var ok bool
		nv, ok = ParseBool(v)
		if !ok {
			return curated.Errorf("prefs: cannot convert %q to a boolean", v)
		}
	default:
		return curated.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	return p.store(nv, func() { p.value.Store(nv) })
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// Set new value to Int type. New value can be an int or string. String values
// are interpreted with ParseInt(). An invalid string is an error and the value
// is not changed.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var ok bool
		nv, ok = ParseInt(v)
		if !ok {
			return curated.Errorf("prefs: cannot convert %q to an integer", v)
		}
	default:
		return curated.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	return p.store(nv, func() { p.value.Store(nv) })
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}
