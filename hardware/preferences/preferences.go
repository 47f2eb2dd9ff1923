// This file is part of GopherZ8.
//
// GopherZ8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherZ8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherZ8.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences contains the preferences that affect the emulated Z8.
// Values are initialised with SetDefaults() and then overridden by any
// values on the command line stack (see the prefs package).
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherz8/curated"
	"github.com/jetsetilly/gopherz8/prefs"
)

// Model of the Z8 being emulated. The model affects the value of P01M after
// a reset.
const (
	ModelZ8601 = "Z8601"
	ModelZ8681 = "Z8681"
	ModelZ8682 = "Z8682"
)

// Preference keys as used on the command line.
const (
	KeyRegInitZero     = "z8.regInitZero"
	KeyCyclesPerSecond = "z8.cyclesPerSecond"
	KeyMaxGPR          = "z8.maxGPR"
	KeyModel           = "z8.model"
)

// InvalidPreference is returned when a preference value is out of range.
const InvalidPreference = "preferences: %s: %v"

// Preferences for the Z8 hardware.
type Preferences struct {
	// general purpose registers are set to zero on power-on. if false the
	// registers are initialised with random values
	RegInitZero prefs.Bool

	// target speed of the emulation. zero means unlimited
	CyclesPerSecond prefs.Int

	// the highest numbered general purpose register. registers above this
	// number are unmapped
	MaxGPR prefs.Int

	// the emulated model
	Model prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.MaxGPR.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < 0x04 || n > 0xef {
			return curated.Errorf(InvalidPreference, KeyMaxGPR, "must be between 0x04 and 0xef")
		}
		return nil
	})

	p.CyclesPerSecond.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidPreference, KeyCyclesPerSecond, "cannot be negative")
		}
		return nil
	})

	p.Model.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case ModelZ8601, ModelZ8681, ModelZ8682:
			return nil
		}
		return curated.Errorf(InvalidPreference, KeyModel, v)
	})

	p.SetDefaults()

	for key, pref := range p.keys() {
		if err := prefs.ApplyCommandLine(key, pref); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Preferences) keys() map[string]prefs.Pref {
	return map[string]prefs.Pref{
		KeyRegInitZero:     &p.RegInitZero,
		KeyCyclesPerSecond: &p.CyclesPerSecond,
		KeyMaxGPR:          &p.MaxGPR,
		KeyModel:           &p.Model,
	}
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.RegInitZero.Set(true)
	_ = p.CyclesPerSecond.Set(0)
	_ = p.MaxGPR.Set(0xef)
	_ = p.Model.Set(ModelZ8601)
}

// P01MReset returns the value of the P01M register after a reset, for the
// selected model.
func (p *Preferences) P01MReset() uint8 {
	switch strings.ToUpper(p.Model.String()) {
	case ModelZ8681:
		return 0x75
	case ModelZ8682:
		return 0x96
	}
	return 0x6d
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s::%v; %s::%v; %s::%#02x; %s::%v",
		KeyRegInitZero, p.RegInitZero.String(),
		KeyCyclesPerSecond, p.CyclesPerSecond.String(),
		KeyMaxGPR, p.MaxGPR.Get(),
		KeyModel, p.Model.String(),
	)
}
