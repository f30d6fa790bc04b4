// This file is part of vinput.
//
// vinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vinput.  If not, see <https://www.gnu.org/licenses/>.

package bindings

import "github.com/jetsetilly/vinput/keys"

// Action is a named logical action that can be bound to keys.
type Action int

// List of valid Action values.
const (
	Coin Action = iota
	Start
	Service
	Test

	JoyUp
	JoyDown
	JoyLeft
	JoyRight
	SteerLeft
	SteerRight

	Throttle
	Brake

	ShiftUp
	ShiftDown
	Shift1
	Shift2
	Shift3
	Shift4
	ShiftNeutral

	Punch
	Kick
	Guard
	Escape

	SpikeShift
	SpikeBeat
	SpikeCharge
	SpikeJump

	FishingCast
	FishingSelect
	FishingReel
	FishingTension

	MagicalPedal1
	MagicalPedal2

	SkiPollLeft
	SkiPollRight
	SkiSelect1
	SkiSelect2

	NumActions
)

// definition of an action. the configuration name and the default key if the
// configuration is missing or does not resolve to a key.
type definition struct {
	name string
	def  keys.Key
}

var definitions = [NumActions]definition{
	Coin:    {"InputCoin1", keys.Num5},
	Start:   {"InputStart1", keys.Num1},
	Service: {"InputServiceA", keys.F1},
	Test:    {"InputTestA", keys.F2},

	JoyUp:      {"InputJoyUp", keys.Up},
	JoyDown:    {"InputJoyDown", keys.Down},
	JoyLeft:    {"InputJoyLeft", keys.Left},
	JoyRight:   {"InputJoyRight", keys.Right},
	SteerLeft:  {"InputSteeringLeft", keys.Left},
	SteerRight: {"InputSteeringRight", keys.Right},

	Throttle: {"InputAccelerator", keys.W},
	Brake:    {"InputBrake", keys.X},

	ShiftUp:      {"InputGearShiftUp", keys.I},
	ShiftDown:    {"InputGearShiftDown", keys.K},
	Shift1:       {"InputGearShift1", keys.Num7},
	Shift2:       {"InputGearShift2", keys.Num8},
	Shift3:       {"InputGearShift3", keys.Num9},
	Shift4:       {"InputGearShift4", keys.Num0},
	ShiftNeutral: {"InputGearShiftN", keys.Num6},

	Punch:  {"InputPunch", keys.A},
	Kick:   {"InputKick", keys.S},
	Guard:  {"InputGuard", keys.D},
	Escape: {"InputEscape", keys.F},

	SpikeShift:  {"InputShift", keys.A},
	SpikeBeat:   {"InputBeat", keys.S},
	SpikeCharge: {"InputCharge", keys.D},
	SpikeJump:   {"InputJump", keys.F},

	FishingCast:    {"InputFishingCast", keys.Z},
	FishingSelect:  {"InputFishingSelect", keys.X},
	FishingReel:    {"InputFishingReel", keys.Space},
	FishingTension: {"InputFishingTension", keys.T},

	MagicalPedal1: {"InputMagicalPedal1", keys.A},
	MagicalPedal2: {"InputMagicalPedal2", keys.S},

	SkiPollLeft:  {"InputSkiPollLeft", keys.A},
	SkiPollRight: {"InputSkiPollRight", keys.S},
	SkiSelect1:   {"InputSkiSelect1", keys.Q},
	SkiSelect2:   {"InputSkiSelect2", keys.W},
}

// ConfigName returns the name used for the action in configuration files.
func (a Action) ConfigName() string {
	if a < 0 || a >= NumActions {
		return ""
	}
	return definitions[a].name
}

// Default returns the key used when the configuration doesn't specify one.
func (a Action) Default() keys.Key {
	if a < 0 || a >= NumActions {
		return keys.None
	}
	return definitions[a].def
}

func (a Action) String() string {
	return a.ConfigName()
}

// ActionFromConfigName returns the Action for the configuration name. The
// second return value is false if the name is not recognised.
func ActionFromConfigName(name string) (Action, bool) {
	for a := Action(0); a < NumActions; a++ {
		if definitions[a].name == name {
			return a, true
		}
	}
	return NumActions, false
}

// ConfigNames returns the configuration names of every action in Action order.
func ConfigNames() []string {
	n := make([]string, NumActions)
	for a := range definitions {
		n[a] = definitions[a].name
	}
	return n
}
