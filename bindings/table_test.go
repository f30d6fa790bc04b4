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

package bindings_test

import (
	"testing"

	"github.com/jetsetilly/vinput/bindings"
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/test"
)

func TestParseFirstKey(t *testing.T) {
	test.ExpectEquality(t, bindings.ParseFirstKey("KEY_F2"), keys.F2)
	test.ExpectEquality(t, bindings.ParseFirstKey("KEY_RIGHT,JOY1_XAXIS_POS"), keys.Right)
	test.ExpectEquality(t, bindings.ParseFirstKey("JOY1_BUTTON1,KEY_A+KEY_B"), keys.A)
	test.ExpectEquality(t, bindings.ParseFirstKey("!KEY_X+KEY_P"), keys.X)
	test.ExpectEquality(t, bindings.ParseFirstKey("  \tKEY_Q"), keys.Q)

	// no keyboard token
	test.ExpectEquality(t, bindings.ParseFirstKey("JOY1_BUTTON1,MOUSE_LEFT_BUTTON"), keys.None)
	test.ExpectEquality(t, bindings.ParseFirstKey(""), keys.None)

	// the prefix alone is not a keyboard token
	test.ExpectEquality(t, bindings.ParseFirstKey("KEY_,KEY_W"), keys.W)

	// the first keyboard token decides even if it does not name a key
	test.ExpectEquality(t, bindings.ParseFirstKey("KEY_NOTHING,KEY_W"), keys.None)
}

func TestDefaults(t *testing.T) {
	tbl := bindings.NewTable()
	test.ExpectEquality(t, tbl.Binding(bindings.Coin), keys.Single(keys.Num5))
	test.ExpectEquality(t, tbl.Binding(bindings.Start), keys.Single(keys.Num1))
	test.ExpectEquality(t, tbl.Binding(bindings.Test), keys.Single(keys.F2))
	test.ExpectEquality(t, tbl.Binding(bindings.Throttle), keys.Single(keys.W))
	test.ExpectEquality(t, tbl.Binding(bindings.Brake), keys.Single(keys.X))
	test.ExpectEquality(t, tbl.Binding(bindings.ShiftNeutral), keys.Single(keys.Num6))
	test.ExpectEquality(t, tbl.Binding(bindings.FishingReel), keys.Single(keys.Space))

	// joystick and steering share keys by default so there is no secondary
	test.ExpectEquality(t, tbl.Binding(bindings.JoyLeft), keys.Single(keys.Left))
	test.ExpectEquality(t, tbl.Binding(bindings.SteerRight), keys.Single(keys.Right))

	test.ExpectEquality(t, tbl.Binding(bindings.NumActions), keys.Dual{})
}

func TestApply(t *testing.T) {
	tbl := bindings.NewTable()

	unresolved := tbl.Apply(map[string]string{
		"InputCoin1":        "KEY_C,JOY1_BUTTON9",
		"InputStart1":       "JOY1_BUTTON10",
		"InputSteeringLeft": "KEY_A",
		"InputTestA":        "",
	})

	test.ExpectEquality(t, tbl.Binding(bindings.Coin), keys.Single(keys.Lookup("C")))
	test.ExpectEquality(t, tbl.Binding(bindings.Start), keys.Single(keys.Num1))
	test.ExpectEquality(t, tbl.Binding(bindings.Test), keys.Single(keys.F2))
	test.DemandEquality(t, len(unresolved), 1)
	test.ExpectEquality(t, unresolved[0], "InputStart1")

	// left directions differ and so drive each other
	test.ExpectEquality(t, tbl.Binding(bindings.JoyLeft), keys.Dual{Primary: keys.Left, Secondary: keys.A})
	test.ExpectEquality(t, tbl.Binding(bindings.SteerLeft), keys.Dual{Primary: keys.A, Secondary: keys.Left})
	test.ExpectEquality(t, tbl.Binding(bindings.JoyRight), keys.Single(keys.Right))
}

func TestApplyReplaces(t *testing.T) {
	tbl := bindings.NewTable()
	tbl.Apply(map[string]string{"InputCoin1": "KEY_C"})
	tbl.SetBinding(bindings.Punch, keys.Single(keys.Q))

	// a second configuration without the coin mapping returns coin to the
	// default. nothing is merged with the earlier configuration
	tbl.Apply(map[string]string{"InputStart1": "KEY_2"})
	test.ExpectEquality(t, tbl.Binding(bindings.Coin), keys.Single(keys.Num5))
	test.ExpectEquality(t, tbl.Binding(bindings.Punch), keys.Single(keys.A))
	test.ExpectEquality(t, tbl.Binding(bindings.Start), keys.Single(keys.Lookup("2")))

	// applying again produces the same table
	a := *tbl
	tbl.Apply(map[string]string{"InputStart1": "KEY_2"})
	test.ExpectEquality(t, *tbl, a)
}

func TestActionNames(t *testing.T) {
	a, ok := bindings.ActionFromConfigName("InputGearShift3")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, bindings.Shift3)

	_, ok = bindings.ActionFromConfigName("InputNothing")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, len(bindings.ConfigNames()), int(bindings.NumActions))
	test.ExpectEquality(t, bindings.Coin.String(), "InputCoin1")
}
