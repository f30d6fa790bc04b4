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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/vinput/curated"
	"github.com/jetsetilly/vinput/prefs"
	"github.com/jetsetilly/vinput/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.String(), "false")

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, b.Bool())

	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectSuccess(t, b.Bool())
	test.ExpectSuccess(t, b.Set("nonsense"))
	test.ExpectFailure(t, b.Bool())

	err := b.Set(10)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestHooks(t *testing.T) {
	var b prefs.Bool
	var post []bool

	b.SetHookPre(func(v prefs.Value) error {
		if v.(bool) && len(post) > 1 {
			return errors.New("too many")
		}
		return nil
	})
	b.SetHookPost(func(v prefs.Value) error {
		post = append(post, v.(bool))
		return nil
	})

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, b.Set(false))
	test.DemandEquality(t, len(post), 2)
	test.ExpectSuccess(t, post[0])
	test.ExpectFailure(t, post[1])

	// rejected by the pre hook. value is unchanged and post hook not called
	test.ExpectFailure(t, b.Set(true))
	test.ExpectFailure(t, b.Bool())
	test.ExpectEquality(t, len(post), 2)
}

func TestStringAndInt(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("4GEAR"))
	test.ExpectEquality(t, s.String(), "4GEAR")
	test.ExpectSuccess(t, s.Reset())
	test.ExpectEquality(t, s.String(), "")

	var i prefs.Int
	test.ExpectSuccess(t, i.Set("  42"))
	test.ExpectEquality(t, i.Get(), prefs.Value(42))
	test.ExpectFailure(t, i.Set("forty two"))
	test.ExpectFailure(t, i.Set(1.5))
	test.ExpectEquality(t, i.String(), "42")
}

func TestSet(t *testing.T) {
	var b prefs.Bool
	var s prefs.String

	set := prefs.NewSet()
	set.Add("test.bool", &b)
	set.Add("test.string", &s)

	keys := set.Keys()
	test.DemandEquality(t, len(keys), 2)
	test.ExpectEquality(t, keys[0], "test.bool")

	test.ExpectSuccess(t, set.Apply(map[string]string{
		"Test.Bool":   "true",
		"test.string": "foo",
		"other":       "ignored",
	}))
	test.ExpectSuccess(t, b.Bool())
	test.ExpectEquality(t, s.String(), "foo")
	test.ExpectEquality(t, set.String(), "test.bool::true\ntest.string::foo\n")

	err := set.SetValue("test.missing", true)
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))
	_, err = set.Get("test.missing")
	test.ExpectFailure(t, err)

	v, err := set.Get("test.string")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, prefs.Value("foo"))

	test.ExpectSuccess(t, set.Reset())
	test.ExpectFailure(t, b.Bool())
}

func TestSetFromCommandLine(t *testing.T) {
	var b prefs.Bool
	set := prefs.NewSet()
	set.Add("test.bool", &b)

	prefs.PushCommandLineStack("test.bool::true; test.other::1")
	test.ExpectSuccess(t, set.SetFromCommandLine())
	test.ExpectSuccess(t, b.Bool())

	// the unused entry remains in the group
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "test.other::1")
}
