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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/logger"
	"github.com/jetsetilly/vinput/macro"
	"github.com/jetsetilly/vinput/modalflag"
	"github.com/jetsetilly/vinput/userinput"
)

func replay(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Each argument is a macro script. Scripts run without any controllers.")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	scripts := md.RemainingArgs()
	if len(scripts) == 0 {
		return errors.New("at least one macro script is required")
	}

	clk := &keys.ManualClock{}
	sys := userinput.NewSystem(clk, nil)

	var failed int
	for _, s := range scripts {
		// each script gets a fresh log so that a failure shows only the log of
		// the failing script
		logger.Clear()

		mcr, err := macro.NewMacro(s)
		if err == nil {
			err = mcr.Run(sys, clk)
		}
		if err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", s, err)
			logger.Write(os.Stdout)
			continue
		}
		fmt.Printf("ok   %s\n", mcr.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(scripts))
	}
	return nil
}
