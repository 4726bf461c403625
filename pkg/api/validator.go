package api

import (
	"errors"
	"fmt"
	"math"
)

// Validate проверяет команду до передачи в движок. Некорректная команда
// отбрасывается транспортом с предупреждением, симуляцию не трогает.
func (c ClientCommand) Validate() error {
	switch c.Type {
	case CmdInput:
		if math.IsNaN(c.MouseDelta) || math.IsInf(c.MouseDelta, 0) {
			return errors.New("mouseDelta must be finite")
		}
		// Защита от бешеной дельты (сломанный pointer-lock на клиенте).
		if math.Abs(c.MouseDelta) > 10000 {
			return errors.New("mouseDelta out of sane range")
		}
		return nil
	case CmdWeapon:
		if c.Slot < 1 || c.Slot > 3 {
			return fmt.Errorf("weapon slot %d out of range 1..3", c.Slot)
		}
		return nil
	case CmdFire, CmdPause, CmdReset:
		return nil
	default:
		return fmt.Errorf("unknown command type %q", c.Type)
	}
}
