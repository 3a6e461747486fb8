package domain

import "strings"

// ActionType - решение, которое AI принимает за ход
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionWait
	ActionMove
	ActionAttack
)

var actionStringToCmd = map[string]ActionType{
	"WAIT":   ActionWait,
	"MOVE":   ActionMove,
	"ATTACK": ActionAttack,
}

var actionCmdToString = map[ActionType]string{
	ActionWait:   "WAIT",
	ActionMove:   "MOVE",
	ActionAttack: "ATTACK",
}

// ParseAction конвертирует строку в ActionType
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для логов)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
