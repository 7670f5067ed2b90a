package layout

import (
	"strings"

	"github.com/matzehuels/raylayout/pkg/errors"
)

// Op names a layout operation.
type Op string

const (
	OpMoveRight         Op = "moveRight"
	OpMoveLeft          Op = "moveLeft"
	OpMoveUp            Op = "moveUp"
	OpMoveDown          Op = "moveDown"
	OpStretchRight      Op = "stretchRight"
	OpStretchLeft       Op = "stretchLeft"
	OpStretchUp         Op = "stretchUp"
	OpStretchDown       Op = "stretchDown"
	OpCenterXParent     Op = "centerXParent"
	OpCenterYParent     Op = "centerYParent"
	OpStretchToChildren Op = "stretchToChildren"
)

var opFuncs = map[Op]func(Handle) Handle{
	OpMoveRight:         Handle.MoveRight,
	OpMoveLeft:          Handle.MoveLeft,
	OpMoveUp:            Handle.MoveUp,
	OpMoveDown:          Handle.MoveDown,
	OpStretchRight:      Handle.StretchRight,
	OpStretchLeft:       Handle.StretchLeft,
	OpStretchUp:         Handle.StretchUp,
	OpStretchDown:       Handle.StretchDown,
	OpCenterXParent:     Handle.CenterXParent,
	OpCenterYParent:     Handle.CenterYParent,
	OpStretchToChildren: Handle.StretchToChildren,
}

// Ops lists every operation in a stable order.
var Ops = []Op{
	OpMoveRight, OpMoveLeft, OpMoveUp, OpMoveDown,
	OpStretchRight, OpStretchLeft, OpStretchUp, OpStretchDown,
	OpCenterXParent, OpCenterYParent,
	OpStretchToChildren,
}

// ParseOp resolves an operation name. Matching ignores case, so "moveup"
// and "MoveUp" both name OpMoveUp.
func ParseOp(name string) (Op, error) {
	for _, op := range Ops {
		if strings.EqualFold(string(op), strings.TrimSpace(name)) {
			return op, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidOp, "unknown operation %q", name)
}

// ParseOps resolves a list of operation names, failing on the first unknown one.
func ParseOps(names []string) ([]Op, error) {
	ops := make([]Op, 0, len(names))
	for _, name := range names {
		op, err := ParseOp(name)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Apply runs ops in order on h.
func (h Handle) Apply(ops ...Op) Handle {
	for _, op := range ops {
		fn, ok := opFuncs[op]
		if !ok {
			if h.err == nil {
				h.err = errors.New(errors.ErrCodeInvalidOp, "unknown operation %q", op)
			}
			return h
		}
		h = fn(h)
	}
	return h
}
