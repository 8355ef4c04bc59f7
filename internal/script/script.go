// Package script parses and runs move scripts such as
//
//	red up, left;
//	blue down;
//	shuffle;
//
// Each statement names a robot followed by one or more directions, or
// re-rolls every robot's position with shuffle.
package script

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/vovakirdan/tui-ricochet/internal/geom"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

// Program is a parsed script with every name resolved.
type Program struct {
	Statements []Statement
}

// Statement is either a shuffle or a sequence of slides for one robot.
type Statement struct {
	Pos     lexer.Position
	Shuffle bool
	Robot   world.RobotID
	Ways    []geom.Way
}

type grammar struct {
	Statements []*statementNode `parser:"@@*"`
}

type statementNode struct {
	Pos     lexer.Position
	Shuffle bool      `parser:"  @'shuffle' ';'"`
	Move    *moveNode `parser:"| @@ ';'"`
}

type moveNode struct {
	Pos   lexer.Position
	Robot string   `parser:"@Ident"`
	Ways  []string `parser:"@Ident (',' @Ident)*"`
}

var parser = participle.MustBuild[grammar]()

// Parse parses a script and resolves every robot and direction name.
func Parse(src string) (*Program, error) {
	return ParseNamed("script", src)
}

// ParseNamed is Parse with a file name used in error positions.
func ParseNamed(name, src string) (*Program, error) {
	tree, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	prog := &Program{Statements: make([]Statement, 0, len(tree.Statements))}
	for _, node := range tree.Statements {
		stmt := Statement{Pos: node.Pos, Shuffle: node.Shuffle}
		if node.Move != nil {
			if err := node.Move.resolve(&stmt); err != nil {
				return nil, err
			}
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (m *moveNode) resolve(stmt *Statement) error {
	id, err := world.ParseRobot(m.Robot)
	if err != nil {
		return fmt.Errorf("script: %s: %w", m.Pos, err)
	}
	stmt.Robot = id
	for _, name := range m.Ways {
		w, err := geom.ParseWay(name)
		if err != nil {
			return fmt.Errorf("script: %s: %w", m.Pos, err)
		}
		stmt.Ways = append(stmt.Ways, w)
	}
	return nil
}

// Steps returns the number of slides the program performs.
func (p *Program) Steps() int {
	n := 0
	for _, stmt := range p.Statements {
		n += len(stmt.Ways)
	}
	return n
}

// Exec runs the program against w, reporting every slide to sink.
// A nil sink is allowed. Execution stops at the first error.
func (p *Program) Exec(w *world.World, sink func(world.Move)) error {
	for i := range p.Statements {
		if err := p.Statements[i].exec(w, sink); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) exec(w *world.World, sink func(world.Move)) error {
	switch {
	case s.Shuffle:
		if err := w.ResetRandPos(); err != nil {
			return fmt.Errorf("script: %s: %w", s.Pos, err)
		}
	default:
		for _, way := range s.Ways {
			move, err := w.MoveRobot(s.Robot, way)
			if err != nil {
				return fmt.Errorf("script: %s: %w", s.Pos, err)
			}
			if sink != nil {
				sink(move)
			}
		}
	}
	return nil
}
