// Package command parses the line-oriented road network language.
//
// One line holds one command, fields separated by ';':
//
//	addRoad;city1;city2;length;year
//	repairRoad;city1;city2;year
//	removeRoad;city1;city2
//	newRoute;id;city1;city2
//	extendRoute;id;city
//	removeRoute;id
//	getRouteDescription;id
//	id;city1;length1;year1;city2;...;cityN
//
// The last form states a route exactly. Parse checks only the shape of a
// line: field counts and numeric syntax. City names and value ranges are
// left to roadmap.Map, which owns those rules.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Separator splits the fields of a line.
const Separator = ";"

var (
	// ErrEmpty indicates a line with no command.
	ErrEmpty = errors.New("command: empty line")

	// ErrUnknownCommand indicates a first field that names no command and is not a route number.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrFieldCount indicates the wrong number of fields for the command.
	ErrFieldCount = errors.New("command: wrong field count")

	// ErrBadNumber indicates a numeric field that is malformed or out of range.
	ErrBadNumber = errors.New("command: bad number")
)

// Command is one parsed line.
type Command interface {
	// Name returns the command keyword, or "exactRoute" for the bare-number form.
	Name() string
}

type (
	// AddRoad creates a road and any missing endpoint.
	AddRoad struct {
		City1, City2 string
		Length       uint32
		Year         int32
	}

	// RepairRoad sets the year of an existing road.
	RepairRoad struct {
		City1, City2 string
		Year         int32
	}

	// RemoveRoad deletes a road, rerouting the routes through it.
	RemoveRoad struct {
		City1, City2 string
	}

	// NewRoute creates a route over the best path between two cities.
	NewRoute struct {
		ID           uint32
		City1, City2 string
	}

	// ExtendRoute extends a route to City.
	ExtendRoute struct {
		ID   uint32
		City string
	}

	// RemoveRoute deletes a route.
	RemoveRoute struct {
		ID uint32
	}

	// GetRouteDescription asks for the textual form of a route.
	GetRouteDescription struct {
		ID uint32
	}

	// ExactRoute states a route city by city. Lengths[i] and Years[i]
	// describe the road from Cities[i] to Cities[i+1].
	ExactRoute struct {
		ID      uint32
		Cities  []string
		Lengths []uint32
		Years   []int32
	}
)

func (AddRoad) Name() string             { return "addRoad" }
func (RepairRoad) Name() string          { return "repairRoad" }
func (RemoveRoad) Name() string          { return "removeRoad" }
func (NewRoute) Name() string            { return "newRoute" }
func (ExtendRoute) Name() string         { return "extendRoute" }
func (RemoveRoute) Name() string         { return "removeRoute" }
func (GetRouteDescription) Name() string { return "getRouteDescription" }
func (ExactRoute) Name() string          { return "exactRoute" }

// Skip reports whether line carries no command: it is empty or a comment.
func Skip(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// parser turns the fields of one keyword into a Command.
type parser struct {
	fields int
	parse  func(f []string) (Command, error)
}

var parsers = map[string]parser{
	"addRoad": {5, func(f []string) (Command, error) {
		length, err := Uint(f[3])
		if err != nil {
			return nil, err
		}
		year, err := Int(f[4])
		if err != nil {
			return nil, err
		}
		return AddRoad{City1: f[1], City2: f[2], Length: length, Year: year}, nil
	}},
	"repairRoad": {4, func(f []string) (Command, error) {
		year, err := Int(f[3])
		if err != nil {
			return nil, err
		}
		return RepairRoad{City1: f[1], City2: f[2], Year: year}, nil
	}},
	"removeRoad": {3, func(f []string) (Command, error) {
		return RemoveRoad{City1: f[1], City2: f[2]}, nil
	}},
	"newRoute": {4, func(f []string) (Command, error) {
		id, err := Uint(f[1])
		if err != nil {
			return nil, err
		}
		return NewRoute{ID: id, City1: f[2], City2: f[3]}, nil
	}},
	"extendRoute": {3, func(f []string) (Command, error) {
		id, err := Uint(f[1])
		if err != nil {
			return nil, err
		}
		return ExtendRoute{ID: id, City: f[2]}, nil
	}},
	"removeRoute": {2, func(f []string) (Command, error) {
		id, err := Uint(f[1])
		if err != nil {
			return nil, err
		}
		return RemoveRoute{ID: id}, nil
	}},
	"getRouteDescription": {2, func(f []string) (Command, error) {
		id, err := Uint(f[1])
		if err != nil {
			return nil, err
		}
		return GetRouteDescription{ID: id}, nil
	}},
}

// Parse parses one line without its terminating newline.
func Parse(line string) (Command, error) {
	if line == "" {
		return nil, ErrEmpty
	}
	fields := strings.Split(line, Separator)
	if p, ok := parsers[fields[0]]; ok {
		if len(fields) != p.fields {
			return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrFieldCount, fields[0], p.fields-1, len(fields)-1)
		}
		return p.parse(fields)
	}
	id, err := Uint(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	return parseExact(id, fields)
}

// parseExact reads id;city;length;year;...;city.
func parseExact(id uint32, fields []string) (Command, error) {
	if len(fields) < 5 || len(fields)%3 != 2 {
		return nil, fmt.Errorf("%w: exact route with %d fields", ErrFieldCount, len(fields))
	}
	segments := lo.Chunk(fields[1:len(fields)-1], 3)
	cmd := ExactRoute{
		ID:      id,
		Cities:  make([]string, 0, len(segments)+1),
		Lengths: make([]uint32, 0, len(segments)),
		Years:   make([]int32, 0, len(segments)),
	}
	for _, seg := range segments {
		length, err := Uint(seg[1])
		if err != nil {
			return nil, err
		}
		year, err := Int(seg[2])
		if err != nil {
			return nil, err
		}
		cmd.Cities = append(cmd.Cities, seg[0])
		cmd.Lengths = append(cmd.Lengths, length)
		cmd.Years = append(cmd.Years, year)
	}
	cmd.Cities = append(cmd.Cities, fields[len(fields)-1])

	return cmd, nil
}

// Uint parses a non-empty run of decimal digits no larger than 2^32-1.
// Signs and spaces are rejected.
func Uint(s string) (uint32, error) {
	if !digits(s) {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}

	return uint32(v), nil
}

// Int parses an optional '-' followed by decimal digits, within int32.
// A leading '+' is rejected.
func Int(s string) (int32, error) {
	if !digits(strings.TrimPrefix(s, "-")) {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}

	return int32(v), nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
