// Package edit rewrites the raw text of a single line to toggle its
// completion checkbox or change its priority marker. Callers write the result
// back to the document and re-parse.
package edit

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoPriority is returned when the line carries no !priority marker.
	ErrNoPriority = errors.New("no priority marker found")
	// ErrAlreadyHighest is returned when raising a priority that is already last in the list.
	ErrAlreadyHighest = errors.New("already at highest priority")
	// ErrAlreadyLowest is returned when lowering a priority that is already first in the list.
	ErrAlreadyLowest = errors.New("already at lowest priority")
)

// UnknownPriorityError reports a priority marker absent from the configured list.
type UnknownPriorityError struct {
	Name string
}

func (e *UnknownPriorityError) Error() string {
	return fmt.Sprintf("priority %q is not in the configured priority list", e.Name)
}

// Direction moves a priority along the configured list.
type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// ParseDirection accepts "up"/"increase"/"+" and "down"/"decrease"/"-".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "increase", "+":
		return Up, nil
	case "down", "decrease", "-":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want up or down)", s)
}

var (
	checkboxPattern   = regexp.MustCompile(`\[\s*[xX]?\s*\]`)
	listMarkerPattern = regexp.MustCompile(`^([\s\p{Zs}]*([-*+]|\d+\.)[\s\p{Zs}]*)`)
	priorityPattern   = regexp.MustCompile(`!([A-Za-z0-9_-]+)`)
)

// ToggleComplete flips the first checkbox on the line. A line without a
// checkbox gains a checked one after its list marker, or at the start when
// it has no marker.
func ToggleComplete(line string) string {
	if loc := checkboxPattern.FindStringIndex(line); loc != nil {
		box := line[loc[0]:loc[1]]
		replacement := "[x]"
		if strings.ContainsAny(box, "xX") {
			replacement = "[ ]"
		}
		return line[:loc[0]] + replacement + line[loc[1]:]
	}
	if loc := listMarkerPattern.FindStringIndex(line); loc != nil {
		return line[:loc[1]] + "[x] " + line[loc[1]:]
	}
	return "[x] " + line
}

// Priority returns the name of the first priority marker on the line.
func Priority(line string) (string, bool) {
	m := priorityPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ChangePriority replaces the first priority marker with its neighbour in
// priorities (lowest first) and returns the new line and priority name.
func ChangePriority(line string, dir Direction, priorities []string) (string, string, error) {
	loc := priorityPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return line, "", ErrNoPriority
	}
	current := line[loc[2]:loc[3]]

	i := indexFold(priorities, current)
	if i < 0 {
		return line, "", &UnknownPriorityError{Name: current}
	}

	next := i + int(dir)
	switch {
	case next >= len(priorities):
		return line, "", ErrAlreadyHighest
	case next < 0:
		return line, "", ErrAlreadyLowest
	}

	name := priorities[next]
	return line[:loc[0]] + "!" + name + line[loc[1]:], name, nil
}

// SetPriority appends a priority marker to a line that has none.
func SetPriority(line, name string) string {
	if strings.TrimSpace(line) == "" {
		return "!" + name
	}
	return line + " !" + name
}

func indexFold(list []string, s string) int {
	for i, v := range list {
		if strings.EqualFold(v, s) {
			return i
		}
	}
	return -1
}
