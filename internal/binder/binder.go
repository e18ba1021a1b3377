// Package binder implements ParameterBinder: matching a parsed
// stage's arguments and named parameters against a command's declared
// parameter specs.
package binder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arbsh/arbsh/internal/command"
)

// ParamSpec declares one parameter a command understands.
type ParamSpec struct {
	Name                            string // Arabic primary name
	EnglishAlias                    string
	Mandatory                       bool
	IsSwitch                        bool
	IsArray                         bool
	Positional                      bool
	ValueFromPipeline               bool
	ValueFromPipelineByPropertyName bool
}

func (s ParamSpec) aliases() string {
	if s.EnglishAlias == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.EnglishAlias)
}

// BoundValue is one parameter's resolved value after static binding.
type BoundValue struct {
	IsSwitch bool
	Bool     bool
	Arg      command.Argument
	Args     []command.Argument // populated for array parameters
}

// Literal returns the single-value form's literal text.
func (v BoundValue) Literal() string { return v.Arg.Literal }

// BindError is a binding failure that halts the consuming stage.
type BindError struct{ Message string }

func (e *BindError) Error() string { return e.Message }

// Bound is the result of statically binding a stage against a
// command's declared parameters.
type Bound struct {
	Values   map[string]BoundValue
	Warnings []string
}

// Bind runs the static binding algorithm from spec §4.6 step 1-2.
func Bind(specs []ParamSpec, cmd command.ParsedCommand) (*Bound, error) {
	b := &Bound{Values: make(map[string]BoundValue)}
	usedPositional := make([]bool, len(cmd.Arguments))
	matchedNamed := make(map[string]bool)
	cursor := 0

	for _, spec := range specs {
		if bv, ok, err := bindByName(spec, cmd, matchedNamed); err != nil {
			return nil, err
		} else if ok {
			b.Values[spec.Name] = bv
			continue
		}

		if spec.Positional {
			if spec.IsArray {
				var args []command.Argument
				for i := cursor; i < len(cmd.Arguments); i++ {
					if !usedPositional[i] {
						usedPositional[i] = true
						args = append(args, cmd.Arguments[i])
					}
				}
				cursor = len(cmd.Arguments)
				if len(args) > 0 {
					b.Values[spec.Name] = BoundValue{Args: args}
					continue
				}
			} else {
				for cursor < len(cmd.Arguments) && usedPositional[cursor] {
					cursor++
				}
				if cursor < len(cmd.Arguments) {
					usedPositional[cursor] = true
					b.Values[spec.Name] = BoundValue{Arg: cmd.Arguments[cursor]}
					cursor++
					continue
				}
			}
		}

		if spec.Mandatory {
			return nil, &BindError{Message: fmt.Sprintf("missing mandatory parameter %s", spec.aliases())}
		}
	}

	for i, used := range usedPositional {
		if !used && !cmd.Arguments[i].IsTypeLiteral {
			b.Warnings = append(b.Warnings, fmt.Sprintf("unused positional argument %q", cmd.Arguments[i].Literal))
		}
	}

	return b, nil
}

func bindByName(spec ParamSpec, cmd command.ParsedCommand, matched map[string]bool) (BoundValue, bool, error) {
	key, pv, ok := lookupNamed(spec, cmd)
	if !ok {
		return BoundValue{}, false, nil
	}
	matched[key] = true

	if spec.IsSwitch {
		if pv.IsSwitch {
			return BoundValue{IsSwitch: true, Bool: pv.Bool}, true, nil
		}
		switch strings.ToLower(pv.Value.Literal) {
		case "true":
			return BoundValue{IsSwitch: true, Bool: true}, true, nil
		case "false":
			return BoundValue{IsSwitch: true, Bool: false}, true, nil
		default:
			return BoundValue{}, false, &BindError{Message: fmt.Sprintf("switch parameter %s requires a boolean value", spec.aliases())}
		}
	}

	if pv.IsSwitch {
		return BoundValue{}, false, &BindError{Message: fmt.Sprintf("parameter %s requires a value", spec.aliases())}
	}
	return BoundValue{Arg: pv.Value}, true, nil
}

func lookupNamed(spec ParamSpec, cmd command.ParsedCommand) (string, command.ParamValue, bool) {
	if pv, ok := cmd.Parameters[strings.ToLower(spec.Name)]; ok {
		return strings.ToLower(spec.Name), pv, true
	}
	if spec.EnglishAlias != "" {
		if pv, ok := cmd.Parameters[strings.ToLower(spec.EnglishAlias)]; ok {
			return strings.ToLower(spec.EnglishAlias), pv, true
		}
	}
	return "", command.ParamValue{}, false
}

// ConvertString attempts the standard string<->number/bool/identity
// conversions described in spec §4.6.
func ConvertString(s string, target string) (any, error) {
	switch target {
	case "number":
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, nil
		}
		return nil, &BindError{Message: fmt.Sprintf("cannot convert %q to number", s)}
	case "bool":
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		}
		return nil, &BindError{Message: fmt.Sprintf("cannot convert %q to bool", s)}
	default:
		return s, nil
	}
}
