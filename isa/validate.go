package isa

import (
	"fmt"
	"strings"

	"asm68k/ast"
)

// Validate checks a requested size and operand list against the operation's
// legal configurations. It returns a diagnostic on mismatch and never mutates
// its inputs. A request with no explicit size matches configurations that
// accept word, the default operation size.
//
// Exactly one configuration may survive both filters; more than one means the
// static table is ambiguous, which is a bug, not a user error.
func (op *Operation) Validate(size ast.Size, operands []ast.Operand) error {
	var sized []Configuration
	for _, cfg := range op.Configs {
		if cfg.acceptsSize(size) {
			sized = append(sized, cfg)
		}
	}
	if len(sized) == 0 {
		return fmt.Errorf("%s does not support size %s; supported sizes: %s",
			op.Code, sizeName(size), op.supportedSizes())
	}

	var matched []Configuration
	for _, cfg := range sized {
		if cfg.acceptsOperands(operands) {
			matched = append(matched, cfg)
		}
	}
	if len(matched) == 0 {
		return fmt.Errorf("%s does not accept operands (%s); legal combinations: %s",
			op.Code, operandTypes(operands), combinations(sized))
	}
	if len(matched) > 1 {
		panic(fmt.Sprintf("isa: ambiguous configuration table for %s", op.Code))
	}
	return nil
}

func (cfg *Configuration) acceptsSize(size ast.Size) bool {
	for _, s := range cfg.Sizes {
		if s == size {
			return true
		}
		if size == ast.SizeUnsized && s == ast.SizeWord {
			return true
		}
	}
	return false
}

func (cfg *Configuration) acceptsOperands(operands []ast.Operand) bool {
	if len(cfg.Operands) != len(operands) {
		return false
	}
	for i, accepted := range cfg.Operands {
		if !containsType(accepted, operands[i].Type()) {
			return false
		}
	}
	return true
}

func containsType(set []ast.OperandType, t ast.OperandType) bool {
	for _, a := range set {
		if a == t {
			return true
		}
	}
	return false
}

func sizeName(s ast.Size) string {
	if s == ast.SizeUnsized {
		return "(none)"
	}
	return s.String()
}

// supportedSizes renders the union of all configurations' size sets.
func (op *Operation) supportedSizes() string {
	seen := make(map[ast.Size]bool)
	var names []string
	for _, cfg := range op.Configs {
		for _, s := range cfg.Sizes {
			if !seen[s] {
				seen[s] = true
				names = append(names, sizeName(s))
			}
		}
	}
	return strings.Join(names, ", ")
}

func operandTypes(operands []ast.Operand) string {
	if len(operands) == 0 {
		return "none"
	}
	names := make([]string, len(operands))
	for i, o := range operands {
		names[i] = o.Type().String()
	}
	return strings.Join(names, ", ")
}

// combinations renders each configuration's accepted operand-type sets.
func combinations(cfgs []Configuration) string {
	var out []string
	for _, cfg := range cfgs {
		if len(cfg.Operands) == 0 {
			out = append(out, "(no operands)")
			continue
		}
		sets := make([]string, len(cfg.Operands))
		for i, set := range cfg.Operands {
			names := make([]string, len(set))
			for j, t := range set {
				names[j] = t.String()
			}
			sets[i] = strings.Join(names, "|")
		}
		out = append(out, "("+strings.Join(sets, ", ")+")")
	}
	return strings.Join(out, " or ")
}
