package emit

import (
	"fmt"
	"strconv"
	"strings"

	"pycc/internal/types"
)

// CppProfile — C++-подобный диалект: текст и контейнеры отображаются в
// нативные управляемые типы (string, vector, unordered_map), длина
// берётся у самого значения, спутниковые переменные не синтезируются.
type CppProfile struct{}

func (CppProfile) Name() string { return "cpp" }

func (p CppProfile) TypeName(t *types.Type) string {
	if t == nil {
		return "auto"
	}
	switch t.Kind {
	case types.KindInt:
		return "int"
	case types.KindFloat:
		return "double"
	case types.KindBool:
		return "bool"
	case types.KindText:
		return "string"
	case types.KindChar:
		return "char"
	case types.KindArray:
		return "vector<" + p.TypeName(t.Elem) + ">"
	case types.KindMap:
		return "unordered_map<" + p.TypeName(t.Key) + ", " + p.TypeName(t.Value) + ">"
	case types.KindStruct:
		if t.Name != "" {
			return t.Name
		}
		return "auto"
	case types.KindVoid:
		return "void"
	default:
		return "auto"
	}
}

func (CppProfile) BoolLit(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func (CppProfile) NullLit() string { return "nullptr" }

func (CppProfile) StringLit(decoded string) string {
	return strconv.Quote(decoded)
}

func (CppProfile) TextDecl(name, value string) string {
	return fmt.Sprintf("string %s = %s;", name, value)
}

func (CppProfile) TextAssign(name, value string) string {
	return fmt.Sprintf("%s = %s;", name, value)
}

func (p CppProfile) ArrayDecl(elem *types.Type, name string, elems []string) []string {
	return []string{
		fmt.Sprintf("%s %s = {%s};", p.TypeName(types.MakeArray(elem)), name, strings.Join(elems, ", ")),
	}
}

func (p CppProfile) ArrayLit(elem *types.Type, elems []string) string {
	return fmt.Sprintf("%s{%s}", p.TypeName(types.MakeArray(elem)), strings.Join(elems, ", "))
}

func (p CppProfile) DictDecl(key, value *types.Type, name string, keys, values []string) []string {
	return []string{
		fmt.Sprintf("%s %s = %s;",
			p.TypeName(types.MakeMap(key, value)), name, p.DictLit(key, value, keys, values)),
	}
}

func (p CppProfile) DictLit(key, value *types.Type, keys, values []string) string {
	pairs := make([]string, len(keys))
	for i := range keys {
		pairs[i] = fmt.Sprintf("{%s, %s}", keys[i], values[i])
	}
	return fmt.Sprintf("%s{%s}", p.TypeName(types.MakeMap(key, value)), strings.Join(pairs, ", "))
}

func (CppProfile) HasCompanionSize() bool { return false }

func (CppProfile) SizeName(base string) string { return base + "_size" }

func (CppProfile) Length(name string, t *types.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	switch t.Kind {
	case types.KindText:
		return name + ".length()", true
	case types.KindArray, types.KindMap:
		return name + ".size()", true
	}
	return "", false
}

func (CppProfile) LengthFallback(expr string) string {
	return fmt.Sprintf("sizeof(%s) / sizeof(%s[0])", expr, expr)
}

func (CppProfile) TextCompare(left, op, right string) string {
	return fmt.Sprintf("(%s %s %s)", left, op, right)
}

func (CppProfile) TextConcat(left, right string) string {
	return fmt.Sprintf("%s + %s", left, right)
}

func (CppProfile) PromoteForConcat(expr string, k types.Kind) (string, bool) {
	switch k {
	case types.KindText, types.KindChar:
		// string + char работает нативно
		return expr, true
	default:
		return fmt.Sprintf("to_string(%s)", expr), false
	}
}

func (CppProfile) TextSlice(recv, low, high string) string {
	return fmt.Sprintf("%s.substr(%s, %s - %s)", recv, low, high, low)
}

func (p CppProfile) ArraySlice(recv string, elem *types.Type, low, high, step string) string {
	return fmt.Sprintf("%s(%s.begin() + %s, %s.begin() + %s)",
		p.TypeName(types.MakeArray(elem)), recv, low, recv, high)
}

func (CppProfile) TextMethod(recv, method string, args []string) (string, bool) {
	switch method {
	case "find":
		return fmt.Sprintf("%s.find(%s)", recv, strings.Join(args, ", ")), true
	case "startswith":
		if len(args) == 1 {
			return fmt.Sprintf("%s.rfind(%s, 0) == 0", recv, args[0]), true
		}
	case "lower", "upper", "strip":
		all := append([]string{recv}, args...)
		return fmt.Sprintf("str_%s(%s)", method, strings.Join(all, ", ")), true
	}
	return "", false
}

func (CppProfile) ArrayMethod(recv, method string, args []string) (string, bool) {
	switch method {
	case "append":
		return fmt.Sprintf("%s.push_back(%s)", recv, strings.Join(args, ", ")), true
	case "pop":
		if len(args) == 0 {
			return fmt.Sprintf("%s.pop_back()", recv), true
		}
	case "remove":
		if len(args) == 1 {
			return fmt.Sprintf("%s.erase(find(%s.begin(), %s.end(), %s))",
				recv, recv, recv, args[0]), true
		}
	case "insert":
		if len(args) == 2 {
			return fmt.Sprintf("%s.insert(%s.begin() + %s, %s)", recv, recv, args[0], args[1]), true
		}
	}
	return "", false
}

func (CppProfile) Print(args []PrintArg, newline bool) string {
	if len(args) == 0 {
		if newline {
			return "cout << endl;"
		}
		return `cout << "";`
	}
	parts := make([]string, 0, len(args)+1)
	for _, a := range args {
		parts = append(parts, "cout << "+a.Text)
	}
	if newline {
		parts = append(parts, "cout << endl")
	}
	return strings.Join(parts, "; ") + ";"
}

func (CppProfile) FString(segs []Segment) string {
	var parts []string
	onlyLit := true
	for _, s := range segs {
		if s.Expr == "" {
			parts = append(parts, strconv.Quote(s.Lit))
			continue
		}
		onlyLit = false
		switch s.Kind {
		case types.KindText:
			parts = append(parts, s.Expr)
		case types.KindChar:
			parts = append(parts, fmt.Sprintf("string(1, %s)", s.Expr))
		default:
			parts = append(parts, fmt.Sprintf("to_string(%s)", s.Expr))
		}
	}
	if len(parts) == 0 {
		return `string("")`
	}
	if onlyLit && len(parts) == 1 {
		return "string(" + parts[0] + ")"
	}
	return strings.Join(parts, " + ")
}

func (CppProfile) ArrayFor(target, iter string, elem *types.Type) (string, string) {
	return fmt.Sprintf("for (const auto& %s : %s)", target, iter), ""
}

func (CppProfile) TextFor(target, iter string) (string, string) {
	return fmt.Sprintf("for (const auto& %s : %s)", target, iter), ""
}

func (p CppProfile) Class(name string, members []Field, methods []Method) []string {
	lines := []string{fmt.Sprintf("class %s {", name)}
	lines = append(lines, "public:")
	if len(members) > 0 {
		ctorArgs := make([]string, len(members))
		ctorInit := make([]string, len(members))
		for i, m := range members {
			ctorArgs[i] = fmt.Sprintf("const %s& %s", p.TypeName(m.Type), m.Name)
			ctorInit[i] = fmt.Sprintf("%s(%s)", m.Name, m.Name)
		}
		lines = append(lines, fmt.Sprintf("    %s(%s) : %s {}",
			name, strings.Join(ctorArgs, ", "), strings.Join(ctorInit, ", ")))
	}
	for _, m := range methods {
		params := make([]string, len(m.Params))
		for i, prm := range m.Params {
			params[i] = fmt.Sprintf("%s %s", p.TypeName(prm.Type), prm.Name)
		}
		lines = append(lines, fmt.Sprintf("    %s %s(%s) {",
			p.TypeName(m.Ret), m.Name, strings.Join(params, ", ")))
		for _, b := range m.Body {
			lines = append(lines, "        "+b)
		}
		lines = append(lines, "    }")
	}
	if len(members) > 0 {
		lines = append(lines, "private:")
		for _, m := range members {
			lines = append(lines, fmt.Sprintf("    %s %s;", p.TypeName(m.Type), m.Name))
		}
	}
	return append(lines, "};")
}

func (CppProfile) Preamble(usesPrint bool) []string {
	includes := []string{
		"#include <algorithm>",
		"#include <cmath>",
		"#include <iostream>",
		"#include <string>",
		"#include <unordered_map>",
		"#include <vector>",
	}
	return append(includes, "", "using namespace std;")
}
