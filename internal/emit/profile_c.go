package emit

import (
	"fmt"
	"strconv"
	"strings"

	"pycc/internal/types"
)

// CProfile — C-подобный диалект: контейнеры не нативны, массив — голый
// указатель плюс спутниковая длина `<имя>_size`, текст — char* со
// strdup-копиями литералов.
type CProfile struct{}

func (CProfile) Name() string { return "c" }

func (p CProfile) TypeName(t *types.Type) string {
	if t == nil {
		return "int"
	}
	switch t.Kind {
	case types.KindInt, types.KindBool:
		return "int"
	case types.KindFloat:
		return "float"
	case types.KindText:
		return "char*"
	case types.KindChar:
		return "char"
	case types.KindArray:
		return p.TypeName(t.Elem) + "*"
	case types.KindMap, types.KindStruct:
		if t.Name != "" {
			return t.Name
		}
		return "struct"
	case types.KindVoid:
		return "void"
	default:
		// generic-формы у C нет, int — документированный фолбэк
		return "int"
	}
}

func (CProfile) BoolLit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (CProfile) NullLit() string { return "NULL" }

func (CProfile) StringLit(decoded string) string {
	return strconv.Quote(decoded)
}

func (CProfile) TextDecl(name, value string) string {
	return fmt.Sprintf("char* %s = strdup(%s);", name, value)
}

func (CProfile) TextAssign(name, value string) string {
	return fmt.Sprintf("%s = strdup(%s);", name, value)
}

func (p CProfile) ArrayDecl(elem *types.Type, name string, elems []string) []string {
	n := len(elems)
	return []string{
		fmt.Sprintf("%s %s[%d] = { %s };", p.TypeName(elem), name, n, strings.Join(elems, ", ")),
		fmt.Sprintf("int %s = %d;", p.SizeName(name), n),
	}
}

func (p CProfile) ArrayLit(elem *types.Type, elems []string) string {
	// compound literal, чтобы литерал списка жил в позиции выражения
	return fmt.Sprintf("(%s[]){ %s }", p.TypeName(elem), strings.Join(elems, ", "))
}

func (p CProfile) DictDecl(key, value *types.Type, name string, keys, values []string) []string {
	members := make([]string, len(keys))
	pairs := make([]string, len(keys))
	for i := range keys {
		member := strings.Trim(keys[i], "\"")
		members[i] = fmt.Sprintf("%s %s;", p.TypeName(value), member)
		pairs[i] = fmt.Sprintf(".%s = %s", member, values[i])
	}
	return []string{
		fmt.Sprintf("struct { %s } %s = { %s };",
			strings.Join(members, " "), name, strings.Join(pairs, ", ")),
	}
}

func (CProfile) DictLit(key, value *types.Type, keys, values []string) string {
	pairs := make([]string, len(keys))
	for i := range keys {
		pairs[i] = fmt.Sprintf(".%s = %s", strings.Trim(keys[i], "\""), values[i])
	}
	return "{ " + strings.Join(pairs, ", ") + " }"
}

func (CProfile) HasCompanionSize() bool { return true }

func (CProfile) SizeName(base string) string { return base + "_size" }

func (p CProfile) Length(name string, t *types.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	switch t.Kind {
	case types.KindText:
		return fmt.Sprintf("strlen(%s)", name), true
	case types.KindArray:
		return p.SizeName(name), true
	}
	return "", false
}

func (CProfile) LengthFallback(string) string { return "0" }

func (CProfile) TextCompare(left, op, right string) string {
	return fmt.Sprintf("strcmp(%s, %s) %s 0", left, right, op)
}

func (CProfile) TextConcat(left, right string) string {
	return fmt.Sprintf("strcat(strdup(%s), %s)", left, right)
}

func (CProfile) PromoteForConcat(expr string, k types.Kind) (string, bool) {
	switch k {
	case types.KindText:
		return expr, true
	case types.KindChar:
		return fmt.Sprintf("(char[]){ %s, '\\0' }", expr), true
	default:
		return fmt.Sprintf("strdup(%s)", expr), false
	}
}

func (CProfile) TextSlice(recv, low, high string) string {
	return fmt.Sprintf("strndup(%s + %s, %s - %s)", recv, low, high, low)
}

func (CProfile) ArraySlice(recv string, elem *types.Type, low, high, step string) string {
	return fmt.Sprintf("array_slice(%s, %s, %s, %s)", recv, low, high, step)
}

var cTextMethods = map[string]string{
	"lower": "strlwr",
	"upper": "strupr",
	"strip": "strtrim",
	"find":  "strstr",
	"split": "strsplit",
}

func (CProfile) TextMethod(recv, method string, args []string) (string, bool) {
	helper, ok := cTextMethods[method]
	if !ok {
		return "", false
	}
	all := append([]string{recv}, args...)
	return fmt.Sprintf("%s(%s)", helper, strings.Join(all, ", ")), true
}

var cArrayMethods = map[string]string{
	"append": "array_append",
	"pop":    "array_pop",
	"remove": "array_remove",
	"insert": "array_insert",
}

func (CProfile) ArrayMethod(recv, method string, args []string) (string, bool) {
	helper, ok := cArrayMethods[method]
	if !ok {
		return "", false
	}
	all := append([]string{recv}, args...)
	return fmt.Sprintf("%s(%s)", helper, strings.Join(all, ", ")), true
}

func (CProfile) Print(args []PrintArg, newline bool) string {
	if len(args) == 0 {
		if newline {
			return `printf("\n");`
		}
		return `printf("");`
	}
	parts := make([]string, 0, len(args)+1)
	for _, a := range args {
		if a.IsLit {
			parts = append(parts, fmt.Sprintf("printf(%s)", a.Text))
			continue
		}
		parts = append(parts, fmt.Sprintf("printf(\"%s\", %s)", printfVerb(a.Kind), a.Text))
	}
	if newline {
		parts = append(parts, `printf("\n")`)
	}
	return strings.Join(parts, "; ") + ";"
}

func printfVerb(k types.Kind) string {
	switch k {
	case types.KindFloat:
		return "%.2f"
	case types.KindText:
		return "%s"
	case types.KindChar:
		return "%c"
	default:
		return "%d"
	}
}

func (CProfile) FString(segs []Segment) string {
	var format strings.Builder
	var args []string
	for _, s := range segs {
		if s.Expr == "" {
			format.WriteString(strings.ReplaceAll(s.Lit, "%", "%%"))
			continue
		}
		format.WriteString(printfVerb(s.Kind))
		args = append(args, s.Expr)
	}
	quoted := strconv.Quote(format.String())
	if len(args) == 0 {
		return fmt.Sprintf("strdup(%s)", quoted)
	}
	return fmt.Sprintf("format_string(%s, %s)", quoted, strings.Join(args, ", "))
}

func (p CProfile) ArrayFor(target, iter string, elem *types.Type) (string, string) {
	idx := target + "_idx"
	header := fmt.Sprintf("for (int %s = 0; %s < %s; %s++)", idx, idx, p.SizeName(iter), idx)
	prelude := fmt.Sprintf("%s %s = %s[%s];", p.TypeName(elem), target, iter, idx)
	return header, prelude
}

func (CProfile) TextFor(target, iter string) (string, string) {
	idx := target + "_idx"
	header := fmt.Sprintf("for (int %s = 0; %s < strlen(%s); %s++)", idx, idx, iter, idx)
	prelude := fmt.Sprintf("char %s = %s[%s];", target, iter, idx)
	return header, prelude
}

func (p CProfile) Class(name string, members []Field, methods []Method) []string {
	lines := []string{"typedef struct {"}
	for _, m := range members {
		lines = append(lines, fmt.Sprintf("    %s %s;", p.TypeName(m.Type), m.Name))
	}
	// методы — указатели на функции; тела требуют ручной привязки
	for _, m := range methods {
		params := make([]string, len(m.Params))
		for i, prm := range m.Params {
			params[i] = fmt.Sprintf("%s %s", p.TypeName(prm.Type), prm.Name)
		}
		lines = append(lines, fmt.Sprintf("    %s (*%s)(%s);",
			p.TypeName(m.Ret), m.Name, strings.Join(params, ", ")))
	}
	return append(lines, fmt.Sprintf("} %s;", name))
}

func (CProfile) Preamble(usesPrint bool) []string {
	var lines []string
	if usesPrint {
		lines = append(lines, "#include <stdio.h>")
	}
	lines = append(lines, "#include <stdlib.h>", "#include <string.h>")
	return lines
}
