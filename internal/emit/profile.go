// Package emit turns syntax nodes into target-language text. Construct-level
// policy (what a loop or an assignment becomes) lives once in the Emitter;
// everything dialect-specific (how a type declares, how text compares, how a
// container is sized) lives behind the Profile interface, so the C and C++
// renderings cannot drift apart structurally.
package emit

import (
	"pycc/internal/types"
)

// PrintArg — один аргумент print: либо голый строковый литерал, либо
// выражение с уже выведенным тегом.
type PrintArg struct {
	Text  string
	IsLit bool
	Kind  types.Kind
}

// Segment — кусок f-строки: литерал либо выражение с тегом.
type Segment struct {
	Lit  string
	Expr string
	Kind types.Kind
}

// Field — член агрегата при понижении класса.
type Field struct {
	Name string
	Type *types.Type
}

// Method — метод класса с уже выведенной сигнатурой. Body заполняется
// эмиттером; C-подобный профиль тело отбрасывает и оставляет только
// указатель на функцию.
type Method struct {
	Name   string
	Ret    *types.Type
	Params []Field
	Body   []string
}

// Profile инкапсулирует рендеринг тегов и строково-контейнерные
// представления одного целевого диалекта. Два профиля (C, C++)
// выбираются на уровне сборщика и никогда не смешиваются в одном
// прогоне.
type Profile interface {
	// Name — короткое имя диалекта ("c", "cpp").
	Name() string

	// TypeName отображает тег в тип объявления.
	TypeName(t *types.Type) string

	BoolLit(v bool) string
	NullLit() string
	StringLit(decoded string) string

	// TextDecl / TextAssign — объявление и переприсваивание текстовой
	// переменной (C оборачивает литерал в strdup).
	TextDecl(name, value string) string
	TextAssign(name, value string) string

	// ArrayDecl разворачивает литерал списка в объявление; C добавляет
	// спутниковую переменную длины.
	ArrayDecl(elem *types.Type, name string, elems []string) []string
	// ArrayLit — литерал списка в позиции выражения.
	ArrayLit(elem *types.Type, elems []string) string
	// DictDecl — объявление из словарного литерала, DictLit — литерал
	// словаря в позиции выражения.
	DictDecl(key, value *types.Type, name string, keys, values []string) []string
	DictLit(key, value *types.Type, keys, values []string) string

	// HasCompanionSize — синтезирует ли профиль спутниковую длину для
	// массивных представлений (у C нет нативного контейнера).
	HasCompanionSize() bool
	// SizeName — имя спутниковой длины для базового имени.
	SizeName(base string) string

	// Length — выражение длины контейнера/текста по имени и тегу;
	// ok=false, когда у профиля нет честного ответа.
	Length(name string, t *types.Type) (string, bool)
	// LengthFallback — выражение-заглушка для len() на неизвестном
	// операнде (сопровождается диагностикой).
	LengthFallback(expr string) string

	// TextCompare — сравнение текстовых операндов.
	TextCompare(left, op, right string) string
	// TextConcat — текстовая конкатенация.
	TextConcat(left, right string) string
	// PromoteForConcat поднимает операнд до текстового; ok=false, когда
	// профилю пришлось сконвертировать нетекстовый операнд.
	PromoteForConcat(expr string, k types.Kind) (string, bool)

	// TextSlice / ArraySlice — срезы; оба дают копию и сопровождаются
	// диагностикой на стороне эмиттера.
	TextSlice(recv, low, high string) string
	ArraySlice(recv string, elem *types.Type, low, high, step string) string

	// TextMethod / ArrayMethod — отображение вызова метода на
	// документированный эквивалент; ok=false, когда метод не отображён.
	TextMethod(recv, method string, args []string) (string, bool)
	ArrayMethod(recv, method string, args []string) (string, bool)

	// Print собирает вызов печати из аргументов; newline=false при
	// print(..., end="").
	Print(args []PrintArg, newline bool) string

	// FString собирает интерполированную строку из сегментов.
	FString(segs []Segment) string

	// ArrayFor и TextFor — заголовок цикла по контейнеру/тексту и
	// необязательная строка-привязка элемента перед телом.
	ArrayFor(target, iter string, elem *types.Type) (header, prelude string)
	TextFor(target, iter string) (header, prelude string)

	// Class понижает класс в агрегат диалекта.
	Class(name string, members []Field, methods []Method) []string

	// Preamble — строки включений (и пролог) единицы трансляции.
	Preamble(usesPrint bool) []string
}
