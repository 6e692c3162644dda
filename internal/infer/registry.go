package infer

import (
	"pycc/internal/types"
)

// Signature — запись реестра известных функций. Поиск строго по имени,
// без перегрузок и без проверки арности.
type Signature struct {
	Name   string
	Params []*types.Type
	Return *types.Type
	// TextOriented помечает функции, работающие со строками: параметр,
	// переданный такой функции, получает тег Text при сканировании тела.
	TextOriented bool
}

// Registry — таблица сигнатур: встроенные плюс зарегистрированные
// пользовательские определения текущего модуля.
type Registry struct {
	byName map[string]Signature
}

// NewRegistry создаёт реестр, заполненный встроенной таблицей.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Signature, len(builtinSignatures))}
	for _, sig := range builtinSignatures {
		r.byName[sig.Name] = sig
	}
	return r
}

// Lookup находит сигнатуру по точному имени.
func (r *Registry) Lookup(name string) (Signature, bool) {
	sig, ok := r.byName[name]
	return sig, ok
}

// Register добавляет или заменяет сигнатуру: так из модуля попадают
// пользовательские функции с выведенными типами.
func (r *Registry) Register(sig Signature) {
	r.byName[sig.Name] = sig
}

// IsTextOriented — принадлежит ли имя строковому подмножеству реестра.
func (r *Registry) IsTextOriented(name string) bool {
	sig, ok := r.byName[name]
	return ok && sig.TextOriented
}

var builtinSignatures = []Signature{
	{Name: "print", Return: types.Void},
	{Name: "len", Return: types.Int},
	{Name: "range", Return: types.MakeArray(types.Int)},
	{Name: "abs", Return: types.Int},
	{Name: "min", Return: types.Int},
	{Name: "max", Return: types.Int},
	{Name: "sum", Return: types.Int},
	{Name: "ord", Return: types.Int},
	{Name: "chr", Return: types.Char},
	{Name: "int", Return: types.Int},
	{Name: "float", Return: types.Float},
	{Name: "bool", Return: types.Bool},
	{Name: "str", Return: types.Text, TextOriented: true},
	{Name: "input", Return: types.Text, TextOriented: true},

	// строковые помощники рантайма, которые исходники зовут напрямую
	{Name: "strlen", Return: types.Int, TextOriented: true},
	{Name: "strcat", Return: types.Text, TextOriented: true},
	{Name: "strcpy", Return: types.Text, TextOriented: true},
	{Name: "strdup", Return: types.Text, TextOriented: true},
	{Name: "reverse_string", Return: types.Text, TextOriented: true},

	{Name: "sum_array", Return: types.Int},
	{Name: "add", Return: types.Int},
	{Name: "subtract", Return: types.Int},
	{Name: "multiply", Return: types.Int},
	{Name: "divide", Return: types.Int},
}
