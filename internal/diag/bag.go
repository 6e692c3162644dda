package diag

import (
	"sort"
)

// Bag is the append-only, insertion-ordered diagnostics collection owned by
// one conversion call. Conversion diagnostics are never deduplicated: the bag
// is the authoritative record of everything the caller must review.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// CountKind returns how many diagnostics classify as the given soft-failure kind.
func (b *Bag) CountKind(kind Kind) int {
	n := 0
	for i := range b.items {
		if b.items[i].Code.Kind() == kind {
			n++
		}
	}
	return n
}

// SortStable sorts only hard diagnostics (lex/syntax) by position for
// deterministic error output. Conversion diagnostics keep insertion order.
func (b *Bag) SortStable() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Code.Kind() != KindNone || dj.Code.Kind() != KindNone {
			return false // порядок конверсионных не трогаем
		}
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		return di.Primary.End < dj.Primary.End
	})
}
