package infer

import (
	"pycc/internal/types"
)

// Binding — имя с уже выведенным тегом, для посева скоупа параметрами.
type Binding struct {
	Name string
	Type *types.Type
}

// Env — стек областей видимости: модульный скоуп внизу, по одному
// скоупу на активацию функции сверху. Строго стек, не граф: замыкания
// с захватом внешних переменных сюда не выражаются.
type Env struct {
	scopes []map[string]*types.Type
}

// NewEnv создаёт окружение с одним модульным скоупом.
func NewEnv() *Env {
	return &Env{scopes: []map[string]*types.Type{{}}}
}

// Enter кладёт новый скоуп, засеянный привязками параметров.
func (e *Env) Enter(params []Binding) {
	scope := make(map[string]*types.Type, len(params))
	for _, p := range params {
		scope[p.Name] = p.Type
	}
	e.scopes = append(e.scopes, scope)
}

// Exit снимает текущий скоуп. Модульный скоуп не снимается никогда.
func (e *Env) Exit() {
	if len(e.scopes) > 1 {
		e.scopes = e.scopes[:len(e.scopes)-1]
	}
}

// Declare привязывает имя в текущем скоупе, только если оно там ещё не
// привязано: первый присвоенный тип выигрывает. Возвращает true, если
// имя объявлено именно сейчас.
func (e *Env) Declare(name string, t *types.Type) bool {
	scope := e.scopes[len(e.scopes)-1]
	if _, ok := scope[name]; ok {
		return false
	}
	scope[name] = t
	return true
}

// Lookup ищет имя от ближайшего скоупа к модульному.
func (e *Env) Lookup(name string) (*types.Type, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if t, ok := e.scopes[i][name]; ok {
			return t, true
		}
	}
	return nil, false
}

// BoundInCurrent — привязано ли имя именно в текущем скоупе.
func (e *Env) BoundInCurrent(name string) bool {
	_, ok := e.scopes[len(e.scopes)-1][name]
	return ok
}

