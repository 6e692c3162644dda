package driver

import (
	"errors"

	"fortio.org/safecast"

	"pycc/internal/diag"
	"pycc/internal/emit"
	"pycc/internal/infer"
	"pycc/internal/lexer"
	"pycc/internal/parser"
	"pycc/internal/source"
	"pycc/internal/types"
)

// DefaultMaxDiagnostics ограничивает пакет диагностик одной конвертации.
const DefaultMaxDiagnostics = 100

// ErrInvalidSource — исходник не прошёл лексер или парсер. Результат
// содержит пакет диагностик, но не содержит кода: из невалидного
// исходника ничего не эмитится.
var ErrInvalidSource = errors.New("source contains lexical or syntax errors")

type Options struct {
	// MaxDiagnostics — ёмкость пакета диагностик; 0 берёт дефолт.
	MaxDiagnostics int
	// Cache — опциональный дисковый кеш результатов конвертации.
	Cache *DiskCache
}

// Result — итог одной конвертации: целевой код, пакет диагностик и
// FileSet для рендера позиций.
type Result struct {
	Code    string
	FileSet *source.FileSet
	FileID  source.FileID
	Bag     *diag.Bag
}

// ProfileFor отображает имя цели в профиль диалекта.
func ProfileFor(target string) (emit.Profile, bool) {
	switch target {
	case "c":
		return emit.CProfile{}, true
	case "cpp", "c++":
		return emit.CppProfile{}, true
	}
	return nil, false
}

// ConvertSource конвертирует исходник из памяти (тело запроса, stdin).
func ConvertSource(name string, src []byte, prof emit.Profile, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return convert(fs, id, prof, opts)
}

// ConvertFile конвертирует файл с диска, при наличии кеша — через него.
func ConvertFile(path string, prof emit.Profile, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.Cache != nil {
		key := CacheKey(prof.Name(), fs.Get(id).Content)
		var payload DiskPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			if res := payloadToResult(&payload, fs, id, maxDiag(opts)); res != nil {
				return res, nil
			}
		}
	}

	res, err := convert(fs, id, prof, opts)
	if err != nil {
		return res, err
	}
	if opts.Cache != nil {
		key := CacheKey(prof.Name(), fs.Get(id).Content)
		// промах записи не фейлит конвертацию
		_ = opts.Cache.Put(key, resultToPayload(prof.Name(), res))
	}
	return res, nil
}

func maxDiag(opts Options) int {
	if opts.MaxDiagnostics > 0 {
		return opts.MaxDiagnostics
	}
	return DefaultMaxDiagnostics
}

func convert(fs *source.FileSet, id source.FileID, prof emit.Profile, opts Options) (*Result, error) {
	limit := maxDiag(opts)
	bag := diag.NewBag(limit)
	reporter := diag.BagReporter{Bag: bag}

	maxErrors, err := safecast.Conv[uint](limit)
	if err != nil {
		return nil, err
	}

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	mod := parser.ParseModule(fs, lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})
	bag.SortStable()
	if bag.HasErrors() {
		return &Result{FileSet: fs, FileID: id, Bag: bag}, ErrInvalidSource
	}

	inferOpts := infer.Options{Reporter: reporter}
	if !prof.HasCompanionSize() {
		// диалект с нативными контейнерами может позволить себе auto
		inferOpts.UnknownCall = types.Unresolved
	}
	eng := infer.New(infer.NewEnv(), infer.NewRegistry(), inferOpts)
	em := emit.New(prof, eng, emit.Options{Reporter: reporter})

	code := Assemble(em, mod)
	return &Result{Code: code, FileSet: fs, FileID: id, Bag: bag}, nil
}
