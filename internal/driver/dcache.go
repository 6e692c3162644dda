package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pycc/internal/diag"
	"pycc/internal/source"
)

// Схема полезной нагрузки; инкрементируется при изменении формата.
const diskCacheSchemaVersion uint16 = 1

// Digest — ключ кеша: SHA-256 от имени профиля и содержимого исходника.
type Digest [sha256.Size]byte

// CacheKey вычисляет ключ кеша конвертации. Имя профиля входит в
// хеш: один исходник даёт разные программы под разными диалектами.
func CacheKey(profile string, src []byte) Digest {
	h := sha256.New()
	h.Write([]byte(profile))
	h.Write([]byte{0})
	h.Write(src)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DiskCache хранит результаты конвертации по Digest на диске.
// Безопасен для конкурентного доступа.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload — сериализуемый итог конвертации: код и диагностики
// без привязки к FileSet (спаны хранятся смещениями).
type DiskPayload struct {
	Schema  uint16
	Profile string
	Code    string
	Diags   []DiskDiag
}

// DiskDiag — одна диагностика в плоском виде.
type DiskDiag struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

// OpenDiskCache инициализирует кеш в стандартном месте.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt инициализирует кеш в заданном каталоге (тесты,
// нестандартные раскладки).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог для удобства чистки руками
	return filepath.Join(c.dir, "conv", hexKey+".mp")
}

// Put сериализует и записывает результат; замена файла атомарна.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get читает результат; (false, nil) — промах.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll инвалидирует кеш целиком, например после смены схемы.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func resultToPayload(profile string, res *Result) *DiskPayload {
	if res == nil {
		return nil
	}
	payload := &DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Profile: profile,
		Code:    res.Code,
	}
	for _, d := range res.Bag.Items() {
		payload.Diags = append(payload.Diags, DiskDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return payload
}

// payloadToResult восстанавливает результат из кеша. Спаны
// перевязываются на свежесозданный FileID: содержимое файла то же,
// смещения остаются валидными.
func payloadToResult(payload *DiskPayload, fs *source.FileSet, id source.FileID, maxDiagnostics int) *Result {
	if payload == nil || payload.Schema != diskCacheSchemaVersion {
		return nil
	}
	bag := diag.NewBag(maxDiagnostics)
	for _, d := range payload.Diags {
		sp := source.Span{File: id, Start: d.Start, End: d.End}
		bag.Add(diag.New(diag.Severity(d.Severity), diag.Code(d.Code), sp, d.Message))
	}
	return &Result{Code: payload.Code, FileSet: fs, FileID: id, Bag: bag}
}
