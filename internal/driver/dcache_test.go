package driver

import (
	"os"
	"path/filepath"
	"testing"

	"pycc/internal/emit"
)

func TestCacheKeyDependsOnProfile(t *testing.T) {
	src := []byte("print(1)\n")
	if CacheKey("c", src) == CacheKey("cpp", src) {
		t.Error("different profiles must produce different keys")
	}
	if CacheKey("c", src) != CacheKey("c", []byte("print(1)\n")) {
		t.Error("same profile and source must produce the same key")
	}
	if CacheKey("c", src) == CacheKey("c", []byte("print(2)\n")) {
		t.Error("different sources must produce different keys")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey("c", []byte("x = 1\n"))

	var miss DiskPayload
	if ok, err := cache.Get(key, &miss); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	in := &DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Profile: "c",
		Code:    "int main() {\n    return 0;\n}\n",
		Diags:   []DiskDiag{{Severity: 1, Code: 3200, Message: "leak", Start: 4, End: 9}},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.Code != in.Code || out.Profile != in.Profile {
		t.Errorf("payload mismatch: %+v", out)
	}
	if len(out.Diags) != 1 || out.Diags[0] != in.Diags[0] {
		t.Errorf("diags mismatch: %+v", out.Diags)
	}
}

func TestDiskCacheRejectsStaleSchema(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	stale := &DiskPayload{Schema: diskCacheSchemaVersion + 1, Code: "old"}
	if res := payloadToResult(stale, nil, 0, 10); res != nil {
		t.Error("stale schema must be treated as a miss")
	}
	_ = cache
}

func TestConvertFileUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.py")
	src := "s = \"hi\"\ns = \"bye\"\nprint(s)\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache}

	first, err := ConvertFile(path, emit.CProfile{}, opts)
	if err != nil {
		t.Fatalf("first convert: %v", err)
	}

	key := CacheKey("c", []byte(src))
	var payload DiskPayload
	if ok, err := cache.Get(key, &payload); err != nil || !ok {
		t.Fatalf("result was not cached: ok=%v err=%v", ok, err)
	}

	second, err := ConvertFile(path, emit.CProfile{}, opts)
	if err != nil {
		t.Fatalf("second convert: %v", err)
	}
	if second.Code != first.Code {
		t.Errorf("cache hit changed the output:\n%s\nvs\n%s", second.Code, first.Code)
	}
	if second.Bag.Len() != first.Bag.Len() {
		t.Errorf("cache hit lost diagnostics: %d vs %d", second.Bag.Len(), first.Bag.Len())
	}
}
