package uniqueid

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func tempStore(t *testing.T) *store {
	t.Helper()
	return &store{path: filepath.Join(t.TempDir(), storeFileName)}
}

func TestStoreRoundTrip(t *testing.T) {
	s := tempStore(t)

	if _, ok, err := s.load(); err != nil || ok {
		t.Fatalf("load() before persist = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.persist("deadbeef"); err != nil {
		t.Fatalf("persist(): %v", err)
	}

	id, ok, err := s.load()
	if err != nil || !ok {
		t.Fatalf("load() after persist = ok=%v err=%v", ok, err)
	}
	if id != "deadbeef" {
		t.Errorf("load() = %q, want %q", id, "deadbeef")
	}
}

func TestStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits not meaningful on windows")
	}
	s := tempStore(t)
	if err := s.persist("deadbeef"); err != nil {
		t.Fatalf("persist(): %v", err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		t.Fatalf("Stat(): %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}
}

func TestStoreLoadKeepsContentVerbatim(t *testing.T) {
	// 持久化内容不做裁剪或格式校验，原样返回。
	s := tempStore(t)
	raw := "  abc123\n"
	if err := os.WriteFile(s.path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	id, ok, err := s.load()
	if err != nil || !ok {
		t.Fatalf("load() = ok=%v err=%v", ok, err)
	}
	if id != raw {
		t.Errorf("load() = %q, want verbatim %q", id, raw)
	}
}

func TestStoreVerify(t *testing.T) {
	s := tempStore(t)

	if ok, err := s.verify(); err != nil || ok {
		t.Errorf("verify() with no file = %v, %v; want false", ok, err)
	}

	if err := os.WriteFile(s.path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if ok, err := s.verify(); err != nil || ok {
		t.Errorf("verify() with empty file = %v, %v; want false", ok, err)
	}

	// 内容不是合法摘要也算存在：verify 不校验格式。
	if err := os.WriteFile(s.path, []byte("not-a-digest"), 0o600); err != nil {
		t.Fatal(err)
	}
	if ok, err := s.verify(); err != nil || !ok {
		t.Errorf("verify() with garbage content = %v, %v; want true", ok, err)
	}
}

func TestStoreInvalidate(t *testing.T) {
	s := tempStore(t)

	// 文件不存在时不算错误。
	if err := s.invalidate(); err != nil {
		t.Errorf("invalidate() with no file: %v", err)
	}

	if err := s.persist("deadbeef"); err != nil {
		t.Fatal(err)
	}
	if err := s.invalidate(); err != nil {
		t.Errorf("invalidate(): %v", err)
	}
	if ok, _ := s.verify(); ok {
		t.Error("verify() = true after invalidate")
	}
}
