package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestHash(t *testing.T) {
	a := Hash([]byte("watch"))
	b := Hash([]byte("watch"))
	c := Hash([]byte("dial"))

	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64 hex chars", len(a))
	}
	if a != b {
		t.Error("Hash should be deterministic")
	}
	if a == c {
		t.Error("different inputs should hash differently")
	}
}

func TestHashKey(t *testing.T) {
	k := hashKey("scene", "a", 1)
	if !strings.HasPrefix(k, "scene:") {
		t.Errorf("key %q missing prefix", k)
	}
	if k != hashKey("scene", "a", 1) {
		t.Error("hashKey should be deterministic")
	}
	if k == hashKey("scene", "a", 2) {
		t.Error("different parts should produce different keys")
	}
	if k == hashKey("artifact", "a", 1) {
		t.Error("different prefixes should produce different keys")
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Errorf("Get(missing) = hit=%v err=%v, want miss", hit, err)
	}

	want := []byte("<svg/>")
	if err := c.Set(ctx, "svg-key", want, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := c.Get(ctx, "svg-key")
	if err != nil || !hit {
		t.Fatalf("Get = hit=%v err=%v, want hit", hit, err)
	}
	if string(got) != string(want) {
		t.Errorf("Get = %q, want %q", got, want)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, err := c.Get(ctx, "short"); err != nil || hit {
		t.Errorf("expired entry: hit=%v err=%v, want miss", hit, err)
	}

	// Zero TTL means no expiration.
	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero-TTL entry should not expire")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("x"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("deleted entry should miss")
	}

	// Deleting a missing key is fine.
	if err := c.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("x"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Corrupt the entry on disk.
	fc := c.(*FileCache)
	if err := os.WriteFile(fc.path("key"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("corrupt entry: hit=%v err=%v, want silent miss", hit, err)
	}
}

func TestFileCacheSharding(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(context.Background(), "key", []byte("x"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	rel, err := filepath.Rel(dir, c.(*FileCache).path("key"))
	if err != nil {
		t.Fatalf("Rel: %v", err)
	}
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) != 2 || len(parts[0]) != 2 {
		t.Errorf("entry path %q should shard into a 2-char subdirectory", rel)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("x"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("NullCache Get = hit=%v err=%v, want miss", hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	s1 := k.SceneKey(SceneKeyOpts{Kind: "dial", OptionsSum: "abc"})
	s2 := k.SceneKey(SceneKeyOpts{Kind: "dial", OptionsSum: "abc"})
	s3 := k.SceneKey(SceneKeyOpts{Kind: "pattern", OptionsSum: "abc"})
	if s1 != s2 {
		t.Error("SceneKey should be deterministic")
	}
	if s1 == s3 {
		t.Error("different kinds should key differently")
	}

	a1 := k.ArtifactKey("sum", ArtifactKeyOpts{Format: "svg", WidthMM: 32.5, HeightMM: 32.5})
	a2 := k.ArtifactKey("sum", ArtifactKeyOpts{Format: "png", WidthMM: 32.5, HeightMM: 32.5})
	if a1 == a2 {
		t.Error("different formats should key differently")
	}
	if a1 == k.ArtifactKey("other", ArtifactKeyOpts{Format: "svg", WidthMM: 32.5, HeightMM: 32.5}) {
		t.Error("different scene sums should key differently")
	}
}
