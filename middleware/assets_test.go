package middleware

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"settleedge_web/static"
)

func TestComputeFileHash(t *testing.T) {
	fsys := fstest.MapFS{
		"css/test.css": {Data: []byte("body { color: red; }")},
	}

	// Test with existing file
	hash := computeFileHash(fsys, "css/test.css")
	if hash == "" {
		t.Error("expected a hash, got empty string")
	}
	if len(hash) != 8 {
		t.Errorf("expected hash length 8, got %d", len(hash))
	}

	// Test with non-existent file
	hash = computeFileHash(fsys, "css/missing.css")
	if hash != "" {
		t.Errorf("expected empty hash for non-existent file, got %s", hash)
	}
}

func TestComputeAssetVersions(t *testing.T) {
	fsys := fstest.MapFS{
		SiteCSSPath: {Data: []byte("main { padding: 0; }")},
	}

	versions := computeAssetVersions(fsys, SiteCSSPath, ShellJSPath)
	if len(versions[SiteCSSPath]) != 8 {
		t.Errorf("expected 8 char version for css, got %q", versions[SiteCSSPath])
	}
	if versions[ShellJSPath] != "1" {
		t.Errorf("expected fallback version '1' for missing js, got %q", versions[ShellJSPath])
	}
}

func TestGetAssetVersionDefault(t *testing.T) {
	ctx := context.Background()
	if v := GetAssetVersion(ctx, "js/unknown.js"); v != "1" {
		t.Errorf("expected default version '1' for unknown asset, got %s", v)
	}
}

func TestInitAssetVersions(t *testing.T) {
	InitAssetVersions(static.FS)

	ctx := context.Background()
	if v := GetAssetVersion(ctx, SiteCSSPath); len(v) != 8 {
		t.Errorf("expected hashed css version, got %q", v)
	}

	url := AssetURL(ctx, ShellJSPath)
	if !strings.HasPrefix(url, "/static/js/shell.js?v=") {
		t.Errorf("unexpected asset url %q", url)
	}
}
