package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"io/fs"
	"log"
	"sync"
)

// Asset paths inside the static filesystem
const (
	SiteCSSPath = "css/site.css"
	ShellJSPath = "js/shell.js"
)

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(fsys fs.FS) {
	assetVersionsOnce.Do(func() {
		assetVersions = computeAssetVersions(fsys, SiteCSSPath, ShellJSPath)
		for path, version := range assetVersions {
			log.Printf("[INFO] Asset version initialized: %s=%s", path, version)
		}
	})
}

func computeAssetVersions(fsys fs.FS, paths ...string) map[string]string {
	versions := make(map[string]string, len(paths))
	for _, path := range paths {
		version := computeFileHash(fsys, path)
		if version == "" {
			version = "1"
		}
		versions[path] = version
	}
	return versions
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(fsys fs.FS, path string) string {
	file, err := fsys.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	// Return first 8 chars of the hash for brevity
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash for an asset path
// Note: ctx parameter is for API consistency with other middleware helpers,
// but the version is computed once at startup and is global
func GetAssetVersion(ctx context.Context, path string) string {
	if version, ok := assetVersions[path]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the cache-busted URL for a static asset
func AssetURL(ctx context.Context, path string) string {
	return "/static/" + path + "?v=" + GetAssetVersion(ctx, path)
}
