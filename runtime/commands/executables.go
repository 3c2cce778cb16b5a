package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// defaultWindowsExts mirrors the stock PATHEXT executable extensions.
var defaultWindowsExts = []string{".com", ".exe", ".bat", ".cmd"}

// windowsExts resolves the recognized executable extensions, honoring a
// PATHEXT override.
func windowsExts() []string {
	pathext := os.Getenv("PATHEXT")
	if pathext == "" {
		return defaultWindowsExts
	}
	var exts []string
	for _, ext := range filepath.SplitList(pathext) {
		if ext != "" {
			exts = append(exts, strings.ToLower(ext))
		}
	}
	return exts
}

// isExecutable applies the platform executability rule: the execute
// permission bit on POSIX, a recognized extension on Windows.
func isExecutable(name string, info os.FileInfo) bool {
	if runtime.GOOS == "windows" {
		ext := strings.ToLower(filepath.Ext(name))
		for _, e := range windowsExts() {
			if ext == e {
				return true
			}
		}
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

// ExecutablesIn lists the executable file names in dir. Subdirectories,
// non-executable files and broken symbolic links are skipped.
func ExecutablesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Stat follows symlinks, so broken links drop out here.
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || info.IsDir() {
			continue
		}
		if isExecutable(entry.Name(), info) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
