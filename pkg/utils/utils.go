// Package utils provides file discovery and path helpers for the CLI
package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the suffixes treated as WinZig source
var DefaultExtensions = []string{".wz", ".winzig", ".tiny"}

// DefaultExclude lists directory names skipped while walking
var DefaultExclude = []string{".git", "vendor", "node_modules", "build"}

// FindSourceFiles returns the WinZig sources under target in lexical order.
// A file target is returned as-is when it has a matching extension.
// Directories and files whose base name matches an exclude pattern are skipped.
func FindSourceFiles(target string, exts, exclude []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}

	var files []string
	if !info.IsDir() {
		if HasExtension(target, exts) {
			files = append(files, target)
		}
		return files, nil
	}

	err = filepath.Walk(target, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path != target && IsExcluded(path, exclude) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && HasExtension(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// HasExtension checks the file suffix case-insensitively
func HasExtension(filename string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, want := range exts {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// IsExcluded reports whether the base name of path matches any pattern
func IsExcluded(path string, patterns []string) bool {
	name := filepath.Base(path)
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// TreeOutputPath returns <outputDir>/<base of source without extension><ext>.
// An empty outputDir keeps the tree next to its source.
func TreeOutputPath(outputDir, source, ext string) string {
	if ext == "" {
		ext = ".tree"
	}
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + ext
	if outputDir == "" {
		return filepath.Join(filepath.Dir(source), base)
	}
	return filepath.Join(outputDir, base)
}
