// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks for missing or orphaned translation keys.
// It scans the Go source code for i18n.T() calls and compares them against
// the YAML locale files to ensure consistency.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// Report is the outcome of one linter run.
type Report struct {
	UsedKeys     map[string]struct{}
	PrimaryKeys  map[string]struct{}
	Orphaned     []string
	Missing      map[string][]string // locale file -> keys
	Untranslated map[string][]Location
}

func (r Report) HasMissing() bool {
	return len(r.Missing) > 0
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	report, err := lint(projectRoot, filepath.Join(projectRoot, localesDir), primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	report.Print(os.Stdout)

	if report.HasMissing() {
		os.Exit(1)
	}
}

// lint compares the keys used below root with the locale files in locales.
func lint(root, locales, primary string) (Report, error) {
	report := Report{Missing: map[string][]string{}}

	usedKeys, err := findUsedKeys(root)
	if err != nil {
		return report, fmt.Errorf("error finding used keys: %w", err)
	}
	report.UsedKeys = usedKeys

	localeFiles, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report, fmt.Errorf("error finding locale files: %w", err)
	}

	// The primary locale is the source of truth.
	primaryKeys, err := loadKeysFromLocale(filepath.Join(locales, primary))
	if err != nil {
		return report, fmt.Errorf("error loading primary locale '%s': %w", primary, err)
	}
	report.PrimaryKeys = primaryKeys

	for key := range primaryKeys {
		if _, exists := usedKeys[key]; !exists {
			report.Orphaned = append(report.Orphaned, key)
		}
	}
	sort.Strings(report.Orphaned)

	for _, file := range localeFiles {
		if filepath.Base(file) == primary {
			continue
		}
		secondaryKeys, err := loadKeysFromLocale(file)
		if err != nil {
			return report, fmt.Errorf("error loading %s: %w", file, err)
		}

		var missing []string
		for key := range primaryKeys {
			if _, exists := secondaryKeys[key]; !exists {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			report.Missing[file] = missing
		}
	}

	report.Untranslated, err = findUntranslatedStrings(root, primaryKeys)
	if err != nil {
		return report, fmt.Errorf("error finding untranslated strings: %w", err)
	}
	return report, nil
}

// Print writes a human readable summary of r.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "✅ Found %d unique translation keys used in source code.\n", len(r.UsedKeys))
	fmt.Fprintf(w, "✅ Loaded %d keys from the primary locale.\n\n", len(r.PrimaryKeys))

	fmt.Fprintln(w, "--- Orphaned Keys (in primary locale but not used in code) ---")
	for _, key := range r.Orphaned {
		fmt.Fprintf(w, "  - Orphaned: %s\n", key)
	}
	if len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}

	fmt.Fprintln(w, "\n--- Missing Keys (in primary locale but not in others) ---")
	files := make([]string, 0, len(r.Missing))
	for file := range r.Missing {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		fmt.Fprintf(w, "%s:\n", file)
		for _, key := range r.Missing[file] {
			fmt.Fprintf(w, "  - Missing: %s\n", key)
		}
	}
	if len(files) == 0 {
		fmt.Fprintln(w, "  ✨ All keys present.")
	}

	// warnings only
	fmt.Fprintln(w, "\n--- Potentially Untranslated Strings ---")
	literals := make([]string, 0, len(r.Untranslated))
	for literal := range r.Untranslated {
		literals = append(literals, literal)
	}
	sort.Strings(literals)
	for _, literal := range literals {
		loc := r.Untranslated[literal][0]
		fmt.Fprintf(w, "  - Potential: %q (found in %s:%d)\n", literal, loc.Filepath, loc.Line)
	}
	if len(literals) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}

	fmt.Fprintln(w, "\n--- Linter Finished ---")
	switch {
	case r.HasMissing():
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

// walkSources calls fn for every non-test Go file below root. The tools
// directory and hidden or underscore directories are skipped.
func walkSources(root string, fn func(path string, content string) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(path, string(content))
	})
}

// findUsedKeys scans all .go files for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	// i18n.T("some.key") or a literal that looks like a key
	re := regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z\._]+)"`)

	err := walkSources(root, func(_ string, content string) error {
		for _, match := range re.FindAllStringSubmatch(content, -1) {
			if match[1] != "" {
				keys[match[1]] = struct{}{}
			} else if match[2] != "" {
				keys[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// findUntranslatedStrings scans for hardcoded strings passed to functions
// that might need translation.
func findUntranslatedStrings(root string, allKeys map[string]struct{}) (map[string][]Location, error) {
	untranslated := make(map[string][]Location)
	re := regexp.MustCompile(`([a-zA-Z0-9_]+\.)?([a-zA-Z0-9_]+)\("([^"]+)"`)
	ignoredFuncs := map[string]struct{}{
		"Print": {}, "Println": {}, "Printf": {}, "Fprintf": {}, "Fprintln": {},
		"Fatal": {}, "Fatalf": {}, "WriteString": {}, "Errorf": {}, "Debugf": {},
		"Infof": {}, "Warnf": {}, "WithKeys": {}, "WithHelp": {}, "Color": {},
	}
	keyRe := regexp.MustCompile(`^[a-z_]+\.[a-z\._]+$`)
	formatRe := regexp.MustCompile(`^[\s%.,:;()#\d\w-]*%[\s\w-]*$`)

	err := walkSources(root, func(path string, content string) error {
		for i, line := range strings.Split(content, "\n") {
			for _, match := range re.FindAllStringSubmatch(line, -1) {
				funcName, literal := match[2], match[3]

				if _, ignored := ignoredFuncs[funcName]; ignored {
					continue
				}
				if _, exists := allKeys[literal]; exists || keyRe.MatchString(literal) {
					continue
				}
				// short or non-text strings
				if len(literal) < 4 || !strings.Contains(literal, " ") && formatRe.MatchString(literal) {
					continue
				}
				if strings.HasPrefix(literal, "http") || strings.HasPrefix(literal, "2006-") {
					continue
				}

				untranslated[literal] = append(untranslated[literal], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return untranslated, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	case []interface{}:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
