// Package config implements the composer: it dispatches a file to the
// YAML or JSON loader by extension and then resolves "import" and
// "template" directives in the loaded tree, producing a single merged
// value.Value. Multiple independent failures (a missing import, a bad
// "-set" value) are accumulated with go.uber.org/multierr rather than
// aborting on the first one, since a best-effort composed config is
// more useful to a caller than none at all.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/go-valconf/valconf/json"
	"github.com/go-valconf/valconf/value"
	"github.com/go-valconf/valconf/yaml"
)

// LoadInfo carries the variant suffix and (opaque to the composer) the
// caller's string-interning table handle. StringTable is threaded
// through unexamined -- it is a collaborator the composer's caller
// owns, not something this package consults.
type LoadInfo struct {
	Variant     string
	StringTable interface{}
	Strict      bool
}

// LoadResult reports what was actually loaded.
type LoadResult struct {
	MainPath string
	Imports  []string
}

// LoadConfig loads path, dispatches by extension, and resolves import
// and template directives. It returns a best-effort Value even when
// some imports failed; err aggregates every failure encountered.
func LoadConfig(path string, info LoadInfo) (value.Value, LoadResult, error) {
	result := LoadResult{MainPath: path}
	visited := map[string]bool{}
	v, err := loadAndExpandImports(path, info, visited, &result)
	if tErr := expandTemplates(&v); tErr != nil {
		err = multierr.Append(err, tErr)
	}
	return v, result, err
}

func loadByExtension(path string, info LoadInfo) (value.Value, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.LoadFile(path)
	case ".json", ".jsn", ".json5":
		return json.LoadFile(path, info.Strict)
	default:
		return value.Null(), fmt.Errorf("config: unrecognized extension for %q", path)
	}
}

func loadAndExpandImports(path string, info LoadInfo, visited map[string]bool, result *LoadResult) (value.Value, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if visited[abs] {
		return value.Null(), fmt.Errorf("config: import cycle at %q", path)
	}
	visited[abs] = true
	defer delete(visited, abs)

	v, err := loadByExtension(path, info)
	if err != nil {
		return value.Null(), err
	}
	err = expandImportsIn(&v, filepath.Dir(path), info, visited, result)
	return v, err
}

// expandImportsIn walks v depth-first and post-order: every child is
// fully import-expanded before this node's own "import" member (if
// any) is resolved, so an imported file's own imports are already
// flattened by the time it's merged in here.
func expandImportsIn(v *value.Value, baseDir string, info LoadInfo, visited map[string]bool, result *LoadResult) error {
	var errs error
	switch v.Type() {
	case value.TypeArray:
		elems := append([]value.Value(nil), v.Elements()...)
		for i := range elems {
			if err := expandImportsIn(&elems[i], baseDir, info, visited, result); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
		*v = value.Array(elems...)
		return errs
	case value.TypeObject:
		for i := 0; i < v.NumMembers(); i++ {
			name := v.MemberName(i)
			if name == "import" {
				continue
			}
			child := v.MemberValue(i)
			if err := expandImportsIn(&child, baseDir, info, visited, result); err != nil {
				errs = multierr.Append(errs, err)
			}
			v.SetMember(name, child)
		}
		if imp := v.Member("import"); !imp.IsNull() {
			if err := resolveImport(v, imp, baseDir, info, visited, result); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
		return errs
	default:
		return nil
	}
}

func importPaths(imp value.Value) []string {
	if imp.IsString() {
		return []string{imp.AsString("")}
	}
	if imp.IsArray() {
		out := make([]string, 0, imp.NumElts())
		for i := 0; i < imp.NumElts(); i++ {
			out = append(out, imp.Elt(i).AsString(""))
		}
		return out
	}
	return nil
}

func resolveImport(v *value.Value, imp value.Value, baseDir string, info LoadInfo, visited map[string]bool, result *LoadResult) error {
	var errs error
	base := value.Null()
	for _, rel := range importPaths(imp) {
		target := rel
		if !filepath.IsAbs(target) {
			target = filepath.Join(baseDir, target)
		}
		loaded, err := loadAndExpandImports(target, info, visited, result)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("config: import %q: %w", target, err))
			continue
		}
		result.Imports = append(result.Imports, target)
		base.Merge(loaded)

		if info.Variant != "" {
			variantPath := variantSibling(target, info.Variant)
			if variantLoaded, err := loadAndExpandImports(variantPath, info, visited, result); err == nil {
				result.Imports = append(result.Imports, variantPath)
				base.Merge(variantLoaded)
			}
		}
	}

	overrides := v.Clone()
	overrides.RemoveMember("import")
	base.Merge(overrides)
	*v = base
	return errs
}

// variantSibling inserts "_{variant}" before path's extension, e.g.
// "base.yml" with variant "dev" becomes "base_dev.yml".
func variantSibling(path, variant string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return stem + "_" + variant + ext
}
