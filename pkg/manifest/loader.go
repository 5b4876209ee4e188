package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyManifest is returned when a file declares nothing.
	ErrEmptyManifest = errors.New("manifest: no declarations")
	// ErrDuplicateDeclaration is returned when two declarations share a name.
	ErrDuplicateDeclaration = errors.New("manifest: duplicate declaration")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("manifest: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS walks fsys and merges every JSON or YAML manifest it finds.
// Declaration names must be unique across files.
func LoadFS(fsys fs.FS) (*Manifest, error) {
	if fsys == nil {
		return nil, ErrEmptyManifest
	}

	merged := &Manifest{}
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("manifest: read %s: %w", path, err)
		}
		m, err := Parse(data, path)
		if err != nil {
			return err
		}
		for _, decl := range m.Declarations {
			if prev, exists := seen[decl.Name]; exists {
				return fmt.Errorf("%w %q (files %s and %s)", ErrDuplicateDeclaration, decl.Name, prev, path)
			}
			seen[decl.Name] = path
			merged.Declarations = append(merged.Declarations, decl)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(merged.Declarations) == 0 {
		return nil, ErrEmptyManifest
	}
	return merged, nil
}

// Parse decodes a JSON or YAML manifest and validates it. source names the
// input in error messages and defaults declaration locations.
func Parse(data []byte, source string) (*Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: file %s is empty", ErrEmptyManifest, source)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		m = Manifest{}
		if yamlErr := yaml.Unmarshal(data, &m); yamlErr != nil {
			return nil, fmt.Errorf("manifest: parse %s: invalid JSON or YAML: %w", source, yamlErr)
		}
	}
	m.Source = source

	if len(m.Declarations) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyManifest, source)
	}

	seen := make(map[string]struct{}, len(m.Declarations))
	for i := range m.Declarations {
		decl := &m.Declarations[i]
		normalise(decl, source)
		if err := validateDeclaration(*decl, i); err != nil {
			return nil, err
		}
		if _, exists := seen[decl.Name]; exists {
			return nil, fmt.Errorf("%w %q in %s", ErrDuplicateDeclaration, decl.Name, source)
		}
		seen[decl.Name] = struct{}{}
	}
	return &m, nil
}

func normalise(decl *Declaration, source string) {
	decl.Name = strings.TrimSpace(decl.Name)
	decl.TemplateFile = strings.TrimSpace(decl.TemplateFile)
	if decl.Location.File == "" {
		decl.Location.File = source
	}
	if decl.AllowedComments != nil && decl.AllowedComments.Location.IsZero() {
		decl.AllowedComments.Location = decl.Location
	}
	for i := range decl.Cases {
		decl.Cases[i].Name = strings.TrimSpace(decl.Cases[i].Name)
	}
}

func validateDeclaration(decl Declaration, index int) error {
	err := validate.Struct(decl)
	if err == nil {
		return nil
	}

	label := decl.Name
	if label == "" {
		label = fmt.Sprintf("#%d", index)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("manifest: declaration %q: %w", label, err)
	}
	fe := fieldErrs[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	return fmt.Errorf("manifest: declaration %q: %s failed %s", label, field, fe.Tag())
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
