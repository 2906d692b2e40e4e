package locale

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// TableDocument is the file format read by LoadTableFactory:
//
//	locales:
//	  de-DE:
//	    numeric:
//	      decimal: ","
//	      grouping_separator: "."
//	      grouping: [3]
//	    time:
//	      layouts:
//	        short_date: dd.MM.yy
//	        time: HH:mm:ss
//	        date_time: dd.MM.yyyy HH:mm:ss
//	        full: EEEE, d. MMMM y HH:mm:ss zzzz
//	      first_weekday: monday
type TableDocument struct {
	Locales map[string]LocaleDocument `json:"locales" yaml:"locales" validate:"dive,keys,required,endkeys"`
}

type LocaleDocument struct {
	Numeric *NumericDocument `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Time    *TimeDocument    `json:"time,omitempty" yaml:"time,omitempty"`
}

type NumericDocument struct {
	Decimal           string `json:"decimal" yaml:"decimal" validate:"required"`
	GroupingSeparator string `json:"grouping_separator" yaml:"grouping_separator"`
	Grouping          []int  `json:"grouping" yaml:"grouping" validate:"dive,min=-1,ne=0"`
}

type TimeDocument struct {
	Layouts      map[string]string `json:"layouts" yaml:"layouts" validate:"required,dive,keys,oneof=short_date time date_time full,endkeys,required"`
	AM           string            `json:"am,omitempty" yaml:"am,omitempty"`
	PM           string            `json:"pm,omitempty" yaml:"pm,omitempty"`
	FirstWeekday string            `json:"first_weekday" yaml:"first_weekday" validate:"required"`
}

// NewNumericDocument converts n into its file representation.
func NewNumericDocument(n Numeric) *NumericDocument {
	return &NumericDocument{
		Decimal:           n.DecimalSeparator(),
		GroupingSeparator: n.GroupingSeparator(),
		Grouping:          n.Grouping(),
	}
}

// NewTimeDocument converts t into its file representation.
func NewTimeDocument(t Time) *TimeDocument {
	layouts := make(map[string]string, styleCount)
	for style, layout := range t.Layouts() {
		layouts[style.String()] = layout
	}
	return &TimeDocument{
		Layouts:      layouts,
		AM:           t.AM(),
		PM:           t.PM(),
		FirstWeekday: strings.ToLower(t.FirstWeekday().String()),
	}
}

func (d *NumericDocument) value() (Numeric, error) {
	return NewNumeric(d.Decimal, d.GroupingSeparator, d.Grouping)
}

func (d *TimeDocument) value() (Time, error) {
	layouts := make(TimeLayouts, len(d.Layouts))
	for name, layout := range d.Layouts {
		style, ok := ParseTimeStyle(name)
		if !ok {
			return Time{}, fmt.Errorf("%w: unknown time style %q", ErrMalformed, name)
		}
		layouts[style] = layout
	}
	first, err := ParseWeekday(d.FirstWeekday)
	if err != nil {
		return Time{}, err
	}
	return NewTime(layouts, d.AM, d.PM, first)
}

var (
	documentValidator     *validator.Validate
	documentValidatorOnce sync.Once
)

// validateDocument checks the document shape; value invariants are left to
// NewNumeric and NewTime.
func validateDocument(d TableDocument) error {
	documentValidatorOnce.Do(func() {
		documentValidator = validator.New(validator.WithRequiredStructEnabled())
		documentValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})

	if err := documentValidator.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrMalformed, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// Entries validates the document and converts it to table entries.
func (d TableDocument) Entries() (map[string]TableEntry, error) {
	if err := validateDocument(d); err != nil {
		return nil, err
	}

	entries := make(map[string]TableEntry, len(d.Locales))
	for id, doc := range d.Locales {
		var entry TableEntry
		if doc.Numeric != nil {
			n, err := doc.Numeric.value()
			if err != nil {
				return nil, fmt.Errorf("locale %s numeric: %w", id, err)
			}
			entry.Numeric = &n
		}
		if doc.Time != nil {
			t, err := doc.Time.value()
			if err != nil {
				return nil, fmt.Errorf("locale %s time: %w", id, err)
			}
			entry.Time = &t
		}
		entries[id] = entry
	}
	return entries, nil
}

// LoadTableFactory reads table documents from paths, JSON or YAML by file
// extension. Later files override earlier ones per locale and per section.
// All data is validated before the factory is returned.
func LoadTableFactory(paths []string, opts ...TableOption) (*TableFactory, error) {
	if len(paths) == 0 {
		return nil, errors.New("locale: no table paths configured")
	}

	merged := TableDocument{Locales: make(map[string]LocaleDocument)}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", path, err)
		}

		doc, err := decodeTableFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("locale: decode %s: %w", path, err)
		}
		mergeTableDocuments(&merged, doc)
	}

	entries, err := merged.Entries()
	if err != nil {
		return nil, fmt.Errorf("locale: validate tables: %w", err)
	}
	return NewTableFactory(entries, opts...)
}

func decodeTableFile(path string, data []byte) (TableDocument, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeTableJSON(data)
	case ".yaml", ".yml":
		return decodeTableYAML(data)
	default:
		return TableDocument{}, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeTableJSON(data []byte) (TableDocument, error) {
	var doc TableDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return TableDocument{}, fmt.Errorf("json parse error: %w", err)
	}
	return doc, nil
}

func decodeTableYAML(data []byte) (TableDocument, error) {
	var doc TableDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return TableDocument{}, errors.New("empty table yaml")
		}
		return TableDocument{}, fmt.Errorf("yaml parse error: %w", err)
	}
	return doc, nil
}

// mergeTableDocuments layers src over dst, keyed by canonical identifier.
func mergeTableDocuments(dst *TableDocument, src TableDocument) {
	byCanonical := make(map[string]string, len(dst.Locales))
	for id := range dst.Locales {
		byCanonical[Canonical(id)] = id
	}

	for id, doc := range src.Locales {
		key := id
		if existing, ok := byCanonical[Canonical(id)]; ok {
			key = existing
		} else {
			byCanonical[Canonical(id)] = id
		}

		current := dst.Locales[key]
		if doc.Numeric != nil {
			current.Numeric = doc.Numeric
		}
		if doc.Time != nil {
			current.Time = doc.Time
		}
		dst.Locales[key] = current
	}
}
