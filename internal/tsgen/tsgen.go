// Package tsgen renders investor profiles as a TypeScript module exporting a
// single object literal.
package tsgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sharkfolio/sharkgen/internal/format"
	"github.com/sharkfolio/sharkgen/internal/model"
)

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Options controls rendering.
type Options struct {
	ExportName string
	Variant    model.Variant
}

// ValidateExportName checks that name can be used as a const binding.
func ValidateExportName(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("export name %q is not a valid identifier", name)
	}
	return nil
}

type field struct {
	key   string
	value string
}

// Render writes the module to w. Profiles and their investments are emitted
// in the order given. Every value is a string literal escaped with JSON
// rules, which TypeScript accepts unchanged.
func Render(w io.Writer, profiles []model.Profile, opts Options) error {
	if err := ValidateExportName(opts.ExportName); err != nil {
		return err
	}
	style := format.StyleFor(opts.Variant)
	detailed := opts.Variant != model.VariantSimple

	var b bytes.Buffer
	fmt.Fprintf(&b, "export const %s = {\n", opts.ExportName)
	for _, p := range profiles {
		fmt.Fprintf(&b, "  %s: {\n", quote(p.Slug))
		fmt.Fprintf(&b, "    name: %s,\n", quote(p.Name))
		fmt.Fprintf(&b, "    role: %s,\n", quote(p.Role))
		fmt.Fprintf(&b, "    image: %s,\n", quote(p.Image))
		b.WriteString("    investments: [\n")
		for _, inv := range p.Investments {
			if detailed {
				writeBlock(&b, detailedFields(inv, style))
			} else {
				writeLine(&b, simpleFields(inv, style))
			}
		}
		b.WriteString("    ],\n")
		b.WriteString("  },\n")
	}
	b.WriteString("};\n")

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("writing module: %w", err)
	}
	return nil
}

func simpleFields(inv model.Investment, s format.Style) []field {
	return []field{
		{"company", inv.Company},
		{"amount", s.Currency(inv.Amount)},
		{"equity", s.Equity(inv.Equity)},
	}
}

func detailedFields(inv model.Investment, s format.Style) []field {
	return []field{
		{"company", inv.Company},
		{"industry", inv.Industry},
		{"season", inv.Season},
		{"amount", s.Currency(inv.Amount)},
		{"equity", s.Equity(inv.Equity)},
		{"debt", s.Debt(inv.Debt)},
		{"dealValuation", s.Currency(inv.DealValuation)},
		{"yearlyRevenue", s.Currency(inv.YearlyRevenue)},
		{"startedIn", inv.StartedIn},
		{"location", format.Location(inv.City, inv.State)},
		{"originalAsk", s.Currency(inv.OriginalAsk)},
	}
}

func writeBlock(b *bytes.Buffer, fields []field) {
	b.WriteString("      {\n")
	for _, f := range fields {
		fmt.Fprintf(b, "        %s: %s,\n", f.key, quote(f.value))
	}
	b.WriteString("      },\n")
}

func writeLine(b *bytes.Buffer, fields []field) {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.key + ": " + quote(f.value)
	}
	fmt.Fprintf(b, "      { %s },\n", strings.Join(parts, ", "))
}

// quote returns s as a double-quoted string literal.
func quote(s string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // encoding a string cannot fail
	return strings.TrimSuffix(b.String(), "\n")
}

// WriteFile renders the module and replaces path with it. The parent
// directory is created if needed, and the file is written through a
// temporary file in the same directory so a failed run leaves any previous
// module intact.
func WriteFile(path string, profiles []model.Profile, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, profiles, opts); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", filepath.Base(path), err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
