// Package export writes a conversation's structured record as YAML or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts yaml, yml and json in any case. Empty means YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want yaml or json)", s)
	}
}

// document is the exported shape: the mode followed by its record.
type document struct {
	Mode          domain.Mode `json:"mode" yaml:"mode"`
	domain.Bundle `yaml:",inline"`
}

// Write encodes the record for mode from b. Records for other modes are
// left out.
func Write(w io.Writer, format Format, mode domain.Mode, b *domain.Bundle) error {
	if !mode.Valid() {
		return fmt.Errorf("exporting: unknown mode %q", mode)
	}
	doc := document{Mode: mode, Bundle: activeOnly(mode, b)}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flushing yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("exporting: unknown format %q", format)
	}
}

func activeOnly(mode domain.Mode, b *domain.Bundle) domain.Bundle {
	var out domain.Bundle
	switch r := b.Record(mode).(type) {
	case *domain.Curriculum:
		out.Curriculum = r
	case *domain.TikTokShop:
		out.TikTokShop = r
	case *domain.GeneralChat:
		out.GeneralChat = r
	}
	return out
}
