package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"sort"
)

// DefaultAssetColors seeds the registry for a fresh user.
var DefaultAssetColors = map[string]string{
	"Criptomoedas": "#af7aa1",
	"Fundos":       "#e15759",
	"Imobiliário":  "#59a14f",
	"Outros":       "#bab0ab",
	"Poupança":     "#000000",
	"QVDE":         "#0c91e2",
	"S&P 500":      "#e80003",
}

var hexColorRE = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// AssetColorRegistry maps asset names to display colors, persisted as a
// two-column CSV. Unknown assets get a random color assigned on first lookup.
type AssetColorRegistry struct {
	path string
}

// NewAssetColorRegistry creates a registry at path.
func NewAssetColorRegistry(path string) *AssetColorRegistry {
	return &AssetColorRegistry{path: path}
}

// Load returns the persisted palette. A missing or unreadable file is reset
// to the default palette.
func (r *AssetColorRegistry) Load() (map[string]string, error) {
	rows, err := readCSVFile(r.path)
	if err == ErrNotFound {
		return r.resetDefaults()
	}
	if err != nil {
		return nil, err
	}

	colors := make(map[string]string)
	for _, row := range rows {
		if len(row) != 2 || row[0] == "Asset" {
			continue
		}
		if !hexColorRE.MatchString(row[1]) {
			continue
		}
		colors[row[0]] = row[1]
	}
	if len(colors) == 0 {
		return r.resetDefaults()
	}
	return colors, nil
}

// ColorFor returns the color for an asset, assigning and persisting a random
// one when the asset is new.
func (r *AssetColorRegistry) ColorFor(asset string) (string, error) {
	colors, err := r.Load()
	if err != nil {
		return "", err
	}
	if color, ok := colors[asset]; ok {
		return color, nil
	}

	color := randomHexColor()
	colors[asset] = color
	if err := r.save(colors); err != nil {
		return "", err
	}
	return color, nil
}

// Reset overwrites the registry with the default palette.
func (r *AssetColorRegistry) Reset() error {
	_, err := r.resetDefaults()
	return err
}

func (r *AssetColorRegistry) resetDefaults() (map[string]string, error) {
	colors := make(map[string]string, len(DefaultAssetColors))
	for asset, color := range DefaultAssetColors {
		colors[asset] = color
	}
	if err := r.save(colors); err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *AssetColorRegistry) save(colors map[string]string) error {
	assets := make([]string, 0, len(colors))
	for asset := range colors {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Asset", "Color"}); err != nil {
		return err
	}
	for _, asset := range assets {
		if err := w.Write([]string{asset, colors[asset]}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return os.WriteFile(r.path, buf.Bytes(), 0o644)
}

func randomHexColor() string {
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}
