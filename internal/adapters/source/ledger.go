package source

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/goatboard/internal/domain/model"
)

type ledgerDoc struct {
	Winners []struct {
		Player string `yaml:"player"`
		Year   int    `yaml:"year"`
	} `yaml:"winners"`
}

// LoadFinalsMVPs reads the Finals MVP ledger. The file may be YAML or
// JSON; JSON is valid YAML so one decoder serves both.
func LoadFinalsMVPs(path string) (model.FinalsMVPLedger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read finals mvp ledger %s: %w", path, err)
	}
	ledger, err := ParseFinalsMVPs(data)
	if err != nil {
		return nil, fmt.Errorf("finals mvp ledger %s: %w", path, err)
	}
	return ledger, nil
}

// ParseFinalsMVPs aggregates winners per normalized name. Years are
// sorted and unique; the count includes every listed award.
func ParseFinalsMVPs(data []byte) (model.FinalsMVPLedger, error) {
	var doc ledgerDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}

	years := make(map[string]map[int]struct{})
	ledger := make(model.FinalsMVPLedger)
	for _, w := range doc.Winners {
		key := model.NormalizeNameKey(w.Player)
		if key == "" {
			continue
		}
		entry := ledger[key]
		entry.Count++
		ledger[key] = entry
		if w.Year <= 0 {
			continue
		}
		if years[key] == nil {
			years[key] = make(map[int]struct{})
		}
		years[key][w.Year] = struct{}{}
	}
	for key, set := range years {
		list := make([]int, 0, len(set))
		for y := range set {
			list = append(list, y)
		}
		sort.Ints(list)
		entry := ledger[key]
		entry.Years = list
		ledger[key] = entry
	}
	return ledger, nil
}
