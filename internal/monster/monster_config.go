package monster

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"nextlevel/internal/mathutil"

	"gopkg.in/yaml.v3"
)

//go:embed variants.yaml
var variantsYAML []byte

// Variant holds the stats of one enemy kind.
type Variant struct {
	Key            string  `yaml:"key"`
	Name           string  `yaml:"name"`
	Sprite         string  `yaml:"sprite"`
	Speed          float64 `yaml:"speed"`
	Health         int     `yaml:"health"`
	VisionRange    float64 `yaml:"vision_range"`
	SpawnWeight    float64 `yaml:"spawn_weight"`
	WeightPerLevel float64 `yaml:"weight_per_level"`
}

// Weight is the relative spawn chance of the variant on a level.
func (v *Variant) Weight(level int) float64 {
	return v.SpawnWeight + v.WeightPerLevel*float64(level)
}

// VariantTable is the ordered list of enemy kinds. Order matters: spawn
// draws index into it.
type VariantTable struct {
	Variants []Variant `yaml:"variants"`
}

// Variants is the built-in table.
var Variants = MustLoadVariantTable(variantsYAML)

func validateVariantTable(table *VariantTable) error {
	if len(table.Variants) == 0 {
		return fmt.Errorf("variant table is empty")
	}

	seen := make(map[string]bool)
	var problems []string
	for _, v := range table.Variants {
		switch {
		case v.Key == "":
			problems = append(problems, "variant without key")
		case seen[v.Key]:
			problems = append(problems, fmt.Sprintf("duplicate variant key '%s'", v.Key))
		case v.Speed <= 0 || v.Health <= 0 || v.VisionRange < 0:
			problems = append(problems, fmt.Sprintf("variant '%s' has invalid stats", v.Key))
		case v.Sprite == "":
			problems = append(problems, fmt.Sprintf("variant '%s' has no sprite", v.Key))
		}
		seen[v.Key] = true
	}

	if len(problems) > 0 {
		return fmt.Errorf("variant table errors:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

// LoadVariantTable decodes and validates a variant table.
func LoadVariantTable(data []byte) (*VariantTable, error) {
	var table VariantTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse variant YAML: %w", err)
	}
	if err := validateVariantTable(&table); err != nil {
		return nil, err
	}
	return &table, nil
}

// MustLoadVariantTable loads a variant table and panics on error
func MustLoadVariantTable(data []byte) *VariantTable {
	table, err := LoadVariantTable(data)
	if err != nil {
		panic("Failed to load variant table: " + err.Error())
	}
	return table
}

// ByKey returns the variant with the given key.
func (t *VariantTable) ByKey(key string) (*Variant, error) {
	for i := range t.Variants {
		if t.Variants[i].Key == key {
			return &t.Variants[i], nil
		}
	}
	return nil, fmt.Errorf("variant with key '%s' not found", key)
}

// Weights returns the spawn weight of every variant on level, in table order.
func (t *VariantTable) Weights(level int) []float64 {
	weights := make([]float64, len(t.Variants))
	for i := range t.Variants {
		weights[i] = t.Variants[i].Weight(level)
	}
	return weights
}

// Choose draws a variant for level by weight. It falls back to the first
// variant if every weight is non-positive.
func (t *VariantTable) Choose(rng *rand.Rand, level int) *Variant {
	i := mathutil.WeightedIndex(rng, t.Weights(level))
	if i < 0 {
		i = 0
	}
	return &t.Variants[i]
}
