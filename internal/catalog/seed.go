package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Seed returns the six demo products shipped with the storefront.
func Seed() []Product {
	products, err := ParseYAML(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: bad embedded seed: %v", err))
	}
	return products
}

func ParseYAML(data []byte) ([]Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	return f.Products, nil
}

func LoadFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseYAML(data)
}
