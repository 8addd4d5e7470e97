package applicant

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed classes.yaml
var defaultClasses []byte

var (
	// ErrUnknownClass is returned when a class name is not in the catalog.
	ErrUnknownClass = errors.New("unknown employee class")
	// ErrUnknownLevel is returned for a level index outside the class ladder.
	ErrUnknownLevel = errors.New("unknown employee level")
)

// Level is one rung of a class's career ladder.
type Level struct {
	Name     string  `yaml:"name"`
	Pay      float64 `yaml:"pay"`
	HireCost float64 `yaml:"hire_cost"`
}

// Class is an employee class such as Worker or Wizard.
type Class struct {
	Name   string  `yaml:"name"`
	Levels []Level `yaml:"levels"`
}

// Level returns the level at index i.
func (c *Class) Level(i int) (*Level, error) {
	if i < 0 || i >= len(c.Levels) {
		return nil, fmt.Errorf("%w: %s has no level %d", ErrUnknownLevel, c.Name, i)
	}
	return &c.Levels[i], nil
}

// Catalog lists the classes available for hire.
type Catalog struct {
	Classes []Class `yaml:"classes"`
}

// ParseCatalog decodes a YAML class catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse class catalog: %w", err)
	}
	for _, class := range c.Classes {
		if class.Name == "" {
			return nil, errors.New("class catalog: class without a name")
		}
		if len(class.Levels) == 0 {
			return nil, fmt.Errorf("class catalog: %s has no levels", class.Name)
		}
	}
	return &c, nil
}

// DefaultCatalog returns the built-in class catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultClasses)
	if err != nil {
		panic(err)
	}
	return c
}

// Class looks up a class by name.
func (c *Catalog) Class(name string) (*Class, error) {
	for i := range c.Classes {
		if c.Classes[i].Name == name {
			return &c.Classes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// Names returns the class names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Classes))
	for i, class := range c.Classes {
		names[i] = class.Name
	}
	return names
}
