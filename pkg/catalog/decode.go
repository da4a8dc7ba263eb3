package catalog

import (
	"bytes"
	"fmt"

	"github.com/Aquilabot/KreaPC-Market/internal/models"
	"gopkg.in/yaml.v3"
)

type document struct {
	Hardware  []hardwareRecord  `yaml:"hardware"`
	Merchants []models.Merchant `yaml:"merchants"`
}

// hardwareRecord holds specs undecoded until the type tag is known.
type hardwareRecord struct {
	ID          string              `yaml:"id"`
	Type        models.HardwareType `yaml:"type"`
	Name        string              `yaml:"name"`
	Brand       string              `yaml:"brand"`
	Model       string              `yaml:"model"`
	Price       int64               `yaml:"price"`
	Image       string              `yaml:"image"`
	Benchmark   *int                `yaml:"benchmark"`
	TDP         *int                `yaml:"tdp"`
	ReleaseDate string              `yaml:"releaseDate"`
	Specs       yaml.Node           `yaml:"specs"`
}

func (r hardwareRecord) toHardware() (models.Hardware, error) {
	specs, err := decodeSpecs(r.Type, &r.Specs)
	if err != nil {
		return models.Hardware{}, fmt.Errorf("hardware %s: %w", r.ID, err)
	}

	return models.Hardware{
		ID:          r.ID,
		Type:        r.Type,
		Name:        r.Name,
		Brand:       r.Brand,
		Model:       r.Model,
		Price:       r.Price,
		Image:       r.Image,
		Specs:       specs,
		Benchmark:   r.Benchmark,
		TDP:         r.TDP,
		ReleaseDate: r.ReleaseDate,
	}, nil
}

func decodeSpecs(t models.HardwareType, node *yaml.Node) (models.Specs, error) {
	if node.Kind == 0 {
		return nil, fmt.Errorf("specs are missing")
	}

	switch t {
	case models.TypeCPU:
		return decodeInto[models.CPUSpecs](node)
	case models.TypeGPU:
		return decodeInto[models.GPUSpecs](node)
	case models.TypeMotherboard:
		return decodeInto[models.MotherboardSpecs](node)
	case models.TypeRAM:
		return decodeInto[models.RAMSpecs](node)
	case models.TypeStorage:
		return decodeInto[models.StorageSpecs](node)
	case models.TypePSU:
		return decodeInto[models.PSUSpecs](node)
	case models.TypeCase:
		return decodeInto[models.CaseSpecs](node)
	case models.TypeCooler:
		return decodeInto[models.CoolerSpecs](node)
	}
	return nil, fmt.Errorf("unknown hardware type %q", t)
}

// decodeInto re-encodes node so unknown spec keys are rejected like the
// rest of the document; Node.Decode does not honour KnownFields.
func decodeInto[T models.Specs](node *yaml.Node) (models.Specs, error) {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return nil, err
	}

	var s T
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("specs: %w", err)
	}
	return s, nil
}
