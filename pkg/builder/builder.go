package builder

import (
	"errors"
	"fmt"

	"github.com/Aquilabot/KreaPC-Market/internal/models"
	"github.com/Aquilabot/KreaPC-Market/pkg/compatibility"
	"github.com/google/uuid"
)

const (
	errorUnknownPart = "%s %q not found"
	errorWrongType   = "%q is a %s, expected %s"
	defaultBuildName = "Custom build"
)

var (
	ErrUnknownPart   = errors.New("unknown part")
	ErrWrongCategory = errors.New("part in wrong category")
)

type Catalog interface {
	FindHardware(id string) (models.Hardware, bool)
}

// Request names the selected part per category. Empty ids leave a slot
// unselected.
type Request struct {
	Name        string   `json:"name"`
	CPU         string   `json:"cpu"`
	GPU         string   `json:"gpu"`
	Motherboard string   `json:"motherboard"`
	RAM         string   `json:"ram"`
	Storage     []string `json:"storage"`
	PSU         string   `json:"psu"`
	Case        string   `json:"case"`
	Cooler      string   `json:"cooler"`
}

type Assembler struct {
	catalog Catalog
	checker *compatibility.Checker
}

func NewAssembler(catalog Catalog, checker *compatibility.Checker) *Assembler {
	if checker == nil {
		checker = compatibility.NewChecker()
	}
	return &Assembler{catalog: catalog, checker: checker}
}

// Assemble resolves every id in req, totals price and benchmark, and
// evaluates compatibility. It fails with ErrUnknownPart or
// ErrWrongCategory before any evaluation happens.
func (a *Assembler) Assemble(req Request) (models.BuildConfig, error) {
	build := models.BuildConfig{
		ID:   uuid.NewString(),
		Name: req.Name,
	}
	if build.Name == "" {
		build.Name = defaultBuildName
	}

	slots := []struct {
		id  string
		typ models.HardwareType
		dst **models.Hardware
	}{
		{req.CPU, models.TypeCPU, &build.CPU},
		{req.GPU, models.TypeGPU, &build.GPU},
		{req.Motherboard, models.TypeMotherboard, &build.Motherboard},
		{req.RAM, models.TypeRAM, &build.RAM},
		{req.PSU, models.TypePSU, &build.PSU},
		{req.Case, models.TypeCase, &build.Case},
		{req.Cooler, models.TypeCooler, &build.Cooler},
	}
	for _, slot := range slots {
		if slot.id == "" {
			continue
		}
		h, err := a.resolve(slot.id, slot.typ)
		if err != nil {
			return models.BuildConfig{}, err
		}
		*slot.dst = &h
	}

	for _, id := range req.Storage {
		h, err := a.resolve(id, models.TypeStorage)
		if err != nil {
			return models.BuildConfig{}, err
		}
		build.Storage = append(build.Storage, h)
	}

	for _, h := range build.Parts() {
		build.TotalPrice += h.Price
		if h.Benchmark != nil {
			build.EstimatedBenchmark += *h.Benchmark
		}
	}
	build.Compatibility = a.checker.Evaluate(compatibility.PartsOf(build))

	return build, nil
}

func (a *Assembler) resolve(id string, want models.HardwareType) (models.Hardware, error) {
	h, ok := a.catalog.FindHardware(id)
	if !ok {
		return models.Hardware{}, fmt.Errorf("%w: "+errorUnknownPart, ErrUnknownPart, want, id)
	}
	if h.Type != want {
		return models.Hardware{}, fmt.Errorf("%w: "+errorWrongType, ErrWrongCategory, id, h.Type, want)
	}
	return h, nil
}
