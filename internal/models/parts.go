package models

import (
	"errors"
	"fmt"
)

type HardwareType string

const (
	TypeCPU         HardwareType = "cpu"
	TypeGPU         HardwareType = "gpu"
	TypeMotherboard HardwareType = "motherboard"
	TypeRAM         HardwareType = "ram"
	TypeStorage     HardwareType = "storage"
	TypePSU         HardwareType = "psu"
	TypeCase        HardwareType = "case"
	TypeCooler      HardwareType = "cooler"
)

// HardwareTypes lists every category in catalog order.
var HardwareTypes = []HardwareType{
	TypeCPU, TypeGPU, TypeMotherboard, TypeRAM,
	TypeStorage, TypePSU, TypeCase, TypeCooler,
}

func (t HardwareType) Valid() bool {
	for _, known := range HardwareTypes {
		if t == known {
			return true
		}
	}
	return false
}

const (
	errorUnknownType   = "unknown hardware type %q"
	errorSpecsMismatch = "hardware %s: specs of type %q do not match declared type %q"
	errorMissingSpecs  = "hardware %s: specs are missing"
	errorMissingField  = "%s is required"
	errorBadPrice      = "hardware %s: price must be positive, got %d"
	errorBadEnum       = "%s %q is not one of %v"
)

var ErrInvalidHardware = errors.New("invalid hardware")

// Specs is the category-specific specification record of a Hardware item.
// Each category has exactly one concrete implementation.
type Specs interface {
	Type() HardwareType
	validate() error
}

type CPUSpecs struct {
	Cores        int     `json:"cores" yaml:"cores"`
	Threads      int     `json:"threads" yaml:"threads"`
	BaseClock    float64 `json:"baseClock" yaml:"baseClock"`
	BoostClock   float64 `json:"boostClock" yaml:"boostClock"`
	Cache        string  `json:"cache" yaml:"cache"`
	Socket       string  `json:"socket" yaml:"socket"`
	TDP          int     `json:"tdp" yaml:"tdp"`
	Architecture string  `json:"architecture" yaml:"architecture"`
}

type GPUSpecs struct {
	VRAM             int     `json:"vram" yaml:"vram"`
	VRAMType         string  `json:"vramType" yaml:"vramType"`
	BaseClock        int     `json:"baseClock" yaml:"baseClock"`
	BoostClock       int     `json:"boostClock" yaml:"boostClock"`
	CUDACores        *int    `json:"cudaCores,omitempty" yaml:"cudaCores,omitempty"`
	StreamProcessors *int    `json:"streamProcessors,omitempty" yaml:"streamProcessors,omitempty"`
	TDP              int     `json:"tdp" yaml:"tdp"`
	Length           int     `json:"length" yaml:"length"`
	Slots            float64 `json:"slots" yaml:"slots"`
}

type MotherboardSpecs struct {
	Socket      string `json:"socket" yaml:"socket"`
	Chipset     string `json:"chipset" yaml:"chipset"`
	FormFactor  string `json:"formFactor" yaml:"formFactor"`
	MemorySlots int    `json:"memorySlots" yaml:"memorySlots"`
	MaxMemory   int    `json:"maxMemory" yaml:"maxMemory"`
	MemoryType  string `json:"memoryType" yaml:"memoryType"`
	PCISlots    int    `json:"pciSlots" yaml:"pciSlots"`
	M2Slots     int    `json:"m2Slots" yaml:"m2Slots"`
	SATASlots   int    `json:"sataSlots" yaml:"sataSlots"`
}

type RAMSpecs struct {
	Capacity   int     `json:"capacity" yaml:"capacity"`
	Speed      int     `json:"speed" yaml:"speed"`
	MemoryType string  `json:"type" yaml:"type"`
	Timing     string  `json:"timing" yaml:"timing"`
	Voltage    float64 `json:"voltage" yaml:"voltage"`
	Modules    int     `json:"modules" yaml:"modules"`
}

type StorageKind string

const (
	StorageSSD  StorageKind = "SSD"
	StorageHDD  StorageKind = "HDD"
	StorageNVMe StorageKind = "NVMe"
)

type StorageSpecs struct {
	Capacity   int         `json:"capacity" yaml:"capacity"`
	Interface  string      `json:"interface" yaml:"interface"`
	ReadSpeed  int         `json:"readSpeed" yaml:"readSpeed"`
	WriteSpeed int         `json:"writeSpeed" yaml:"writeSpeed"`
	FormFactor string      `json:"formFactor" yaml:"formFactor"`
	Kind       StorageKind `json:"type" yaml:"type"`
}

type Modularity string

const (
	ModularFull Modularity = "Full"
	ModularSemi Modularity = "Semi"
	ModularNon  Modularity = "Non"
)

type PSUSpecs struct {
	Wattage    int        `json:"wattage" yaml:"wattage"`
	Efficiency string     `json:"efficiency" yaml:"efficiency"`
	Modular    Modularity `json:"modular" yaml:"modular"`
	FormFactor string     `json:"formFactor" yaml:"formFactor"`
	FanSize    int        `json:"fanSize" yaml:"fanSize"`
}

type CaseSpecs struct {
	FormFactor      string `json:"formFactor" yaml:"formFactor"`
	MaxGPULength    int    `json:"maxGpuLength" yaml:"maxGpuLength"`
	MaxCoolerHeight int    `json:"maxCoolerHeight" yaml:"maxCoolerHeight"`
	DriveBays       string `json:"driveBays" yaml:"driveBays"`
	Fans            string `json:"fans" yaml:"fans"`
	Material        string `json:"material" yaml:"material"`
}

type CoolerKind string

const (
	CoolerAir    CoolerKind = "Air"
	CoolerAIO    CoolerKind = "AIO"
	CoolerCustom CoolerKind = "Custom"
)

type CoolerSpecs struct {
	Kind         CoolerKind `json:"type" yaml:"type"`
	TDP          int        `json:"tdp" yaml:"tdp"`
	FanSize      int        `json:"fanSize" yaml:"fanSize"`
	Height       *int       `json:"height,omitempty" yaml:"height,omitempty"`
	RadiatorSize *int       `json:"radiatorSize,omitempty" yaml:"radiatorSize,omitempty"`
	Noise        float64    `json:"noise" yaml:"noise"`
}

func (CPUSpecs) Type() HardwareType         { return TypeCPU }
func (GPUSpecs) Type() HardwareType         { return TypeGPU }
func (MotherboardSpecs) Type() HardwareType { return TypeMotherboard }
func (RAMSpecs) Type() HardwareType         { return TypeRAM }
func (StorageSpecs) Type() HardwareType     { return TypeStorage }
func (PSUSpecs) Type() HardwareType         { return TypePSU }
func (CaseSpecs) Type() HardwareType        { return TypeCase }
func (CoolerSpecs) Type() HardwareType      { return TypeCooler }

func (s CPUSpecs) validate() error {
	return requireFields(s.Socket != "", "socket", s.Cores > 0, "cores", s.Threads > 0, "threads")
}

func (s GPUSpecs) validate() error {
	return requireFields(s.VRAM > 0, "vram", s.Length > 0, "length", s.Slots > 0, "slots")
}

func (s MotherboardSpecs) validate() error {
	return requireFields(s.Socket != "", "socket", s.FormFactor != "", "formFactor", s.MemoryType != "", "memoryType")
}

func (s RAMSpecs) validate() error {
	return requireFields(s.Capacity > 0, "capacity", s.MemoryType != "", "type")
}

func (s StorageSpecs) validate() error {
	if err := requireFields(s.Capacity > 0, "capacity"); err != nil {
		return err
	}
	return oneOf("type", s.Kind, StorageSSD, StorageHDD, StorageNVMe)
}

func (s PSUSpecs) validate() error {
	if err := requireFields(s.Wattage > 0, "wattage"); err != nil {
		return err
	}
	return oneOf("modular", s.Modular, ModularFull, ModularSemi, ModularNon)
}

func (s CaseSpecs) validate() error {
	return requireFields(s.FormFactor != "", "formFactor", s.MaxGPULength > 0, "maxGpuLength", s.MaxCoolerHeight > 0, "maxCoolerHeight")
}

func (s CoolerSpecs) validate() error {
	if err := requireFields(s.TDP > 0, "tdp"); err != nil {
		return err
	}
	return oneOf("type", s.Kind, CoolerAir, CoolerAIO, CoolerCustom)
}

func requireFields(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if ok, _ := pairs[i].(bool); !ok {
			return fmt.Errorf(errorMissingField, pairs[i+1])
		}
	}
	return nil
}

func oneOf[T ~string](field string, v T, allowed ...T) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf(errorBadEnum, field, v, allowed)
}

// Hardware is one catalog entry. Specs always matches Type.
type Hardware struct {
	ID          string       `json:"id"`
	Type        HardwareType `json:"type"`
	Name        string       `json:"name"`
	Brand       string       `json:"brand"`
	Model       string       `json:"model"`
	Price       int64        `json:"price"`
	Image       string       `json:"image"`
	Specs       Specs        `json:"specs"`
	Benchmark   *int         `json:"benchmark,omitempty"`
	TDP         *int         `json:"tdp,omitempty"`
	ReleaseDate string       `json:"releaseDate"`
}

// Validate checks the declared type, the price and that Specs has the shape
// the type requires.
func (h Hardware) Validate() error {
	if !h.Type.Valid() {
		return fmt.Errorf("%w: "+errorUnknownType, ErrInvalidHardware, h.Type)
	}
	if h.Specs == nil {
		return fmt.Errorf("%w: "+errorMissingSpecs, ErrInvalidHardware, h.ID)
	}
	if h.Specs.Type() != h.Type {
		return fmt.Errorf("%w: "+errorSpecsMismatch, ErrInvalidHardware, h.ID, h.Specs.Type(), h.Type)
	}
	if h.Price <= 0 {
		return fmt.Errorf("%w: "+errorBadPrice, ErrInvalidHardware, h.ID, h.Price)
	}
	if err := h.Specs.validate(); err != nil {
		return fmt.Errorf("%w: hardware %s: %v", ErrInvalidHardware, h.ID, err)
	}
	return nil
}

func (h Hardware) CPU() (CPUSpecs, bool) {
	s, ok := h.Specs.(CPUSpecs)
	return s, ok
}

func (h Hardware) GPU() (GPUSpecs, bool) {
	s, ok := h.Specs.(GPUSpecs)
	return s, ok
}

func (h Hardware) Motherboard() (MotherboardSpecs, bool) {
	s, ok := h.Specs.(MotherboardSpecs)
	return s, ok
}

func (h Hardware) RAM() (RAMSpecs, bool) {
	s, ok := h.Specs.(RAMSpecs)
	return s, ok
}

func (h Hardware) Storage() (StorageSpecs, bool) {
	s, ok := h.Specs.(StorageSpecs)
	return s, ok
}

func (h Hardware) PSU() (PSUSpecs, bool) {
	s, ok := h.Specs.(PSUSpecs)
	return s, ok
}

func (h Hardware) Case() (CaseSpecs, bool) {
	s, ok := h.Specs.(CaseSpecs)
	return s, ok
}

func (h Hardware) Cooler() (CoolerSpecs, bool) {
	s, ok := h.Specs.(CoolerSpecs)
	return s, ok
}
