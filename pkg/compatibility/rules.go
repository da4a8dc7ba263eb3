package compatibility

import (
	"fmt"

	"github.com/Aquilabot/KreaPC-Market/internal/models"
	"github.com/Aquilabot/KreaPC-Market/internal/utils"
)

const (
	CodeSocketMismatch         = "SOCKET_MISMATCH"
	CodeMemoryTypeMismatch     = "MEMORY_TYPE_MISMATCH"
	CodeMemoryCapacityExceeded = "MEMORY_CAPACITY_EXCEEDED"
	CodeFormFactorUnsupported  = "FORM_FACTOR_UNSUPPORTED"
	CodeGPUTooLong             = "GPU_TOO_LONG"
	CodeCoolerTooTall          = "COOLER_TOO_TALL"
	CodePSUInsufficient        = "PSU_INSUFFICIENT"
	CodeM2SlotsExceeded        = "M2_SLOTS_EXCEEDED"
	CodeCoolerUnderrated       = "COOLER_UNDERRATED"
)

func DefaultRules() []Rule {
	return []Rule{
		RuleFunc(SocketRule),
		RuleFunc(MemoryTypeRule),
		RuleFunc(MemoryCapacityRule),
		RuleFunc(FormFactorRule),
		RuleFunc(GPUClearanceRule),
		RuleFunc(CoolerClearanceRule),
		RuleFunc(PowerRule),
		RuleFunc(M2SlotRule),
		RuleFunc(CoolingCapacityRule),
	}
}

func issue(severity models.Severity, code, message, suggestion string, parts ...models.HardwareType) []models.CompatibilityIssue {
	return []models.CompatibilityIssue{{
		Severity:      severity,
		Code:          code,
		Message:       message,
		AffectedParts: parts,
		Suggestion:    suggestion,
	}}
}

func SocketRule(p Parts) []models.CompatibilityIssue {
	if p.CPU == nil || p.Motherboard == nil {
		return nil
	}
	cpu, _ := p.CPU.CPU()
	mb, _ := p.Motherboard.Motherboard()
	if cpu.Socket == mb.Socket {
		return nil
	}
	return issue(models.SeverityError, CodeSocketMismatch,
		fmt.Sprintf("%s uses socket %s but %s provides %s", p.CPU.Name, cpu.Socket, p.Motherboard.Name, mb.Socket),
		fmt.Sprintf("Choose a motherboard with a %s socket", cpu.Socket),
		models.TypeCPU, models.TypeMotherboard)
}

func MemoryTypeRule(p Parts) []models.CompatibilityIssue {
	if p.RAM == nil || p.Motherboard == nil {
		return nil
	}
	ram, _ := p.RAM.RAM()
	mb, _ := p.Motherboard.Motherboard()
	if ram.MemoryType == mb.MemoryType {
		return nil
	}
	return issue(models.SeverityError, CodeMemoryTypeMismatch,
		fmt.Sprintf("%s is %s memory but %s supports %s", p.RAM.Name, ram.MemoryType, p.Motherboard.Name, mb.MemoryType),
		fmt.Sprintf("Choose %s memory", mb.MemoryType),
		models.TypeRAM, models.TypeMotherboard)
}

func MemoryCapacityRule(p Parts) []models.CompatibilityIssue {
	if p.RAM == nil || p.Motherboard == nil {
		return nil
	}
	ram, _ := p.RAM.RAM()
	mb, _ := p.Motherboard.Motherboard()
	if mb.MaxMemory <= 0 || ram.Capacity <= mb.MaxMemory {
		return nil
	}
	return issue(models.SeverityError, CodeMemoryCapacityExceeded,
		fmt.Sprintf("%s totals %dGB but %s supports at most %dGB", p.RAM.Name, ram.Capacity, p.Motherboard.Name, mb.MaxMemory),
		fmt.Sprintf("Choose a memory kit of at most %dGB", mb.MaxMemory),
		models.TypeRAM, models.TypeMotherboard)
}

func FormFactorRule(p Parts) []models.CompatibilityIssue {
	if p.Motherboard == nil || p.Case == nil {
		return nil
	}
	mb, _ := p.Motherboard.Motherboard()
	cs, _ := p.Case.Case()
	if utils.SupportsFormFactor(cs.FormFactor, mb.FormFactor) {
		return nil
	}
	return issue(models.SeverityError, CodeFormFactorUnsupported,
		fmt.Sprintf("%s is %s but %s fits %s", p.Motherboard.Name, mb.FormFactor, p.Case.Name, cs.FormFactor),
		fmt.Sprintf("Choose a case that supports %s boards", mb.FormFactor),
		models.TypeMotherboard, models.TypeCase)
}

func GPUClearanceRule(p Parts) []models.CompatibilityIssue {
	if p.GPU == nil || p.Case == nil {
		return nil
	}
	gpu, _ := p.GPU.GPU()
	cs, _ := p.Case.Case()
	if gpu.Length <= cs.MaxGPULength {
		return nil
	}
	return issue(models.SeverityError, CodeGPUTooLong,
		fmt.Sprintf("%s is %dmm long but %s fits cards up to %dmm", p.GPU.Name, gpu.Length, p.Case.Name, cs.MaxGPULength),
		fmt.Sprintf("Choose a case with at least %dmm of GPU clearance", gpu.Length),
		models.TypeGPU, models.TypeCase)
}

// CoolerClearanceRule only applies to coolers that declare a height; AIO
// radiators are not height-limited by the case.
func CoolerClearanceRule(p Parts) []models.CompatibilityIssue {
	if p.Cooler == nil || p.Case == nil {
		return nil
	}
	cooler, _ := p.Cooler.Cooler()
	cs, _ := p.Case.Case()
	if cooler.Height == nil || *cooler.Height <= cs.MaxCoolerHeight {
		return nil
	}
	return issue(models.SeverityError, CodeCoolerTooTall,
		fmt.Sprintf("%s is %dmm tall but %s fits coolers up to %dmm", p.Cooler.Name, *cooler.Height, p.Case.Name, cs.MaxCoolerHeight),
		fmt.Sprintf("Choose a case with at least %dmm of cooler clearance", *cooler.Height),
		models.TypeCooler, models.TypeCase)
}

// PowerRule compares the PSU rating with the combined CPU and GPU TDP.
func PowerRule(p Parts) []models.CompatibilityIssue {
	if p.PSU == nil || (p.CPU == nil && p.GPU == nil) {
		return nil
	}
	psu, _ := p.PSU.PSU()

	draw := 0
	affected := []models.HardwareType{models.TypePSU}
	if p.CPU != nil {
		cpu, _ := p.CPU.CPU()
		draw += cpu.TDP
		affected = append(affected, models.TypeCPU)
	}
	if p.GPU != nil {
		gpu, _ := p.GPU.GPU()
		draw += gpu.TDP
		affected = append(affected, models.TypeGPU)
	}
	if psu.Wattage >= draw {
		return nil
	}
	return issue(models.SeverityError, CodePSUInsufficient,
		fmt.Sprintf("%s supplies %dW but the selected parts draw %dW", p.PSU.Name, psu.Wattage, draw),
		fmt.Sprintf("Choose a power supply of at least %dW", draw),
		affected...)
}

func M2SlotRule(p Parts) []models.CompatibilityIssue {
	if p.Motherboard == nil || len(p.Storage) == 0 {
		return nil
	}
	mb, _ := p.Motherboard.Motherboard()

	used := 0
	for _, s := range p.Storage {
		specs, _ := s.Storage()
		if utils.MatchM2FormFactor(specs.FormFactor) {
			used++
		}
	}
	if used <= mb.M2Slots {
		return nil
	}
	return issue(models.SeverityError, CodeM2SlotsExceeded,
		fmt.Sprintf("%d M.2 drives selected but %s has %d M.2 slots", used, p.Motherboard.Name, mb.M2Slots),
		"Remove an M.2 drive or choose a board with more M.2 slots",
		models.TypeStorage, models.TypeMotherboard)
}

func CoolingCapacityRule(p Parts) []models.CompatibilityIssue {
	if p.CPU == nil || p.Cooler == nil {
		return nil
	}
	cpu, _ := p.CPU.CPU()
	cooler, _ := p.Cooler.Cooler()
	if cooler.TDP >= cpu.TDP {
		return nil
	}
	return issue(models.SeverityWarning, CodeCoolerUnderrated,
		fmt.Sprintf("%s is rated for %dW but %s can draw %dW", p.Cooler.Name, cooler.TDP, p.CPU.Name, cpu.TDP),
		"Expect thermal throttling under sustained load, or choose a stronger cooler",
		models.TypeCooler, models.TypeCPU)
}
