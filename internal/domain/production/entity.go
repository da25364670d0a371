package production

import (
	"time"

	"github.com/shopspring/decimal"
)

// Process enum - the closed set of production process kinds.
type Process string

const (
	ProcessCuci       Process = "cuci"
	ProcessKering     Process = "kering"
	ProcessSetrika    Process = "setrika"
	ProcessPacking    Process = "packing"
	ProcessCuciSepatu Process = "cuci_sepatu"
	ProcessCuciSatuan Process = "cuci_satuan"
)

// ValidProcesses lists every recognized process kind.
var ValidProcesses = []Process{
	ProcessCuci, ProcessKering, ProcessSetrika,
	ProcessPacking, ProcessCuciSepatu, ProcessCuciSatuan,
}

// weightOptionalProcesses are billed per unit, so intake accepts them without
// a weight. Commission and intake must agree on this subset.
var weightOptionalProcesses = []Process{ProcessCuciSatuan, ProcessCuciSepatu}

// Entry is one production record: an employee processed some laundry weight
// (or unit count) under a receipt (nota) number.
type Entry struct {
	ID        int64
	UserID    int64
	Process   Process
	WeightKg  decimal.Decimal // zero for weight-optional processes
	Quantity  int
	Nota      string
	CreatedAt time.Time

	// Joined fields
	UserName *string
}

// ProcessTotal is the per-process weight aggregate feeding commission.
type ProcessTotal struct {
	Process Process
	TotalKg decimal.Decimal
}

// IsValidProcess reports whether a process name belongs to the closed set.
func IsValidProcess(process string) bool {
	for _, p := range ValidProcesses {
		if Process(process) == p {
			return true
		}
	}
	return false
}

// IsWeightRequired reports whether intake must reject the entry without a
// positive weight.
func IsWeightRequired(process string) bool {
	for _, p := range weightOptionalProcesses {
		if Process(process) == p {
			return false
		}
	}
	return true
}
