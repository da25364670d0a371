package production

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidProcess(t *testing.T) {
	for _, p := range ValidProcesses {
		assert.True(t, IsValidProcess(string(p)), "process %s", p)
	}
	assert.False(t, IsValidProcess(""))
	assert.False(t, IsValidProcess("CUCI"))
	assert.False(t, IsValidProcess("dry_clean"))
}

func TestIsWeightRequired(t *testing.T) {
	assert.True(t, IsWeightRequired("cuci"))
	assert.True(t, IsWeightRequired("kering"))
	assert.True(t, IsWeightRequired("setrika"))
	assert.True(t, IsWeightRequired("packing"))
	assert.False(t, IsWeightRequired("cuci_satuan"))
	assert.False(t, IsWeightRequired("cuci_sepatu"))
}

func TestCreateEntryRequestValidate(t *testing.T) {
	weight := decimal.NewFromFloat(12.5)
	zero := decimal.Zero

	tests := []struct {
		name    string
		req     CreateEntryRequest
		wantErr bool
	}{
		{"valid weighted entry", CreateEntryRequest{Process: "cuci", WeightKg: &weight, Nota: "N-001"}, false},
		{"unit process without weight", CreateEntryRequest{Process: "cuci_satuan", Quantity: 3, Nota: "N-002"}, false},
		{"shoe wash without weight", CreateEntryRequest{Process: "cuci_sepatu", Quantity: 1, Nota: "N-003"}, false},
		{"weighted process missing weight", CreateEntryRequest{Process: "setrika", Nota: "N-004"}, true},
		{"weighted process zero weight", CreateEntryRequest{Process: "kering", WeightKg: &zero, Nota: "N-005"}, true},
		{"unknown process", CreateEntryRequest{Process: "laundry", WeightKg: &weight, Nota: "N-006"}, true},
		{"missing nota", CreateEntryRequest{Process: "cuci", WeightKg: &weight}, true},
		{"negative quantity", CreateEntryRequest{Process: "cuci", WeightKg: &weight, Quantity: -1, Nota: "N-007"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
