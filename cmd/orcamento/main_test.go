package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBudget = `
technician_id: tech-1
visit_fee: 150
labor_hours: 2
labor_rate: 80
items:
  - description: Damper DX5
    quantity: 2
    unit_price: 45.5
trip:
  distance_km: 100
  work_days: 2
  tolls: 2
extras:
  - description: Material de limpeza
    value: 10
discount_percent: 10
expenses:
  rate_per_km: 1.5
  travel_threshold_km: 50
  rate_per_lodging_night: 120
  rate_per_meal: 30
  rate_per_toll: 12.5
`

func writeBudget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budget.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadBudgetFile(t *testing.T) {
	f, err := loadBudgetFile(writeBudget(t, sampleBudget))
	require.NoError(t, err)

	in := f.toInput()
	assert.Equal(t, "tech-1", in.TechnicianID)
	assert.Len(t, in.Items, 1)
	assert.Equal(t, 2, in.Trip.Tolls)
	assert.Equal(t, 12.5, f.rates().RatePerToll)

	f, err = loadBudgetFile(writeBudget(t, "visit_fee: 50\n"))
	require.NoError(t, err)
	assert.Equal(t, "local", f.TechnicianID)

	_, err = loadBudgetFile(writeBudget(t, "items: [oops"))
	assert.Error(t, err)

	_, err = loadBudgetFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCalcCmd(t *testing.T) {
	path := writeBudget(t, sampleBudget)

	out, err := run(t, "calc", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Deslocamento")
	assert.Contains(t, out, "R$ 150,00")
	assert.Contains(t, out, "R$ 766,00")
	assert.Contains(t, out, "R$ 689,40")

	out, err = run(t, "calc", path, "--json")
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	bd, _ := body["breakdown"].(map[string]any)
	assert.Equal(t, 689.4, bd["total"])
	assert.Equal(t, 35.0, bd["extras"])
}

func TestCalcCmd_DistanceFromCoordinates(t *testing.T) {
	path := writeBudget(t, `
labor_hours: 1
labor_rate: 100
origin: {latitude: -23.5505, longitude: -46.6333}
destination: {latitude: -22.9099, longitude: -47.0626}
expenses:
  rate_per_km: 1
`)

	out, err := run(t, "calc", path, "--json")
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	bd, _ := body["breakdown"].(map[string]any)
	travel, _ := bd["travel"].(float64)
	assert.InDelta(t, 83, travel, 3)
}

func TestCalcCmd_InvalidBudget(t *testing.T) {
	path := writeBudget(t, "items:\n  - description: Damper\n    quantity: 0\n")

	_, err := run(t, "calc", path)
	assert.Error(t, err)
}

func TestExportCmd(t *testing.T) {
	path := writeBudget(t, sampleBudget)

	t.Run("xlsx", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "orcamento.xlsx")
		out, err := run(t, "export", path, "--format", "xlsx", "--out", target)
		require.NoError(t, err)
		assert.Contains(t, out, "orcamento.xlsx written")

		body, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(body, []byte("PK")), "xlsx is a zip archive")
	})

	t.Run("pdf", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "orcamento.pdf")
		_, err := run(t, "export", path, "-f", "PDF", "-o", target)
		require.NoError(t, err)

		body, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := run(t, "export", path, "--format", "docx")
		assert.ErrorContains(t, err, "unsupported format")
	})
}
