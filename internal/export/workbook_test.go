package export

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/RMahshie/rfmatch/internal/rf"
)

func TestSweepWorkbook(t *testing.T) {
	load := rf.Load{Resistance: 30, Reactance: 20}
	samples, err := rf.Sweep(load.Impedance(), rf.DefaultReferenceImpedance, 2e9, rf.DefaultSweepPoints)
	require.NoError(t, err)

	data, err := SweepWorkbook(load, rf.DefaultReferenceImpedance, 2e9, samples)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Sweep"}, f.GetSheetList())

	points, err := f.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.Equal(t, "101", points)

	rows, err := f.GetRows("Sweep")
	require.NoError(t, err)
	require.Len(t, rows, 102)
	assert.Equal(t, []string{"No", "Frequency [GHz]", "|Γ|"}, rows[0])

	first, err := strconv.ParseFloat(rows[1][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 1.6, first, 1e-9)

	last, err := strconv.ParseFloat(rows[101][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.4, last, 1e-9)

	mag, err := strconv.ParseFloat(rows[50][2], 64)
	require.NoError(t, err)
	assert.InDelta(t, samples[49].GammaMagnitude, mag, 1e-9)
}

func TestSweepWorkbook_EmptySweep(t *testing.T) {
	data, err := SweepWorkbook(rf.Load{Resistance: 50}, rf.DefaultReferenceImpedance, 1e9, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sweep")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
