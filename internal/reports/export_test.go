package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook(3, 1250.5)
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	// the workbook must round-trip through the xlsx reader
	reopened, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer reopened.Close()

	sheets := reopened.GetSheetList()
	require.Contains(t, sheets, "Monthly Reports")
	require.Contains(t, sheets, "Top Performers")
	require.Contains(t, sheets, "This Session")

	rows, err := reopened.GetRows("Monthly Reports")
	require.NoError(t, err)
	// header plus one row per monthly report
	require.Len(t, rows, len(monthlyReports)+1)
	require.Equal(t, "Month", rows[0][0])
	require.Equal(t, "January 2024", rows[1][0])

	count, err := reopened.GetCellValue("This Session", "B1")
	require.NoError(t, err)
	require.Equal(t, "3", count)
}
