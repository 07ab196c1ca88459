package reports

import (
	"fmt"

	"bakehouse-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// BuildWorkbook renders the monthly dataset plus the caller's live fair
// ledger into an xlsx workbook.
func BuildWorkbook(liveRecords int, liveProfit float64) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Monthly Reports"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Month", "Fair Deliveries", "Fair Profit (Rs.)", "Shop Deliveries", "Shop Revenue (Rs.)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, m := range monthlyReports {
		values := []interface{}{m.Month, m.FairTotal.Deliveries, m.FairTotal.Profit, m.ShopTotal.Deliveries, m.ShopTotal.Revenue}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	const topSheet = "Top Performers"
	if _, err := f.NewSheet(topSheet); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(topSheet, "A1", "Top Shops"); err != nil {
		return nil, err
	}
	for i, s := range topShops {
		row := i + 2
		f.SetCellValue(topSheet, fmt.Sprintf("A%d", row), s.Name)
		f.SetCellValue(topSheet, fmt.Sprintf("B%d", row), s.Owner)
		f.SetCellValue(topSheet, fmt.Sprintf("C%d", row), s.Revenue)
		f.SetCellValue(topSheet, fmt.Sprintf("D%d", row), s.Orders)
	}
	base := len(topShops) + 3
	if err := f.SetCellValue(topSheet, fmt.Sprintf("A%d", base), "Top Fairs"); err != nil {
		return nil, err
	}
	for i, fr := range topFairs {
		row := base + i + 1
		f.SetCellValue(topSheet, fmt.Sprintf("A%d", row), fr.Name)
		f.SetCellValue(topSheet, fmt.Sprintf("B%d", row), fr.Profit)
		f.SetCellValue(topSheet, fmt.Sprintf("C%d", row), fr.Deliveries)
	}

	const sessionSheet = "This Session"
	if _, err := f.NewSheet(sessionSheet); err != nil {
		return nil, err
	}
	f.SetCellValue(sessionSheet, "A1", "Fair deliveries recorded")
	f.SetCellValue(sessionSheet, "B1", liveRecords)
	f.SetCellValue(sessionSheet, "A2", "Total profit (Rs.)")
	f.SetCellValue(sessionSheet, "B2", liveProfit)

	return f, nil
}

// GET /api/reports/export
func ExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		records := sess.Fair.Records()
		sess.Unlock()

		var totalProfit float64
		for _, r := range records {
			totalProfit += r.Profit
		}

		f, err := BuildWorkbook(len(records), totalProfit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}
		defer f.Close()

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be written")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="bakehouse-reports.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
