package reports

import (
	"bakehouse-backend/internal/auth"
	"bakehouse-backend/internal/fair"
	"bakehouse-backend/internal/shop"

	"github.com/gofiber/fiber/v2"
)

// GET /api/reports/summary?month=current&year=2024
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		month := c.Query("month", "current")
		year := c.Query("year", "2024")

		return c.JSON(fiber.Map{
			"month":   month,
			"year":    year,
			"summary": summary,
		})
	}
}

// GET /api/reports/daily
func DailyReportsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"reports": dailyReports})
	}
}

// GET /api/reports/monthly
func MonthlyReportsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"reports": monthlyReports})
	}
}

// GET /api/reports/top-shops
func TopShopsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"shops": topShops})
	}
}

// GET /api/reports/top-fairs
func TopFairsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"fairs": topFairs})
	}
}

type SessionReportResponse struct {
	FairDeliveryCount int     `json:"fairDeliveryCount"`
	FairTotalProfit   float64 `json:"fairTotalProfit"`
	DraftShopCount    int     `json:"draftShopCount"`
	DraftGrandTotal   float64 `json:"draftGrandTotal"`
}

// GET /api/reports/session
// Live figures from the caller's own ledgers, unlike the canned dataset
// above.
func SessionReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		var totalProfit float64
		records := sess.Fair.Records()
		for _, r := range records {
			totalProfit += fair.ComputeProfit(r.Products, r.Tax, r.ExtraExpenses, r.DieselExpenses)
		}

		draft := sess.Shop.Draft()
		var grandTotal float64
		for _, s := range draft.Shops {
			grandTotal += shop.ShopTotal(s)
		}

		return c.JSON(SessionReportResponse{
			FairDeliveryCount: len(records),
			FairTotalProfit:   totalProfit,
			DraftShopCount:    len(draft.Shops),
			DraftGrandTotal:   grandTotal,
		})
	}
}
