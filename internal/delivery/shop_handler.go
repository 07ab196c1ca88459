package delivery

import (
	"bakehouse-backend/internal/auth"
	"bakehouse-backend/internal/models"
	"bakehouse-backend/internal/shop"

	"github.com/gofiber/fiber/v2"
)

type ShopTotalEntry struct {
	ShopID string  `json:"shopId"`
	Total  float64 `json:"total"`
}

type ShopDraftResponse struct {
	Draft      shop.Draft       `json:"draft"`
	ShopTotals []ShopTotalEntry `json:"shopTotals"`
	GrandTotal float64          `json:"grandTotal"`
}

func shopDraftResponse(l *shop.Ledger) ShopDraftResponse {
	d := l.Draft()
	totals := make([]ShopTotalEntry, 0, len(d.Shops))
	for _, s := range d.Shops {
		totals = append(totals, ShopTotalEntry{ShopID: s.ID, Total: shop.ShopTotal(s)})
	}
	return ShopDraftResponse{
		Draft:      d,
		ShopTotals: totals,
		GrandTotal: l.GrandTotal(),
	}
}

// -------------------------
// Shop delivery run
// -------------------------

// GET /api/shop-delivery/draft
func GetShopDraftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		return c.JSON(shopDraftResponse(sess.Shop))
	}
}

// PUT /api/shop-delivery/draft
func UpdateShopDraftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		var body shop.DraftUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		sess.Lock()
		defer sess.Unlock()

		sess.Shop.UpdateDraft(body)
		return c.JSON(shopDraftResponse(sess.Shop))
	}
}

// POST /api/shop-delivery/draft/shops
func AddShopHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		sess.Shop.AddShop()
		return c.Status(fiber.StatusCreated).JSON(shopDraftResponse(sess.Shop))
	}
}

// PUT /api/shop-delivery/draft/shops/:id
func UpdateShopHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		var body shop.ShopUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		sess.Lock()
		defer sess.Unlock()

		if !sess.Shop.UpdateShop(id, body) {
			return fiber.NewError(fiber.StatusNotFound, "Shop not found")
		}
		return c.JSON(shopDraftResponse(sess.Shop))
	}
}

// DELETE /api/shop-delivery/draft/shops/:id
func RemoveShopHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		sess.Lock()
		defer sess.Unlock()

		if !sess.Shop.RemoveShop(id) {
			return fiber.NewError(fiber.StatusNotFound, "Shop not found")
		}
		return c.JSON(shopDraftResponse(sess.Shop))
	}
}

// POST /api/shop-delivery/draft/shops/:id/items
func AddShopItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		sess.Lock()
		defer sess.Unlock()

		if _, ok := sess.Shop.AddItem(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Shop not found")
		}
		return c.Status(fiber.StatusCreated).JSON(shopDraftResponse(sess.Shop))
	}
}

// PUT /api/shop-delivery/draft/shops/:shopId/items/:itemId
func UpdateShopItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		shopID := c.Params("shopId")
		itemID := c.Params("itemId")

		var body shop.ItemUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		sess.Lock()
		defer sess.Unlock()

		if !sess.Shop.UpdateItem(shopID, itemID, body) {
			return fiber.NewError(fiber.StatusNotFound, "Delivery item not found")
		}
		return c.JSON(shopDraftResponse(sess.Shop))
	}
}

// DELETE /api/shop-delivery/draft/shops/:shopId/items/:itemId
func RemoveShopItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		shopID := c.Params("shopId")
		itemID := c.Params("itemId")

		sess.Lock()
		defer sess.Unlock()

		if !sess.Shop.RemoveItem(shopID, itemID) {
			return fiber.NewError(fiber.StatusNotFound, "Delivery item not found")
		}
		return c.JSON(shopDraftResponse(sess.Shop))
	}
}

// GET /api/shop-delivery/draft/totals
// Totals are derived on every read; deleting an item is reflected here
// immediately.
func ShopDraftTotalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		resp := shopDraftResponse(sess.Shop)
		return c.JSON(fiber.Map{
			"shopTotals": resp.ShopTotals,
			"grandTotal": resp.GrandTotal,
		})
	}
}

// POST /api/shop-delivery/save
// On success the run is not retained anywhere; the draft resets and the
// client is sent back to the dashboard.
func SaveShopDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		saved, grandTotal, err := sess.Shop.Save()
		if err != nil {
			return validationError(c, err)
		}

		return c.JSON(fiber.Map{
			"vehicleNumber": saved.VehicleNumber,
			"driverName":    saved.DriverName,
			"shopCount":     len(saved.Shops),
			"grandTotal":    grandTotal,
			"notification":  models.SuccessNotification("Shop delivery record saved successfully"),
			"redirect":      "/dashboard",
		})
	}
}
