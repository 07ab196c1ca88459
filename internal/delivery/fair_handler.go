package delivery

import (
	"errors"

	"bakehouse-backend/internal/auth"
	"bakehouse-backend/internal/fair"
	"bakehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type FairFormResponse struct {
	Form      fair.Form `json:"form"`
	EditingID string    `json:"editingId"`
	Profit    float64   `json:"profit"` // derived from the current form values
}

type FairSaveResponse struct {
	Record       models.FairDeliveryRecord `json:"record"`
	Updated      bool                      `json:"updated"`
	Notification models.Notification       `json:"notification"`
}

func fairFormResponse(l *fair.Ledger) FairFormResponse {
	f := l.Form()
	return FairFormResponse{
		Form:      f,
		EditingID: l.EditingID(),
		Profit:    fair.ComputeProfit(f.Products, f.Tax, f.ExtraExpenses, f.DieselExpenses),
	}
}

func validationError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"notification": models.ErrorNotification(verr.Message),
		})
	}
	return err
}

// -------------------------
// Fair delivery ledger
// -------------------------

// GET /api/fair-deliveries
func ListFairDeliveriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		return c.JSON(fiber.Map{
			"deliveries": sess.Fair.Records(),
		})
	}
}

// GET /api/fair-deliveries/form
func GetFairFormHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		return c.JSON(fairFormResponse(sess.Fair))
	}
}

// PUT /api/fair-deliveries/form
func UpdateFairFormHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		var body fair.FormUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Status != nil && *body.Status != models.StatusOut && *body.Status != models.StatusReturn {
			return fiber.NewError(fiber.StatusBadRequest, "Status must be 'out' or 'return'")
		}

		sess.Lock()
		defer sess.Unlock()

		sess.Fair.UpdateForm(body)
		return c.JSON(fairFormResponse(sess.Fair))
	}
}

// POST /api/fair-deliveries/form/products
func AddFairProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		sess.Fair.AddProduct()
		return c.Status(fiber.StatusCreated).JSON(fairFormResponse(sess.Fair))
	}
}

// PUT /api/fair-deliveries/form/products/:id
func UpdateFairProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		var body fair.ProductUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		sess.Lock()
		defer sess.Unlock()

		if !sess.Fair.UpdateProduct(id, body) {
			return fiber.NewError(fiber.StatusNotFound, "Product row not found")
		}
		return c.JSON(fairFormResponse(sess.Fair))
	}
}

// DELETE /api/fair-deliveries/form/products/:id
// Removing the last remaining row is refused: a record always carries at
// least one product line.
func RemoveFairProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		sess.Lock()
		defer sess.Unlock()

		sess.Fair.RemoveProduct(id)
		return c.JSON(fairFormResponse(sess.Fair))
	}
}

// POST /api/fair-deliveries/form/cancel
func CancelFairEditHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		sess.Fair.CancelEdit()
		return c.JSON(fairFormResponse(sess.Fair))
	}
}

// POST /api/fair-deliveries/save
func SaveFairDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		sess.Lock()
		defer sess.Unlock()

		result, err := sess.Fair.Save()
		if err != nil {
			return validationError(c, err)
		}

		description := "Fair delivery added successfully"
		status := fiber.StatusCreated
		if result.Updated {
			description = "Fair delivery updated successfully"
			status = fiber.StatusOK
		}

		return c.Status(status).JSON(FairSaveResponse{
			Record:       result.Record,
			Updated:      result.Updated,
			Notification: models.SuccessNotification(description),
		})
	}
}

// POST /api/fair-deliveries/:id/edit
func StartFairEditHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		sess.Lock()
		defer sess.Unlock()

		if !sess.Fair.StartEdit(id) {
			return fiber.NewError(fiber.StatusNotFound, "Fair delivery not found")
		}
		return c.JSON(fairFormResponse(sess.Fair))
	}
}

// DELETE /api/fair-deliveries/:id
func DeleteFairDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		sess.Lock()
		defer sess.Unlock()

		if !sess.Fair.Delete(id) {
			return fiber.NewError(fiber.StatusNotFound, "Fair delivery not found")
		}

		return c.JSON(fiber.Map{
			"deliveries":   sess.Fair.Records(),
			"notification": models.SuccessNotification("Fair delivery deleted successfully"),
		})
	}
}
