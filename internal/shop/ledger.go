package shop

import (
	"strings"

	"bakehouse-backend/internal/models"

	"github.com/google/uuid"
)

// Draft is one shop delivery run being entered: vehicle and driver shared
// across the run, plus the shops visited.
type Draft struct {
	VehicleNumber string        `json:"vehicleNumber"`
	DriverName    string        `json:"driverName"`
	Shops         []models.Shop `json:"shops"`
}

// DraftUpdate carries the run-level fields to change. Nil fields are left
// untouched.
type DraftUpdate struct {
	VehicleNumber *string `json:"vehicleNumber"`
	DriverName    *string `json:"driverName"`
}

// ShopUpdate carries the scalar shop fields to change. Nil fields are left
// untouched.
type ShopUpdate struct {
	Name   *string `json:"name"`
	Owner  *string `json:"owner"`
	Mobile *string `json:"mobile"`
}

// ItemUpdate carries the fields to change on one delivery item. Nil fields
// are left untouched.
type ItemUpdate struct {
	Product  *string  `json:"product"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
}

// Ledger holds the in-progress shop delivery draft. Completed runs are not
// retained: Save validates, reports the totals and resets the draft. Not
// safe for concurrent use; the owning session serializes access.
type Ledger struct {
	draft Draft
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Draft returns a snapshot of the in-progress run.
func (l *Ledger) Draft() Draft {
	d := l.draft
	d.Shops = cloneShops(l.draft.Shops)
	return d
}

func cloneShops(shops []models.Shop) []models.Shop {
	out := make([]models.Shop, len(shops))
	copy(out, shops)
	for i := range out {
		items := make([]models.DeliveryItem, len(out[i].Items))
		copy(items, out[i].Items)
		out[i].Items = items
	}
	return out
}

// UpdateDraft applies the given run-level fields.
func (l *Ledger) UpdateDraft(upd DraftUpdate) {
	if upd.VehicleNumber != nil {
		l.draft.VehicleNumber = *upd.VehicleNumber
	}
	if upd.DriverName != nil {
		l.draft.DriverName = *upd.DriverName
	}
}

// AddShop appends a new shop with empty fields and no items.
func (l *Ledger) AddShop() models.Shop {
	s := models.Shop{ID: uuid.NewString(), Items: []models.DeliveryItem{}}
	l.draft.Shops = append(l.draft.Shops, s)
	return s
}

// UpdateShop applies the given fields to one shop. Returns false when no
// shop carries the id.
func (l *Ledger) UpdateShop(id string, upd ShopUpdate) bool {
	s := l.findShop(id)
	if s == nil {
		return false
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Owner != nil {
		s.Owner = *upd.Owner
	}
	if upd.Mobile != nil {
		s.Mobile = *upd.Mobile
	}
	return true
}

// RemoveShop removes the shop and all its items. Unconditional.
func (l *Ledger) RemoveShop(id string) bool {
	for i := range l.draft.Shops {
		if l.draft.Shops[i].ID == id {
			l.draft.Shops = append(l.draft.Shops[:i], l.draft.Shops[i+1:]...)
			return true
		}
	}
	return false
}

// AddItem appends a blank delivery item to the shop.
func (l *Ledger) AddItem(shopID string) (models.DeliveryItem, bool) {
	s := l.findShop(shopID)
	if s == nil {
		return models.DeliveryItem{}, false
	}
	item := models.DeliveryItem{ID: uuid.NewString()}
	s.Items = append(s.Items, item)
	return item, true
}

// UpdateItem applies the given fields to one item of one shop.
func (l *Ledger) UpdateItem(shopID, itemID string, upd ItemUpdate) bool {
	s := l.findShop(shopID)
	if s == nil {
		return false
	}
	for i := range s.Items {
		if s.Items[i].ID != itemID {
			continue
		}
		item := &s.Items[i]
		if upd.Product != nil {
			item.Product = *upd.Product
		}
		if upd.Quantity != nil {
			item.Quantity = *upd.Quantity
		}
		if upd.Price != nil {
			item.Price = *upd.Price
		}
		return true
	}
	return false
}

// RemoveItem removes an item. A shop may transiently hold zero items while
// the run is being edited.
func (l *Ledger) RemoveItem(shopID, itemID string) bool {
	s := l.findShop(shopID)
	if s == nil {
		return false
	}
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Ledger) findShop(id string) *models.Shop {
	for i := range l.draft.Shops {
		if l.draft.Shops[i].ID == id {
			return &l.draft.Shops[i]
		}
	}
	return nil
}

// ShopTotal derives the delivered value for one shop. Recomputed on every
// read, never cached.
func ShopTotal(s models.Shop) float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Quantity * item.Price
	}
	return total
}

// GrandTotal derives the delivered value across the whole run.
func (l *Ledger) GrandTotal() float64 {
	var total float64
	for _, s := range l.draft.Shops {
		total += ShopTotal(s)
	}
	return total
}

// validate runs the pre-save rules against the draft. The first failing rule
// wins.
func (l *Ledger) validate() error {
	if strings.TrimSpace(l.draft.VehicleNumber) == "" || strings.TrimSpace(l.draft.DriverName) == "" || len(l.draft.Shops) == 0 {
		return models.NewValidationError("Please fill in vehicle details and add at least one shop")
	}
	for _, s := range l.draft.Shops {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Owner) == "" || strings.TrimSpace(s.Mobile) == "" || len(s.Items) == 0 {
			return models.NewValidationError("Please complete all shop details and add items")
		}
		for _, item := range s.Items {
			if item.Quantity < 0 || item.Price < 0 {
				return models.NewValidationError("Quantity and price cannot be below 0")
			}
		}
	}
	return nil
}

// Save validates the run and resets the draft. The completed run is not kept
// in any ledger afterwards; only its totals are reported back.
func (l *Ledger) Save() (Draft, float64, error) {
	if err := l.validate(); err != nil {
		return Draft{}, 0, err
	}
	saved := l.Draft()
	grandTotal := l.GrandTotal()
	l.draft = Draft{}
	return saved, grandTotal, nil
}
