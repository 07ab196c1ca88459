package fair

import (
	"strings"

	"bakehouse-backend/internal/models"

	"github.com/google/uuid"
)

// Form mirrors the fields of one fair delivery record while it is being
// entered or edited.
type Form struct {
	FairName       string                `json:"fairName"`
	DriverName     string                `json:"driverName"`
	Status         models.DeliveryStatus `json:"status"`
	Tax            float64               `json:"tax"`
	ExtraExpenses  float64               `json:"extraExpenses"`
	DieselExpenses float64               `json:"dieselExpenses"`
	Products       []models.ProductItem  `json:"products"`
}

// ProductUpdate carries the fields to change on one product row. Nil fields
// are left untouched.
type ProductUpdate struct {
	Name             *string  `json:"name"`
	SentQuantity     *float64 `json:"sentQuantity"`
	Price            *float64 `json:"price"`
	ReturnedQuantity *float64 `json:"returnedQuantity"`
}

// FormUpdate carries the scalar form fields to change. Nil fields are left
// untouched.
type FormUpdate struct {
	FairName       *string                `json:"fairName"`
	DriverName     *string                `json:"driverName"`
	Status         *models.DeliveryStatus `json:"status"`
	Tax            *float64               `json:"tax"`
	ExtraExpenses  *float64               `json:"extraExpenses"`
	DieselExpenses *float64               `json:"dieselExpenses"`
}

// SaveResult reports what Save did with the form snapshot.
type SaveResult struct {
	Record  models.FairDeliveryRecord
	Updated bool // false = appended as a new record
}

// Ledger holds the saved fair delivery records plus the single in-progress
// form. Not safe for concurrent use; the owning session serializes access.
type Ledger struct {
	records   []models.FairDeliveryRecord
	form      Form
	editingID string // "" = creating a new record
}

func NewLedger() *Ledger {
	l := &Ledger{}
	l.resetForm()
	return l
}

func blankProduct() models.ProductItem {
	return models.ProductItem{ID: uuid.NewString()}
}

func (l *Ledger) resetForm() {
	l.form = Form{
		Status:   models.StatusOut,
		Products: []models.ProductItem{blankProduct()},
	}
	l.editingID = ""
}

// Records returns the saved records in insertion order.
func (l *Ledger) Records() []models.FairDeliveryRecord {
	out := make([]models.FairDeliveryRecord, len(l.records))
	copy(out, l.records)
	for i := range out {
		out[i].Products = cloneProducts(out[i].Products)
	}
	return out
}

// Form returns a snapshot of the in-progress form.
func (l *Ledger) Form() Form {
	f := l.form
	f.Products = cloneProducts(l.form.Products)
	return f
}

// EditingID returns the id of the record being edited, or "" when the form
// is on the creation path.
func (l *Ledger) EditingID() string {
	return l.editingID
}

func cloneProducts(products []models.ProductItem) []models.ProductItem {
	out := make([]models.ProductItem, len(products))
	copy(out, products)
	return out
}

// AddProduct appends a blank product row to the form. There is no upper
// bound on row count.
func (l *Ledger) AddProduct() models.ProductItem {
	p := blankProduct()
	l.form.Products = append(l.form.Products, p)
	return p
}

// UpdateProduct applies the given fields to one product row. Returns false
// when no row carries the id.
func (l *Ledger) UpdateProduct(id string, upd ProductUpdate) bool {
	for i := range l.form.Products {
		if l.form.Products[i].ID != id {
			continue
		}
		p := &l.form.Products[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.SentQuantity != nil {
			p.SentQuantity = *upd.SentQuantity
		}
		if upd.Price != nil {
			p.Price = *upd.Price
		}
		if upd.ReturnedQuantity != nil {
			p.ReturnedQuantity = *upd.ReturnedQuantity
		}
		return true
	}
	return false
}

// RemoveProduct removes a product row. A record must always carry at least
// one product line, so removing the sole remaining row is a no-op.
func (l *Ledger) RemoveProduct(id string) bool {
	if len(l.form.Products) <= 1 {
		return false
	}
	for i := range l.form.Products {
		if l.form.Products[i].ID == id {
			l.form.Products = append(l.form.Products[:i], l.form.Products[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateForm applies the given scalar fields to the form.
func (l *Ledger) UpdateForm(upd FormUpdate) {
	if upd.FairName != nil {
		l.form.FairName = *upd.FairName
	}
	if upd.DriverName != nil {
		l.form.DriverName = *upd.DriverName
	}
	if upd.Status != nil {
		l.form.Status = *upd.Status
	}
	if upd.Tax != nil {
		l.form.Tax = *upd.Tax
	}
	if upd.ExtraExpenses != nil {
		l.form.ExtraExpenses = *upd.ExtraExpenses
	}
	if upd.DieselExpenses != nil {
		l.form.DieselExpenses = *upd.DieselExpenses
	}
}

// ComputeProfit derives the profit figure from the current product and
// expense values. No rounding happens here; display formatting rounds to
// two decimals.
func ComputeProfit(products []models.ProductItem, tax, extraExpenses, dieselExpenses float64) float64 {
	var sentTotal, returnedTotal float64
	for _, p := range products {
		sentTotal += p.SentQuantity * p.Price
		returnedTotal += p.ReturnedQuantity * p.Price
	}
	return sentTotal - (returnedTotal + tax + extraExpenses + dieselExpenses)
}

// validate runs the pre-save rules against the form. The first failing rule
// wins; there is no multi-error aggregation.
func (l *Ledger) validate() error {
	if strings.TrimSpace(l.form.FairName) == "" {
		return models.NewValidationError("Please enter fair name")
	}
	if strings.TrimSpace(l.form.DriverName) == "" {
		return models.NewValidationError("Please enter driver name")
	}
	for _, p := range l.form.Products {
		if strings.TrimSpace(p.Name) == "" {
			return models.NewValidationError("Please enter product name for all products")
		}
		if p.SentQuantity < 0 || p.Price < 0 || p.ReturnedQuantity < 0 {
			return models.NewValidationError("Quantity and price cannot be below 0")
		}
	}
	if l.form.Tax < 0 || l.form.ExtraExpenses < 0 || l.form.DieselExpenses < 0 {
		return models.NewValidationError("Expenses cannot be below 0")
	}
	return nil
}

// Save validates the form and commits it to the ledger: in-place replace of
// the record being edited, or append of a new record with a fresh id. Either
// path recomputes profit and resets the form to the blank template.
func (l *Ledger) Save() (SaveResult, error) {
	if err := l.validate(); err != nil {
		return SaveResult{}, err
	}

	record := models.FairDeliveryRecord{
		FairName:       l.form.FairName,
		DriverName:     l.form.DriverName,
		Products:       cloneProducts(l.form.Products),
		Status:         l.form.Status,
		Tax:            l.form.Tax,
		ExtraExpenses:  l.form.ExtraExpenses,
		DieselExpenses: l.form.DieselExpenses,
		Profit:         ComputeProfit(l.form.Products, l.form.Tax, l.form.ExtraExpenses, l.form.DieselExpenses),
	}

	if l.editingID != "" {
		record.ID = l.editingID
		for i := range l.records {
			if l.records[i].ID == l.editingID {
				l.records[i] = record
				break
			}
		}
		l.resetForm()
		return SaveResult{Record: record, Updated: true}, nil
	}

	record.ID = uuid.NewString()
	l.records = append(l.records, record)
	l.resetForm()
	return SaveResult{Record: record, Updated: false}, nil
}

// StartEdit loads a saved record into the form. The record stays in the
// ledger until Save or CancelEdit.
func (l *Ledger) StartEdit(id string) bool {
	for _, r := range l.records {
		if r.ID != id {
			continue
		}
		l.form = Form{
			FairName:       r.FairName,
			DriverName:     r.DriverName,
			Status:         r.Status,
			Tax:            r.Tax,
			ExtraExpenses:  r.ExtraExpenses,
			DieselExpenses: r.DieselExpenses,
			Products:       cloneProducts(r.Products),
		}
		l.editingID = r.ID
		return true
	}
	return false
}

// CancelEdit discards in-progress form changes and returns to the blank
// template. No confirmation step.
func (l *Ledger) CancelEdit() {
	l.resetForm()
}

// Delete removes the record unconditionally. No undo.
func (l *Ledger) Delete(id string) bool {
	for i := range l.records {
		if l.records[i].ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}
