package fair

import (
	"testing"

	"bakehouse-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func fillValidForm(t *testing.T, l *Ledger) {
	t.Helper()

	l.UpdateForm(FormUpdate{
		FairName:       strPtr("Colombo Fair"),
		DriverName:     strPtr("Sunil"),
		Tax:            numPtr(100),
		ExtraExpenses:  numPtr(50),
		DieselExpenses: numPtr(30),
	})

	p := l.Form().Products[0]
	ok := l.UpdateProduct(p.ID, ProductUpdate{
		Name:             strPtr("Bread"),
		SentQuantity:     numPtr(10),
		Price:            numPtr(50),
		ReturnedQuantity: numPtr(2),
	})
	require.True(t, ok)
}

func TestComputeProfit(t *testing.T) {
	products := []models.ProductItem{
		{ID: "p1", Name: "Bread", SentQuantity: 10, Price: 50, ReturnedQuantity: 2},
	}

	// sentTotal=500, returnedTotal=100 -> 500 - (100+100+50+30) = 220
	require.Equal(t, 220.0, ComputeProfit(products, 100, 50, 30))
}

func TestComputeProfitCanBeNegative(t *testing.T) {
	products := []models.ProductItem{
		{ID: "p1", Name: "Cake", SentQuantity: 1, Price: 10},
	}
	require.Equal(t, -90.0, ComputeProfit(products, 100, 0, 0))
}

func TestNewLedgerStartsWithBlankTemplate(t *testing.T) {
	l := NewLedger()

	f := l.Form()
	require.Empty(t, f.FairName)
	require.Equal(t, models.StatusOut, f.Status)
	require.Len(t, f.Products, 1)
	require.Empty(t, l.EditingID())
	require.Empty(t, l.Records())
}

func TestRemoveProductKeepsAtLeastOneRow(t *testing.T) {
	l := NewLedger()
	only := l.Form().Products[0]

	require.False(t, l.RemoveProduct(only.ID))
	require.Len(t, l.Form().Products, 1)

	added := l.AddProduct()
	require.Len(t, l.Form().Products, 2)

	require.True(t, l.RemoveProduct(added.ID))
	require.Len(t, l.Form().Products, 1)
	require.False(t, l.RemoveProduct(only.ID))
}

func TestSaveAppendsWithFreshID(t *testing.T) {
	l := NewLedger()

	fillValidForm(t, l)
	first, err := l.Save()
	require.NoError(t, err)
	require.False(t, first.Updated)
	require.NotEmpty(t, first.Record.ID)
	require.Equal(t, 220.0, first.Record.Profit)

	// form resets to the blank template after a save
	f := l.Form()
	require.Empty(t, f.FairName)
	require.Len(t, f.Products, 1)

	fillValidForm(t, l)
	second, err := l.Save()
	require.NoError(t, err)
	require.NotEqual(t, first.Record.ID, second.Record.ID)

	records := l.Records()
	require.Len(t, records, 2)
	require.Equal(t, first.Record.ID, records[0].ID)
	require.Equal(t, second.Record.ID, records[1].ID)
}

func TestSaveWhileEditingReplacesInPlace(t *testing.T) {
	l := NewLedger()

	fillValidForm(t, l)
	first, err := l.Save()
	require.NoError(t, err)

	fillValidForm(t, l)
	_, err = l.Save()
	require.NoError(t, err)

	require.True(t, l.StartEdit(first.Record.ID))
	require.Equal(t, first.Record.ID, l.EditingID())
	require.Equal(t, "Colombo Fair", l.Form().FairName)

	l.UpdateForm(FormUpdate{FairName: strPtr("Kandy Fair"), Tax: numPtr(0)})
	result, err := l.Save()
	require.NoError(t, err)
	require.True(t, result.Updated)
	require.Equal(t, first.Record.ID, result.Record.ID)

	records := l.Records()
	require.Len(t, records, 2)
	require.Equal(t, first.Record.ID, records[0].ID)
	require.Equal(t, "Kandy Fair", records[0].FairName)
	// profit recomputed from the edited values: 500 - (100+0+50+30)
	require.Equal(t, 320.0, records[0].Profit)
	require.Empty(t, l.EditingID())
}

func TestSaveValidationFirstFailureWins(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(l *Ledger)
		message string
	}{
		{
			name:    "empty fair name",
			prepare: func(l *Ledger) { l.UpdateForm(FormUpdate{FairName: strPtr("  ")}) },
			message: "Please enter fair name",
		},
		{
			name: "empty driver name",
			prepare: func(l *Ledger) {
				l.UpdateForm(FormUpdate{FairName: strPtr("Colombo Fair")})
			},
			message: "Please enter driver name",
		},
		{
			name: "empty product name",
			prepare: func(l *Ledger) {
				l.UpdateForm(FormUpdate{FairName: strPtr("Colombo Fair"), DriverName: strPtr("Sunil")})
			},
			message: "Please enter product name for all products",
		},
		{
			name: "negative quantity",
			prepare: func(l *Ledger) {
				l.UpdateForm(FormUpdate{FairName: strPtr("Colombo Fair"), DriverName: strPtr("Sunil")})
				p := l.Form().Products[0]
				l.UpdateProduct(p.ID, ProductUpdate{Name: strPtr("Bread"), SentQuantity: numPtr(-1)})
			},
			message: "Quantity and price cannot be below 0",
		},
		{
			name: "negative expense",
			prepare: func(l *Ledger) {
				l.UpdateForm(FormUpdate{FairName: strPtr("Colombo Fair"), DriverName: strPtr("Sunil"), Tax: numPtr(-5)})
				p := l.Form().Products[0]
				l.UpdateProduct(p.ID, ProductUpdate{Name: strPtr("Bread")})
			},
			message: "Expenses cannot be below 0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			tc.prepare(l)

			_, err := l.Save()
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.message, verr.Message)

			// the ledger is unchanged and the form keeps its values
			require.Empty(t, l.Records())
		})
	}
}

func TestFailedSaveKeepsFormValues(t *testing.T) {
	l := NewLedger()
	l.UpdateForm(FormUpdate{FairName: strPtr("Colombo Fair")})

	_, err := l.Save()
	require.Error(t, err)
	require.Equal(t, "Colombo Fair", l.Form().FairName)
}

func TestCancelEditResetsForm(t *testing.T) {
	l := NewLedger()

	fillValidForm(t, l)
	saved, err := l.Save()
	require.NoError(t, err)

	require.True(t, l.StartEdit(saved.Record.ID))
	l.UpdateForm(FormUpdate{FairName: strPtr("Changed")})

	l.CancelEdit()
	require.Empty(t, l.EditingID())
	require.Empty(t, l.Form().FairName)
	require.Len(t, l.Form().Products, 1)

	// the record kept its original values
	require.Equal(t, "Colombo Fair", l.Records()[0].FairName)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	l := NewLedger()

	var ids []string
	for i := 0; i < 3; i++ {
		fillValidForm(t, l)
		res, err := l.Save()
		require.NoError(t, err)
		ids = append(ids, res.Record.ID)
	}

	require.True(t, l.Delete(ids[1]))
	records := l.Records()
	require.Len(t, records, 2)
	require.Equal(t, ids[0], records[0].ID)
	require.Equal(t, ids[2], records[1].ID)

	require.False(t, l.Delete(ids[1]))
}

func TestStartEditUnknownID(t *testing.T) {
	l := NewLedger()
	require.False(t, l.StartEdit("missing"))
	require.Empty(t, l.EditingID())
}

func TestUpdateProductUnknownRow(t *testing.T) {
	l := NewLedger()
	require.False(t, l.UpdateProduct("missing", ProductUpdate{Name: strPtr("x")}))
}
