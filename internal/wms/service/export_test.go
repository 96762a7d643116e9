package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRestockWorkbook(t *testing.T) {
	views := []RestockOrderView{
		{
			ID:         7,
			IssueDate:  "2021/11/29 09:33",
			State:      "DELIVERED",
			SupplierID: 5,
			Products: []RestockProductView{
				{SKUID: 12, ItemID: 10, Description: "a new item", Price: decimal.RequireFromString("10.99"), Qty: 2},
				{SKUID: 180, ItemID: 18, Description: "another item", Price: decimal.RequireFromString("12.5"), Qty: 1},
			},
			TransportNote: TransportNoteView{DeliveryDate: "2021/12/01"},
			SKUItems:      []RestockUnitView{{SKUID: 12, ItemID: 10, RFID: rfidA}},
		},
	}

	f, err := buildRestockWorkbook(views)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Orders", "Lines"}, f.GetSheetList())

	header, err := f.GetCellValue("Orders", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Order", header)

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"7", "2021/11/29 09:33", "DELIVERED", "5", "2021/12/01", "2", "1"}, rows[1])

	lines, err := f.GetRows("Lines")
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "a new item", lines[1][3])
	assert.Equal(t, "21.98", lines[1][6])
	assert.Equal(t, "12.5", lines[2][6])
}
