package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var restockExportHeaders = []string{
	"Order", "Issue Date", "State", "Supplier", "Delivery Date", "Lines", "Units",
}

var restockLineExportHeaders = []string{
	"Order", "SKU", "Item", "Description", "Price", "Qty", "Amount",
}

// Export renders every restock order as an xlsx workbook with an order
// sheet and a line sheet.
func (s *RestockOrderService) Export(ctx context.Context) (*excelize.File, string, error) {
	views, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}
	f, err := buildRestockWorkbook(views)
	if err != nil {
		return nil, "", storeError("build workbook", err)
	}
	filename := fmt.Sprintf("restock_orders_%s.xlsx", time.Now().Format("20060102"))
	return f, filename, nil
}

func buildRestockWorkbook(views []RestockOrderView) (*excelize.File, error) {
	f := excelize.NewFile()
	orders := "Orders"
	lines := "Lines"
	if err := f.SetSheetName("Sheet1", orders); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(lines); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	writeHeader(f, orders, restockExportHeaders, headerStyle)
	writeHeader(f, lines, restockLineExportHeaders, headerStyle)

	lineRow := 2
	for i, v := range views {
		row := i + 2
		f.SetCellValue(orders, fmt.Sprintf("A%d", row), v.ID)
		f.SetCellValue(orders, fmt.Sprintf("B%d", row), v.IssueDate)
		f.SetCellValue(orders, fmt.Sprintf("C%d", row), v.State)
		f.SetCellValue(orders, fmt.Sprintf("D%d", row), v.SupplierID)
		f.SetCellValue(orders, fmt.Sprintf("E%d", row), v.TransportNote.DeliveryDate)
		f.SetCellValue(orders, fmt.Sprintf("F%d", row), len(v.Products))
		f.SetCellValue(orders, fmt.Sprintf("G%d", row), len(v.SKUItems))

		for _, p := range v.Products {
			price, _ := p.Price.Float64()
			amount, _ := p.Price.Mul(decimal.NewFromInt(int64(p.Qty))).Float64()
			f.SetCellValue(lines, fmt.Sprintf("A%d", lineRow), v.ID)
			f.SetCellValue(lines, fmt.Sprintf("B%d", lineRow), p.SKUID)
			f.SetCellValue(lines, fmt.Sprintf("C%d", lineRow), p.ItemID)
			f.SetCellValue(lines, fmt.Sprintf("D%d", lineRow), p.Description)
			f.SetCellValue(lines, fmt.Sprintf("E%d", lineRow), price)
			f.SetCellValue(lines, fmt.Sprintf("F%d", lineRow), p.Qty)
			f.SetCellValue(lines, fmt.Sprintf("G%d", lineRow), amount)
			lineRow++
		}
	}

	setColWidths(f, orders, []float64{8, 18, 18, 10, 14, 8, 8})
	setColWidths(f, lines, []float64{8, 8, 8, 30, 10, 8, 12})
	return f, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func setColWidths(f *excelize.File, sheet string, widths []float64) {
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
}
