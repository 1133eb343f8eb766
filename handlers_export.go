package main

import (
	"fmt"
	"net/http"

	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// POST /api/analysis/expiry-monitoring/export
//
// Same parameters as the expiry endpoint, but the result comes back as
// an XLSX workbook with an Items and a Buckets sheet.
func expiryExportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.ExpiryParams
		if err := c.ShouldBindJSON(&params); err != nil {
			respondInvalidArgs(c, "malformed request body")
			return
		}
		params.Normalize()
		if hint := params.Validate(); hint != "" {
			respondInvalidArgs(c, hint)
			return
		}

		result, err := models.MonitorExpiry(c.Request.Context(), params)
		if err != nil {
			respondScopeError(c, models.PovKindProject, "analysis", "expiryExportHandler", err)
			return
		}

		f := excelize.NewFile()
		itemsSheet := "Items"
		f.SetSheetName("Sheet1", itemsSheet)

		itemHeaders := []string{"Id", "Project", "Sponsor", "Counterparty", "Currency", "Notional", "MaturityDate", "DaysToMaturity", "Bucket"}
		for i, h := range itemHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(itemsSheet, cell, h)
		}
		for i, item := range result.Items {
			row := i + 2
			f.SetCellValue(itemsSheet, "A"+fmt.Sprint(row), item.ID)
			f.SetCellValue(itemsSheet, "B"+fmt.Sprint(row), item.ProjectId)
			f.SetCellValue(itemsSheet, "C"+fmt.Sprint(row), item.SponsorName)
			f.SetCellValue(itemsSheet, "D"+fmt.Sprint(row), item.CounterpartyName)
			f.SetCellValue(itemsSheet, "E"+fmt.Sprint(row), item.CurrencyCode)
			f.SetCellValue(itemsSheet, "F"+fmt.Sprint(row), item.NotionalAmount.StringFixed(2))
			f.SetCellValue(itemsSheet, "G"+fmt.Sprint(row), item.MaturityDate.String())
			f.SetCellValue(itemsSheet, "H"+fmt.Sprint(row), item.DaysToMaturity)
			f.SetCellValue(itemsSheet, "I"+fmt.Sprint(row), item.Bucket)
		}

		bucketsSheet := "Buckets"
		f.NewSheet(bucketsSheet)
		bucketHeaders := []string{"Bucket", "Count", "Currency", "TotalNotional"}
		for i, h := range bucketHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(bucketsSheet, cell, h)
		}
		row := 2
		for _, bucket := range result.Buckets {
			if len(bucket.TotalNotional) == 0 {
				f.SetCellValue(bucketsSheet, "A"+fmt.Sprint(row), bucket.Label)
				f.SetCellValue(bucketsSheet, "B"+fmt.Sprint(row), bucket.Count)
				row++
				continue
			}
			for _, total := range bucket.TotalNotional {
				f.SetCellValue(bucketsSheet, "A"+fmt.Sprint(row), bucket.Label)
				f.SetCellValue(bucketsSheet, "B"+fmt.Sprint(row), bucket.Count)
				f.SetCellValue(bucketsSheet, "C"+fmt.Sprint(row), total.CurrencyCode)
				f.SetCellValue(bucketsSheet, "D"+fmt.Sprint(row), total.Amount)
				row++
			}
		}

		c.Writer.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Writer.Header().Set("Content-Disposition", "attachment; filename=expiry-monitoring.xlsx")
		c.Status(http.StatusOK)
		if err := f.Write(c.Writer); err != nil {
			_ = c.Error(err)
		}
	}
}
