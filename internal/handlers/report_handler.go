package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/IsPeeves/lumenixorg/internal/repository"
	"github.com/IsPeeves/lumenixorg/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct {
	clients  ClientStore
	expenses ExpenseStore
}

func NewReportHandler(clients ClientStore, expenses ExpenseStore) *ReportHandler {
	return &ReportHandler{clients: clients, expenses: expenses}
}

// Billing exports the full client and expense collections as an Excel
// workbook, one sheet per resource with a totals row.
func (h *ReportHandler) Billing(c *gin.Context) {
	ctx := c.Request.Context()

	clients, _, err := h.clients.List(ctx, repository.ListOptions{})
	if err != nil {
		respondError(c, err)
		return
	}
	expenses, _, err := h.expenses.List(ctx, repository.ListOptions{})
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Clientes"); err != nil {
		respondError(c, err)
		return
	}
	writeClientsSheet(f, clients)

	if _, err := f.NewSheet("Despesas"); err != nil {
		respondError(c, err)
		return
	}
	writeExpensesSheet(f, expenses)

	fileName := "relatorio-financeiro-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		slog.Error("failed to stream billing report", "error", err)
	}
}

func writeClientsSheet(f *excelize.File, clients []models.Client) {
	const sheet = "Clientes"
	headers := []string{"Empresa", "Valor Mensal", "Dia de Vencimento", "Site", "Status", "Criado em"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	var total float64
	for i, cl := range clients {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cl.CompanyName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), float64(cl.MonthlyValue))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), cl.DueDay)
		if cl.WebsiteLink != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), *cl.WebsiteLink)
		}
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), cl.PaymentStatus)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), cl.CreatedAt.Format("02.01.2006"))
		total += float64(cl.MonthlyValue)
	}

	totalRow := len(clients) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), total)
}

func writeExpensesSheet(f *excelize.File, expenses []models.Expense) {
	const sheet = "Despesas"
	headers := []string{"Descrição", "Valor", "Categoria", "Data", "Frequência", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	var total float64
	for i, e := range expenses {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.Description)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), float64(e.Amount))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Category)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.Date.String())
		if e.Frequency != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), *e.Frequency)
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), e.Status)
		total += float64(e.Amount)
	}

	totalRow := len(expenses) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), total)
}
