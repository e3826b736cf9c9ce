package handler

import (
	"github.com/centerhire/centerhire-api/internal/application/service"
	"github.com/centerhire/centerhire-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PrinterHandler handles invoice printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles retrieving printer status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// TestPrint handles sending a test page to the printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.printerService.TestPrint(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page sent to printer successfully", nil)
}

// PrintBill handles printing a bill invoice
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	invoice, err := h.printerService.PrintBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill sent to printer successfully", invoice)
}
