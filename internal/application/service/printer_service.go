package service

import (
	"context"
	"fmt"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/pkg/apperror"
	"github.com/centerhire/centerhire-api/pkg/printer"
	"github.com/google/uuid"
)

// PrinterService handles invoice formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	billRepo    repository.BillRepository
	profileRepo repository.ProfileRepository
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	billRepo repository.BillRepository,
	profileRepo repository.ProfileRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		billRepo:    billRepo,
		profileRepo: profileRepo,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a short alignment page to verify the printer works.
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(0)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PRINTER TEST").
		SetBold(false).
		Separator('-').
		Text("If you can read this, the printer").
		Text("is connected and aligned.").
		FeedLines(3).
		PartialCut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return apperror.NewAppError(502, fmt.Sprintf("Failed to print: %v", err))
	}
	return nil
}

// PrintBill composes an invoice from a bill and sends it to the printer.
// Returns the invoice so the handler can return it as JSON when no printer
// hardware is configured.
func (s *PrinterService) PrintBill(ctx context.Context, billID uuid.UUID) (*entity.Invoice, error) {
	bill, err := s.billRepo.GetWithDetails(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	invoice := invoiceFromBill(bill, profile)
	if err := s.printer.Print(FormatInvoice(invoice)); err != nil {
		return nil, apperror.NewAppError(502, fmt.Sprintf("Failed to print: %v", err))
	}
	return invoice, nil
}

// invoiceFromBill builds the printable invoice value object from a persisted
// bill and the business profile header.
func invoiceFromBill(bill *entity.Bill, profile *entity.BusinessProfile) *entity.Invoice {
	invoice := &entity.Invoice{
		BillNo:      bill.BillNo,
		Date:        bill.BillDate.Format("02/01/2006"),
		ClientName:  bill.ClientName,
		ClientSite:  bill.ClientSite,
		Mobile:      bill.ClientMobile,
		SubTotal:    bill.SubTotal,
		GrandTotal:  bill.GrandTotal,
		TotalPlates: bill.TotalPlates,
		TotalDays:   bill.TotalDays,
	}

	if profile != nil {
		invoice.Header = entity.InvoiceHeader{
			BusinessName: profile.Name,
			Site:         profile.Site,
			Mobile:       profile.Mobile,
			Address:      profile.Address,
		}
	}

	for _, item := range bill.Items {
		invoice.Lines = append(invoice.Lines, entity.InvoiceLine{
			ChallanNo:   item.ChallanNo,
			PlateSize:   item.PlateSize,
			Quantity:    item.IssuedQuantity,
			Days:        item.DaysUsed,
			RatePerDay:  item.RatePerDay,
			Amount:      item.ServiceCharge,
			Outstanding: item.OutstandingQuantity,
		})
	}
	for _, charge := range bill.Charges {
		invoice.Adjustments = append(invoice.Adjustments, entity.InvoiceAdjustment{
			Description: charge.Description,
			Amount:      charge.Amount,
			IsDiscount:  charge.IsDiscount,
		})
	}

	return invoice
}

// FormatInvoice renders an invoice as an ESC/POS byte stream.
func FormatInvoice(inv *entity.Invoice) []byte {
	doc := printer.NewDocument(48)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(inv.Header.BusinessName).
		SetFontSize(printer.FontNormal)
	if inv.Header.Site != "" {
		doc.Text(inv.Header.Site)
	}
	if inv.Header.Mobile != "" {
		doc.Text("Mob: " + inv.Header.Mobile)
	}
	doc.SetAlign(printer.AlignLeft)

	doc.Separator('=')
	doc.KeyValue("Bill No: "+inv.BillNo, inv.Date)
	doc.Text("Client: " + inv.ClientName)
	if inv.ClientSite != "" {
		doc.Text("Site: " + inv.ClientSite)
	}
	if inv.Mobile != "" {
		doc.Text("Mob: " + inv.Mobile)
	}

	doc.Separator('-')
	doc.SetBold(true).
		Columns("Challan", "Size", "Qty", "Days", "Amount").
		SetBold(false)
	doc.Separator('-')

	for _, line := range inv.Lines {
		doc.Columns(
			line.ChallanNo,
			line.PlateSize,
			fmt.Sprintf("%d", line.Quantity),
			fmt.Sprintf("%d", line.Days),
			fmt.Sprintf("%.2f", line.Amount),
		)
		if line.Outstanding > 0 {
			doc.TextF("  %d outstanding @ %.2f/day", line.Outstanding, line.RatePerDay)
		}
	}

	doc.Separator('-')
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", inv.SubTotal))
	for _, adj := range inv.Adjustments {
		if adj.IsDiscount {
			doc.KeyValue(adj.Description+":", fmt.Sprintf("-%.2f", adj.Amount))
		} else {
			doc.KeyValue(adj.Description+":", fmt.Sprintf("%.2f", adj.Amount))
		}
	}
	doc.SetBold(true).
		KeyValue("GRAND TOTAL:", fmt.Sprintf("%.2f", inv.GrandTotal)).
		SetBold(false)
	doc.KeyValue("Total plates:", fmt.Sprintf("%d", inv.TotalPlates))
	doc.KeyValue("Total days:", fmt.Sprintf("%d", inv.TotalDays))

	doc.Separator('-')
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
