package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/apperror"
	"github.com/kipsang/dukapos-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer      printer.Printer
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	printerType  string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:      p,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		printerType:  printerType,
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

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			BusinessName: "PRINTER TEST",
			Address:      "Test Address",
			Phone:        "+254 000 000 000",
		},
		OrderNumber: "PD000000",
		Date:        "Test Date",
		Cashier:     "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Subtotal: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Subtotal: 10.00},
		},
		Total: 20.00,
		Payments: []entity.ReceiptPayment{
			{Method: "cash", Amount: 20.00},
		},
		AmountPaid: 20.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintSaleReceipt fetches a sale with its items and payments and prints its
// receipt. The receipt data is always returned so the till can render it even
// when no printer is attached.
func (s *PrinterService) PrintSaleReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	receipt := s.buildReceipt(ctx, sale)

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (sale %s): %v", saleID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

func (s *PrinterService) buildReceipt(ctx context.Context, sale *entity.Sale) *entity.Receipt {
	receipt := &entity.Receipt{
		OrderNumber: sale.OrderNumber,
		Date:        sale.CreatedAt.Format("2006-01-02 15:04"),
		Total:       float64(sale.TotalAmount) / 100,
		AmountPaid:  float64(sale.AmountPaid) / 100,
	}

	// Header from the business profile; a missing row just prints a bare header
	settings, err := s.settingsRepo.Get(ctx)
	if err == nil && settings != nil {
		receipt.Header.BusinessName = settings.BusinessName
		if settings.Address != nil {
			receipt.Header.Address = *settings.Address
		}
		if settings.Phone != nil {
			receipt.Header.Phone = *settings.Phone
		}
		if settings.TaxID != nil {
			receipt.Header.TaxID = *settings.TaxID
		}
		if settings.ReceiptFooter != nil {
			receipt.Footer = *settings.ReceiptFooter
		}
	}

	receipt.Terminal = sale.Terminal.Name
	if sale.CreatedBy != nil {
		receipt.Cashier = sale.CreatedBy.FullName()
	}
	if sale.Customer != nil {
		receipt.Customer = sale.Customer.Name
	}

	for _, item := range sale.Items {
		name := item.Product.Name
		if name == "" {
			name = "Product"
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Subtotal:  float64(item.Subtotal) / 100,
		})
	}

	// One tender line per payment; tendered cash above the total shows as change
	var tendered int64
	for _, p := range sale.Payments {
		tendered += p.Amount
		receipt.Payments = append(receipt.Payments, entity.ReceiptPayment{
			Method: p.Method.String(),
			Amount: float64(p.Amount) / 100,
		})
	}
	if tendered > sale.TotalAmount {
		receipt.Change = float64(tendered-sale.TotalAmount) / 100
	}
	if balance := sale.BalanceDue(); balance > 0 {
		receipt.BalanceDue = float64(balance) / 100
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.BusinessName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("Tax ID: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Sale info
	doc.KeyValue("Order:", r.OrderNumber).
		KeyValue("Date:", r.Date)

	if r.Terminal != "" {
		doc.KeyValue("Terminal:", r.Terminal)
	}
	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Subtotal))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals and tenders
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	for _, p := range r.Payments {
		doc.KeyValue(p.Method+":", fmt.Sprintf("%.2f", p.Amount))
	}
	if r.Change > 0 {
		doc.KeyValue("Change:", fmt.Sprintf("%.2f", r.Change))
	}
	if r.BalanceDue > 0 {
		doc.SetBold(true).
			KeyValue("BALANCE DUE:", fmt.Sprintf("%.2f", r.BalanceDue)).
			SetBold(false)
	}

	doc.Separator('-')

	// Footer
	footer := r.Footer
	if footer == "" {
		footer = "Thank you for shopping with us!"
	}
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text(footer).
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
