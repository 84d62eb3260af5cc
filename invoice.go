package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Invoice Model
// ---------------------------------------------------------------------------

const dateLayout = "2006-01-02"

// Currency is the document currency. GBP has no editor option upstream but
// is rendered with its own symbol, so it is accepted here as well.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// Contact is a sender or recipient block. Every field is optional.
type Contact struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (c Contact) isBlank() bool {
	return blank(c.Name) && blank(c.Company) && blank(c.Address) && blank(c.Email) && blank(c.Phone)
}

// LineItem is one billable row.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours" validate:"gte=0"`
	Rate        float64 `json:"rate" validate:"gte=0"`
}

type TableHeaders struct {
	Description string `json:"description"`
	Hours       string `json:"hours"`
	Rate        string `json:"rate"`
}

// Invoice is the immutable snapshot a document is rendered from.
type Invoice struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Date          string       `json:"date" validate:"required,datetime=2006-01-02"`
	DueDate       string       `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	PurchaseOrder string       `json:"purchaseOrder"`
	PaymentTerms  string       `json:"paymentTerms"`
	Currency      Currency     `json:"currency" validate:"oneof=EUR USD GBP"`
	From          Contact      `json:"from"`
	To            Contact      `json:"to"`
	Items         []LineItem   `json:"items" validate:"dive"`
	TableHeaders  TableHeaders `json:"tableHeaders"`
	Notes         string       `json:"notes"`
	Terms         string       `json:"terms"`
	TaxRate       float64      `json:"taxRate" validate:"gte=0,lte=100"`
	DiscountRate  float64      `json:"discountRate" validate:"gte=0,lte=100"`
	Shipping      float64      `json:"shippingAmount" validate:"gte=0"`
	Paid          float64      `json:"paidAmount" validate:"gte=0"`
	LogoURL       string       `json:"logoUrl,omitempty"`
	Locale        string       `json:"locale,omitempty"`
}

// ErrDuplicateItemID is returned when two line items share an id.
var ErrDuplicateItemID = errors.New("duplicate line item id")

var validate = validator.New()

// loadInvoice decodes an invoice from JSON and assigns ids to items that
// have none.
func loadInvoice(r io.Reader) (*Invoice, error) {
	var inv Invoice
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to parse invoice: %w", err)
	}
	inv.assignItemIDs()
	return &inv, nil
}

func (inv *Invoice) assignItemIDs() {
	for i := range inv.Items {
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = uuid.NewString()
		}
	}
}

// Validate rejects invoices that would render a plausible but wrong document.
func (inv *Invoice) Validate() error {
	if err := validate.Struct(inv); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(inv.Items))
	for _, item := range inv.Items {
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateItemID, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

// issueDate parses Date. Validate has already checked the layout, so an
// error here means Validate was skipped.
func (inv *Invoice) issueDate() (time.Time, error) {
	t, err := time.Parse(dateLayout, inv.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse invoice date: %w", err)
	}
	return t, nil
}

// dueDate parses DueDate; ok is false when it is blank.
func (inv *Invoice) dueDate() (t time.Time, ok bool, err error) {
	if blank(inv.DueDate) {
		return time.Time{}, false, nil
	}
	t, err = time.Parse(dateLayout, inv.DueDate)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse due date: %w", err)
	}
	return t, true, nil
}

// renderableItems drops items whose description is blank. They stay in the
// model but never reach a page or the totals.
func (inv *Invoice) renderableItems() []LineItem {
	items := make([]LineItem, 0, len(inv.Items))
	for _, item := range inv.Items {
		if blank(item.Description) {
			continue
		}
		items = append(items, item)
	}
	return items
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
