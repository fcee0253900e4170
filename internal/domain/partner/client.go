package partner

import (
	"strings"
	"time"

	"github.com/comex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// FreightTerm represents the negotiated freight term for a client's cargo
type FreightTerm string

const (
	FreightTermFOB FreightTerm = "FOB" // Free On Board
	FreightTermEXW FreightTerm = "EXW" // Ex Works
)

// IsValid checks if the freight term is supported
func (f FreightTerm) IsValid() bool {
	return f == FreightTermFOB || f == FreightTermEXW
}

// Client represents a company or person requesting customs clearance.
// It is the aggregate root for client-related operations.
type Client struct {
	shared.BaseAggregateRoot
	Shipper         string
	Consignee       string
	CNPJ            string // Brazilian tax ID, 14 digits, unique
	PortOrigin      string
	PortDestination string
	Weight          *decimal.Decimal
	Notify          string
	BL              string // bill of lading reference
	BLDate          time.Time
	InvoiceNumber   string
	ReferenceNumber string // unique
	BirthDate       *time.Time
	FreightTerm     FreightTerm
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	Address         string
	City            string
	State           string
	ZipCode         string
	Notes           string
}

// NewClient creates a new client with required fields
func NewClient(shipper, consignee, cnpj, bl string, blDate time.Time, referenceNumber string, freightTerm FreightTerm) (*Client, error) {
	if shipper == "" {
		return nil, shared.NewDomainError("INVALID_SHIPPER", "Shipper cannot be empty")
	}
	if consignee == "" {
		return nil, shared.NewDomainError("INVALID_CONSIGNEE", "Consignee cannot be empty")
	}
	normalized, err := NormalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	if bl == "" {
		return nil, shared.NewDomainError("INVALID_BL", "Bill of lading reference cannot be empty")
	}
	if blDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_BL_DATE", "Bill of lading date is required")
	}
	if referenceNumber == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Reference number cannot be empty")
	}
	if !freightTerm.IsValid() {
		return nil, shared.NewDomainError("INVALID_FREIGHT_TERM", "Freight term must be FOB or EXW")
	}

	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Shipper:           shipper,
		Consignee:         consignee,
		CNPJ:              normalized,
		BL:                bl,
		BLDate:            blDate,
		ReferenceNumber:   referenceNumber,
		FreightTerm:       freightTerm,
	}, nil
}

// SetRoute sets the origin and destination ports
func (c *Client) SetRoute(origin, destination string) {
	c.PortOrigin = origin
	c.PortDestination = destination
	c.Touch()
}

// RouteLabel formats the port route for display
func (c *Client) RouteLabel() string {
	switch {
	case c.PortOrigin != "" && c.PortDestination != "":
		return c.PortOrigin + " / " + c.PortDestination
	case c.PortOrigin != "":
		return c.PortOrigin
	default:
		return c.PortDestination
	}
}

// SetCargo sets cargo details carried on the client record
func (c *Client) SetCargo(weight *decimal.Decimal, notify, invoiceNumber string) {
	c.Weight = weight
	c.Notify = notify
	c.InvoiceNumber = invoiceNumber
	c.Touch()
}

// SetContact sets the client's contact information
func (c *Client) SetContact(name, email, phone string) {
	c.ContactName = name
	c.ContactEmail = email
	c.ContactPhone = phone
	c.Touch()
}

// SetAddress sets the client's address
func (c *Client) SetAddress(address, city, state, zipCode string) {
	c.Address = address
	c.City = city
	c.State = state
	c.ZipCode = zipCode
	c.Touch()
}

// SetNotes sets free-text notes
func (c *Client) SetNotes(notes string) {
	c.Notes = notes
	c.Touch()
}

// UpdateCNPJ replaces the client's tax ID after normalization
func (c *Client) UpdateCNPJ(cnpj string) error {
	normalized, err := NormalizeCNPJ(cnpj)
	if err != nil {
		return err
	}
	c.CNPJ = normalized
	c.Touch()
	c.IncrementVersion()
	return nil
}

// NormalizeCNPJ strips formatting characters and validates the digit count
func NormalizeCNPJ(cnpj string) (string, error) {
	var b strings.Builder
	for _, r := range cnpj {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 14 {
		return "", shared.NewDomainError("INVALID_CNPJ", "CNPJ must have 14 digits")
	}
	return digits, nil
}
