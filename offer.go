package offer2pdf

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alnah/go-offer2pdf/internal/fileutil"
)

// Seller identifies the party issuing the offer.
type Seller struct {
	Company string `json:"company"`
	Address string `json:"address"`
	NIP     string `json:"nip"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	IBAN    string `json:"iban"`
}

// Client identifies the party receiving the offer.
type Client struct {
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Item is one priced line of the offer.
type Item struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Discount  float64 `json:"discount"`
	VAT       float64 `json:"vat"`
	Total     float64 `json:"total"`
}

// Summary holds the caller-computed totals. The pipeline treats these as
// opaque pass-through data and never re-derives them.
type Summary struct {
	VAT   float64 `json:"vat"`
	Total float64 `json:"total"`
}

// Images holds the image URLs referenced by the templates.
type Images struct {
	ClientLogo   string `json:"clientLogo"`
	Front        string `json:"front"`
	Lid          string `json:"lid"`
	ThreeQuarter string `json:"three_quarter"`
	Brand        string `json:"brand"`
	GiftSet      string `json:"giftset"`
}

// OfferRecord is the immutable input to one pipeline run.
type OfferRecord struct {
	OfferID  string  `json:"offer_id"`
	Date     string  `json:"date"`
	Language string  `json:"OfferLanguage"`
	Seller   Seller  `json:"seller"`
	Client   Client  `json:"client"`
	Items    []Item  `json:"items"`
	Summary  Summary `json:"summary"`
	Images   Images  `json:"images"`

	// raw keeps the decoded top-level document so templates see every
	// field the caller sent, not only the typed subset above.
	raw map[string]any
}

// LoadOfferRecord reads and parses an offer record from a JSON file.
// Returns ErrInputNotFound if the file does not exist and ErrInputParse
// if it cannot be decoded.
func LoadOfferRecord(path string) (*OfferRecord, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- data path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	return ParseOfferRecord(data)
}

// ParseOfferRecord decodes an offer record from JSON bytes.
func ParseOfferRecord(data []byte) (*OfferRecord, error) {
	var rec OfferRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputParse, err)
	}
	if err := json.Unmarshal(data, &rec.raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputParse, err)
	}
	return &rec, nil
}

// Validate checks the structural invariants the pipeline relies on.
// Field-level constraints (formats, ranges) belong to the ingress layer.
func (o *OfferRecord) Validate() error {
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	return nil
}

// TemplateContext returns the template rendering context: every top-level
// field of the source document, keyed exactly as the caller sent it.
func (o *OfferRecord) TemplateContext() map[string]any {
	ctx := make(map[string]any, len(o.raw))
	for k, v := range o.raw {
		ctx[k] = v
	}
	return ctx
}
