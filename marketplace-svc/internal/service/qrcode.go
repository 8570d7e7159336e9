package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(parentID int) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the rating page of a parent order.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Link(parentID int) string {
	return fmt.Sprintf("%s/orders/%d/rate", strings.TrimRight(g.BaseURL, "/"), parentID)
}

func (g DefaultQRGenerator) Generate(parentID int) ([]byte, error) {
	return qrcode.Encode(g.Link(parentID), qrcode.Medium, 256)
}
