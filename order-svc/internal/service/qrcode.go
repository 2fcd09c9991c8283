package service

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(userID, orderID string) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the order receipt page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Link(userID, orderID string) string {
	return g.BaseURL + "/orders/" + url.PathEscape(userID) + "/" + url.PathEscape(orderID)
}

func (g DefaultQRGenerator) Generate(userID, orderID string) ([]byte, error) {
	return qrcode.Encode(g.Link(userID, orderID), qrcode.Medium, 256)
}
