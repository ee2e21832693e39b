package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// TableQRGenerator renders the landing URL a customer opens when scanning the code on a table.
type TableQRGenerator struct {
	BaseURL string
	Size    int
}

func (g TableQRGenerator) Link(tableNumber int) string {
	return fmt.Sprintf("%s/table/%d", strings.TrimRight(g.BaseURL, "/"), tableNumber)
}

func (g TableQRGenerator) Generate(tableNumber int) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.Link(tableNumber), qrcode.Medium, size)
}
