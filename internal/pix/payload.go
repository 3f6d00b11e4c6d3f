// Package pix builds static BR Code payment payloads as defined by the
// Banco Central do Brasil EMV-QRCPS merchant presented mode specification.
// The resulting string is what gets rendered as a "copia e cola" QR code.
package pix

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a payload is requested for a
// non-positive transaction amount.
var ErrInvalidAmount = errors.New("pix: amount must be greater than zero")

// ErrInvalidKey is returned when the configured PIX key exceeds the maximum
// length the merchant account field can carry.
var ErrInvalidKey = errors.New("pix: key exceeds 77 characters")

// Field tags of the EMV merchant presented mode payload, in emission order.
const (
	tagPayloadFormat      = "00"
	tagMerchantAccount    = "26"
	tagMerchantCategory   = "52"
	tagCurrency           = "53"
	tagAmount             = "54"
	tagCountryCode        = "58"
	tagMerchantName       = "59"
	tagMerchantCity       = "60"
	tagAdditionalData     = "62"
	tagCRC                = "63"
	subTagGUI             = "00"
	subTagKey             = "01"
)

// Fixed field contents for a static, single-merchant BRL payload.
const (
	payloadFormatValue    = "01"
	merchantAccountGUI    = "BR.GOV.BCB.PIX"
	merchantCategoryValue = "0000"
	currencyBRL           = "986"
	countryBR             = "BR"
	additionalDataValue   = "0503***"
	crcLengthLiteral      = "04"

	maxMerchantNameLen = 25
	maxMerchantCityLen = 15
	maxKeyLen          = 77
)

// Encoder builds fixed-amount payment payloads for a single merchant
// identity. The identity fields are normalized once at construction.
type Encoder struct {
	key          string
	merchantName string
	merchantCity string
}

// NewEncoder creates an encoder for the given PIX key, beneficiary name and
// city. Name and city are trimmed and truncated to the maximum lengths the
// specification allows (25 and 15 characters).
func NewEncoder(key, merchantName, merchantCity string) *Encoder {
	merchantName = truncateRunes(strings.TrimSpace(merchantName), maxMerchantNameLen)
	merchantCity = truncateRunes(strings.TrimSpace(merchantCity), maxMerchantCityLen)

	return &Encoder{
		key:          key,
		merchantName: merchantName,
		merchantCity: merchantCity,
	}
}

// Build returns the complete checksummed payload for the given transaction
// amount. The same amount always produces a byte-identical string.
func (e *Encoder) Build(amount decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", ErrInvalidAmount
	}
	if utf8.RuneCountInString(e.key) > maxKeyLen {
		return "", ErrInvalidKey
	}

	account := field(subTagGUI, merchantAccountGUI) + field(subTagKey, e.key)

	var b strings.Builder
	b.WriteString(field(tagPayloadFormat, payloadFormatValue))
	b.WriteString(field(tagMerchantAccount, account))
	b.WriteString(field(tagMerchantCategory, merchantCategoryValue))
	b.WriteString(field(tagCurrency, currencyBRL))
	b.WriteString(field(tagAmount, amount.StringFixed(2)))
	b.WriteString(field(tagCountryCode, countryBR))
	b.WriteString(field(tagMerchantName, e.merchantName))
	b.WriteString(field(tagMerchantCity, e.merchantCity))
	b.WriteString(field(tagAdditionalData, additionalDataValue))

	// The CRC field's tag and length literal take part in the checksum; the
	// four checksum digits are appended after it.
	b.WriteString(tagCRC)
	b.WriteString(crcLengthLiteral)

	payload := b.String()
	return payload + Checksum([]byte(payload)), nil
}

// field encodes one tag-length-value element. The length counts the
// characters of the value, not its bytes, rendered as two decimal digits.
func field(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, utf8.RuneCountInString(value), value)
}

// truncateRunes cuts s to at most max characters without splitting a rune.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
