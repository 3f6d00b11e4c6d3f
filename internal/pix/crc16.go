package pix

import "fmt"

// CRC-16/CCITT-FALSE parameters: the profile the BR Code specification
// mandates for the payload checksum.
const (
	crcPoly uint16 = 0x1021
	crcInit uint16 = 0xFFFF
)

// Checksum computes the CRC-16/CCITT-FALSE checksum of data and returns it
// as four uppercase hexadecimal digits, left-padded with zeros. No input or
// output reflection, no final XOR.
func Checksum(data []byte) string {
	crc := crcInit
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPoly
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
