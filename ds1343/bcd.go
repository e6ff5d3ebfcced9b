package ds1343

// bcdToInt decodes a packed BCD byte. Nibbles are not validated, so 0x1A decodes to 20.
func bcdToInt(bcd uint8) int {
	return int(bcd>>4)*10 + int(bcd&0x0F)
}

// intToBCD encodes up to four decimal digits, one per nibble with the ones digit lowest. Only the low byte is ever
// written to the chip.
func intToBCD(dec int) uint16 {
	thousands := (dec / 1000) % 10
	hundreds := (dec / 100) % 10
	tens := (dec / 10) % 10
	ones := dec % 10
	return uint16(thousands<<12 | hundreds<<8 | tens<<4 | ones)
}
