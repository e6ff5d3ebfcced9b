package ds1343

const (
	Seconds = 0x00 // Seconds, BCD 00-59
	Minutes = 0x01 // Minutes, BCD 00-59
	Hours   = 0x02 // Hours, BCD 00-23 (24-hour mode only)
	Weekday = 0x03 // Day of week, binary
	Date    = 0x04 // Day of month, BCD 01-31
	Month   = 0x05 // Month, BCD 01-12
	Year    = 0x06 // Year, BCD 00-99 (offset from 2000)
	Control = 0x0F // Control register
	Status  = 0x10 // Status register
)

// Address framing: the top bit of the address byte selects the direction.
const (
	addressMask = 0x7F
	writeFlag   = 0x80
)

// Field masks applied when encoding a register value.
const (
	secondsMask      = 0x7F
	minutesMask      = 0x7F
	hoursMask        = 0x3F
	weekdayWriteMask = 0x03
	weekdayReadMask  = 0x07
	dateMask         = 0x3F
	monthMask        = 0x1F
	yearMask         = 0xFF
)

const (
	controlEOSC = 0x80 // battery-backup (oscillator) disable
	statusOSF   = 0x80 // oscillator stop flag
)

// Mode is the SPI mode the DS1343 expects (CPOL=1, CPHA=1).
const Mode = 3

// timeRegisters is the number of registers in a burst read of the clock.
const timeRegisters = Year - Seconds + 1

const century = 2000
