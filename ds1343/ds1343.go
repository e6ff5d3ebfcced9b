// Package ds1343 implements a driver for the DS1343 SPI Real-Time Clock (RTC), providing read-write of the current
// time and the oscillator stop flag only. The DS1343 itself supports alarms, interrupts, a square-wave output and
// trickle charging, but those features remain unimplemented.
//
// Datasheet: https://www.analog.com/media/en/technical-documentation/data-sheets/DS1343-DS1344.pdf
package ds1343

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

var ErrNotConfigured = errors.New("ds1343: device not configured")

// Device is a DS1343 on an SPI bus. It is not safe for concurrent use.
type Device struct {
	tr         *Transport
	loc        *time.Location
	configured bool
}

// Config holds optional settings. The zero value is valid.
type Config struct {
	// Location is used to break down epoch seconds and to build the time.Time returned by Now. Defaults to
	// time.Local.
	Location *time.Location
}

// New creates a new driver on the specified SPI bus and chip enable pin. The bus must be configured for Mode; the
// datasheet allows up to 4 MHz. This function does not touch the device.
func New(bus drivers.SPI, ce Pin) *Device {
	return &Device{
		tr:  NewTransport(bus, ce),
		loc: time.Local,
	}
}

// Configure applies c and enables the oscillator on battery backup by clearing the control register's EOSC bit. It
// runs once; later calls only update the location.
func (d *Device) Configure(c Config) error {
	if c.Location != nil {
		d.loc = c.Location
	}
	if d.configured {
		return nil
	}

	ctrl, err := d.tr.ReadRegister(Control)
	if err != nil {
		return err
	}
	err = d.tr.WriteRegister(Control, ctrl&^controlEOSC)
	if err != nil {
		return err
	}
	d.configured = true
	return nil
}

// DateTime reads the clock registers in a single burst. YearDay is always UnknownYearDay.
func (d *Device) DateTime() (DateTime, error) {
	if !d.configured {
		return DateTime{}, ErrNotConfigured
	}
	var buf [timeRegisters]byte
	err := d.tr.ReadRegisters(Seconds, buf[:])
	if err != nil {
		return DateTime{}, err
	}

	return DateTime{
		Second:  bcdToInt(buf[Seconds]),
		Minute:  bcdToInt(buf[Minutes]),
		Hour:    bcdToInt(buf[Hours]),
		Weekday: time.Weekday(buf[Weekday] & weekdayReadMask),
		Day:     bcdToInt(buf[Date]),
		Month:   time.Month(bcdToInt(buf[Month])),
		Year:    bcdToInt(buf[Year]) + century,
		YearDay: UnknownYearDay,
	}, nil
}

// SetDateTime writes the time selected by in (nil means Default) and then clears the oscillator stop flag so Valid
// reports true. Default writes 2000-01-01 00:00:00 rather than the Unix epoch, which lies outside the 2000-2099 range
// of the year register.
//
// Each register is written in its own transaction, seconds first and year last. There is no rollback: if the bus
// fails partway, the registers already written keep their new values and the oscillator stop flag is left as it was.
//
// The weekday register is written with a two-bit mask while it is read back with a three-bit mask, so weekdays 4-6
// (Thursday to Saturday) read back as 0-2.
func (d *Device) SetDateTime(in TimeInput) error {
	if !d.configured {
		return ErrNotConfigured
	}
	if in == nil {
		in = Default()
	}
	dt := in.dateTime(d.loc)
	if err := dt.Validate(); err != nil {
		return err
	}

	regs := [timeRegisters]byte{
		Seconds: uint8(intToBCD(dt.Second)) & secondsMask,
		Minutes: uint8(intToBCD(dt.Minute)) & minutesMask,
		Hours:   uint8(intToBCD(dt.Hour)) & hoursMask,
		Weekday: uint8(dt.Weekday) & weekdayWriteMask,
		Date:    uint8(intToBCD(dt.Day)) & dateMask,
		Month:   uint8(intToBCD(int(dt.Month))) & monthMask,
		Year:    uint8(intToBCD(dt.Year-century)) & yearMask,
	}
	for reg, val := range regs {
		err := d.tr.WriteRegister(uint8(reg), val)
		if err != nil {
			return err
		}
	}

	// clear OSF to mark the time as valid
	stat, err := d.tr.ReadRegister(Status)
	if err != nil {
		return err
	}
	return d.tr.WriteRegister(Status, stat&^statusOSF)
}

// Valid reports whether the oscillator has run continuously since the time was last set.
func (d *Device) Valid() (bool, error) {
	if !d.configured {
		return false, ErrNotConfigured
	}
	stat, err := d.tr.ReadRegister(Status)
	if err != nil {
		return false, err
	}
	return stat&statusOSF == 0, nil
}

// Now returns the current time in the configured location.
func (d *Device) Now() (time.Time, error) {
	dt, err := d.DateTime()
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time(d.loc), nil
}

// Unix returns the current time as seconds since Jan 1, 1970 UTC.
func (d *Device) Unix() (int64, error) {
	t, err := d.Now()
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// Set sets the clock to t, converted to the configured location.
func (d *Device) Set(t time.Time) error {
	return d.SetDateTime(Explicit(FromTime(t.In(d.loc))))
}
