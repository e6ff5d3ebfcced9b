package ds1343

import (
	"tinygo.org/x/drivers"
)

// Pin is the chip-enable line framing a bus session. machine.Pin satisfies it.
// The DS1343 chip enable is active high.
type Pin interface {
	High()
	Low()
}

// Transport performs register reads and writes against the DS1343. Every call runs in its own chip-enable session:
// one address byte carrying the direction in its top bit, followed by the data bytes. The chip auto-increments its
// register pointer within a session, so multi-byte transfers must not be split across calls.
//
// A Transport is not safe for concurrent use.
type Transport struct {
	bus drivers.SPI
	ce  Pin
	buf [8]byte
}

// NewTransport creates a register transport on a preconfigured SPI bus (see Mode) and chip enable pin.
func NewTransport(bus drivers.SPI, ce Pin) *Transport {
	return &Transport{
		bus: bus,
		ce:  ce,
	}
}

// begin asserts chip enable. The returned func releases it and must run on every exit path.
func (t *Transport) begin() func() {
	t.ce.High()
	return t.ce.Low
}

// ReadRegisters reads len(data) consecutive registers starting at address. The direction bit is always cleared.
func (t *Transport) ReadRegisters(address uint8, data []byte) error {
	end := t.begin()
	defer end()

	t.buf[0] = address & addressMask
	if err := t.bus.Tx(t.buf[:1], nil); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return t.bus.Tx(nil, data)
}

// WriteRegisters writes data to consecutive registers starting at address in a single burst. The direction bit is
// always set.
func (t *Transport) WriteRegisters(address uint8, data []byte) error {
	end := t.begin()
	defer end()

	t.buf[0] = address | writeFlag
	if len(data) < len(t.buf) {
		// short writes go out as one transfer
		n := copy(t.buf[1:], data)
		return t.bus.Tx(t.buf[:1+n], nil)
	}
	if err := t.bus.Tx(t.buf[:1], nil); err != nil {
		return err
	}
	return t.bus.Tx(data, nil)
}

// ReadRegister reads a single register.
func (t *Transport) ReadRegister(address uint8) (uint8, error) {
	var buf [1]byte
	err := t.ReadRegisters(address, buf[:])
	return buf[0], err
}

// WriteRegister writes a single register.
func (t *Transport) WriteRegister(address, value uint8) error {
	buf := [1]byte{value}
	return t.WriteRegisters(address, buf[:])
}
