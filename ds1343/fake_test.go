package ds1343

import (
	"errors"

	"tinygo.org/x/drivers"
)

var _ drivers.SPI = (*fakeBus)(nil)

var (
	errNotSelected = errors.New("fake: transfer without chip enable")
	errBus         = errors.New("fake: bus error")
)

type regWrite struct {
	Reg, Val uint8
}

// fakeBus simulates the DS1343 register file behind an SPI bus. The first byte of a session selects the register
// and direction; the register pointer auto-increments after each data byte.
type fakeBus struct {
	regs [0x20]byte

	selected bool
	haveAddr bool
	write    bool
	ptr      uint8

	highs, lows int
	calls       int
	failAt      int // fail the n-th Tx call (1-based), 0 never

	addrs  []byte
	writes []regWrite
}

type fakeCE struct {
	bus *fakeBus
}

func (p fakeCE) High() {
	p.bus.highs++
	p.bus.selected = true
	p.bus.haveAddr = false
}

func (p fakeCE) Low() {
	p.bus.lows++
	p.bus.selected = false
}

func newFake() (*fakeBus, *Device) {
	bus := &fakeBus{}
	return bus, New(bus, fakeCE{bus})
}

func (f *fakeBus) Tx(w, r []byte) error {
	if !f.selected {
		return errNotSelected
	}
	f.calls++
	if f.failAt != 0 && f.calls == f.failAt {
		return errBus
	}
	for _, b := range w {
		if !f.haveAddr {
			f.haveAddr = true
			f.addrs = append(f.addrs, b)
			f.ptr = b & 0x7F
			f.write = b&0x80 != 0
			continue
		}
		if f.write {
			f.regs[f.ptr%uint8(len(f.regs))] = b
			f.writes = append(f.writes, regWrite{f.ptr, b})
			f.ptr++
		}
	}
	for i := range r {
		r[i] = f.regs[f.ptr%uint8(len(f.regs))]
		f.ptr++
	}
	return nil
}

func (f *fakeBus) Transfer(b byte) (byte, error) {
	r := [1]byte{}
	err := f.Tx([]byte{b}, r[:])
	return r[0], err
}

// reset clears the recorded traffic.
func (f *fakeBus) reset() {
	f.calls = 0
	f.failAt = 0
	f.addrs = nil
	f.writes = nil
	f.highs, f.lows = 0, 0
}
