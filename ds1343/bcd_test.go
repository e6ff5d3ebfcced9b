package ds1343

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBCDRoundTrip(t *testing.T) {
	c := qt.New(t)
	for n := 0; n < 100; n++ {
		c.Assert(bcdToInt(uint8(intToBCD(n))), qt.Equals, n, qt.Commentf("n=%d", n))
	}
}

func TestIntToBCD(t *testing.T) {
	c := qt.New(t)
	for _, tc := range []struct {
		dec  int
		want uint16
	}{
		{0, 0x0000},
		{7, 0x0007},
		{10, 0x0010},
		{59, 0x0059},
		{99, 0x0099},
		{100, 0x0100},
		{999, 0x0999},
		{2024, 0x2024},
		{9999, 0x9999},
	} {
		c.Assert(intToBCD(tc.dec), qt.Equals, tc.want, qt.Commentf("dec=%d", tc.dec))
	}
}

func TestBCDToInt(t *testing.T) {
	c := qt.New(t)
	c.Assert(bcdToInt(0x00), qt.Equals, 0)
	c.Assert(bcdToInt(0x45), qt.Equals, 45)
	c.Assert(bcdToInt(0x99), qt.Equals, 99)
	// invalid nibbles are not rejected
	c.Assert(bcdToInt(0x1A), qt.Equals, 20)
}
