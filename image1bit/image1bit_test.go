package image1bit

import (
	"image"
	"image/color"
	"testing"
)

func TestNewVerticalLSB(t *testing.T) {
	tests := []struct {
		name    string
		rect    image.Rectangle
		wantLen int
	}{
		{"128x64", image.Rect(0, 0, 128, 64), 1024},
		{"128x32", image.Rect(0, 0, 128, 32), 512},
		{"8x8", image.Rect(0, 0, 8, 8), 8},
		{"empty", image.Rect(0, 0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewVerticalLSB(tt.rect)
			if len(img.Pix) != tt.wantLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantLen)
			}
			if img.Bounds() != tt.rect {
				t.Errorf("Bounds() = %v, want %v", img.Bounds(), tt.rect)
			}
		})
	}
}

func TestNewVerticalLSBPanicsOnBadHeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for height not a multiple of 8")
		}
	}()
	NewVerticalLSB(image.Rect(0, 0, 128, 63))
}

func TestSetBitLayout(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 128, 64))

	tests := []struct {
		name       string
		x, y       int
		wantOffset int
		wantMask   byte
	}{
		{"origin", 0, 0, 0, 0x01},
		{"top band bottom row", 0, 7, 0, 0x80},
		{"second band", 5, 17, 2*128 + 5, 0x02},
		{"last pixel", 127, 63, 7*128 + 127, 0x80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range img.Pix {
				img.Pix[i] = 0
			}
			img.SetBit(tt.x, tt.y, On)

			for i, b := range img.Pix {
				switch {
				case i == tt.wantOffset && b != tt.wantMask:
					t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, b, tt.wantMask)
				case i != tt.wantOffset && b != 0:
					t.Errorf("Pix[%d] = 0x%02X, want 0x00", i, b)
				}
			}
		})
	}
}

func TestSetBitClear(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	img.SetBit(3, 5, On)
	if !bool(img.BitAt(3, 5)) {
		t.Fatal("pixel should be On after SetBit(On)")
	}
	img.SetBit(3, 5, Off)
	if img.BitAt(3, 5) {
		t.Error("pixel should be Off after SetBit(Off)")
	}
	// Clearing one pixel must not disturb its byte neighbors.
	img.SetBit(3, 4, On)
	img.SetBit(3, 5, Off)
	if !bool(img.BitAt(3, 4)) {
		t.Error("neighboring pixel in same byte was disturbed")
	}
}

func TestBitAtOutOfBounds(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	if img.BitAt(-1, 0) != Off {
		t.Error("BitAt out of bounds should return Off")
	}
	if img.BitAt(0, 8) != Off {
		t.Error("BitAt out of bounds should return Off")
	}
}

func TestSetBitOutOfBoundsIgnored(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	img.SetBit(8, 0, On)
	img.SetBit(0, -1, On)
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X, want 0x00", i, b)
		}
	}
}

func TestBitModel(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Bit
	}{
		{"white", color.White, On},
		{"black", color.Black, Off},
		{"bit on passthrough", On, On},
		{"bit off passthrough", Off, Off},
		{"dark gray", color.Gray{Y: 0x40}, Off},
		{"light gray", color.Gray{Y: 0xC0}, On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitModel.Convert(tt.c).(Bit); got != tt.want {
				t.Errorf("Convert(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestBitRGBA(t *testing.T) {
	r, g, b, a := On.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("On.RGBA() = %d,%d,%d,%d, want all 0xFFFF", r, g, b, a)
	}
	r, g, b, a = Off.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Off.RGBA() = %d,%d,%d,%d, want 0,0,0,0xFFFF", r, g, b, a)
	}
}

func TestBitString(t *testing.T) {
	if On.String() != "On" {
		t.Errorf("On.String() = %q, want %q", On.String(), "On")
	}
	if Off.String() != "Off" {
		t.Errorf("Off.String() = %q, want %q", Off.String(), "Off")
	}
}

func TestNonZeroOrigin(t *testing.T) {
	img := NewVerticalLSB(image.Rect(2, 8, 10, 16))
	img.SetBit(2, 8, On)
	if img.Pix[0] != 0x01 {
		t.Errorf("Pix[0] = 0x%02X, want 0x01", img.Pix[0])
	}
	if !bool(img.BitAt(2, 8)) {
		t.Error("BitAt(2, 8) should be On")
	}
}
