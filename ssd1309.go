// Package ssd1309 controls a SSD1309 OLED display via 4-wire SPI.
//
// The SSD1309 is a 1-bit monochrome OLED controller driving 128x64 panels.
// Common boards are the Waveshare 1.51" transparent OLED and similar modules.
//
// See the examples for how to use this package.
package ssd1309

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1309/image1bit"
)

// Display geometry. The SSD1309 RAM is page addressed: 8 pages of 128
// columns, one byte per column covering 8 vertically stacked pixels.
const (
	Width  = 128
	Height = 64

	// FrameBufferSize is the framebuffer size in bytes (128x64/8 = 1024).
	FrameBufferSize = Width * Height / 8
)

// SSD1309 command set.
const (
	setLowColumn       = 0x00
	setHighColumn      = 0x10
	setMemoryMode      = 0x20
	setStartLine       = 0x40
	setContrast        = 0x81
	setSegRemapNormal  = 0xA0
	setSegRemapFlipped = 0xA1
	setDisplayResume   = 0xA4
	setNormalDisplay   = 0xA6
	setInvertDisplay   = 0xA7
	setMultiplexRatio  = 0xA8
	setDisplayOff      = 0xAE
	setDisplayOn       = 0xAF
	setPageStart       = 0xB0
	setComScanInc      = 0xC0
	setComScanDec      = 0xC8
	setDisplayOffset   = 0xD3
	setDisplayClockDiv = 0xD5
	setPrecharge       = 0xD9
	setComPins         = 0xDA
	setVComDeselect    = 0xDB

	// Page addressing mode parameter for setMemoryMode.
	pageAddressingMode = 0x02
)

// Reset timing. The datasheet asks for a >=3us low pulse; common SSD1309
// boards are driven with a 1ms pulse and a 10ms settle before the first
// command.
const (
	resetPulse  = 1 * time.Millisecond
	resetSettle = 10 * time.Millisecond
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Contrast: 0x7F,
}

// Opts is the configuration for the SSD1309 display.
type Opts struct {
	// Rotated rotates the display by 180° by flipping the segment remap and
	// COM scan direction.
	Rotated bool

	// Contrast is the power-on contrast level (0-255).
	Contrast byte
}

// Dev is the device handle for the SSD1309 display.
//
// A Dev is not safe for concurrent use; the caller must ensure a single
// owner issues operations at a time.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	cs  gpio.PinOut // Chip Select pin
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinOut // Reset pin

	// Display geometry
	rect image.Rectangle

	// Configuration
	rotated  bool
	contrast byte

	// Framebuffer, page addressed: byte b covers page b/128, column b%128.
	fb [FrameBufferSize]byte

	// Scratch byte so WriteCmd does not allocate.
	cbuf [1]byte

	// State
	halted bool
}

// NewSPI creates a new SSD1309 device connected via SPI.
//
// The SPI port is configured for 8MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The cs (Chip Select), dc (Data/Command) and rst (Reset) GPIO
// pins must all be provided and configured as outputs; the driver brackets
// every transaction with cs itself rather than relying on the port's
// hardware chip select.
//
// opts can be nil to use defaults. NewSPI does not touch the panel; call
// Init before the first Update.
func NewSPI(p spi.Port, cs, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if cs == nil || dc == nil || rst == nil {
		return nil, errors.New("ssd1309: CS, DC and RST pins are required")
	}
	if opts == nil {
		opts = &DefaultOpts
	}

	// Establish SPI connection
	// SSD1309 supports Mode0 (CPOL=0, CPHA=0) or Mode3 (CPOL=1, CPHA=1)
	// Using Mode0 and 8MHz (conservative, up to 10MHz supported)
	c, err := p.Connect(8*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	return &Dev{
		c:        c,
		cs:       cs,
		dc:       dc,
		rst:      rst,
		rect:     image.Rect(0, 0, Width, Height),
		rotated:  opts.Rotated,
		contrast: opts.Contrast,
	}, nil
}

// Reset performs the hardware reset sequence: RST low, settle, RST high,
// settle. No command may be issued before the second settle elapses; Reset
// returns only after both delays.
func (d *Dev) Reset() error {
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("ssd1309: failed to pull RST low: %w", err)
	}
	time.Sleep(resetPulse)

	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("ssd1309: failed to pull RST high: %w", err)
	}
	time.Sleep(resetSettle)
	return nil
}

// Init resets the controller and sends the initialization sequence, leaving
// the display on and ready for Update.
//
// Parameter bytes are sent as commands: the SSD1309 treats them as command
// bytes, not data. Init aborts on the first transport error; the caller
// retries the whole sequence.
func (d *Dev) Init() error {
	if err := d.Reset(); err != nil {
		return err
	}

	// Default orientation scans COM63->COM0 with columns remapped so that
	// (0,0) is the top-left corner on common modules.
	segRemap := byte(setSegRemapFlipped)
	comScan := byte(setComScanDec)
	if d.rotated {
		segRemap = setSegRemapNormal
		comScan = setComScanInc
	}

	seq := [...]byte{
		setDisplayOff,
		setDisplayClockDiv, 0x80,
		setMultiplexRatio, Height - 1,
		setDisplayOffset, 0x00,
		setStartLine | 0x00,
		setContrast, d.contrast,
		segRemap,
		comScan,
		setComPins, 0x12,
		setPrecharge, 0x22,
		setVComDeselect, 0x34,
		setMemoryMode, pageAddressingMode,
		setDisplayResume,
		setNormalDisplay,
		setDisplayOn,
	}
	for _, cmd := range seq {
		if err := d.WriteCmd(cmd); err != nil {
			return err
		}
	}

	d.halted = false
	return nil
}

// WriteCmd sends a single command byte.
//
// The Data/Command line is driven LOW before Chip Select is asserted and
// held for the whole transaction.
func (d *Dev) WriteCmd(cmd byte) error {
	d.cbuf[0] = cmd
	return d.write(gpio.Low, d.cbuf[:])
}

// WriteData sends a data buffer.
//
// The Data/Command line is driven HIGH before Chip Select is asserted. An
// empty buffer is a no-op that still brackets the transaction and returns
// nil.
func (d *Dev) WriteData(data []byte) error {
	return d.write(gpio.High, data)
}

// write frames one transaction: DC level first, then CS assert, transfer,
// CS deassert. CS is deasserted on every exit path, including transport
// failure mid-buffer.
func (d *Dev) write(level gpio.Level, buf []byte) error {
	if err := d.dc.Out(level); err != nil {
		return fmt.Errorf("ssd1309: failed to set DC: %w", err)
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("ssd1309: failed to assert CS: %w", err)
	}
	var txErr error
	if len(buf) > 0 {
		txErr = d.c.Tx(buf, nil)
	}
	if err := d.cs.Out(gpio.High); err != nil && txErr == nil {
		txErr = fmt.Errorf("ssd1309: failed to deassert CS: %w", err)
	}
	return txErr
}

// Update pushes the full framebuffer to display RAM.
//
// Pages are sent in ascending order 0..7; within a page, columns ascend,
// matching the framebuffer byte layout exactly. On error, pages already
// sent remain displayed and later pages keep stale content; Update is
// idempotent, so retrying converges the panel to the framebuffer. The
// framebuffer is never mutated.
func (d *Dev) Update() error {
	if d.halted {
		return errors.New("ssd1309: halted")
	}
	for page := 0; page < Height/8; page++ {
		if err := d.WriteCmd(setPageStart | byte(page)); err != nil {
			return err
		}
		if err := d.WriteCmd(setLowColumn | 0x00); err != nil {
			return err
		}
		if err := d.WriteCmd(setHighColumn | 0x00); err != nil {
			return err
		}
		off := page * Width
		if err := d.WriteData(d.fb[off : off+Width]); err != nil {
			return err
		}
	}
	return nil
}

// Framebuffer returns the raw framebuffer storage for external rendering
// code. The layout is page-major: byte b covers page b/128, column b%128,
// LSB topmost. Writes take effect on the panel at the next Update.
func (d *Dev) Framebuffer() []byte {
	return d.fb[:]
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write replaces the framebuffer with raw pixel data in VerticalLSB format
// and pushes it to the display. The data must be exactly FrameBufferSize
// bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("ssd1309: halted")
	}
	if len(pixels) != FrameBufferSize {
		return 0, errors.New("ssd1309: invalid buffer size")
	}
	copy(d.fb[:], pixels)
	if err := d.Update(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the framebuffer and pushes it to the display.
// The dst rectangle specifies the destination region on the display; sp is
// the origin within src.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ssd1309: halted")
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Rasterize straight into the framebuffer through a VerticalLSB view.
	fb := &image1bit.VerticalLSB{
		Pix:    d.fb[:],
		Stride: Width,
		Rect:   d.rect,
	}
	draw.Draw(fb, dst, src, sp, draw.Src)

	return d.Update()
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1309: halted")
	}
	if err := d.WriteCmd(setContrast); err != nil {
		return err
	}
	return d.WriteCmd(contrast)
}

// Invert inverts the display colors (lit becomes unlit and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1309: halted")
	}
	mode := byte(setNormalDisplay)
	if invert {
		mode = setInvertDisplay
	}
	return d.WriteCmd(mode)
}

// Halt powers off the display.
// After calling Halt, the device will not accept further operations until
// it is re-initialized with Init.
func (d *Dev) Halt() error {
	d.halted = true
	return d.WriteCmd(setDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1309.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
