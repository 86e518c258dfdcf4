// Package ssd1309 controls a SSD1309 OLED display via 4-wire SPI.
//
// The SSD1309 is a monochrome OLED controller driving 128×64 panels, found
// on boards like the Waveshare 1.51" transparent OLED. The driver maintains
// a 1 KiB in-memory framebuffer and pushes it to display RAM on demand.
//
// # Display Characteristics
//
//   - 1-bit monochrome, 128×64 pixels
//   - Page-addressed RAM: 8 pages of 128 columns, 8 vertical pixels per byte
//   - Adjustable contrast (0-255)
//   - Display inversion
//   - No internal charge pump (panel supply handled by the board)
//
// # Hardware Connection
//
// Connect the SSD1309 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	CLK         → SPI Clock (SCLK)
//	DIN/MOSI    → SPI Data (MOSI)
//	CS          → GPIO (driven by this driver)
//	DC          → GPIO (any available pin)
//	RST         → GPIO (any available pin)
//
// CS, DC and RST are all driven by the driver as plain GPIOs: the
// Data/Command line is set before Chip Select asserts, and Chip Select
// brackets every transaction.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ssd1309"
//		"periph.io/x/devices/v3/ssd1309/image1bit"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get control GPIO pins
//		csPin := gpioreg.ByName("GPIO8")
//		dcPin := gpioreg.ByName("GPIO25")
//		rstPin := gpioreg.ByName("GPIO27")
//
//		// Create device
//		dev, _ := ssd1309.NewSPI(spiBus, csPin, dcPin, rstPin, nil)
//		defer dev.Halt()
//
//		// Reset the panel and send the power-on sequence
//		dev.Init()
//
//		// Draw a frame
//		img := image1bit.NewVerticalLSB(dev.Bounds())
//		for x := 0; x < 128; x++ {
//			img.SetBit(x, 32, image1bit.On)
//		}
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Lifecycle
//
// NewSPI only constructs the device; it does not touch the panel. Init
// performs the hardware reset (RST low, settle, high, settle) followed by
// the fixed power-on command sequence, and must complete before the first
// Update. If Init fails, retry the whole sequence; partial initialization
// is not resumed.
//
// # Framebuffer Access
//
// The driver owns a statically sized 1024-byte framebuffer. External
// rendering code can write it directly:
//
//	fb := dev.Framebuffer()
//	fb[page*128+column] = 0x81 // top and bottom pixel of the byte
//	dev.Update()
//
// The layout is page-major: byte b covers page b/128, column b%128, least
// significant bit topmost. Update transmits the full framebuffer, pages
// 0-7 in ascending order, and never mutates it. On a transport error,
// simply call Update again to converge the panel.
//
// # Error Handling
//
// Every operation that touches the transport returns the first error
// encountered and aborts its remaining sequence. The driver never retries;
// recovery is the caller's responsibility (retry Init from scratch, or
// retry Update, which is idempotent). Chip Select is released on every
// exit path, so a failed transfer never leaves the panel selected.
//
// # Concurrency
//
// All operations are blocking and run to completion on the calling
// goroutine. A Dev is not safe for concurrent use; the caller must ensure
// a single owner issues operations on a given device at a time.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.hpinfotech.ro/SSD1309.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package ssd1309
