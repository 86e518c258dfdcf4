// Package image1bit provides a 1-bit monochrome image format for the SSD1309 display controller.
//
// The SSD1309 OLED controller is monochrome: every pixel is either lit or unlit.
// Pixels are stored in vertical byte packing (page addressing) where each byte
// contains 8 vertically stacked pixels, least significant bit topmost.
//
// Memory layout example for a 128x64 image:
//
//	Byte index b covers page b/128 (rows page*8 .. page*8+7), column b%128.
//	Bit k of that byte is the pixel at row page*8+k.
//
// This package provides:
//
// - Bit: A color type representing a monochrome pixel (On or Off)
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the SSD1309 RAM layout
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Get a pixel
//	bit := img.BitAt(10, 20)
//	println(bit.String())  // Output: On
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
