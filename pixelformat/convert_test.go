package pixelformat

import "testing"

func TestFormatRoundTrip(t *testing.T) {
	rgba := []byte{200, 100, 50, 255}

	exact := []Format{R8G8B8A8, R8G8B8, Grayscale, GrayAlpha, R32, R32G32B32, R32G32B32A32}
	lossy := []Format{R5G6B5, R5G5B5A1, R4G4B4A4}

	for _, f := range exact {
		tmp := make([]byte, BytesPerPixel(f))
		if !FormatPixels(tmp, f, rgba, R8G8B8A8, 1, 1) {
			t.Fatalf("%v: conversion to failed", f)
		}
		back := make([]byte, 4)
		if !FormatPixels(back, R8G8B8A8, tmp, f, 1, 1) {
			t.Fatalf("%v: conversion back failed", f)
		}

		switch f {
		case Grayscale, GrayAlpha, R32:
			// Lossy by construction (collapses to luma); only alpha
			// preservation and exactness for flat gray is meaningful,
			// so skip the exact rgba comparison for these.
			continue
		}
		for i, want := range rgba {
			if back[i] != want {
				t.Errorf("%v: round trip byte %d = %d, want %d", f, i, back[i], want)
			}
		}
	}

	for _, f := range lossy {
		tmp := make([]byte, BytesPerPixel(f))
		if !FormatPixels(tmp, f, rgba, R8G8B8A8, 1, 1) {
			t.Fatalf("%v: conversion to failed", f)
		}
		back := make([]byte, 4)
		if !FormatPixels(back, R8G8B8A8, tmp, f, 1, 1) {
			t.Fatalf("%v: conversion back failed", f)
		}
		// Quantization inherent in the narrower format: allow slack.
		for i := 0; i < 3; i++ {
			diff := int(back[i]) - int(rgba[i])
			if diff < -10 || diff > 10 {
				t.Errorf("%v: round trip byte %d = %d, too far from %d", f, i, back[i], rgba[i])
			}
		}
	}
}

func TestImageSizeIdentity(t *testing.T) {
	cases := []struct {
		w, h int
		f    Format
	}{
		{16, 16, R8G8B8A8},
		{32, 8, R8G8B8},
		{4, 4, Grayscale},
		{10, 10, R32G32B32A32},
	}
	for _, c := range cases {
		got := PixelBufferSize(c.w, c.h, c.f)
		want := c.w * c.h * BytesPerPixel(c.f)
		if got != want {
			t.Errorf("PixelBufferSize(%d,%d,%v) = %d, want %d", c.w, c.h, c.f, got, want)
		}
	}
}

func TestAlphaThreshold(t *testing.T) {
	// Alpha exactly at the 50/255 threshold packs to opaque in R5G5B5A1.
	dst := make([]byte, 2)
	EncodeFromNormalized(dst, R5G5B5A1, 1, 1, 1, 50.0/255.0)
	_, _, _, a := DecodeToNormalized(dst, R5G5B5A1)
	if a != 1 {
		t.Errorf("alpha at threshold should pack to 1, got %v", a)
	}

	EncodeFromNormalized(dst, R5G5B5A1, 1, 1, 1, 49.0/255.0)
	_, _, _, a = DecodeToNormalized(dst, R5G5B5A1)
	if a != 0 {
		t.Errorf("alpha below threshold should pack to 0, got %v", a)
	}
}
