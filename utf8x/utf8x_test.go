package utf8x

import "testing"

func TestDecodeASCII(t *testing.T) {
	cp, n, valid := Decode([]byte{0x24})
	if cp != 0x24 || n != 1 || !valid {
		t.Fatalf("got {%U, %d, %v}, want {U+0024, 1, true}", cp, n, valid)
	}
}

func TestDecodeInvalidByte(t *testing.T) {
	cp, n, valid := Decode([]byte{0xFF})
	if cp != ReplacementRune || n != 1 || valid {
		t.Fatalf("got {%U, %d, %v}, want {U+003F, 1, false}", cp, n, valid)
	}
}

func TestDecodeTwoByte(t *testing.T) {
	// U+00A2 CENT SIGN = 0xC2 0xA2
	cp, n, valid := Decode([]byte{0xC2, 0xA2})
	if cp != 0xA2 || n != 2 || !valid {
		t.Fatalf("got {%U, %d, %v}, want {U+00A2, 2, true}", cp, n, valid)
	}
}

func TestDecodeThreeByte(t *testing.T) {
	// U+20AC EURO SIGN = 0xE2 0x82 0xAC
	cp, n, valid := Decode([]byte{0xE2, 0x82, 0xAC})
	if cp != 0x20AC || n != 3 || !valid {
		t.Fatalf("got {%U, %d, %v}", cp, n, valid)
	}
}

func TestDecodeFourByte(t *testing.T) {
	// U+1F600 GRINNING FACE = 0xF0 0x9F 0x98 0x80
	cp, n, valid := Decode([]byte{0xF0, 0x9F, 0x98, 0x80})
	if cp != 0x1F600 || n != 4 || !valid {
		t.Fatalf("got {%U, %d, %v}", cp, n, valid)
	}
}

func TestDecodeRejectsOverlong(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL.
	cp, n, valid := Decode([]byte{0xC0, 0x80})
	if valid || cp != ReplacementRune || n != 1 {
		t.Fatalf("overlong encoding must be rejected, got {%U, %d, %v}", cp, n, valid)
	}
}

func TestDecodeRejectsSurrogate(t *testing.T) {
	// 0xED 0xA0 0x80 encodes U+D800, a UTF-16 surrogate.
	cp, n, valid := Decode([]byte{0xED, 0xA0, 0x80})
	if valid || cp != ReplacementRune || n != 1 {
		t.Fatalf("surrogate encoding must be rejected, got {%U, %d, %v}", cp, n, valid)
	}
}

func TestDecodeRejectsOutOfRange(t *testing.T) {
	// 0xF4 0x90 0x80 0x80 encodes U+110000, past U+10FFFF.
	cp, n, valid := Decode([]byte{0xF4, 0x90, 0x80, 0x80})
	if valid || cp != ReplacementRune || n != 1 {
		t.Fatalf("codepoint above U+10FFFF must be rejected, got {%U, %d, %v}", cp, n, valid)
	}
}

func TestDecodeTruncatedSequence(t *testing.T) {
	cp, n, valid := Decode([]byte{0xE2, 0x82})
	if valid || cp != ReplacementRune || n != 1 {
		t.Fatalf("truncated sequence must be rejected, got {%U, %d, %v}", cp, n, valid)
	}
}

func TestCountRoundTrip(t *testing.T) {
	// "Hi€" — all-valid buffer.
	buf := []byte("Hi\xe2\x82\xac")
	c := Count(buf)
	if c.InvalidBytes != 0 {
		t.Fatalf("expected no invalid bytes, got %d", c.InvalidBytes)
	}
	if c.TotalRunes != c.ValidRunes {
		t.Fatalf("expected total == valid for an all-valid buffer, got total=%d valid=%d", c.TotalRunes, c.ValidRunes)
	}
	if c.TotalRunes != 3 {
		t.Fatalf("expected 3 runes (H, i, euro sign), got %d", c.TotalRunes)
	}
}

func TestCountErrorRecovery(t *testing.T) {
	buf := []byte{0x41, 0xFF, 0x42}
	c := Count(buf)
	if c.TotalRunes != 3 {
		t.Fatalf("expected 3 runes, got %d", c.TotalRunes)
	}
	if c.InvalidBytes != 1 {
		t.Fatalf("expected 1 invalid byte, got %d", c.InvalidBytes)
	}
	if c.ValidRunes != 2 {
		t.Fatalf("expected 2 valid runes, got %d", c.ValidRunes)
	}
	if c.BytesProcessed != 3 {
		t.Fatalf("expected 3 bytes processed, got %d", c.BytesProcessed)
	}
}
