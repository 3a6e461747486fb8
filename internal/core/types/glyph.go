package types

import (
	"fmt"
)

// Glyph - упакованный цветной символ клетки.
// Используется и в самом тайле, и в "памяти" карты (последний увиденный вид).
//
//	[0:8]  - символ (1 байт) - маска 0xFF
//	[8:32] - RGB-цвет (3 байта) - маска 0xFFFFFF
type Glyph uint32

// Blank - пустая память: клетку ещё ни разу не видели.
const Blank Glyph = 0

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph создает Glyph из RGB-цвета (0xRRGGBB) и ASCII-символа.
//
//	glyph := MakeGlyph(0xFFA500, 'A') // 0xFFA50041
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color извлекает 24-битный цвет 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char извлекает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// WithColor возвращает тот же символ другим цветом (кровь на полу и т.п.).
func (g Glyph) WithColor(colorRGB uint32) Glyph {
	return MakeGlyph(colorRGB, g.Char())
}

// IsBlank сообщает, что глиф пустой.
func (g Glyph) IsBlank() bool {
	return g == Blank
}

// String реализует fmt.Stringer: "Glyph{char='#', color=#808080}".
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Непечатаемые символы показываем в hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor возвращает цвет строкой вида "#00FF00".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}
