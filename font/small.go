package font

// 5 dots high font. Only capital letters are defined, lowercase
// input is upper-cased before lookup.
//
// Missing symbols: # € $ @ ~
// Missing extra characters: Ã Æ Õ Ø Œ Ñ Š Ž

const smallHeight = 5
const smallWidth  = 3

const smallUpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const smallNumberChars = "0123456789"
const smallSymbolChars = " .,!?:;-_'\"%&/\\()<>=+*|[]{}^°¡¿`´’"
const smallExtraChars  = "ÁÀÂÄÅÉÈÊËÍÌÎÏÓÒÔÖÚÙÛÜÝŸẞÇ"

func newSmallFont() *tableFont {
	font := newTableFont("small", smallWidth, smallHeight, true)
	font.addRowTable(smallUpperChars, smallUpperDots)
	font.addRowTable(smallNumberChars, smallNumberDots)
	font.addRowTable(smallSymbolChars, smallSymbolDots)
	font.addRowTable(smallExtraChars, smallExtraDots)
	return font
}

// Each table has one entry per dot row, and each row has one
// pattern per character, in the same order as the char strings.

var smallUpperDots = [][]string{
	{" # ", "## ", " ##", "## ", "###", "###", " ##", "# #", "#", "  #", "# #", "#  ", "# #", "# #", " # ", "## ", " # ", "## ", " ##", "###", "# #", "# #", "# #", "# #", "# #", "###"},
	{"# #", "# #", "#  ", "# #", "#  ", "#  ", "#  ", "# #", "#", "  #", "# #", "#  ", "###", "###", "# #", "# #", "# #", "# #", "#  ", " # ", "# #", "# #", "# #", "# #", "# #", "  #"},
	{"###", "## ", "#  ", "# #", "## ", "## ", "# #", "###", "#", "  #", "## ", "#  ", "# #", "###", "# #", "## ", "# #", "## ", " # ", " # ", "# #", "# #", "# #", " # ", " # ", " # "},
	{"# #", "# #", "#  ", "# #", "#  ", "#  ", "# #", "# #", "#", "# #", "# #", "#  ", "# #", "###", "# #", "#  ", "###", "# #", "  #", " # ", "# #", "## ", "###", "# #", " # ", "#  "},
	{"# #", "## ", " ##", "## ", "###", "#  ", " # ", "# #", "#", " # ", "# #", "###", "# #", "# #", " # ", "#  ", " ##", "# #", "## ", " # ", " # ", "#  ", "# #", "# #", " # ", "###"},
}

var smallNumberDots = [][]string{
	{" # ", " #", "## ", "## ", "# #", "###", " # ", "###", " # ", " # "},
	{"# #", "##", "  #", "  #", "# #", "#  ", "#  ", "  #", "# #", "# #"},
	{"# #", " #", " # ", " # ", "###", "## ", "## ", " # ", " # ", " ##"},
	{"# #", " #", "#  ", "  #", "  #", "  #", "# #", "#  ", "# #", "  #"},
	{" # ", " #", "###", "## ", "  #", "## ", " # ", "#  ", " # ", " # "},
}

var smallSymbolDots = [][]string{
	{"   ", " ", "  ", "#", "## ", " ", "  ", "   ", "   ", "#", "# #", "# #", " # ", "  #", "#  ", " #", "# ", "  #", "#  ", "   ", "   ", "   ", "#", "##", "##", " ##", "## ", " # ", " # ", "#", " # ", "# ", " #", " #"},
	{"   ", " ", "  ", "#", "  #", "#", " #", "   ", "   ", "#", "# #", "  #", "# #", "  #", "#  ", "# ", " #", " # ", " # ", "###", " # ", "# #", "#", "# ", " #", " # ", " # ", "# #", "# #", " ", "   ", " #", "# ", "# "},
	{"   ", " ", "  ", "#", " # ", " ", "  ", "###", "   ", " ", "   ", " # ", " # ", " # ", " # ", "# ", " #", "#  ", "  #", "   ", "###", " # ", "#", "# ", " #", "#  ", "  #", "   ", " # ", "#", " # ", "  ", "  ", "  "},
	{"   ", " ", " #", " ", "   ", "#", " #", "   ", "   ", " ", "   ", "#  ", "# #", "#  ", "  #", "# ", " #", " # ", " # ", "###", " # ", "# #", "#", "# ", " #", " # ", " # ", "   ", "   ", "#", "#  ", "  ", "  ", "  "},
	{"   ", "#", "# ", "#", " # ", " ", "# ", "   ", "###", " ", "   ", "# #", " ##", "#  ", "  #", " #", "# ", "  #", "#  ", "   ", "   ", "   ", "#", "##", "##", " ##", "## ", "   ", "   ", "#", " ##", "  ", "  ", "  "},
}

var smallExtraDots = [][]string{
	{"  #", "#  ", " # ", "# #", " # ", "  #", "#  ", " # ", "# #", " #", "# ", " # ", "# #", " # ", " # ", " # ", "# #", "  #", "#  ", " # ", "# #", "  #", "# #", "## ", " ##"},
	{" # ", " # ", "# #", "   ", "   ", " # ", " # ", "# #", "   ", "# ", " #", "# #", "   ", "#  ", "  #", "# #", "   ", " # ", " # ", "# #", "   ", " # ", "   ", "# #", "#  "},
	{"###", "###", "###", "###", "###", "###", "###", "###", "###", " #", "# ", " # ", " # ", "###", "###", "###", "###", "# #", "# #", "# #", "# #", "# #", "# #", "## ", "#  "},
	{"###", "###", "###", "###", "###", "## ", "## ", "## ", "## ", " #", "# ", " # ", " # ", "# #", "# #", "# #", "# #", "# #", "# #", "# #", "# #", " # ", " # ", "# #", " ##"},
	{"# #", "# #", "# #", "# #", "# #", "###", "###", "###", "###", " #", "# ", " # ", " # ", "###", "###", "###", "###", "###", "###", "###", "###", " # ", " # ", "###", " # "},
}
