package font

// 7 dots high font. Capital letters only, like the small font, but
// with a few more symbols and extra characters. Accented capitals
// are squashed to 6 rows to leave room for the mark.

const normalHeight = 7
const normalWidth  = 5

const normalUpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const normalNumberChars = "0123456789"
const normalSymbolChars = " .,!?:;-_'\"%&/\\()<>=+*|[]{}^°¡¿`´’#€$@~"
const normalExtraChars  = "ÁÀÂÄÅÃÉÈÊËÍÌÎÏÓÒÔÖÕÚÙÛÜÝŸÑẞÇØ"

func newNormalFont() *tableFont {
	font := newTableFont("normal", normalWidth, normalHeight, true)
	font.addRowTable(normalUpperChars, normalUpperDots)
	font.addRowTable(normalNumberChars, normalNumberDots)
	font.addRowTable(normalSymbolChars, normalSymbolDots)
	font.addRowTable(normalExtraChars, normalExtraDots)
	return font
}

var normalUpperDots = [][]string{
	{" ### ", "#### ", " ### ", "#### ", "#####", "#####", " ### ", "#   #", "###", "  ###", "#   #", "#    ", "#   #", "#   #", " ### ", "#### ", " ### ", "#### ", " ####", "#####", "#   #", "#   #", "#   #", "#   #", "#   #", "#####"},
	{"#   #", "#   #", "#   #", "#   #", "#    ", "#    ", "#   #", "#   #", " # ", "   # ", "#  # ", "#    ", "## ##", "#   #", "#   #", "#   #", "#   #", "#   #", "#    ", "  #  ", "#   #", "#   #", "#   #", "#   #", "#   #", "    #"},
	{"#   #", "#   #", "#    ", "#   #", "#    ", "#    ", "#    ", "#   #", " # ", "   # ", "# #  ", "#    ", "# # #", "##  #", "#   #", "#   #", "#   #", "#   #", "#    ", "  #  ", "#   #", "#   #", "#   #", " # # ", " # # ", "   # "},
	{"#####", "#### ", "#    ", "#   #", "#### ", "#### ", "# ###", "#####", " # ", "   # ", "##   ", "#    ", "# # #", "# # #", "#   #", "#### ", "#   #", "#### ", " ### ", "  #  ", "#   #", "#   #", "# # #", "  #  ", "  #  ", "  #  "},
	{"#   #", "#   #", "#    ", "#   #", "#    ", "#    ", "#   #", "#   #", " # ", "   # ", "# #  ", "#    ", "#   #", "#  ##", "#   #", "#    ", "# # #", "# #  ", "    #", "  #  ", "#   #", "#   #", "# # #", " # # ", "  #  ", " #   "},
	{"#   #", "#   #", "#   #", "#   #", "#    ", "#    ", "#   #", "#   #", " # ", "#  # ", "#  # ", "#    ", "#   #", "#   #", "#   #", "#    ", "#  # ", "#  # ", "    #", "  #  ", "#   #", " # # ", "# # #", "#   #", "  #  ", "#    "},
	{"#   #", "#### ", " ### ", "#### ", "#####", "#    ", " ####", "#   #", "###", " ##  ", "#   #", "#####", "#   #", "#   #", " ### ", "#    ", " ## #", "#   #", "#### ", "  #  ", " ### ", "  #  ", " # # ", "#   #", "  #  ", "#####"},
}

var normalNumberDots = [][]string{
	{" ### ", " # ", " ### ", "#####", "   # ", "#####", "  ## ", "#####", " ### ", " ### "},
	{"#   #", "## ", "#   #", "   # ", "  ## ", "#    ", " #   ", "    #", "#   #", "#   #"},
	{"#  ##", " # ", "    #", "  #  ", " # # ", "#### ", "#    ", "   # ", "#   #", "#   #"},
	{"# # #", " # ", "   # ", "   # ", "#  # ", "    #", "#### ", "  #  ", " ### ", " ####"},
	{"##  #", " # ", "  #  ", "    #", "#####", "    #", "#   #", " #   ", "#   #", "    #"},
	{"#   #", " # ", " #   ", "#   #", "   # ", "#   #", "#   #", " #   ", "#   #", "   # "},
	{" ### ", "###", "#####", " ### ", "   # ", " ### ", " ### ", " #   ", " ### ", " ##  "},
}

var normalSymbolDots = [][]string{
	{"   ", " ", "  ", "#", " ### ", " ", "  ", "    ", "     ", "#", "# #", "##   ", " ##  ", "    #", "#    ", "  #", "#  ", "   #", "#   ", "     ", "     ", "     ", "#", "###", "###", "  #", "#  ", "  #  ", " # ", "#", "  #  ", "# ", " #", " #", " # # ", "  ###", "  #  ", " ### ", "     "},
	{"   ", " ", "  ", "#", "#   #", " ", "  ", "    ", "     ", "#", "# #", "##  #", "#  # ", "    #", "#    ", " # ", " # ", "  # ", " #  ", "     ", "  #  ", "# # #", "#", "#  ", "  #", " # ", " # ", " # # ", "# #", " ", "     ", " #", "# ", " #", " # # ", " #   ", " ####", "#   #", "     "},
	{"   ", " ", "  ", "#", "    #", "#", " #", "    ", "     ", " ", "   ", "   # ", "# #  ", "   # ", " #   ", "#  ", "  #", " #  ", "  # ", "#####", "  #  ", " ### ", "#", "#  ", "  #", " # ", " # ", "#   #", " # ", "#", "  #  ", "  ", "  ", "# ", "#####", "#### ", "# #  ", "# ###", " #   "},
	{"   ", " ", "  ", "#", "   # ", " ", "  ", "####", "     ", " ", "   ", "  #  ", " #   ", "  #  ", "  #  ", "#  ", "  #", "#   ", "   #", "     ", "#####", "#####", "#", "#  ", "  #", "#  ", "  #", "     ", "   ", "#", " #   ", "  ", "  ", "  ", " # # ", " #   ", " ### ", "# # #", "# # #"},
	{"   ", " ", "  ", "#", "  #  ", " ", "  ", "    ", "     ", " ", "   ", " #   ", "# # #", " #   ", "   # ", "#  ", "  #", " #  ", "  # ", "#####", "  #  ", " ### ", "#", "#  ", "  #", " # ", " # ", "     ", "   ", "#", "#    ", "  ", "  ", "  ", "#####", "#### ", "  # #", "# ###", "   # "},
	{"   ", " ", " #", " ", "     ", "#", " #", "    ", "     ", " ", "   ", "#  ##", "#  # ", "#    ", "    #", " # ", " # ", "  # ", " #  ", "     ", "  #  ", "# # #", "#", "#  ", "  #", " # ", " # ", "     ", "   ", "#", "#   #", "  ", "  ", "  ", " # # ", " #   ", "#### ", "#    ", "     "},
	{"   ", "#", "# ", "#", "  #  ", " ", "# ", "    ", "#####", " ", "   ", "   ##", " ## #", "#    ", "    #", "  #", "#  ", "   #", "#   ", "     ", "     ", "     ", "#", "###", "###", "  #", "#  ", "     ", "   ", "#", " ### ", "  ", "  ", "  ", " # # ", "  ###", "  #  ", " ####", "     "},
}

var normalExtraDots = [][]string{
	{"   # ", " #   ", "  #  ", " # # ", "  #  ", " ## #", "   # ", " #   ", "  #  ", " # # ", "  #", "#  ", " # ", "# #", "   # ", " #   ", "  #  ", " # # ", " ## #", "   # ", " #   ", "  #  ", " # # ", "   # ", " # # ", " ## #", " ### ", " ### ", " ####"},
	{" ### ", " ### ", " ### ", " ### ", " ### ", " ### ", "#####", "#####", "#####", "#####", "###", "###", "###", "###", " ### ", " ### ", " ### ", " ### ", " ### ", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#  ##"},
	{"#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#    ", "#    ", "#    ", "#    ", " # ", " # ", " # ", " # ", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", " # # ", " # # ", "##  #", "#  # ", "#    ", "# # #"},
	{"#####", "#####", "#####", "#####", "#####", "#####", "#### ", "#### ", "#### ", "#### ", " # ", " # ", " # ", " # ", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "  #  ", "  #  ", "# # #", "# ## ", "#    ", "# # #"},
	{"#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#    ", "#    ", "#    ", "#    ", " # ", " # ", " # ", " # ", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "  #  ", "  #  ", "#  ##", "#   #", "#   #", "# # #"},
	{"#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#    ", "#    ", "#    ", "#    ", " # ", " # ", " # ", " # ", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "  #  ", "  #  ", "#   #", "#   #", " ### ", "##  #"},
	{"#   #", "#   #", "#   #", "#   #", "#   #", "#   #", "#####", "#####", "#####", "#####", "###", "###", "###", "###", " ### ", " ### ", " ### ", " ### ", " ### ", " ### ", " ### ", " ### ", " ### ", "  #  ", "  #  ", "#   #", "# ## ", "  #  ", "#### "},
}
