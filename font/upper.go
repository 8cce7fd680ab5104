package font

import "unicode"

const lowerExtras = "áàâäåãæéèêëíìîïóòôöõøœúùûüýÿñšžçß"
const upperExtras = "ÁÀÂÄÅÃÆÉÈÊËÍÌÎÏÓÒÔÖÕØŒÚÙÛÜÝŸÑŠŽÇẞ"

var extrasToUpper map[rune]rune

func init() {
	lower, upper := []rune(lowerExtras), []rune(upperExtras)
	if len(lower) != len(upper) { panic(brokenCode) }
	extrasToUpper = make(map[rune]rune, len(lower))
	for i, r := range lower { extrasToUpper[r] = upper[i] }
}

// Returns the upper case version of the given character. Accented
// latin letters are mapped explicitly, and 'ß' becomes 'ẞ', which
// [unicode.ToUpper]() leaves untouched.
func ToUpper(r rune) rune {
	if upper, found := extrasToUpper[r]; found { return upper }
	return unicode.ToUpper(r)
}
