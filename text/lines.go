package text

// Splits the given text into lines. Both '\n' and '\r' act as line
// breaks on their own, so "\r\n" produces an empty line in between.
// Empty text results in a single empty line.
func SplitLines(text string) []string {
	lines := make([]string, 0, 1)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' && text[i] != '\r' { continue }
		lines = append(lines, text[start : i])
		start = i + 1
	}
	return append(lines, text[start : ])
}
