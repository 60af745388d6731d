package constants

// Screen text
const (
	// FillerGlyph marks rows past the end of the buffer
	FillerGlyph = "~"

	// LineBreak is an explicit CR LF; raw mode does not translate a bare LF
	LineBreak = "\r\n"

	// Farewell is printed on a cleared screen once the quit key is processed
	Farewell = "Goodbye.\r\n"

	// QuitRune together with Ctrl ends the session
	QuitRune = 'q'
)

// BannerRowDivisor places the welcome banner at height/BannerRowDivisor
const BannerRowDivisor = 3
