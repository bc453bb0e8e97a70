package pdf

// RGB is a color triplet for the monochrome-friendly palette
type RGB struct {
	R, G, B int
}

// Palette holds the colors used by the layout engine
type Palette struct {
	Black         RGB
	DarkGray      RGB
	MediumGray    RGB
	LightGray     RGB
	VeryLightGray RGB
}

// Style is a layout profile. The clean and legacy renderings share one
// layout routine and differ only in these values.
type Style struct {
	FontFamily string
	Palette    Palette

	Margin     float64
	PageWidth  float64
	PageHeight float64

	HeaderRuleY  float64
	InfoY        float64
	PartyY       float64
	TableStartY  float64
	TableHeaderH float64
	RowHeight    float64
	TotalsWidth  float64
	// FooterOffset is the distance of the footer rule from the bottom edge
	FooterOffset float64
}

// CleanStyle returns the default monochrome profile
func CleanStyle() Style {
	return Style{
		FontFamily: "Helvetica",
		Palette: Palette{
			Black:         RGB{0, 0, 0},
			DarkGray:      RGB{64, 64, 64},
			MediumGray:    RGB{128, 128, 128},
			LightGray:     RGB{200, 200, 200},
			VeryLightGray: RGB{240, 240, 240},
		},
		Margin:       20,
		PageWidth:    210,
		PageHeight:   297,
		HeaderRuleY:  45,
		InfoY:        55,
		PartyY:       75,
		TableStartY:  140,
		TableHeaderH: 10,
		RowHeight:    12,
		TotalsWidth:  60,
		FooterOffset: 40,
	}
}

// LegacyStyle returns the older rendering kept for documents produced
// before the clean profile became the default.
func LegacyStyle() Style {
	s := CleanStyle()
	s.FontFamily = "Times"
	s.Palette.VeryLightGray = RGB{230, 236, 245}
	s.Palette.MediumGray = RGB{90, 110, 140}
	return s
}

// totalsHeight is the vertical room the totals block needs below the table
const totalsHeight = 27.0

// Capacity returns how many item rows fit on the single page while
// leaving room for the totals block above the footer rule.
func (s Style) Capacity() int {
	footerY := s.PageHeight - s.FooterOffset
	usable := footerY - s.TableStartY - s.TableHeaderH - 5 - 10 - totalsHeight
	if usable <= 0 {
		return 0
	}
	return int(usable / s.RowHeight)
}
