package render

const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"

	// FormatNodelink is the structure diagram rendered to SVG by Graphviz.
	FormatNodelink = "nodelink"
)

// Formats lists every output format in a stable order.
var Formats = []string{FormatSVG, FormatPNG, FormatJSON, FormatDOT, FormatNodelink}

var contentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz",

	FormatNodelink: "image/svg+xml",
}

// ContentType returns the MIME type for a format, or
// application/octet-stream for an unknown one.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// IsFormat reports whether format names a supported output.
func IsFormat(format string) bool {
	_, ok := contentTypes[format]
	return ok
}
