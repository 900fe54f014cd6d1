package config

// OutputFmt selects renderer.
// ENUM(tree, ansi, html, yaml)
type OutputFmt int

// Ext returns file extension for the output type.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtTree:
		return ".txt"
	case OutputFmtAnsi:
		return ".ans"
	case OutputFmtHtml:
		return ".html"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
