package secmda

import "strings"

// FormatExtraction formats an extraction for display with a header naming
// the company, report and source document.
func FormatExtraction(ext *Extraction) string {
	var sb strings.Builder
	sb.WriteString("## " + ext.Ticker + " " + ext.ReportName() + "\n")
	sb.WriteString("Source: " + ext.SourceURL + "\n\n")
	sb.WriteString(ext.Content)
	return sb.String()
}
