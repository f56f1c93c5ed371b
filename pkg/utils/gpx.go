package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildGPX renders a GPX 1.1 document with a single track segment, one trkpt
// per [lat, lng] coordinate pair, in input order.
//
// The track name is written verbatim, not XML-escaped; callers pass
// server-generated names only, never client input.
func BuildGPX(name string, coords [][]float64) string {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sb.WriteString("<gpx version=\"1.1\" creator=\"Strava Route Discovery App\" xmlns=\"http://www.topografix.com/GPX/1/1\">\n")
	sb.WriteString("  <trk>\n")
	sb.WriteString("    <name>" + name + "</name>\n")
	sb.WriteString("    <trkseg>\n")
	for _, pt := range coords {
		sb.WriteString(fmt.Sprintf("      <trkpt lat=\"%s\" lon=\"%s\"></trkpt>\n",
			formatCoord(pt[0]), formatCoord(pt[1])))
	}
	sb.WriteString("    </trkseg>\n")
	sb.WriteString("  </trk>\n")
	sb.WriteString("</gpx>\n")
	return sb.String()
}

// formatCoord renders a coordinate with the shortest exact decimal form,
// keeping a trailing ".0" on whole numbers (45 -> "45.0").
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
