package docmodel

import "strings"

// CodeRegion is an inclusive range of 1-based line numbers known to be
// inside a fenced code block, fence lines included.
// Regions are non-overlapping and sorted by StartLine.
type CodeRegion struct {
	StartLine int
	EndLine   int
}

// Contains reports whether the 1-based line falls inside this region.
func (r CodeRegion) Contains(line int) bool {
	return line >= r.StartLine && line <= r.EndLine
}

// ComputeCodeRegions scans lines sequentially and returns the fenced code
// regions. A fence marker line (``` or ~~~, optionally with a language tag)
// toggles the inside-code state. An unterminated fence closes its region at
// the last line rather than failing.
func ComputeCodeRegions(lines []string) []CodeRegion {
	var regions []CodeRegion

	openLine := 0 // 0 means not inside a fence
	openMarker := byte(0)

	for i, line := range lines {
		lineNum := i + 1
		marker, ok := fenceMarker(line)
		if !ok {
			continue
		}

		if openLine == 0 {
			openLine = lineNum
			openMarker = marker
			continue
		}

		// Only a matching marker closes the fence. A ~~~ line inside a
		// backtick fence is content, not a closing fence.
		if marker == openMarker {
			regions = append(regions, CodeRegion{StartLine: openLine, EndLine: lineNum})
			openLine = 0
			openMarker = 0
		}
	}

	// Defensive close at EOF for an unterminated fence.
	if openLine != 0 {
		regions = append(regions, CodeRegion{StartLine: openLine, EndLine: len(lines)})
	}

	return regions
}

// fenceMarker reports whether the line is a fence marker and which
// character opens it. Up to three leading spaces are allowed, matching
// CommonMark fence syntax.
func fenceMarker(line string) (byte, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return 0, false
	}
	if strings.HasPrefix(trimmed, "```") {
		return '`', true
	}
	if strings.HasPrefix(trimmed, "~~~") {
		return '~', true
	}
	return 0, false
}

// InRegions reports whether the 1-based line falls inside any region.
// Regions are sorted, so the scan can stop at the first region past line.
func InRegions(regions []CodeRegion, line int) bool {
	for _, r := range regions {
		if line < r.StartLine {
			return false
		}
		if r.Contains(line) {
			return true
		}
	}
	return false
}
