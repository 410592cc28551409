package mpx

import "bennypowers.dev/mpxscan/sourcetype"

// ScriptRegion is one extracted script block from an MPX document
type ScriptRegion struct {
	// Source is the script body, sliced from the input document between
	// the opening tag's closing angle and the closing </script> marker
	Source string
	// Type is the resolved language descriptor for the block
	Type sourcetype.SourceType
	// Start is the absolute byte offset of Source within the document
	Start uint32
}

// End returns the byte offset just past the region's source text
func (r ScriptRegion) End() uint32 {
	return r.Start + uint32(len(r.Source)) //nolint:gosec // G115: offsets are bounded by document length
}
