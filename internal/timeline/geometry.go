package timeline

// Dimensions describe the rendering surface in pixels. The rendering layer
// measures ContentWidth (container width minus the hour gutter) and re-invokes
// the engine whenever it changes; a terminal renderer can treat one cell as
// one pixel.
type Dimensions struct {
	HourHeight     float64 // vertical pixels per hour
	TimeLabelWidth float64 // hour gutter on the left
	ContentWidth   float64 // width available for blocks, right of the gutter
	BlockGap       float64 // horizontal gap between side-by-side columns
	MinBlockHeight float64 // floor so very short blocks stay visible
}

// Geometry is the pixel rectangle computed for one block, plus its column
// assignment for callers that want the logical layout too.
type Geometry struct {
	Block   Block
	Column  int
	Columns int
	Top     float64
	Height  float64
	Left    float64
	Width   float64
}

// LayoutBlocks produces absolute pixel geometry for every block visible in
// the window. Blocks are grouped by transitive overlap, colored into columns
// within each group, clamped to the window, then mapped to pixels.
//
// Blocks entirely outside the window are dropped from the output, but they
// still participate in grouping with their true intervals. A non-positive
// ContentWidth means the surface has not been measured yet; the result is
// empty rather than garbage geometry.
//
// The function is pure: identical inputs always give identical output.
func LayoutBlocks(blocks []Block, win Window, dims Dimensions) []Geometry {
	if dims.ContentWidth <= 0 || len(blocks) == 0 {
		return nil
	}

	winStart := win.StartMinutes()
	winEnd := win.EndMinutes()

	var out []Geometry
	for _, group := range GroupOverlapping(blocks) {
		for _, pl := range AssignColumns(group) {
			clamped := pl.Block.Interval().Clamp(winStart, winEnd)
			if clamped.Empty() {
				continue
			}

			height := float64(clamped.Minutes()) / 60 * dims.HourHeight
			if height < dims.MinBlockHeight {
				height = dims.MinBlockHeight
			}
			width := (dims.ContentWidth - float64(pl.Columns-1)*dims.BlockGap) / float64(pl.Columns)

			out = append(out, Geometry{
				Block:   pl.Block,
				Column:  pl.Column,
				Columns: pl.Columns,
				Top:     float64(clamped.Start-winStart) / 60 * dims.HourHeight,
				Height:  height,
				Left:    dims.TimeLabelWidth + float64(pl.Column)*(width+dims.BlockGap),
				Width:   width,
			})
		}
	}
	return out
}

// NowMarker returns the vertical pixel position of the live "now" line.
// It is only emitted when viewing today and the current minute falls inside
// the window.
func NowMarker(win Window, dims Dimensions, currentMinutes int, isToday bool) (float64, bool) {
	if !isToday {
		return 0, false
	}
	if currentMinutes < win.StartMinutes() || currentMinutes > win.EndMinutes() {
		return 0, false
	}
	return float64(currentMinutes-win.StartMinutes()) / 60 * dims.HourHeight, true
}
