package smolder

import "time"

// RowKind identifies the widget a preferences row should render as.
type RowKind uint8

const (
	RowDuration RowKind = iota // animation time, milliseconds
	RowColor                   // hex color picker
	RowSlider                  // numeric slider
)

// PrefsRow describes one settings row on an effect's preferences page.
// Key is the full store key (<effectId>-<property>); keys are fixed at
// effect-definition time.
type PrefsRow struct {
	Kind  RowKind
	Key   string
	Label string
	// Min, Max, Default apply to duration and slider rows.
	Min, Max, Default float64
	// DefaultColor applies to color rows, as a hex string.
	DefaultColor string
}

// PrefsPage is the declarative description of an effect's preferences
// page. The host renders it with whatever UI toolkit it uses.
type PrefsPage struct {
	EffectID string
	Title    string
	Rows     []PrefsRow
}

// PageBuilder collects preferences rows for one effect. Effects append
// rows in display order and finish with Page.
type PageBuilder struct {
	rows []PrefsRow
}

// NewPageBuilder creates an empty builder.
func NewPageBuilder() *PageBuilder {
	return &PageBuilder{}
}

// Duration adds an animation-time row. Bounds and default are in
// milliseconds on the rendered page.
func (b *PageBuilder) Duration(key, label string, min, max, def time.Duration) *PageBuilder {
	b.rows = append(b.rows, PrefsRow{
		Kind:    RowDuration,
		Key:     key,
		Label:   label,
		Min:     float64(min.Milliseconds()),
		Max:     float64(max.Milliseconds()),
		Default: float64(def.Milliseconds()),
	})
	return b
}

// Color adds a hex color picker row.
func (b *PageBuilder) Color(key, label, defaultHex string) *PageBuilder {
	b.rows = append(b.rows, PrefsRow{
		Kind:         RowColor,
		Key:          key,
		Label:        label,
		DefaultColor: defaultHex,
	})
	return b
}

// Slider adds a numeric slider row.
func (b *PageBuilder) Slider(key, label string, min, max, def float64) *PageBuilder {
	b.rows = append(b.rows, PrefsRow{
		Kind:    RowSlider,
		Key:     key,
		Label:   label,
		Min:     min,
		Max:     max,
		Default: def,
	})
	return b
}

// Page finishes the builder and returns the page description.
func (b *PageBuilder) Page(effectID, title string) *PrefsPage {
	return &PrefsPage{EffectID: effectID, Title: title, Rows: b.rows}
}
