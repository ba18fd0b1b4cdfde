package cache

// Keyer generates cache keys for each pipeline stage.
type Keyer interface {
	// DayKey identifies a loaded day by the hash of its source bytes.
	DayKey(source string, contentHash string) string

	// LayoutKey identifies a computed grid layout.
	LayoutKey(dayHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds every option that changes a layout's geometry.
type LayoutKeyOpts struct {
	StartHour      int    `json:"start_hour"`
	EndHour        int    `json:"end_hour"`
	Width          int    `json:"width"`
	Direction      string `json:"direction"`
	DividerHeight  int    `json:"divider_height"`
	HalfHourHeight int    `json:"half_hour_height"`
	LabelWidth     int    `json:"label_width"`
	LabelHeight    int    `json:"label_height"`
	LabelMarginEnd int    `json:"label_margin_end"`
	EventMargin    int    `json:"event_margin"`
	Padding        [4]int `json:"padding"`
}

// ArtifactKeyOpts holds the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Style  string `json:"style"`
	Title  string `json:"title,omitempty"`
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) DayKey(source, contentHash string) string {
	return hashKey("day", source, contentHash)
}

func (DefaultKeyer) LayoutKey(dayHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", dayHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
