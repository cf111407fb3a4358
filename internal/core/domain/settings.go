package domain

const unknownDescription = "Unknown"

// LocationStyle controls how cellularLocation references are written.
type LocationStyle string

// Available location styles.
const (
	// LocationStyleMixed writes Protein locations as a bare id and
	// SmallMolecule locations as a fragment reference (#id).
	LocationStyleMixed LocationStyle = "mixed"

	// LocationStyleFragment writes every location as a fragment reference.
	LocationStyleFragment LocationStyle = "fragment"
)

// IsValid returns true if the location style is recognised.
func (s LocationStyle) IsValid() bool {
	switch s {
	case LocationStyleMixed, LocationStyleFragment:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s LocationStyle) String() string {
	return string(s)
}

// Description returns a human-readable description of the style.
func (s LocationStyle) Description() string {
	switch s {
	case LocationStyleMixed:
		return "Mixed (protein: id, small molecule: #id)"
	case LocationStyleFragment:
		return "Fragment (#id for every entity)"
	default:
		return unknownDescription
	}
}

// OutputSettings configures the emitted document.
type OutputSettings struct {
	// Indent is the number of spaces per nesting level. Zero disables
	// pretty-printing.
	Indent int `env:"SBML2BIOPAX_INDENT" validate:"gte=0,lte=8"`

	// LocationStyle selects how cellularLocation resources are written.
	LocationStyle LocationStyle `env:"SBML2BIOPAX_LOCATION_STYLE" validate:"required,oneof=mixed fragment"`

	// XMLDeclaration writes the <?xml ...?> header when true.
	XMLDeclaration bool `env:"SBML2BIOPAX_XML_DECLARATION"`
}

// WatchSettings configures the watch command.
type WatchSettings struct {
	// DebounceMillis coalesces bursts of file events.
	DebounceMillis int `env:"SBML2BIOPAX_WATCH_DEBOUNCE_MS" validate:"gte=0"`
}

// ConversionSettings holds all application settings.
type ConversionSettings struct {
	// Output holds document emission settings.
	Output OutputSettings

	// Watch holds watch-mode settings.
	Watch WatchSettings
}

// DefaultConversionSettings returns settings with sensible defaults.
func DefaultConversionSettings() ConversionSettings {
	return ConversionSettings{
		Output: OutputSettings{
			Indent:         2,
			LocationStyle:  LocationStyleMixed,
			XMLDeclaration: true,
		},
		Watch: WatchSettings{
			DebounceMillis: 250,
		},
	}
}

// StoredSettings are the settings a user saved explicitly, laid out as
// the [output] and [watch] tables of the config file. A nil field was
// never saved and keeps its default.
type StoredSettings struct {
	Output StoredOutput `toml:"output,omitempty"`
	Watch  StoredWatch  `toml:"watch,omitempty"`
}

// StoredOutput is the [output] table.
type StoredOutput struct {
	Indent         *int    `toml:"indent,omitempty"`
	LocationStyle  *string `toml:"location_style,omitempty"`
	XMLDeclaration *bool   `toml:"xml_declaration,omitempty"`
}

// StoredWatch is the [watch] table.
type StoredWatch struct {
	DebounceMillis *int `toml:"debounce_ms,omitempty"`
}

// Apply overlays the saved values onto s. An unrecognised location style
// is skipped so a hand-edited file cannot block every command.
func (st StoredSettings) Apply(s *ConversionSettings) {
	if st.Output.Indent != nil {
		s.Output.Indent = *st.Output.Indent
	}
	if st.Output.LocationStyle != nil {
		if style := LocationStyle(*st.Output.LocationStyle); style.IsValid() {
			s.Output.LocationStyle = style
		}
	}
	if st.Output.XMLDeclaration != nil {
		s.Output.XMLDeclaration = *st.Output.XMLDeclaration
	}
	if st.Watch.DebounceMillis != nil {
		s.Watch.DebounceMillis = *st.Watch.DebounceMillis
	}
}

// Clone returns a copy sharing no pointers with st.
func (st StoredSettings) Clone() StoredSettings {
	return StoredSettings{
		Output: StoredOutput{
			Indent:         clonePtr(st.Output.Indent),
			LocationStyle:  clonePtr(st.Output.LocationStyle),
			XMLDeclaration: clonePtr(st.Output.XMLDeclaration),
		},
		Watch: StoredWatch{
			DebounceMillis: clonePtr(st.Watch.DebounceMillis),
		},
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
