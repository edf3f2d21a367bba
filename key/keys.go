// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 23

// History Tracking - these keys configure the persistence of picked colors.
const (
	HistorySaveOnPick = "history.save_on_pick"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Minimalist (Mini) Mode - these keys configure the specialized lightweight prompt flow.
const (
	MiniSearchLimit = "mini.search_limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Palette Generation - these keys govern how color schemes are derived from a base color.
const (
	GenerationAnalogousCount = "generation.analogous_count"
	GenerationSchemes        = "generation.schemes"
)

// Palette Catalog - these keys manage where rendered palette documents live and how they link out.
const (
	PalettesDir       = "palettes.dir"
	PalettesSwatchURL = "palettes.swatch_url"
)

// Theming - these keys control where the UI colors come from.
const (
	ThemeSource     = "theme.source"
	ThemeBackground = "theme.background"
	ThemeAccent     = "theme.accent"
)

// Color Picking - these keys configure the external screen picker integration.
const (
	PickerDefault = "picker.default"
)

// Scheme Extensions - these keys manage custom Lua scheme scripts.
const (
	SchemesAutoUpdate = "schemes.auto_update"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUIGenerateOnEnter    = "tui.generate_on_enter"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowTimestamps     = "tui.show_timestamps"
	TUIReverseColors      = "tui.reverse_colors"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
