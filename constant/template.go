// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Scheme Function Identifiers - these constants define the required global function signatures for Lua scheme modules.
const (
	DeriveSchemeFn = "DeriveScheme"
)

// SchemeTemplate is a Go text/template for scaffolding new Lua scheme files.
const SchemeTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias base  { hex: string, h: number, s: number, v: number }
---@alias entry string|{ h: number, s: number, v: number }


----- IMPORTS -----
--- END IMPORTS ---



----- VARIABLES -----
--- END VARIABLES ---



----- MAIN -----

--- Derives a color scheme from the given base color.
-- Each returned entry is either a 6-digit hex string or an { h, s, v } table
-- with every component normalized into [0, 1].
-- @param base base Base color to derive from
-- @return entry[] Table of derived colors, base first
function {{ .DeriveSchemeFn }}(base)
	return { base.hex }
end


--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
