package theme

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/style"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("builtin returns the stock palette", func() {
			viper.Set(key.ThemeSource, SourceBuiltin)
			So(Load(), ShouldResemble, stock)
		})

		Convey("config takes both colors from settings", func() {
			viper.Set(key.ThemeSource, SourceConfig)
			viper.Set(key.ThemeBackground, "#000000")
			viper.Set(key.ThemeAccent, "#ff0000")
			So(Load(), ShouldResemble, Theme{Background: "#000000", Accent: "#ff0000"})
		})

		Convey("pywal reads the generated scheme", func() {
			path := lo.Must(WalColorsPath())
			lo.Must0(filesystem.API().MkdirAll(filepath.Dir(path), 0755))
			contents := `{"special": {"background": "#101010"}, "colors": {"color9": "#aabbcc"}}`
			lo.Must0(filesystem.API().WriteFile(path, []byte(contents), 0644))

			viper.Set(key.ThemeSource, SourcePywal)
			So(Load(), ShouldResemble, Theme{Background: "#101010", Accent: "#aabbcc"})
		})

		Convey("a partial pywal scheme keeps stock values for missing entries", func() {
			path := lo.Must(WalColorsPath())
			lo.Must0(filesystem.API().MkdirAll(filepath.Dir(path), 0755))
			lo.Must0(filesystem.API().WriteFile(path, []byte(`{"special": {"background": "#101010"}}`), 0644))

			viper.Set(key.ThemeSource, SourcePywal)
			theme := Load()
			So(theme.Background, ShouldEqual, "#101010")
			So(theme.Accent, ShouldEqual, stock.Accent)
		})

		Convey("a missing pywal scheme falls back to the stock palette", func() {
			_ = filesystem.API().RemoveAll(filepath.Dir(lo.Must(WalColorsPath())))
			viper.Set(key.ThemeSource, SourcePywal)
			So(Load(), ShouldResemble, stock)
		})
	})
}

func TestApply(t *testing.T) {
	Convey("Apply", t, func() {
		base, accent, border := style.Base, style.AccentColor, style.ActiveBorderColor
		Reset(func() {
			style.Base, style.AccentColor, style.ActiveBorderColor = base, accent, border
		})

		viper.Set(key.ThemeSource, SourceConfig)
		viper.Set(key.ThemeBackground, "#123456")
		viper.Set(key.ThemeAccent, "#654321")

		Apply()
		So(style.Base, ShouldEqual, lipgloss.Color("#123456"))
		So(style.AccentColor, ShouldEqual, lipgloss.Color("#654321"))
		So(style.ActiveBorderColor, ShouldEqual, style.AccentColor)
	})
}

func TestStylesheet(t *testing.T) {
	Convey("Stylesheet", t, func() {
		viper.Set(key.ThemeSource, SourceConfig)
		viper.Set(key.ThemeBackground, "#1e1e2e")
		viper.Set(key.ThemeAccent, "#cba6f7")

		Convey("substitutes every recognized token", func() {
			filled := Stylesheet(DefaultStylesheet)
			So(filled, ShouldContainSubstring, "--background: #1e1e2e;")
			So(filled, ShouldContainSubstring, "--accent: #cba6f7;")
			So(filled, ShouldNotContainSubstring, "{{")
		})

		Convey("leaves unrelated text alone", func() {
			So(Stylesheet("body { color: red; }"), ShouldEqual, "body { color: red; }")
		})
	})
}
