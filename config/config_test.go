package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should define every known key, and nothing more", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("generation.analogous.count")
			So(result, ShouldEqual, "generation_analogous_count")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env() prefixes and uppercases the key", func() {
			field := Default[key.PickerDefault]
			So(field.Env(), ShouldEqual, "SWATCH_PICKER_DEFAULT")
		})

		Convey("Pretty() mentions the key and its description", func() {
			field := Default[key.HistorySaveOnPick]
			pretty := field.Pretty()
			So(pretty, ShouldContainSubstring, key.HistorySaveOnPick)
			So(pretty, ShouldContainSubstring, "history")
		})
	})
}
