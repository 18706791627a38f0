package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytplay-cli/ytplay/filesystem"
	"github.com/ytplay-cli/ytplay/key"
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
			So(viper.GetString(key.PlayerDecoder), ShouldEqual, "ffplay")
			So(viper.GetInt(key.SearchLimit), ShouldEqual, 10)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("player.tick_interval")
			So(result, ShouldEqual, "player_tick_interval")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.SearchProvider]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "YTPLAY_SEARCH_PROVIDER")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.SearchProvider)
		})

		Convey("MarshalJSON should report the type", func() {
			b, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"type":"string"`)
		})
	})
}
