package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleYAML = `
kind: board
def:
  height: 8
  width: 9
  port:
    front: {row: 7, column: 5}
    back: {row: 6, column: 5}
`

func TestLoad(t *testing.T) {
	Convey("Given the reference board YAML on disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "board.yaml")
		So(os.WriteFile(path, []byte(sampleYAML), 0o644), ShouldBeNil)

		Convey("Load decodes it to the same constants as Reference", func() {
			cfg, err := Load(path)
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, Reference())
		})
	})

	Convey("Given a path to a nonexistent file", t, func() {
		Convey("Load returns an error", func() {
			_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			So(err, ShouldNotBeNil)
		})
	})
}
