package prstcli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/prstgeom/lib/version"
	"oss.terrastruct.com/prstgeom/lib/xmain"
	"oss.terrastruct.com/prstgeom/prstgeom"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--width=100] [--height=100] [--adj key=value]... shape [out]
  %[1]s --gallery [out.svg]
  %[1]s --batch shapes.yaml
  %[1]s --list

%[1]s writes the outline of an OOXML preset shape, e.g. roundRect or star5,
fitted to a width by height box. The format defaults to the extension of
out, or to bare SVG path data.

Use - to write to stdout.

Flags:
%[3]s

Batch files look like:
  shapes:
    - name: star5
      width: 200
      height: 200
      adj: {adj: 19098}
      out: star5.svg
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}

func listCmd(ms *xmain.State) {
	for _, name := range prstgeom.Names() {
		fmt.Fprintf(ms.Stdout, "%-28s %s\n", name, prstgeom.Family(name))
	}
}
