package main

import (
	"oss.terrastruct.com/prstgeom/lib/xmain"
	"oss.terrastruct.com/prstgeom/prstcli"
)

func main() {
	xmain.Main(prstcli.Run)
}
