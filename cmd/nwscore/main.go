// 18 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/nwscore/pkg/nwscore"
)

func main() {
	os.Exit(nwscore.Execute())
}
