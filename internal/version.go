package internal

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/baalimago/sahayak/internal/models"
	"github.com/baalimago/sahayak/internal/utils"
)

// Set with buildflag if built in pipeline and not using go install
var (
	BuildVersion  = ""
	BuildChecksum = ""
)

func printVersion() (models.Querier, error) {
	if BuildVersion != "" {
		fmt.Printf("version: %v, checksum: %v\n", BuildVersion, BuildChecksum)
		return nil, utils.ErrUserInitiatedExit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, errors.New("failed to read build info")
	}
	fmt.Printf("version: %v, go version: %v, checksum: %v\n", bi.Main.Version, bi.GoVersion, bi.Main.Sum)
	return nil, utils.ErrUserInitiatedExit
}
