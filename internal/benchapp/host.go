package benchapp

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/sirupsen/logrus"
)

// Timings are only comparable between runs on similar hardware,
// so the CPU is logged alongside them when requested.
func reportHostInfo(logger logrus.FieldLogger) {
	cpuInfo, err := cpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		logger.Warn("unable to retrieve CPU information: ", err)
		return
	}

	logger.WithFields(logrus.Fields{
		"cpuModel": cpuInfo[0].ModelName,
		"cores":    cpuInfo[0].Cores,
		"mhz":      cpuInfo[0].Mhz,
		"goos":     runtime.GOOS,
		"goarch":   runtime.GOARCH,
	}).Info("host information")
}
