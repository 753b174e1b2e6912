package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/streamconv/api"
	"github.com/sarchlab/streamconv/axis"
	"github.com/sarchlab/streamconv/config"
	"github.com/sarchlab/streamconv/conv"
	"github.com/sarchlab/streamconv/verify"
	"github.com/tebeka/atexit"
)

var width = 12
var height = 8

var serve = flag.Bool("monitor", false, "serve the akita monitor")

// A bright square on a dark ground. The edge kernel lights up its outline
// and clamps everything flat to zero.
func squareImage() []uint8 {
	img := make([]uint8, width*height)
	for y := 2; y < height-2; y++ {
		for x := 3; x < width-3; x++ {
			img[y*width+x] = 200
		}
	}

	return img
}

func edgeDetect(driver api.Driver, cfg conv.Config) bool {
	src := squareImage()
	dst := make([]axis.Beat, cfg.StreamLength())

	driver.FeedIn(axis.FrameFromPixels(src))
	driver.Collect(dst)

	if err := driver.Run(); err != nil {
		fmt.Println("simulation failed:", err)
		return false
	}

	for y := 0; y <= height-conv.K; y++ {
		for x := 0; x <= width-conv.K; x++ {
			fmt.Printf("%4d", dst[y*width+x].Data)
		}
		fmt.Println()
	}

	report := verify.Compare(cfg, src, dst)
	report.WriteReport(os.Stdout)

	return report.OK()
}

func main() {
	flag.Parse()

	cfg := conv.Config{
		Width:  width,
		Height: height,
		Kernel: conv.EdgeKernel,
	}

	monitor := monitoring.NewMonitor()

	engine := sim.NewSerialEngine()
	monitor.RegisterEngine(engine)

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Driver")
	monitor.RegisterComponent(driver)

	device := config.DeviceBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithPipeline(cfg).
		WithMonitor(monitor).
		Build("Device")

	driver.RegisterDevice(device)

	if *serve {
		monitor.StartServer()
	}

	if !edgeDetect(driver, cfg) {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
