// Demonstrates the fmtlog suppression policies and value adapters against
// a live backend.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"fmtlog/pkg/fmtlog"
	"fmtlog/pkg/logcontrol"
	"fmtlog/pkg/sink"
	"fmtlog/pkg/sink/beats"
	"fmtlog/pkg/sink/buffered"
	"fmtlog/pkg/sink/console"
	"fmtlog/pkg/sink/journald"
)

func main() {
	logLevel := flag.String("log-level", "DEBUG", "Minimum severity (DEBUG, INFO, WARN, ERROR, FATAL)")
	useJournald := flag.Bool("journald", false, "Write to the systemd journal instead of the console")
	beatsEndpoint := flag.String("beats", "", "Ship records to this beats (lumberjack) endpoint instead")
	bufferCapacity := flag.Int("buffer", 0, "Queue records through a bounded buffer of this capacity")
	dbusControl := flag.Bool("dbus", false, "Expose log level control on the D-Bus system bus")
	flag.Parse()

	minSeverity, err := fmtlog.ParseSeverity(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	levels := sink.NewLevels(minSeverity)

	var backend fmtlog.Backend
	if *useJournald {
		journal, err := journald.New("fmtlogdemo", levels)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer journal.Close()
		backend = journal
	} else {
		backend = console.New(os.Stdout, levels)
	}

	if *beatsEndpoint != "" {
		shipper, err := beats.New(*beatsEndpoint, "fmtlogdemo", levels)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer shipper.Shutdown()
		backend = shipper
	}

	if *bufferCapacity != 0 {
		queue := buffered.New(backend, *bufferCapacity)
		defer queue.Close()
		backend = queue
	}

	if *dbusControl {
		controller := logcontrol.New(levels, "fmtlogdemo")
		err = controller.Serve()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer controller.Close()
	}

	logger := fmtlog.New(backend, "demo_node")

	fmt.Println("Integer formatting:")
	logger.Fatal("Value: %d", 5)

	fmt.Println("\nComplex formatting:")
	logger.Fatal("Item %d at (%d, %d) = %.2f", 42, 10, 20, 1.2345)

	fmt.Println("\nOnce functionality (called 3 times, should only log once):")
	for i := 0; i < 3; i++ {
		logger.FatalOnce("This message appears only once: %d", i)
		logger.FatalOnce("This one only once as well: %d", i)
	}

	fmt.Println("\nThrottle functionality (called 10 times with 500ms throttle):")
	for i := 0; i < 10; i++ {
		fmt.Printf("Loop iteration %d\n", i)
		logger.FatalThrottle(500*time.Millisecond, "Throttled message #%d - only some will appear", i)
		logger.FatalThrottle(500*time.Millisecond, "Logging twice: %d", i)
		time.Sleep(200 * time.Millisecond)
	}

	fmt.Println("\nOn change functionality (logs only when value changes):")
	sensorReadings := []int{100, 100, 100, 200, 200, 150, 150, 300}
	for _, reading := range sensorReadings {
		fmt.Printf("Sensor reading = %d\n", reading)
		fmtlog.FatalOnChange(logger, reading, "Sensor reading changed to: %d", reading)
		fmtlog.FatalOnChangeBy(logger, reading, 80, "Sensor reading changed significantly to: %d", reading)
	}

	fmt.Println("\nOn change with floating point values:")
	temperatures := []float64{20.5, 20.5, 25.1, 25.1, 30.7, 20.5}
	for _, temperature := range temperatures {
		fmt.Printf("Temperature = %.1f°C\n", temperature)
		fmtlog.FatalOnChange(logger, temperature, "Temperature changed to: %.1f°C", temperature)
		fmtlog.FatalOnChange(logger, temperature, "Also temp changed to: %.1f°C", temperature)
		fmtlog.FatalOnChangeBy(logger, temperature, 10.0,
			"Temperature changed significantly (> 10.0): %.1f°C", temperature)
	}

	fmt.Println("\nValue adapters:")
	logger.Info("Cycle time %v at %v, started %v",
		fmtlog.Seconds(250*time.Millisecond),
		fmtlog.Hz(250*time.Millisecond),
		fmtlog.Stamp(time.Now()))
}
